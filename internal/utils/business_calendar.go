package utils

import (
	"fmt"
	"time"

	cal "github.com/rickar/cal/v2"
)

// Year-end closure observed by the shop. Dates only; the calendar compares
// year/month/day.
var (
	NewYearsEve = &cal.Holiday{Name: "New Year's Eve", Month: time.December, Day: 31, Func: cal.CalcDayOfMonth}
	NewYearsDay = &cal.Holiday{Name: "New Year's Day", Month: time.January, Day: 1, Func: cal.CalcDayOfMonth}
	NewYear2    = &cal.Holiday{Name: "New Year Holiday (2nd)", Month: time.January, Day: 2, Func: cal.CalcDayOfMonth}
	NewYear3    = &cal.Holiday{Name: "New Year Holiday (3rd)", Month: time.January, Day: 3, Func: cal.CalcDayOfMonth}
)

// maxClosedRun bounds the search for the next open day.
const maxClosedRun = 31

type BusinessCalendar struct {
	bc  *cal.BusinessCalendar
	loc *time.Location
}

// NewBusinessCalendar opens every weekday except closedWeekdays and closes
// over the year-end holidays.
func NewBusinessCalendar(loc *time.Location, closedWeekdays []time.Weekday) *BusinessCalendar {
	if loc == nil {
		loc = time.UTC
	}
	bc := cal.NewBusinessCalendar()
	for d := time.Sunday; d <= time.Saturday; d++ {
		bc.SetWorkday(d, true)
	}
	for _, d := range closedWeekdays {
		bc.SetWorkday(d, false)
	}
	bc.AddHoliday(NewYearsEve, NewYearsDay, NewYear2, NewYear3)
	return &BusinessCalendar{bc: bc, loc: loc}
}

// Today returns the current calendar date in the business time zone,
// expressed as midnight UTC.
func (c *BusinessCalendar) Today(now time.Time) time.Time {
	return DateOnly(now.In(c.loc))
}

// IsOpen reports whether the shop operates on the given date.
func (c *BusinessCalendar) IsOpen(d time.Time) bool {
	if !c.bc.IsWorkday(d) {
		return false
	}
	actual, observed, _ := c.bc.IsHoliday(d)
	return !actual && !observed
}

// NextBusinessDate is the day after `from`. With skipClosed it advances past
// closing days and holidays.
func (c *BusinessCalendar) NextBusinessDate(from time.Time, skipClosed bool) (time.Time, error) {
	next := DateOnly(from).AddDate(0, 0, 1)
	if !skipClosed {
		return next, nil
	}
	for i := 0; i < maxClosedRun; i++ {
		if c.IsOpen(next) {
			return next, nil
		}
		next = next.AddDate(0, 0, 1)
	}
	return time.Time{}, fmt.Errorf("no open business day within %d days of %s", maxClosedRun, from.Format(time.DateOnly))
}

// DateOnly drops the clock and zone, keeping the calendar date.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

package models

import (
	"encoding/json"
	"fmt"
	"time"
)

const BusinessDateLayout = time.DateOnly

// BusinessDate is a calendar date with no clock or zone, serialised as
// "YYYY-MM-DD".
type BusinessDate struct {
	t time.Time
}

func NewBusinessDate(t time.Time) BusinessDate {
	y, m, d := t.Date()
	return BusinessDate{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func ParseBusinessDate(s string) (BusinessDate, error) {
	t, err := time.Parse(BusinessDateLayout, s)
	if err != nil {
		return BusinessDate{}, fmt.Errorf("business date %q: %w", s, err)
	}
	return BusinessDate{t: t}, nil
}

func (d BusinessDate) Time() time.Time { return d.t }
func (d BusinessDate) IsZero() bool    { return d.t.IsZero() }
func (d BusinessDate) String() string  { return d.t.Format(BusinessDateLayout) }

func (d BusinessDate) AddDays(n int) BusinessDate {
	return BusinessDate{t: d.t.AddDate(0, 0, n)}
}

func (d BusinessDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *BusinessDate) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseBusinessDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusinessDate_JSON(t *testing.T) {
	var body struct {
		Date BusinessDate `json:"businessDate"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"businessDate":"2025-06-10"}`), &body))
	assert.Equal(t, "2025-06-10", body.Date.String())

	out, err := json.Marshal(body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"businessDate":"2025-06-10"}`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"businessDate":"10/06/2025"}`), &body))
}

func TestNewBusinessDate_DropsClock(t *testing.T) {
	jst := time.FixedZone("JST", 9*60*60)
	d := NewBusinessDate(time.Date(2025, time.June, 10, 23, 59, 0, 0, jst))
	assert.Equal(t, "2025-06-10", d.String())
	assert.Equal(t, "2025-06-11", d.AddDays(1).String())
}

func TestInventoryStatus_DefaultsAndPending(t *testing.T) {
	d, err := ParseBusinessDate("2025-06-10")
	require.NoError(t, err)
	s := NewDefaultInventoryStatus(d, uuid.New())

	assert.Equal(t, int64(0), s.GetVersion())
	assert.Equal(t, InventoryCheckUnchecked, s.InventoryCheckStatus)
	assert.Equal(t, ProgressNotRequired, s.ReplenishmentStatus)
	assert.True(t, s.IsPending())

	s.InventoryCheckStatus = InventoryCheckChecked
	assert.False(t, s.IsPending())

	s.OrderRequestStatus = ProgressRequired
	assert.True(t, s.IsPending())
}

func TestInventoryStatus_VersionInJSON(t *testing.T) {
	s := &InventoryStatus{ID: uuid.New()}
	s.SetVersion(3)

	out, err := json.Marshal(s)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(out, &m))
	assert.EqualValues(t, 3, m["version"])
	assert.NotContains(t, m, "item")
}

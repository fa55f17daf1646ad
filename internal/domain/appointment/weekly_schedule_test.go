package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

func TestBuildWeeklySchedule(t *testing.T) {
	rows := []models.WorkingHours{
		{
			Weekday:     1, // segunda
			IsOpen:      true,
			OpeningTime: "09:00",
			ClosingTime: "17:00",
			Breaks: []models.BreakHour{
				{StartTime: "12:00", EndTime: "13:00"},
			},
		},
		{
			Weekday: 0, // domingo fechado
			IsOpen:  false,
		},
	}

	ws := BuildWeeklySchedule(rows)
	require.NotNil(t, ws)

	mon, ok := ws["Monday"]
	require.True(t, ok)
	assert.True(t, mon.IsOpen)
	assert.Equal(t, 540, mon.OpenMinute)
	assert.Equal(t, 1020, mon.CloseMinute)
	require.Len(t, mon.Breaks, 1)
	assert.Equal(t, 720, mon.Breaks[0].StartMinute)
	assert.Equal(t, 780, mon.Breaks[0].EndMinute)

	sun, ok := ws["Sunday"]
	require.True(t, ok)
	assert.False(t, sun.IsOpen)

	_, ok = ws["Tuesday"]
	assert.False(t, ok)
}

func TestBuildWeeklyScheduleEmpty(t *testing.T) {
	assert.Nil(t, BuildWeeklySchedule(nil))
	assert.Nil(t, BuildWeeklySchedule([]models.WorkingHours{}))
}

func TestBuildWeeklyScheduleSkipsInvalidWeekday(t *testing.T) {
	rows := []models.WorkingHours{
		{Weekday: 9, IsOpen: true, OpeningTime: "09:00", ClosingTime: "17:00"},
		{Weekday: 3, IsOpen: true, OpeningTime: "10:00", ClosingTime: "16:00"},
	}

	ws := BuildWeeklySchedule(rows)
	require.Len(t, ws, 1)
	assert.Contains(t, ws, "Wednesday")
}

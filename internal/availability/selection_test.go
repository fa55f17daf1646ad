package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSelectionDefaults(t *testing.T) {
	s := NewSelection(monday)

	assert.Equal(t, AnyStaff, s.StaffID)
	assert.Equal(t, CategoryMorning, s.Category)
	assert.False(t, s.HasSlot())
}

func TestSelectionStaffChangeClearsSlot(t *testing.T) {
	s := NewSelection(monday)
	s.SelectSlot("14:00")
	assert.True(t, s.HasSlot())

	s.SetStaff("7")
	assert.False(t, s.HasSlot())
	assert.Equal(t, "7", s.StaffID)
}

func TestSelectionSameStaffKeepsSlot(t *testing.T) {
	s := NewSelection(monday)
	s.SetStaff("7")
	s.SelectSlot("14:00")

	s.SetStaff("7")
	assert.Equal(t, "14:00", s.TimeSlot)
}

func TestSelectionSlotAlignsCategory(t *testing.T) {
	s := NewSelection(monday)

	s.SelectSlot("09:30")
	assert.Equal(t, CategoryMorning, s.Category)

	s.SelectSlot("19:00")
	assert.Equal(t, CategoryNight, s.Category)
}

func TestSelectionSubmissionFields(t *testing.T) {
	s := NewSelection(time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC))
	s.SelectSlot("09:30")

	assert.Equal(t, "2026-03-02", s.SubmissionDate())
	assert.Equal(t, "09:30", s.SubmissionTime())
}

func TestResolveDayHours(t *testing.T) {
	ws := WeeklySchedule{"Monday": openDay("09:00", "17:00")}

	day, ok := ResolveDayHours(ws, monday)
	assert.True(t, ok)
	assert.True(t, day.IsOpen)
	assert.Equal(t, 540, day.OpenMinute)

	_, ok = ResolveDayHours(ws, monday.AddDate(0, 0, 1))
	assert.False(t, ok)

	_, ok = ResolveDayHours(nil, monday)
	assert.False(t, ok)
}

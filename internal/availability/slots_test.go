package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// segunda-feira, 2 de março de 2026
var monday = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func openDay(open, close string, breaks ...BreakWindow) DaySchedule {
	return DaySchedule{
		IsOpen:      true,
		OpenMinute:  MinuteOfDay(open),
		CloseMinute: MinuteOfDay(close),
		Breaks:      breaks,
	}
}

func TestGrid(t *testing.T) {
	require.Len(t, Grid, 29)
	assert.Equal(t, "08:00", Grid[0])
	assert.Equal(t, "22:00", Grid[28])

	for i := 1; i < len(Grid); i++ {
		assert.Equal(t, MinuteOfDay(Grid[i-1])+SlotStepMinutes, MinuteOfDay(Grid[i]))
	}
}

func TestMinuteOfDay(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"08:00", 480},
		{"00:00", 0},
		{"23:59", 1439},
		{"14:30", 870},
		{"24:00", -1},
		{"12:60", -1},
		{"12", -1},
		{"ab:cd", -1},
		{"", -1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MinuteOfDay(tt.in), "entrada %q", tt.in)
	}
}

func TestFormat12Hour(t *testing.T) {
	assert.Equal(t, "8:00 AM", Format12Hour("08:00"))
	assert.Equal(t, "12:00 PM", Format12Hour("12:00"))
	assert.Equal(t, "2:30 PM", Format12Hour("14:30"))
	assert.Equal(t, "10:00 PM", Format12Hour("22:00"))
	assert.Equal(t, "bogus", Format12Hour("bogus"))
}

func TestAvailableSlots_BusinessHoursWithBreak(t *testing.T) {
	business := WeeklySchedule{
		"Monday": openDay("09:00", "17:00", BreakWindow{MinuteOfDay("12:00"), MinuteOfDay("13:00")}),
	}

	got := AvailableSlots(monday, AnyStaff, nil, business)

	want := []string{
		"09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
		"13:00", "13:30", "14:00", "14:30", "15:00", "15:30", "16:00", "16:30",
	}
	assert.Equal(t, want, got)
}

func TestAvailableSlots_StaffScheduleIsMandatory(t *testing.T) {
	business := WeeklySchedule{"Monday": openDay("09:00", "17:00")}

	// profissional escolhido sem agenda: nenhum horário, mesmo com o
	// salão aberto; não cai para a agenda do salão
	assert.Empty(t, AvailableSlots(monday, "42", nil, business))
}

func TestAvailableSlots_StaffScheduleOverridesBusiness(t *testing.T) {
	staff := WeeklySchedule{"Monday": openDay("10:00", "12:00")}
	business := WeeklySchedule{"Monday": {IsOpen: false}}

	got := AvailableSlots(monday, "42", staff, business)
	assert.Equal(t, []string{"10:00", "10:30", "11:00", "11:30"}, got)
}

func TestAvailableSlots_ClosedOrAbsent(t *testing.T) {
	tests := []struct {
		name     string
		staffID  string
		staff    WeeklySchedule
		business WeeklySchedule
	}{
		{"agenda do salão ausente", AnyStaff, nil, nil},
		{"dia fechado no salão", AnyStaff, nil, WeeklySchedule{"Monday": {IsOpen: false}}},
		{"dia sem registro no salão", AnyStaff, nil, WeeklySchedule{"Tuesday": openDay("09:00", "17:00")}},
		{"dia fechado do profissional", "7", WeeklySchedule{"Monday": {IsOpen: false}}, WeeklySchedule{"Monday": openDay("09:00", "17:00")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, AvailableSlots(monday, tt.staffID, tt.staff, tt.business))
		})
	}
}

func TestAvailableSlots_InvertedRangeYieldsNothing(t *testing.T) {
	// intervalo invertido não é validado: apenas não produz slot
	business := WeeklySchedule{"Monday": openDay("17:00", "09:00")}
	assert.Empty(t, AvailableSlots(monday, AnyStaff, nil, business))
}

func TestAvailableSlots_IsSubsequenceOfGrid(t *testing.T) {
	business := WeeklySchedule{
		"Monday": openDay("08:00", "22:30",
			BreakWindow{MinuteOfDay("11:00"), MinuteOfDay("11:30")},
			BreakWindow{MinuteOfDay("15:00"), MinuteOfDay("16:00")},
		),
	}

	got := AvailableSlots(monday, AnyStaff, nil, business)
	require.NotEmpty(t, got)

	gi := 0
	for _, slot := range got {
		for gi < len(Grid) && Grid[gi] != slot {
			gi++
		}
		require.Less(t, gi, len(Grid), "slot %s fora de ordem ou fora da grade", slot)
		gi++
	}
}

func TestCategorizeRoundTrip(t *testing.T) {
	business := WeeklySchedule{
		"Monday": openDay("08:00", "22:30", BreakWindow{MinuteOfDay("13:00"), MinuteOfDay("14:00")}),
	}

	slots := AvailableSlots(monday, AnyStaff, nil, business)
	require.NotEmpty(t, slots)

	// manhã ++ tarde ++ noite reconstrói exatamente a lista filtrada
	assert.Equal(t, slots, Categorize(slots).All())
}

package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) Clock {
	return ClockFunc(func() time.Time { return t })
}

func TestWeekDaysContaining(t *testing.T) {
	// quarta-feira, 4 de março de 2026
	wednesday := time.Date(2026, 3, 4, 15, 30, 0, 0, time.UTC)

	week := WeekDaysContaining(wednesday)

	require.Len(t, week, 7)
	assert.Equal(t, time.Sunday, week[0].Weekday())
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), week[0])
	assert.Equal(t, time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC), week[6])

	for i := 1; i < 7; i++ {
		assert.Equal(t, week[i-1].AddDate(0, 0, 1), week[i])
	}
}

func TestWeekDaysContaining_SundayStaysFirst(t *testing.T) {
	sunday := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	week := WeekDaysContaining(sunday)
	assert.Equal(t, sunday, week[0])
}

func TestFormatWeekRange(t *testing.T) {
	week := WeekDaysContaining(time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "Mar 1 - Mar 7, 2026", FormatWeekRange(week))

	assert.Equal(t, "", FormatWeekRange(nil))
	assert.Equal(t, "", FormatWeekRange([]time.Time{}))
}

func TestShiftWeekForward(t *testing.T) {
	now := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)
	e := New(fixedClock(now))

	week := WeekDaysContaining(now)
	next := e.ShiftWeek(week, 1)

	assert.Equal(t, time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC), next[0])

	far := e.ShiftWeek(week, 10)
	assert.Equal(t, week[0].AddDate(0, 0, 70), far[0])
}

func TestShiftWeekBackwardClampsToPresent(t *testing.T) {
	now := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)
	e := New(fixedClock(now))

	current := WeekDaysContaining(now)

	// voltar a partir da semana atual não sai do presente
	assert.Equal(t, current, e.ShiftWeek(current, -1))

	// voltar da semana seguinte cai na semana de hoje
	next := e.ShiftWeek(current, 1)
	assert.Equal(t, current, e.ShiftWeek(next, -1))

	// no futuro distante o retrocesso é livre
	far := e.ShiftWeek(current, 5)
	back := e.ShiftWeek(far, -1)
	assert.Equal(t, current[0].AddDate(0, 0, 28), back[0])
}

func TestShiftWeekEmptyInput(t *testing.T) {
	now := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)
	e := New(fixedClock(now))

	assert.Equal(t, WeekDaysContaining(now), e.ShiftWeek(nil, -1))
}

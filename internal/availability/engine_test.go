package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsSlotPast(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 5, 0, 0, time.UTC) // segunda 10:05
	e := New(fixedClock(now))

	today := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	yesterday := today.AddDate(0, 0, -1)
	tomorrow := today.AddDate(0, 0, 1)

	assert.True(t, e.IsSlotPast("08:00", today))
	assert.True(t, e.IsSlotPast("10:00", today))
	assert.False(t, e.IsSlotPast("10:30", today))
	assert.False(t, e.IsSlotPast("22:00", today))

	// qualquer data que não seja hoje nunca é "passado"
	assert.False(t, e.IsSlotPast("08:00", yesterday))
	assert.False(t, e.IsSlotPast("08:00", tomorrow))
}

func TestIsSlotPast_AdvancesWithClock(t *testing.T) {
	today := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	before := New(fixedClock(today.Add(10*time.Hour + 29*time.Minute)))
	after := New(fixedClock(today.Add(10*time.Hour + 31*time.Minute)))

	assert.False(t, before.IsSlotPast("10:30", today))
	assert.True(t, after.IsSlotPast("10:30", today))
}

func TestIsDateBookable(t *testing.T) {
	now := time.Date(2026, 3, 4, 9, 0, 0, 0, time.UTC) // quarta
	e := New(fixedClock(now))

	today := dateOnly(now)
	openAll := WeeklySchedule{}
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		openAll[wd.String()] = openDay("09:00", "18:00")
	}

	t.Run("data passada nunca é agendável", func(t *testing.T) {
		assert.False(t, e.IsDateBookable(today.AddDate(0, 0, -1), AnyStaff, nil, openAll))
	})

	t.Run("salão fechado bloqueia", func(t *testing.T) {
		closed := WeeklySchedule{"Wednesday": {IsOpen: false}}
		assert.False(t, e.IsDateBookable(today, AnyStaff, nil, closed))
	})

	t.Run("profissional fechado bloqueia", func(t *testing.T) {
		staff := WeeklySchedule{"Wednesday": {IsOpen: false}}
		assert.False(t, e.IsDateBookable(today, "7", staff, openAll))
	})

	t.Run("dia ausente na agenda do profissional cai para o salão", func(t *testing.T) {
		staff := WeeklySchedule{"Monday": openDay("09:00", "18:00")}
		assert.True(t, e.IsDateBookable(today, "7", staff, openAll))

		closedBiz := WeeklySchedule{"Wednesday": {IsOpen: false}}
		assert.False(t, e.IsDateBookable(today, "7", staff, closedBiz))
	})

	t.Run("com AnyStaff a agenda do profissional é ignorada", func(t *testing.T) {
		staff := WeeklySchedule{"Wednesday": {IsOpen: false}}
		assert.True(t, e.IsDateBookable(today, AnyStaff, staff, openAll))
	})

	t.Run("fechado precisa ser afirmado, ausência não bloqueia", func(t *testing.T) {
		assert.True(t, e.IsDateBookable(today, AnyStaff, nil, nil))
	})
}

func TestAutoSelectDate(t *testing.T) {
	now := time.Date(2026, 3, 4, 9, 0, 0, 0, time.UTC) // quarta
	e := New(fixedClock(now))
	today := dateOnly(now)

	openAll := WeeklySchedule{}
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		openAll[wd.String()] = openDay("09:00", "18:00")
	}

	t.Run("hoje selecionado e agendável fica como está", func(t *testing.T) {
		assert.Equal(t, today, e.AutoSelectDate(today, AnyStaff, nil, openAll))
	})

	t.Run("seleção futura volta para hoje quando hoje é agendável", func(t *testing.T) {
		future := today.AddDate(0, 0, 10)
		assert.Equal(t, today, e.AutoSelectDate(future, AnyStaff, nil, openAll))
	})

	t.Run("varre até a primeira data agendável", func(t *testing.T) {
		// só sábado abre: quarta + 3 dias
		onlySaturday := WeeklySchedule{}
		for wd := time.Sunday; wd <= time.Saturday; wd++ {
			onlySaturday[wd.String()] = DaySchedule{IsOpen: false}
		}
		onlySaturday[time.Saturday.String()] = openDay("09:00", "18:00")

		got := e.AutoSelectDate(today, AnyStaff, nil, onlySaturday)
		assert.Equal(t, today.AddDate(0, 0, 3), got)
		assert.Equal(t, time.Saturday, got.Weekday())
	})

	t.Run("varredura mais longa possível numa agenda semanal", func(t *testing.T) {
		// hoje é quarta e só terça abre: a primeira data agendável é
		// quarta + 6, a maior distância que uma agenda semanal produz
		// (qualquer dia aberto repete em até 7 dias; mais fundo que
		// isso só existe o caso "nada em 30 dias" abaixo)
		onlyTuesday := WeeklySchedule{}
		for wd := time.Sunday; wd <= time.Saturday; wd++ {
			onlyTuesday[wd.String()] = DaySchedule{IsOpen: false}
		}
		onlyTuesday[time.Tuesday.String()] = openDay("09:00", "18:00")

		got := e.AutoSelectDate(today, AnyStaff, nil, onlyTuesday)
		assert.Equal(t, today.AddDate(0, 0, 6), got)
		assert.Equal(t, time.Tuesday, got.Weekday())
	})

	t.Run("nada agendável em 30 dias mantém a seleção", func(t *testing.T) {
		allClosed := WeeklySchedule{}
		for wd := time.Sunday; wd <= time.Saturday; wd++ {
			allClosed[wd.String()] = DaySchedule{IsOpen: false}
		}

		selected := today.AddDate(0, 0, 5)
		assert.Equal(t, selected, e.AutoSelectDate(selected, AnyStaff, nil, allClosed))
	})
}

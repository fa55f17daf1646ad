package availability

import "time"

// WeekDaysContaining devolve os 7 dias da semana que contém date,
// em ordem crescente, começando no domingo.
func WeekDaysContaining(date time.Time) []time.Time {
	d := dateOnly(date)
	start := d.AddDate(0, 0, -int(d.Weekday()))

	week := make([]time.Time, 7)
	for i := range week {
		week[i] = start.AddDate(0, 0, i)
	}
	return week
}

// FormatWeekRange monta o rótulo "Jan 2 - Jan 8, 2026" da semana.
// Semana vazia devolve "".
func FormatWeekRange(week []time.Time) string {
	if len(week) == 0 {
		return ""
	}
	first := week[0]
	last := week[len(week)-1]
	return first.Format("Jan 2") + " - " + last.Format("Jan 2, 2006")
}

// ShiftWeek desloca a semana em deltaWeeks semanas. Para trás o
// resultado é travado no presente: se o primeiro dia da semana
// deslocada cair antes de hoje, devolve a semana que contém hoje.
// Para frente não há limite.
func (e *Engine) ShiftWeek(week []time.Time, deltaWeeks int) []time.Time {
	today := dateOnly(e.clock.Now())
	if len(week) == 0 {
		return WeekDaysContaining(today)
	}

	shifted := WeekDaysContaining(week[0].AddDate(0, 0, deltaWeeks*7))
	if shifted[0].Before(today) {
		return WeekDaysContaining(today)
	}
	return shifted
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

package appointment

import (
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/availability"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// BuildWeeklySchedule converte as linhas de expediente vindas do banco
// ("HH:mm") na agenda semanal em minutos que o motor de
// disponibilidade consome. Lista vazia vira agenda nil ("ausente"),
// que o motor trata como fechado/sem horários.
func BuildWeeklySchedule(rows []models.WorkingHours) availability.WeeklySchedule {
	if len(rows) == 0 {
		return nil
	}

	schedule := availability.WeeklySchedule{}
	for _, row := range rows {
		if row.Weekday < 0 || row.Weekday > 6 {
			continue
		}

		day := availability.DaySchedule{
			IsOpen:      row.IsOpen,
			OpenMinute:  availability.MinuteOfDay(row.OpeningTime),
			CloseMinute: availability.MinuteOfDay(row.ClosingTime),
		}

		for _, b := range row.Breaks {
			day.Breaks = append(day.Breaks, availability.BreakWindow{
				StartMinute: availability.MinuteOfDay(b.StartTime),
				EndMinute:   availability.MinuteOfDay(b.EndTime),
			})
		}

		schedule[time.Weekday(row.Weekday).String()] = day
	}

	return schedule
}

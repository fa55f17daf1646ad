package appointment

import (
	"context"

	"github.com/BruksfildServices01/salon-scheduler/internal/availability"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
)

type GetWeek struct {
	repo domain.Repository
}

func NewGetWeek(repo domain.Repository) *GetWeek {
	return &GetWeek{repo: repo}
}

// Execute monta a faixa semanal do seletor de datas: os 7 dias da
// semana pedida (deslocada de ShiftWeeks, sem voltar para antes de
// hoje), o rótulo do intervalo e a flag de agendável por dia.
func (uc *GetWeek) Execute(
	ctx context.Context,
	in domain.WeekInput,
) (*dto.WeekDTO, error) {

	salon, err := uc.repo.GetSalonByID(ctx, in.SalonID)
	if err != nil {
		return nil, err
	}

	eng := engineFor(salon)

	staffSchedule, businessSchedule, err := loadSchedules(ctx, uc.repo, in.SalonID, in.StaffID)
	if err != nil {
		return nil, err
	}

	week := availability.WeekDaysContaining(in.Date)
	if in.ShiftWeeks != 0 {
		week = eng.ShiftWeek(week, in.ShiftWeeks)
	}

	days := make([]dto.WeekDayDTO, 0, len(week))
	for _, day := range week {
		days = append(days, dto.WeekDayDTO{
			Date:     day.Format("2006-01-02"),
			Weekday:  day.Weekday().String(),
			Bookable: eng.IsDateBookable(day, in.StaffID, staffSchedule, businessSchedule),
		})
	}

	return &dto.WeekDTO{
		Label: availability.FormatWeekRange(week),
		Days:  days,
	}, nil
}

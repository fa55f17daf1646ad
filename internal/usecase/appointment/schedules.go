package appointment

import (
	"context"
	"strconv"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/availability"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

// engineFor monta o motor de disponibilidade com o relógio no fuso do
// salão, para "hoje" e "passado" valerem onde o salão está.
func engineFor(salon *models.Salon) *availability.Engine {
	tz := salon.Timezone
	return availability.New(availability.ClockFunc(func() time.Time {
		return timezone.NowIn(tz)
	}))
}

// loadSchedules carrega as duas agendas que o motor consome: a do
// profissional escolhido (nil com AnyStaff ou sem expediente salvo) e
// a do salão.
func loadSchedules(
	ctx context.Context,
	repo domain.Repository,
	salonID uint,
	staffID string,
) (staff availability.WeeklySchedule, business availability.WeeklySchedule, err error) {

	if staffID != availability.AnyStaff {
		id, parseErr := strconv.ParseUint(staffID, 10, 64)
		if parseErr != nil {
			return nil, nil, httperr.ErrBusiness("invalid_staff")
		}

		if _, err := repo.GetStaff(ctx, salonID, uint(id)); err != nil {
			return nil, nil, httperr.ErrBusiness("staff_not_found")
		}

		uid := uint(id)
		rows, err := repo.ListWorkingHours(ctx, salonID, &uid)
		if err != nil {
			return nil, nil, err
		}
		staff = domain.BuildWeeklySchedule(rows)
	}

	rows, err := repo.ListWorkingHours(ctx, salonID, nil)
	if err != nil {
		return nil, nil, err
	}
	business = domain.BuildWeeklySchedule(rows)

	return staff, business, nil
}

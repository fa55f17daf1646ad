package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/availability"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
)

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

// Execute calcula os horários livres do dia: filtra a grade fixa pelo
// expediente da agenda autoritativa, particiona por faixa e marca os
// horários já passados. Agenda ausente degrada para lista vazia, nunca
// para erro.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) (*dto.AvailabilityDTO, error) {

	salon, err := uc.repo.GetSalonByID(ctx, in.SalonID)
	if err != nil {
		return nil, err
	}

	eng := engineFor(salon)

	staffSchedule, businessSchedule, err := loadSchedules(ctx, uc.repo, in.SalonID, in.StaffID)
	if err != nil {
		return nil, err
	}

	slots := availability.AvailableSlots(in.Date, in.StaffID, staffSchedule, businessSchedule)
	categorized := availability.Categorize(slots)

	suggested := eng.AutoSelectDate(in.Date, in.StaffID, staffSchedule, businessSchedule)

	return &dto.AvailabilityDTO{
		Date:          in.Date.Format("2006-01-02"),
		StaffID:       in.StaffID,
		Morning:       toSlotDTOs(eng, categorized.Morning, in.Date),
		Evening:       toSlotDTOs(eng, categorized.Evening, in.Date),
		Night:         toSlotDTOs(eng, categorized.Night, in.Date),
		SuggestedDate: suggested.Format("2006-01-02"),
	}, nil
}

func toSlotDTOs(eng *availability.Engine, slots []string, date time.Time) []dto.SlotDTO {
	out := make([]dto.SlotDTO, 0, len(slots))
	for _, slot := range slots {
		out = append(out, dto.SlotDTO{
			Time:     slot,
			Label:    availability.Format12Hour(slot),
			Category: string(availability.CategoryOf(slot)),
			Disabled: eng.IsSlotPast(slot, date),
		})
	}
	return out
}

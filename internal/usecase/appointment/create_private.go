package appointment

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/availability"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	SalonID uint
	StaffID uint

	// AnyStaff marca agendamento sem preferência de profissional: a
	// validação de expediente usa a agenda do salão, não a individual.
	// StaffID passa a ser só o profissional atribuído, usado no
	// conflito de horário e na gravação.
	AnyStaff bool

	ClientName  string
	ClientPhone string
	ClientEmail string

	ServiceID uint

	// appointment_date / appointment_time do payload de checkout
	Date  string // "YYYY-MM-DD"
	Time  string // "HH:mm", um slot da grade
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// Salão + data/hora no fuso do salão
	// --------------------------------------------------
	salon, err := uc.repo.GetSalonByID(ctx, in.SalonID)
	if err != nil {
		return nil, err
	}

	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		timezone.Location(salon.Timezone),
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	// --------------------------------------------------
	// O horário precisa ser um slot válido e disponível
	// --------------------------------------------------
	eng := engineFor(salon)

	staffKey := strconv.FormatUint(uint64(in.StaffID), 10)
	if in.AnyStaff {
		// o horário foi anunciado pela agenda do salão; validar com a
		// agenda individual do atribuído rejeitaria slots oferecidos
		staffKey = availability.AnyStaff
	}

	staffSchedule, businessSchedule, err := loadSchedules(ctx, uc.repo, in.SalonID, staffKey)
	if err != nil {
		return nil, err
	}

	if !eng.IsDateBookable(start, staffKey, staffSchedule, businessSchedule) {
		return nil, httperr.ErrBusiness("date_not_bookable")
	}

	if eng.IsSlotPast(in.Time, start) {
		return nil, httperr.ErrBusiness("slot_in_past")
	}

	if !containsSlot(availability.AvailableSlots(start, staffKey, staffSchedule, businessSchedule), in.Time) {
		return nil, httperr.ErrBusiness("outside_working_hours")
	}

	// --------------------------------------------------
	// Serviço
	// --------------------------------------------------
	service, err := uc.repo.GetService(ctx, in.SalonID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	end := start.Add(time.Duration(service.DurationMin) * time.Minute)

	// --------------------------------------------------
	// Cliente (get or create)
	// --------------------------------------------------
	client, err := uc.repo.GetOrCreateClient(
		ctx,
		in.SalonID,
		in.ClientName,
		in.ClientPhone,
		in.ClientEmail,
	)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Conflito de horário
	// --------------------------------------------------
	if err := uc.repo.AssertNoTimeConflict(
		ctx,
		in.StaffID,
		start,
		end,
	); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Criação do agendamento
	// --------------------------------------------------
	ap := &models.Appointment{
		PublicID:  uuid.NewString(),
		SalonID:   in.SalonID,
		StaffID:   in.StaffID,
		ClientID:  client.ID,
		ServiceID: service.ID,
		StartTime: start,
		EndTime:   end,
		Status:    string(domain.InitialStatus()),
		Notes:     in.Notes,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		SalonID:  in.SalonID,
		UserID:   &in.StaffID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

func containsSlot(slots []string, slot string) bool {
	for _, s := range slots {
		if s == slot {
			return true
		}
	}
	return false
}

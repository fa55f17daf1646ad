package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type Repository interface {
	// -------- Salon --------
	GetSalonByID(
		ctx context.Context,
		id uint,
	) (*models.Salon, error)

	GetSalonBySlug(
		ctx context.Context,
		slug string,
	) (*models.Salon, error)

	// -------- Service --------
	GetService(
		ctx context.Context,
		salonID uint,
		serviceID uint,
	) (*models.Service, error)

	// -------- Staff --------
	ListStaff(
		ctx context.Context,
		salonID uint,
	) ([]models.User, error)

	GetStaff(
		ctx context.Context,
		salonID uint,
		staffID uint,
	) (*models.User, error)

	// -------- Client --------
	GetOrCreateClient(
		ctx context.Context,
		salonID uint,
		name string,
		phone string,
		email string,
	) (*models.Client, error)

	// -------- Appointment (create / conflict) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	AssertNoTimeConflict(
		ctx context.Context,
		staffID uint,
		start time.Time,
		end time.Time,
	) error

	// -------- Appointment (state change) --------
	GetAppointmentForSalon(
		ctx context.Context,
		appointmentID uint,
		salonID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Working hours --------
	// staffID nulo devolve o expediente do salão; preenchido, o
	// expediente individual do profissional (com as pausas).
	ListWorkingHours(
		ctx context.Context,
		salonID uint,
		staffID *uint,
	) ([]models.WorkingHours, error)

	// -------- Listing --------
	ListAppointmentsForPeriod(
		ctx context.Context,
		salonID uint,
		staffID *uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)
}

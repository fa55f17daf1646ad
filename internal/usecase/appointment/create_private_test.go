package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/availability"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

func newCreateUC(repo *fakeRepo) *CreateAppointment {
	return NewCreateAppointment(repo, audit.NewDispatcher(audit.New(nil)))
}

func createInput(staffID uint, anyStaff bool, date, slot string) CreateAppointmentInput {
	return CreateAppointmentInput{
		SalonID:     1,
		StaffID:     staffID,
		AnyStaff:    anyStaff,
		ClientName:  "Ana",
		ClientPhone: "11999990000",
		ServiceID:   3,
		Date:        date,
		Time:        slot,
	}
}

func TestCreateAppointment(t *testing.T) {
	ctx := context.Background()
	date := futureDate(14)
	dateStr := date.Format("2006-01-02")

	t.Run("sem preferência vale a agenda do salão, não a do atribuído", func(t *testing.T) {
		// owner 7 não tem expediente próprio salvo; o horário foi
		// anunciado pela agenda do salão e precisa ser aceito
		repo := newFakeRepo()
		uc := newCreateUC(repo)

		ap, err := uc.Execute(ctx, createInput(7, true, dateStr, "09:00"))
		require.NoError(t, err)

		assert.Equal(t, uint(7), ap.StaffID)
		assert.NotEmpty(t, ap.PublicID)
		require.Len(t, repo.created, 1)
	})

	t.Run("horário anunciado na disponibilidade é aceito no agendamento", func(t *testing.T) {
		repo := newFakeRepo()

		avail, err := NewGetAvailability(repo).Execute(ctx, availabilityInput(1, availability.AnyStaff, date))
		require.NoError(t, err)
		require.NotEmpty(t, avail.Morning)

		first := avail.Morning[0]
		require.False(t, first.Disabled)

		_, err = newCreateUC(repo).Execute(ctx, createInput(7, true, avail.Date, first.Time))
		assert.NoError(t, err)
	})

	t.Run("profissional escolhido sem expediente próprio é recusado", func(t *testing.T) {
		repo := newFakeRepo()
		uc := newCreateUC(repo)

		_, err := uc.Execute(ctx, createInput(7, false, dateStr, "09:00"))
		assert.True(t, httperr.IsBusiness(err, "outside_working_hours"))
		assert.Empty(t, repo.created)
	})

	t.Run("fora do expediente do salão é recusado mesmo sem preferência", func(t *testing.T) {
		repo := newFakeRepo()
		uc := newCreateUC(repo)

		_, err := uc.Execute(ctx, createInput(7, true, dateStr, "08:00"))
		assert.True(t, httperr.IsBusiness(err, "outside_working_hours"))
	})

	t.Run("data ou horário malformados", func(t *testing.T) {
		repo := newFakeRepo()
		uc := newCreateUC(repo)

		_, err := uc.Execute(ctx, createInput(7, true, "14/03/2026", "09:00"))
		assert.True(t, httperr.IsBusiness(err, "invalid_date_or_time"))
	})
}

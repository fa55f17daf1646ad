package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/cache"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC      *appointment.CreateAppointment
	completeUC    *appointment.CompleteAppointment
	cancelUC      *appointment.CancelAppointment
	listByDateUC  *appointment.ListAppointmentsByDate
	listByMonthUC *appointment.ListAppointmentsByMonth

	cache *cache.AvailabilityCache
}

func NewAppointmentHandler(
	createUC *appointment.CreateAppointment,
	completeUC *appointment.CompleteAppointment,
	cancelUC *appointment.CancelAppointment,
	listByDateUC *appointment.ListAppointmentsByDate,
	listByMonthUC *appointment.ListAppointmentsByMonth,
	availCache *cache.AvailabilityCache,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:      createUC,
		completeUC:    completeUC,
		cancelUC:      cancelUC,
		listByDateUC:  listByDateUC,
		listByMonthUC: listByMonthUC,
		cache:         availCache,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	StaffID uint `json:"staff_id"`

	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	ClientEmail string `json:"client_email"`

	ServiceID uint `json:"service_id" binding:"required"`

	Date  string `json:"appointment_date" binding:"required"` // YYYY-MM-DD
	Time  string `json:"appointment_time" binding:"required"` // HH:mm
	Notes string `json:"notes"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	staffID := req.StaffID
	if staffID == 0 {
		// sem profissional no payload o agendamento cai no próprio usuário
		staffID = userID
	}

	ap, err := h.createUC.Execute(
		c.Request.Context(),
		appointment.CreateAppointmentInput{
			SalonID:     salonID,
			StaffID:     staffID,
			ClientName:  req.ClientName,
			ClientPhone: req.ClientPhone,
			ClientEmail: req.ClientEmail,
			ServiceID:   req.ServiceID,
			Date:        req.Date,
			Time:        req.Time,
			Notes:       req.Notes,
		},
	)
	if err != nil {
		mapCreateErrors(c, err)
		return
	}

	h.cache.Invalidate(c.Request.Context(), salonID)

	c.JSON(http.StatusCreated, ap)
}

// ======================================================
// LIST BY DATE
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	date, err := parseDateInSalon(nil, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	staffID, ok := staffScope(c)
	if !ok {
		httperr.BadRequest(c, "invalid_staff_id", "Profissional inválido.")
		return
	}

	list, err := h.listByDateUC.Execute(c.Request.Context(), salonID, staffID, date)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, list)
}

// ======================================================
// LIST BY MONTH
// ======================================================

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	year, errY := strconv.Atoi(c.Query("year"))
	month, errM := strconv.Atoi(c.Query("month"))
	if errY != nil || errM != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Ano/mês inválidos.")
		return
	}

	staffID, ok := staffScope(c)
	if !ok {
		httperr.BadRequest(c, "invalid_staff_id", "Profissional inválido.")
		return
	}

	list, err := h.listByMonthUC.Execute(c.Request.Context(), salonID, staffID, year, month)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, list)
}

// ======================================================
// CANCEL / COMPLETE
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	ap, err := h.cancelUC.Execute(c.Request.Context(), salonID, userID, uint(id))
	if err != nil {
		mapLifecycleErrors(c, err)
		return
	}

	h.cache.Invalidate(c.Request.Context(), salonID)

	c.JSON(http.StatusOK, ap)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	ap, err := h.completeUC.Execute(c.Request.Context(), salonID, userID, uint(id))
	if err != nil {
		mapLifecycleErrors(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// ERROR MAPPING
// ======================================================

func mapCreateErrors(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "invalid_date_or_time"):
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou horário inválidos.")
	case httperr.IsBusiness(err, "invalid_staff"):
		httperr.BadRequest(c, "invalid_staff", "Profissional inválido.")
	case httperr.IsBusiness(err, "staff_not_found"):
		httperr.BadRequest(c, "staff_not_found", "Profissional não encontrado.")
	case httperr.IsBusiness(err, "date_not_bookable"):
		httperr.BadRequest(c, "date_not_bookable", "Não há expediente nesta data.")
	case httperr.IsBusiness(err, "slot_in_past"):
		httperr.BadRequest(c, "slot_in_past", "Este horário já passou.")
	case httperr.IsBusiness(err, "outside_working_hours"):
		httperr.BadRequest(c, "outside_working_hours", "Horário fora do expediente.")
	case httperr.IsBusiness(err, "service_not_found"):
		httperr.BadRequest(c, "service_not_found", "Serviço inválido.")
	case httperr.IsBusiness(err, "time_conflict"):
		httperr.Conflict(c, "time_conflict", "Já existe agendamento neste horário.")
	default:
		httperr.Internal(c, "failed_to_create_appointment", "Erro ao criar agendamento.")
	}
}

func mapLifecycleErrors(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "appointment_not_found"):
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
	case httperr.IsBusiness(err, "invalid_state"):
		httperr.BadRequest(c, "invalid_state", "Agendamento não permite esta transição.")
	default:
		httperr.Internal(c, "failed_to_update_appointment", "Erro ao atualizar agendamento.")
	}
}

package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/availability"
	"github.com/BruksfildServices01/salon-scheduler/internal/cache"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	infraRepo "github.com/BruksfildServices01/salon-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/usecase/appointment"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	db    *gorm.DB
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.AvailabilityCache
}

func NewPublicHandler(db *gorm.DB, dispatcher *audit.Dispatcher, availCache *cache.AvailabilityCache) *PublicHandler {
	return &PublicHandler{
		db:    db,
		repo:  infraRepo.NewAppointmentGormRepository(db),
		audit: dispatcher,
		cache: availCache,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type PublicCreateAppointmentRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	ClientEmail string `json:"client_email"`
	ServiceID   uint   `json:"service_id" binding:"required"`
	StaffID     string `json:"staff_id"`                // numérico ou "anyone"
	Date        string `json:"appointment_date" binding:"required"` // YYYY-MM-DD
	Time        string `json:"appointment_time" binding:"required"` // HH:mm
	Notes       string `json:"notes"`
}

func (h *PublicHandler) salonBySlug(c *gin.Context) (*models.Salon, bool) {
	salon, err := h.repo.GetSalonBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		httperr.NotFound(c, "salon_not_found", "Salão não encontrado.")
		return nil, false
	}
	return salon, true
}

////////////////////////////////////////////////////////
// SERVICES
////////////////////////////////////////////////////////

func (h *PublicHandler) ListServices(c *gin.Context) {
	salon, ok := h.salonBySlug(c)
	if !ok {
		return
	}

	category := strings.TrimSpace(strings.ToLower(c.Query("category")))
	query := strings.TrimSpace(strings.ToLower(c.Query("query")))

	q := h.db.
		Where("salon_id = ? AND active = true", salon.ID)

	if category != "" {
		q = q.Where("LOWER(category) = ?", category)
	}

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var services []models.Service
	if err := q.Order("id ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"salon":    salon,
		"services": services,
	})
}

////////////////////////////////////////////////////////
// STAFF
////////////////////////////////////////////////////////

func (h *PublicHandler) ListStaff(c *gin.Context) {
	salon, ok := h.salonBySlug(c)
	if !ok {
		return
	}

	staff, err := h.repo.ListStaff(c.Request.Context(), salon.ID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_staff", "Erro ao listar profissionais.")
		return
	}

	out := make([]gin.H, 0, len(staff)+1)

	// opção "qualquer profissional" sempre em primeiro
	out = append(out, gin.H{
		"id":   availability.AnyStaff,
		"name": "Qualquer profissional",
	})

	for _, u := range staff {
		out = append(out, gin.H{
			"id":   strconv.FormatUint(uint64(u.ID), 10),
			"name": u.Name,
		})
	}

	c.JSON(http.StatusOK, out)
}

////////////////////////////////////////////////////////
// AVAILABILITY (REUSO TOTAL DO USE CASE)
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	staffID := strings.TrimSpace(c.Query("staff_id"))
	if staffID == "" {
		staffID = availability.AnyStaff
	}

	salon, ok := h.salonBySlug(c)
	if !ok {
		return
	}

	date, err := parseDateInSalon(salon, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	// o estado "disabled" dos horários de hoje avança junto com o
	// relógio, então a resposta de hoje nunca passa pelo cache
	cacheable := !isTodayInSalon(salon, date)

	if cacheable {
		if payload, hit := h.cache.Get(c.Request.Context(), salon.ID, staffID, dateStr); hit {
			c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(payload))
			return
		}
	}

	uc := appointment.NewGetAvailability(h.repo)

	result, err := uc.Execute(
		c.Request.Context(),
		domain.AvailabilityInput{
			SalonID: salon.ID,
			StaffID: staffID,
			Date:    date,
		},
	)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_staff") || httperr.IsBusiness(err, "staff_not_found") {
			httperr.BadRequest(c, "invalid_staff", "Profissional inválido.")
			return
		}

		httperr.Internal(c, "availability_failed", "Erro ao calcular horários.")
		return
	}

	if cacheable {
		if body, err := json.Marshal(result); err == nil {
			h.cache.Set(c.Request.Context(), salon.ID, staffID, dateStr, string(body))
		}
	}

	c.JSON(http.StatusOK, result)
}

////////////////////////////////////////////////////////
// WEEK STRIP (SELETOR DE DATAS)
////////////////////////////////////////////////////////

func (h *PublicHandler) Week(c *gin.Context) {
	salon, ok := h.salonBySlug(c)
	if !ok {
		return
	}

	staffID := strings.TrimSpace(c.Query("staff_id"))
	if staffID == "" {
		staffID = availability.AnyStaff
	}

	dateStr := c.Query("date")
	date := nowInSalon(salon)
	if dateStr != "" {
		parsed, err := parseDateInSalon(salon, dateStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
			return
		}
		date = parsed
	}

	shiftWeeks := 0
	if raw := c.Query("shift"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			httperr.BadRequest(c, "invalid_shift", "Deslocamento inválido.")
			return
		}
		shiftWeeks = parsed
	}

	uc := appointment.NewGetWeek(h.repo)

	result, err := uc.Execute(
		c.Request.Context(),
		domain.WeekInput{
			SalonID:    salon.ID,
			StaffID:    staffID,
			Date:       date,
			ShiftWeeks: shiftWeeks,
		},
	)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_staff") || httperr.IsBusiness(err, "staff_not_found") {
			httperr.BadRequest(c, "invalid_staff", "Profissional inválido.")
			return
		}

		httperr.Internal(c, "week_failed", "Erro ao montar a semana.")
		return
	}

	c.JSON(http.StatusOK, result)
}

////////////////////////////////////////////////////////
// CREATE APPOINTMENT (PUBLIC → REUSA PRIVATE)
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	salon, ok := h.salonBySlug(c)
	if !ok {
		return
	}

	var req PublicCreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	staffID, anyStaff, ok := h.resolveStaff(c, salon, req.StaffID)
	if !ok {
		return
	}

	uc := appointment.NewCreateAppointment(h.repo, h.audit)

	ap, err := uc.Execute(
		c.Request.Context(),
		appointment.CreateAppointmentInput{
			SalonID:     salon.ID,
			StaffID:     staffID,
			AnyStaff:    anyStaff,
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

	h.cache.Invalidate(c.Request.Context(), salon.ID)

	c.JSON(http.StatusCreated, ap)
}

// resolveStaff traduz o staff_id do payload público para o
// profissional atribuído. "anyone" (ou vazio) cai no owner do salão,
// mas o segundo retorno preserva a escolha original: sem preferência a
// validação de expediente continua sendo a do salão.
func (h *PublicHandler) resolveStaff(c *gin.Context, salon *models.Salon, raw string) (staffID uint, anyStaff bool, ok bool) {
	raw = strings.TrimSpace(raw)

	if raw == "" || raw == availability.AnyStaff {
		var owner models.User
		if err := h.db.
			Where("salon_id = ? AND role = ?", salon.ID, "owner").
			First(&owner).Error; err != nil {

			httperr.BadRequest(c, "staff_not_found", "Profissional não encontrado.")
			return 0, false, false
		}
		return owner.ID, true, true
	}

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_staff", "Profissional inválido.")
		return 0, false, false
	}

	var count int64
	h.db.Model(&models.User{}).
		Where("id = ? AND salon_id = ?", id, salon.ID).
		Count(&count)
	if count == 0 {
		httperr.BadRequest(c, "staff_not_found", "Profissional não encontrado.")
		return 0, false, false
	}

	return uint(id), false, true
}

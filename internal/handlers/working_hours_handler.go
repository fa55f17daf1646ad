package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/availability"
	"github.com/BruksfildServices01/salon-scheduler/internal/cache"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type WorkingHoursHandler struct {
	db    *gorm.DB
	cache *cache.AvailabilityCache
}

func NewWorkingHoursHandler(db *gorm.DB, availCache *cache.AvailabilityCache) *WorkingHoursHandler {
	return &WorkingHoursHandler{db: db, cache: availCache}
}

type BreakConfig struct {
	Start string `json:"start" binding:"required"`
	End   string `json:"end" binding:"required"`
}

type WorkingDayConfig struct {
	Weekday     int           `json:"weekday" binding:"min=0,max=6"`
	IsOpen      bool          `json:"is_open"`
	OpeningTime string        `json:"opening_time"`
	ClosingTime string        `json:"closing_time"`
	BreakHours  []BreakConfig `json:"break_hours"`
}

type WorkingHoursUpdateRequest struct {
	Days []WorkingDayConfig `json:"days" binding:"required"`
}

// staffScope lê o query param opcional staff_id.
// Sem o param o escopo é o horário do salão (staff_id NULL).
func staffScope(c *gin.Context) (*uint, bool) {
	raw := c.Query("staff_id")
	if raw == "" {
		return nil, true
	}

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, false
	}

	staffID := uint(id)
	return &staffID, true
}

func (h *WorkingHoursHandler) Get(c *gin.Context) {
	salonIDVal, _ := c.Get(middleware.ContextSalonID)
	salonID := salonIDVal.(uint)

	staffID, ok := staffScope(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_staff_id"})
		return
	}

	q := h.db.Where("salon_id = ?", salonID)
	if staffID == nil {
		q = q.Where("staff_id IS NULL")
	} else {
		q = q.Where("staff_id = ?", *staffID)
	}

	var hours []models.WorkingHours
	if err := q.
		Preload("Breaks").
		Order("weekday ASC").
		Find(&hours).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_working_hours"})
		return
	}

	c.JSON(http.StatusOK, hours)
}

func (h *WorkingHoursHandler) Update(c *gin.Context) {
	salonIDVal, _ := c.Get(middleware.ContextSalonID)
	salonID := salonIDVal.(uint)

	staffID, ok := staffScope(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_staff_id"})
		return
	}

	if staffID != nil {
		var count int64
		h.db.Model(&models.User{}).
			Where("id = ? AND salon_id = ?", *staffID, salonID).
			Count(&count)
		if count == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "staff_not_found"})
			return
		}
	}

	var req WorkingHoursUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	for _, d := range req.Days {
		if !d.IsOpen {
			continue
		}
		if availability.MinuteOfDay(d.OpeningTime) < 0 || availability.MinuteOfDay(d.ClosingTime) < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_time_format"})
			return
		}
		for _, b := range d.BreakHours {
			if availability.MinuteOfDay(b.Start) < 0 || availability.MinuteOfDay(b.End) < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_time_format"})
				return
			}
		}
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		q := tx.Where("salon_id = ?", salonID)
		if staffID == nil {
			q = q.Where("staff_id IS NULL")
		} else {
			q = q.Where("staff_id = ?", *staffID)
		}

		var existing []models.WorkingHours
		if err := q.Find(&existing).Error; err != nil {
			return err
		}

		for _, wh := range existing {
			if err := tx.Where("working_hours_id = ?", wh.ID).Delete(&models.BreakHour{}).Error; err != nil {
				return err
			}
		}

		if len(existing) > 0 {
			if err := tx.Delete(&existing).Error; err != nil {
				return err
			}
		}

		for _, d := range req.Days {
			wh := models.WorkingHours{
				SalonID:     salonID,
				StaffID:     staffID,
				Weekday:     d.Weekday,
				IsOpen:      d.IsOpen,
				OpeningTime: d.OpeningTime,
				ClosingTime: d.ClosingTime,
			}
			for _, b := range d.BreakHours {
				wh.Breaks = append(wh.Breaks, models.BreakHour{
					StartTime: b.Start,
					EndTime:   b.End,
				})
			}
			if err := tx.Create(&wh).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_save_working_hours"})
		return
	}

	h.cache.Invalidate(c.Request.Context(), salonID)

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

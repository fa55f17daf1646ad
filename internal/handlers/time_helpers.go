package handlers

import (
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

// --------------------------------------------------
// Timezone centralizado por salão
// --------------------------------------------------

// resolve o timezone oficial do salão
func locationFromSalon(salon *models.Salon) *time.Location {
	if salon != nil {
		return timezone.Location(salon.Timezone)
	}
	return timezone.Location(timezone.DefaultTimezone)
}

func nowInSalon(salon *models.Salon) time.Time {
	return time.Now().In(locationFromSalon(salon))
}

func parseDateInSalon(salon *models.Salon, dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		locationFromSalon(salon),
	)
}

// isTodayInSalon diz se date cai no dia de hoje, no fuso do salão.
func isTodayInSalon(salon *models.Salon, date time.Time) bool {
	now := nowInSalon(salon)
	d := date.In(locationFromSalon(salon))
	return d.Year() == now.Year() && d.YearDay() == now.YearDay()
}

package models

import "time"

// WorkingHours guarda o expediente de um dia da semana.
// StaffID nulo = horário do salão; preenchido = horário individual do
// profissional, que substitui o do salão por inteiro (sem mesclar).
type WorkingHours struct {
	ID      uint  `gorm:"primaryKey" json:"id"`
	SalonID uint  `gorm:"index" json:"salon_id"`
	StaffID *uint `gorm:"index" json:"staff_id"`

	Weekday int `json:"weekday"` // 0 = domingo .. 6 = sábado

	IsOpen      bool   `json:"is_open"`
	OpeningTime string `gorm:"size:5" json:"opening_time"` // "HH:mm"
	ClosingTime string `gorm:"size:5" json:"closing_time"`

	Breaks []BreakHour `gorm:"constraint:OnDelete:CASCADE;" json:"break_hours"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type BreakHour struct {
	ID             uint `gorm:"primaryKey" json:"id"`
	WorkingHoursID uint `gorm:"index" json:"working_hours_id"`

	StartTime string `gorm:"size:5" json:"start"` // "HH:mm"
	EndTime   string `gorm:"size:5" json:"end"`
}

package appointment

import "time"

// AvailabilityInput identifica a consulta de horários livres.
// StaffID é o id numérico do profissional como string, ou o sentinela
// availability.AnyStaff quando o cliente não escolheu ninguém.
type AvailabilityInput struct {
	SalonID uint
	StaffID string
	Date    time.Time
}

// WeekInput identifica a consulta da faixa semanal do seletor de datas.
type WeekInput struct {
	SalonID    uint
	StaffID    string
	Date       time.Time
	ShiftWeeks int
}

package availability

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	gridStartMinute = 8 * 60  // 08:00
	gridEndMinute   = 22 * 60 // 22:00

	// SlotStepMinutes é o espaçamento fixo da grade.
	SlotStepMinutes = 30
)

// Grid é a grade fixa de horários candidatos exibida ao cliente:
// "08:00" até "22:00" de 30 em 30 minutos (29 horários). Montada uma
// vez e nunca alterada.
var Grid = buildGrid()

func buildGrid() []string {
	var grid []string
	for m := gridStartMinute; m <= gridEndMinute; m += SlotStepMinutes {
		grid = append(grid, FormatMinute(m))
	}
	return grid
}

// FormatMinute converte minutos desde a meia-noite em "HH:mm".
func FormatMinute(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// MinuteOfDay converte "HH:mm" em minutos desde a meia-noite.
// Retorna -1 para entrada malformada.
func MinuteOfDay(slot string) int {
	parts := strings.SplitN(slot, ":", 2)
	if len(parts) != 2 {
		return -1
	}
	h, errH := strconv.Atoi(parts[0])
	m, errM := strconv.Atoi(parts[1])
	if errH != nil || errM != nil || h < 0 || h > 23 || m < 0 || m > 59 {
		return -1
	}
	return h*60 + m
}

// Format12Hour converte "14:30" em "2:30 PM" para exibição.
func Format12Hour(slot string) string {
	m := MinuteOfDay(slot)
	if m < 0 {
		return slot
	}
	t := time.Date(0, 1, 1, m/60, m%60, 0, 0, time.UTC)
	return t.Format("3:04 PM")
}

// AvailableSlots calcula o subconjunto da grade que cabe no expediente
// do dia, já descontando pausas. A ordem da grade é preservada.
//
// Se um profissional específico foi escolhido (staffID != AnyStaff) a
// agenda dele é obrigatória: agenda nil significa nenhum horário, sem
// cair para a agenda do salão. Com AnyStaff vale a agenda do salão.
func AvailableSlots(date time.Time, staffID string, staffSchedule, businessSchedule WeeklySchedule) []string {
	authoritative := businessSchedule
	if staffID != AnyStaff {
		authoritative = staffSchedule
	}
	if authoritative == nil {
		return nil
	}

	day, ok := ResolveDayHours(authoritative, date)
	if !ok || !day.IsOpen {
		return nil
	}

	var out []string
	for _, slot := range Grid {
		m := MinuteOfDay(slot)
		if m < day.OpenMinute || m >= day.CloseMinute {
			continue
		}
		if inBreak(day.Breaks, m) {
			continue
		}
		out = append(out, slot)
	}
	return out
}

func inBreak(breaks []BreakWindow, minute int) bool {
	for _, b := range breaks {
		if minute >= b.StartMinute && minute < b.EndMinute {
			return true
		}
	}
	return false
}

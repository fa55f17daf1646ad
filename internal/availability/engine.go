package availability

import "time"

// autoSelectHorizonDays limita a varredura de auto-seleção de data:
// no pior caso hoje + 30 dias são testados.
const autoSelectHorizonDays = 30

// IsSlotPast informa se um horário já passou. Só devolve true quando
// date é o dia de hoje e o instante "hoje às HH:mm" é estritamente
// anterior ao agora. Avaliado a cada chamada, sem cache, para o
// estado desabilitado avançar junto com o relógio.
func (e *Engine) IsSlotPast(slot string, date time.Time) bool {
	now := e.clock.Now()
	if !sameDay(date, now) {
		return false
	}
	m := MinuteOfDay(slot)
	if m < 0 {
		return false
	}
	at := time.Date(now.Year(), now.Month(), now.Day(), m/60, m%60, 0, 0, now.Location())
	return at.Before(now)
}

// IsDateBookable informa se uma data pode receber agendamento.
//
// Datas passadas nunca são agendáveis, independente de agenda. Com um
// profissional escolhido, o fechamento explícito na agenda dele
// bloqueia a data; dia ausente na agenda do profissional NÃO bloqueia
// e cai para a checagem do salão. Fechamento precisa ser afirmado, a
// ausência de expediente não implica fechado aqui (diferente de
// AvailableSlots, onde agenda ausente zera os horários; os dois
// comportamentos são intencionais e mantidos separados).
func (e *Engine) IsDateBookable(date time.Time, staffID string, staffSchedule, businessSchedule WeeklySchedule) bool {
	today := dateOnly(e.clock.Now())
	if dateOnly(date).Before(today) {
		return false
	}

	if staffID != AnyStaff {
		if day, ok := ResolveDayHours(staffSchedule, date); ok && !day.IsOpen {
			return false
		}
	}

	if day, ok := ResolveDayHours(businessSchedule, date); ok && !day.IsOpen {
		return false
	}

	return true
}

// AutoSelectDate escolhe a data inicial do seletor quando agenda ou
// profissional mudam: mantém a seleção se ela é hoje e agendável,
// senão tenta hoje, senão varre hoje+1..hoje+30 e fica com a primeira
// data agendável. Sem data agendável no horizonte a seleção atual é
// mantida, sem erro.
func (e *Engine) AutoSelectDate(selected time.Time, staffID string, staffSchedule, businessSchedule WeeklySchedule) time.Time {
	today := dateOnly(e.clock.Now())

	if sameDay(selected, today) && e.IsDateBookable(selected, staffID, staffSchedule, businessSchedule) {
		return selected
	}

	if e.IsDateBookable(today, staffID, staffSchedule, businessSchedule) {
		return today
	}

	for i := 1; i <= autoSelectHorizonDays; i++ {
		d := today.AddDate(0, 0, i)
		if e.IsDateBookable(d, staffID, staffSchedule, businessSchedule) {
			return d
		}
	}

	return selected
}

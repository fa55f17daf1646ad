package availability

import "time"

// AnyStaff é o valor sentinela usado quando o cliente não escolhe
// um profissional específico.
const AnyStaff = "anyone"

// BreakWindow é uma pausa dentro do expediente, em minutos desde a
// meia-noite, intervalo meio-aberto [StartMinute, EndMinute).
type BreakWindow struct {
	StartMinute int
	EndMinute   int
}

// DaySchedule é o expediente de um dia da semana.
//
// Quando IsOpen é true espera-se CloseMinute > OpenMinute e pausas
// contidas no expediente; esses invariantes NÃO são validados aqui,
// são responsabilidade de quem monta a agenda. Intervalos invertidos
// simplesmente não produzem slot nenhum.
type DaySchedule struct {
	IsOpen      bool
	OpenMinute  int
	CloseMinute int
	Breaks      []BreakWindow
}

// WeeklySchedule mapeia o nome do dia da semana em inglês
// ("Sunday".."Saturday") para o expediente daquele dia.
// Um mapa nil representa agenda ausente (ainda não carregada).
type WeeklySchedule map[string]DaySchedule

// ResolveDayHours devolve o expediente do dia da semana de date.
// O segundo retorno é false se a agenda é nil ou não tem o dia.
func ResolveDayHours(schedule WeeklySchedule, date time.Time) (DaySchedule, bool) {
	if schedule == nil {
		return DaySchedule{}, false
	}
	day, ok := schedule[date.Weekday().String()]
	return day, ok
}

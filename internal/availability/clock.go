package availability

import "time"

// Clock abstrai o "agora" para que os cálculos de passado/futuro
// sejam determinísticos em testes.
type Clock interface {
	Now() time.Time
}

type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Engine agrupa as operações que dependem do relógio.
// As funções puras (filtro de slots, categorias, semana) são
// funções de pacote.
type Engine struct {
	clock Clock
}

func New(clock Clock) *Engine {
	if clock == nil {
		clock = systemClock{}
	}
	return &Engine{clock: clock}
}

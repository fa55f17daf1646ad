package availability

// Category é a faixa do dia em que um horário cai.
type Category string

const (
	CategoryMorning Category = "morning"
	CategoryEvening Category = "evening"
	CategoryNight   Category = "night"
)

// CategoryOf classifica um horário pela hora: [6,12) manhã,
// [12,18) tarde e o resto noite. Horas antes das 6h caem em noite;
// a grade fixa começa às 08:00, mas o ramo fica correto caso a grade
// mude.
func CategoryOf(slot string) Category {
	hour := MinuteOfDay(slot) / 60
	switch {
	case hour >= 6 && hour < 12:
		return CategoryMorning
	case hour >= 12 && hour < 18:
		return CategoryEvening
	default:
		return CategoryNight
	}
}

// CategorizedSlots são os horários disponíveis particionados por faixa,
// cada fatia na ordem original da grade.
type CategorizedSlots struct {
	Morning []string
	Evening []string
	Night   []string
}

// Categorize particiona slots em uma única passada, preservando a
// ordem de entrada dentro de cada faixa.
func Categorize(slots []string) CategorizedSlots {
	var c CategorizedSlots
	for _, slot := range slots {
		switch CategoryOf(slot) {
		case CategoryMorning:
			c.Morning = append(c.Morning, slot)
		case CategoryEvening:
			c.Evening = append(c.Evening, slot)
		default:
			c.Night = append(c.Night, slot)
		}
	}
	return c
}

// All devolve manhã ++ tarde ++ noite, a ordem usada pelo scroll
// horizontal unificado do seletor.
func (c CategorizedSlots) All() []string {
	out := make([]string, 0, len(c.Morning)+len(c.Evening)+len(c.Night))
	out = append(out, c.Morning...)
	out = append(out, c.Evening...)
	out = append(out, c.Night...)
	return out
}

// StartOffset devolve o índice em All() onde a faixa começa,
// usado para rolar o seletor até a categoria escolhida.
func (c CategorizedSlots) StartOffset(cat Category) int {
	switch cat {
	case CategoryMorning:
		return 0
	case CategoryEvening:
		return len(c.Morning)
	default:
		return len(c.Morning) + len(c.Evening)
	}
}

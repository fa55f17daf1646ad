package dto

// SlotDTO é um horário da grade já classificado, com o estado
// desabilitado calculado na hora da resposta.
type SlotDTO struct {
	Time     string `json:"time"`  // "HH:mm"
	Label    string `json:"label"` // "2:30 PM"
	Category string `json:"category"`
	Disabled bool   `json:"disabled"`
}

type AvailabilityDTO struct {
	Date    string `json:"date"` // "YYYY-MM-DD"
	StaffID string `json:"staff_id"`

	Morning []SlotDTO `json:"morning"`
	Evening []SlotDTO `json:"evening"`
	Night   []SlotDTO `json:"night"`

	// primeira data agendável no horizonte de 30 dias; igual a Date
	// quando a seleção atual já serve
	SuggestedDate string `json:"suggested_date"`
}

type WeekDayDTO struct {
	Date     string `json:"date"`
	Weekday  string `json:"weekday"`
	Bookable bool   `json:"bookable"`
}

type WeekDTO struct {
	Label string       `json:"label"` // "Mar 1 - Mar 7, 2026"
	Days  []WeekDayDTO `json:"days"`
}

package availability

import "time"

// Selection é o estado transitório da tela de agendamento. O motor
// não guarda nada disso; quem chama é dono do estado e o recria a
// cada fluxo de checkout.
type Selection struct {
	Date     time.Time
	StaffID  string
	TimeSlot string // "" = nenhum horário escolhido
	Category Category
}

// NewSelection começa com "qualquer profissional", faixa manhã e
// nenhum horário escolhido.
func NewSelection(date time.Time) Selection {
	return Selection{
		Date:     date,
		StaffID:  AnyStaff,
		Category: CategoryMorning,
	}
}

// SetStaff troca o profissional e descarta o horário escolhido:
// a disponibilidade depende do profissional, então o slot anterior
// pode não valer mais.
func (s *Selection) SetStaff(staffID string) {
	if staffID == s.StaffID {
		return
	}
	s.StaffID = staffID
	s.TimeSlot = ""
}

func (s *Selection) SetDate(date time.Time) {
	s.Date = date
}

// SelectSlot registra a escolha do usuário e alinha a categoria à
// faixa do horário. Validar se o slot está habilitado é papel de quem
// chama, antes de chegar aqui.
func (s *Selection) SelectSlot(slot string) {
	s.TimeSlot = slot
	s.Category = CategoryOf(slot)
}

func (s *Selection) SetCategory(cat Category) {
	s.Category = cat
}

// HasSlot informa se já existe horário escolhido. A confirmação do
// agendamento é uma ação externa que lê a seleção e falha a validação
// quando ainda não há horário.
func (s *Selection) HasSlot() bool {
	return s.TimeSlot != ""
}

// SubmissionDate é o campo appointment_date do payload de criação.
func (s *Selection) SubmissionDate() string {
	return s.Date.Format("2006-01-02")
}

// SubmissionTime é o campo appointment_time do payload de criação.
func (s *Selection) SubmissionTime() string {
	return s.TimeSlot
}

package httperr

import "errors"

// BusinessError é uma falha de regra de agendamento identificada por
// um código estável ("time_conflict", "slot_in_past", ...). Os use
// cases devolvem o código e a borda HTTP decide status e mensagem.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

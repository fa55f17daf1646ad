package timezone

import "time"

// DefaultTimezone é o fuso assumido para salão sem fuso configurado
// (e para linhas antigas, preenchidas na migração).
const DefaultTimezone = "America/Sao_Paulo"

// IsValid aceita qualquer nome IANA carregável ("America/Manaus").
func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// Location devolve o *time.Location do salão, caindo no padrão para
// valores vazios ou inválidos. Nunca devolve nil.
func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func Now() time.Time {
	return time.Now().In(Location(DefaultTimezone))
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

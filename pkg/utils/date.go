package utils

import "time"

// StartOfDay retorna o início do dia corrente (00:00:00) do instante t no
// fuso horário de referência. É o limite usado para o recorte de "hoje".
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

package utils

import (
	"fmt"
	"strings"
	"time"
)

// Formatos aceitos nas planilhas e nos formulários, do mais específico ao mais simples.
var acceptedDateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02/01/2006",
}

const DateLayoutBR = "02/01/2006"

// ParseFlexibleDate interpreta a data no fuso informado quando o texto não traz offset.
// O resultado é sempre convertido para loc, para que StartOfDay/EndOfDay usem o dia local.
func ParseFlexibleDate(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range acceptedDateLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t.In(loc), nil
		}
	}
	return time.Time{}, fmt.Errorf("data inválida: %q", value)
}

// StartOfDay normaliza para 00:00:00.000 no fuso de t.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay normaliza para o último instante do dia (cobre 23:59:59.999).
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

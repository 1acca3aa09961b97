// Package dateutil converte as datas da API para exibição local.
//
// O backend envia datas puras como "YYYY-MM-DD". Interpretar essa string com
// um parser UTC e renderizar num fuso negativo desloca o dia exibido para
// trás; por isso a data pura é montada componente a componente no fuso local
// e nunca passa por UTC.
package dateutil

import (
	"strconv"
	"strings"
	"time"
)

// ParseLocalDate interpreta uma data da API. Valores com hora (separador
// "T") passam pelo parse de timestamp normal, com fuso. Entrada vazia ou
// malformada resulta em ok == false, nunca em pânico.
func ParseLocalDate(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}

	if strings.Contains(raw, "T") {
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			return t, true
		}
		if t, err := time.ParseInLocation("2006-01-02T15:04:05", raw, time.Local); err == nil {
			return t, true
		}

		return time.Time{}, false
	}

	parts := strings.Split(raw, "-")
	if len(parts) < 3 {
		return time.Time{}, false
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, false
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, false
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return time.Time{}, false
	}

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local), true
}

// FormatDate formata uma data da API como dd/mm/aaaa, ou "-" na ausência.
func FormatDate(raw string) string {
	t, ok := ParseLocalDate(raw)
	if !ok {
		return "-"
	}

	return t.Format("02/01/2006")
}

// FormatDateTime formata data e hora como dd/mm/aaaa hh:mm, ou "-".
func FormatDateTime(raw string) string {
	t, ok := ParseLocalDate(raw)
	if !ok {
		return "-"
	}

	return t.Local().Format("02/01/2006 15:04")
}

// Meia-noite local do dia de t.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

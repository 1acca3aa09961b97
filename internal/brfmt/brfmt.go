// Package brfmt concentra a formatação brasileira de exibição: CPF,
// telefone e moeda.
package brfmt

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

// Moeda formata um valor como R$ 1.234,56.
func Moeda(valor decimal.Decimal) string {
	f, _ := valor.Float64()
	return printer.Sprintf("R$ %.2f", f)
}

// CPF aplica a máscara 000.000.000-00 progressivamente, como o usuário
// digita. Só dígitos contam; o excedente de 11 é descartado, então a saída
// nunca passa de 14 caracteres.
func CPF(valor string) string {
	d := apenasDigitos(valor)
	if len(d) > 11 {
		d = d[:11]
	}

	switch {
	case len(d) <= 3:
		return d
	case len(d) <= 6:
		return d[:3] + "." + d[3:]
	case len(d) <= 9:
		return d[:3] + "." + d[3:6] + "." + d[6:]
	default:
		return d[:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:]
	}
}

// Telefone formata o número de WhatsApp armazenado como dígitos puros.
// 13 dígitos = país + DDD + número; 11 = DDD + número; o resto fica como
// veio.
func Telefone(valor string) string {
	if valor == "" {
		return "-"
	}

	n := apenasDigitos(valor)
	switch len(n) {
	case 13:
		return fmt.Sprintf("+%s (%s) %s-%s", n[:2], n[2:4], n[4:9], n[9:])
	case 11:
		return fmt.Sprintf("(%s) %s-%s", n[:2], n[2:7], n[7:])
	}

	return valor
}

func apenasDigitos(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	return b.String()
}

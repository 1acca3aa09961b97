package brfmt_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/sistema-cobranca/console/internal/brfmt"
)

func TestCPF_Progressivo(t *testing.T) {
	// Digitação de "12345678901", um dígito por vez, re-mascarando o campo
	// a cada tecla como o formulário faz.
	const completo = "12345678901"
	esperado := []string{
		"1", "12", "123", "123.4", "123.45", "123.456",
		"123.456.7", "123.456.78", "123.456.789",
		"123.456.789-0", "123.456.789-01",
	}

	digitado := ""
	for i, want := range esperado {
		digitado = brfmt.CPF(digitado + string(completo[i]))
		assert.Equal(t, want, digitado)
	}
}

func TestCPF(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "12345678901", want: "123.456.789-01"},
		{in: "123.456.789-01", want: "123.456.789-01"},
		{in: "123456789012345", want: "123.456.789-01"},
		{in: "abc123def456", want: "123.456"},
	}

	for _, tt := range tests {
		got := brfmt.CPF(tt.in)
		assert.Equal(t, tt.want, got)
		assert.LessOrEqual(t, len(got), 14)
	}
}

func TestTelefone(t *testing.T) {
	assert.Equal(t, "+55 (21) 99999-1234", brfmt.Telefone("5521999991234"))
	assert.Equal(t, "(21) 99999-1234", brfmt.Telefone("21999991234"))
	assert.Equal(t, "12345", brfmt.Telefone("12345"))
	assert.Equal(t, "-", brfmt.Telefone(""))
}

func TestMoeda(t *testing.T) {
	assert.Equal(t, "R$ 1.234,56", brfmt.Moeda(decimal.RequireFromString("1234.56")))
	assert.Equal(t, "R$ 0,00", brfmt.Moeda(decimal.Zero))
	assert.Equal(t, "R$ 99,90", brfmt.Moeda(decimal.RequireFromString("99.9")))
}

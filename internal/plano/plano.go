package plano

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Plano de assinatura; somente leitura no console.
type Plano struct {
	ID                 int64           `json:"id"`
	NomePlano          string          `json:"nome_plano"`
	ValorBase          decimal.Decimal `json:"valor_base"`
	PeriodicidadeMeses int             `json:"periodicidade_meses"`
	Ativo              bool            `json:"ativo"`
}

// PeriodicidadeLabel traduz a periodicidade em meses para o rótulo usual.
func (p Plano) PeriodicidadeLabel() string {
	switch p.PeriodicidadeMeses {
	case 1:
		return "Mensal"
	case 3:
		return "Trimestral"
	case 6:
		return "Semestral"
	case 12:
		return "Anual"
	}

	return fmt.Sprintf("%d meses", p.PeriodicidadeMeses)
}

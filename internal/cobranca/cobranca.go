package cobranca

import "github.com/shopspring/decimal"

// Status é a situação de pagamento mantida pelo backend; a máquina de
// estados real vive lá. Valores novos são exibidos como vieram.
type Status string

const (
	StatusPendente  Status = "PENDENTE"
	StatusAtrasado  Status = "ATRASADO"
	StatusPago      Status = "PAGO"
	StatusCancelado Status = "CANCELADO"
)

func (s Status) Label() string {
	switch s {
	case StatusPendente:
		return "Pendente"
	case StatusAtrasado:
		return "Atrasado"
	case StatusPago:
		return "Pago"
	case StatusCancelado:
		return "Cancelado"
	}

	return string(s)
}

// EmAberto indica que a cobrança ainda conta para a receita prevista.
func (s Status) EmAberto() bool {
	return s == StatusPendente || s == StatusAtrasado
}

// Cobrança de uma mensalidade, com nome e CPF do cliente desnormalizados
// para exibição. O valor chega como string decimal do DRF;
// decimal.Decimal aceita as duas formas.
type Cobranca struct {
	ID               int64           `json:"id"`
	Cliente          int64           `json:"cliente"`
	ClienteNome      string          `json:"cliente_nome"`
	ClienteCPF       string          `json:"cliente_cpf"`
	Referencia       string          `json:"referencia"`
	ValorTotalDevido decimal.Decimal `json:"valor_total_devido"`
	DataVencimento   string          `json:"data_vencimento"`
	DataPagamento    string          `json:"data_pagamento"`
	Status           Status          `json:"status_cobranca"`
}

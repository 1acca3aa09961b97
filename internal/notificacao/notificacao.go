package notificacao

import "github.com/shopspring/decimal"

// Canal de envio da notificação.
type Canal string

const (
	CanalEmail    Canal = "EMAIL"
	CanalWhatsApp Canal = "WHATSAPP"
)

// Regua é a posição do lembrete na régua de cobrança, relativa ao
// vencimento.
type Regua string

const (
	ReguaTresDiasAntes Regua = "D-3"
	ReguaUmDiaApos     Regua = "D+1"
	ReguaDezDiasApos   Regua = "D+10"
)

func (r Regua) Label() string {
	switch r {
	case ReguaTresDiasAntes:
		return "3 dias antes"
	case ReguaUmDiaApos:
		return "1 dia após"
	case ReguaDezDiasApos:
		return "10 dias após"
	}

	return string(r)
}

// Status de entrega da mensagem.
type Status string

const (
	StatusEnviado  Status = "ENVIADO"
	StatusAgendado Status = "AGENDADO"
	StatusFalha    Status = "FALHA"
)

func (s Status) Label() string {
	switch s {
	case StatusEnviado:
		return "Enviado"
	case StatusAgendado:
		return "Agendado"
	case StatusFalha:
		return "Falha"
	}

	return string(s)
}

// Notificacao é o registro somente-leitura de um disparo da régua, com o
// contexto da cobrança desnormalizado para exibição.
type Notificacao struct {
	ID                     int64           `json:"id"`
	ClienteNome            string          `json:"cliente_nome"`
	CobrancaClienteNome    string          `json:"cobranca_cliente_nome"`
	ClienteEmail           string          `json:"cliente_email"`
	CobrancaReferencia     string          `json:"cobranca_referencia"`
	CobrancaValor          decimal.Decimal `json:"cobranca_valor"`
	CobrancaDataVencimento string          `json:"cobranca_data_vencimento"`
	DiasEmAtraso           int             `json:"dias_em_atraso"`
	TipoRegua              Regua           `json:"tipo_regua"`
	TipoCanal              Canal           `json:"tipo_canal"`
	StatusEnvio            Status          `json:"status_envio"`
	DataAgendada           string          `json:"data_agendada"`
	DataEnvioReal          string          `json:"data_envio_real"`
	ConteudoMensagem       string          `json:"conteudo_mensagem"`
}

// NomeCliente prefere o nome direto e cai para o desnormalizado da
// cobrança.
func (n Notificacao) NomeCliente() string {
	if n.ClienteNome != "" {
		return n.ClienteNome
	}
	if n.CobrancaClienteNome != "" {
		return n.CobrancaClienteNome
	}

	return "-"
}

// DataReferencia é o envio real quando houve, senão o agendamento.
func (n Notificacao) DataReferencia() string {
	if n.DataEnvioReal != "" {
		return n.DataEnvioReal
	}

	return n.DataAgendada
}

package cliente

// Status é o ciclo de vida do cliente no backend. Valores desconhecidos são
// exibidos como vieram.
type Status string

const (
	StatusAtivo         Status = "ATIVO"
	StatusInativoAtraso Status = "INATIVO_ATRASO"
	StatusInativoManual Status = "INATIVO_MANUAL"
)

func (s Status) Label() string {
	switch s {
	case StatusAtivo:
		return "Ativo"
	case StatusInativoAtraso:
		return "Inativo por Atraso"
	case StatusInativoManual:
		return "Inativo Manual"
	}

	return string(s)
}

func (s Status) Ativo() bool { return s == StatusAtivo }

// Cliente é um retrato do registro do backend; o console nunca é dono dele.
// Datas ficam como string no formato da API e só viram time.Time na exibição.
type Cliente struct {
	ID                 int64  `json:"id"`
	Plano              int64  `json:"plano"`
	PlanoNome          string `json:"plano_nome"`
	Nome               string `json:"nome"`
	CPF                string `json:"cpf"`
	TelefoneWhatsApp   string `json:"telefone_whatsapp"`
	Email              string `json:"email"`
	DataInicioContrato string `json:"data_inicio_contrato"`
	Status             Status `json:"status_cliente"`
}

// Params é o corpo enviado em criação e atualização.
type Params struct {
	Plano              int64  `json:"plano"`
	Nome               string `json:"nome"`
	CPF                string `json:"cpf"`
	TelefoneWhatsApp   string `json:"telefone_whatsapp"`
	Email              string `json:"email"`
	DataInicioContrato string `json:"data_inicio_contrato"`
	Status             Status `json:"status_cliente"`
}

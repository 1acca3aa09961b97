package view

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sistema-cobranca/console/internal/api"
	"github.com/sistema-cobranca/console/internal/brfmt"
	"github.com/sistema-cobranca/console/internal/cliente"
	"github.com/sistema-cobranca/console/internal/plano"
)

// Ordem dos campos do formulário; os índices 1..5 são textinputs.
const (
	campoPlano = iota
	campoNome
	campoCPF
	campoTelefone
	campoEmail
	campoDataInicio
	campoStatus
	totalCampos
)

// Nome do campo na API, usado para casar os erros de validação por campo.
var nomesCampo = [totalCampos]string{
	"plano", "nome", "cpf", "telefone_whatsapp", "email",
	"data_inicio_contrato", "status_cliente",
}

var statusCliente = []cliente.Status{
	cliente.StatusAtivo,
	cliente.StatusInativoAtraso,
	cliente.StatusInativoManual,
}

// ClienteFormModel cadastra e edita clientes. O CPF é mascarado a cada
// tecla; o seletor de plano fica desabilitado enquanto o catálogo carrega
// ou se não há planos; um erro de validação da API vira anotação por campo
// em vez de um banner único.
type ClienteFormModel struct {
	CommonModel
	clienteService *cliente.Service
	planoService   *plano.Service

	editarID *int64

	inputs [5]textinput.Model // nome, cpf, telefone, email, data
	foco   int

	planos           []plano.Plano
	planoIdx         int
	planoPendente    int64 // plano do cliente carregado antes do catálogo
	carregandoPlanos bool
	erroPlanos       string

	statusIdx int

	carregandoCliente bool
	salvando          bool
	erro              string
	errosCampo        map[string]string
}

func NewClienteFormModel(clienteSvc *cliente.Service, planoSvc *plano.Service, editarID *int64) ClienteFormModel {
	m := ClienteFormModel{
		clienteService:    clienteSvc,
		planoService:      planoSvc,
		editarID:          editarID,
		carregandoPlanos:  true,
		carregandoCliente: editarID != nil,
		errosCampo:        make(map[string]string),
		foco:              campoNome,
	}

	placeholders := [5]string{"Ex: João Silva", "000.000.000-00", "5521999999999", "joao@example.com", "AAAA-MM-DD"}

	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = placeholders[i]
		ti.Width = 36
		m.inputs[i] = ti
	}
	m.inputs[campoCPF-campoNome].CharLimit = 14
	m.inputs[campoDataInicio-campoNome].CharLimit = 10
	m.inputs[0].Focus()

	return m
}

func (m ClienteFormModel) Title() string {
	if m.editarID != nil {
		return "Editar Cliente"
	}
	return "Novo Cadastro"
}

func (m ClienteFormModel) ShortHelp() string {
	return "Tab/↑↓: campos | ←→: opções | Enter: salvar | Esc: cancelar"
}

func (m ClienteFormModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.loadPlanosCmd(), textinput.Blink}
	if m.editarID != nil {
		cmds = append(cmds, m.loadClienteCmd(*m.editarID))
	}

	return tea.Batch(cmds...)
}

func (m ClienteFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadPlanosMsg:
		m.carregandoPlanos = false
		if msg.err != nil {
			m.erroPlanos = fmt.Sprintf("Erro ao carregar planos: %v", msg.err)
			m.planos = nil
		} else {
			m.planos = msg.planos
		}
		m.sincronizarPlano()
		return m, nil

	case loadClienteFormMsg:
		m.carregandoCliente = false
		if msg.err != nil {
			m.erro = fmt.Sprintf("Erro ao carregar cliente: %v", msg.err)
			return m, nil
		}
		m.preencher(msg.cliente)
		return m, nil

	case salvarClienteMsg:
		m.salvando = false
		if msg.err == nil {
			return m, func() tea.Msg { return VoltarClientesMsg{} }
		}

		var verr *api.ValidationError
		if errors.As(msg.err, &verr) {
			m.errosCampo = verr.Fields
			m.erro = "Por favor, corrija os erros no formulário."
		} else {
			m.erro = msg.err.Error()
		}
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	return m.updateInputs(msg)
}

func (m ClienteFormModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.salvando {
		return m, nil
	}

	switch msg.String() {
	case "esc":
		return m, func() tea.Msg { return VoltarClientesMsg{} }

	case "tab", "down":
		m.mudarFoco(1)
		return m, textinput.Blink

	case "shift+tab", "up":
		m.mudarFoco(-1)
		return m, textinput.Blink

	case "left", "right":
		delta := 1
		if msg.String() == "left" {
			delta = -1
		}
		m.cicloOpcao(delta)
		return m, nil

	case "enter":
		return m.submeter()
	}

	return m.updateInputs(msg)
}

func (m *ClienteFormModel) mudarFoco(delta int) {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}

	for {
		m.foco = (m.foco + delta + totalCampos) % totalCampos
		if m.foco != campoPlano || m.planoHabilitado() {
			break
		}
	}

	if idx, ok := inputIndex(m.foco); ok {
		m.inputs[idx].Focus()
	}
}

func (m *ClienteFormModel) cicloOpcao(delta int) {
	switch m.foco {
	case campoPlano:
		if m.planoHabilitado() {
			m.planoIdx = (m.planoIdx + delta + len(m.planos)) % len(m.planos)
			delete(m.errosCampo, "plano")
		}
	case campoStatus:
		m.statusIdx = (m.statusIdx + delta + len(statusCliente)) % len(statusCliente)
		delete(m.errosCampo, "status_cliente")
	}
}

func (m ClienteFormModel) planoHabilitado() bool {
	return !m.carregandoPlanos && len(m.planos) > 0
}

func (m ClienteFormModel) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	idx, ok := inputIndex(m.foco)
	if !ok {
		return m, nil
	}

	antes := m.inputs[idx].Value()

	var cmd tea.Cmd
	m.inputs[idx], cmd = m.inputs[idx].Update(msg)

	if m.foco == campoCPF {
		m.inputs[idx].SetValue(brfmt.CPF(m.inputs[idx].Value()))
		m.inputs[idx].CursorEnd()
	}

	// Digitar limpa a anotação de erro do campo.
	if m.inputs[idx].Value() != antes {
		delete(m.errosCampo, nomesCampo[m.foco])
	}

	return m, cmd
}

func (m ClienteFormModel) submeter() (tea.Model, tea.Cmd) {
	m.erro = ""
	m.errosCampo = make(map[string]string)

	obrigatorios := []int{campoNome, campoCPF, campoTelefone, campoEmail, campoDataInicio}
	for _, campo := range obrigatorios {
		idx, _ := inputIndex(campo)
		if m.inputs[idx].Value() == "" {
			m.errosCampo[nomesCampo[campo]] = "Este campo é obrigatório."
		}
	}
	if !m.planoHabilitado() {
		m.errosCampo["plano"] = "Selecione um plano."
	}
	if len(m.errosCampo) > 0 {
		m.erro = "Por favor, corrija os erros no formulário."
		return m, nil
	}

	params := cliente.Params{
		Plano:              m.planos[m.planoIdx].ID,
		Nome:               m.valor(campoNome),
		CPF:                m.valor(campoCPF),
		TelefoneWhatsApp:   m.valor(campoTelefone),
		Email:              m.valor(campoEmail),
		DataInicioContrato: m.valor(campoDataInicio),
		Status:             statusCliente[m.statusIdx],
	}

	m.salvando = true
	return m, m.salvarCmd(params)
}

func (m ClienteFormModel) valor(campo int) string {
	idx, _ := inputIndex(campo)
	return m.inputs[idx].Value()
}

func (m *ClienteFormModel) preencher(c *cliente.Cliente) {
	valores := map[int]string{
		campoNome:       c.Nome,
		campoCPF:        brfmt.CPF(c.CPF),
		campoTelefone:   c.TelefoneWhatsApp,
		campoEmail:      c.Email,
		campoDataInicio: c.DataInicioContrato,
	}
	for campo, valor := range valores {
		idx, _ := inputIndex(campo)
		m.inputs[idx].SetValue(valor)
	}

	for i, s := range statusCliente {
		if s == c.Status {
			m.statusIdx = i
		}
	}

	m.planoPendente = c.Plano
	m.sincronizarPlano()
}

func (m *ClienteFormModel) sincronizarPlano() {
	if m.planoPendente == 0 {
		return
	}
	for i, p := range m.planos {
		if p.ID == m.planoPendente {
			m.planoIdx = i
			m.planoPendente = 0
			return
		}
	}
}

func (m ClienteFormModel) View() string {
	if m.carregandoPlanos || m.carregandoCliente {
		return lipgloss.NewStyle().Padding(2).Render("Carregando planos...")
	}

	lines := []string{titleStyle.Render(m.Title()), ""}

	lines = append(lines, m.campoView(campoPlano, "Plano *", m.planoView())...)
	if m.erroPlanos != "" {
		lines = append(lines, errorStyle.Render(m.erroPlanos))
	}

	rotulos := map[int]string{
		campoNome:       "Nome Completo *",
		campoCPF:        "CPF *",
		campoTelefone:   "Telefone WhatsApp *",
		campoEmail:      "E-mail *",
		campoDataInicio: "Data de Início do Contrato *",
	}
	for campo := campoNome; campo <= campoDataInicio; campo++ {
		idx, _ := inputIndex(campo)
		lines = append(lines, m.campoView(campo, rotulos[campo], m.inputs[idx].View())...)
	}

	lines = append(lines, m.campoView(campoStatus, "Status *", m.statusView())...)

	lines = append(lines, "")
	if m.salvando {
		lines = append(lines, faintStyle.Render("Salvando..."))
	}
	if m.erro != "" {
		lines = append(lines, errorStyle.Render(m.erro))
	}

	return lipgloss.NewStyle().Padding(1).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m ClienteFormModel) campoView(campo int, rotulo, controle string) []string {
	marcador := "  "
	if m.foco == campo {
		marcador = active("> ")
	}

	lines := []string{marcador + rotulo, "  " + controle}
	if msg, ok := m.errosCampo[nomesCampo[campo]]; ok {
		lines = append(lines, "  "+errorStyle.Render(msg))
	}
	lines = append(lines, "")

	return lines
}

func (m ClienteFormModel) planoView() string {
	if m.carregandoPlanos {
		return faintStyle.Render("Carregando planos...")
	}
	if len(m.planos) == 0 {
		return faintStyle.Render("Nenhum plano disponível")
	}

	p := m.planos[m.planoIdx]
	return fmt.Sprintf("< %s - %s/%s >", p.NomePlano, brfmt.Moeda(p.ValorBase), p.PeriodicidadeLabel())
}

func (m ClienteFormModel) statusView() string {
	return fmt.Sprintf("< %s >", statusCliente[m.statusIdx].Label())
}

func inputIndex(campo int) (int, bool) {
	if campo >= campoNome && campo <= campoDataInicio {
		return campo - campoNome, true
	}

	return 0, false
}

// Messages

type loadPlanosMsg struct {
	planos []plano.Plano
	err    error
}

func (m ClienteFormModel) loadPlanosCmd() tea.Cmd {
	return func() tea.Msg {
		planos, err := m.planoService.Listar(context.Background())
		return loadPlanosMsg{planos: planos, err: err}
	}
}

type loadClienteFormMsg struct {
	cliente *cliente.Cliente
	err     error
}

func (m ClienteFormModel) loadClienteCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		c, err := m.clienteService.BuscarPorID(context.Background(), id)
		return loadClienteFormMsg{cliente: c, err: err}
	}
}

type salvarClienteMsg struct {
	err error
}

func (m ClienteFormModel) salvarCmd(params cliente.Params) tea.Cmd {
	editarID := m.editarID

	return func() tea.Msg {
		ctx := context.Background()

		var err error
		if editarID != nil {
			_, err = m.clienteService.Atualizar(ctx, *editarID, params)
		} else {
			_, err = m.clienteService.Criar(ctx, params)
		}

		return salvarClienteMsg{err: err}
	}
}

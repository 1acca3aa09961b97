package view

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sistema-cobranca/console/internal/brfmt"
	"github.com/sistema-cobranca/console/internal/cobranca"
	"github.com/sistema-cobranca/console/internal/dateutil"
)

type cobrancasState int

const (
	cobrancasStateBrowse cobrancasState = iota
	cobrancasStateSearch
	cobrancasStateConfirmRevert
)

var filtrosStatus = []struct {
	label  string
	status cobranca.Status // vazio = todas
}{
	{label: "Todas"},
	{label: "Pendentes", status: cobranca.StatusPendente},
	{label: "Atrasados", status: cobranca.StatusAtrasado},
	{label: "Pagas", status: cobranca.StatusPago},
}

// CobrancasModel lista cobranças com filtro de status, busca por nome/CPF e
// as ações de marcar pago e reverter pagamento. A coleção crua fica em
// cobrancas; filtradas é sempre uma projeção derivada dela. Depois de cada
// mutação a lista inteira é rebuscada; nada é atualizado de forma otimista.
type CobrancasModel struct {
	CommonModel
	cobrancaService *cobranca.Service

	state cobrancasState
	table table.Model
	busca textinput.Model

	cobrancas []cobranca.Cobranca
	filtradas []cobranca.Cobranca

	filtroIdx  int
	confirmaID int64

	// Uma ação em voo por linha; linhas diferentes podem mutar ao mesmo
	// tempo.
	emAndamento map[int64]bool

	loading bool
	err     error
	status  string
}

func NewCobrancasModel(cobrancaSvc *cobranca.Service) CobrancasModel {
	columns := []table.Column{
		{Title: "Cliente", Width: 26},
		{Title: "CPF", Width: 15},
		{Title: "Valor", Width: 14},
		{Title: "Vencimento", Width: 12},
		{Title: "Status", Width: 10},
		{Title: "Ação", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	b := textinput.New()
	b.Placeholder = "Buscar por Nome ou CPF..."
	b.Width = 40

	return CobrancasModel{
		cobrancaService: cobrancaSvc,
		table:           t,
		busca:           b,
		emAndamento:     make(map[int64]bool),
		loading:         true,
	}
}

func (m CobrancasModel) Title() string { return "Listagem de Cobranças" }

func (m CobrancasModel) ShortHelp() string {
	switch m.state {
	case cobrancasStateSearch:
		return "Enter/Esc: sair da busca"
	case cobrancasStateConfirmRevert:
		return "s: confirmar reversão | n: cancelar"
	}
	return "Esc: voltar | /: buscar | f: filtro | p: marcar pago | v: reverter | r: atualizar"
}

func (m CobrancasModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m CobrancasModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadCobrancasMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			m.cobrancas = nil
		} else {
			m.err = nil
			m.cobrancas = msg.cobrancas
		}
		m.aplicarFiltros()
		return m, nil

	case acaoCobrancaMsg:
		delete(m.emAndamento, msg.id)
		if msg.err != nil {
			m.err = fmt.Errorf("%s: %w", msg.acao, msg.err)
			return m, nil
		}
		m.err = nil
		m.status = msg.sucesso
		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.table.SetHeight(msg.Height - 12)
		return m, nil
	}

	switch m.state {
	case cobrancasStateSearch:
		return m.updateSearch(msg)
	case cobrancasStateConfirmRevert:
		return m.updateConfirmRevert(msg)
	}

	return m.updateBrowse(msg)
}

func (m CobrancasModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			m.status = ""
			return m, m.loadCmd()
		case "/":
			m.state = cobrancasStateSearch
			m.table.Blur()
			m.busca.Focus()
			return m, textinput.Blink
		case "f":
			m.filtroIdx = (m.filtroIdx + 1) % len(filtrosStatus)
			m.aplicarFiltros()
			return m, nil
		case "p":
			return m.marcarPago()
		case "v":
			return m.pedirReversao()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m CobrancasModel) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter", "esc":
			m.state = cobrancasStateBrowse
			m.busca.Blur()
			m.table.Focus()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.busca, cmd = m.busca.Update(msg)
	m.aplicarFiltros()
	return m, cmd
}

func (m CobrancasModel) updateConfirmRevert(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "s", "S", "enter":
		id := m.confirmaID
		m.state = cobrancasStateBrowse
		m.confirmaID = 0
		m.emAndamento[id] = true
		return m, m.reverterCmd(id)
	case "n", "N", "esc":
		m.state = cobrancasStateBrowse
		m.confirmaID = 0
		return m, nil
	}

	return m, nil
}

func (m CobrancasModel) marcarPago() (tea.Model, tea.Cmd) {
	c, ok := m.selecionada()
	if !ok || m.emAndamento[c.ID] {
		return m, nil
	}

	if c.Status != cobranca.StatusPendente && c.Status != cobranca.StatusAtrasado {
		return m, nil
	}

	m.emAndamento[c.ID] = true
	m.status = ""
	return m, m.marcarPagoCmd(c.ID)
}

func (m CobrancasModel) pedirReversao() (tea.Model, tea.Cmd) {
	c, ok := m.selecionada()
	if !ok || m.emAndamento[c.ID] || c.Status != cobranca.StatusPago {
		return m, nil
	}

	m.state = cobrancasStateConfirmRevert
	m.confirmaID = c.ID
	return m, nil
}

func (m CobrancasModel) selecionada() (cobranca.Cobranca, bool) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.filtradas) {
		return cobranca.Cobranca{}, false
	}

	return m.filtradas[idx], true
}

// aplicarFiltros deriva a projeção exibida: primeiro o filtro de status,
// depois a busca por substring, sem mexer na coleção crua.
func (m *CobrancasModel) aplicarFiltros() {
	filtradas := make([]cobranca.Cobranca, 0, len(m.cobrancas))

	filtro := filtrosStatus[m.filtroIdx]
	for _, c := range m.cobrancas {
		if filtro.status != "" && c.Status != filtro.status {
			continue
		}
		filtradas = append(filtradas, c)
	}

	if busca := strings.ToLower(strings.TrimSpace(m.busca.Value())); busca != "" {
		comBusca := filtradas[:0]
		for _, c := range filtradas {
			nome := strings.ToLower(c.ClienteNome)
			cpf := strings.ToLower(c.ClienteCPF)
			if strings.Contains(nome, busca) || strings.Contains(cpf, busca) {
				comBusca = append(comBusca, c)
			}
		}
		filtradas = comBusca
	}

	m.filtradas = filtradas
	m.refreshTable()
}

func (m *CobrancasModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.filtradas))
	for _, c := range m.filtradas {
		nome := c.ClienteNome
		if nome == "" {
			nome = "-"
		}

		rows = append(rows, table.Row{
			nome,
			brfmt.CPF(c.ClienteCPF),
			brfmt.Moeda(c.ValorTotalDevido),
			dateutil.FormatDate(c.DataVencimento),
			c.Status.Label(),
			m.acaoLabel(c),
		})
	}
	m.table.SetRows(rows)

	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(0)
	}
}

func (m CobrancasModel) acaoLabel(c cobranca.Cobranca) string {
	if m.emAndamento[c.ID] {
		return "..."
	}

	switch {
	case c.Status == cobranca.StatusPendente || c.Status == cobranca.StatusAtrasado:
		return "[p] pagar"
	case c.Status == cobranca.StatusPago:
		return "[v] reverter"
	}

	return "-"
}

func (m CobrancasModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Carregando cobranças...")
	}

	header := fmt.Sprintf("Filtro: [f] %s | Busca: %s",
		active(filtrosStatus[m.filtroIdx].label),
		m.busca.View(),
	)

	var body string
	if len(m.filtradas) == 0 {
		body = faintStyle.Render("Nenhuma cobrança encontrada")
	} else {
		body = tableBorderStyle.Render(m.table.View())
	}

	lines := []string{
		titleStyle.Render(m.Title()),
		"",
		header,
		body,
	}

	if c, ok := m.selecionada(); ok {
		lines = append(lines, fmt.Sprintf("%s | %s | vence em %s | %s",
			c.ClienteNome,
			brfmt.Moeda(c.ValorTotalDevido),
			dateutil.FormatDate(c.DataVencimento),
			StatusCobranca(c.Status),
		))
	}

	if m.err != nil {
		lines = append(lines, errorStyle.Render(fmt.Sprintf("Erro: %v", m.err)))
	}
	if m.status != "" {
		lines = append(lines, successStyle.Render(m.status))
	}

	if m.state == cobrancasStateConfirmRevert {
		lines = append(lines, "", "Deseja reverter o pagamento desta cobrança? (s/n)")
	}

	return lipgloss.NewStyle().Padding(1).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// Messages

type loadCobrancasMsg struct {
	cobrancas []cobranca.Cobranca
	err       error
}

func (m CobrancasModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		cobrancas, err := m.cobrancaService.Listar(context.Background())
		return loadCobrancasMsg{cobrancas: cobrancas, err: err}
	}
}

type acaoCobrancaMsg struct {
	id      int64
	acao    string
	sucesso string
	err     error
}

func (m CobrancasModel) marcarPagoCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		_, err := m.cobrancaService.MarcarComoPago(context.Background(), id)
		return acaoCobrancaMsg{
			id:      id,
			acao:    "erro ao marcar como pago",
			sucesso: "Cobrança marcada como paga com sucesso!",
			err:     err,
		}
	}
}

func (m CobrancasModel) reverterCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		_, err := m.cobrancaService.ReverterPagamento(context.Background(), id)
		return acaoCobrancaMsg{
			id:      id,
			acao:    "erro ao reverter pagamento",
			sucesso: "Pagamento revertido com sucesso!",
			err:     err,
		}
	}
}

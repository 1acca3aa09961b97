package view

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sistema-cobranca/console/internal/brfmt"
	"github.com/sistema-cobranca/console/internal/cliente"
	"github.com/sistema-cobranca/console/internal/dateutil"
)

type clientesState int

const (
	clientesStateBrowse clientesState = iota
	clientesStateConfirmDelete
)

// ClientesModel lista os clientes e navega para o formulário de cadastro.
type ClientesModel struct {
	CommonModel
	clienteService *cliente.Service

	state clientesState
	table table.Model

	clientes []cliente.Cliente

	confirmaID   int64
	confirmaNome string
	deletando    bool

	loading bool
	err     error
	status  string
}

func NewClientesModel(clienteSvc *cliente.Service) ClientesModel {
	columns := []table.Column{
		{Title: "Nome", Width: 24},
		{Title: "CPF", Width: 15},
		{Title: "E-mail", Width: 24},
		{Title: "Telefone", Width: 20},
		{Title: "Plano", Width: 14},
		{Title: "Início", Width: 11},
		{Title: "Status", Width: 18},
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

	return ClientesModel{
		clienteService: clienteSvc,
		table:          t,
		loading:        true,
	}
}

func (m ClientesModel) Title() string { return "Clientes" }

func (m ClientesModel) ShortHelp() string {
	if m.state == clientesStateConfirmDelete {
		return "s: confirmar exclusão | n: cancelar"
	}
	return "Esc: voltar | n: novo | e: editar | x: excluir | r: atualizar"
}

func (m ClientesModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m ClientesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadClientesMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			m.clientes = nil
		} else {
			m.err = nil
			m.clientes = msg.clientes
		}
		m.refreshTable()
		return m, nil

	case deleteClienteMsg:
		m.deletando = false
		if msg.err != nil {
			m.err = fmt.Errorf("erro ao excluir cliente: %w", msg.err)
			return m, nil
		}
		m.err = nil
		m.status = "Cliente excluído."
		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	if m.state == clientesStateConfirmDelete {
		return m.updateConfirmDelete(msg)
	}

	return m.updateBrowse(msg)
}

func (m ClientesModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			m.status = ""
			return m, m.loadCmd()
		case "n":
			return m, func() tea.Msg { return AbrirFormClienteMsg{} }
		case "e":
			if c, ok := m.selecionado(); ok {
				id := c.ID
				return m, func() tea.Msg { return AbrirFormClienteMsg{EditarID: &id} }
			}
		case "x":
			if c, ok := m.selecionado(); ok && !m.deletando {
				m.state = clientesStateConfirmDelete
				m.confirmaID = c.ID
				m.confirmaNome = c.Nome
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ClientesModel) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "s", "S", "enter":
		id := m.confirmaID
		m.state = clientesStateBrowse
		m.deletando = true
		m.status = ""
		return m, m.deleteCmd(id)
	case "n", "N", "esc":
		m.state = clientesStateBrowse
		return m, nil
	}

	return m, nil
}

func (m ClientesModel) selecionado() (cliente.Cliente, bool) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.clientes) {
		return cliente.Cliente{}, false
	}

	return m.clientes[idx], true
}

func (m *ClientesModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.clientes))
	for _, c := range m.clientes {
		planoNome := c.PlanoNome
		if planoNome == "" {
			planoNome = "-"
		}

		rows = append(rows, table.Row{
			c.Nome,
			brfmt.CPF(c.CPF),
			c.Email,
			brfmt.Telefone(c.TelefoneWhatsApp),
			planoNome,
			dateutil.FormatDate(c.DataInicioContrato),
			c.Status.Label(),
		})
	}
	m.table.SetRows(rows)

	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(0)
	}
}

func (m ClientesModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Carregando clientes...")
	}

	var body string
	if len(m.clientes) == 0 && m.err == nil {
		body = faintStyle.Render("Nenhum cliente cadastrado. Comece adicionando um novo cliente.")
	} else {
		body = tableBorderStyle.Render(m.table.View())
	}

	lines := []string{
		titleStyle.Render(m.Title()),
		"",
		body,
	}

	if m.err != nil {
		lines = append(lines, errorStyle.Render(fmt.Sprintf("Erro: %v", m.err)))
	}
	if m.status != "" {
		lines = append(lines, successStyle.Render(m.status))
	}
	if m.deletando {
		lines = append(lines, faintStyle.Render("Excluindo..."))
	}

	if m.state == clientesStateConfirmDelete {
		lines = append(lines, "",
			fmt.Sprintf("Tem certeza que deseja excluir o cliente %q? (s/n)", m.confirmaNome))
	}

	return lipgloss.NewStyle().Padding(1).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// Messages

type loadClientesMsg struct {
	clientes []cliente.Cliente
	err      error
}

func (m ClientesModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		clientes, err := m.clienteService.Listar(context.Background())
		return loadClientesMsg{clientes: clientes, err: err}
	}
}

type deleteClienteMsg struct {
	err error
}

func (m ClientesModel) deleteCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		err := m.clienteService.Deletar(context.Background(), id)
		return deleteClienteMsg{err: err}
	}
}

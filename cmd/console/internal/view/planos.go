package view

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sistema-cobranca/console/internal/brfmt"
	"github.com/sistema-cobranca/console/internal/plano"
)

// PlanosModel é o catálogo de planos, somente leitura.
type PlanosModel struct {
	CommonModel
	planoService *plano.Service

	table  table.Model
	planos []plano.Plano

	loading bool
	err     error
}

func NewPlanosModel(planoSvc *plano.Service) PlanosModel {
	columns := []table.Column{
		{Title: "Plano", Width: 24},
		{Title: "Valor Base", Width: 14},
		{Title: "Periodicidade", Width: 14},
		{Title: "Situação", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
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

	return PlanosModel{
		planoService: planoSvc,
		table:        t,
		loading:      true,
	}
}

func (m PlanosModel) Title() string { return "Planos" }

func (m PlanosModel) ShortHelp() string {
	return "Esc: voltar | r: atualizar"
}

func (m PlanosModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m PlanosModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadPlanosListaMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			m.planos = nil
		} else {
			m.err = nil
			m.planos = msg.planos
		}
		m.refreshTable()
		return m, nil

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.table.SetHeight(msg.Height - 8)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *PlanosModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.planos))
	for _, p := range m.planos {
		situacao := "Inativo"
		if p.Ativo {
			situacao = "Ativo"
		}

		rows = append(rows, table.Row{
			p.NomePlano,
			brfmt.Moeda(p.ValorBase),
			p.PeriodicidadeLabel(),
			situacao,
		})
	}
	m.table.SetRows(rows)

	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(0)
	}
}

func (m PlanosModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Carregando planos...")
	}

	var body string
	if len(m.planos) == 0 && m.err == nil {
		body = faintStyle.Render("Nenhum plano cadastrado")
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

	return lipgloss.NewStyle().Padding(1).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// Messages

type loadPlanosListaMsg struct {
	planos []plano.Plano
	err    error
}

func (m PlanosModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		planos, err := m.planoService.Listar(context.Background())
		return loadPlanosListaMsg{planos: planos, err: err}
	}
}

package view

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sistema-cobranca/console/internal/brfmt"
	"github.com/sistema-cobranca/console/internal/cobranca"
	"github.com/sistema-cobranca/console/internal/dateutil"
)

// DashboardModel mostra os cartões de resumo e os próximos vencimentos.
// A carga é de melhor esforço: falha em uma das buscas zera a estatística
// correspondente e vai para o log, sem banner (a tela continua útil com o
// que veio).
type DashboardModel struct {
	CommonModel
	cobrancaService *cobranca.Service

	loading   bool
	cobrancas []cobranca.Cobranca
	atrasadas []cobranca.Cobranca

	table table.Model
}

func NewDashboardModel(cobrancaSvc *cobranca.Service) DashboardModel {
	columns := []table.Column{
		{Title: "Cliente", Width: 28},
		{Title: "Valor", Width: 14},
		{Title: "Vencimento", Width: 12},
		{Title: "Status", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(7),
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

	return DashboardModel{
		cobrancaService: cobrancaSvc,
		loading:         true,
		table:           t,
	}
}

func (m DashboardModel) Title() string { return "Dashboard" }

func (m DashboardModel) ShortHelp() string {
	return "Esc: voltar | r: atualizar"
}

func (m DashboardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardDataMsg:
		m.loading = false
		m.cobrancas = msg.cobrancas
		m.atrasadas = msg.atrasadas
		m.refreshTable()
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

func (m DashboardModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Carregando dashboard...")
	}

	agora := time.Now()

	proximos := cobranca.VencimentosProximos(m.cobrancas, agora)
	receita := cobranca.ReceitaPrevista(m.cobrancas)
	valorAtrasado := cobranca.SomaValores(m.atrasadas)

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		card("Vencimentos Próximos", "Próximos 7 dias", fmt.Sprintf("%d", len(proximos))),
		" ",
		card("Atrasados", fmt.Sprintf("%d cobranças", len(m.atrasadas)), brfmt.Moeda(valorAtrasado)),
		" ",
		card("Receita Prevista", "Pendentes e atrasadas", brfmt.Moeda(receita)),
	)

	content := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Sistema de Cobrança"),
		"",
		cards,
		"",
		titleStyle.Render("Próximos Vencimentos"),
		m.vencimentosView(),
	)

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m DashboardModel) vencimentosView() string {
	if len(cobranca.ProximosVencimentos(m.cobrancas, time.Now(), 5)) == 0 {
		return faintStyle.Render("Nenhum vencimento próximo")
	}

	return tableBorderStyle.Render(m.table.View())
}

func card(title, subtitle, value string) string {
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(title),
		faintStyle.Render(subtitle),
		value,
	))
}

func (m *DashboardModel) refreshTable() {
	top := cobranca.ProximosVencimentos(m.cobrancas, time.Now(), 5)

	rows := make([]table.Row, 0, len(top))
	for _, c := range top {
		nome := c.ClienteNome
		if nome == "" {
			nome = "-"
		}

		rows = append(rows, table.Row{
			nome,
			brfmt.Moeda(c.ValorTotalDevido),
			dateutil.FormatDate(c.DataVencimento),
			c.Status.Label(),
		})
	}
	m.table.SetRows(rows)
}

// Messages

type dashboardDataMsg struct {
	cobrancas []cobranca.Cobranca
	atrasadas []cobranca.Cobranca
}

func (m DashboardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		var data dashboardDataMsg

		cobrancas, err := m.cobrancaService.Listar(ctx)
		if err != nil {
			slog.Error("dashboard: falha ao listar cobranças", "error", err)
		} else {
			data.cobrancas = cobrancas
		}

		atrasadas, err := m.cobrancaService.ListarAtrasadas(ctx)
		if err != nil {
			slog.Error("dashboard: falha ao listar atrasadas", "error", err)
		} else {
			data.atrasadas = atrasadas
		}

		return data
	}
}

package view

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sistema-cobranca/console/internal/brfmt"
	"github.com/sistema-cobranca/console/internal/dateutil"
	"github.com/sistema-cobranca/console/internal/notificacao"
)

var filtrosEnvio = []struct {
	label  string
	status notificacao.Status // vazio = todos
}{
	{label: "Todos"},
	{label: "Enviado", status: notificacao.StatusEnviado},
	{label: "Falha", status: notificacao.StatusFalha},
	{label: "Agendado", status: notificacao.StatusAgendado},
}

var filtrosCanal = []struct {
	label string
	canal notificacao.Canal // vazio = todos
}{
	{label: "Todos"},
	{label: "E-mail", canal: notificacao.CanalEmail},
	{label: "WhatsApp", canal: notificacao.CanalWhatsApp},
}

// NotificacoesModel é o histórico de disparos da régua. O filtro de status
// rebusca usando a action dedicada do backend; o filtro de canal é só uma
// projeção local. Enter abre o modal de detalhe, que vive inteiro no
// estado desta tela.
type NotificacoesModel struct {
	CommonModel
	notificacaoService *notificacao.Service

	table table.Model

	notificacoes []notificacao.Notificacao
	filtradas    []notificacao.Notificacao

	filtroEnvioIdx int
	filtroCanalIdx int

	selecionada *notificacao.Notificacao

	total24h int

	loading bool
	err     error
}

func NewNotificacoesModel(notificacaoSvc *notificacao.Service) NotificacoesModel {
	columns := []table.Column{
		{Title: "Cliente", Width: 24},
		{Title: "Data/Hora", Width: 17},
		{Title: "Tipo da Régua", Width: 14},
		{Title: "Canal", Width: 10},
		{Title: "Status", Width: 10},
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

	return NotificacoesModel{
		notificacaoService: notificacaoSvc,
		table:              t,
		loading:            true,
	}
}

func (m NotificacoesModel) Title() string { return "Histórico de Disparos" }

func (m NotificacoesModel) ShortHelp() string {
	if m.selecionada != nil {
		return "Esc: fechar"
	}
	return "Esc: voltar | Enter: ver mensagem | s: status | c: canal | r: atualizar"
}

func (m NotificacoesModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m NotificacoesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadNotificacoesMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			m.notificacoes = nil
		} else {
			m.err = nil
			m.notificacoes = msg.notificacoes
		}
		m.total24h = notificacao.EnviadasUltimas24h(m.notificacoes, time.Now())
		m.aplicarFiltros()
		return m, nil

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.table.SetHeight(msg.Height - 12)
		return m, nil

	case tea.KeyMsg:
		if m.selecionada != nil {
			if msg.String() == "esc" || msg.String() == "q" {
				m.selecionada = nil
			}
			return m, nil
		}

		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "s":
			m.filtroEnvioIdx = (m.filtroEnvioIdx + 1) % len(filtrosEnvio)
			m.loading = true
			return m, m.loadCmd()
		case "c":
			m.filtroCanalIdx = (m.filtroCanalIdx + 1) % len(filtrosCanal)
			m.aplicarFiltros()
			return m, nil
		case "enter":
			idx := m.table.Cursor()
			if idx >= 0 && idx < len(m.filtradas) {
				n := m.filtradas[idx]
				m.selecionada = &n
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *NotificacoesModel) aplicarFiltros() {
	canal := filtrosCanal[m.filtroCanalIdx].canal
	if canal == "" {
		m.filtradas = m.notificacoes
	} else {
		m.filtradas = notificacao.FiltrarPorCanal(m.notificacoes, canal)
	}

	m.refreshTable()
}

func (m *NotificacoesModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.filtradas))
	for _, n := range m.filtradas {
		rows = append(rows, table.Row{
			n.NomeCliente(),
			dateutil.FormatDateTime(n.DataReferencia()),
			n.TipoRegua.Label(),
			string(n.TipoCanal),
			n.StatusEnvio.Label(),
		})
	}
	m.table.SetRows(rows)

	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(0)
	}
}

func (m NotificacoesModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Carregando notificações...")
	}

	if m.selecionada != nil {
		return m.modalView()
	}

	resumo := cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Mensagens Enviadas"),
		faintStyle.Render("Últimas 24 horas"),
		fmt.Sprintf("%d", m.total24h),
	))

	filtros := fmt.Sprintf("Status: [s] %s | Canal: [c] %s",
		active(filtrosEnvio[m.filtroEnvioIdx].label),
		active(filtrosCanal[m.filtroCanalIdx].label),
	)

	var body string
	if len(m.filtradas) == 0 {
		body = faintStyle.Render("Nenhuma notificação encontrada")
	} else {
		body = tableBorderStyle.Render(m.table.View())
	}

	lines := []string{
		titleStyle.Render(m.Title()),
		"",
		resumo,
		"",
		filtros,
		body,
	}

	if m.err != nil {
		lines = append(lines, errorStyle.Render(fmt.Sprintf("Erro: %v", m.err)))
	}

	return lipgloss.NewStyle().Padding(1).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m NotificacoesModel) modalView() string {
	n := m.selecionada

	valor := "-"
	if !n.CobrancaValor.IsZero() {
		valor = brfmt.Moeda(n.CobrancaValor)
	}

	referencia := n.CobrancaReferencia
	if referencia == "" {
		referencia = "-"
	}
	email := n.ClienteEmail
	if email == "" {
		email = "-"
	}

	info := lipgloss.JoinVertical(lipgloss.Left,
		fmt.Sprintf("Cliente:        %s", n.NomeCliente()),
		fmt.Sprintf("Email:          %s", email),
		fmt.Sprintf("Referência:     %s", referencia),
		fmt.Sprintf("Valor:          %s", valor),
		fmt.Sprintf("Vencimento:     %s", dateutil.FormatDate(n.CobrancaDataVencimento)),
		fmt.Sprintf("Dias em atraso: %d", n.DiasEmAtraso),
		fmt.Sprintf("Data/Hora:      %s", dateutil.FormatDateTime(n.DataReferencia())),
		fmt.Sprintf("Tipo da Régua:  %s", n.TipoRegua.Label()),
		fmt.Sprintf("Canal:          %s", n.TipoCanal),
		fmt.Sprintf("Status:         %s", StatusNotificacao(n.StatusEnvio)),
	)

	mensagem := n.ConteudoMensagem
	if mensagem == "" {
		mensagem = faintStyle.Render("Nenhum conteúdo disponível")
	}

	panel := lipgloss.NewStyle().
		Padding(1, 2).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Width(64).
		Render(lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("Conteúdo da Mensagem"),
			"",
			info,
			"",
			titleStyle.Render("Mensagem:"),
			mensagem,
			"",
			faintStyle.Render("(Esc para fechar)"),
		))

	return lipgloss.NewStyle().Padding(1).Render(panel)
}

// Messages

type loadNotificacoesMsg struct {
	notificacoes []notificacao.Notificacao
	err          error
}

// O filtro de status usa a action dedicada quando existe; outros valores
// cairiam no fallback por query param.
func (m NotificacoesModel) loadCmd() tea.Cmd {
	status := filtrosEnvio[m.filtroEnvioIdx].status

	return func() tea.Msg {
		ctx := context.Background()

		var (
			notificacoes []notificacao.Notificacao
			err          error
		)

		switch status {
		case notificacao.StatusEnviado:
			notificacoes, err = m.notificacaoService.ListarEnviadas(ctx)
		case notificacao.StatusAgendado:
			notificacoes, err = m.notificacaoService.ListarAgendadas(ctx)
		case notificacao.StatusFalha:
			notificacoes, err = m.notificacaoService.ListarComFalha(ctx)
		case "":
			notificacoes, err = m.notificacaoService.Listar(ctx)
		default:
			notificacoes, err = m.notificacaoService.ListarPorStatus(ctx, status)
		}

		return loadNotificacoesMsg{notificacoes: notificacoes, err: err}
	}
}

package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/sistema-cobranca/console/cmd/console/internal/view"
	"github.com/sistema-cobranca/console/internal/api"
	"github.com/sistema-cobranca/console/internal/cliente"
	"github.com/sistema-cobranca/console/internal/cobranca"
	"github.com/sistema-cobranca/console/internal/config"
	"github.com/sistema-cobranca/console/internal/export"
	"github.com/sistema-cobranca/console/internal/notificacao"
	"github.com/sistema-cobranca/console/internal/plano"
)

type model struct {
	clienteService     *cliente.Service
	cobrancaService    *cobranca.Service
	notificacaoService *notificacao.Service
	planoService       *plano.Service
	exportService      *export.Service

	currentView View

	dashboardView    view.DashboardModel
	clientesView     view.ClientesModel
	clienteFormView  view.ClienteFormModel
	cobrancasView    view.CobrancasModel
	notificacoesView view.NotificacoesModel
	planosView       view.PlanosModel
	exportView       view.ExportModel
}

type View int

const (
	ViewMenu         View = 0
	ViewDashboard    View = 1
	ViewClientes     View = 2
	ViewClienteForm  View = 3
	ViewCobrancas    View = 4
	ViewNotificacoes View = 5
	ViewPlanos       View = 6
	ViewExport       View = 7
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// O log vai para arquivo para não rabiscar a tela do terminal.
	logFile, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		slog.Error("failed to open log file", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(logFile, nil)))

	client := api.NewClient(cfg.API.BaseURL)

	clienteSvc := cliente.NewService(client)
	cobrancaSvc := cobranca.NewService(client)
	notificacaoSvc := notificacao.NewService(client)
	planoSvc := plano.NewService(client)
	exportSvc := export.NewService(cobrancaSvc)

	return model{
		clienteService:     clienteSvc,
		cobrancaService:    cobrancaSvc,
		notificacaoService: notificacaoSvc,
		planoService:       planoSvc,
		exportService:      exportSvc,
		currentView:        ViewMenu,
		dashboardView:      view.NewDashboardModel(cobrancaSvc),
		clientesView:       view.NewClientesModel(clienteSvc),
		cobrancasView:      view.NewCobrancasModel(cobrancaSvc),
		notificacoesView:   view.NewNotificacoesModel(notificacaoSvc),
		planosView:         view.NewPlanosModel(planoSvc),
		exportView:         view.NewExportModel(exportSvc),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewDashboard
				m.dashboardView = view.NewDashboardModel(m.cobrancaService)

				return m, m.dashboardView.Init()
			case "2":
				m.currentView = ViewClientes
				m.clientesView = view.NewClientesModel(m.clienteService)

				return m, m.clientesView.Init()
			case "3":
				m.currentView = ViewCobrancas
				m.cobrancasView = view.NewCobrancasModel(m.cobrancaService)

				return m, m.cobrancasView.Init()
			case "4":
				m.currentView = ViewNotificacoes
				m.notificacoesView = view.NewNotificacoesModel(m.notificacaoService)

				return m, m.notificacoesView.Init()
			case "5":
				m.currentView = ViewPlanos
				m.planosView = view.NewPlanosModel(m.planoService)

				return m, m.planosView.Init()
			case "6":
				m.currentView = ViewExport
				m.exportView = view.NewExportModel(m.exportService)

				return m, m.exportView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	case view.AbrirFormClienteMsg:
		m.currentView = ViewClienteForm
		m.clienteFormView = view.NewClienteFormModel(m.clienteService, m.planoService, msg.EditarID)

		return m, m.clienteFormView.Init()
	case view.VoltarClientesMsg:
		m.currentView = ViewClientes
		m.clientesView = view.NewClientesModel(m.clienteService)

		return m, m.clientesView.Init()
	}

	switch m.currentView {
	case ViewDashboard:
		var newModel tea.Model
		newModel, cmd = m.dashboardView.Update(msg)
		m.dashboardView = newModel.(view.DashboardModel)
	case ViewClientes:
		var newModel tea.Model
		newModel, cmd = m.clientesView.Update(msg)
		m.clientesView = newModel.(view.ClientesModel)
	case ViewClienteForm:
		var newModel tea.Model
		newModel, cmd = m.clienteFormView.Update(msg)
		m.clienteFormView = newModel.(view.ClienteFormModel)
	case ViewCobrancas:
		var newModel tea.Model
		newModel, cmd = m.cobrancasView.Update(msg)
		m.cobrancasView = newModel.(view.CobrancasModel)
	case ViewNotificacoes:
		var newModel tea.Model
		newModel, cmd = m.notificacoesView.Update(msg)
		m.notificacoesView = newModel.(view.NotificacoesModel)
	case ViewPlanos:
		var newModel tea.Model
		newModel, cmd = m.planosView.Update(msg)
		m.planosView = newModel.(view.PlanosModel)
	case ViewExport:
		var newModel tea.Model
		newModel, cmd = m.exportView.Update(msg)
		m.exportView = newModel.(view.ExportModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Sistema de Cobrança\n\n" +
				"1. Dashboard\n" +
				"2. Clientes\n" +
				"3. Cobranças\n" +
				"4. Notificações\n" +
				"5. Planos\n" +
				"6. Exportar Cobranças\n\n" +
				"q. Sair",
		)
	case ViewDashboard:
		return m.dashboardView.View()
	case ViewClientes:
		return m.clientesView.View()
	case ViewClienteForm:
		return m.clienteFormView.View()
	case ViewCobrancas:
		return m.cobrancasView.View()
	case ViewNotificacoes:
		return m.notificacoesView.View()
	case ViewPlanos:
		return m.planosView.View()
	case ViewExport:
		return m.exportView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run console", "error", err)
		os.Exit(1)
	}
}

package view

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/sistema-cobranca/console/internal/cobranca"
	"github.com/sistema-cobranca/console/internal/notificacao"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	faintStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	activeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	cardStyle = lipgloss.NewStyle().
			Padding(0, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))

	tableBorderStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color("240"))
)

func active(s string) string {
	return activeStyle.Render(s)
}

// StatusCobranca renders the payment status with its usual color.
func StatusCobranca(s cobranca.Status) string {
	var color lipgloss.Color

	switch s {
	case cobranca.StatusPago:
		color = lipgloss.Color("42")
	case cobranca.StatusPendente:
		color = lipgloss.Color("220")
	case cobranca.StatusAtrasado:
		color = lipgloss.Color("196")
	case cobranca.StatusCancelado:
		color = lipgloss.Color("245")
	default:
		color = lipgloss.Color("252")
	}

	return lipgloss.NewStyle().Foreground(color).Render(s.Label())
}

// StatusNotificacao renders the delivery status with its usual color.
func StatusNotificacao(s notificacao.Status) string {
	var color lipgloss.Color

	switch s {
	case notificacao.StatusEnviado:
		color = lipgloss.Color("42")
	case notificacao.StatusAgendado:
		color = lipgloss.Color("220")
	case notificacao.StatusFalha:
		color = lipgloss.Color("196")
	default:
		color = lipgloss.Color("252")
	}

	return lipgloss.NewStyle().Foreground(color).Render(s.Label())
}

package view

import (
	tea "github.com/charmbracelet/bubbletea"
)

// CommonModel is embedded by all views.
type CommonModel struct {
	Width  int
	Height int
}

// BackMsg returns control to the main menu.
type BackMsg struct{}

func Back() tea.Msg {
	return BackMsg{}
}

// AbrirFormClienteMsg asks the root model to open the customer form.
// EditarID == nil means a new customer.
type AbrirFormClienteMsg struct {
	EditarID *int64
}

// VoltarClientesMsg closes the form and returns to the (refetched)
// customer list.
type VoltarClientesMsg struct{}

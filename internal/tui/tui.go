// SPDX-License-Identifier: Apache-2.0

// Package tui implements the interactive terminal client: login and
// registration flows, the fiscal year catalog, the received-item and
// expenditure ledgers, and the photo gallery listing.
package tui

import (
	"context"
	"errors"

	"github.com/festivize/festivize/internal/adapter"
	"github.com/festivize/festivize/internal/logger"
	"github.com/festivize/festivize/internal/session"
	"github.com/festivize/festivize/internal/years"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrUserQuit is returned by Run when the operator quit the program.
var ErrUserQuit = errors.New("user quit")

// TUI owns the terminal program and the client-side state it renders.
type TUI struct {
	manager *session.Manager
	years   *years.Controller
	gateway adapter.ServerGateway
	logger  *logger.Logger
}

// New constructs the terminal UI.
func New(manager *session.Manager, yearsCtl *years.Controller, gateway adapter.ServerGateway, log *logger.Logger) *TUI {
	return &TUI{
		manager: manager,
		years:   yearsCtl,
		gateway: gateway,
		logger:  log,
	}
}

// Run starts the terminal program and blocks until the operator quits.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.manager, t.years, t.gateway, t.logger)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}

	return nil
}

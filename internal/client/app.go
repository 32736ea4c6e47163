package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/festivize/festivize/internal/adapter"
	"github.com/festivize/festivize/internal/config"
	"github.com/festivize/festivize/internal/logger"
	"github.com/festivize/festivize/internal/session"
	"github.com/festivize/festivize/internal/store"
	"github.com/festivize/festivize/internal/tui"
	"github.com/festivize/festivize/internal/workers"
	"github.com/festivize/festivize/internal/years"
)

// App is the terminal client runtime.
type App struct {
	cfg     *config.ClientConfig
	logger  *logger.Logger
	manager *session.Manager
	watcher *session.ExpiryWatcher
	years   *years.Controller
	ui      *tui.TUI
}

// NewApp wires the client from configuration.
func NewApp(cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	gateway := adapter.NewHTTPServerGateway(adapter.HTTPClientConfig{
		BaseURL: cfg.ServerURL,
		Timeout: cfg.RequestTimeout,
	})

	var tokenStore session.TokenStore
	if cfg.SessionFile != "" {
		fileStore, err := store.NewFileTokenStore(cfg.SessionFile)
		if err != nil {
			return nil, fmt.Errorf("create token store: %w", err)
		}
		tokenStore = fileStore
	}

	manager := session.NewManager(gateway, tokenStore, log)
	watcher := session.NewExpiryWatcher(manager, cfg.ExpiryCheckInterval)
	yearsCtl := years.NewController(gateway, manager, log)
	ui := tui.New(manager, yearsCtl, gateway, log)

	return &App{
		cfg:     cfg,
		logger:  log,
		manager: manager,
		watcher: watcher,
		years:   yearsCtl,
		ui:      ui,
	}, nil
}

// Run starts the background workers and the terminal UI, and blocks until the
// operator quits.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Subscribe before the watcher starts so no identity transition is
	// missed between wiring and the UI loop.
	events := a.manager.Subscribe()
	go a.years.Run(ctx, events)

	// A session restored from disk published its identity event before this
	// subscription existed; fetch the year catalog explicitly.
	if a.manager.IsAuthenticated() {
		go a.years.Refresh(ctx)
	}

	workers.NewWorkers(a.watcher).Run()
	defer a.watcher.Stop()

	if err := a.ui.Run(ctx); err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		return err
	}

	return nil
}

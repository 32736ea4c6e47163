package session

import (
	"context"
	"sync"
	"time"
)

// DefaultExpiryInterval is how often the watcher re-checks the credential
// when no interval is configured.
const DefaultExpiryInterval = time.Minute

// ExpiryWatcher periodically checks the manager's credential and forces a
// logout the moment expiry is detected. "Expired" is a transient condition:
// by the time any consumer observes the session again it is simply
// unauthenticated.
//
// The watcher is idle until Start is called and must be stopped when the
// owning session is torn down, so it never acts on a discarded session.
type ExpiryWatcher struct {
	manager  *Manager
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewExpiryWatcher creates a watcher for m. If interval is zero or negative
// it defaults to DefaultExpiryInterval.
func NewExpiryWatcher(m *Manager, interval time.Duration) *ExpiryWatcher {
	if interval <= 0 {
		interval = DefaultExpiryInterval
	}
	return &ExpiryWatcher{manager: m, interval: interval}
}

// Start stops any previously running watcher, then launches a background
// goroutine that checks for expiry every interval. The goroutine exits when
// ctx is cancelled or Stop is called.
func (w *ExpiryWatcher) Start(ctx context.Context) {
	w.Stop()

	w.mu.Lock()
	watchCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		for {
			select {
			case <-watchCtx.Done():
				return
			case <-t.C:
				if w.manager.expired() {
					w.manager.logger.Warn().Msg("credential expired, forcing logout")
					w.manager.Logout()
				}
			}
		}
	}()
}

// Stop cancels the background goroutine's context and blocks until it has
// fully exited. Safe to call when the watcher is not running.
func (w *ExpiryWatcher) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}

// Run implements the workers.Worker interface: it starts the watcher against
// the background context. Teardown still goes through Stop.
func (w *ExpiryWatcher) Run() {
	w.Start(context.Background())
}

// SPDX-License-Identifier: Apache-2.0

// Package years maintains the catalog of fiscal years and the currently
// selected one, and exposes the closed/open flag that gates every mutating
// ledger operation.
//
// The controller consumes the session manager's identity-event stream: every
// identity change triggers exactly one refresh of the year list, tagged with
// the identity version at dispatch. A refresh whose version no longer matches
// the live identity by the time it completes is discarded, so a fetch
// triggered by a user who has since logged out can never write state.
package years

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/festivize/festivize/internal/logger"
	"github.com/festivize/festivize/internal/session"
	"github.com/festivize/festivize/models"
)

// Gateway is the slice of the server gateway the controller needs.
// [adapter.ServerGateway] satisfies it.
type Gateway interface {
	GetYears(ctx context.Context) ([]models.YearRecord, error)
	CreateYear(ctx context.Context, year int) (models.YearRecord, string, error)
	UpdateYearStatus(ctx context.Context, year int, isClosed bool) (bool, string, error)
}

// identitySource lets the controller detect stale refreshes.
// *session.Manager satisfies it.
type identitySource interface {
	IdentityVersion() int64
}

// Controller holds the known fiscal years and the current selection.
//
// The network-backed operations share one loading/error pair; concurrent
// calls contend on it and the last writer wins. That is an accepted
// simplification for this domain's low write concurrency, not a
// mutual-exclusion guarantee.
type Controller struct {
	gateway Gateway
	source  identitySource
	logger  *logger.Logger

	mu          sync.RWMutex
	currentYear int
	available   []models.YearRecord
	loading     bool
	lastErr     string
}

// NewController builds a controller whose selection defaults to the calendar
// year at construction time. The selection is never persisted; it is
// re-derived on every program start.
func NewController(gateway Gateway, source identitySource, log *logger.Logger) *Controller {
	return &Controller{
		gateway:     gateway,
		source:      source,
		logger:      log,
		currentYear: time.Now().Year(),
	}
}

// Run consumes identity events until ctx is cancelled or the channel closes.
// An authenticated identity triggers a year refresh; an unauthenticated one
// clears the catalog but leaves the selection alone. Refreshes run inside the
// loop, so they are strictly ordered after the event that caused them and
// never race a newer identity.
func (c *Controller) Run(ctx context.Context, events <-chan session.IdentityEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			if ev.Identity == nil {
				c.clearCatalog()
				continue
			}
			c.refreshYears(ctx, ev.Version)
		}
	}
}

// Refresh fetches the year list against the current identity. Used at startup
// when a restored session predates the event subscription.
func (c *Controller) Refresh(ctx context.Context) {
	c.refreshYears(ctx, c.source.IdentityVersion())
}

// refreshYears fetches the known-years list and reconciles the selection:
//
//  1. an empty list keeps the current selection;
//  2. a selection missing from the list jumps to the most recent year;
//  3. otherwise the selection is left unchanged.
//
// The result is dropped wholesale when the identity version moved while the
// request was in flight.
func (c *Controller) refreshYears(ctx context.Context, version int64) {
	c.setLoading(true)
	defer c.setLoading(false)

	fetched, err := c.gateway.GetYears(ctx)

	// Staleness is decided first: an outcome fetched under a previous
	// identity must not touch state either way, error included.
	if c.source.IdentityVersion() != version {
		c.logger.Warn().Int64("version", version).Msg("dropping stale year refresh")
		return
	}

	if err != nil {
		c.logger.Err(err).Msg("failed to fetch years")
		c.setErr("failed to fetch available years")
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.lastErr = ""
	c.available = sortedDescending(fetched)

	if len(c.available) == 0 {
		return
	}
	if !containsYear(c.available, c.currentYear) {
		// Years are unique integers, so the first element after the
		// descending sort is max(year).
		c.currentYear = c.available[0].Year
	}
}

// CreateYear creates a fiscal year and, on success, switches the selection to
// it — creating a year implies the operator wants to work in it next.
//
// Authorization is not enforced here: callers check IsAdmin for the UI, and
// the backend is the authority. On failure neither the catalog nor the
// selection changes.
func (c *Controller) CreateYear(ctx context.Context, year int) models.Result {
	c.setLoading(true)
	defer c.setLoading(false)

	created, message, err := c.gateway.CreateYear(ctx, year)
	if err != nil {
		c.logger.Err(err).Int("year", year).Msg("create year rejected")
		c.setErr(err.Error())
		return models.Failure(err.Error())
	}

	c.mu.Lock()
	c.lastErr = ""
	c.available = sortedDescending(append(withoutYear(c.available, created.Year), created))
	c.currentYear = created.Year
	c.mu.Unlock()

	if message == "" {
		message = "year created"
	}
	return models.Success(message)
}

// UpdateYearStatus toggles the closed flag of an existing year. On success
// only the matching record is patched; the selection never moves. On failure
// the catalog is untouched and the server message is surfaced.
func (c *Controller) UpdateYearStatus(ctx context.Context, year int, isClosed bool) models.Result {
	c.setLoading(true)
	defer c.setLoading(false)

	confirmed, message, err := c.gateway.UpdateYearStatus(ctx, year, isClosed)
	if err != nil {
		c.logger.Err(err).Int("year", year).Msg("update year status rejected")
		c.setErr(err.Error())
		return models.Failure(err.Error())
	}

	c.mu.Lock()
	c.lastErr = ""
	for i := range c.available {
		if c.available[i].Year == year {
			c.available[i].IsClosed = confirmed
			break
		}
	}
	c.mu.Unlock()

	if message == "" {
		message = "year status updated"
	}
	return models.Success(message)
}

// SetCurrentYear changes the selection unconditionally. No membership check:
// consumers are expected to offer only already-known years as choices.
func (c *Controller) SetCurrentYear(year int) {
	c.mu.Lock()
	c.currentYear = year
	c.mu.Unlock()
}

// CurrentYear returns the selected fiscal year.
func (c *Controller) CurrentYear() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.currentYear
}

// AvailableYears returns a copy of the known years, sorted descending.
func (c *Controller) AvailableYears() []models.YearRecord {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.YearRecord, len(c.available))
	copy(out, c.available)
	return out
}

// IsCurrentYearClosed reports whether the selected year is closed. A
// selection that is not (yet) in the catalog reads as open — fail-open by
// design, matching the deployed behavior; do not tighten this without
// confirming intended semantics.
func (c *Controller) IsCurrentYearClosed() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, y := range c.available {
		if y.Year == c.currentYear {
			return y.IsClosed
		}
	}
	return false
}

// Loading reports whether any network-backed year operation is in flight.
func (c *Controller) Loading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loading
}

// Err returns the message of the most recent failed operation, empty after
// any success.
func (c *Controller) Err() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastErr
}

func (c *Controller) clearCatalog() {
	c.mu.Lock()
	c.available = nil
	c.lastErr = ""
	c.mu.Unlock()
}

func (c *Controller) setLoading(v bool) {
	c.mu.Lock()
	c.loading = v
	c.mu.Unlock()
}

func (c *Controller) setErr(msg string) {
	c.mu.Lock()
	c.lastErr = msg
	c.mu.Unlock()
}

func sortedDescending(years []models.YearRecord) []models.YearRecord {
	out := make([]models.YearRecord, len(years))
	copy(out, years)
	sort.Slice(out, func(i, j int) bool { return out[i].Year > out[j].Year })
	return out
}

func containsYear(years []models.YearRecord, year int) bool {
	for _, y := range years {
		if y.Year == year {
			return true
		}
	}
	return false
}

func withoutYear(years []models.YearRecord, year int) []models.YearRecord {
	out := years[:0]
	for _, y := range years {
		if y.Year != year {
			out = append(out, y)
		}
	}
	return out
}

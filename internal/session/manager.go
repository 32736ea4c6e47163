// SPDX-License-Identifier: Apache-2.0

// Package session owns the client-side authentication state: the bearer
// credential, the identity derived from it, and the expiry watcher that
// forces a logout when the credential runs out.
//
// The Manager is the single source of truth for "who is logged in and are
// they still allowed to be". Authorization flags (IsAuthenticated, IsAdmin)
// are derived getters recomputed on every call — they are never cached
// separately from the credential, so they cannot go stale.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/festivize/festivize/internal/logger"
	"github.com/festivize/festivize/internal/utils"
	"github.com/festivize/festivize/models"
)

// Identity is the claim set derived from a valid credential. An Identity
// exists if and only if the stored token is present, decodable, and not yet
// expired at the time of check. It is replaced wholesale when the credential
// changes, never mutated.
type Identity struct {
	Email     string
	Role      string
	UserID    string
	ExpiresAt time.Time
}

// IdentityEvent is published on every identity change (login, logout, forced
// expiry). Identity is nil when the session became unauthenticated. Version
// increases monotonically with every change; consumers tag work they dispatch
// with it and drop results whose version no longer matches.
type IdentityEvent struct {
	Version  int64
	Identity *Identity
}

// Gateway is the slice of the server gateway the session manager needs.
// [adapter.ServerGateway] satisfies it.
type Gateway interface {
	SetToken(token string)
	ClearToken()
	Login(ctx context.Context, email, password string) (token, message string, err error)
	Register(ctx context.Context, name, email, password, role string) (message string, err error)
}

// TokenStore persists the credential across client restarts, the way the
// original deployment kept it in browser localStorage. Implementations must
// tolerate concurrent Save/Clear calls.
type TokenStore interface {
	// Load returns the stored token or ErrNoStoredToken.
	Load() (string, error)
	// Save stores the token, replacing any previous one.
	Save(token string) error
	// Clear removes the stored token. Clearing an empty store is a no-op.
	Clear() error
}

// ErrNoStoredToken is returned by TokenStore.Load when nothing is stored.
var ErrNoStoredToken = errors.New("no stored token")

const genericLoginFailure = "login failed"

// Manager owns the credential and derived identity for one client process.
//
// All exported methods are safe for concurrent use. Login and Register are
// deliberately not serialized against each other: a second call racing the
// first is allowed, and the last credential write wins.
type Manager struct {
	gateway Gateway
	store   TokenStore
	logger  *logger.Logger

	// now is stubbed in tests to drive expiry without sleeping.
	now func() time.Time

	mu       sync.RWMutex
	token    string
	identity *Identity
	version  int64
	loading  bool
	subs     []chan IdentityEvent
}

// NewManager constructs a Manager. store may be nil, in which case the
// credential lives only for the lifetime of the process.
//
// If the store holds a token from a previous run it is adopted immediately,
// but only when it still decodes and has a future expiry; anything else is
// discarded the same way a live expiry would be.
func NewManager(gateway Gateway, store TokenStore, log *logger.Logger) *Manager {
	m := &Manager{
		gateway: gateway,
		store:   store,
		logger:  log,
		now:     time.Now,
	}

	if store != nil {
		token, err := store.Load()
		if err != nil {
			if !errors.Is(err, ErrNoStoredToken) {
				log.Err(err).Msg("failed to load stored token")
			}
			return m
		}
		if !m.adoptToken(token) {
			log.Warn().Msg("stored token was expired or undecodable, discarded")
		}
	}

	return m
}

// Login exchanges credentials for a bearer token and, on success, derives the
// new identity and publishes an identity-changed event.
//
// Failures never alter existing session state: a rejected login or a network
// error leaves whoever was logged in logged in. The one exception required by
// the credential rules is a server that returns an already-expired or
// undecodable token — that forces a logout, exactly as a live expiry would.
func (m *Manager) Login(ctx context.Context, email, password string) models.Result {
	m.setLoading(true)
	defer m.setLoading(false)

	token, message, err := m.gateway.Login(ctx, email, password)
	if err != nil {
		m.logger.Err(err).Str("email", email).Msg("login request failed")
		return models.Failure(errorMessage(err, genericLoginFailure))
	}
	if token == "" {
		if message == "" {
			message = genericLoginFailure
		}
		return models.Failure(message)
	}

	if !m.adoptToken(token) {
		m.logger.Warn().Str("email", email).Msg("server returned unusable token")
		return models.Failure(genericLoginFailure)
	}

	if m.store != nil {
		if err := m.store.Save(token); err != nil {
			m.logger.Err(err).Msg("failed to persist token")
		}
	}

	if message == "" {
		message = "login successful"
	}
	return models.Success(message)
}

// Register creates a new account. It never establishes a session: a
// successful registration still requires an explicit Login.
func (m *Manager) Register(ctx context.Context, name, email, password, role string) models.Result {
	m.setLoading(true)
	defer m.setLoading(false)

	message, err := m.gateway.Register(ctx, name, email, password, role)
	if err != nil {
		m.logger.Err(err).Str("email", email).Msg("register request failed")
		return models.Failure(errorMessage(err, "registration failed"))
	}

	if message == "" {
		message = "registration successful"
	}
	return models.Success(message)
}

// Logout clears the credential and identity unconditionally. It is
// idempotent, always succeeds, and has no network effect beyond clearing the
// gateway's stored token.
func (m *Manager) Logout() {
	m.mu.Lock()
	m.token = ""
	m.identity = nil
	m.version++
	ev := IdentityEvent{Version: m.version}
	m.publishLocked(ev)
	m.mu.Unlock()

	m.gateway.ClearToken()
	if m.store != nil {
		if err := m.store.Clear(); err != nil {
			m.logger.Err(err).Msg("failed to clear stored token")
		}
	}
}

// IsAuthenticated reports whether an identity is present and not expired.
// Recomputed on every call. An expired identity reads as unauthenticated
// immediately; the expiry watcher performs the actual state clearing within
// one polling interval.
func (m *Manager) IsAuthenticated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.identity != nil && m.now().Before(m.identity.ExpiresAt)
}

// IsAdmin reports whether the current identity is an authenticated admin.
// A non-authenticated identity is never admin, regardless of stale role data.
func (m *Manager) IsAdmin() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.identity != nil &&
		m.now().Before(m.identity.ExpiresAt) &&
		m.identity.Role == models.RoleAdmin
}

// Identity returns a copy of the current identity, or nil when
// unauthenticated.
func (m *Manager) Identity() *Identity {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.identity == nil {
		return nil
	}
	id := *m.identity
	return &id
}

// Token returns the stored credential string, empty when logged out.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

// Loading reports whether a login or register call is in flight. Shared
// between the two operations; last writer wins.
func (m *Manager) Loading() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loading
}

// IdentityVersion returns the current identity version. Consumers compare it
// against the version they captured at dispatch time to detect staleness.
func (m *Manager) IdentityVersion() int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.version
}

// Subscribe returns a channel that receives an IdentityEvent for every
// identity change from this point on. The channel is buffered; a subscriber
// that stops draining loses events rather than blocking the manager.
func (m *Manager) Subscribe() <-chan IdentityEvent {
	ch := make(chan IdentityEvent, 16)
	m.mu.Lock()
	m.subs = append(m.subs, ch)
	m.mu.Unlock()
	return ch
}

// adoptToken derives an identity from token and installs both. A token that
// fails to decode or is already expired behaves identically to having no
// token at all: state is cleared and false is returned.
func (m *Manager) adoptToken(token string) bool {
	claims, err := utils.DecodeClaimsUnverified(token)
	if err != nil || claims.ExpiresAt == nil {
		m.clearState()
		return false
	}

	expiresAt := claims.ExpiresAt.Time
	if !m.now().Before(expiresAt) {
		m.clearState()
		return false
	}

	m.mu.Lock()
	m.token = token
	m.identity = &Identity{
		Email:     claims.Email,
		Role:      claims.Role,
		UserID:    claims.UserID,
		ExpiresAt: expiresAt,
	}
	m.version++
	ev := IdentityEvent{Version: m.version, Identity: m.identity}
	m.publishLocked(ev)
	m.mu.Unlock()

	m.gateway.SetToken(token)
	return true
}

// clearState is adoptToken's failure path: identical to Logout but without
// touching the token store (the caller decides whether persistence changes).
func (m *Manager) clearState() {
	m.mu.Lock()
	hadState := m.token != "" || m.identity != nil
	m.token = ""
	m.identity = nil
	if hadState {
		m.version++
		m.publishLocked(IdentityEvent{Version: m.version})
	}
	m.mu.Unlock()

	m.gateway.ClearToken()
}

// publishLocked sends ev to all subscribers without blocking.
// Callers must hold m.mu.
func (m *Manager) publishLocked(ev IdentityEvent) {
	for _, ch := range m.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

func (m *Manager) setLoading(v bool) {
	m.mu.Lock()
	m.loading = v
	m.mu.Unlock()
}

// expired reports whether an identity is present but past its expiry.
// Used by the watcher: a missing identity is not "expired", it is simply
// unauthenticated and needs no transition.
func (m *Manager) expired() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.identity != nil && !m.now().Before(m.identity.ExpiresAt)
}

func errorMessage(err error, fallback string) string {
	if err == nil || err.Error() == "" {
		return fallback
	}
	return err.Error()
}

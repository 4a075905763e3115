// Package session owns the client-side authentication state: the persisted
// token/user record, token decoding, and the login/register/logout flows.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cheikhtourad19/artshop-cli/internal/client/models"
	"github.com/cheikhtourad19/artshop-cli/internal/logging"
)

// State of the client session.
type State int

const (
	// StateInitializing means the persisted session has not been read yet.
	StateInitializing State = iota
	// StateAnonymous means no valid session is held.
	StateAnonymous
	// StateAuthenticated means a user and a non-expired token are held.
	StateAuthenticated
)

// authAPI is the subset of the backend API the manager needs. The full
// api.Client satisfies it.
type authAPI interface {
	Login(ctx context.Context, email, password string) (*models.AuthResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) error
}

// Manager is the single source of truth for "who is logged in". It restores
// the session from the Store on startup, performs the mutating auth
// operations against the backend, and broadcasts every state change to
// registered observers.
//
// A nil Store degrades to memory-only operation: the user can log in, but
// the session does not survive the process.
type Manager struct {
	api   authAPI
	store Store
	log   logging.Logger

	mu        sync.RWMutex
	state     State
	user      *models.User
	token     string
	observers []func(*models.User)

	now func() time.Time // test seam
}

// NewManager builds a Manager in the Initializing state. Call Init before
// using it.
func NewManager(api authAPI, store Store, log logging.Logger) *Manager {
	return &Manager{
		api:   api,
		store: store,
		log:   log,
		state: StateInitializing,
		now:   time.Now,
	}
}

// Init reads the persisted session and settles into Anonymous or
// Authenticated. Expiration is re-validated here, not only at login time: a
// stored token whose exp has passed is cleared instead of trusted until the
// first 401.
func (m *Manager) Init(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.store == nil {
		m.state = StateAnonymous
		return nil
	}

	token, errTok := m.store.Get(ctx, KeyToken)
	userRaw, errUsr := m.store.Get(ctx, KeyUser)

	if errors.Is(errTok, ErrNotFound) || errors.Is(errUsr, ErrNotFound) {
		// Either key missing: drop any partial record.
		m.state = StateAnonymous
		return m.store.ClearSession(ctx)
	}
	if errTok != nil {
		return fmt.Errorf("read stored token: %w", errTok)
	}
	if errUsr != nil {
		return fmt.Errorf("read stored user: %w", errUsr)
	}

	claims := DecodeToken(string(token))
	if IsExpired(claims, m.now().Unix()) {
		m.log.Info(ctx, "stored session expired, clearing")
		m.state = StateAnonymous
		return m.store.ClearSession(ctx)
	}

	var user models.User
	if err := json.Unmarshal(userRaw, &user); err != nil {
		m.log.Warn(ctx, "stored user record unreadable, clearing", "error", err)
		m.state = StateAnonymous
		return m.store.ClearSession(ctx)
	}

	m.state = StateAuthenticated
	m.user = &user
	m.token = string(token)
	m.log.Debug(ctx, "session restored", "user", user.Email)
	return nil
}

// Login authenticates against the backend. On success the session is
// persisted and the in-memory state updated; on failure nothing is written
// and the returned error carries the backend's message.
func (m *Manager) Login(ctx context.Context, email, password string) (*models.User, error) {
	resp, err := m.api.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	userRaw, err := json.Marshal(resp.User)
	if err != nil {
		return nil, fmt.Errorf("serialize user: %w", err)
	}

	m.mu.Lock()
	if m.store != nil {
		if err := m.store.SetSession(ctx, resp.Token, userRaw); err != nil {
			// The login itself succeeded; keep the in-memory session.
			m.log.Warn(ctx, "failed to persist session", "error", err)
		}
	}
	user := resp.User
	m.state = StateAuthenticated
	m.user = &user
	m.token = resp.Token
	m.mu.Unlock()

	m.notify()
	return &user, nil
}

// Register creates a new account. It does not change the session state; the
// caller is expected to log in separately.
func (m *Manager) Register(ctx context.Context, req models.RegisterRequest) error {
	return m.api.Register(ctx, req)
}

// Logout clears the persisted record and the in-memory state. It never talks
// to the backend and is idempotent: calling it on an anonymous session is a
// no-op ending in the same Anonymous state.
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	m.state = StateAnonymous
	m.user = nil
	m.token = ""
	store := m.store
	m.mu.Unlock()

	m.notify()

	if store != nil {
		return store.ClearSession(ctx)
	}
	return nil
}

// State returns the current session state.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// CurrentUser returns the logged-in user, or nil.
func (m *Manager) CurrentUser() *models.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user
}

// Token returns the bearer token of the current session, or "". It satisfies
// the API client's token source.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

// IsAuthenticated reports whether a session is held.
func (m *Manager) IsAuthenticated() bool {
	return m.State() == StateAuthenticated
}

// IsAdmin reports whether the current user has the administrator flag. This
// only gates UI; the backend remains the authority.
func (m *Manager) IsAdmin() bool {
	u := m.CurrentUser()
	return u != nil && u.IsAdmin
}

// OnChange registers fn to be called (with the new current user, possibly
// nil) after every state-changing operation.
func (m *Manager) OnChange(fn func(*models.User)) {
	m.mu.Lock()
	m.observers = append(m.observers, fn)
	m.mu.Unlock()
}

func (m *Manager) notify() {
	m.mu.RLock()
	observers := make([]func(*models.User), len(m.observers))
	copy(observers, m.observers)
	user := m.user
	m.mu.RUnlock()

	for _, fn := range observers {
		fn(user)
	}
}

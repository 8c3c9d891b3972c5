package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/fittrack/internal/client/models"
	"github.com/dmitrijs2005/fittrack/internal/logging"
)

// API is the part of the backend the session needs.
type API interface {
	Register(ctx context.Context, in models.RegisterInput) (*models.User, error)
	Login(ctx context.Context, username, password string) (string, error)
	CurrentUser(ctx context.Context) (*models.User, error)
}

// Manager is the session object shared by every consumer.
type Manager struct {
	api   API
	store Store
	log   logging.Logger

	mu    sync.RWMutex
	state State
	user  *models.User
}

func NewManager(api API, store Store, log logging.Logger) *Manager {
	if log == nil {
		log = logging.Discard()
	}
	return &Manager{api: api, store: store, log: log, state: Anonymous}
}

func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// User returns a copy of the current identity, or nil when anonymous.
func (m *Manager) User() *models.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return nil
	}
	u := *m.user
	return &u
}

func (m *Manager) IsAdmin() bool {
	u := m.User()
	return u != nil && u.IsAdmin
}

// Resolve applies role routing to the current identity.
func (m *Manager) Resolve(requested Surface) Surface {
	return Resolve(m.User(), requested)
}

// Token returns the persisted token, read fresh on every call.
func (m *Manager) Token(ctx context.Context) (string, error) {
	return m.store.Token(ctx)
}

// CachedUsername is the username saved with the last successful session.
func (m *Manager) CachedUsername(ctx context.Context) (string, error) {
	return m.store.Username(ctx)
}

// Expiry reports when the stored token expires, per its unverified claims.
func (m *Manager) Expiry(ctx context.Context) (time.Time, error) {
	tok, err := m.store.Token(ctx)
	if err != nil {
		return time.Time{}, err
	}
	if tok == "" {
		return time.Time{}, ErrEmptyToken
	}
	return TokenExpiry(tok)
}

func (m *Manager) set(state State, u *models.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = state
	m.user = u
}

// Restore rebuilds the session from the stored token at startup. Without a
// token nothing is sent to the server. A token the server no longer accepts
// is dropped and the session stays anonymous; that is not an error.
func (m *Manager) Restore(ctx context.Context) error {
	tok, err := m.store.Token(ctx)
	if err != nil {
		m.set(Anonymous, nil)
		return fmt.Errorf("read stored token: %w", err)
	}
	if tok == "" {
		m.set(Anonymous, nil)
		return nil
	}

	m.set(Restoring, nil)
	u, err := m.api.CurrentUser(ctx)
	if err != nil {
		m.log.Info(ctx, "stored session rejected, signing out", "error", err)
		if cerr := m.store.Clear(ctx); cerr != nil {
			m.log.Warn(ctx, "failed to clear stored session", "error", cerr)
		}
		m.set(Anonymous, nil)
		return nil
	}

	m.remember(ctx, u)
	m.set(Authenticated, u)
	return nil
}

// Login authenticates and loads the profile. The token is persisted before
// the profile request so that request is authenticated; if the profile
// cannot be loaded the slot gets back whatever session it held before, and
// the current state is left alone.
func (m *Manager) Login(ctx context.Context, username, password string) (*models.User, error) {
	tok, err := m.api.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}
	prevTok, prevName, err := m.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if err := m.store.SaveToken(ctx, tok); err != nil {
		return nil, fmt.Errorf("persist token: %w", err)
	}

	u, err := m.api.CurrentUser(ctx)
	if err != nil {
		if rerr := m.putBack(ctx, prevTok, prevName); rerr != nil {
			m.log.Warn(ctx, "failed to restore previous session after profile error", "error", rerr)
		}
		if prevTok == "" {
			m.set(Anonymous, nil)
		}
		return nil, err
	}

	m.remember(ctx, u)
	m.set(Authenticated, u)
	m.log.Info(ctx, "signed in", "username", u.Username, "admin", u.IsAdmin)
	return u, nil
}

func (m *Manager) snapshot(ctx context.Context) (tok, name string, err error) {
	if tok, err = m.store.Token(ctx); err != nil {
		return "", "", fmt.Errorf("read stored token: %w", err)
	}
	if name, err = m.store.Username(ctx); err != nil {
		return "", "", fmt.Errorf("read stored username: %w", err)
	}
	return tok, name, nil
}

// putBack writes a snapshot taken by snapshot into the store again.
func (m *Manager) putBack(ctx context.Context, tok, name string) error {
	if tok == "" {
		return m.store.Clear(ctx)
	}
	if err := m.store.SaveToken(ctx, tok); err != nil {
		return err
	}
	return m.store.SaveUsername(ctx, name)
}

// Register creates the account and signs in with the same credentials.
func (m *Manager) Register(ctx context.Context, in models.RegisterInput) (*models.User, error) {
	if _, err := m.api.Register(ctx, in); err != nil {
		return nil, err
	}
	return m.Login(ctx, in.Username, in.Password)
}

// Logout forgets the session locally. The server is not contacted.
func (m *Manager) Logout(ctx context.Context) error {
	m.set(Anonymous, nil)
	if err := m.store.Clear(ctx); err != nil {
		return err
	}
	return nil
}

func (m *Manager) remember(ctx context.Context, u *models.User) {
	if err := m.store.SaveUsername(ctx, u.Username); err != nil {
		m.log.Warn(ctx, "failed to cache username", "error", err)
	}
}

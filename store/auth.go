package store

import (
	"encoding/json"
	"errors"
	"sync"

	"github.com/harper-lane/storefront-api/models"
)

const authStorageName = "auth-storage"

type authState struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// Auth is the client-local auth session: the signed-in user and the bearer
// token the API issued. Persisted so a session survives restarts.
type Auth struct {
	mu      sync.Mutex
	state   authState
	persist Persistence
}

// NewAuth builds an auth store backed by the given adapter, restoring any
// previously persisted session.
func NewAuth(p Persistence) (*Auth, error) {
	a := &Auth{persist: p}
	data, err := p.Load(authStorageName)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return a, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(data, &a.state); err != nil {
		return nil, err
	}
	return a, nil
}

// SetAuth records a signed-in session.
func (a *Auth) SetAuth(user *models.User, token string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.state = authState{User: user, Token: token}
	data, err := json.Marshal(a.state)
	if err != nil {
		return err
	}
	return a.persist.Save(authStorageName, data)
}

// ClearAuth signs the session out and removes the persisted state.
func (a *Auth) ClearAuth() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.state = authState{}
	return a.persist.Delete(authStorageName)
}

// IsAuthenticated reports whether a session is active.
func (a *Auth) IsAuthenticated() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state.Token != "" && a.state.User != nil
}

// User returns the signed-in user, or nil.
func (a *Auth) User() *models.User {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state.User
}

// Token returns the bearer token for API requests, or the empty string.
func (a *Auth) Token() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state.Token
}

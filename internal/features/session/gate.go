package session

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/xyz-asif/hazardwatch/internal/pkg/logger"
	"github.com/xyz-asif/hazardwatch/pkg/errors"
)

// Credentials is the single accepted username and the bcrypt hash of its
// password.
type Credentials struct {
	Username     string
	PasswordHash []byte
}

// NewCredentials hashes password once so logins never compare plaintext.
func NewCredentials(username, password string) (Credentials, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return Credentials{}, fmt.Errorf("hash admin password: %w", err)
	}
	return Credentials{Username: username, PasswordHash: hash}, nil
}

// Gate guards the admin area with one shared session.
type Gate struct {
	mu        sync.RWMutex
	state     State
	sessionID string
	storage   Storage
	creds     Credentials
	log       *logger.Logger
}

// NewGate restores the persisted session from storage. A missing, unreadable
// or corrupt blob leaves the gate logged out.
func NewGate(ctx context.Context, storage Storage, creds Credentials, log *logger.Logger) *Gate {
	g := &Gate{storage: storage, creds: creds, log: log}

	raw, ok, err := storage.GetItem(ctx, StorageKey)
	switch {
	case err != nil:
		log.Warn("session storage unavailable, starting logged out: %v", err)
		return g
	case !ok:
		return g
	}

	var s stored
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		log.Warn("discarding corrupt session blob: %v", err)
		return g
	}
	if !s.IsAuthenticated {
		return g
	}
	if s.User == nil || strings.TrimSpace(s.User.Username) == "" {
		log.Warn("discarding session blob without a username")
		return g
	}

	g.state = State{IsAuthenticated: true, User: &User{Username: s.User.Username}}
	g.sessionID = s.SessionID
	if g.sessionID == "" {
		g.sessionID = uuid.NewString()
	}
	log.Info("restored session for %s", s.User.Username)
	return g
}

// Login checks the credentials and, on success, starts a new session and
// persists it. The returned id is the session that tokens must be bound to.
// A failed attempt leaves the current state untouched.
func (g *Gate) Login(ctx context.Context, username, password string) (State, string, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(g.creds.Username)) == 1
	passErr := bcrypt.CompareHashAndPassword(g.creds.PasswordHash, []byte(password))
	if !userOK || passErr != nil {
		return State{}, "", errors.ErrInvalidCredentials
	}

	next := State{IsAuthenticated: true, User: &User{Username: username}}
	id := uuid.NewString()

	g.mu.Lock()
	g.state = next
	g.sessionID = id
	g.mu.Unlock()

	g.persist(ctx, stored{State: next, SessionID: id})
	g.log.Info("admin %s logged in", username)
	return next, id, nil
}

// Logout ends the session and removes the persisted blob.
func (g *Gate) Logout(ctx context.Context) error {
	g.mu.Lock()
	g.state = State{}
	g.sessionID = ""
	g.mu.Unlock()

	if err := g.storage.RemoveItem(ctx, StorageKey); err != nil {
		return fmt.Errorf("remove session: %w", err)
	}
	return nil
}

// State returns a copy of the current session.
func (g *Gate) State() State {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := g.state
	if s.User != nil {
		u := *s.User
		s.User = &u
	}
	return s
}

func (g *Gate) IsAuthenticated() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.state.IsAuthenticated
}

// SessionID identifies the current login. It is empty while logged out.
func (g *Gate) SessionID() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.sessionID
}

// Valid reports whether a token issued for sessionID is still good.
func (g *Gate) Valid(sessionID string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.state.IsAuthenticated && sessionID != "" &&
		subtle.ConstantTimeCompare([]byte(sessionID), []byte(g.sessionID)) == 1
}

func (g *Gate) persist(ctx context.Context, s stored) {
	data, err := json.Marshal(s)
	if err != nil {
		g.log.Error("encode session: %v", err)
		return
	}
	if err := g.storage.SetItem(ctx, StorageKey, string(data)); err != nil {
		g.log.Warn("session not persisted: %v", err)
	}
}

// Package session keeps all user state. Nothing here is persisted:
// a session is created empty, lives in memory behind a signed token,
// and disappears on teardown or expiry. The only way data leaves the
// process is a user-triggered export.
package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/NikhilaRaj7337/uga-nutrition-app/models"
	"github.com/NikhilaRaj7337/uga-nutrition-app/services"
)

var ErrInvalidToken = errors.New("invalid or expired session token")

// State is one client's whole world: profile, goal with its frozen
// targets, food log, chat history, and an optional runtime LLM
// credential. Handlers lock it for the duration of a request; within
// one session operations are strictly sequential.
type State struct {
	sync.Mutex

	Profile     *models.UserProfile
	Goal        *models.Goal
	Targets     *models.DailyTargets
	Log         *services.FoodLog
	ChatHistory []models.ChatMessage
	APIKey      string

	id        string
	expiresAt time.Time
}

// Reset clears everything back to a fresh session ("Clear All Data"
// in Settings). The runtime credential survives: it is a setting, not
// user data.
func (s *State) Reset() {
	s.Profile = nil
	s.Goal = nil
	s.Targets = nil
	s.Log = services.NewFoodLog()
	s.ChatHistory = nil
}

// Store maps session IDs to their state. Tokens are signed JWTs so a
// token can be checked before touching the map.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*State
	secret   []byte
	ttl      time.Duration
}

func NewStore(secret string, ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*State),
		secret:   []byte(secret),
		ttl:      ttl,
	}
}

// Create starts a fresh session and returns its bearer token.
func (st *Store) Create() (string, error) {
	id := uuid.NewString()
	expiresAt := time.Now().Add(st.ttl)

	claims := jwt.RegisteredClaims{
		Subject:   id,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(st.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}

	state := &State{
		Log:       services.NewFoodLog(),
		id:        id,
		expiresAt: expiresAt,
	}

	st.mu.Lock()
	st.sessions[id] = state
	st.mu.Unlock()

	return token, nil
}

// Get resolves a token to its live state.
func (st *Store) Get(token string) (*State, error) {
	id, err := st.parseToken(token)
	if err != nil {
		return nil, err
	}

	st.mu.RLock()
	state, ok := st.sessions[id]
	st.mu.RUnlock()
	if !ok {
		return nil, ErrInvalidToken
	}
	if time.Now().After(state.expiresAt) {
		st.mu.Lock()
		delete(st.sessions, id)
		st.mu.Unlock()
		return nil, ErrInvalidToken
	}
	return state, nil
}

// Delete tears a session down. Unknown tokens are a no-op.
func (st *Store) Delete(token string) {
	id, err := st.parseToken(token)
	if err != nil {
		return
	}
	st.mu.Lock()
	delete(st.sessions, id)
	st.mu.Unlock()
}

// Sweep drops expired sessions; run periodically.
func (st *Store) Sweep() int {
	now := time.Now()
	st.mu.Lock()
	defer st.mu.Unlock()
	removed := 0
	for id, state := range st.sessions {
		if now.After(state.expiresAt) {
			delete(st.sessions, id)
			removed++
		}
	}
	return removed
}

// Len reports the number of live sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

func (st *Store) parseToken(token string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return st.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", ErrInvalidToken
	}
	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

/*
Package session contains the client's single source of truth for "who is logged in"
and "does this account still need onboarding".

This file defines the Store struct, which owns the token/user pair, mirrors every
mutation to durable storage before notifying observers, and exposes the auth
operations (Login, SignUp, Logout, UpdateUser) backed by the REST collaborator.
*/
package session

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"huecas/internal/app/storage"
	"huecas/internal/app/user"
	authjwt "huecas/internal/pkg/auth/jwt"
	"huecas/internal/pkg/logx"
)

// AuthResult is the credential pair returned by the authentication collaborator.
type AuthResult struct {
	Token string
	User  user.User
}

// Authenticator is the outbound port for credential exchange. The REST client
// implements it; tests supply fakes.
type Authenticator interface {
	// Login exchanges email/password for a token and user record.
	Login(ctx context.Context, email, password string) (*AuthResult, error)

	// Register creates an account and returns its first token and user record.
	Register(ctx context.Context, name, email, password, confirmPassword string) (*AuthResult, error)
}

// Snapshot is an immutable view of the session state at one point in time.
type Snapshot struct {
	// Token is the bearer credential, empty when unauthenticated.
	Token string

	// User is the signed-in user, nil when unauthenticated.
	User *user.User

	// IsLoading is true only while the initial hydration from durable storage runs.
	IsLoading bool

	// NeedsOnboarding is true when a user is present and has not completed their profile.
	NeedsOnboarding bool
}

// Observer receives a Snapshot after every session mutation. Observers are
// invoked synchronously, after the mutation has been written through to storage.
type Observer func(Snapshot)

// Store owns the authentication state. Token and user are always set and
// cleared together; durable storage is a mirror, never a second source of truth.
type Store struct {
	// mu protects token, user, loading, and the observer list.
	mu sync.RWMutex

	// auth is the credential-exchange collaborator.
	auth Authenticator

	// durable is the key-value mirror of token and user.
	durable storage.Store

	token string
	user  *user.User

	// loading is the one-shot hydration flag gating guard decisions.
	loading bool

	observers []Observer

	// structured logger with session context.
	logger zerolog.Logger
}

// NewStore constructs a Store and synchronously hydrates it from durable
// storage. No network call is made: if both the token and a parseable user
// record are present they are restored, otherwise the store starts
// unauthenticated. The loading flag is false by the time NewStore returns.
func NewStore(auth Authenticator, durable storage.Store) *Store {
	storeLogger := logx.Logger().With().
		Str("component", "SessionStore").
		Logger()

	s := &Store{
		auth:    auth,
		durable: durable,
		loading: true,
		logger:  storeLogger,
	}

	s.hydrate()

	return s
}

// hydrate restores the session from durable storage. Corrupt or partial data
// is treated as an empty session, not an error.
func (s *Store) hydrate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	defer func() {
		s.loading = false
	}()

	storedToken, hasToken := s.durable.Read(storage.TokenKey)
	storedUser, hasUser := s.durable.Read(storage.UserKey)

	if !hasToken || !hasUser {
		return
	}

	var restored user.User
	if err := json.Unmarshal([]byte(storedUser), &restored); err != nil {
		s.logger.Warn().Err(err).Msg("Stored user record is not valid JSON. Starting unauthenticated.")
		return
	}

	s.token = storedToken
	s.user = &restored

	s.logger.Info().
		Str("user_id", restored.ID).
		Msg("Session restored from durable storage.")
}

// Login exchanges credentials with the authentication collaborator. On success
// it atomically sets token and user, writes both through to durable storage,
// and returns the user. A rejected login propagates the collaborator's error
// verbatim; no retry is attempted.
func (s *Store) Login(ctx context.Context, email, password string) (user.User, error) {
	result, err := s.auth.Login(ctx, email, password)
	if err != nil {
		return user.User{}, err
	}

	s.adopt(result)
	return result.User, nil
}

// SignUp registers a new account. The server is the sole authority on password
// and email validation for account creation; on success the contract matches Login.
func (s *Store) SignUp(ctx context.Context, name, email, password, confirmPassword string) (user.User, error) {
	result, err := s.auth.Register(ctx, name, email, password, confirmPassword)
	if err != nil {
		return user.User{}, err
	}

	s.adopt(result)
	return result.User, nil
}

// Logout clears the in-memory and durable state unconditionally. It never
// fails and performs no server-side session invalidation.
func (s *Store) Logout() {
	s.mu.Lock()

	s.token = ""
	s.user = nil

	if err := s.durable.Delete(storage.TokenKey); err != nil {
		s.logger.Error().Err(err).Msg("Failed to delete stored token during logout.")
	}
	if err := s.durable.Delete(storage.UserKey); err != nil {
		s.logger.Error().Err(err).Msg("Failed to delete stored user during logout.")
	}

	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.logger.Info().Msg("Session cleared.")
	s.notify(snapshot)
}

// UpdateUser replaces the user record and optionally rotates the token (pass
// an empty newToken to keep the current one). Used after profile updates and
// onboarding completion, where the server issues a fresh token reflecting new
// claims. Fields not supplied by the caller are untouched.
func (s *Store) UpdateUser(updated user.User, newToken string) {
	s.mu.Lock()

	s.user = &updated
	s.writeUserLocked()

	if newToken != "" {
		s.token = newToken
		s.writeTokenLocked()
	}

	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snapshot)
}

// adopt installs a fresh token/user pair and mirrors both to durable storage
// before observers are notified.
func (s *Store) adopt(result *AuthResult) {
	s.mu.Lock()

	u := result.User
	s.token = result.Token
	s.user = &u

	s.writeTokenLocked()
	s.writeUserLocked()

	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.logger.Info().
		Str("user_id", u.ID).
		Bool("profile_complete", u.IsProfileComplete).
		Msg("Session established.")

	s.notify(snapshot)
}

// writeTokenLocked mirrors the token to durable storage. Callers hold mu.
func (s *Store) writeTokenLocked() {
	if err := s.durable.Write(storage.TokenKey, s.token); err != nil {
		s.logger.Error().Err(err).Msg("Failed to write token to durable storage.")
	}
}

// writeUserLocked mirrors the user record to durable storage. Callers hold mu.
func (s *Store) writeUserLocked() {
	encoded, err := json.Marshal(s.user)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to encode user for durable storage.")
		return
	}

	if err := s.durable.Write(storage.UserKey, string(encoded)); err != nil {
		s.logger.Error().Err(err).Msg("Failed to write user to durable storage.")
	}
}

// Subscribe registers an observer for future session changes.
func (s *Store) Subscribe(obs Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.observers = append(s.observers, obs)
}

// notify invokes every observer with the given snapshot. Called outside mu so
// observers may read back from the store.
func (s *Store) notify(snapshot Snapshot) {
	s.mu.RLock()
	observers := make([]Observer, len(s.observers))
	copy(observers, s.observers)
	s.mu.RUnlock()

	for _, obs := range observers {
		obs(snapshot)
	}
}

// Snapshot returns a consistent view of the current session state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshotLocked()
}

// snapshotLocked builds a Snapshot. Callers hold mu (read or write).
func (s *Store) snapshotLocked() Snapshot {
	var userCopy *user.User
	if s.user != nil {
		u := *s.user
		userCopy = &u
	}

	return Snapshot{
		Token:           s.token,
		User:            userCopy,
		IsLoading:       s.loading,
		NeedsOnboarding: s.user != nil && !s.user.IsProfileComplete,
	}
}

// Token returns the current bearer credential, empty when unauthenticated.
// Satisfies the REST client's token source.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.token
}

// CurrentUser returns a copy of the signed-in user, or false when unauthenticated.
func (s *Store) CurrentUser() (user.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return user.User{}, false
	}
	return *s.user, true
}

// NeedsOnboarding reports whether a user is present without a completed profile.
func (s *Store) NeedsOnboarding() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.user != nil && !s.user.IsProfileComplete
}

// IsLoading reports whether the initial hydration is still in progress.
func (s *Store) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.loading
}

// TokenExpiresAt peeks at the stored token's expiry claim. The boolean is
// false when no token is present or the claim is unreadable.
func (s *Store) TokenExpiresAt() (time.Time, bool) {
	s.mu.RLock()
	token := s.token
	s.mu.RUnlock()

	if token == "" {
		return time.Time{}, false
	}

	expiry, err := authjwt.PeekExpiry(token)
	if err != nil {
		return time.Time{}, false
	}

	return expiry, true
}

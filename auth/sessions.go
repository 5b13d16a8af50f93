// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"sync"
	"time"
)

// SessionTTL bounds how long a login stays valid.
const SessionTTL = 24 * time.Hour

// SessionStore is an in-memory store of active admin sessions.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]time.Time
}

// NewSessionStore creates an empty session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]time.Time),
	}
}

// Create generates a new session token and records it.
func (ss *SessionStore) Create() (string, error) {
	token, err := GenerateSessionToken()
	if err != nil {
		return "", err
	}
	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.sessions[token] = time.Now()
	return token, nil
}

// Valid reports whether the token belongs to a live session. Expired
// sessions are dropped on access.
func (ss *SessionStore) Valid(token string) bool {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	createdAt, ok := ss.sessions[token]
	if !ok {
		return false
	}
	if time.Since(createdAt) > SessionTTL {
		delete(ss.sessions, token)
		return false
	}
	return true
}

// Delete removes a session, invalidating it immediately.
func (ss *SessionStore) Delete(token string) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	delete(ss.sessions, token)
}

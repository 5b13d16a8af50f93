// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"strings"
	"testing"
)

func TestCheckCredentials(t *testing.T) {
	tests := []struct {
		name      string
		adminUser string
		adminPass string
		username  string
		password  string
		wantErr   error
	}{
		{"exact match", "admin", "secret", "admin", "secret", nil},
		{"wrong password", "admin", "secret", "admin", "nope", ErrBadCredentials},
		{"wrong username", "admin", "secret", "root", "secret", ErrBadCredentials},
		{"both wrong", "admin", "secret", "root", "nope", ErrBadCredentials},
		{"case matters", "admin", "secret", "Admin", "secret", ErrBadCredentials},
		{"no password configured", "admin", "", "admin", "", ErrNoPassword},
		{"no password configured, guess anyway", "admin", "", "admin", "guess", ErrNoPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckCredentials(tt.adminUser, tt.adminPass, tt.username, tt.password)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("CheckCredentials() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// The error for a wrong username and a wrong password must be the same
// value, so callers cannot leak which field was wrong.
func TestCheckCredentialsDoesNotDistinguishFields(t *testing.T) {
	userErr := CheckCredentials("admin", "secret", "wrong", "secret")
	passErr := CheckCredentials("admin", "secret", "admin", "wrong")
	if !errors.Is(userErr, passErr) {
		t.Errorf("wrong-username error %v differs from wrong-password error %v", userErr, passErr)
	}
}

func TestGenerateSessionToken(t *testing.T) {
	token, err := GenerateSessionToken()
	if err != nil {
		t.Fatalf("GenerateSessionToken() error = %v", err)
	}
	if token == "" {
		t.Error("GenerateSessionToken() returned empty string")
	}
	if strings.ContainsAny(token, "+/=") {
		t.Errorf("GenerateSessionToken() not URL-safe: %q", token)
	}

	// Two tokens should be different
	token2, _ := GenerateSessionToken()
	if token == token2 {
		t.Error("GenerateSessionToken() produced duplicate tokens (extremely unlikely)")
	}
}

func TestSignAndVerifyCookie(t *testing.T) {
	token, _ := GenerateSessionToken()
	value := SignCookie(token, "secret-key")

	got, err := VerifyCookie(value, "secret-key")
	if err != nil {
		t.Fatalf("VerifyCookie() error = %v", err)
	}
	if got != token {
		t.Errorf("VerifyCookie() = %q, want %q", got, token)
	}
}

func TestVerifyCookieRejectsBadInput(t *testing.T) {
	token, _ := GenerateSessionToken()
	value := SignCookie(token, "secret-key")

	tests := []struct {
		name  string
		value string
	}{
		{"empty", ""},
		{"no separator", token},
		{"empty token", "." + strings.SplitN(value, ".", 2)[1]},
		{"tampered token", "x" + value},
		{"tampered signature", value + "x"},
		{"wrong secret", SignCookie(token, "other-key")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verify := tt.value
			if tt.name == "wrong secret" {
				// Signed with other-key, verified with secret-key below
				verify = tt.value
			}
			if _, err := VerifyCookie(verify, "secret-key"); err == nil {
				t.Errorf("VerifyCookie(%q) accepted bad input", tt.value)
			}
		})
	}
}

func TestSessionStore(t *testing.T) {
	ss := NewSessionStore()

	token, err := ss.Create()
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if !ss.Valid(token) {
		t.Error("Valid() = false for a fresh session")
	}
	if ss.Valid("no-such-token") {
		t.Error("Valid() = true for an unknown token")
	}

	ss.Delete(token)
	if ss.Valid(token) {
		t.Error("Valid() = true after Delete()")
	}

	// Deleting twice is harmless
	ss.Delete(token)
}

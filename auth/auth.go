// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoPassword     = errors.New("admin password is not configured")
	ErrBadCredentials = errors.New("invalid username or password")
	ErrInvalidCookie  = errors.New("invalid session cookie")
)

// CheckCredentials verifies the shared admin credential pair.
// Returns ErrNoPassword when no admin password is configured, and
// ErrBadCredentials on any mismatch. Both fields are compared in constant
// time and the error never reveals which one was wrong.
func CheckCredentials(adminUser, adminPass, username, password string) error {
	if adminPass == "" {
		return ErrNoPassword
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(adminUser)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(adminPass)) == 1
	if !userOK || !passOK {
		return ErrBadCredentials
	}
	return nil
}

// GenerateSessionToken creates a random secure token for a session
func GenerateSessionToken() (string, error) {
	b := make([]byte, 24) // 24 bytes = 192 bits of entropy
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	// URL-safe base64 without padding
	return strings.TrimRight(base64.URLEncoding.EncodeToString(b), "="), nil
}

// SignCookie builds the session cookie value: token plus an HMAC-SHA256
// signature keyed by the session secret, dot-separated.
func SignCookie(token, secret string) string {
	return token + "." + signature(token, secret)
}

// VerifyCookie checks the signature on a session cookie value and returns
// the embedded token. The signature is checked before the session store is
// consulted, so forged cookies never reach it.
func VerifyCookie(value, secret string) (string, error) {
	token, sig, ok := strings.Cut(value, ".")
	if !ok || token == "" {
		return "", ErrInvalidCookie
	}
	if !hmac.Equal([]byte(sig), []byte(signature(token, secret))) {
		return "", ErrInvalidCookie
	}
	return token, nil
}

func signature(token, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(token))
	// URL-safe base64 and trimmed padding for a cleaner cookie value
	return strings.TrimRight(base64.URLEncoding.EncodeToString(h.Sum(nil)), "=")
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides credential checking and session handling.

# Credentials

The app is gated by one shared admin username/password pair from the
environment:

	err := auth.CheckCredentials(cfg.AdminUsername, cfg.AdminPassword, user, pass)

CheckCredentials returns ErrNoPassword when no admin password is configured
(a deployment problem, shown as such on the login page) and
ErrBadCredentials on any mismatch. Comparison is constant time and the error
never says which field was wrong.

There is deliberately no hashing, lockout, or per-user account model — a
single shared secret is the whole scheme.

# Sessions

Logins are server-issued random tokens held in an in-memory SessionStore:

	token, err := sessions.Create()
	ok := sessions.Valid(token)
	sessions.Delete(token)

Sessions expire after SessionTTL (24 hours). A restart logs everyone out.

# Cookie Signing

The session cookie value is the token plus an HMAC-SHA256 signature keyed by
SESSION_SECRET:

	value := auth.SignCookie(token, secret)
	token, err := auth.VerifyCookie(value, secret)

Tampered or truncated cookies fail verification before the store is touched.
*/
package auth

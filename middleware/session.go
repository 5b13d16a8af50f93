// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"net/http"

	"github.com/danielhkuo/weeksheet/auth"
)

// SessionCookieName is the cookie holding the signed session token.
const SessionCookieName = "weeksheet_session"

// RequireSession guards a handler behind a live admin session. The cookie
// signature and session store are checked before the handler runs, so no
// database work happens for unauthenticated requests. Failures redirect to
// /login, matching the navigation-first UI.
func RequireSession(sessions *auth.SessionStore, secret string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := SessionToken(r, sessions, secret); !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next(w, r)
	}
}

// SessionToken extracts and verifies the session token from the request
// cookie. Returns false for missing, forged, or expired sessions.
func SessionToken(r *http.Request, sessions *auth.SessionStore, secret string) (string, bool) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	token, err := auth.VerifyCookie(cookie.Value, secret)
	if err != nil {
		return "", false
	}
	if !sessions.Valid(token) {
		return "", false
	}
	return token, true
}

// SetSessionCookie sets the signed session cookie on the response.
func SetSessionCookie(w http.ResponseWriter, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    value,
		HttpOnly: true,
		Secure:   false, // Allow HTTP for local deployments
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
		MaxAge:   int(auth.SessionTTL.Seconds()),
	})
}

// ClearSessionCookie removes the session cookie.
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
		MaxAge:   -1,
	})
}

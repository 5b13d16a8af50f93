// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/weeksheet/auth"
	"github.com/danielhkuo/weeksheet/cliparse"
	"github.com/danielhkuo/weeksheet/middleware"
	"github.com/danielhkuo/weeksheet/views"
)

// User-facing login messages. The misconfiguration one is deliberately
// explicit; the credential one deliberately is not.
const (
	msgNoPassword   = "ADMIN_PASSWORD is not set. Configure it in your environment."
	msgInvalidLogin = "Invalid login. Please try again."
)

type AuthHandler struct {
	cfg      cliparse.Config
	sessions *auth.SessionStore
}

func NewAuthHandler(cfg cliparse.Config, sessions *auth.SessionStore) *AuthHandler {
	return &AuthHandler{cfg: cfg, sessions: sessions}
}

// ShowLogin handles GET /login
func (h *AuthHandler) ShowLogin(w http.ResponseWriter, r *http.Request) {
	data := views.LoginData{ClubName: h.cfg.ClubName}
	if h.cfg.AdminPassword == "" {
		data.Error = msgNoPassword
	}
	views.Render(w, "login.html", data)
}

// Login handles POST /login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")

	err := auth.CheckCredentials(h.cfg.AdminUsername, h.cfg.AdminPassword, username, password)
	switch {
	case errors.Is(err, auth.ErrNoPassword):
		views.Render(w, "login.html", views.LoginData{ClubName: h.cfg.ClubName, Error: msgNoPassword})
		return
	case err != nil:
		slog.Info("login failed", "username", username)
		views.Render(w, "login.html", views.LoginData{ClubName: h.cfg.ClubName, Error: msgInvalidLogin})
		return
	}

	token, err := h.sessions.Create()
	if err != nil {
		internalError(w, err)
		return
	}
	middleware.SetSessionCookie(w, auth.SignCookie(token, h.cfg.SessionSecret))

	slog.Info("login succeeded", "username", username)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout handles GET /logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if token, ok := middleware.SessionToken(r, h.sessions, h.cfg.SessionSecret); ok {
		h.sessions.Delete(token)
	}
	middleware.ClearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

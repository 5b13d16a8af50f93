// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/jmoiron/sqlx"

	"github.com/danielhkuo/weeksheet/auth"
	"github.com/danielhkuo/weeksheet/cliparse"
	"github.com/danielhkuo/weeksheet/handlers"
	"github.com/danielhkuo/weeksheet/middleware"
)

func NewRouter(db *sqlx.DB, cfg cliparse.Config, sessions *auth.SessionStore) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(cfg, sessions)
	weekHandler := handlers.NewWeekHandler(db, cfg)
	playerHandler := handlers.NewPlayerHandler(db, cfg)
	toggleHandler := handlers.NewToggleHandler(db)

	// Everything except the login pair sits behind the session gate
	protected := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.RequireSession(sessions, cfg.SessionSecret, h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Session gate
	mux.HandleFunc("GET /login", middleware.WithLogging(authHandler.ShowLogin))
	mux.HandleFunc("POST /login", middleware.WithLogging(authHandler.Login))
	mux.HandleFunc("GET /logout", protected(authHandler.Logout))

	// Week navigation and grid
	mux.HandleFunc("GET /{$}", protected(weekHandler.Index))
	mux.HandleFunc("GET /week/{id}", protected(weekHandler.Show))
	mux.HandleFunc("POST /create_week", protected(weekHandler.Create))

	// Roster management
	mux.HandleFunc("GET /players", protected(playerHandler.Show))
	mux.HandleFunc("POST /players", protected(playerHandler.Update))

	// Attendance toggle
	mux.HandleFunc("POST /toggle", protected(toggleHandler.Toggle))

	return mux
}

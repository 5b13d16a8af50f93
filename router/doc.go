// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP routes for the app.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg, sessions)

# Endpoints

Health:

	GET /health

Session gate (public):

	GET  /login  - Login form
	POST /login  - Check credentials, set session cookie
	GET  /logout - Invalidate session (requires session)

Week sheet (all require a session):

	GET  /{$}          - Redirect to most recent week, or empty state
	GET  /week/{id}    - Attendance grid for one week
	POST /create_week  - Ensure a week exists for week_date
	GET  /players      - Roster as newline text
	POST /players      - Replace roster
	POST /toggle       - Flip one attendance cell (JSON)

# Handler Initialization

The router creates handler instances with dependency injection:

	authHandler := handlers.NewAuthHandler(cfg, sessions)
	weekHandler := handlers.NewWeekHandler(db, cfg)
	playerHandler := handlers.NewPlayerHandler(db, cfg)
	toggleHandler := handlers.NewToggleHandler(db)

Protected routes are wrapped in middleware.RequireSession (inside the
logging wrapper), so the session check runs on every request before any
database access.
*/
package router

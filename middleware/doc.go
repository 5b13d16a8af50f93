// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (duration_ms).

# Session Guard

Protected routes are wrapped with RequireSession:

	mux.HandleFunc("GET /players", middleware.WithLogging(
		middleware.RequireSession(sessions, cfg.SessionSecret, h.ShowPlayers)))

The cookie signature is verified and the session store consulted before the
wrapped handler runs; anything else is redirected to /login. Session cookies
are managed with SetSessionCookie and ClearSessionCookie.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Parse JSON request bodies:

	var req models.ToggleRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
*/
package middleware

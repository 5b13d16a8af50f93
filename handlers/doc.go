// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP request handlers.

# Handler Types

Each handler is a struct with its dependencies injected at construction:

  - AuthHandler: login form, credential check, logout
  - WeekHandler: index redirect, week grid view, create_week
  - PlayerHandler: roster display and bulk replace
  - ToggleHandler: JSON cell toggle

Handlers that touch the database take *sqlx.DB and build their stores:

	weekHandler := handlers.NewWeekHandler(db, cfg)

# Navigation Flow

	GET  /            → most recent week, or the empty state
	GET  /week/{id}   → the grid; unknown ids redirect home
	POST /create_week → ensure week for week_date (default today), redirect to it

# Roster Flow

	GET  /players → roster as newline-separated text
	POST /players → replace roster (blank submissions are ignored), redirect back

# Toggle Flow

	POST /toggle  {"week_id": ..., "player_id": ..., "game_no": ...}

Answers {"ok":true,"played":0|1}, or 404 {"ok":false} for a cell that was
never materialized.

All of the above except /login sit behind middleware.RequireSession, wired
in the router.
*/
package handlers

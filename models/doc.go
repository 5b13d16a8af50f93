// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the app.

# Request Types

Types for parsing incoming JSON:

  - ToggleRequest: week_id, player_id, game_no

# Response Types

Types for JSON responses:

  - ToggleResponse: ok, played (0|1; omitted on failure)
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - Player: roster entry with display order
  - Week: one calendar date's attendance sheet
  - Grid: a week plus its roster and per-cell played state

# Constants

	GamesPerWeek = 16
	DateFormat   = "2006-01-02"

GameNumbers returns the slot numbers 1..16; CellKey builds the Grid.Played
map key for one (player, game) cell.
*/
package models

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// DefaultPlayers is the built-in roster seeded into an empty database.
// Shipped empty; clubs fill the roster through the /players page.
var DefaultPlayers []string

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sqlx.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// SeedPlayers inserts the given roster when the player table is empty.
// A non-empty table is left untouched, so this is safe on every startup.
func SeedPlayers(db *sqlx.DB, names []string) error {
	if len(names) == 0 {
		return nil
	}

	var count int
	if err := db.Get(&count, "SELECT COUNT(*) FROM player"); err != nil {
		return fmt.Errorf("failed to count players: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	for i, name := range names {
		_, err := tx.Exec(`
			INSERT INTO player (id, name, sort_order)
			VALUES ($1, $2, $3)
		`, uuid.NewString(), name, i+1)
		if err != nil {
			return fmt.Errorf("failed to seed player %q: %w", name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed transaction: %w", err)
	}

	return nil
}

const schema = `
-- Roster
CREATE TABLE IF NOT EXISTS player (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    sort_order INTEGER NOT NULL
);

-- One attendance sheet per calendar date
CREATE TABLE IF NOT EXISTS week (
    id TEXT PRIMARY KEY,
    week_date TEXT NOT NULL UNIQUE,
    created_at TIMESTAMP NOT NULL
);

-- Played/not-played cells, 16 per (week, player)
CREATE TABLE IF NOT EXISTS week_player_game (
    week_id TEXT NOT NULL REFERENCES week(id) ON DELETE CASCADE,
    player_id TEXT NOT NULL REFERENCES player(id) ON DELETE CASCADE,
    game_no INTEGER NOT NULL,
    played BOOLEAN NOT NULL DEFAULT FALSE,
    PRIMARY KEY (week_id, player_id, game_no)
);

CREATE INDEX IF NOT EXISTS idx_week_player_game_week ON week_player_game(week_id);
`

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/danielhkuo/weeksheet/models"
)

// PlayerStore manages the roster.
type PlayerStore struct {
	db *sqlx.DB
}

func NewPlayerStore(db *sqlx.DB) *PlayerStore {
	return &PlayerStore{db: db}
}

// NormalizeNames trims each name, drops blanks, and removes duplicates
// case-insensitively. The first occurrence keeps its casing and the original
// relative order is preserved.
func NormalizeNames(names []string) []string {
	seen := make(map[string]bool)
	var unique []string
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, name)
	}
	return unique
}

// List returns the roster ordered by sort_order ascending.
func (s *PlayerStore) List() ([]models.Player, error) {
	players := []models.Player{}
	err := s.db.Select(&players, `
		SELECT id, name, sort_order FROM player ORDER BY sort_order ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	return players, nil
}

// Replace swaps the entire roster for the given raw names in one
// transaction: all attendance cells and players are deleted, the normalized
// names inserted with 1-based sort_order, and a fresh set of unplayed cells
// materialized for every existing week. Returns false without touching
// anything when the normalized list is empty - a blank submission must not
// wipe the roster.
func (s *PlayerStore) Replace(rawNames []string) (bool, error) {
	names := NormalizeNames(rawNames)
	if len(names) == 0 {
		return false, nil
	}

	tx, err := s.db.Beginx()
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM week_player_game`); err != nil {
		return false, fmt.Errorf("failed to clear attendance cells: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM player`); err != nil {
		return false, fmt.Errorf("failed to clear players: %w", err)
	}

	playerIDs := make([]string, len(names))
	for i, name := range names {
		playerIDs[i] = uuid.NewString()
		_, err := tx.Exec(`
			INSERT INTO player (id, name, sort_order)
			VALUES ($1, $2, $3)
		`, playerIDs[i], name, i+1)
		if err != nil {
			return false, fmt.Errorf("failed to insert player %q: %w", name, err)
		}
	}

	var weekIDs []string
	if err := tx.Select(&weekIDs, `SELECT id FROM week`); err != nil {
		return false, fmt.Errorf("failed to list weeks: %w", err)
	}

	for _, weekID := range weekIDs {
		for _, playerID := range playerIDs {
			for _, gameNo := range models.GameNumbers() {
				_, err := tx.Exec(`
					INSERT INTO week_player_game (week_id, player_id, game_no, played)
					VALUES ($1, $2, $3, FALSE)
				`, weekID, playerID, gameNo)
				if err != nil {
					return false, fmt.Errorf("failed to insert attendance cell: %w", err)
				}
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit roster replace: %w", err)
	}

	return true, nil
}

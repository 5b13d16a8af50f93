// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/danielhkuo/weeksheet/models"
)

// GridStore reads and mutates a week's attendance grid.
type GridStore struct {
	db *sqlx.DB
}

func NewGridStore(db *sqlx.DB) *GridStore {
	return &GridStore{db: db}
}

// Get returns the full grid for a week: the week itself, the roster in
// display order, and the played state of every cell. Returns ErrNotFound
// for an unknown week id so callers can redirect instead of erroring.
func (s *GridStore) Get(weekID string) (models.Grid, error) {
	tx, err := s.db.Beginx()
	if err != nil {
		return models.Grid{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var grid models.Grid
	err = tx.Get(&grid.Week, `
		SELECT id, week_date, created_at FROM week WHERE id = $1
	`, weekID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Grid{}, ErrNotFound
	}
	if err != nil {
		return models.Grid{}, fmt.Errorf("failed to query week: %w", err)
	}

	grid.Players = []models.Player{}
	err = tx.Select(&grid.Players, `
		SELECT id, name, sort_order FROM player ORDER BY sort_order ASC
	`)
	if err != nil {
		return models.Grid{}, fmt.Errorf("failed to list players: %w", err)
	}

	rows, err := tx.Query(`
		SELECT player_id, game_no, played FROM week_player_game WHERE week_id = $1
	`, weekID)
	if err != nil {
		return models.Grid{}, fmt.Errorf("failed to query attendance cells: %w", err)
	}
	defer rows.Close()

	grid.Played = make(map[string]bool)
	for rows.Next() {
		var playerID string
		var gameNo int
		var played bool
		if err := rows.Scan(&playerID, &gameNo, &played); err != nil {
			return models.Grid{}, fmt.Errorf("failed to scan attendance cell: %w", err)
		}
		grid.Played[models.CellKey(playerID, gameNo)] = played
	}
	if err := rows.Err(); err != nil {
		return models.Grid{}, fmt.Errorf("failed to read attendance cells: %w", err)
	}

	return grid, nil
}

// Toggle flips one cell and returns the new played value. The flip is a
// single UPDATE ... RETURNING statement, so a concurrent toggle of the same
// cell cannot interleave with the read, and toggles of different cells
// never wait on each other beyond storage locking. Returns ErrNotFound when
// the cell was never materialized - that means stale client state, and no
// row is created.
func (s *GridStore) Toggle(weekID, playerID string, gameNo int) (bool, error) {
	var played bool
	err := s.db.QueryRow(`
		UPDATE week_player_game
		SET played = NOT played
		WHERE week_id = $1 AND player_id = $2 AND game_no = $3
		RETURNING played
	`, weekID, playerID, gameNo).Scan(&played)
	if errors.Is(err, sql.ErrNoRows) {
		return false, ErrNotFound
	}
	if err != nil {
		return false, fmt.Errorf("failed to toggle attendance cell: %w", err)
	}
	return played, nil
}

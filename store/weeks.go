// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/danielhkuo/weeksheet/models"
)

// WeekStore manages weeks and their lazy creation.
type WeekStore struct {
	db *sqlx.DB
}

func NewWeekStore(db *sqlx.DB) *WeekStore {
	return &WeekStore{db: db}
}

// Ensure returns the id of the week for the given date, creating it on
// first access. Creation also materializes one unplayed cell per current
// player and game slot. Calling it again with the same date has no side
// effects, so it is safe on every page load.
func (s *WeekStore) Ensure(weekDate string) (string, error) {
	tx, err := s.db.Beginx()
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var weekID string
	err = tx.Get(&weekID, `SELECT id FROM week WHERE week_date = $1`, weekDate)
	if err == nil {
		return weekID, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("failed to query week: %w", err)
	}

	weekID = uuid.NewString()
	_, err = tx.Exec(`
		INSERT INTO week (id, week_date, created_at)
		VALUES ($1, $2, $3)
	`, weekID, weekDate, time.Now().UTC())
	if err != nil {
		return "", fmt.Errorf("failed to insert week: %w", err)
	}

	var playerIDs []string
	err = tx.Select(&playerIDs, `SELECT id FROM player ORDER BY sort_order ASC`)
	if err != nil {
		return "", fmt.Errorf("failed to list players: %w", err)
	}

	for _, playerID := range playerIDs {
		for _, gameNo := range models.GameNumbers() {
			_, err := tx.Exec(`
				INSERT INTO week_player_game (week_id, player_id, game_no, played)
				VALUES ($1, $2, $3, FALSE)
			`, weekID, playerID, gameNo)
			if err != nil {
				return "", fmt.Errorf("failed to insert attendance cell: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit week creation: %w", err)
	}

	return weekID, nil
}

// List returns all weeks, most recent date first.
func (s *WeekStore) List() ([]models.Week, error) {
	weeks := []models.Week{}
	err := s.db.Select(&weeks, `
		SELECT id, week_date, created_at FROM week ORDER BY week_date DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list weeks: %w", err)
	}
	return weeks, nil
}

// Get returns one week by id, or ErrNotFound.
func (s *WeekStore) Get(id string) (models.Week, error) {
	var week models.Week
	err := s.db.Get(&week, `
		SELECT id, week_date, created_at FROM week WHERE id = $1
	`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Week{}, ErrNotFound
	}
	if err != nil {
		return models.Week{}, fmt.Errorf("failed to query week: %w", err)
	}
	return week, nil
}

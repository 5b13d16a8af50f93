// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"

	"github.com/danielhkuo/weeksheet/middleware"
	"github.com/danielhkuo/weeksheet/models"
	"github.com/danielhkuo/weeksheet/store"
)

type ToggleHandler struct {
	grid *store.GridStore
}

func NewToggleHandler(db *sqlx.DB) *ToggleHandler {
	return &ToggleHandler{grid: store.NewGridStore(db)}
}

// Toggle handles POST /toggle
func (h *ToggleHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	var req models.ToggleRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	played, err := h.grid.Toggle(req.WeekID, req.PlayerID, req.GameNo)
	if errors.Is(err, store.ErrNotFound) {
		// The cell was never materialized: stale client state, not a crash
		middleware.JSONResponse(w, http.StatusNotFound, models.ToggleResponse{OK: false})
		return
	}
	if err != nil {
		slog.Error("failed to toggle cell", "error", err, "week_id", req.WeekID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	playedInt := 0
	if played {
		playedInt = 1
	}

	slog.Info("cell toggled",
		"week_id", req.WeekID,
		"player_id", req.PlayerID,
		"game_no", req.GameNo,
		"played", playedInt,
	)

	middleware.JSONResponse(w, http.StatusOK, models.ToggleResponse{OK: true, Played: &playedInt})
}

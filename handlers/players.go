// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/danielhkuo/weeksheet/cliparse"
	"github.com/danielhkuo/weeksheet/store"
	"github.com/danielhkuo/weeksheet/views"
)

type PlayerHandler struct {
	cfg     cliparse.Config
	players *store.PlayerStore
}

func NewPlayerHandler(db *sqlx.DB, cfg cliparse.Config) *PlayerHandler {
	return &PlayerHandler{cfg: cfg, players: store.NewPlayerStore(db)}
}

// Show handles GET /players
func (h *PlayerHandler) Show(w http.ResponseWriter, r *http.Request) {
	players, err := h.players.List()
	if err != nil {
		internalError(w, err)
		return
	}

	names := make([]string, len(players))
	for i, p := range players {
		names[i] = p.Name
	}

	views.Render(w, "players.html", views.PlayersData{
		ClubName:    h.cfg.ClubName,
		PlayersText: strings.Join(names, "\n"),
	})
}

// Update handles POST /players
func (h *PlayerHandler) Update(w http.ResponseWriter, r *http.Request) {
	raw := r.FormValue("players")

	changed, err := h.players.Replace(strings.Split(raw, "\n"))
	if err != nil {
		internalError(w, err)
		return
	}
	if changed {
		slog.Info("roster replaced")
	} else {
		slog.Info("roster unchanged, blank submission ignored")
	}

	http.Redirect(w, r, "/players", http.StatusSeeOther)
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/danielhkuo/weeksheet/cliparse"
	"github.com/danielhkuo/weeksheet/models"
	"github.com/danielhkuo/weeksheet/store"
	"github.com/danielhkuo/weeksheet/views"
)

type WeekHandler struct {
	cfg   cliparse.Config
	weeks *store.WeekStore
	grid  *store.GridStore
}

func NewWeekHandler(db *sqlx.DB, cfg cliparse.Config) *WeekHandler {
	return &WeekHandler{
		cfg:   cfg,
		weeks: store.NewWeekStore(db),
		grid:  store.NewGridStore(db),
	}
}

// Index handles GET /
func (h *WeekHandler) Index(w http.ResponseWriter, r *http.Request) {
	weeks, err := h.weeks.List()
	if err != nil {
		internalError(w, err)
		return
	}
	if len(weeks) == 0 {
		views.Render(w, "empty.html", views.EmptyData{ClubName: h.cfg.ClubName, Today: today()})
		return
	}
	// Most recent week first
	http.Redirect(w, r, "/week/"+weeks[0].ID, http.StatusSeeOther)
}

// Show handles GET /week/{id}
func (h *WeekHandler) Show(w http.ResponseWriter, r *http.Request) {
	weekID := r.PathValue("id")

	grid, err := h.grid.Get(weekID)
	if errors.Is(err, store.ErrNotFound) {
		// Unknown week ids are navigation noise, not errors
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if err != nil {
		internalError(w, err)
		return
	}

	weeks, err := h.weeks.List()
	if err != nil {
		internalError(w, err)
		return
	}

	views.Render(w, "week.html", views.WeekData{
		ClubName: h.cfg.ClubName,
		Week:     grid.Week,
		Weeks:    weeks,
		Players:  grid.Players,
		Played:   grid.Played,
		Today:    today(),
	})
}

// Create handles POST /create_week
func (h *WeekHandler) Create(w http.ResponseWriter, r *http.Request) {
	dateStr := r.FormValue("week_date")
	if dateStr == "" {
		dateStr = today()
	}
	parsed, err := time.Parse(models.DateFormat, dateStr)
	if err != nil {
		http.Error(w, "week_date must be a date in YYYY-MM-DD format", http.StatusBadRequest)
		return
	}

	weekID, err := h.weeks.Ensure(parsed.Format(models.DateFormat))
	if err != nil {
		internalError(w, err)
		return
	}

	slog.Info("week ensured", "week_id", weekID, "week_date", dateStr)
	http.Redirect(w, r, "/week/"+weekID, http.StatusSeeOther)
}

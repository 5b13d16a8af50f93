package models

import (
	"fmt"
	"time"
)

// GamesPerWeek is the fixed number of numbered game slots in every week.
const GamesPerWeek = 16

// DateFormat is the wire and storage format for week dates.
const DateFormat = "2006-01-02"

// GameNumbers returns the game slot numbers 1..GamesPerWeek in order.
func GameNumbers() []int {
	nums := make([]int, GamesPerWeek)
	for i := range nums {
		nums[i] = i + 1
	}
	return nums
}

// Request types

type ToggleRequest struct {
	WeekID   string `json:"week_id"`
	PlayerID string `json:"player_id"`
	GameNo   int    `json:"game_no"`
}

// Response types

// ToggleResponse is the JSON body for POST /toggle. Played is a pointer so
// the not-found response serializes as {"ok":false} with no played field.
type ToggleResponse struct {
	OK     bool `json:"ok"`
	Played *int `json:"played,omitempty"`
}

// Domain types

type Player struct {
	ID        string `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	SortOrder int    `db:"sort_order" json:"sort_order"`
}

type Week struct {
	ID        string    `db:"id" json:"id"`
	WeekDate  string    `db:"week_date" json:"week_date"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Grid is one week's attendance sheet: the week, the roster in display
// order, and the played state per (player, game) cell.
type Grid struct {
	Week    Week
	Players []Player
	Played  map[string]bool
}

// CellKey is the Played map key for one player and game slot.
func CellKey(playerID string, gameNo int) string {
	return fmt.Sprintf("%s:%d", playerID, gameNo)
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

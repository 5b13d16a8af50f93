// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/weeksheet/models"
)

//go:embed templates/*.html
var files embed.FS

var templates = template.Must(template.New("").Funcs(template.FuncMap{
	"games": models.GameNumbers,
	"cell":  models.CellKey,
}).ParseFS(files, "templates/*.html"))

// LoginData fills login.html. Error carries either the misconfiguration
// notice or the generic bad-credentials message.
type LoginData struct {
	ClubName string
	Error    string
}

// EmptyData fills empty.html, shown when no weeks exist yet.
type EmptyData struct {
	ClubName string
	Today    string
}

// WeekData fills week.html with one week's grid and the week navigation.
type WeekData struct {
	ClubName string
	Week     models.Week
	Weeks    []models.Week
	Players  []models.Player
	Played   map[string]bool
	Today    string
}

// PlayersData fills players.html with the roster as newline-separated text.
type PlayersData struct {
	ClubName    string
	PlayersText string
}

// Render executes the named page template. The page is buffered so a
// rendering failure produces a clean 500 instead of a half-written body.
func Render(w http.ResponseWriter, name string, data any) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		slog.Error("failed to render template", "template", name, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

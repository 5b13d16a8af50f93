// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/weeksheet/models"
)

// internalError logs the real error and returns a generic message to the
// client so internal details never leak.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal error", "error", err)
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// today returns the current date in wire format.
func today() string {
	return time.Now().Format(models.DateFormat)
}

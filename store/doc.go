// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store contains the data managers over the three tables.

Each store wraps *sqlx.DB and runs every mutating operation inside a single
transaction, committed or rolled back on every exit path.

# Roster

	players := store.NewPlayerStore(db)
	changed, err := players.Replace(lines)
	roster, err := players.List()

Replace normalizes its input (trim, drop blanks, case-insensitive dedup
keeping the first casing and order) and then atomically rebuilds the roster
and every week's attendance cells. An input that normalizes to nothing is a
no-op - blank form submissions never wipe the roster.

# Weeks

	weeks := store.NewWeekStore(db)
	weekID, err := weeks.Ensure("2025-11-03")

Ensure is idempotent: an existing date returns its id with no side effects;
a new date creates the week and materializes models.GamesPerWeek unplayed
cells per current player.

# Grid

	grid := store.NewGridStore(db)
	g, err := grid.Get(weekID)
	played, err := grid.Toggle(weekID, playerID, gameNo)

Toggle is the only cell mutation: a single UPDATE ... RETURNING flip.
Unknown weeks and cells are reported as ErrNotFound, never created.
*/
package store

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db_test

import (
	"testing"

	"github.com/danielhkuo/weeksheet/db"
	"github.com/danielhkuo/weeksheet/testutil"
)

func TestCreateSchemaIsIdempotent(t *testing.T) {
	conn := testutil.SetupTestDB(t)

	// SetupTestDB already applied the schema once
	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("CreateSchema() second run error = %v", err)
	}

	for _, table := range []string{"player", "week", "week_player_game"} {
		var count int
		if err := conn.Get(&count, "SELECT COUNT(*) FROM "+table); err != nil {
			t.Errorf("table %s not usable: %v", table, err)
		}
	}
}

func TestSeedPlayersOnEmptyRoster(t *testing.T) {
	conn := testutil.SetupTestDB(t)

	if err := db.SeedPlayers(conn, []string{"Alice", "Bob"}); err != nil {
		t.Fatalf("SeedPlayers() error = %v", err)
	}

	var names []string
	if err := conn.Select(&names, `SELECT name FROM player ORDER BY sort_order ASC`); err != nil {
		t.Fatalf("Failed to list players: %v", err)
	}
	if len(names) != 2 || names[0] != "Alice" || names[1] != "Bob" {
		t.Errorf("roster = %v, want [Alice Bob]", names)
	}
}

func TestSeedPlayersSkipsNonEmptyRoster(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	testutil.InsertTestPlayer(t, conn, "Existing", 1)

	if err := db.SeedPlayers(conn, []string{"Alice", "Bob"}); err != nil {
		t.Fatalf("SeedPlayers() error = %v", err)
	}

	var count int
	if err := conn.Get(&count, `SELECT COUNT(*) FROM player`); err != nil {
		t.Fatalf("Failed to count players: %v", err)
	}
	if count != 1 {
		t.Errorf("player count = %d, want 1 (seeding must not touch a live roster)", count)
	}
}

func TestSeedPlayersWithNoNames(t *testing.T) {
	conn := testutil.SetupTestDB(t)

	if err := db.SeedPlayers(conn, nil); err != nil {
		t.Fatalf("SeedPlayers() error = %v", err)
	}

	var count int
	if err := conn.Get(&count, `SELECT COUNT(*) FROM player`); err != nil {
		t.Fatalf("Failed to count players: %v", err)
	}
	if count != 0 {
		t.Errorf("player count = %d, want 0", count)
	}
}

func TestForeignKeysCascade(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	playerID := testutil.InsertTestPlayer(t, conn, "Alice", 1)
	testutil.InsertTestWeek(t, conn, "2026-08-24")

	if _, err := conn.Exec(`DELETE FROM player WHERE id = $1`, playerID); err != nil {
		t.Fatalf("Failed to delete player: %v", err)
	}

	var cells int
	if err := conn.Get(&cells, `SELECT COUNT(*) FROM week_player_game`); err != nil {
		t.Fatalf("Failed to count cells: %v", err)
	}
	if cells != 0 {
		t.Errorf("cells remain after deleting their player: %d", cells)
	}
}

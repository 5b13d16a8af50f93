// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connection and schema creation.

# Opening

Open picks the driver from the configuration:

	conn, err := db.Open(cfg)

SQLite (modernc.org/sqlite, no cgo) is the default and runs from a single
file; Postgres (lib/pq) is used when DATABASE_URL points at one. SQLite
connections enable WAL, foreign keys, and a busy timeout through the DSN.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
It runs once at startup; a failure is fatal.

# Tables

  - player: roster entries with display order
  - week: one attendance sheet per unique calendar date
  - week_player_game: one played/not-played cell per (week, player, game_no)

# Relationships

	week   1──* week_player_game
	player 1──* week_player_game

Both foreign keys use ON DELETE CASCADE; the cell table's composite primary
key (week_id, player_id, game_no) makes duplicate cells impossible.

# Seeding

SeedPlayers installs DefaultPlayers into an empty player table with
sequential sort_order starting at 1. DefaultPlayers ships empty.
*/
package db

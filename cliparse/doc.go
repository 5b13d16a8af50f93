// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 5000)
  - DatabaseURL: Connection string; defaults to the embedded SQLite file
    weeksheet.db when unset
  - DatabaseType: sqlite or postgres; inferred from a postgres:// URL prefix
  - ClubName: Display name shown on every page
  - AdminUsername: Shared admin username (default: admin)
  - AdminPassword: Shared admin password; may be empty, in which case login
    reports the misconfiguration
  - SessionSecret: Session cookie signing secret; main generates a random
    one with a warning when unset

# CLI Flags

	-p               Server port
	-d               Database URL
	-t               Database type
	--club-name      Club display name
	--admin-user     Admin username
	--admin-pass     Admin password
	--session-secret Cookie signing secret

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	DATABASE_URL   → -d
	DATABASE_TYPE  → -t
	CLUB_NAME      → --club-name
	ADMIN_USERNAME → --admin-user
	ADMIN_PASSWORD → --admin-pass
	SESSION_SECRET → --session-secret

CLI flags take precedence over environment variables.
*/
package cliparse

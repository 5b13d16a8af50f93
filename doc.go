// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Week Sheet server.

Week Sheet is a small club-management web app: it tracks, per calendar week,
which roster players have played which of 16 numbered games, behind a single
shared admin credential.

# Starting the Server

The server runs with zero configuration against an embedded SQLite file:

	ADMIN_PASSWORD=secret go run .

Or against Postgres:

	DATABASE_URL=postgres://... ADMIN_PASSWORD=secret go run .

A .env file in the working directory is loaded at startup.

# Configuration

Required settings:

  - ADMIN_PASSWORD (--admin-pass): Shared admin password; while unset the
    login page reports the misconfiguration and nobody can log in

Optional settings:

  - PORT (-p): Server port (default: 5000)
  - DATABASE_URL (-d): Connection string (default: weeksheet.db, SQLite)
  - DATABASE_TYPE (-t): sqlite or postgres (inferred from the URL)
  - CLUB_NAME (--club-name): Display name (default: "Badminton Week Sheet")
  - ADMIN_USERNAME (--admin-user): Admin username (default: admin)
  - SESSION_SECRET (--session-secret): Cookie signing secret; a random
    per-process secret is generated when unset

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (auth, weeks, players, toggle)
  - router: Route definitions using Go 1.22+ routing
  - middleware: Session gate, logging, JSON helpers
  - views: Embedded html/template pages
  - models: Domain and request/response types
  - store: Roster, week, and grid managers (one transaction per operation)
  - auth: Credential check, session store, cookie signing
  - db: Connection and schema bootstrap
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main

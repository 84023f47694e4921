// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the carry-on API server.

carry-on tracks golf rounds under the World Handicap System (WHS): players
record hole results as they play, and finishing a round computes and freezes
its Stableford score from the handicap and rating data snapshotted when the
round was created.

# Starting the Server

The server requires environment variables, CLI flags, or a YAML config file:

	DATABASE_URL=rounds.db API_KEY_SALT=... go run main.go

Or with flags:

	go run main.go -p 4118 -t postgres -d "postgres://..."

# Configuration

Required settings:

  - DATABASE_URL (-d): sqlite path or postgres connection string
  - API_KEY_SALT (-api-salt): secret for player API key HMAC

Optional settings:

  - PORT (-p): server port (default: 4118)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - CONFIG_FILE (-f): YAML config file, lowest precedence

# Architecture

The server uses a handler-based architecture with dependency injection:

  - golf: the scoring core — round state machine and Stableford engine
  - handlers: HTTP request handlers (players, courses, rounds)
  - router: route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: request/response types
  - auth: ID generation and API key validation
  - db: schema creation and driver selection
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main

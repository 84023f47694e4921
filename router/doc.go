// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP route table using Go 1.22+ method routing.

Routes are grouped by resource:

  - /players: registration, profile, handicap, stats
  - /courses: course catalog
  - /rounds: round lifecycle, hole recording, status transitions

Every route is wrapped with request logging. NewRouter wires the handlers
with their database and config dependencies:

	mux := router.NewRouter(db, cfg)
*/
package router

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the carry-on API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - PlayerHandler: registration, profile, handicap, stats
  - CourseHandler: course catalog (layouts with par and stroke index)
  - RoundHandler: round lifecycle and hole recording

Handlers are created via constructor functions that accept *sql.DB and Config:

	roundHandler := handlers.NewRoundHandler(db, cfg)

# Round Lifecycle

Rounds progress through in-progress (ip) → finished (f), with abort (a) and
resume available at any point:

	POST /rounds                      → CreateRound (snapshots the handicap)
	POST /rounds/{id}/holes           → RecordHole
	PATCH /rounds/{id}/holes/{number} → UpdateHole
	POST /rounds/{id}/finish          → FinishRound (freezes the score)
	POST /rounds/{id}/abort           → AbortRound
	POST /rounds/{id}/resume          → ResumeRound

All round and course operations require the X-Player-ID and X-API-Key
headers.

# Scoring

The Stableford engine lives in the golf package; handlers never compute
points themselves. Finishing a round is the only moment a score is computed,
inside golf.Round.Finish, and the frozen value is what reads return. Editing
the holes of a finished round is allowed; the detail response then reports
score_stale true rather than silently recomputing.

# Persistence Mapping

store.go maps the Round aggregate to its rows (round + round_hole, holes
kept in entry order via the position column) and back. Mutations load the
aggregate, apply a pure transition, and rewrite the mutable state in one
transaction.
*/
package handlers

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db creates the database schema and selects the sql driver.

# Tables

  - player: profile and current WHS handicap index
  - course: course catalog entries with optional slope/course ratings
  - course_hole: per-hole par and stroke index of a course layout
  - round: one played round with its frozen snapshots and score
  - round_hole: recorded hole results, entry order kept in position

Decimal values (handicap, slope_rating, course_rating) are stored as decimal
strings, and dates/timestamps as ISO-8601 text, so identical SQL runs on
both sqlite and postgres.

# Usage

	driver, err := db.Driver(cfg.DatabaseType)
	conn, err := sql.Open(driver, cfg.DatabaseURL)
	err = db.CreateSchema(conn)

CreateSchema is idempotent (IF NOT EXISTS everywhere).

# Key Constraints

  - round_hole: primary key (round_id, hole_number) — one result per hole
  - course_hole: primary key (course_id, hole_number)
  - par restricted to 3..5, stroke index and hole number to 1..18
*/
package db

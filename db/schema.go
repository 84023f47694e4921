// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// Driver maps a configured database type to a database/sql driver name.
func Driver(databaseType string) (string, error) {
	switch databaseType {
	case "postgres":
		return "postgres", nil
	case "sqlite":
		return "sqlite", nil
	default:
		return "", fmt.Errorf("unsupported database type %q (want sqlite or postgres)", databaseType)
	}
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Decimals (handicap, slope_rating, course_rating) are stored as decimal
// strings and dates/timestamps as ISO-8601 text so that the same schema and
// scans work on both sqlite and postgres.
const schema = `
-- Players
CREATE TABLE IF NOT EXISTS player (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    handicap TEXT,
    created_at TEXT NOT NULL
);

-- Courses
CREATE TABLE IF NOT EXISTS course (
    id TEXT PRIMARY KEY,
    player_id TEXT NOT NULL REFERENCES player(id) ON DELETE CASCADE,
    name TEXT NOT NULL,
    slope_rating TEXT,
    course_rating TEXT,
    created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_course_player_id ON course(player_id);

-- Course hole layouts
CREATE TABLE IF NOT EXISTS course_hole (
    course_id TEXT NOT NULL REFERENCES course(id) ON DELETE CASCADE,
    hole_number INTEGER NOT NULL CHECK (hole_number BETWEEN 1 AND 18),
    par INTEGER NOT NULL CHECK (par IN (3, 4, 5)),
    stroke_index INTEGER NOT NULL CHECK (stroke_index BETWEEN 1 AND 18),
    PRIMARY KEY (course_id, hole_number)
);

-- Rounds
CREATE TABLE IF NOT EXISTS round (
    id TEXT PRIMARY KEY,
    player_id TEXT NOT NULL REFERENCES player(id) ON DELETE CASCADE,
    course_name TEXT NOT NULL,
    date TEXT NOT NULL,
    status TEXT NOT NULL DEFAULT 'ip' CHECK (status IN ('ip', 'f', 'a')),
    player_handicap TEXT,
    slope_rating TEXT,
    course_rating TEXT,
    stableford_score INTEGER,
    created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_round_player_id ON round(player_id);
CREATE INDEX IF NOT EXISTS idx_round_status ON round(status);

-- Recorded hole results; position preserves entry order
CREATE TABLE IF NOT EXISTS round_hole (
    round_id TEXT NOT NULL REFERENCES round(id) ON DELETE CASCADE,
    hole_number INTEGER NOT NULL CHECK (hole_number BETWEEN 1 AND 18),
    position INTEGER NOT NULL,
    strokes INTEGER NOT NULL CHECK (strokes >= 1),
    par INTEGER NOT NULL CHECK (par IN (3, 4, 5)),
    stroke_index INTEGER NOT NULL CHECK (stroke_index BETWEEN 1 AND 18),
    handicap_strokes INTEGER,
    stableford_points INTEGER,
    clubs_used TEXT,
    PRIMARY KEY (round_id, hole_number)
);

CREATE INDEX IF NOT EXISTS idx_round_hole_round_id ON round_hole(round_id);
`

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package golf is the scoring core: World Handicap System (WHS) Stableford
scoring and the lifecycle of a golf round. It is pure, synchronous, and free
of I/O; persistence and HTTP live in the surrounding packages.

# Value Objects

  - HoleSpec: one hole of a course layout (number, par, stroke index)
  - HoleResult: the played result for one hole, optionally with clubs used
  - RoundStatus: in-progress / finished / aborted, wire codes ip / f / a
  - StablefordScore: a non-negative point total
  - Handicap: a WHS handicap index in [-10.0, 54.0]
  - Club: a club short code (d, 3w, 7i, pw, ...)

# The Round Aggregate

Round operations are pure transitions: each takes the receiver by value and
returns a new Round, so a failed call never leaves a half-mutated aggregate.
The caller keeps the latest value:

	round, err := golf.NewRound("St Andrews", date, snapshot)
	round, err = round.RecordHole(hole)
	round, err = round.Finish()

Finish requires 9 or 18 recorded holes, derives the playing handicap from
the round's own snapshots, freezes the Stableford total, and caches per-hole
allocations. Abort works from any status; Resume only from Aborted.

# Scoring

The engine distributes handicap strokes to the hardest holes first:

	strokes := golf.HandicapStrokesForHole(playingHandicap, strokeIndex, 18)
	points := golf.StablefordPoints(gross, par, strokes)

With full rating snapshots the playing handicap is the WHS Course Handicap:

	round(index × slope/113 + (courseRating − par))

With partial or missing ratings it falls back to the handicap index rounded
half away from zero, and with no snapshot at all to 54 (the WHS maximum).
All rounding goes through RoundHalfAwayFromZero, never banker's rounding.
*/
package golf

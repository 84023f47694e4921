// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package golf

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Snapshot carries the handicap and rating context captured when a round is
// created. All fields are optional. The values are frozen copies, never live
// references: a finished round's score is reproducible from its own state.
type Snapshot struct {
	HandicapIndex *decimal.Decimal
	SlopeRating   *decimal.Decimal
	CourseRating  *decimal.Decimal
}

// Round is the aggregate root for one played round of golf. It owns the
// ordered hole results (entry order, not hole order), the lifecycle status,
// the handicap/rating snapshots, and the score frozen by Finish.
//
// Every operation takes the receiver by value and returns a new Round; a
// failed call returns the zero Round and an error, leaving the caller's
// value untouched. The caller holds the current value and replaces it on
// each successful transition, so there is no partial mutation on error.
type Round struct {
	ID         string
	CourseName string
	Date       time.Time
	Holes      []HoleResult
	Status     RoundStatus

	PlayerHandicap *decimal.Decimal
	SlopeRating    *decimal.Decimal
	CourseRating   *decimal.Decimal

	// Score is set only by Finish and is nil until then.
	Score *StablefordScore

	CreatedAt time.Time
}

// NewRound creates an in-progress round for a course and date with the given
// handicap/rating snapshot.
func NewRound(courseName string, date time.Time, snap Snapshot) (Round, error) {
	if strings.TrimSpace(courseName) == "" {
		return Round{}, &ValidationError{Kind: Required, Field: "course_name", Message: "course name required"}
	}
	return Round{
		CourseName:     courseName,
		Date:           date,
		Status:         InProgress,
		PlayerHandicap: snap.HandicapIndex,
		SlopeRating:    snap.SlopeRating,
		CourseRating:   snap.CourseRating,
		CreatedAt:      time.Now().UTC(),
	}, nil
}

// RecordHole appends a hole result. The hole number must not already be
// present. Recording is allowed in any status; editing a finished round does
// not recompute its frozen score (see ScoreStale).
func (r Round) RecordHole(h HoleResult) (Round, error) {
	if len(r.Holes) >= maxHoles {
		return Round{}, outOfRange("holes", "round already has %d holes", maxHoles)
	}
	for _, existing := range r.Holes {
		if existing.HoleNumber == h.HoleNumber {
			return Round{}, &DuplicateHoleError{HoleNumber: h.HoleNumber}
		}
	}
	holes := make([]HoleResult, len(r.Holes), len(r.Holes)+1)
	copy(holes, r.Holes)
	r.Holes = append(holes, h)
	return r, nil
}

// UpdateHole replaces an existing hole result, matched by hole number.
func (r Round) UpdateHole(h HoleResult) (Round, error) {
	idx := -1
	for i, existing := range r.Holes {
		if existing.HoleNumber == h.HoleNumber {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Round{}, &HoleNotRecordedError{HoleNumber: h.HoleNumber}
	}
	holes := make([]HoleResult, len(r.Holes))
	copy(holes, r.Holes)
	holes[idx] = h
	r.Holes = holes
	return r, nil
}

// Finish freezes the round: it derives the playing handicap from the
// snapshots, computes the Stableford total over all recorded holes, caches
// the per-hole allocation and points, and transitions to Finished. The score
// is computed here and only here; reads never recompute it.
func (r Round) Finish() (Round, error) {
	if r.Status == Finished {
		return Round{}, ErrAlreadyFinished
	}
	numHoles := len(r.Holes)
	if numHoles != 9 && numHoles != 18 {
		return Round{}, &InvalidHoleCountError{Count: numHoles}
	}

	playingHandicap := r.playingHandicap()
	holes := make([]HoleResult, numHoles)
	total := 0
	for i, h := range r.Holes {
		strokes := HandicapStrokesForHole(playingHandicap, h.StrokeIndex, numHoles)
		points := StablefordPoints(h.Strokes, h.Par, strokes)
		h.HandicapStrokes = &strokes
		h.StablefordPoints = &points
		holes[i] = h
		total += points
	}

	r.Holes = holes
	r.Score = &StablefordScore{Points: total}
	r.Status = Finished
	return r, nil
}

// Abort abandons the round. Allowed from any status; re-aborting is a no-op.
func (r Round) Abort() Round {
	r.Status = Aborted
	return r
}

// Resume moves an aborted round back to in-progress. A previously frozen
// score, if any, is kept.
func (r Round) Resume() (Round, error) {
	if r.Status != Aborted {
		return Round{}, &InvalidTransitionError{From: r.Status, Message: "can only resume aborted rounds"}
	}
	r.Status = InProgress
	return r, nil
}

// TotalStrokes sums gross strokes over all recorded holes.
func (r Round) TotalStrokes() int {
	total := 0
	for _, h := range r.Holes {
		total += h.Strokes
	}
	return total
}

// IsComplete reports whether all 18 holes are recorded. It is independent of
// Status: a finished 9-hole round is not complete, and an aborted round with
// 18 holes is.
func (r Round) IsComplete() bool {
	return len(r.Holes) == maxHoles
}

// ScoreStale reports whether the frozen score no longer matches the recorded
// holes, which happens when a finished round's holes are edited afterwards.
// Edits leave the per-hole caches empty, so a finished round where any hole
// lacks cached points, or where the cached points no longer sum to the
// frozen total, is stale. The score is deliberately not recomputed.
func (r Round) ScoreStale() bool {
	if r.Status != Finished || r.Score == nil {
		return false
	}
	total := 0
	for _, h := range r.Holes {
		if h.StablefordPoints == nil {
			return true
		}
		total += *h.StablefordPoints
	}
	return total != r.Score.Points
}

// playingHandicap derives the integer handicap actually allocated across the
// round. With both ratings present this is the WHS Course Handicap, using
// the sum of recorded pars as the course par. With partial or missing rating
// data it falls back to the rounded handicap index, and with no snapshot at
// all to the WHS maximum.
func (r Round) playingHandicap() int {
	if r.PlayerHandicap == nil {
		return DefaultPlayingHandicap
	}
	if r.SlopeRating != nil && r.CourseRating != nil {
		return CourseHandicap(*r.PlayerHandicap, *r.SlopeRating, *r.CourseRating, r.totalPar())
	}
	return RoundHalfAwayFromZero(*r.PlayerHandicap)
}

func (r Round) totalPar() int {
	total := 0
	for _, h := range r.Holes {
		total += h.Par
	}
	return total
}

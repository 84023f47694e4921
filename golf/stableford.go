// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package golf

import "github.com/shopspring/decimal"

// DefaultPlayingHandicap is used when a round carries no handicap snapshot
// at all. 54 is the WHS maximum, so unrated play scores generously.
const DefaultPlayingHandicap = 54

// slopeBaseline is the WHS neutral slope rating.
var slopeBaseline = decimal.NewFromInt(113)

// StablefordScore is the total Stableford points for a round. Never negative.
type StablefordScore struct {
	Points int
}

// NewStablefordScore validates and builds a StablefordScore.
func NewStablefordScore(points int) (StablefordScore, error) {
	if points < 0 {
		return StablefordScore{}, outOfRange("points", "points must not be negative, got %d", points)
	}
	return StablefordScore{Points: points}, nil
}

// RoundHalfAwayFromZero rounds a decimal to the nearest integer, with ties
// rounding away from zero (18.5 -> 19, -18.5 -> -19). This is the WHS
// rounding policy; it is a named function because several languages default
// to banker's rounding, which is silently wrong here.
func RoundHalfAwayFromZero(d decimal.Decimal) int {
	return int(d.Round(0).IntPart())
}

// HandicapStrokesForHole returns the handicap strokes a player receives on a
// hole. Strokes spread evenly across the course, with the leftover going to
// the hardest holes (lowest stroke index) first.
//
// The playing handicap may be negative (plus handicap) or exceed numHoles;
// the division is floored and the remainder kept non-negative so the
// allocation stays well-defined for any integer input.
func HandicapStrokesForHole(playingHandicap, strokeIndex, numHoles int) int {
	base := playingHandicap / numHoles
	remainder := playingHandicap % numHoles
	if remainder < 0 {
		base--
		remainder += numHoles
	}
	if strokeIndex <= remainder {
		return base + 1
	}
	return base
}

// StablefordPoints returns the points for a single hole given gross strokes,
// par, and allocated handicap strokes.
//
// Net score to par maps as: double bogey or worse 0, bogey 1, par 2,
// birdie 3, eagle 4, albatross 5. There is no upper cap.
func StablefordPoints(strokes, par, handicapStrokes int) int {
	net := strokes - handicapStrokes
	points := 2 - (net - par)
	if points < 0 {
		return 0
	}
	return points
}

// CourseHandicap computes the WHS Course Handicap:
//
//	round(index × slope/113 + (courseRating − totalPar))
//
// rounded half away from zero.
func CourseHandicap(index, slopeRating, courseRating decimal.Decimal, totalPar int) int {
	raw := index.Mul(slopeRating).Div(slopeBaseline).
		Add(courseRating.Sub(decimal.NewFromInt(int64(totalPar))))
	return RoundHalfAwayFromZero(raw)
}

// CalculateStableford totals Stableford points over a round using the raw
// handicap index rounded half away from zero as the playing handicap. This
// is the fallback path when no slope/course rating data is available; rounds
// with full rating snapshots derive a Course Handicap instead (see
// Round.Finish).
func CalculateStableford(holes []HoleResult, playerHandicap decimal.Decimal, numHoles int) StablefordScore {
	playingHandicap := RoundHalfAwayFromZero(playerHandicap)
	return StablefordScore{Points: stablefordTotal(holes, playingHandicap, numHoles)}
}

func stablefordTotal(holes []HoleResult, playingHandicap, numHoles int) int {
	total := 0
	for _, h := range holes {
		strokes := HandicapStrokesForHole(playingHandicap, h.StrokeIndex, numHoles)
		total += StablefordPoints(h.Strokes, h.Par, strokes)
	}
	return total
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package golf

// HoleResult is the played result for a single hole: the gross strokes taken
// plus the hole's par and stroke index. It is an immutable value; edits
// replace the whole result rather than mutating it.
//
// HandicapStrokes and StablefordPoints are a denormalized cache written when
// a round is finished. They are never authoritative; the scoring engine can
// always recompute them from the other fields.
type HoleResult struct {
	HoleNumber  int
	Strokes     int
	Par         int
	StrokeIndex int

	HandicapStrokes  *int
	StablefordPoints *int

	// ClubsUsed optionally records the club for each stroke, in order.
	// When present its length must equal Strokes.
	ClubsUsed []Club
}

// NewHoleResult validates and builds a HoleResult. Clubs are optional; pass
// none to skip club tracking.
func NewHoleResult(holeNumber, strokes, par, strokeIndex int, clubs ...Club) (HoleResult, error) {
	if err := validateHoleFields(holeNumber, par, strokeIndex); err != nil {
		return HoleResult{}, err
	}
	if strokes < 1 {
		return HoleResult{}, outOfRange("strokes", "strokes must be at least 1, got %d", strokes)
	}
	if len(clubs) > 0 && len(clubs) != strokes {
		return HoleResult{}, &ValidationError{
			Kind:    Inconsistent,
			Field:   "clubs_used",
			Message: "clubs used must match stroke count",
		}
	}
	var clubsUsed []Club
	if len(clubs) > 0 {
		clubsUsed = append(clubsUsed, clubs...)
	}
	return HoleResult{
		HoleNumber:  holeNumber,
		Strokes:     strokes,
		Par:         par,
		StrokeIndex: strokeIndex,
		ClubsUsed:   clubsUsed,
	}, nil
}

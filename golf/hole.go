// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package golf

// maxHoles is the most holes a round or course can have.
const maxHoles = 18

// HoleSpec describes one hole of a course layout: its number, par, and
// stroke index (difficulty rank, 1 = hardest).
type HoleSpec struct {
	HoleNumber  int
	Par         int
	StrokeIndex int
}

// NewHoleSpec validates and builds a HoleSpec.
func NewHoleSpec(holeNumber, par, strokeIndex int) (HoleSpec, error) {
	if err := validateHoleFields(holeNumber, par, strokeIndex); err != nil {
		return HoleSpec{}, err
	}
	return HoleSpec{HoleNumber: holeNumber, Par: par, StrokeIndex: strokeIndex}, nil
}

func validateHoleFields(holeNumber, par, strokeIndex int) error {
	if holeNumber < 1 || holeNumber > maxHoles {
		return outOfRange("hole_number", "hole number must be between 1 and 18, got %d", holeNumber)
	}
	if par < 3 || par > 5 {
		return outOfRange("par", "par must be 3, 4, or 5, got %d", par)
	}
	if strokeIndex < 1 || strokeIndex > maxHoles {
		return outOfRange("stroke_index", "stroke index must be between 1 and 18, got %d", strokeIndex)
	}
	return nil
}

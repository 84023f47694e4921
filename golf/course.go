// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package golf

import (
	"strings"

	"github.com/shopspring/decimal"
)

var (
	slopeMin = decimal.NewFromInt(55)
	slopeMax = decimal.NewFromInt(155)
)

// Course models the layout of a golf course: the par and stroke index of
// every hole, plus optional WHS slope and course ratings.
type Course struct {
	ID           string
	Name         string
	Holes        []HoleSpec
	SlopeRating  *decimal.Decimal
	CourseRating *decimal.Decimal
}

// NewCourse validates and builds a Course. A course has exactly 9 or 18
// holes, numbered sequentially from 1, with stroke indices forming a
// permutation of 1..n.
func NewCourse(name string, holes []HoleSpec, slopeRating, courseRating *decimal.Decimal) (Course, error) {
	if strings.TrimSpace(name) == "" {
		return Course{}, &ValidationError{Kind: Required, Field: "name", Message: "course name required"}
	}

	n := len(holes)
	if n != 9 && n != 18 {
		return Course{}, outOfRange("holes", "course must have exactly 9 or 18 holes, got %d", n)
	}

	seenNumbers := make(map[int]bool, n)
	seenIndices := make(map[int]bool, n)
	for _, h := range holes {
		if h.HoleNumber > n || seenNumbers[h.HoleNumber] {
			return Course{}, outOfRange("holes", "hole numbers must be sequential from 1 to %d", n)
		}
		if h.StrokeIndex > n || seenIndices[h.StrokeIndex] {
			return Course{}, outOfRange("holes", "stroke indices must be unique and cover 1 to %d", n)
		}
		seenNumbers[h.HoleNumber] = true
		seenIndices[h.StrokeIndex] = true
	}

	if slopeRating != nil && (slopeRating.LessThan(slopeMin) || slopeRating.GreaterThan(slopeMax)) {
		return Course{}, outOfRange("slope_rating", "slope rating must be between 55 and 155")
	}
	if courseRating != nil && !courseRating.IsPositive() {
		return Course{}, outOfRange("course_rating", "course rating must be positive")
	}

	specs := make([]HoleSpec, n)
	copy(specs, holes)
	return Course{
		Name:         name,
		Holes:        specs,
		SlopeRating:  slopeRating,
		CourseRating: courseRating,
	}, nil
}

// TotalPar sums par over all holes.
func (c Course) TotalPar() int {
	total := 0
	for _, h := range c.Holes {
		total += h.Par
	}
	return total
}

// NumberOfHoles returns 9 or 18.
func (c Course) NumberOfHoles() int {
	return len(c.Holes)
}

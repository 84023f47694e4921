// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package golf

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// parRound builds n identical hole results (hole i, strokes, par, stroke index i).
func parRound(t *testing.T, n, strokes, par int) []HoleResult {
	t.Helper()
	holes := make([]HoleResult, 0, n)
	for i := 1; i <= n; i++ {
		h, err := NewHoleResult(i, strokes, par, i)
		require.NoError(t, err)
		holes = append(holes, h)
	}
	return holes
}

func TestRoundHalfAwayFromZero(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"18.4", 18},
		{"18.5", 19}, // ties go away from zero, not to even
		{"18.6", 19},
		{"-18.4", -18},
		{"-18.5", -19},
		{"0.5", 1},
		{"-0.5", -1},
		{"20.65", 21},
		{"0", 0},
		{"54", 54},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, RoundHalfAwayFromZero(dec(tt.input)), "input %s", tt.input)
	}
}

func TestHandicapStrokesForHole(t *testing.T) {
	tests := []struct {
		name            string
		playingHandicap int
		strokeIndex     int
		numHoles        int
		expected        int
	}{
		{"scratch gets nothing", 0, 1, 18, 0},
		{"even spread over 18", 18, 1, 18, 1},
		{"even spread last hole", 18, 18, 18, 1},
		{"remainder goes to hardest", 21, 1, 18, 2},
		{"remainder boundary", 21, 3, 18, 2},
		{"past remainder", 21, 4, 18, 1},
		{"nine hole full spread", 9, 9, 9, 1},
		{"nine hole remainder", 11, 2, 9, 2},
		{"nine hole past remainder", 11, 3, 9, 1},
		{"handicap over double", 40, 1, 18, 3},
		{"handicap over double past remainder", 40, 5, 18, 2},
		{"plus handicap easy hole loses stroke", -3, 18, 18, -1},
		{"plus handicap hard hole keeps par", -3, 1, 18, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HandicapStrokesForHole(tt.playingHandicap, tt.strokeIndex, tt.numHoles))
		})
	}
}

func TestHandicapAllocationSumsToHandicap(t *testing.T) {
	// The allocation must hand out exactly the playing handicap, for
	// plus handicaps too.
	for _, numHoles := range []int{9, 18} {
		for handicap := -10; handicap <= 54; handicap++ {
			total := 0
			for strokeIndex := 1; strokeIndex <= numHoles; strokeIndex++ {
				total += HandicapStrokesForHole(handicap, strokeIndex, numHoles)
			}
			assert.Equal(t, handicap, total, "handicap %d over %d holes", handicap, numHoles)
		}
	}
}

func TestStablefordPoints(t *testing.T) {
	tests := []struct {
		name            string
		strokes         int
		par             int
		handicapStrokes int
		expected        int
	}{
		{"net par", 4, 4, 0, 2},
		{"net bogey", 5, 4, 0, 1},
		{"net double bogey", 6, 4, 0, 0},
		{"net triple bogey floors at zero", 7, 4, 0, 0},
		{"net birdie", 3, 4, 0, 3},
		{"net eagle", 2, 4, 0, 4},
		{"net albatross", 2, 5, 0, 5},
		{"handicap stroke turns bogey into par", 5, 4, 1, 2},
		{"no upper cap", 1, 5, 2, 8},
		{"plus handicap stroke turns par into bogey", 4, 4, -1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StablefordPoints(tt.strokes, tt.par, tt.handicapStrokes)
			assert.Equal(t, tt.expected, got)
			assert.GreaterOrEqual(t, got, 0)
		})
	}
}

func TestCourseHandicap(t *testing.T) {
	// Spec example: slope 125, CR 72.3, par 72, index 18.4
	// 18.4 × 125/113 + 0.3 = 20.65 → 21
	assert.Equal(t, 21, CourseHandicap(dec("18.4"), dec("125"), dec("72.3"), 72))

	// Neutral slope and CR == par reduces to the rounded index
	assert.Equal(t, 18, CourseHandicap(dec("18.4"), dec("113"), dec("72"), 72))
	assert.Equal(t, 19, CourseHandicap(dec("18.5"), dec("113"), dec("72"), 72))

	// Plus handicap stays negative
	assert.Equal(t, -2, CourseHandicap(dec("-2.0"), dec("113"), dec("72"), 72))
}

func TestCalculateStableford(t *testing.T) {
	t.Run("all par on scratch scores 36", func(t *testing.T) {
		holes := parRound(t, 18, 4, 4)
		score := CalculateStableford(holes, dec("0"), 18)
		assert.Equal(t, 36, score.Points)
	})

	t.Run("handicap 18 nets birdie everywhere", func(t *testing.T) {
		holes := parRound(t, 18, 4, 4)
		score := CalculateStableford(holes, dec("18"), 18)
		assert.Equal(t, 54, score.Points)
	})

	t.Run("nine holes of bogey on handicap 9 nets par", func(t *testing.T) {
		holes := parRound(t, 9, 5, 4)
		score := CalculateStableford(holes, dec("9"), 9)
		assert.Equal(t, 18, score.Points)
	})

	t.Run("index rounds half away from zero", func(t *testing.T) {
		holes := parRound(t, 18, 4, 4)
		// 17.5 → 18, so every hole nets birdie
		score := CalculateStableford(holes, dec("17.5"), 18)
		assert.Equal(t, 54, score.Points)
	})

	t.Run("pure function yields identical results", func(t *testing.T) {
		holes := parRound(t, 18, 5, 4)
		first := CalculateStableford(holes, dec("12.3"), 18)
		second := CalculateStableford(holes, dec("12.3"), 18)
		assert.Equal(t, first, second)
	})
}

func TestNewStablefordScore(t *testing.T) {
	score, err := NewStablefordScore(36)
	require.NoError(t, err)
	assert.Equal(t, 36, score.Points)

	_, err = NewStablefordScore(-1)
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, OutOfRange, validation.Kind)
}

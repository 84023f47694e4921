// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package golf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// specHoles builds n valid hole specs: hole i, par 4, stroke index i.
func specHoles(t *testing.T, n int) []HoleSpec {
	t.Helper()
	specs := make([]HoleSpec, 0, n)
	for i := 1; i <= n; i++ {
		s, err := NewHoleSpec(i, 4, i)
		require.NoError(t, err)
		specs = append(specs, s)
	}
	return specs
}

func TestNewCourse(t *testing.T) {
	t.Run("valid eighteen holes", func(t *testing.T) {
		course, err := NewCourse("St Andrews", specHoles(t, 18), decPtr("125"), decPtr("72.3"))
		require.NoError(t, err)
		assert.Equal(t, 18, course.NumberOfHoles())
		assert.Equal(t, 72, course.TotalPar())
	})

	t.Run("valid nine holes without ratings", func(t *testing.T) {
		course, err := NewCourse("Executive Nine", specHoles(t, 9), nil, nil)
		require.NoError(t, err)
		assert.Equal(t, 9, course.NumberOfHoles())
		assert.Nil(t, course.SlopeRating)
	})

	t.Run("rejects blank name", func(t *testing.T) {
		_, err := NewCourse("  ", specHoles(t, 9), nil, nil)
		var validation *ValidationError
		require.ErrorAs(t, err, &validation)
		assert.Equal(t, Required, validation.Kind)
	})

	t.Run("rejects wrong hole count", func(t *testing.T) {
		for _, n := range []int{1, 8, 10, 17} {
			_, err := NewCourse("Test", specHoles(t, n), nil, nil)
			assert.Error(t, err, "%d holes", n)
		}
	})

	t.Run("rejects duplicate hole numbers", func(t *testing.T) {
		holes := specHoles(t, 9)
		holes[8].HoleNumber = 1
		_, err := NewCourse("Test", holes, nil, nil)
		assert.Error(t, err)
	})

	t.Run("rejects non-sequential hole numbers", func(t *testing.T) {
		holes := specHoles(t, 9)
		holes[8].HoleNumber = 12 // gap: 1-8 then 12
		_, err := NewCourse("Test", holes, nil, nil)
		assert.Error(t, err)
	})

	t.Run("rejects stroke index that is not a permutation", func(t *testing.T) {
		holes := specHoles(t, 9)
		holes[8].StrokeIndex = 1
		_, err := NewCourse("Test", holes, nil, nil)
		assert.Error(t, err)
	})

	t.Run("rejects slope outside 55 to 155", func(t *testing.T) {
		_, err := NewCourse("Test", specHoles(t, 18), decPtr("54"), nil)
		assert.Error(t, err)
		_, err = NewCourse("Test", specHoles(t, 18), decPtr("156"), nil)
		assert.Error(t, err)
		_, err = NewCourse("Test", specHoles(t, 18), decPtr("55"), nil)
		assert.NoError(t, err)
		_, err = NewCourse("Test", specHoles(t, 18), decPtr("155"), nil)
		assert.NoError(t, err)
	})

	t.Run("rejects non-positive course rating", func(t *testing.T) {
		_, err := NewCourse("Test", specHoles(t, 18), nil, decPtr("0"))
		assert.Error(t, err)
		_, err = NewCourse("Test", specHoles(t, 18), nil, decPtr("-1.5"))
		assert.Error(t, err)
	})

	t.Run("copies the hole slice", func(t *testing.T) {
		holes := specHoles(t, 9)
		course, err := NewCourse("Test", holes, nil, nil)
		require.NoError(t, err)
		holes[0].Par = 5
		assert.Equal(t, 4, course.Holes[0].Par)
	})
}

func TestNewHandicap(t *testing.T) {
	for _, s := range []string{"-10.0", "0", "12.4", "54.0"} {
		h, err := ParseHandicap(s)
		require.NoError(t, err, s)
		assert.True(t, h.Value.Equal(dec(s)))
	}

	for _, s := range []string{"-10.1", "54.1", "100", "abc", ""} {
		_, err := ParseHandicap(s)
		assert.Error(t, err, s)
	}
}

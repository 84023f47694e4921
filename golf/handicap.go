// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package golf

import "github.com/shopspring/decimal"

var (
	handicapMin = decimal.RequireFromString("-10.0")
	handicapMax = decimal.RequireFromString("54.0")
)

// Handicap is a player's WHS handicap index. The WHS bounds indices to
// [-10.0, 54.0]; the range is enforced here at the player-profile boundary,
// not re-validated by the scoring engine.
type Handicap struct {
	Value decimal.Decimal
}

// NewHandicap validates and builds a Handicap.
func NewHandicap(value decimal.Decimal) (Handicap, error) {
	if value.LessThan(handicapMin) || value.GreaterThan(handicapMax) {
		return Handicap{}, outOfRange("handicap", "handicap must be -10.0 to 54.0, got %s", value)
	}
	return Handicap{Value: value}, nil
}

// ParseHandicap validates a decimal string as a handicap index.
func ParseHandicap(s string) (Handicap, error) {
	value, err := decimal.NewFromString(s)
	if err != nil {
		return Handicap{}, &ValidationError{Kind: OutOfRange, Field: "handicap", Message: "handicap must be a decimal number"}
	}
	return NewHandicap(value)
}

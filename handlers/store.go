// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/danielhkuo/carry-on/auth"
	"github.com/danielhkuo/carry-on/golf"
)

const dateLayout = "2006-01-02"

var errRoundNotFound = errors.New("round not found")

// requirePlayer validates the X-Player-ID / X-API-Key header pair.
func requirePlayer(r *http.Request, salt string) (string, error) {
	playerID := r.Header.Get("X-Player-ID")
	apiKey := r.Header.Get("X-API-Key")
	if playerID == "" || apiKey == "" {
		return "", auth.ErrInvalidAPIKey
	}
	if err := auth.ValidateAPIKey(playerID, apiKey, salt); err != nil {
		return "", err
	}
	return playerID, nil
}

// loadRound rehydrates a Round aggregate from its row and hole rows.
// Holes come back in entry order (position column).
func loadRound(db *sql.DB, roundID, playerID string) (golf.Round, error) {
	var (
		round      golf.Round
		date       string
		statusCode string
		handicap   sql.NullString
		slope      sql.NullString
		rating     sql.NullString
		score      sql.NullInt64
		createdAt  string
	)
	err := db.QueryRow(`
		SELECT id, course_name, date, status, player_handicap, slope_rating,
		       course_rating, stableford_score, created_at
		FROM round
		WHERE id = $1 AND player_id = $2
	`, roundID, playerID).Scan(
		&round.ID, &round.CourseName, &date, &statusCode, &handicap,
		&slope, &rating, &score, &createdAt,
	)
	if err == sql.ErrNoRows {
		return golf.Round{}, errRoundNotFound
	}
	if err != nil {
		return golf.Round{}, err
	}

	if round.Date, err = time.Parse(dateLayout, date); err != nil {
		return golf.Round{}, err
	}
	if round.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return golf.Round{}, err
	}
	if round.Status, err = golf.ParseRoundStatus(statusCode); err != nil {
		return golf.Round{}, err
	}
	if round.PlayerHandicap, err = scanDecimal(handicap); err != nil {
		return golf.Round{}, err
	}
	if round.SlopeRating, err = scanDecimal(slope); err != nil {
		return golf.Round{}, err
	}
	if round.CourseRating, err = scanDecimal(rating); err != nil {
		return golf.Round{}, err
	}
	if score.Valid {
		round.Score = &golf.StablefordScore{Points: int(score.Int64)}
	}

	rows, err := db.Query(`
		SELECT hole_number, strokes, par, stroke_index,
		       handicap_strokes, stableford_points, clubs_used
		FROM round_hole
		WHERE round_id = $1
		ORDER BY position
	`, roundID)
	if err != nil {
		return golf.Round{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var h golf.HoleResult
		var handicapStrokes, points sql.NullInt64
		var clubs sql.NullString
		if err := rows.Scan(&h.HoleNumber, &h.Strokes, &h.Par, &h.StrokeIndex,
			&handicapStrokes, &points, &clubs); err != nil {
			return golf.Round{}, err
		}
		if handicapStrokes.Valid {
			v := int(handicapStrokes.Int64)
			h.HandicapStrokes = &v
		}
		if points.Valid {
			v := int(points.Int64)
			h.StablefordPoints = &v
		}
		if clubs.Valid && clubs.String != "" {
			parsed, err := golf.ParseClubs(strings.Split(clubs.String, ","))
			if err != nil {
				return golf.Round{}, err
			}
			h.ClubsUsed = parsed
		}
		round.Holes = append(round.Holes, h)
	}
	return round, rows.Err()
}

// insertRound writes a new round and its holes inside the transaction.
func insertRound(tx *sql.Tx, round golf.Round, playerID string) error {
	var score *int
	if round.Score != nil {
		score = &round.Score.Points
	}
	_, err := tx.Exec(`
		INSERT INTO round (id, player_id, course_name, date, status, player_handicap,
		                   slope_rating, course_rating, stableford_score, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, round.ID, playerID, round.CourseName, round.Date.Format(dateLayout),
		round.Status.Code(), decimalString(round.PlayerHandicap),
		decimalString(round.SlopeRating), decimalString(round.CourseRating),
		score, round.CreatedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return err
	}
	return insertHoles(tx, round)
}

// updateRound rewrites the mutable round state: status, score, and holes.
// Snapshots and creation metadata never change after insert.
func updateRound(tx *sql.Tx, round golf.Round) error {
	var score *int
	if round.Score != nil {
		score = &round.Score.Points
	}
	_, err := tx.Exec(`
		UPDATE round
		SET status = $1, stableford_score = $2
		WHERE id = $3
	`, round.Status.Code(), score, round.ID)
	if err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM round_hole WHERE round_id = $1`, round.ID); err != nil {
		return err
	}
	return insertHoles(tx, round)
}

func insertHoles(tx *sql.Tx, round golf.Round) error {
	for position, h := range round.Holes {
		_, err := tx.Exec(`
			INSERT INTO round_hole (round_id, hole_number, position, strokes, par,
			                        stroke_index, handicap_strokes, stableford_points, clubs_used)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`, round.ID, h.HoleNumber, position, h.Strokes, h.Par, h.StrokeIndex,
			h.HandicapStrokes, h.StablefordPoints, joinClubs(h.ClubsUsed))
		if err != nil {
			return err
		}
	}
	return nil
}

func scanDecimal(s sql.NullString) (*decimal.Decimal, error) {
	if !s.Valid || s.String == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(s.String)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func decimalString(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}

// parseDecimalField parses an optional decimal-string request field.
func parseDecimalField(s *string, field string) (*decimal.Decimal, error) {
	if s == nil {
		return nil, nil
	}
	d, err := decimal.NewFromString(*s)
	if err != nil {
		return nil, &golf.ValidationError{
			Kind:    golf.OutOfRange,
			Field:   field,
			Message: field + " must be a decimal number",
		}
	}
	return &d, nil
}

func joinClubs(clubs []golf.Club) *string {
	if len(clubs) == 0 {
		return nil
	}
	codes := make([]string, len(clubs))
	for i, c := range clubs {
		codes[i] = string(c)
	}
	joined := strings.Join(codes, ",")
	return &joined
}

func clubCodes(clubs []golf.Club) []string {
	if len(clubs) == 0 {
		return nil
	}
	codes := make([]string, len(clubs))
	for i, c := range clubs {
		codes[i] = string(c)
	}
	return codes
}

// domainErrorStatus maps the golf error taxonomy to HTTP status codes.
// Every entry is a violated precondition, so everything is 4xx.
func domainErrorStatus(err error) int {
	var validation *golf.ValidationError
	var duplicate *golf.DuplicateHoleError
	var notRecorded *golf.HoleNotRecordedError
	var holeCount *golf.InvalidHoleCountError
	var transition *golf.InvalidTransitionError

	switch {
	case errors.As(err, &validation), errors.As(err, &holeCount):
		return http.StatusBadRequest
	case errors.As(err, &duplicate), errors.As(err, &transition),
		errors.Is(err, golf.ErrAlreadyFinished):
		return http.StatusConflict
	case errors.As(err, &notRecorded):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

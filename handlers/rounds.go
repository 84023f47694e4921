// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/danielhkuo/carry-on/auth"
	"github.com/danielhkuo/carry-on/cliparse"
	"github.com/danielhkuo/carry-on/golf"
	"github.com/danielhkuo/carry-on/middleware"
	"github.com/danielhkuo/carry-on/models"
)

type RoundHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewRoundHandler(db *sql.DB, cfg cliparse.Config) *RoundHandler {
	return &RoundHandler{db: db, cfg: cfg}
}

// CreateRound handles POST /rounds
//
// The player's current handicap index and the request's slope/course ratings
// are frozen onto the round at creation; later profile or course edits never
// change an existing round's score.
func (h *RoundHandler) CreateRound(w http.ResponseWriter, r *http.Request) {
	playerID, err := requirePlayer(r, h.cfg.APIKeySalt)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid API key")
		return
	}

	var req models.CreateRoundRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	slope, err := parseDecimalField(req.SlopeRating, "slope_rating")
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	rating, err := parseDecimalField(req.CourseRating, "course_rating")
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	// Snapshot the player's handicap index as of now
	var handicap sql.NullString
	err = h.db.QueryRow(`SELECT handicap FROM player WHERE id = $1`, playerID).Scan(&handicap)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Unknown player")
		return
	}
	if err != nil {
		slog.Error("failed to query player", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	index, err := scanDecimal(handicap)
	if err != nil {
		slog.Error("failed to parse stored handicap", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	round, err := golf.NewRound(req.CourseName, date, golf.Snapshot{
		HandicapIndex: index,
		SlopeRating:   slope,
		CourseRating:  rating,
	})
	if err != nil {
		middleware.ErrorResponse(w, domainErrorStatus(err), err.Error())
		return
	}

	for _, hr := range req.Holes {
		result, err := buildHoleResult(hr.HoleNumber, hr.Strokes, hr.Par, hr.StrokeIndex, hr.ClubsUsed)
		if err != nil {
			middleware.ErrorResponse(w, domainErrorStatus(err), err.Error())
			return
		}
		round, err = round.RecordHole(result)
		if err != nil {
			middleware.ErrorResponse(w, domainErrorStatus(err), err.Error())
			return
		}
	}

	round.ID = auth.NewEntityID()

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	if err := insertRound(tx, round, playerID); err != nil {
		slog.Error("failed to insert round", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create round")
		return
	}
	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create round")
		return
	}

	slog.Info("round created", "round_id", round.ID, "course", round.CourseName, "holes", len(round.Holes))

	middleware.JSONResponse(w, http.StatusCreated, models.CreateRoundResponse{
		RoundID: round.ID,
		Message: "Round recorded successfully",
	})
}

// ListRounds handles GET /rounds
func (h *RoundHandler) ListRounds(w http.ResponseWriter, r *http.Request) {
	playerID, err := requirePlayer(r, h.cfg.APIKeySalt)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid API key")
		return
	}

	rows, err := h.db.Query(`
		SELECT r.id, r.course_name, r.date, r.status, r.stableford_score,
		       COUNT(h.hole_number), COALESCE(SUM(h.strokes), 0)
		FROM round r
		LEFT JOIN round_hole h ON r.id = h.round_id
		WHERE r.player_id = $1
		GROUP BY r.id, r.course_name, r.date, r.status, r.stableford_score, r.created_at
		ORDER BY r.created_at DESC
	`, playerID)
	if err != nil {
		slog.Error("failed to query rounds", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	rounds := []models.RoundSummary{}
	for rows.Next() {
		var summary models.RoundSummary
		var score sql.NullInt64
		if err := rows.Scan(&summary.ID, &summary.CourseName, &summary.Date,
			&summary.Status, &score, &summary.HolesPlayed, &summary.TotalStrokes); err != nil {
			slog.Error("failed to scan round", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		if score.Valid {
			points := int(score.Int64)
			summary.StablefordScore = &points
		}
		rounds = append(rounds, summary)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to iterate rounds", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.RoundListResponse{
		Rounds: rounds,
		Count:  len(rounds),
	})
}

// GetRound handles GET /rounds/:id
func (h *RoundHandler) GetRound(w http.ResponseWriter, r *http.Request) {
	playerID, err := requirePlayer(r, h.cfg.APIKeySalt)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid API key")
		return
	}

	round, err := loadRound(h.db, r.PathValue("id"), playerID)
	if err == errRoundNotFound {
		middleware.ErrorResponse(w, http.StatusNotFound, "Round not found")
		return
	}
	if err != nil {
		slog.Error("failed to load round", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, roundDetail(round))
}

// RecordHole handles POST /rounds/:id/holes
func (h *RoundHandler) RecordHole(w http.ResponseWriter, r *http.Request) {
	var req models.HoleResultRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	h.applyTransition(w, r, func(round golf.Round) (golf.Round, error) {
		result, err := buildHoleResult(req.HoleNumber, req.Strokes, req.Par, req.StrokeIndex, req.ClubsUsed)
		if err != nil {
			return golf.Round{}, err
		}
		return round.RecordHole(result)
	}, "Hole recorded successfully")
}

// UpdateHole handles PATCH /rounds/:id/holes/:number
func (h *RoundHandler) UpdateHole(w http.ResponseWriter, r *http.Request) {
	holeNumber, err := strconv.Atoi(r.PathValue("number"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "hole number must be an integer")
		return
	}

	var req models.HoleUpdateRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	h.applyTransition(w, r, func(round golf.Round) (golf.Round, error) {
		result, err := buildHoleResult(holeNumber, req.Strokes, req.Par, req.StrokeIndex, req.ClubsUsed)
		if err != nil {
			return golf.Round{}, err
		}
		return round.UpdateHole(result)
	}, "Hole updated successfully")
}

// FinishRound handles POST /rounds/:id/finish
func (h *RoundHandler) FinishRound(w http.ResponseWriter, r *http.Request) {
	h.applyTransition(w, r, golf.Round.Finish, "Round finished")
}

// AbortRound handles POST /rounds/:id/abort
func (h *RoundHandler) AbortRound(w http.ResponseWriter, r *http.Request) {
	h.applyTransition(w, r, func(round golf.Round) (golf.Round, error) {
		return round.Abort(), nil
	}, "Round aborted")
}

// ResumeRound handles POST /rounds/:id/resume
func (h *RoundHandler) ResumeRound(w http.ResponseWriter, r *http.Request) {
	h.applyTransition(w, r, golf.Round.Resume, "Round resumed")
}

// applyTransition loads the round, applies a pure domain transition, and
// persists the new value. The stored round is replaced only on success, so a
// rejected transition leaves it exactly as it was.
func (h *RoundHandler) applyTransition(w http.ResponseWriter, r *http.Request,
	apply func(golf.Round) (golf.Round, error), message string) {

	playerID, err := requirePlayer(r, h.cfg.APIKeySalt)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid API key")
		return
	}

	round, err := loadRound(h.db, r.PathValue("id"), playerID)
	if err == errRoundNotFound {
		middleware.ErrorResponse(w, http.StatusNotFound, "Round not found")
		return
	}
	if err != nil {
		slog.Error("failed to load round", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	next, err := apply(round)
	if err != nil {
		middleware.ErrorResponse(w, domainErrorStatus(err), err.Error())
		return
	}

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	if err := updateRound(tx, next); err != nil {
		slog.Error("failed to update round", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save round")
		return
	}
	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save round")
		return
	}

	slog.Info("round updated", "round_id", next.ID, "status", next.Status.Code())

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: message})
}

func buildHoleResult(holeNumber, strokes, par, strokeIndex int, codes []string) (golf.HoleResult, error) {
	clubs, err := golf.ParseClubs(codes)
	if err != nil {
		return golf.HoleResult{}, &golf.ValidationError{
			Kind:    golf.OutOfRange,
			Field:   "clubs_used",
			Message: err.Error(),
		}
	}
	return golf.NewHoleResult(holeNumber, strokes, par, strokeIndex, clubs...)
}

func roundDetail(round golf.Round) models.RoundDetailResponse {
	holes := make([]models.HoleResultPayload, len(round.Holes))
	for i, h := range round.Holes {
		holes[i] = models.HoleResultPayload{
			HoleNumber:       h.HoleNumber,
			Strokes:          h.Strokes,
			Par:              h.Par,
			StrokeIndex:      h.StrokeIndex,
			HandicapStrokes:  h.HandicapStrokes,
			StablefordPoints: h.StablefordPoints,
			ClubsUsed:        clubCodes(h.ClubsUsed),
		}
	}

	var score *int
	if round.Score != nil {
		score = &round.Score.Points
	}

	return models.RoundDetailResponse{
		ID:              round.ID,
		CourseName:      round.CourseName,
		Date:            round.Date.Format(dateLayout),
		Holes:           holes,
		Status:          round.Status.Code(),
		PlayerHandicap:  decimalString(round.PlayerHandicap),
		SlopeRating:     decimalString(round.SlopeRating),
		CourseRating:    decimalString(round.CourseRating),
		StablefordScore: score,
		TotalStrokes:    round.TotalStrokes(),
		IsComplete:      round.IsComplete(),
		ScoreStale:      round.ScoreStale(),
		CreatedAt:       round.CreatedAt.UTC().Format(time.RFC3339),
	}
}

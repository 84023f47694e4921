// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/carry-on/auth"
	"github.com/danielhkuo/carry-on/cliparse"
	"github.com/danielhkuo/carry-on/golf"
	"github.com/danielhkuo/carry-on/middleware"
	"github.com/danielhkuo/carry-on/models"
)

type PlayerHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewPlayerHandler(db *sql.DB, cfg cliparse.Config) *PlayerHandler {
	return &PlayerHandler{db: db, cfg: cfg}
}

// Register handles POST /players/register
func (h *PlayerHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterPlayerRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}

	playerID := auth.NewEntityID()
	apiKey := auth.GenerateAPIKey(playerID, h.cfg.APIKeySalt)

	_, err := h.db.Exec(`
		INSERT INTO player (id, name, handicap, created_at)
		VALUES ($1, $2, $3, $4)
	`, playerID, req.Name, nil, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		slog.Error("failed to insert player", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to register player")
		return
	}

	slog.Info("player registered", "player_id", playerID, "name", req.Name)

	middleware.JSONResponse(w, http.StatusCreated, models.RegisterPlayerResponse{
		PlayerID: playerID,
		APIKey:   apiKey,
	})
}

// GetMe handles GET /players/me
func (h *PlayerHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	playerID, err := requirePlayer(r, h.cfg.APIKeySalt)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid API key")
		return
	}

	var resp models.PlayerResponse
	var handicap sql.NullString
	err = h.db.QueryRow(`
		SELECT id, name, handicap, created_at
		FROM player
		WHERE id = $1
	`, playerID).Scan(&resp.PlayerID, &resp.Name, &handicap, &resp.CreatedAt)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Player not found")
		return
	}
	if err != nil {
		slog.Error("failed to query player", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if handicap.Valid {
		resp.Handicap = &handicap.String
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// UpdateHandicap handles PUT /players/me/handicap
//
// Changing the handicap never touches existing rounds: each round scores
// against the index snapshotted at its creation.
func (h *PlayerHandler) UpdateHandicap(w http.ResponseWriter, r *http.Request) {
	playerID, err := requirePlayer(r, h.cfg.APIKeySalt)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid API key")
		return
	}

	var req models.UpdateHandicapRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	var stored *string
	if req.Handicap != nil {
		handicap, err := golf.ParseHandicap(*req.Handicap)
		if err != nil {
			middleware.ErrorResponse(w, domainErrorStatus(err), err.Error())
			return
		}
		value := handicap.Value.String()
		stored = &value
	}

	result, err := h.db.Exec(`UPDATE player SET handicap = $1 WHERE id = $2`, stored, playerID)
	if err != nil {
		slog.Error("failed to update handicap", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update handicap")
		return
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "Player not found")
		return
	}

	slog.Info("handicap updated", "player_id", playerID)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "Handicap updated successfully"})
}

// GetStats handles GET /players/me/stats
func (h *PlayerHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	playerID, err := requirePlayer(r, h.cfg.APIKeySalt)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid API key")
		return
	}

	var resp models.PlayerStatsResponse
	var finished int
	var best sql.NullInt64
	var lastDate sql.NullString
	err = h.db.QueryRow(`
		SELECT COUNT(*),
		       COALESCE(SUM(CASE WHEN status = 'f' THEN 1 ELSE 0 END), 0),
		       MAX(stableford_score),
		       MAX(date)
		FROM round
		WHERE player_id = $1
	`, playerID).Scan(&resp.RoundsPlayed, &finished, &best, &lastDate)
	if err != nil {
		slog.Error("failed to query stats", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	resp.RoundsFinished = finished
	if best.Valid {
		points := int(best.Int64)
		resp.BestStableford = &points
	}

	resp.LastPlayed = "never"
	if lastDate.Valid {
		if played, err := time.Parse(dateLayout, lastDate.String); err == nil {
			resp.LastPlayed = humanize.Time(played)
		}
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/carry-on/cliparse"
	"github.com/danielhkuo/carry-on/handlers"
	"github.com/danielhkuo/carry-on/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	playerHandler := handlers.NewPlayerHandler(db, cfg)
	courseHandler := handlers.NewCourseHandler(db, cfg)
	roundHandler := handlers.NewRoundHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Player profile
	mux.HandleFunc("POST /players/register", middleware.WithLogging(playerHandler.Register))
	mux.HandleFunc("GET /players/me", middleware.WithLogging(playerHandler.GetMe))
	mux.HandleFunc("PUT /players/me/handicap", middleware.WithLogging(playerHandler.UpdateHandicap))
	mux.HandleFunc("GET /players/me/stats", middleware.WithLogging(playerHandler.GetStats))

	// Course catalog
	mux.HandleFunc("POST /courses", middleware.WithLogging(courseHandler.CreateCourse))
	mux.HandleFunc("GET /courses", middleware.WithLogging(courseHandler.ListCourses))
	mux.HandleFunc("GET /courses/{id}", middleware.WithLogging(courseHandler.GetCourse))

	// Round lifecycle
	mux.HandleFunc("POST /rounds", middleware.WithLogging(roundHandler.CreateRound))
	mux.HandleFunc("GET /rounds", middleware.WithLogging(roundHandler.ListRounds))
	mux.HandleFunc("GET /rounds/{id}", middleware.WithLogging(roundHandler.GetRound))
	mux.HandleFunc("POST /rounds/{id}/holes", middleware.WithLogging(roundHandler.RecordHole))
	mux.HandleFunc("PATCH /rounds/{id}/holes/{number}", middleware.WithLogging(roundHandler.UpdateHole))
	mux.HandleFunc("POST /rounds/{id}/finish", middleware.WithLogging(roundHandler.FinishRound))
	mux.HandleFunc("POST /rounds/{id}/abort", middleware.WithLogging(roundHandler.AbortRound))
	mux.HandleFunc("POST /rounds/{id}/resume", middleware.WithLogging(roundHandler.ResumeRound))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("carry-on API v1"))
	})

	return mux
}

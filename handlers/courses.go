// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/carry-on/auth"
	"github.com/danielhkuo/carry-on/cliparse"
	"github.com/danielhkuo/carry-on/golf"
	"github.com/danielhkuo/carry-on/middleware"
	"github.com/danielhkuo/carry-on/models"
)

type CourseHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewCourseHandler(db *sql.DB, cfg cliparse.Config) *CourseHandler {
	return &CourseHandler{db: db, cfg: cfg}
}

// CreateCourse handles POST /courses
func (h *CourseHandler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	playerID, err := requirePlayer(r, h.cfg.APIKeySalt)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid API key")
		return
	}

	var req models.CreateCourseRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
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

	specs := make([]golf.HoleSpec, 0, len(req.Holes))
	for _, hs := range req.Holes {
		spec, err := golf.NewHoleSpec(hs.HoleNumber, hs.Par, hs.StrokeIndex)
		if err != nil {
			middleware.ErrorResponse(w, domainErrorStatus(err), err.Error())
			return
		}
		specs = append(specs, spec)
	}

	course, err := golf.NewCourse(req.Name, specs, slope, rating)
	if err != nil {
		middleware.ErrorResponse(w, domainErrorStatus(err), err.Error())
		return
	}
	course.ID = auth.NewEntityID()

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO course (id, player_id, name, slope_rating, course_rating, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, course.ID, playerID, course.Name, decimalString(course.SlopeRating),
		decimalString(course.CourseRating), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		slog.Error("failed to insert course", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create course")
		return
	}

	for _, spec := range course.Holes {
		_, err := tx.Exec(`
			INSERT INTO course_hole (course_id, hole_number, par, stroke_index)
			VALUES ($1, $2, $3, $4)
		`, course.ID, spec.HoleNumber, spec.Par, spec.StrokeIndex)
		if err != nil {
			slog.Error("failed to insert course hole", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create course")
			return
		}
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create course")
		return
	}

	slog.Info("course created", "course_id", course.ID, "name", course.Name, "holes", course.NumberOfHoles())

	middleware.JSONResponse(w, http.StatusCreated, models.CreateCourseResponse{
		CourseID: course.ID,
	})
}

// ListCourses handles GET /courses
func (h *CourseHandler) ListCourses(w http.ResponseWriter, r *http.Request) {
	playerID, err := requirePlayer(r, h.cfg.APIKeySalt)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid API key")
		return
	}

	rows, err := h.db.Query(`
		SELECT c.id, c.name, COUNT(ch.hole_number)
		FROM course c
		LEFT JOIN course_hole ch ON c.id = ch.course_id
		WHERE c.player_id = $1
		GROUP BY c.id, c.name, c.created_at
		ORDER BY c.created_at DESC
	`, playerID)
	if err != nil {
		slog.Error("failed to query courses", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	courses := []models.CourseSummary{}
	for rows.Next() {
		var summary models.CourseSummary
		if err := rows.Scan(&summary.ID, &summary.Name, &summary.NumberOfHoles); err != nil {
			slog.Error("failed to scan course", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		courses = append(courses, summary)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to iterate courses", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.CourseListResponse{
		Courses: courses,
		Count:   len(courses),
	})
}

// GetCourse handles GET /courses/:id
func (h *CourseHandler) GetCourse(w http.ResponseWriter, r *http.Request) {
	playerID, err := requirePlayer(r, h.cfg.APIKeySalt)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid API key")
		return
	}

	courseID := r.PathValue("id")
	var resp models.CourseResponse
	var slope, rating sql.NullString
	err = h.db.QueryRow(`
		SELECT id, name, slope_rating, course_rating
		FROM course
		WHERE id = $1 AND player_id = $2
	`, courseID, playerID).Scan(&resp.ID, &resp.Name, &slope, &rating)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Course not found")
		return
	}
	if err != nil {
		slog.Error("failed to query course", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if slope.Valid {
		resp.SlopeRating = &slope.String
	}
	if rating.Valid {
		resp.CourseRating = &rating.String
	}

	rows, err := h.db.Query(`
		SELECT hole_number, par, stroke_index
		FROM course_hole
		WHERE course_id = $1
		ORDER BY hole_number
	`, courseID)
	if err != nil {
		slog.Error("failed to query course holes", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	resp.Holes = []models.HoleSpecPayload{}
	for rows.Next() {
		var hole models.HoleSpecPayload
		if err := rows.Scan(&hole.HoleNumber, &hole.Par, &hole.StrokeIndex); err != nil {
			slog.Error("failed to scan course hole", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		resp.TotalPar += hole.Par
		resp.Holes = append(resp.Holes, hole)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to iterate course holes", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

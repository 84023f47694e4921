// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Round status wire codes (see golf.RoundStatus)
const (
	StatusInProgress = "ip"
	StatusFinished   = "f"
	StatusAborted    = "a"
)

// Request types

type RegisterPlayerRequest struct {
	Name string `json:"name"`
}

type UpdateHandicapRequest struct {
	// Handicap is a decimal string ("18.4"); null clears the handicap.
	Handicap *string `json:"handicap"`
}

type HoleSpecPayload struct {
	HoleNumber  int `json:"hole_number"`
	Par         int `json:"par"`
	StrokeIndex int `json:"stroke_index"`
}

type CreateCourseRequest struct {
	Name         string            `json:"name"`
	SlopeRating  *string           `json:"slope_rating,omitempty"`
	CourseRating *string           `json:"course_rating,omitempty"`
	Holes        []HoleSpecPayload `json:"holes"`
}

type HoleResultRequest struct {
	HoleNumber  int      `json:"hole_number"`
	Strokes     int      `json:"strokes"`
	Par         int      `json:"par"`
	StrokeIndex int      `json:"stroke_index"`
	ClubsUsed   []string `json:"clubs_used,omitempty"`
}

type HoleUpdateRequest struct {
	Strokes     int      `json:"strokes"`
	Par         int      `json:"par"`
	StrokeIndex int      `json:"stroke_index"`
	ClubsUsed   []string `json:"clubs_used,omitempty"`
}

type CreateRoundRequest struct {
	CourseName   string              `json:"course_name"`
	Date         string              `json:"date"` // ISO-8601 date
	SlopeRating  *string             `json:"slope_rating,omitempty"`
	CourseRating *string             `json:"course_rating,omitempty"`
	Holes        []HoleResultRequest `json:"holes,omitempty"`
}

// Response types

type RegisterPlayerResponse struct {
	PlayerID string `json:"player_id"`
	APIKey   string `json:"api_key"`
}

type PlayerResponse struct {
	PlayerID  string  `json:"player_id"`
	Name      string  `json:"name"`
	Handicap  *string `json:"handicap"`
	CreatedAt string  `json:"created_at"`
}

type PlayerStatsResponse struct {
	RoundsPlayed   int    `json:"rounds_played"`
	RoundsFinished int    `json:"rounds_finished"`
	BestStableford *int   `json:"best_stableford"`
	LastPlayed     string `json:"last_played"` // "3 days ago" or "never"
}

type CreateCourseResponse struct {
	CourseID string `json:"course_id"`
}

type CourseResponse struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	SlopeRating  *string           `json:"slope_rating"`
	CourseRating *string           `json:"course_rating"`
	TotalPar     int               `json:"total_par"`
	Holes        []HoleSpecPayload `json:"holes"`
}

type CourseSummary struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	NumberOfHoles int    `json:"number_of_holes"`
}

type CourseListResponse struct {
	Courses []CourseSummary `json:"courses"`
	Count   int             `json:"count"`
}

type CreateRoundResponse struct {
	RoundID string `json:"round_id"`
	Message string `json:"message"`
}

type RoundSummary struct {
	ID              string `json:"id"`
	CourseName      string `json:"course_name"`
	Date            string `json:"date"`
	Status          string `json:"status"`
	HolesPlayed     int    `json:"holes_played"`
	TotalStrokes    int    `json:"total_strokes"`
	StablefordScore *int   `json:"stableford_score"`
}

type RoundListResponse struct {
	Rounds []RoundSummary `json:"rounds"`
	Count  int            `json:"count"`
}

type HoleResultPayload struct {
	HoleNumber       int      `json:"hole_number"`
	Strokes          int      `json:"strokes"`
	Par              int      `json:"par"`
	StrokeIndex      int      `json:"stroke_index"`
	HandicapStrokes  *int     `json:"handicap_strokes,omitempty"`
	StablefordPoints *int     `json:"stableford_points,omitempty"`
	ClubsUsed        []string `json:"clubs_used,omitempty"`
}

type RoundDetailResponse struct {
	ID              string              `json:"id"`
	CourseName      string              `json:"course_name"`
	Date            string              `json:"date"`
	Holes           []HoleResultPayload `json:"holes"`
	Status          string              `json:"status"`
	PlayerHandicap  *string             `json:"player_handicap"`
	SlopeRating     *string             `json:"slope_rating"`
	CourseRating    *string             `json:"course_rating"`
	StablefordScore *int                `json:"stableford_score"`
	TotalStrokes    int                 `json:"total_strokes"`
	IsComplete      bool                `json:"is_complete"`
	ScoreStale      bool                `json:"score_stale"`
	CreatedAt       string              `json:"created_at"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

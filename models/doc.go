// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and wire types for the API.

Decimals (handicap index, slope rating, course rating) travel as decimal
strings to avoid float drift; null clears or omits them. Dates are ISO-8601
(YYYY-MM-DD) and timestamps RFC 3339. Round status uses the short codes
ip / f / a.

# Request Types

  - RegisterPlayerRequest: name
  - UpdateHandicapRequest: handicap (decimal string or null)
  - CreateCourseRequest: name, ratings, hole specs
  - CreateRoundRequest: course_name, date, ratings, optional holes
  - HoleResultRequest / HoleUpdateRequest: strokes, par, stroke_index,
    optional clubs_used

# Response Types

  - RegisterPlayerResponse: player_id, api_key
  - PlayerResponse / PlayerStatsResponse
  - CourseResponse / CourseSummary / CourseListResponse
  - CreateRoundResponse / RoundSummary / RoundListResponse
  - RoundDetailResponse: full round state including per-hole cached
    handicap_strokes and stableford_points, is_complete, and score_stale
  - ErrorResponse: error, message
*/
package models

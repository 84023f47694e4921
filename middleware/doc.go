// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and JSON helpers.

# Request Logging

WithLogging wraps a handler with slog request/completion logging:

	mux.HandleFunc("POST /rounds", middleware.WithLogging(handler.CreateRound))

# JSON Helpers

JSONResponse and ErrorResponse write JSON bodies with the right headers;
ParseJSONBody decodes a request body:

	middleware.JSONResponse(w, http.StatusOK, response)
	middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")

# CORS

CORS allows cross-origin requests, including the X-Player-ID and X-API-Key
auth headers.
*/
package middleware

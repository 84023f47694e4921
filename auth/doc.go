// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides identifier generation and API key validation.

# Entity IDs

Players, courses, and rounds get random UUIDs:

	id := auth.NewEntityID()

# API Keys

A player's API key is an HMAC of their player ID with a server-side salt,
so keys are verifiable without storing them:

	key := auth.GenerateAPIKey(playerID, cfg.APIKeySalt)
	err := auth.ValidateAPIKey(playerID, key, cfg.APIKeySalt)

Requests carry the X-Player-ID and X-API-Key headers; handlers validate the
pair before touching player-scoped data.
*/
package auth

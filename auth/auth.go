// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strings"

	"github.com/google/uuid"
)

var ErrInvalidAPIKey = errors.New("invalid API key")

// NewEntityID creates a random identifier for players, courses, and rounds.
func NewEntityID() string {
	return uuid.NewString()
}

// GenerateAPIKey creates an HMAC-based API key for a player.
// This is deterministic and verifiable, so keys need no storage.
func GenerateAPIKey(playerID, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(playerID))
	sum := h.Sum(nil)
	// Use URL-safe base64 and trim padding for cleaner keys
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// ValidateAPIKey checks if the provided API key is valid for the player
func ValidateAPIKey(playerID, apiKey, salt string) error {
	expected := GenerateAPIKey(playerID, salt)
	if !hmac.Equal([]byte(apiKey), []byte(expected)) {
		return ErrInvalidAPIKey
	}
	return nil
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/carry-on/models"
	"github.com/danielhkuo/carry-on/testutil"
)

func TestRegister(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewPlayerHandler(db, cfg)

	t.Run("successful registration", func(t *testing.T) {
		req := testutil.MakeRequest("POST", "/players/register",
			models.RegisterPlayerRequest{Name: "Alice"}, nil)
		w := httptest.NewRecorder()

		handler.Register(w, req)

		testutil.AssertStatus(t, w, 201)

		var resp models.RegisterPlayerResponse
		testutil.AssertJSON(t, w, &resp)

		if resp.PlayerID == "" {
			t.Error("Expected non-empty player_id")
		}
		if resp.APIKey == "" {
			t.Error("Expected non-empty api_key")
		}

		// The returned credentials should authenticate
		me := testutil.MakeRequest("GET", "/players/me", nil,
			testutil.AuthHeaders(resp.PlayerID, resp.APIKey))
		meW := httptest.NewRecorder()
		handler.GetMe(meW, me)
		testutil.AssertStatus(t, meW, 200)
	})

	t.Run("blank name rejected", func(t *testing.T) {
		req := testutil.MakeRequest("POST", "/players/register",
			models.RegisterPlayerRequest{Name: "   "}, nil)
		w := httptest.NewRecorder()

		handler.Register(w, req)

		testutil.AssertStatus(t, w, 400)
	})

	t.Run("invalid JSON rejected", func(t *testing.T) {
		req := testutil.MakeRequest("POST", "/players/register", nil, nil)
		w := httptest.NewRecorder()

		handler.Register(w, req)

		testutil.AssertStatus(t, w, 400)
	})
}

func TestGetMe(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewPlayerHandler(db, cfg)

	playerID, apiKey := testutil.RegisterTestPlayer(t, db, cfg, "Bob")

	t.Run("returns profile", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/players/me", nil,
			testutil.AuthHeaders(playerID, apiKey))
		w := httptest.NewRecorder()

		handler.GetMe(w, req)

		testutil.AssertStatus(t, w, 200)

		var resp models.PlayerResponse
		testutil.AssertJSON(t, w, &resp)

		if resp.PlayerID != playerID {
			t.Errorf("Expected player_id %s, got %s", playerID, resp.PlayerID)
		}
		if resp.Name != "Bob" {
			t.Errorf("Expected name 'Bob', got '%s'", resp.Name)
		}
		if resp.Handicap != nil {
			t.Errorf("Expected null handicap for new player, got %v", *resp.Handicap)
		}
	})

	t.Run("missing credentials", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/players/me", nil, nil)
		w := httptest.NewRecorder()

		handler.GetMe(w, req)

		testutil.AssertStatus(t, w, 401)
	})

	t.Run("wrong API key", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/players/me", nil,
			testutil.AuthHeaders(playerID, "forged-key"))
		w := httptest.NewRecorder()

		handler.GetMe(w, req)

		testutil.AssertStatus(t, w, 401)
	})
}

func TestUpdateHandicap(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewPlayerHandler(db, cfg)

	playerID, apiKey := testutil.RegisterTestPlayer(t, db, cfg, "Carol")
	headers := testutil.AuthHeaders(playerID, apiKey)

	getHandicap := func(t *testing.T) *string {
		t.Helper()
		req := testutil.MakeRequest("GET", "/players/me", nil, headers)
		w := httptest.NewRecorder()
		handler.GetMe(w, req)
		testutil.AssertStatus(t, w, 200)
		var resp models.PlayerResponse
		testutil.AssertJSON(t, w, &resp)
		return resp.Handicap
	}

	t.Run("set handicap", func(t *testing.T) {
		value := "18.4"
		req := testutil.MakeRequest("PUT", "/players/me/handicap",
			models.UpdateHandicapRequest{Handicap: &value}, headers)
		w := httptest.NewRecorder()

		handler.UpdateHandicap(w, req)

		testutil.AssertStatus(t, w, 200)

		stored := getHandicap(t)
		if stored == nil || *stored != "18.4" {
			t.Errorf("Expected handicap '18.4', got %v", stored)
		}
	})

	t.Run("out of range rejected", func(t *testing.T) {
		for _, value := range []string{"54.1", "-10.1", "abc"} {
			v := value
			req := testutil.MakeRequest("PUT", "/players/me/handicap",
				models.UpdateHandicapRequest{Handicap: &v}, headers)
			w := httptest.NewRecorder()

			handler.UpdateHandicap(w, req)

			testutil.AssertStatus(t, w, 400)
		}

		// Stored value untouched by rejected updates
		stored := getHandicap(t)
		if stored == nil || *stored != "18.4" {
			t.Errorf("Expected handicap '18.4' after rejected updates, got %v", stored)
		}
	})

	t.Run("null clears handicap", func(t *testing.T) {
		req := testutil.MakeRequest("PUT", "/players/me/handicap",
			models.UpdateHandicapRequest{Handicap: nil}, headers)
		w := httptest.NewRecorder()

		handler.UpdateHandicap(w, req)

		testutil.AssertStatus(t, w, 200)

		if stored := getHandicap(t); stored != nil {
			t.Errorf("Expected handicap cleared, got %v", *stored)
		}
	})

	t.Run("unauthorized", func(t *testing.T) {
		value := "10.0"
		req := testutil.MakeRequest("PUT", "/players/me/handicap",
			models.UpdateHandicapRequest{Handicap: &value}, nil)
		w := httptest.NewRecorder()

		handler.UpdateHandicap(w, req)

		testutil.AssertStatus(t, w, 401)
	})
}

func TestGetStats(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewPlayerHandler(db, cfg)

	playerID, apiKey := testutil.RegisterTestPlayer(t, db, cfg, "Dave")
	headers := testutil.AuthHeaders(playerID, apiKey)

	t.Run("no rounds yet", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/players/me/stats", nil, headers)
		w := httptest.NewRecorder()

		handler.GetStats(w, req)

		testutil.AssertStatus(t, w, 200)

		var resp models.PlayerStatsResponse
		testutil.AssertJSON(t, w, &resp)

		if resp.RoundsPlayed != 0 {
			t.Errorf("Expected 0 rounds played, got %d", resp.RoundsPlayed)
		}
		if resp.BestStableford != nil {
			t.Errorf("Expected no best score, got %v", *resp.BestStableford)
		}
		if resp.LastPlayed != "never" {
			t.Errorf("Expected last_played 'never', got '%s'", resp.LastPlayed)
		}
	})

	t.Run("counts rounds and best score", func(t *testing.T) {
		testutil.CreateTestRound(t, db, playerID, "ip")
		finishedID := testutil.CreateTestRound(t, db, playerID, "f")
		if _, err := db.Exec(`UPDATE round SET stableford_score = 36 WHERE id = $1`, finishedID); err != nil {
			t.Fatalf("Failed to set score: %v", err)
		}

		req := testutil.MakeRequest("GET", "/players/me/stats", nil, headers)
		w := httptest.NewRecorder()

		handler.GetStats(w, req)

		testutil.AssertStatus(t, w, 200)

		var resp models.PlayerStatsResponse
		testutil.AssertJSON(t, w, &resp)

		if resp.RoundsPlayed != 2 {
			t.Errorf("Expected 2 rounds played, got %d", resp.RoundsPlayed)
		}
		if resp.RoundsFinished != 1 {
			t.Errorf("Expected 1 round finished, got %d", resp.RoundsFinished)
		}
		if resp.BestStableford == nil || *resp.BestStableford != 36 {
			t.Errorf("Expected best score 36, got %v", resp.BestStableford)
		}
		if resp.LastPlayed == "never" {
			t.Error("Expected a humanized last_played, got 'never'")
		}
	})

	t.Run("unauthorized", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/players/me/stats", nil, nil)
		w := httptest.NewRecorder()

		handler.GetStats(w, req)

		testutil.AssertStatus(t, w, 401)
	})
}

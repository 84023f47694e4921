// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package golf

import "fmt"

// Club identifies a golf club by its short code.
type Club string

const (
	ClubDriver        Club = "d"
	ClubWood3         Club = "3w"
	ClubWood5         Club = "5w"
	ClubHybrid4       Club = "4h"
	ClubHybrid5       Club = "5h"
	ClubIron5         Club = "5i"
	ClubIron6         Club = "6i"
	ClubIron7         Club = "7i"
	ClubIron8         Club = "8i"
	ClubIron9         Club = "9i"
	ClubPitchingWedge Club = "pw"
	ClubGapWedge      Club = "gw"
	ClubSandWedge     Club = "sw"
	ClubLobWedge      Club = "lw"
)

var validClubs = map[Club]bool{
	ClubDriver: true, ClubWood3: true, ClubWood5: true,
	ClubHybrid4: true, ClubHybrid5: true,
	ClubIron5: true, ClubIron6: true, ClubIron7: true, ClubIron8: true, ClubIron9: true,
	ClubPitchingWedge: true, ClubGapWedge: true, ClubSandWedge: true, ClubLobWedge: true,
}

// ParseClub maps a short code to a Club.
func ParseClub(code string) (Club, error) {
	c := Club(code)
	if !validClubs[c] {
		return "", fmt.Errorf("unknown club code %q", code)
	}
	return c, nil
}

// ParseClubs maps a sequence of short codes to Clubs. A nil or empty input
// returns nil, meaning "not tracked".
func ParseClubs(codes []string) ([]Club, error) {
	if len(codes) == 0 {
		return nil, nil
	}
	clubs := make([]Club, len(codes))
	for i, code := range codes {
		c, err := ParseClub(code)
		if err != nil {
			return nil, err
		}
		clubs[i] = c
	}
	return clubs, nil
}

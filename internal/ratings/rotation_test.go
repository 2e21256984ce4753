package ratings_test

import (
	"testing"

	"github.com/duskpine/leaguebot/internal/ratings"
	"github.com/stretchr/testify/assert"
)

func TestOpponentSeedHomeRotation(t *testing.T) {
	// Fixed round-robin grid: (home seed, away seed) pairs per round.
	expected := map[int][][2]int{
		1: {{1, 3}, {2, 1}, {3, 2}},
		2: {{1, 2}, {2, 3}, {3, 1}},
		3: {{1, 1}, {2, 2}, {3, 3}},
	}

	for round, pairs := range expected {
		for _, pair := range pairs {
			homeSeed, awaySeed := pair[0], pair[1]
			assert.Equal(t, awaySeed, ratings.OpponentSeed(homeSeed, round, true),
				"home seed %d round %d", homeSeed, round)
			assert.Equal(t, homeSeed, ratings.OpponentSeed(awaySeed, round, false),
				"away seed %d round %d", awaySeed, round)
		}
	}
}

func TestOpponentSeedCoversEveryPairingOnce(t *testing.T) {
	for seed := 1; seed <= 3; seed++ {
		seen := map[int]bool{}
		for round := 1; round <= 3; round++ {
			seen[ratings.OpponentSeed(seed, round, true)] = true
		}
		assert.Len(t, seen, 3, "home seed %d must face each away seed exactly once", seed)
	}
}

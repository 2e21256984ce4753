package schedule

import "math/rand"

// Candidate strings for generated lobby names and passwords. Picks are
// uniform and collisions across concurrent matches are allowed.
var roomWords = []string{
	"octane",
	"fennec",
	"dominus",
	"breakout",
	"marauder",
	"paladin",
	"takumi",
	"worst car",
	"merc",
	"backboard",
	"demo",
	"whiff",
}

// GenerateCredential draws one candidate at random.
func GenerateCredential() string {
	return roomWords[rand.Intn(len(roomWords))]
}

package ratings

// OpponentSeed returns the opposing seed a player faces in a given round
// (1..3). Home players rotate downward through the away seeds, away
// players rotate upward through the home seeds, so each pairing occurs
// exactly once across the three rounds.
func OpponentSeed(seed, round int, isHome bool) int {
	var s int
	if isHome {
		s = ((seed - round) % 3 + 3) % 3
	} else {
		s = (seed + round) % 3
	}
	if s == 0 {
		s = 3
	}
	return s
}

package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMatchTuplesSingle(t *testing.T) {
	inputs, err := parseMatchTuples("['1','January 12, 2026','Fire Ants','Leopards']")
	require.NoError(t, err)
	require.Len(t, inputs, 1)

	assert.Equal(t, "1", inputs[0].MatchDay)
	assert.Equal(t, "January 12, 2026", inputs[0].MatchDate)
	assert.Equal(t, "Fire Ants", inputs[0].Home)
	assert.Equal(t, "Leopards", inputs[0].Away)
	assert.Empty(t, inputs[0].RoomName)
	assert.Empty(t, inputs[0].RoomPass)
}

func TestParseMatchTuplesWithCredentials(t *testing.T) {
	inputs, err := parseMatchTuples("['2','February 3, 2026','Bears','Wolves','octane','fennec']")
	require.NoError(t, err)
	require.Len(t, inputs, 1)

	assert.Equal(t, "octane", inputs[0].RoomName)
	assert.Equal(t, "fennec", inputs[0].RoomPass)
}

func TestParseMatchTuplesMultiple(t *testing.T) {
	inputs, err := parseMatchTuples(
		"['1','January 12, 2026','Fire Ants','Leopards'] ['1','January 12, 2026','Bears','Wolves']")
	require.NoError(t, err)
	require.Len(t, inputs, 2)
	assert.Equal(t, "Fire Ants", inputs[0].Home)
	assert.Equal(t, "Bears", inputs[1].Home)
}

func TestParseMatchTuplesDoubleQuotes(t *testing.T) {
	inputs, err := parseMatchTuples(`['1',"January 12, 2026",'Killer Bees','Leopards']`)
	require.NoError(t, err)
	require.Len(t, inputs, 1)
	assert.Equal(t, "January 12, 2026", inputs[0].MatchDate)
	assert.Equal(t, "Killer Bees", inputs[0].Home)
}

func TestParseMatchTuplesRoomNameOnly(t *testing.T) {
	inputs, err := parseMatchTuples("['1','January 12, 2026','Fire Ants','Leopards','octane']")
	require.NoError(t, err)
	require.Len(t, inputs, 1)

	// A supplied room name with no password leaves the password to be
	// generated on insert.
	assert.Equal(t, "octane", inputs[0].RoomName)
	assert.Empty(t, inputs[0].RoomPass)
}

func TestParseMatchTuplesErrors(t *testing.T) {
	_, err := parseMatchTuples("no tuples here")
	assert.Error(t, err)

	_, err = parseMatchTuples("['1','January 12, 2026','Fire Ants'")
	assert.Error(t, err)

	_, err = parseMatchTuples("['1','January 12, 2026','Fire Ants']")
	assert.Error(t, err) // 3 fields

	_, err = parseMatchTuples("['1','January 12, 2026','Fire Ants','Leopards','octane','fennec','extra']")
	assert.Error(t, err) // 7 fields

	_, err = parseMatchTuples("['unterminated]")
	assert.Error(t, err)
}

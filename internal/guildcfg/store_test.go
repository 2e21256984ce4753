package guildcfg_test

import (
	"database/sql"
	"testing"

	"github.com/duskpine/leaguebot/internal/database"
	"github.com/duskpine/leaguebot/internal/guildcfg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates a temporary in-memory SQLite database for testing.
func setupTestDB(t *testing.T) (guildcfg.Store, *sql.DB, func()) {
	t.Helper()

	db, dbTeardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)

	store := guildcfg.New(db)
	teardown := func() {
		dbTeardown()
		db.Close()
	}

	return store, db, teardown
}

func TestScalarDefaults(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	game, err := store.GetString("guild-1", guildcfg.KeyGame)
	require.NoError(t, err)
	assert.Equal(t, "Rocket League", game)

	day, err := store.GetString("guild-1", guildcfg.KeyMatchDay)
	require.NoError(t, err)
	assert.Equal(t, "", day)
}

func TestSetAndGetString(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	require.NoError(t, store.SetString("guild-1", guildcfg.KeyMatchDay, "3"))

	day, err := store.GetString("guild-1", guildcfg.KeyMatchDay)
	require.NoError(t, err)
	assert.Equal(t, "3", day)

	// Overwrites replace the previous value.
	require.NoError(t, store.SetString("guild-1", guildcfg.KeyMatchDay, "4"))
	day, err = store.GetString("guild-1", guildcfg.KeyMatchDay)
	require.NoError(t, err)
	assert.Equal(t, "4", day)

	// Other guilds are unaffected.
	day, err = store.GetString("guild-2", guildcfg.KeyMatchDay)
	require.NoError(t, err)
	assert.Equal(t, "", day)
}

func TestDocumentRoundTrip(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	type doc struct {
		Names []string       `json:"names"`
		Index map[string]int `json:"index"`
	}

	var out doc
	found, err := store.GetDocument("guild-1", guildcfg.KeySchedule, &out)
	require.NoError(t, err)
	assert.False(t, found)

	in := doc{Names: []string{"a", "b"}, Index: map[string]int{"a|1": 0}}
	require.NoError(t, store.SetDocument("guild-1", guildcfg.KeySchedule, in))

	found, err = store.GetDocument("guild-1", guildcfg.KeySchedule, &out)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, in, out)
}

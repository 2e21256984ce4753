package lobby_test

import (
	"context"
	"errors"
	"testing"

	"github.com/duskpine/leaguebot/internal/guildcfg"
	"github.com/duskpine/leaguebot/internal/lobby"
	"github.com/duskpine/leaguebot/internal/metrics"
	"github.com/duskpine/leaguebot/internal/presence"
	"github.com/duskpine/leaguebot/internal/schedule"
	"github.com/duskpine/leaguebot/internal/team"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testGuild = "guild-1"
	viewerID  = "fa-2"
)

type fixture struct {
	notifier   *lobby.Notifier
	dispatcher *lobby.MockDispatcher
	oracle     *presence.Mock
	teams      *team.Mock
	metrics    *metrics.Mock
	cfg        *guildcfg.Mock
}

// setup builds a guild where the viewer plays for Fire Ants and faces
// Leopards on the active match day. The opposing roster is the captain
// plus two players; the GM is off-roster unless gmOnRoster is set.
func setup(t *testing.T, gmOnRoster bool) *fixture {
	t.Helper()

	cfg := guildcfg.NewMock()
	require.NoError(t, cfg.SetString(testGuild, guildcfg.KeyMatchDay, "1"))

	gmID := "le-gm"
	if gmOnRoster {
		gmID = "le-2"
	}

	teams := team.NewMock()
	teams.AddTeam(
		team.Team{GuildID: testGuild, Name: "Fire Ants", CaptainID: "fa-cap"},
		[]team.Member{{ID: "fa-cap", Name: "Ant Captain"}, {ID: viewerID, Name: "Ant Two"}},
	)
	teams.AddTeam(
		team.Team{GuildID: testGuild, Name: "Leopards", CaptainID: "le-cap", GMID: gmID},
		[]team.Member{{ID: "le-cap", Name: "Leo Captain"}, {ID: "le-2", Name: "Leo Two"}, {ID: "le-3", Name: "Leo Three"}},
	)
	teams.SetTierRole(testGuild, "Leopards", "Champion", 0xE67E22)

	store := schedule.NewStore(cfg)
	metricsMock := metrics.NewMock()
	resolver := schedule.NewResolver(store, teams, metricsMock)
	_, err := resolver.InsertMatch(testGuild, schedule.InsertMatchInput{
		MatchDay:  "1",
		MatchDate: "January 12, 2026",
		Home:      "Fire Ants",
		Away:      "Leopards",
		RoomName:  "octane",
		RoomPass:  "fennec",
	})
	require.NoError(t, err)

	oracle := presence.NewMock()
	dispatcher := lobby.NewMockDispatcher()
	notifier := lobby.NewNotifier(resolver, cfg, teams, oracle, dispatcher, metricsMock)

	return &fixture{
		notifier:   notifier,
		dispatcher: dispatcher,
		oracle:     oracle,
		teams:      teams,
		metrics:    metricsMock,
		cfg:        cfg,
	}
}

func recipientIDs(jobs []lobby.Job) []string {
	ids := make([]string, len(jobs))
	for i, job := range jobs {
		ids[i] = job.RecipientID
	}
	return ids
}

func TestCaptainInGameGetsSoleNotification(t *testing.T) {
	f := setup(t, false)
	f.oracle.SetInGame("le-cap")
	f.oracle.SetInGame("le-2") // others in-game must not widen the tier

	sent, err := f.notifier.NotifyOpponents(context.Background(), testGuild, viewerID)
	require.NoError(t, err)
	assert.Equal(t, 1, sent)

	jobs := f.dispatcher.Jobs()
	require.Len(t, jobs, 1)
	assert.Equal(t, "le-cap", jobs[0].RecipientID)
	assert.Equal(t, "octane", jobs[0].RoomName)
	assert.Equal(t, "fennec", jobs[0].RoomPass)
	assert.Equal(t, "Leopards", jobs[0].OpposingTeam)
	assert.Equal(t, "Champion", jobs[0].TierRoleName)
	assert.Equal(t, 0xE67E22, jobs[0].Color)
	assert.Empty(t, jobs[0].Footnote)
}

func TestCaptainOnlineGetsSoleNotification(t *testing.T) {
	f := setup(t, false)
	f.oracle.SetOnline("le-cap")
	f.oracle.SetInGame("le-2")

	sent, err := f.notifier.NotifyOpponents(context.Background(), testGuild, viewerID)
	require.NoError(t, err)
	assert.Equal(t, 1, sent)
	assert.Equal(t, []string{"le-cap"}, recipientIDs(f.dispatcher.Jobs()))
}

func TestRosterInGameTier(t *testing.T) {
	f := setup(t, false)
	f.oracle.SetInGame("le-2")
	f.oracle.SetOnline("le-3") // online only, must not be included

	sent, err := f.notifier.NotifyOpponents(context.Background(), testGuild, viewerID)
	require.NoError(t, err)
	assert.Equal(t, 1, sent)
	assert.Equal(t, []string{"le-2"}, recipientIDs(f.dispatcher.Jobs()))
}

func TestRosterOnlineTier(t *testing.T) {
	f := setup(t, false)
	f.oracle.SetOnline("le-2")
	f.oracle.SetOnline("le-3")

	sent, err := f.notifier.NotifyOpponents(context.Background(), testGuild, viewerID)
	require.NoError(t, err)
	assert.Equal(t, 2, sent)
	assert.ElementsMatch(t, []string{"le-2", "le-3"}, recipientIDs(f.dispatcher.Jobs()))
}

func TestNobodyOnlineEscalatesToEveryoneAndGM(t *testing.T) {
	f := setup(t, false)

	sent, err := f.notifier.NotifyOpponents(context.Background(), testGuild, viewerID)
	require.NoError(t, err)
	assert.Equal(t, 4, sent)

	jobs := f.dispatcher.Jobs()
	assert.ElementsMatch(t, []string{"le-2", "le-3", "le-cap", "le-gm"}, recipientIDs(jobs))

	var gmJob *lobby.Job
	for i := range jobs {
		if jobs[i].RecipientID == "le-gm" {
			gmJob = &jobs[i]
		} else {
			assert.Empty(t, jobs[i].Footnote)
		}
	}
	require.NotNil(t, gmJob)
	assert.Contains(t, gmJob.Footnote, "Champion")
	assert.Contains(t, gmJob.Footnote, "Leopards")
}

func TestGMAlreadyOnRosterIsNotDoubleNotified(t *testing.T) {
	f := setup(t, true) // GM is le-2

	sent, err := f.notifier.NotifyOpponents(context.Background(), testGuild, viewerID)
	require.NoError(t, err)
	assert.Equal(t, 3, sent)
	assert.ElementsMatch(t, []string{"le-2", "le-3", "le-cap"}, recipientIDs(f.dispatcher.Jobs()))
	for _, job := range f.dispatcher.Jobs() {
		assert.Empty(t, job.Footnote)
	}
}

func TestPresenceErrorsFailOpen(t *testing.T) {
	f := setup(t, false)
	f.oracle.Err = errors.New("gateway hiccup")

	sent, err := f.notifier.NotifyOpponents(context.Background(), testGuild, viewerID)
	require.NoError(t, err)
	// All lookups failed, so everyone plus the GM is notified.
	assert.Equal(t, 4, sent)
}

func TestNotFoundConditions(t *testing.T) {
	var nferr *lobby.NotFoundError

	t.Run("match day not set", func(t *testing.T) {
		f := setup(t, false)
		require.NoError(t, f.cfg.SetString(testGuild, guildcfg.KeyMatchDay, ""))
		_, err := f.notifier.NotifyOpponents(context.Background(), testGuild, viewerID)
		assert.ErrorAs(t, err, &nferr)
		assert.Empty(t, f.dispatcher.Jobs())
	})

	t.Run("viewer has no team", func(t *testing.T) {
		f := setup(t, false)
		_, err := f.notifier.NotifyOpponents(context.Background(), testGuild, "stranger")
		assert.ErrorAs(t, err, &nferr)
		assert.Empty(t, f.dispatcher.Jobs())
	})

	t.Run("no match on the active day", func(t *testing.T) {
		f := setup(t, false)
		require.NoError(t, f.cfg.SetString(testGuild, guildcfg.KeyMatchDay, "9"))
		_, err := f.notifier.NotifyOpponents(context.Background(), testGuild, viewerID)
		assert.ErrorAs(t, err, &nferr)
		assert.Empty(t, f.dispatcher.Jobs())
	})
}

func TestDispatchFailuresDoNotBlockOtherRecipients(t *testing.T) {
	f := setup(t, false)
	f.dispatcher.Err = errors.New("broker down")

	sent, err := f.notifier.NotifyOpponents(context.Background(), testGuild, viewerID)
	require.NoError(t, err)
	assert.Equal(t, 0, sent)
	assert.Equal(t, 4, f.metrics.LobbyNotifFailed())
	assert.Equal(t, 0, f.metrics.LobbyNotifSent())
}

package presence_test

import (
	"testing"
	"time"

	"github.com/duskpine/leaguebot/internal/presence"
	"github.com/stretchr/testify/assert"
)

func TestInGame(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name       string
		activities []presence.Activity
		game       string
		want       bool
	}{
		{
			name: "playing the configured game",
			activities: []presence.Activity{
				{Kind: presence.KindPlaying, Name: "Rocket League"},
			},
			game: "Rocket League",
			want: true,
		},
		{
			name: "game name comparison is case-insensitive",
			activities: []presence.Activity{
				{Kind: presence.KindPlaying, Name: "rocket league"},
			},
			game: "Rocket League",
			want: true,
		},
		{
			name: "playing a different game",
			activities: []presence.Activity{
				{Kind: presence.KindPlaying, Name: "Chess"},
			},
			game: "Rocket League",
			want: false,
		},
		{
			name: "streaming the game does not count as playing",
			activities: []presence.Activity{
				{Kind: presence.KindStreaming, Name: "Rocket League"},
			},
			game: "Rocket League",
			want: false,
		},
		{
			name: "stale activity with past end timestamp is ignored",
			activities: []presence.Activity{
				{Kind: presence.KindPlaying, Name: "Rocket League", End: &past},
			},
			game: "Rocket League",
			want: false,
		},
		{
			name: "future end timestamp still counts",
			activities: []presence.Activity{
				{Kind: presence.KindPlaying, Name: "Rocket League", End: &future},
			},
			game: "Rocket League",
			want: true,
		},
		{
			name: "second activity matches",
			activities: []presence.Activity{
				{Kind: presence.KindOther, Name: "Spotify"},
				{Kind: presence.KindPlaying, Name: "Rocket League"},
			},
			game: "Rocket League",
			want: true,
		},
		{
			name:       "no activities",
			activities: nil,
			game:       "Rocket League",
			want:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, presence.InGame(tt.activities, tt.game, now))
		})
	}
}

func TestOnline(t *testing.T) {
	assert.True(t, presence.Online(presence.StatusOnline))
	assert.False(t, presence.Online(presence.StatusOffline))
}

// Only an active client counts as online. An idle or DND captain must not
// absorb the notification; the escalation has to continue to the roster.
func TestOnlineExcludesIdleAndDND(t *testing.T) {
	assert.False(t, presence.Online(presence.StatusIdle))
	assert.False(t, presence.Online(presence.StatusDND))
}

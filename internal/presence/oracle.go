package presence

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/duskpine/leaguebot/internal/guildcfg"
)

// Oracle answers availability questions about guild members.
type Oracle interface {
	// IsInGame reports whether the member is currently playing the guild's
	// configured game.
	IsInGame(guildID, memberID string) (bool, error)
	// IsOnline reports whether the member is reachable at all.
	IsOnline(guildID, memberID string) (bool, error)
}

var _ Oracle = (*oracle)(nil)

type oracle struct {
	session *discordgo.Session
	cfg     guildcfg.Store
}

// NewOracle creates an Oracle backed by the gateway presence cache.
// Requires the presences intent; members the cache has never seen are
// reported as offline.
func NewOracle(session *discordgo.Session, cfg guildcfg.Store) Oracle {
	return &oracle{
		session: session,
		cfg:     cfg,
	}
}

func (o *oracle) IsInGame(guildID, memberID string) (bool, error) {
	p, err := o.session.State.Presence(guildID, memberID)
	if err != nil {
		if err == discordgo.ErrStateNotFound {
			return false, nil
		}
		return false, fmt.Errorf("failed to read presence for %s: %w", memberID, err)
	}

	game, err := o.cfg.GetString(guildID, guildcfg.KeyGame)
	if err != nil {
		return false, err
	}

	return InGame(fromDiscord(p.Activities), game, time.Now()), nil
}

func (o *oracle) IsOnline(guildID, memberID string) (bool, error) {
	p, err := o.session.State.Presence(guildID, memberID)
	if err != nil {
		if err == discordgo.ErrStateNotFound {
			return false, nil
		}
		return false, fmt.Errorf("failed to read presence for %s: %w", memberID, err)
	}
	return Online(fromDiscordStatus(p.Status)), nil
}

func fromDiscord(activities []*discordgo.Activity) []Activity {
	out := make([]Activity, 0, len(activities))
	for _, a := range activities {
		if a == nil {
			continue
		}
		kind := KindOther
		switch a.Type {
		case discordgo.ActivityTypeGame:
			kind = KindPlaying
		case discordgo.ActivityTypeStreaming:
			kind = KindStreaming
		}
		var end *time.Time
		if a.Timestamps.EndTimestamp != 0 {
			t := time.UnixMilli(a.Timestamps.EndTimestamp)
			end = &t
		}
		out = append(out, Activity{Kind: kind, Name: a.Name, End: end})
	}
	return out
}

func fromDiscordStatus(status discordgo.Status) Status {
	switch status {
	case discordgo.StatusOnline:
		return StatusOnline
	case discordgo.StatusIdle:
		return StatusIdle
	case discordgo.StatusDoNotDisturb:
		return StatusDND
	default:
		return StatusOffline
	}
}

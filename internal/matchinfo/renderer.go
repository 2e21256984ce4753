package matchinfo

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/charmbracelet/log"
	"github.com/duskpine/leaguebot/internal/ratings"
	"github.com/duskpine/leaguebot/internal/schedule"
	"github.com/duskpine/leaguebot/internal/team"
)

// Renderer turns a match record into user-facing match info, either as a
// rich embed or as plain markdown for mobile clients. Both renderings
// carry the same content.
type Renderer struct {
	teams   team.Manager
	ratings ratings.Service
}

// NewRenderer creates a match info Renderer.
func NewRenderer(teams team.Manager, ratingsSvc ratings.Service) *Renderer {
	return &Renderer{
		teams:   teams,
		ratings: ratingsSvc,
	}
}

// RenderEmbed renders the match as a Discord embed themed with the home
// team's tier color.
func (r *Renderer) RenderEmbed(guildID, userID, userTeam string, m *schedule.MatchRecord) (*discordgo.MessageEmbed, error) {
	color := r.tierColor(guildID, m.Home)

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf(headerTmpl, m.MatchDay, m.MatchDate),
		Description: fmt.Sprintf(versusTmpl, m.Home, m.Away),
		Color:       color,
	}

	solo, err := r.soloMode(guildID)
	if err != nil {
		return nil, err
	}
	if solo {
		return r.soloEmbed(embed, guildID, userID, userTeam, m)
	}
	return r.normalEmbed(embed, guildID, userTeam, m)
}

// RenderText renders the match as plain markdown. Embeds are unreadable
// on some mobile clients, so this is the fallback representation.
func (r *Renderer) RenderText(guildID, userID, userTeam string, m *schedule.MatchRecord) (string, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, headerTmpl, m.MatchDay, m.MatchDate)
	fmt.Fprintf(&sb, versusTmpl, m.Home, m.Away)

	solo, err := r.soloMode(guildID)
	if err != nil {
		return "", err
	}
	if solo {
		body, err := r.soloBody(guildID, userID, userTeam, m)
		if err != nil {
			return "", err
		}
		sb.WriteString(body)
		return sb.String(), nil
	}

	fmt.Fprintf(&sb, "**Lobby Info:**\n"+lobbyInfoTmpl+"\n\n", m.RoomName, m.RoomPass)
	fmt.Fprintf(&sb, "**Home Team:**\n%s\n", r.rosterInfo(guildID, m.Home))
	fmt.Fprintf(&sb, "**Away Team:**\n%s\n", r.rosterInfo(guildID, m.Away))
	sb.WriteString(r.additionalInfo(userTeam, m))
	return sb.String(), nil
}

func (r *Renderer) soloMode(guildID string) (bool, error) {
	has, err := r.ratings.GuildHasPlayers(guildID)
	if err != nil {
		return false, fmt.Errorf("failed to determine solo mode: %w", err)
	}
	return has, nil
}

func (r *Renderer) normalEmbed(embed *discordgo.MessageEmbed, guildID, userTeam string, m *schedule.MatchRecord) (*discordgo.MessageEmbed, error) {
	embed.Fields = append(embed.Fields,
		&discordgo.MessageEmbedField{
			Name:  "Lobby Info",
			Value: fmt.Sprintf(lobbyInfoTmpl, m.RoomName, m.RoomPass),
		},
		&discordgo.MessageEmbedField{
			Name:  "**Home Team:**",
			Value: r.rosterInfo(guildID, m.Home),
		},
		&discordgo.MessageEmbedField{
			Name:  "**Away Team:**",
			Value: r.rosterInfo(guildID, m.Away),
		},
		&discordgo.MessageEmbedField{
			Name:  "Additional Info:",
			Value: r.additionalInfo(userTeam, m),
		},
	)
	return embed, nil
}

func (r *Renderer) soloEmbed(embed *discordgo.MessageEmbed, guildID, userID, userTeam string, m *schedule.MatchRecord) (*discordgo.MessageEmbed, error) {
	embed.Fields = append(embed.Fields,
		&discordgo.MessageEmbedField{
			Name:  "**Home Team:**",
			Value: r.rosterInfo(guildID, m.Home),
		},
		&discordgo.MessageEmbedField{
			Name:  "**Away Team:**",
			Value: r.rosterInfo(guildID, m.Away),
		},
	)
	body, err := r.soloMatchups(guildID, userID, userTeam, m)
	if err != nil {
		return nil, err
	}
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:  "Match Info:",
		Value: body,
	})
	return embed, nil
}

func (r *Renderer) soloBody(guildID, userID, userTeam string, m *schedule.MatchRecord) (string, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "**Home Team:**\n%s\n", r.rosterInfo(guildID, m.Home))
	fmt.Fprintf(&sb, "**Away Team:**\n%s\n", r.rosterInfo(guildID, m.Away))
	body, err := r.soloMatchups(guildID, userID, userTeam, m)
	if err != nil {
		return "", err
	}
	sb.WriteString(body)
	return sb.String(), nil
}

// soloMatchups picks between the personalized round-by-round view (the
// requesting user holds a seed on one of the teams) and the generic
// matchup grid everyone else sees.
func (r *Renderer) soloMatchups(guildID, userID, userTeam string, m *schedule.MatchRecord) (string, error) {
	if userTeam != "" {
		seed, ok, err := r.ratings.PlayerSeed(guildID, userTeam, userID)
		if err != nil {
			return "", err
		}
		if ok {
			return r.personalMatchups(guildID, userTeam, seed, m)
		}
	}
	return r.genericMatchups(guildID, m.Home, m.Away), nil
}

func (r *Renderer) personalMatchups(guildID, userTeam string, seed int, m *schedule.MatchRecord) (string, error) {
	var sb strings.Builder
	if strings.EqualFold(userTeam, m.Home) {
		names, _, err := r.ratings.OrderedOpponentNamesAndSeeds(guildID, seed, true, m.Away)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&sb, soloHomeInfoTmpl, seed)
		fmt.Fprintf(&sb, "\n\n**Lobby Info:**\n"+lobbyInfoTmpl+"\n", m.RoomName+fmt.Sprint(seed), m.RoomPass+fmt.Sprint(seed))
		fmt.Fprintf(&sb, soloHomeMatchTmpl, firstMatchDescr, names[0], firstMatchTime)
		fmt.Fprintf(&sb, soloHomeMatchTmpl, secondMatchDescr, names[1], secondMatchTime)
		fmt.Fprintf(&sb, soloHomeMatchTmpl, thirdMatchDescr, names[2], thirdMatchTime)
		return sb.String(), nil
	}

	names, seeds, err := r.ratings.OrderedOpponentNamesAndSeeds(guildID, seed, false, m.Home)
	if err != nil {
		return "", err
	}
	fmt.Fprintf(&sb, soloAwayInfoTmpl, seed)
	descrs := []string{firstMatchDescr, secondMatchDescr, thirdMatchDescr}
	times := []string{firstMatchTime, secondMatchTime, thirdMatchTime}
	for i := 0; i < 3; i++ {
		suffix := fmt.Sprint(seeds[i])
		sb.WriteString("\n\n")
		fmt.Fprintf(&sb, soloAwayMatchTmpl, descrs[i], names[i], times[i], m.RoomName+suffix, m.RoomPass+suffix)
	}
	return sb.String(), nil
}

// genericMatchups renders the full three-round grid. Any missing seed
// degrades the whole grid to a placeholder rather than showing a partial
// one.
func (r *Renderer) genericMatchups(guildID, home, away string) string {
	var sb strings.Builder
	descrs := []string{firstMatchDescr, secondMatchDescr, thirdMatchDescr}
	times := []string{firstMatchTime, secondMatchTime, thirdMatchTime}
	for round := 1; round <= 3; round++ {
		fmt.Fprintf(&sb, soloGridHeaderTmpl, descrs[round-1], times[round-1])
		sb.WriteString("```")
		for homeSeed := 1; homeSeed <= 3; homeSeed++ {
			line, err := r.matchupLine(guildID, home, away, homeSeed, ratings.OpponentSeed(homeSeed, round, true))
			if err != nil {
				log.Warn("Failed to build solo matchup grid", "error", err, "guildID", guildID, "home", home, "away", away)
				return matchupsErrorText
			}
			if homeSeed > 1 {
				sb.WriteString("\n")
			}
			sb.WriteString(line)
		}
		sb.WriteString("```")
	}
	return sb.String()
}

func (r *Renderer) matchupLine(guildID, home, away string, homeSeed, awaySeed int) (string, error) {
	homePlayer, err := r.ratings.MemberNameByTeamAndSeed(guildID, home, homeSeed)
	if err != nil {
		return "", err
	}
	awayPlayer, err := r.ratings.MemberNameByTeamAndSeed(guildID, away, awaySeed)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(soloMatchupTmpl, homePlayer, awayPlayer), nil
}

// additionalInfo builds the closing block. The stream branch compares the
// user's team case-insensitively; the plain home/away note requires an
// exact name match, so a differently-cased lookup only loses the note.
func (r *Renderer) additionalInfo(userTeam string, m *schedule.MatchRecord) string {
	var sb strings.Builder
	if userTeam != "" {
		if sd := m.StreamDetails; sd != nil {
			if strings.EqualFold(userTeam, m.Home) {
				fmt.Fprintf(&sb, streamInfoTmpl, "home", sd.Slot, sd.Time, sd.LiveStream)
			} else if strings.EqualFold(userTeam, m.Away) {
				fmt.Fprintf(&sb, streamInfoTmpl, "away", sd.Slot, sd.Time, sd.LiveStream)
			}
		} else {
			if userTeam == m.Home {
				sb.WriteString(homeInfo)
			} else if userTeam == m.Away {
				sb.WriteString(awayInfo)
			}
		}
	}
	sb.WriteString(regularInfo)
	return sb.String()
}

func (r *Renderer) rosterInfo(guildID, name string) string {
	info, err := r.teams.FormatRosterInfo(guildID, name)
	if err != nil {
		log.Warn("Failed to format roster info", "error", err, "guildID", guildID, "team", name)
		return name
	}
	return info
}

func (r *Renderer) tierColor(guildID, home string) int {
	t, found, err := r.teams.RolesForTeam(guildID, home)
	if err != nil || !found {
		return 0
	}
	color, err := r.teams.TierRoleColor(guildID, t)
	if err != nil {
		return 0
	}
	return color
}

package bot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/charmbracelet/log"
	"github.com/duskpine/leaguebot/internal/guildcfg"
	"github.com/duskpine/leaguebot/internal/lobby"
	"github.com/duskpine/leaguebot/internal/schedule"
)

// handleMatchDay handles /matchday get and /matchday set
func (b *Bot) handleMatchDay(s *discordgo.Session, i *discordgo.InteractionCreate) {
	sub := i.ApplicationCommandData().Options[0]

	switch sub.Name {
	case "get":
		day, err := b.cfg.GetString(i.GuildID, guildcfg.KeyMatchDay)
		if err != nil {
			log.Error("Failed to read match day", "error", err, "guildID", i.GuildID)
			respondWithMessage(s, i, "Failed to read the match day. Please try again.")
			return
		}
		if day == "" {
			respondWithMessage(s, i, ":x: Match day not set. Set with `/matchday set`.")
			return
		}
		respondWithMessage(s, i, fmt.Sprintf("Current match day is: %s", day))
	case "set":
		day := sub.Options[0].StringValue()
		if err := b.cfg.SetString(i.GuildID, guildcfg.KeyMatchDay, day); err != nil {
			log.Error("Failed to set match day", "error", err, "guildID", i.GuildID)
			respondWithMessage(s, i, "Failed to set the match day. Please try again.")
			return
		}
		respondWithMessage(s, i, "Done")
	}
}

// handleAddMatch handles /addmatch
func (b *Bot) handleAddMatch(s *discordgo.Session, i *discordgo.InteractionCreate) {
	in := schedule.InsertMatchInput{}
	for _, opt := range i.ApplicationCommandData().Options {
		switch opt.Name {
		case "day":
			in.MatchDay = opt.StringValue()
		case "date":
			in.MatchDate = opt.StringValue()
		case "home":
			in.Home = opt.StringValue()
		case "away":
			in.Away = opt.StringValue()
		case "roomname":
			in.RoomName = opt.StringValue()
		case "roompass":
			in.RoomPass = opt.StringValue()
		}
	}

	deferResponse(s, i)

	record, err := b.resolver.InsertMatch(i.GuildID, in)
	if err != nil {
		var verr *schedule.ValidationError
		if errors.As(err, &verr) {
			b.editResponse(s, i, ":x: "+strings.Join(verr.Problems, "\n:x: "))
			return
		}
		log.Error("Failed to insert match", "error", err, "guildID", i.GuildID)
		b.editResponse(s, i, "Failed to add the match. Please try again.")
		return
	}

	if b.opsLog != nil {
		if err := b.opsLog.MatchAdded(i.GuildID, record, false); err != nil {
			log.Warn("Failed to post match-added audit message", "error", err)
		}
	}
	b.editResponse(s, i, fmt.Sprintf("Scheduled **%s** vs **%s** for match day %s (%s).",
		record.Home, record.Away, record.MatchDay, record.MatchDate))
}

// handleAddMatches handles /addmatches
func (b *Bot) handleAddMatches(s *discordgo.Session, i *discordgo.InteractionCreate) {
	raw := i.ApplicationCommandData().Options[0].StringValue()

	deferResponse(s, i)

	inputs, err := parseMatchTuples(raw)
	if err != nil {
		b.editResponse(s, i, fmt.Sprintf(":x: Could not parse matches: %s", err.Error()))
		return
	}

	var lines []string
	added := 0
	for _, in := range inputs {
		record, err := b.resolver.InsertMatch(i.GuildID, in)
		if err != nil {
			var verr *schedule.ValidationError
			if errors.As(err, &verr) {
				lines = append(lines, fmt.Sprintf(":x: %s vs %s: %s", in.Home, in.Away, strings.Join(verr.Problems, "; ")))
				continue
			}
			log.Error("Failed to insert match", "error", err, "guildID", i.GuildID)
			lines = append(lines, fmt.Sprintf(":x: %s vs %s: internal error", in.Home, in.Away))
			continue
		}
		added++
		lines = append(lines, fmt.Sprintf("✅ %s vs %s on match day %s", record.Home, record.Away, record.MatchDay))
		if b.opsLog != nil {
			if err := b.opsLog.MatchAdded(i.GuildID, record, false); err != nil {
				log.Warn("Failed to post match-added audit message", "error", err)
			}
		}
	}

	b.editResponse(s, i, fmt.Sprintf("Added %d of %d matches.\n%s", added, len(inputs), strings.Join(lines, "\n")))
}

// handleClearSchedule handles /clearschedule
func (b *Bot) handleClearSchedule(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if err := b.schedule.Clear(i.GuildID); err != nil {
		log.Error("Failed to clear schedule", "error", err, "guildID", i.GuildID)
		respondWithMessage(s, i, "Failed to clear the schedule. Please try again.")
		return
	}
	if b.opsLog != nil {
		if err := b.opsLog.ScheduleCleared(i.GuildID, false); err != nil {
			log.Warn("Failed to post schedule-cleared audit message", "error", err)
		}
	}
	respondWithMessage(s, i, "Done.")
}

// handlePrintSchedule handles /schedule. Intended for debugging on test
// servers; on a real server the dump will likely exceed the message limit.
func (b *Bot) handlePrintSchedule(s *discordgo.Session, i *discordgo.InteractionCreate) {
	idx, err := b.schedule.Load(i.GuildID)
	if err != nil {
		log.Error("Failed to load schedule", "error", err, "guildID", i.GuildID)
		respondWithMessage(s, i, "Failed to load the schedule. Please try again.")
		return
	}

	dump, err := json.MarshalIndent(idx, "", "    ")
	if err != nil {
		respondWithMessage(s, i, "Failed to serialize the schedule.")
		return
	}
	respondWithMessage(s, i, fmt.Sprintf("Here is all of the schedule data in JSON format.\n```json\n%s\n```", dump))
}

// handleMatch handles /match. Match info is sent as a DM so lobby
// credentials stay out of public channels.
func (b *Bot) handleMatch(s *discordgo.Session, i *discordgo.InteractionCreate) {
	var day, teamName string
	mobile := false
	for _, opt := range i.ApplicationCommandData().Options {
		switch opt.Name {
		case "day":
			day = opt.StringValue()
		case "team":
			teamName = opt.StringValue()
		case "mobile":
			mobile = opt.BoolValue()
		}
	}

	deferEphemeral(s, i)

	if day == "" {
		current, err := b.cfg.GetString(i.GuildID, guildcfg.KeyMatchDay)
		if err != nil || current == "" {
			b.editResponse(s, i, ":x: Match day not set. Set with `/matchday set`.")
			return
		}
		day = current
	}

	userID := i.Member.User.ID
	var teamNames []string
	if teamName != "" {
		teamNames = []string{teamName}
	} else {
		var err error
		teamNames, err = b.teams.TeamsForUser(i.GuildID, userID)
		if err != nil {
			log.Error("Failed to resolve user's teams", "error", err, "guildID", i.GuildID, "userID", userID)
			b.editResponse(s, i, "Failed to resolve your teams. Please try again.")
			return
		}
		if len(teamNames) == 0 {
			b.editResponse(s, i, ":x: You do not appear to have a team role.")
			return
		}
	}

	delivered := 0
	var misses []string
	for _, name := range teamNames {
		pos, ok, err := b.resolver.FindMatchIndex(i.GuildID, name, day)
		if err != nil {
			log.Error("Failed to look up match", "error", err, "guildID", i.GuildID, "team", name, "day", day)
			continue
		}
		if !ok {
			misses = append(misses, fmt.Sprintf("No match on day %s for %s", day, name))
			continue
		}
		m, err := b.resolver.MatchAt(i.GuildID, pos)
		if err != nil {
			log.Error("Failed to load match", "error", err, "guildID", i.GuildID, "pos", pos)
			continue
		}
		if err := b.dmMatchInfo(s, i.GuildID, userID, name, m, mobile); err != nil {
			log.Error("Failed to DM match info", "error", err, "userID", userID)
			b.editResponse(s, i, ":x: Could not DM you. Check your privacy settings.")
			return
		}
		delivered++
	}

	switch {
	case delivered > 0 && len(misses) == 0:
		b.editResponse(s, i, "Check your DMs for your match info.")
	case delivered > 0:
		b.editResponse(s, i, "Check your DMs for your match info.\n"+strings.Join(misses, "\n"))
	default:
		b.editResponse(s, i, ":x: "+strings.Join(misses, "\n:x: "))
	}
}

func (b *Bot) dmMatchInfo(s *discordgo.Session, guildID, userID, teamName string, m *schedule.MatchRecord, mobile bool) error {
	channel, err := s.UserChannelCreate(userID)
	if err != nil {
		return fmt.Errorf("failed to open DM channel: %w", err)
	}

	if mobile {
		text, err := b.renderer.RenderText(guildID, userID, teamName, m)
		if err != nil {
			return err
		}
		_, err = s.ChannelMessageSend(channel.ID, text)
		return err
	}

	embed, err := b.renderer.RenderEmbed(guildID, userID, teamName, m)
	if err != nil {
		return err
	}
	_, err = s.ChannelMessageSendEmbed(channel.ID, embed)
	return err
}

// handleLobbyReady handles /lobbyready
func (b *Bot) handleLobbyReady(s *discordgo.Session, i *discordgo.InteractionCreate) {
	deferEphemeral(s, i)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	sent, err := b.lobby.NotifyOpponents(ctx, i.GuildID, i.Member.User.ID)
	if err != nil {
		var nferr *lobby.NotFoundError
		if errors.As(err, &nferr) {
			b.editResponse(s, i, ":x: "+nferr.Message)
			return
		}
		log.Error("Failed to notify opponents", "error", err, "guildID", i.GuildID)
		b.editResponse(s, i, "Failed to notify your opponents. Please try again.")
		return
	}
	b.editResponse(s, i, fmt.Sprintf("✅ Your opponents have been notified (%d recipients).", sent))
}

// handleSetStream handles /setstream
func (b *Bot) handleSetStream(s *discordgo.Session, i *discordgo.InteractionCreate) {
	var day, teamName string
	details := &schedule.StreamDetails{}
	for _, opt := range i.ApplicationCommandData().Options {
		switch opt.Name {
		case "day":
			day = opt.StringValue()
		case "team":
			teamName = opt.StringValue()
		case "livestream":
			details.LiveStream = opt.StringValue()
		case "slot":
			details.Slot = opt.StringValue()
		case "time":
			details.Time = opt.StringValue()
		}
	}

	found, err := b.resolver.SetStreamDetails(i.GuildID, day, teamName, details)
	if err != nil {
		log.Error("Failed to set stream details", "error", err, "guildID", i.GuildID)
		respondWithMessage(s, i, "Failed to update the match. Please try again.")
		return
	}
	if !found {
		respondWithMessage(s, i, fmt.Sprintf(":x: No match on day %s for %s", day, teamName))
		return
	}
	respondWithMessage(s, i, "Done.")
}

// handleRemoveStream handles /removestream
func (b *Bot) handleRemoveStream(s *discordgo.Session, i *discordgo.InteractionCreate) {
	var day, teamName string
	for _, opt := range i.ApplicationCommandData().Options {
		switch opt.Name {
		case "day":
			day = opt.StringValue()
		case "team":
			teamName = opt.StringValue()
		}
	}

	found, err := b.resolver.RemoveStreamDetails(i.GuildID, day, teamName)
	if err != nil {
		log.Error("Failed to remove stream details", "error", err, "guildID", i.GuildID)
		respondWithMessage(s, i, "Failed to update the match. Please try again.")
		return
	}
	if !found {
		respondWithMessage(s, i, fmt.Sprintf(":x: No match on day %s for %s", day, teamName))
		return
	}
	respondWithMessage(s, i, "Done.")
}

// handleSetGame handles /setgame
func (b *Bot) handleSetGame(s *discordgo.Session, i *discordgo.InteractionCreate) {
	game := i.ApplicationCommandData().Options[0].StringValue()
	if err := b.cfg.SetString(i.GuildID, guildcfg.KeyGame, game); err != nil {
		log.Error("Failed to set game", "error", err, "guildID", i.GuildID)
		respondWithMessage(s, i, "Failed to set the game. Please try again.")
		return
	}
	respondWithMessage(s, i, fmt.Sprintf("Done. Presence checks now look for **%s**.", game))
}

// Helper functions

func respondWithMessage(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
		},
	})
}

func deferResponse(s *discordgo.Session, i *discordgo.InteractionCreate) {
	s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
}

func deferEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate) {
	s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	})
}

func (b *Bot) editResponse(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content: &content,
	})
}

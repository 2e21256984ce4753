package discord

import (
	"encoding/json"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/charmbracelet/log"
	"github.com/duskpine/leaguebot/internal/lobby"
	"github.com/duskpine/leaguebot/internal/metrics"
	"github.com/duskpine/leaguebot/internal/notifier"
)

// discordSender is an interface that contains the methods from the
// discordgo.Session that we use. This allows for easy mocking in tests.
type discordSender interface {
	UserChannelCreate(recipientID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

var _ notifier.Messenger = &Messenger{}

// Messenger delivers lobby-ready notifications as Discord DMs.
type Messenger struct {
	session discordSender
	metrics metrics.Metrics
}

// NewMessenger creates a new Messenger.
func NewMessenger(session *discordgo.Session, metricsSvc metrics.Metrics) *Messenger {
	return &Messenger{
		session: session,
		metrics: metricsSvc,
	}
}

// NewMessengerWithSender creates a new Messenger with a specific sender.
// Useful for tests that need to intercept API calls.
func NewMessengerWithSender(session discordSender, metricsSvc metrics.Metrics) *Messenger {
	return &Messenger{
		session: session,
		metrics: metricsSvc,
	}
}

func (m *Messenger) SendLobbyReady(job lobby.Job, dryRun bool) error {
	embed := formatLobbyReady(job)

	if dryRun {
		jsonMsg, _ := json.MarshalIndent(embed, "", "  ")
		log.Info("[Dry Run] Would send DM", "recipient", job.RecipientID, "embed", string(jsonMsg))
		return nil
	}

	channel, err := m.session.UserChannelCreate(job.RecipientID)
	if err != nil {
		m.metrics.IncLobbyNotifFailed()
		log.Error("Failed to open DM channel", "error", err, "recipient", job.RecipientID)
		return fmt.Errorf("failed to open DM channel for %s: %w", job.RecipientID, err)
	}

	if _, err := m.session.ChannelMessageSendEmbed(channel.ID, embed); err != nil {
		m.metrics.IncLobbyNotifFailed()
		log.Error("Failed to send DM", "error", err, "recipient", job.RecipientID)
		return fmt.Errorf("failed to send DM to %s: %w", job.RecipientID, err)
	}

	log.Info("Delivered lobby-ready DM", "recipient", job.RecipientID, "job", job.ID)
	return nil
}

func formatLobbyReady(job lobby.Job) *discordgo.MessageEmbed {
	description := fmt.Sprintf(
		"Please join your match against the **%s** with the following lobby information:", job.OpposingTeam)
	description += fmt.Sprintf("\n\n**Name:** %s", job.RoomName)
	description += fmt.Sprintf("\n**Password:** %s", job.RoomPass)
	if job.Footnote != "" {
		description += "\n" + job.Footnote
	}

	return &discordgo.MessageEmbed{
		Title:       "Your Opponents are ready!",
		Description: description,
		Color:       job.Color,
	}
}

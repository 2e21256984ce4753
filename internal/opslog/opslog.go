package opslog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/duskpine/leaguebot/internal/schedule"
	"github.com/slack-go/slack"
)

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

// Logger posts schedule audit events to the league's Slack ops channel so
// admins have a trail of who changed what outside Discord.
type Logger struct {
	api       slackClient
	channelID string
}

// New creates a new ops Logger.
func New(token, channelID string) *Logger {
	api := slack.New(token)
	return &Logger{
		api:       api,
		channelID: channelID,
	}
}

// NewWithAPI creates a new Logger with a specific slack client instance.
// Useful for tests that need to intercept API calls.
func NewWithAPI(api slackClient, channelID string) *Logger {
	return &Logger{
		api:       api,
		channelID: channelID,
	}
}

// MatchAdded records a newly scheduled match.
func (l *Logger) MatchAdded(guildID string, m *schedule.MatchRecord, dryRun bool) error {
	msg := l.formatMatchAdded(guildID, m)
	return l.sendMessage(msg, dryRun)
}

// ScheduleCleared records a full schedule wipe.
func (l *Logger) ScheduleCleared(guildID string, dryRun bool) error {
	msg := l.formatScheduleCleared(guildID)
	return l.sendMessage(msg, dryRun)
}

func (l *Logger) sendMessage(message slack.Message, dryRun bool) error {
	if dryRun {
		jsonMsg, _ := json.MarshalIndent(message, "", "  ")
		log.Info("[Dry Run] Would send Slack message", "channel", l.channelID, "message", string(jsonMsg))
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	channelID, timestamp, err := l.api.PostMessageContext(
		ctx,
		l.channelID,
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
		slack.MsgOptionAsUser(true),
	)
	if err != nil {
		log.Error("Failed to send Slack message", "error", err, "channel", l.channelID)
		return fmt.Errorf("failed to post message: %w", err)
	}

	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return nil
}

func (l *Logger) formatMatchAdded(guildID string, m *schedule.MatchRecord) slack.Message {
	headerText := slack.NewTextBlockObject(slack.PlainTextType, "📅 Match scheduled", false, false)
	header := slack.NewHeaderBlock(headerText)

	body := fmt.Sprintf(
		"*%s* vs *%s*\nMatch day %s on %s\nGuild: `%s`",
		m.Home, m.Away, m.MatchDay, m.MatchDate, guildID,
	)
	section := slack.NewSectionBlock(
		slack.NewTextBlockObject(slack.MarkdownType, body, false, false), nil, nil)

	return slack.NewBlockMessage(header, section)
}

func (l *Logger) formatScheduleCleared(guildID string) slack.Message {
	headerText := slack.NewTextBlockObject(slack.PlainTextType, "🧹 Schedule cleared", false, false)
	header := slack.NewHeaderBlock(headerText)

	section := slack.NewSectionBlock(
		slack.NewTextBlockObject(slack.MarkdownType,
			fmt.Sprintf("All scheduled matches were removed.\nGuild: `%s`", guildID), false, false), nil, nil)

	return slack.NewBlockMessage(header, section)
}

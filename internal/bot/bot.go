package bot

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/charmbracelet/log"
	"github.com/duskpine/leaguebot/internal/guildcfg"
	"github.com/duskpine/leaguebot/internal/lobby"
	"github.com/duskpine/leaguebot/internal/matchinfo"
	"github.com/duskpine/leaguebot/internal/metrics"
	"github.com/duskpine/leaguebot/internal/opslog"
	"github.com/duskpine/leaguebot/internal/schedule"
	"github.com/duskpine/leaguebot/internal/team"
)

// Bot wires the scheduling core to Discord slash commands.
type Bot struct {
	session  *discordgo.Session
	cfg      guildcfg.Store
	schedule schedule.Store
	resolver *schedule.Resolver
	renderer *matchinfo.Renderer
	lobby    *lobby.Notifier
	teams    team.Manager
	opsLog   *opslog.Logger
	metrics  metrics.Metrics
	commands []*discordgo.ApplicationCommand
}

// New creates a new Bot on an existing session. The caller owns the
// session lifecycle up to Start.
func New(session *discordgo.Session, cfg guildcfg.Store, scheduleStore schedule.Store, resolver *schedule.Resolver, renderer *matchinfo.Renderer, lobbyNotifier *lobby.Notifier, teams team.Manager, opsLog *opslog.Logger, metricsSvc metrics.Metrics) *Bot {
	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMembers |
		discordgo.IntentsGuildPresences

	b := &Bot{
		session:  session,
		cfg:      cfg,
		schedule: scheduleStore,
		resolver: resolver,
		renderer: renderer,
		lobby:    lobbyNotifier,
		teams:    teams,
		opsLog:   opsLog,
		metrics:  metricsSvc,
	}

	b.registerHandlers()
	return b
}

// Start opens the Discord connection and registers slash commands.
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	log.Info("Connected to Discord", "user", b.session.State.User.Username)

	if err := b.registerCommands(); err != nil {
		return fmt.Errorf("failed to register commands: %w", err)
	}
	return nil
}

// Stop gracefully shuts down the bot.
func (b *Bot) Stop() error {
	if b.session != nil {
		return b.session.Close()
	}
	return nil
}

func (b *Bot) registerHandlers() {
	b.session.AddHandler(b.handleInteraction)
	b.session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		log.Info("Bot is ready", "guilds", len(r.Guilds))
	})
}

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	data := i.ApplicationCommandData()
	log.Debug("Received command", "command", data.Name, "guild", i.GuildID)
	b.metrics.IncCommandsProcessed()

	switch data.Name {
	case "matchday":
		b.handleMatchDay(s, i)
	case "addmatch":
		b.handleAddMatch(s, i)
	case "addmatches":
		b.handleAddMatches(s, i)
	case "clearschedule":
		b.handleClearSchedule(s, i)
	case "schedule":
		b.handlePrintSchedule(s, i)
	case "match":
		b.handleMatch(s, i)
	case "lobbyready":
		b.handleLobbyReady(s, i)
	case "setstream":
		b.handleSetStream(s, i)
	case "removestream":
		b.handleRemoveStream(s, i)
	case "setgame":
		b.handleSetGame(s, i)
	default:
		log.Warn("Unknown command", "command", data.Name)
	}
}

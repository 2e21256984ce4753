package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/charmbracelet/log"
	"github.com/duskpine/leaguebot/internal/bot"
	"github.com/duskpine/leaguebot/internal/config"
	"github.com/duskpine/leaguebot/internal/database"
	"github.com/duskpine/leaguebot/internal/guildcfg"
	server "github.com/duskpine/leaguebot/internal/http"
	"github.com/duskpine/leaguebot/internal/lobby"
	"github.com/duskpine/leaguebot/internal/matchinfo"
	"github.com/duskpine/leaguebot/internal/metrics"
	discordnotif "github.com/duskpine/leaguebot/internal/notifier/discord"
	"github.com/duskpine/leaguebot/internal/opslog"
	"github.com/duskpine/leaguebot/internal/presence"
	"github.com/duskpine/leaguebot/internal/pubsub"
	"github.com/duskpine/leaguebot/internal/ratings"
	"github.com/duskpine/leaguebot/internal/schedule"
	"github.com/duskpine/leaguebot/internal/team"
)

func main() {
	// Start profiling timer
	startTime := time.Now()
	log.SetFormatter(log.JSONFormatter)
	cfg := config.Load()
	db, dbTeardown, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken, cfg.MigrationsDir)
	dbInitDuration := time.Since(startTime)
	log.Info("Database initialization time recorded", "duration_ms", dbInitDuration.Milliseconds())
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer func() {
		log.Info("Closing database connection")
		dbTeardown()
	}()

	session, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		log.Fatalf("Failed to create Discord session: %s", err)
	}

	cfgStore := guildcfg.New(db)
	metricsSvc := metrics.NewService()
	metricsHandler := metrics.NewMetricsHandler()
	registry := team.NewStore(db)
	teamMgr := team.NewManager(registry, session)
	ratingsSvc := ratings.NewStore(db)
	scheduleStore := schedule.NewStore(cfgStore)
	resolver := schedule.NewResolver(scheduleStore, teamMgr, metricsSvc)
	oracle := presence.NewOracle(session, cfgStore)
	pubsubClient := pubsub.New(cfg.ProjectID)
	dispatcher := lobby.NewPubSubDispatcher(pubsubClient)
	lobbyNotifier := lobby.NewNotifier(resolver, cfgStore, teamMgr, oracle, dispatcher, metricsSvc)
	renderer := matchinfo.NewRenderer(teamMgr, ratingsSvc)
	opsLog := opslog.New(cfg.Slack.Token, cfg.Slack.OpsChannelID)
	messenger := discordnotif.NewMessenger(session, metricsSvc)

	b := bot.New(session, cfgStore, scheduleStore, resolver, renderer, lobbyNotifier, teamMgr, opsLog, metricsSvc)
	if err := b.Start(); err != nil {
		log.Fatalf("Failed to start bot: %s", err)
	}
	defer func() {
		log.Info("Closing Discord session")
		if err := b.Stop(); err != nil {
			log.Error("Failed to close Discord session", "error", err)
		}
	}()

	s := server.NewServer(
		scheduleStore,
		resolver,
		metricsSvc,
		metricsHandler,
		cfg,
		messenger,
		opsLog,
		pubsubClient,
	)

	// --- Record startup time ---
	startupDuration := time.Since(startTime)
	metricsSvc.SetStartupTime(startupDuration.Seconds())
	log.Info("Startup time recorded", "duration_ms", startupDuration.Milliseconds())

	// --- Graceful shutdown setup ---
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: s,
	}

	// Channel to listen for errors coming from the server
	serverErrors := make(chan error, 1)

	// Start the server in a goroutine
	go func() {
		log.Info("Server started", "port", cfg.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-shutdown:
		log.Info("Shutdown signal received", "signal", sig)

		// Create a context with a timeout for the shutdown.
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Attempt to gracefully shut down the server.
		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Server shutdown failed", "error", err)
		} else {
			log.Info("Server gracefully stopped")
		}
	}

	log.Info("Server process shutting down")
}

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/duskpine/leaguebot/internal/database"
	"github.com/duskpine/leaguebot/internal/guildcfg"
	"github.com/duskpine/leaguebot/internal/metrics"
	"github.com/duskpine/leaguebot/internal/ratings"
	"github.com/duskpine/leaguebot/internal/schedule"
	"github.com/duskpine/leaguebot/internal/team"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
)

// registryResolver lets the schedule resolver validate team names against
// the registry without a live Discord session.
type registryResolver struct {
	registry team.Registry
}

func (r registryResolver) HasTeam(guildID, name string) (bool, error) {
	_, ok, err := r.registry.GetTeam(guildID, name)
	return ok, err
}

// Simplified config loading for the script
func loadConfig() map[string]string {
	err := godotenv.Load()
	if err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}

	config := map[string]string{
		"DB_NAME":  "leaguebot.db",
		"GUILD_ID": "demo-guild",
	}
	for key := range config {
		if value, ok := os.LookupEnv(key); ok {
			config[key] = value
		}
	}
	config["TURSO_PRIMARY_URL"] = os.Getenv("TURSO_PRIMARY_URL")
	config["TURSO_AUTH_TOKEN"] = os.Getenv("TURSO_AUTH_TOKEN")
	return config
}

func main() {
	log.Info("Starting database seeder...")
	cfg := loadConfig()
	guildID := cfg["GUILD_ID"]

	db, teardown, err := database.InitDB(cfg["DB_NAME"], cfg["TURSO_PRIMARY_URL"], cfg["TURSO_AUTH_TOKEN"], "./migrations")
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer teardown()

	startTime := time.Now()

	registry := team.NewStore(db)
	teams := []team.Team{
		{GuildID: guildID, Name: "Fire Ants", FranchiseRoleID: "role-fire-ants", TierRoleID: "role-tier-champion", GMID: "user-gm-1", CaptainID: "user-fa-1"},
		{GuildID: guildID, Name: "Leopards", FranchiseRoleID: "role-leopards", TierRoleID: "role-tier-champion", GMID: "user-gm-2", CaptainID: "user-le-1"},
		{GuildID: guildID, Name: "Bears", FranchiseRoleID: "role-bears", TierRoleID: "role-tier-diamond", GMID: "user-gm-1", CaptainID: "user-be-1"},
		{GuildID: guildID, Name: "Wolves", FranchiseRoleID: "role-wolves", TierRoleID: "role-tier-diamond", GMID: "user-gm-2", CaptainID: "user-wo-1"},
	}
	for _, t := range teams {
		if err := registry.UpsertTeam(t); err != nil {
			log.Fatalf("Failed to seed team %s: %s", t.Name, err)
		}
	}
	log.Info("Seeded teams.", "count", len(teams))

	ratingsSvc := ratings.NewStore(db)
	prefixes := map[string]string{"Fire Ants": "fa", "Leopards": "le", "Bears": "be", "Wolves": "wo"}
	for _, t := range teams {
		prefix := prefixes[t.Name]
		for seed := 1; seed <= 3; seed++ {
			memberID := fmt.Sprintf("user-%s-%d", prefix, seed)
			memberName := fmt.Sprintf("%s Player %d", t.Name, seed)
			if err := ratingsSvc.UpsertSeed(guildID, t.Name, seed, memberID, memberName); err != nil {
				log.Fatalf("Failed to seed player %s: %s", memberID, err)
			}
		}
	}
	log.Info("Seeded player seeds.", "teams", len(teams), "seeds_per_team", 3)

	cfgStore := guildcfg.New(db)
	if err := cfgStore.SetString(guildID, guildcfg.KeyMatchDay, "1"); err != nil {
		log.Fatalf("Failed to set match day: %s", err)
	}

	resolver := schedule.NewResolver(schedule.NewStore(cfgStore), registryResolver{registry: registry}, metrics.NewService(prometheus.NewRegistry()))
	date := time.Now().AddDate(0, 0, 7).Format(schedule.DateLayout)
	matches := []schedule.InsertMatchInput{
		{MatchDay: "1", MatchDate: date, Home: "Fire Ants", Away: "Leopards"},
		{MatchDay: "1", MatchDate: date, Home: "Bears", Away: "Wolves"},
	}
	for _, in := range matches {
		if _, err := resolver.InsertMatch(guildID, in); err != nil {
			log.Fatalf("Failed to seed match %s vs %s: %s", in.Home, in.Away, err)
		}
	}

	log.Info("Successfully seeded demo data.", "guildID", guildID, "duration", time.Since(startTime))
}

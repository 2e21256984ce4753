package config

// Config holds all configuration for the application.
type Config struct {
	DBName        string
	MigrationsDir string
	Port          string
	Discord       DiscordConfig
	Slack         SlackConfig
	Turso         TursoConfig
	ProjectID     string
}
type DiscordConfig struct {
	Token string
}
type SlackConfig struct {
	Token        string
	OpsChannelID string
}
type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}

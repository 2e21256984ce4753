package bot

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/charmbracelet/log"
)

var manageGuild int64 = discordgo.PermissionManageGuild

// Slash command definitions
func (b *Bot) getCommandDefinitions() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        "matchday",
			Description: "Get or set the league's active match day",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "get",
					Description: "Show the currently active match day",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "set",
					Description: "Set the active match day (admin)",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "day",
							Description: "The match day label (e.g. 3)",
							Required:    true,
						},
					},
				},
			},
		},
		{
			Name:                     "addmatch",
			Description:              "Add one match to the schedule",
			DefaultMemberPermissions: &manageGuild,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "day",
					Description: "Match day label",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "date",
					Description: "Match date, e.g. January 12, 2026",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "home",
					Description: "Home team name",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "away",
					Description: "Away team name",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "roomname",
					Description: "Lobby name (generated if omitted)",
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "roompass",
					Description: "Lobby password (generated if omitted)",
				},
			},
		},
		{
			Name:                     "addmatches",
			Description:              "Add several matches at once",
			DefaultMemberPermissions: &manageGuild,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "matches",
					Description: "Tuples like ['1','January 12, 2026','Fire Ants','Leopards'] separated by spaces",
					Required:    true,
				},
			},
		},
		{
			Name:                     "clearschedule",
			Description:              "Remove every scheduled match",
			DefaultMemberPermissions: &manageGuild,
		},
		{
			Name:                     "schedule",
			Description:              "Dump the raw schedule data (debug)",
			DefaultMemberPermissions: &manageGuild,
		},
		{
			Name:        "match",
			Description: "Get your match info for a match day",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "day",
					Description: "Match day (defaults to the active one)",
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "team",
					Description: "Team name (defaults to your team roles)",
				},
				{
					Type:        discordgo.ApplicationCommandOptionBoolean,
					Name:        "mobile",
					Description: "Plain text instead of an embed",
				},
			},
		},
		{
			Name:        "lobbyready",
			Description: "Tell your opponents the lobby is up and joinable",
		},
		{
			Name:                     "setstream",
			Description:              "Mark a match as played on stream",
			DefaultMemberPermissions: &manageGuild,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "day",
					Description: "Match day label",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "team",
					Description: "Either team of the match",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "livestream",
					Description: "Stream URL or channel",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "slot",
					Description: "Broadcast time slot",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "time",
					Description: "Broadcast start time",
					Required:    true,
				},
			},
		},
		{
			Name:                     "removestream",
			Description:              "Remove the stream annotation from a match",
			DefaultMemberPermissions: &manageGuild,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "day",
					Description: "Match day label",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "team",
					Description: "Either team of the match",
					Required:    true,
				},
			},
		},
		{
			Name:                     "setgame",
			Description:              "Set the game this league plays (used for presence checks)",
			DefaultMemberPermissions: &manageGuild,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "game",
					Description: "Game title as it appears in Discord presence",
					Required:    true,
				},
			},
		},
	}
}

// registerCommands registers all slash commands with Discord
func (b *Bot) registerCommands() error {
	log.Info("Registering slash commands")

	commandDefinitions := b.getCommandDefinitions()
	registeredCommands := make([]*discordgo.ApplicationCommand, 0, len(commandDefinitions))

	for _, cmd := range commandDefinitions {
		registered, err := b.session.ApplicationCommandCreate(
			b.session.State.User.ID,
			"", // Empty string = global command
			cmd,
		)
		if err != nil {
			return fmt.Errorf("failed to register command %s: %w", cmd.Name, err)
		}
		registeredCommands = append(registeredCommands, registered)
		log.Debug("Registered command", "name", cmd.Name)
	}

	b.commands = registeredCommands
	log.Info("Slash commands registered", "count", len(registeredCommands))
	return nil
}

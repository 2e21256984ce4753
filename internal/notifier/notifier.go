package notifier

import "github.com/duskpine/leaguebot/internal/lobby"

// Messenger defines a high-level interface for delivering notifications to players.
// This decouples the rest of the application from the specific delivery provider (e.g., Discord DMs).
type Messenger interface {
	// SendLobbyReady delivers one lobby-ready notification to its recipient.
	SendLobbyReady(job lobby.Job, dryRun bool) error
}

package lobby

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/duskpine/leaguebot/internal/guildcfg"
	"github.com/duskpine/leaguebot/internal/metrics"
	"github.com/duskpine/leaguebot/internal/presence"
	"github.com/duskpine/leaguebot/internal/schedule"
	"github.com/duskpine/leaguebot/internal/team"
	"github.com/google/uuid"
)

const gmFootnoteTmpl = "_This message has been sent to you because none of the players on your %s team, the %s appear to be in-game or online._"

// Notifier plans and dispatches lobby-ready notifications. Recipients are
// chosen by escalating through presence tiers: captain in-game, captain
// online, roster in-game, roster online, then everyone plus the GM.
type Notifier struct {
	resolver   *schedule.Resolver
	cfg        guildcfg.Store
	teams      team.Manager
	oracle     presence.Oracle
	dispatcher Dispatcher
	metrics    metrics.Metrics
}

// NewNotifier creates a lobby-ready Notifier.
func NewNotifier(resolver *schedule.Resolver, cfg guildcfg.Store, teams team.Manager, oracle presence.Oracle, dispatcher Dispatcher, metricsSvc metrics.Metrics) *Notifier {
	return &Notifier{
		resolver:   resolver,
		cfg:        cfg,
		teams:      teams,
		oracle:     oracle,
		dispatcher: dispatcher,
		metrics:    metricsSvc,
	}
}

// NotifyOpponents resolves the caller's match for the active match day and
// dispatches a notification to the chosen tier of the opposing roster.
// Returns the recipient count, or a *NotFoundError when the match cannot
// be resolved.
func (n *Notifier) NotifyOpponents(ctx context.Context, guildID, userID string) (int, error) {
	matchDay, err := n.cfg.GetString(guildID, guildcfg.KeyMatchDay)
	if err != nil {
		return 0, err
	}
	if matchDay == "" {
		return 0, &NotFoundError{Message: "Match day is not set."}
	}

	teamNames, err := n.teams.TeamsForUser(guildID, userID)
	if err != nil {
		return 0, err
	}
	if len(teamNames) == 0 {
		return 0, &NotFoundError{Message: "You do not appear to have a team role."}
	}
	teamName := teamNames[0]

	m, found, err := n.resolver.FindMatch(guildID, matchDay, teamName)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, &NotFoundError{Message: "Match could not be found"}
	}

	opposing := m.Away
	if strings.EqualFold(teamName, m.Away) {
		opposing = m.Home
	}

	oppTeam, found, err := n.teams.RolesForTeam(guildID, opposing)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, &NotFoundError{Message: fmt.Sprintf("Opposing team %s could not be resolved.", opposing)}
	}

	captain, err := n.teams.Captain(guildID, oppTeam)
	if err != nil {
		return 0, fmt.Errorf("failed to resolve opposing captain: %w", err)
	}
	roster, err := n.teams.MembersFromTeam(guildID, oppTeam)
	if err != nil {
		return 0, fmt.Errorf("failed to resolve opposing roster: %w", err)
	}
	// The captain gets their own tiers.
	remaining := make([]team.Member, 0, len(roster))
	for _, member := range roster {
		if member.ID != captain.ID {
			remaining = append(remaining, member)
		}
	}

	recipients, escalated := n.plan(guildID, *captain, remaining)

	tierName, err := n.teams.TierRoleName(guildID, oppTeam)
	if err != nil {
		log.Warn("Failed to resolve tier role name", "error", err, "guildID", guildID, "team", opposing)
	}
	color, err := n.teams.TierRoleColor(guildID, oppTeam)
	if err != nil {
		log.Warn("Failed to resolve tier role color", "error", err, "guildID", guildID, "team", opposing)
	}

	jobs := make([]Job, 0, len(recipients)+1)
	for _, member := range recipients {
		jobs = append(jobs, Job{
			ID:           uuid.NewString(),
			GuildID:      guildID,
			RecipientID:  member.ID,
			RoomName:     m.RoomName,
			RoomPass:     m.RoomPass,
			OpposingTeam: opposing,
			TierRoleName: tierName,
			Color:        color,
		})
	}

	if escalated {
		if gmJob, ok := n.gmJob(guildID, oppTeam, opposing, tierName, color, m, recipients); ok {
			jobs = append(jobs, gmJob)
		}
	}

	sent := 0
	for _, job := range jobs {
		if err := n.dispatcher.Dispatch(ctx, job); err != nil {
			log.Error("Failed to dispatch lobby notification", "error", err, "guildID", guildID, "recipient", job.RecipientID)
			n.metrics.IncLobbyNotifFailed()
			continue
		}
		n.metrics.IncLobbyNotifSent()
		sent++
	}

	log.Info("Lobby-ready notifications dispatched", "guildID", guildID, "team", teamName, "opposing", opposing, "recipients", sent, "escalated", escalated)
	return sent, nil
}

// plan walks the tiers in order and returns the first non-empty recipient
// set. The second return reports whether the last-resort tier was reached,
// which also pulls in the GM. Presence lookups that fail are treated as
// "not in that state" so the notification always completes.
func (n *Notifier) plan(guildID string, captain team.Member, roster []team.Member) ([]team.Member, bool) {
	if n.inGame(guildID, captain.ID) {
		return []team.Member{captain}, false
	}
	if n.online(guildID, captain.ID) {
		return []team.Member{captain}, false
	}

	var inGame []team.Member
	for _, member := range roster {
		if n.inGame(guildID, member.ID) {
			inGame = append(inGame, member)
		}
	}
	if len(inGame) > 0 {
		return inGame, false
	}

	var online []team.Member
	for _, member := range roster {
		if n.online(guildID, member.ID) {
			online = append(online, member)
		}
	}
	if len(online) > 0 {
		return online, false
	}

	return append(roster, captain), true
}

func (n *Notifier) gmJob(guildID string, oppTeam *team.Team, opposing, tierName string, color int, m *schedule.MatchRecord, notified []team.Member) (Job, bool) {
	gm, err := n.teams.GM(guildID, oppTeam)
	if err != nil {
		log.Warn("Failed to resolve opposing GM", "error", err, "guildID", guildID, "team", opposing)
		return Job{}, false
	}
	for _, member := range notified {
		if member.ID == gm.ID {
			return Job{}, false
		}
	}
	return Job{
		ID:           uuid.NewString(),
		GuildID:      guildID,
		RecipientID:  gm.ID,
		RoomName:     m.RoomName,
		RoomPass:     m.RoomPass,
		OpposingTeam: opposing,
		TierRoleName: tierName,
		Color:        color,
		Footnote:     fmt.Sprintf(gmFootnoteTmpl, tierName, opposing),
	}, true
}

func (n *Notifier) inGame(guildID, memberID string) bool {
	ok, err := n.oracle.IsInGame(guildID, memberID)
	if err != nil {
		log.Warn("Presence lookup failed, treating member as not in-game", "error", err, "memberID", memberID)
		return false
	}
	return ok
}

func (n *Notifier) online(guildID, memberID string) bool {
	ok, err := n.oracle.IsOnline(guildID, memberID)
	if err != nil {
		log.Warn("Presence lookup failed, treating member as offline", "error", err, "memberID", memberID)
		return false
	}
	return ok
}

package presence

import (
	"strings"
	"time"
)

// ActivityKind mirrors the activity types the classifier cares about.
type ActivityKind int

const (
	KindPlaying ActivityKind = iota
	KindStreaming
	KindOther
)

// Activity is one entry of a member's presence, reduced to what the
// classifier needs.
type Activity struct {
	Kind ActivityKind
	Name string
	End  *time.Time
}

// Status is a member's coarse availability.
type Status string

const (
	StatusOnline  Status = "online"
	StatusIdle    Status = "idle"
	StatusDND     Status = "dnd"
	StatusOffline Status = "offline"
)

// InGame reports whether any activity shows the member currently playing
// the given game. Activities with an end timestamp in the past are stale
// and ignored.
func InGame(activities []Activity, game string, now time.Time) bool {
	for _, a := range activities {
		if a.Kind != KindPlaying {
			continue
		}
		if !strings.EqualFold(a.Name, game) {
			continue
		}
		if a.End != nil && a.End.Before(now) {
			continue
		}
		return true
	}
	return false
}

// Online reports whether the member is actively at their client. Idle and
// DND do not count; the lobby escalation treats those members as
// unreachable and keeps walking the roster tiers.
func Online(status Status) bool {
	return status == StatusOnline
}

package schedule

import (
	"strings"
)

// DateLayout is the fixed human-readable format match dates must use,
// e.g. "September 10, 2020".
const DateLayout = "January 2, 2006"

// StreamDetails annotates a match that is on a broadcast slot.
type StreamDetails struct {
	LiveStream string `json:"liveStream"`
	Slot       string `json:"slot"`
	Time       string `json:"time"`
}

// MatchRecord is one scheduled fixture. Team names are stored as given
// but compared case-insensitively everywhere.
type MatchRecord struct {
	MatchDay  string `json:"matchDay"`
	MatchDate string `json:"matchDate"`
	// MatchDateISO is the parsed date in ISO form, kept alongside the
	// original string for future sorting and validation.
	MatchDateISO  string         `json:"matchDateISO,omitempty"`
	Home          string         `json:"home"`
	Away          string         `json:"away"`
	RoomName      string         `json:"roomName"`
	RoomPass      string         `json:"roomPass"`
	StreamDetails *StreamDetails `json:"streamDetails"`
}

// Index is the per-guild schedule document: an append-only ordered list
// of matches plus a secondary index mapping team|day to a position in it.
// Positions are stable; records are never reordered or removed except by
// a full clear.
type Index struct {
	Matches  []MatchRecord  `json:"matches"`
	TeamDays map[string]int `json:"teamDays"`
}

// NewIndex returns an empty schedule document.
func NewIndex() *Index {
	return &Index{
		Matches:  []MatchRecord{},
		TeamDays: map[string]int{},
	}
}

// TeamDayKey builds the case-folded composite key for the secondary index.
func TeamDayKey(team, matchDay string) string {
	return strings.ToLower(team) + "|" + strings.ToLower(matchDay)
}

// InsertMatchInput carries the parameters for scheduling a single match.
// RoomName and RoomPass are optional and generated when empty.
type InsertMatchInput struct {
	MatchDay  string
	MatchDate string
	Home      string
	Away      string
	RoomName  string
	RoomPass  string
}

// ValidationError aggregates every problem found while validating an
// insert. The insert is rejected wholesale; no partial state is written.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid match: " + strings.Join(e.Problems, "; ")
}

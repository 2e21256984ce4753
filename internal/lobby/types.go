package lobby

import "context"

// Job is one lobby-ready notification addressed to a single recipient.
// Jobs within a tier are identical apart from the recipient; the GM copy
// additionally carries the footnote.
type Job struct {
	ID           string `msgpack:"id" json:"id"`
	GuildID      string `msgpack:"guild_id" json:"guild_id"`
	RecipientID  string `msgpack:"recipient_id" json:"recipient_id"`
	RoomName     string `msgpack:"room_name" json:"room_name"`
	RoomPass     string `msgpack:"room_pass" json:"room_pass"`
	OpposingTeam string `msgpack:"opposing_team" json:"opposing_team"`
	TierRoleName string `msgpack:"tier_role_name" json:"tier_role_name"`
	Color        int    `msgpack:"color" json:"color"`
	Footnote     string `msgpack:"footnote" json:"footnote"`
}

// Dispatcher hands a job off for delivery. The production implementation
// publishes to Pub/Sub; tests swap in a spy.
type Dispatcher interface {
	Dispatch(ctx context.Context, job Job) error
}

// NotFoundError reports that the notification could not even be planned:
// no match day, no team, or no match. The message is shown to the user.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

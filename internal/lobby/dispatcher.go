package lobby

import (
	"context"
	"fmt"

	"github.com/duskpine/leaguebot/internal/pubsub"
)

var _ Dispatcher = (*pubsubDispatcher)(nil)

// pubsubDispatcher publishes jobs to the lobby-ready topic. Delivery to
// the recipient happens in the push handler, which keeps the slash
// command snappy while DMs go out.
type pubsubDispatcher struct {
	client pubsub.PubSubClient
}

// NewPubSubDispatcher creates a Dispatcher backed by Pub/Sub.
func NewPubSubDispatcher(client pubsub.PubSubClient) Dispatcher {
	return &pubsubDispatcher{client: client}
}

func (d *pubsubDispatcher) Dispatch(ctx context.Context, job Job) error {
	if err := d.client.SendMessage(pubsub.EventLobbyReady, job); err != nil {
		return fmt.Errorf("failed to publish lobby-ready job %s: %w", job.ID, err)
	}
	return nil
}

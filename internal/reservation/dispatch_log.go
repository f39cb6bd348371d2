package reservation

import (
	"context"

	"github.com/rs/zerolog"
)

// LogDispatcher writes payloads to the log instead of sending them.
// Used in development.
type LogDispatcher struct {
	log zerolog.Logger
}

func NewLogDispatcher(log zerolog.Logger) *LogDispatcher {
	return &LogDispatcher{log: log.With().Str("component", "dispatch").Logger()}
}

func (d *LogDispatcher) Send(ctx context.Context, p Payload) (Ack, error) {
	if err := ctx.Err(); err != nil {
		return Ack{}, &DispatchError{Dispatcher: "log", Err: err}
	}

	event := d.log.Info().Str("kind", p.Kind()).Str("reference", p.Reference())
	for k, v := range p {
		if k == "kind" || k == "reference" || k == "message" {
			continue
		}
		event = event.Str(k, v)
	}
	event.Msg("payload dispatched")

	return Ack{Dispatcher: "log"}, nil
}

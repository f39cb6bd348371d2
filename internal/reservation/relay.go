package reservation

import (
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"
	"github.com/rs/zerolog"
)

// Relay consumes payloads published by KafkaDispatcher and hands them to
// the mail dispatcher. It implements sarama.ConsumerGroupHandler.
type Relay struct {
	mail Dispatcher
	log  zerolog.Logger
}

func NewRelay(mail Dispatcher, log zerolog.Logger) *Relay {
	return &Relay{mail: mail, log: log.With().Str("component", "relay").Logger()}
}

func (r *Relay) Setup(sarama.ConsumerGroupSession) error { return nil }
func (r *Relay) Cleanup(sarama.ConsumerGroupSession) error { return nil }

// ConsumeClaim sends each message in order. Undecodable messages and
// permanent dispatch failures are logged and skipped. Any other failed
// send ends the claim without marking the message, so it is delivered
// again after the group rejoins.
func (r *Relay) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case msg, ok := <-claim.Messages():
			if !ok {
				return nil
			}

			var p Payload
			if err := json.Unmarshal(msg.Value, &p); err != nil {
				r.log.Error().
					Err(err).
					Int32("partition", msg.Partition).
					Int64("offset", msg.Offset).
					Msg("skipping undecodable payload")
				session.MarkMessage(msg, "")
				continue
			}

			if _, err := r.mail.Send(session.Context(), p); err != nil {
				if !IsPermanent(err) {
					return fmt.Errorf("relay %s: %w", p.Reference(), err)
				}
				r.log.Error().
					Err(err).
					Str("reference", p.Reference()).
					Str("kind", p.Kind()).
					Int64("offset", msg.Offset).
					Msg("dropping undeliverable payload")
				session.MarkMessage(msg, "")
				continue
			}

			r.log.Info().
				Str("reference", p.Reference()).
				Str("kind", p.Kind()).
				Msg("payload relayed")
			session.MarkMessage(msg, "")

		case <-session.Context().Done():
			return nil
		}
	}
}

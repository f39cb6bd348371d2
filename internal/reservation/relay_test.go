package reservation

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/IBM/sarama"
	"github.com/rs/zerolog"
)

type fakeSession struct {
	sarama.ConsumerGroupSession
	ctx    context.Context
	marked []int64
}

func (s *fakeSession) Context() context.Context { return s.ctx }

func (s *fakeSession) MarkMessage(msg *sarama.ConsumerMessage, metadata string) {
	s.marked = append(s.marked, msg.Offset)
}

type fakeClaim struct {
	sarama.ConsumerGroupClaim
	messages chan *sarama.ConsumerMessage
}

func (c *fakeClaim) Messages() <-chan *sarama.ConsumerMessage { return c.messages }

func claimOf(values ...[]byte) *fakeClaim {
	ch := make(chan *sarama.ConsumerMessage, len(values))
	for i, v := range values {
		ch <- &sarama.ConsumerMessage{Offset: int64(i), Value: v}
	}
	close(ch)
	return &fakeClaim{messages: ch}
}

func TestRelay_SendsAndMarks(t *testing.T) {
	valid, _ := json.Marshal(BuildPayload(validRequest(), "ref1"))
	d := &recordingDispatcher{}
	session := &fakeSession{ctx: context.Background()}

	err := NewRelay(d, zerolog.Nop()).ConsumeClaim(session, claimOf([]byte("{not json"), valid))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(d.sent) != 1 || d.sent[0].Reference() != "ref1" {
		t.Fatalf("expected one relayed payload, got %v", d.sent)
	}
	if len(session.marked) != 2 {
		t.Fatalf("expected both messages marked, got %v", session.marked)
	}
}

func TestRelay_FailedSendIsNotMarked(t *testing.T) {
	valid, _ := json.Marshal(BuildPayload(validRequest(), "ref2"))
	d := &recordingDispatcher{err: errors.New("emailjs down")}
	session := &fakeSession{ctx: context.Background()}

	err := NewRelay(d, zerolog.Nop()).ConsumeClaim(session, claimOf(valid))
	if err == nil {
		t.Fatalf("expected the send error")
	}
	if len(session.marked) != 0 {
		t.Fatalf("failed message must not be marked, got %v", session.marked)
	}
}

func TestRelay_UndeliverableKindDoesNotBlockPartition(t *testing.T) {
	var sends atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sends.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	mail, err := NewEmailJSDispatcher(EmailJSConfig{
		Endpoint:  srv.URL,
		ServiceID: "service_x",
		PublicKey: "public",
		Templates: map[string]string{KindReservation: "template_r"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	contact, _ := json.Marshal(Payload{"kind": KindContact, "reference": "c1"})
	booking, _ := json.Marshal(BuildPayload(validRequest(), "r1"))
	session := &fakeSession{ctx: context.Background()}

	if err := NewRelay(mail, zerolog.Nop()).ConsumeClaim(session, claimOf(contact, booking)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(session.marked) != 2 || session.marked[0] != 0 || session.marked[1] != 1 {
		t.Fatalf("expected both offsets marked, got %v", session.marked)
	}
	if sends.Load() != 1 {
		t.Fatalf("expected the reservation to be emailed once, got %d", sends.Load())
	}
}

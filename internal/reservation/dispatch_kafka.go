package reservation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/IBM/sarama"
)

// KafkaDispatcher publishes payloads as JSON to a topic, keyed by reference.
// A mail worker downstream turns them into messages.
type KafkaDispatcher struct {
	producer sarama.SyncProducer
	topic    string
}

// NewSaramaConfig is the producer configuration used for dispatch.
func NewSaramaConfig(timeout time.Duration) *sarama.Config {
	cfg := sarama.NewConfig()
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 0 // no automatic retry
	cfg.Producer.Return.Successes = true
	cfg.Net.DialTimeout = timeout
	cfg.Net.ReadTimeout = timeout
	cfg.Net.WriteTimeout = timeout
	return cfg
}

// DialKafkaDispatcher connects a SyncProducer to brokers.
func DialKafkaDispatcher(brokers []string, topic string, timeout time.Duration) (*KafkaDispatcher, error) {
	producer, err := sarama.NewSyncProducer(brokers, NewSaramaConfig(timeout))
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}
	return NewKafkaDispatcher(producer, topic)
}

func NewKafkaDispatcher(producer sarama.SyncProducer, topic string) (*KafkaDispatcher, error) {
	if producer == nil {
		return nil, errors.New("kafka producer is not initialized")
	}
	if topic == "" {
		return nil, errors.New("missing kafka topic")
	}
	return &KafkaDispatcher{producer: producer, topic: topic}, nil
}

func (d *KafkaDispatcher) Send(ctx context.Context, p Payload) (Ack, error) {
	if err := ctx.Err(); err != nil {
		return Ack{}, &DispatchError{Dispatcher: "kafka", Err: err}
	}

	value, err := json.Marshal(p)
	if err != nil {
		return Ack{}, &DispatchError{Dispatcher: "kafka", Err: err}
	}

	partition, offset, err := d.producer.SendMessage(&sarama.ProducerMessage{
		Topic: d.topic,
		Key:   sarama.StringEncoder(p.Reference()),
		Value: sarama.ByteEncoder(value),
		Headers: []sarama.RecordHeader{
			{Key: []byte("kind"), Value: []byte(p.Kind())},
		},
	})
	if err != nil {
		return Ack{}, &DispatchError{Dispatcher: "kafka", Err: err}
	}

	return Ack{Dispatcher: "kafka", Text: fmt.Sprintf("%s/%d@%d", d.topic, partition, offset)}, nil
}

func (d *KafkaDispatcher) Close() error {
	return d.producer.Close()
}

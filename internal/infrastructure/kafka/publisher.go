package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jaevor/go-nanoid"
	"github.com/segmentio/kafka-go"
)

// TransferPublisher is what the transfer engine publishes through.
type TransferPublisher interface {
	PublishTransferEvent(event TransferEvent) error
}

type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (k *KafkaPublisher) PublishTransferEvent(event TransferEvent) error {
	idGenerator, err := nanoid.Standard(15)
	if err != nil {
		return err
	}
	event.EventID = idGenerator()

	msg, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return k.writer.WriteMessages(context.Background(), kafka.Message{
		Key:   []byte(event.OwnerID),
		Value: msg,
		Time:  time.Now(),
	})
}

func (k *KafkaPublisher) Close() error {
	return k.writer.Close()
}

package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/IBM/sarama"

	"live-orders-dispatch/internal/domain"
	"live-orders-dispatch/internal/logx"
)

var newSyncProducer = sarama.NewSyncProducer

// Publisher writes dispatch events to a Kafka topic.
// A nil *Publisher is valid and drops every event.
type Publisher struct {
	producer sarama.SyncProducer
	topic    string
	logger   logx.Logger
}

// NewPublisher creates a Publisher. Without brokers or topic it returns nil, nil.
func NewPublisher(brokers []string, topic string, logger logx.Logger) (*Publisher, error) {
	if len(brokers) == 0 || strings.TrimSpace(topic) == "" {
		return nil, nil
	}

	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 3
	cfg.Producer.Timeout = 5 * time.Second

	producer, err := newSyncProducer(brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return newPublisher(producer, topic, logger), nil
}

func newPublisher(producer sarama.SyncProducer, topic string, logger logx.Logger) *Publisher {
	return &Publisher{producer: producer, topic: topic, logger: logx.OrNop(logger)}
}

// Publish sends one event keyed by order id.
func (p *Publisher) Publish(ctx context.Context, e domain.DispatchEvent) error {
	if p == nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	dto := FromDomain(e)
	value, err := json.Marshal(dto)
	if err != nil {
		return fmt.Errorf("marshal dispatch event: %w", err)
	}

	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(dto.Key()),
		Value: sarama.ByteEncoder(value),
	})
	if err != nil {
		return fmt.Errorf("publish dispatch event %s: %w", dto.AttemptID, err)
	}

	p.logger.Debug("dispatch event published",
		logx.String("attempt_id", dto.AttemptID),
		logx.Int("partition", int(partition)),
		logx.Int64("offset", offset),
	)
	return nil
}

// Close flushes and closes the producer.
func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	return p.producer.Close()
}

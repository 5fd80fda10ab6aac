package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/IBM/sarama"
	coreport "github.com/amirhossein-jamali/topup-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/topup-processor/internal/domain/port/event"
)

// KafkaConfig holds the producer settings
type KafkaConfig struct {
	Brokers        []string
	Topic          string
	ClientID       string
	ConnectRetries int
	RetryDelay     time.Duration
}

// KafkaPublisher publishes fulfillment events with a synchronous producer, so a
// returned nil means every in-sync replica acknowledged the event
type KafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
	logger   coreport.Logger
}

// NewSaramaConfig returns the producer configuration used for fulfillment events
func NewSaramaConfig(clientID string) *sarama.Config {
	config := sarama.NewConfig()
	if clientID != "" {
		config.ClientID = clientID
	}
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Idempotent = true
	config.Producer.Retry.Max = 5
	config.Net.MaxOpenRequests = 1
	return config
}

// NewKafkaPublisher connects to the brokers, waiting for them up to ConnectRetries times
func NewKafkaPublisher(ctx context.Context, cfg KafkaConfig, logger coreport.Logger) (*KafkaPublisher, error) {
	if len(cfg.Brokers) == 0 {
		return nil, errors.New("kafka brokers are required")
	}
	if cfg.ConnectRetries < 1 {
		cfg.ConnectRetries = 1
	}

	config := NewSaramaConfig(cfg.ClientID)

	var (
		producer sarama.SyncProducer
		err      error
	)
	for attempt := 1; attempt <= cfg.ConnectRetries; attempt++ {
		producer, err = sarama.NewSyncProducer(cfg.Brokers, config)
		if err == nil {
			break
		}

		logger.Warn("Waiting for Kafka", map[string]any{
			"attempt": attempt,
			"of":      cfg.ConnectRetries,
			"error":   err,
		})
		if attempt == cfg.ConnectRetries {
			break
		}
		select {
		case <-time.After(cfg.RetryDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err != nil {
		return nil, fmt.Errorf("start kafka producer: %w", err)
	}

	logger.Info("Kafka producer initialized", map[string]any{
		"brokers": cfg.Brokers,
		"topic":   cfg.Topic,
	})
	return NewKafkaPublisherWithProducer(producer, cfg.Topic, logger), nil
}

// NewKafkaPublisherWithProducer wraps an existing producer
func NewKafkaPublisherWithProducer(producer sarama.SyncProducer, topic string, logger coreport.Logger) *KafkaPublisher {
	if topic == "" {
		topic = event.TopicTransactionPaid
	}
	return &KafkaPublisher{
		producer: producer,
		topic:    topic,
		logger:   logger,
	}
}

// PublishTransactionPaid sends one event keyed by merchant reference, so all
// events of a transaction land on the same partition
func (p *KafkaPublisher) PublishTransactionPaid(ctx context.Context, evt event.TransactionPaid) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", p.topic, err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(evt.MerchantReference),
		Value: sarama.ByteEncoder(data),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event"), Value: []byte(event.TopicTransactionPaid)},
			{Key: []byte("transaction_id"), Value: []byte(strconv.FormatUint(evt.TransactionID, 10))},
		},
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("send %s event: %w", p.topic, err)
	}

	p.logger.Info("Published fulfillment event", map[string]any{
		"topic":              p.topic,
		"merchant_reference": evt.MerchantReference,
		"partition":          partition,
		"offset":             offset,
	})
	return nil
}

// Close flushes and closes the producer
func (p *KafkaPublisher) Close() error {
	return p.producer.Close()
}

var _ event.Publisher = (*KafkaPublisher)(nil)

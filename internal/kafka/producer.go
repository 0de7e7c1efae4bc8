package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/Animesh0711/DailyEase/internal/domain"
	"github.com/Animesh0711/DailyEase/pkg/logger"
	"github.com/IBM/sarama"
)

// Топики событий сервиса подписок
const (
	TopicSubscriptionCreated = "subscription.created"
	TopicSubscriptionPaused  = "subscription.paused"
	TopicSubscriptionResumed = "subscription.resumed"
	TopicPaymentCompleted    = "payment.completed"
	TopicPaymentFailed       = "payment.failed"
)

// SubscriptionEvent представляет событие подписки для Kafka
type SubscriptionEvent struct {
	SubscriptionID int64            `json:"subscription_id"`
	UserID         int64            `json:"user_id"`
	Frequency      domain.Frequency `json:"frequency,omitempty"`
	TotalCost      float64          `json:"total_cost,omitempty"`
	Timestamp      time.Time        `json:"timestamp"`
}

// PaymentEvent представляет событие платежа для Kafka
type PaymentEvent struct {
	PaymentID int64                  `json:"payment_id"`
	UserID    int64                  `json:"user_id"`
	Amount    float64                `json:"amount"`
	Status    domain.PaymentStatus   `json:"status"`
	Provider  domain.PaymentProvider `json:"provider"`
	Timestamp time.Time              `json:"timestamp"`
}

// EventProducer интерфейс для публикации событий сервиса
type EventProducer interface {
	PublishSubscriptionEvent(ctx context.Context, topic string, event SubscriptionEvent) error
	PublishPaymentEvent(ctx context.Context, topic string, event PaymentEvent) error
	Close() error
}

type kafkaEventProducer struct {
	producer sarama.SyncProducer
	log      *logger.Logger
}

// NewEventProducer создает и настраивает новый продюсер событий Kafka
func NewEventProducer(brokers []string, log *logger.Logger) (EventProducer, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("kafka brokers are not configured")
	}

	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForLocal
	config.Producer.Retry.Max = 3
	config.Producer.Return.Successes = true
	config.Producer.Compression = sarama.CompressionSnappy

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}

	log.Infow("Kafka producer initialized", "brokers", brokers)

	return &kafkaEventProducer{
		producer: producer,
		log:      log,
	}, nil
}

// PublishSubscriptionEvent публикует событие подписки.
// Ключ сообщения — ID подписки, чтобы события одной подписки
// попадали в одну партицию и сохраняли порядок.
func (p *kafkaEventProducer) PublishSubscriptionEvent(ctx context.Context, topic string, event SubscriptionEvent) error {
	return p.publish(topic, strconv.FormatInt(event.SubscriptionID, 10), event)
}

// PublishPaymentEvent публикует событие платежа
func (p *kafkaEventProducer) PublishPaymentEvent(ctx context.Context, topic string, event PaymentEvent) error {
	return p.publish(topic, strconv.FormatInt(event.PaymentID, 10), event)
}

func (p *kafkaEventProducer) publish(topic, key string, event interface{}) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("kafka: failed to marshal event: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(value),
	}

	partition, offset, err := p.producer.SendMessage(message)
	if err != nil {
		p.log.Errorw("Failed to publish event to Kafka", "error", err, "topic", topic, "key", key)
		return fmt.Errorf("kafka: failed to send message: %w", err)
	}

	p.log.Debugw("Event published to Kafka", "topic", topic, "key", key, "partition", partition, "offset", offset)
	return nil
}

// Close закрывает соединение продюсера Kafka
func (p *kafkaEventProducer) Close() error {
	if err := p.producer.Close(); err != nil {
		return fmt.Errorf("kafka: failed to close producer: %w", err)
	}
	return nil
}

// NoOpProducer заглушка продюсера, используется когда Kafka недоступна
type NoOpProducer struct{}

func (NoOpProducer) PublishSubscriptionEvent(context.Context, string, SubscriptionEvent) error {
	return nil
}

func (NoOpProducer) PublishPaymentEvent(context.Context, string, PaymentEvent) error {
	return nil
}

func (NoOpProducer) Close() error {
	return nil
}

package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/IBM/sarama"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"swiftrider/internal/entities"
	"swiftrider/internal/pkg/config"
	"swiftrider/pkg/logger"
)

// publishTimeout ограничивает ожидание dispatcher'а sarama, Input() у него небуферизованный.
const publishTimeout = 3 * time.Second

var (
	ErrProducerClosed  = errors.New("notification producer is closed")
	ErrPublishTimedOut = errors.New("notification producer did not accept the message in time")
)

var NotificationsPublishedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "notifications_published_total",
		Help: "Notifications handed to Kafka, by kind and result",
	},
	[]string{"kind", "result"},
)

// Producer публикует уведомления без ожидания брокера.
// Ошибки доставки приходят асинхронно, логируются и считаются в метрике.
type Producer struct {
	log      logger.Logger
	producer sarama.AsyncProducer
	topic    string

	mu     sync.RWMutex
	closed bool
	done   sync.WaitGroup
}

func NewAsyncProducer(ctx context.Context, log logger.Logger, cfg *config.Kafka) (*Producer, error) {
	saramaConfig, err := NewSaramaConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("build sarama config: %w", err)
	}

	brokers := cfg.BrokerList()
	kafkaLog := log.With(
		logger.NewField("brokers", brokers),
		logger.NewField("topic", cfg.Topic),
	)

	err = pingKafka(ctx, kafkaLog, brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("kafka connection: %w", err)
	}

	producer, err := sarama.NewAsyncProducer(brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create async producer: %w", err)
	}

	return NewProducer(kafkaLog, producer, cfg.Topic), nil
}

func NewProducer(log logger.Logger, producer sarama.AsyncProducer, topic string) *Producer {
	p := &Producer{
		log:      log,
		producer: producer,
		topic:    topic,
	}

	p.done.Add(2)
	go p.drainSuccesses()
	go p.drainErrors()

	return p
}

// Publish ждет, пока producer примет сообщение, но не дольше publishTimeout.
// Подтверждение брокера не ждет.
func (p *Producer) Publish(ctx context.Context, notification entities.Notification) error {
	value, err := json.Marshal(FromNotification(notification))
	if err != nil {
		return fmt.Errorf("encode notification: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic:    p.topic,
		Key:      sarama.StringEncoder(notification.To),
		Value:    sarama.ByteEncoder(value),
		Metadata: notification.Kind.String(),
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		NotificationsPublishedTotal.WithLabelValues(notification.Kind.String(), "closed").Inc()
		return ErrProducerClosed
	}

	timer := time.NewTimer(publishTimeout)
	defer timer.Stop()

	select {
	case p.producer.Input() <- msg:
		return nil
	case <-ctx.Done():
		NotificationsPublishedTotal.WithLabelValues(notification.Kind.String(), "canceled").Inc()
		return ctx.Err()
	case <-timer.C:
		NotificationsPublishedTotal.WithLabelValues(notification.Kind.String(), "timeout").Inc()
		return ErrPublishTimedOut
	}
}

// Close дожидается отправки буфера и закрывает producer.
func (p *Producer) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	p.mu.Unlock()

	p.producer.AsyncClose()
	p.done.Wait()
	return nil
}

func (p *Producer) drainSuccesses() {
	defer p.done.Done()

	for msg := range p.producer.Successes() {
		NotificationsPublishedTotal.WithLabelValues(kindOf(msg), "success").Inc()
	}
}

func (p *Producer) drainErrors() {
	defer p.done.Done()

	for perr := range p.producer.Errors() {
		kind := kindOf(perr.Msg)
		NotificationsPublishedTotal.WithLabelValues(kind, "error").Inc()
		p.log.Error("failed to deliver notification",
			logger.NewField("kind", kind),
			logger.NewField("error", perr.Err),
		)
	}
}

func kindOf(msg *sarama.ProducerMessage) string {
	if msg == nil {
		return "unknown"
	}
	if kind, ok := msg.Metadata.(string); ok {
		return kind
	}
	return "unknown"
}

package messaging

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	defaultMaxRetries = 10
	defaultRetryDelay = time.Second
	maxRetryDelay     = 30 * time.Second
	publishTimeout    = 5 * time.Second
)

var ErrChannelUnavailable = errors.New("rabbitmq channel not available")

type RabbitMQOption func(*RabbitMQ)

func WithRetry(maxRetries int, delay time.Duration) RabbitMQOption {
	return func(mq *RabbitMQ) {
		mq.maxRetries = maxRetries
		mq.retryDelay = delay
	}
}

// RabbitMQ holds one connection and one channel shared by all publishers.
type RabbitMQ struct {
	url        string
	maxRetries int
	retryDelay time.Duration

	mu     sync.RWMutex
	conn   *amqp.Connection
	ch     *amqp.Channel
	closed bool
}

// NewRabbitMQ dials url, retrying with a growing delay until maxRetries is reached or ctx ends.
func NewRabbitMQ(ctx context.Context, url string, opts ...RabbitMQOption) (*RabbitMQ, error) {
	mq := &RabbitMQ{
		url:        url,
		maxRetries: defaultMaxRetries,
		retryDelay: defaultRetryDelay,
	}

	for _, opt := range opts {
		opt(mq)
	}

	delay := mq.retryDelay
	for attempt := 1; attempt <= mq.maxRetries; attempt++ {
		err := mq.connect()
		if err == nil {
			slog.InfoContext(ctx, "rabbitmq connected", slog.Int("attempt", attempt))
			return mq, nil
		}

		slog.WarnContext(ctx, "rabbitmq connection attempt failed",
			slog.Int("attempt", attempt),
			slog.Int("max_retries", mq.maxRetries),
			slog.String("error", err.Error()),
		)

		if attempt == mq.maxRetries {
			return nil, fmt.Errorf("failed to connect after %d attempts: %w", mq.maxRetries, err)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
			delay = min(time.Duration(float64(delay)*1.5), maxRetryDelay)
		}
	}

	return nil, fmt.Errorf("failed to connect: no attempts made")
}

func (mq *RabbitMQ) connect() error {
	conn, err := amqp.Dial(mq.url)
	if err != nil {
		return fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("open channel: %w", err)
	}

	mq.mu.Lock()
	mq.conn = conn
	mq.ch = ch
	mq.mu.Unlock()

	return nil
}

// DeclareTopicExchange makes sure a durable topic exchange exists.
func (mq *RabbitMQ) DeclareTopicExchange(name string) error {
	mq.mu.RLock()
	ch := mq.ch
	mq.mu.RUnlock()

	if ch == nil {
		return ErrChannelUnavailable
	}

	if err := ch.ExchangeDeclare(name, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare exchange %s: %w", name, err)
	}

	return nil
}

func (mq *RabbitMQ) Publish(ctx context.Context, exchange, routingKey string, body []byte) error {
	mq.mu.RLock()
	ch := mq.ch
	mq.mu.RUnlock()

	if ch == nil {
		return ErrChannelUnavailable
	}

	publishCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err := ch.PublishWithContext(publishCtx, exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
	})
	if err != nil {
		return fmt.Errorf("publish to %s/%s: %w", exchange, routingKey, err)
	}

	return nil
}

func (mq *RabbitMQ) Close() {
	mq.mu.Lock()
	defer mq.mu.Unlock()

	if mq.closed {
		return
	}

	mq.closed = true

	if mq.ch != nil {
		_ = mq.ch.Close()
	}

	if mq.conn != nil {
		_ = mq.conn.Close()
	}

	slog.Info("rabbitmq connection closed")
}

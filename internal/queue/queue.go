package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/avast/retry-go/v4"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/kimberlabs/staking-ledger/internal/config"
)

const exchangeKind = "topic"

// EventPublisher fans committed ledger events out to downstream indexers.
//
//go:generate mockery --name=EventPublisher --output=../../tests/mocks --outpkg=mocks --filename=mock_event_publisher.go
type EventPublisher interface {
	Publish(ctx context.Context, msg *LedgerEventMessage) error
	Shutdown()
}

// QueueManager publishes to a RabbitMQ topic exchange, using the operation
// as routing key. Without a queue config every message is dropped.
type QueueManager struct {
	cfg    *config.QueueConfig
	logger *zap.Logger

	mu      sync.Mutex
	conn    *amqp.Connection
	channel *amqp.Channel
}

func NewQueueManager(ctx context.Context, cfg *config.QueueConfig, logger *zap.Logger) (*QueueManager, error) {
	qm := &QueueManager{
		cfg:    cfg,
		logger: logger,
	}
	if cfg == nil {
		logger.Info("queue is not configured, ledger events will not be published")
		return qm, nil
	}

	if err := qm.connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to queue: %w", err)
	}
	return qm, nil
}

// connect replaces the current connection, closing it first if the broker
// only dropped the channel.
func (qm *QueueManager) connect(ctx context.Context) error {
	qm.closeConnection()
	url := fmt.Sprintf("amqp://%s:%s@%s", qm.cfg.User, qm.cfg.Password, qm.cfg.Url)

	return retry.Do(
		func() error {
			conn, err := amqp.Dial(url)
			if err != nil {
				return err
			}
			ch, err := conn.Channel()
			if err != nil {
				conn.Close() //nolint:errcheck
				return err
			}
			err = ch.ExchangeDeclare(qm.cfg.Exchange, exchangeKind, true, false, false, false, nil)
			if err != nil {
				conn.Close() //nolint:errcheck
				return err
			}

			qm.conn = conn
			qm.channel = ch
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(qm.cfg.MaxRetryAttempts),
		retry.Delay(qm.cfg.RetryInterval),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			qm.logger.Warn("failed to connect to queue, retrying",
				zap.Uint("attempt", n+1),
				zap.Uint("max_attempts", qm.cfg.MaxRetryAttempts),
				zap.Error(err),
			)
		}),
	)
}

func (qm *QueueManager) Publish(ctx context.Context, msg *LedgerEventMessage) error {
	if qm.cfg == nil {
		return nil
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal ledger event message: %w", err)
	}

	qm.mu.Lock()
	defer qm.mu.Unlock()

	if qm.channel == nil || qm.channel.IsClosed() {
		qm.logger.Warn("queue channel is closed, reconnecting")
		if err := qm.connect(ctx); err != nil {
			return fmt.Errorf("failed to reconnect to queue: %w", err)
		}
	}

	ctx, cancel := context.WithTimeout(ctx, qm.cfg.PublishTimeout)
	defer cancel()

	err = qm.channel.PublishWithContext(ctx, qm.cfg.Exchange, msg.RoutingKey(), false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    strconv.FormatUint(msg.Sequence, 10),
		Timestamp:    time.Unix(int64(msg.Timestamp), 0),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("failed to publish ledger event message %d: %w", msg.Sequence, err)
	}

	qm.logger.Debug("published ledger event message",
		zap.Uint64("sequence", msg.Sequence),
		zap.String("operation", msg.Operation),
		zap.Int("events", len(msg.Events)),
	)
	return nil
}

// Shutdown gracefully stops the interaction with the queue, ensuring all resources are properly released.
func (qm *QueueManager) Shutdown() {
	qm.mu.Lock()
	defer qm.mu.Unlock()

	qm.logger.Info("shutting down queue manager")
	qm.closeConnection()
}

// closeConnection must be called with qm.mu held or before qm is shared.
func (qm *QueueManager) closeConnection() {
	if qm.conn == nil {
		return
	}
	if err := qm.conn.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
		qm.logger.Error("failed to close queue connection", zap.Error(err))
	}
	qm.conn = nil
	qm.channel = nil
}

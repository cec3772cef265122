package orderevents

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/IBM/sarama"

	"github.com/bidbinh/vnss-tms-sub009/internal/entities"
	"github.com/bidbinh/vnss-tms-sub009/pkg/logger"
	retrierconfig "github.com/bidbinh/vnss-tms-sub009/pkg/retrier"
	"github.com/bidbinh/vnss-tms-sub009/pkg/retrier/backoff_adapter"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 1 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

type OrderEventGateway struct {
	log      handlerLogger
	producer producer
	topic    string
	retrier  retrier
}

func New(log handlerLogger, producer producer, topic string) *OrderEventGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     nil,
	}

	return &OrderEventGateway{
		log:      log,
		producer: producer,
		topic:    topic,
		retrier:  backoff_adapter.New(retryConfig),
	}
}

// PublishOrderEvent sends the event keyed by order id, so all events
// of one order land on the same partition in commit order.
func (g *OrderEventGateway) PublishOrderEvent(ctx context.Context, event entities.OrderEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("gateway order events, marshal event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: g.topic,
		Key:   sarama.StringEncoder(strconv.FormatInt(event.OrderID, 10)),
		Value: sarama.ByteEncoder(payload),
	}

	var attempt uint64
	start := time.Now()

	err = g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		_, _, sendErr := g.producer.SendMessage(msg)
		return sendErr
	})

	result := "ok"
	if err != nil {
		result = "error"
	}
	EventPublishDuration.WithLabelValues(g.topic, event.Type, result).Observe(time.Since(start).Seconds())
	if attempt > 1 {
		EventPublishRetriesTotal.WithLabelValues(g.topic, event.Type, result).Inc()
	}

	if err != nil {
		g.log.With(
			logger.NewField("error", err),
			logger.NewField("order", event.OrderID),
			logger.NewField("event_type", event.Type),
			logger.NewField("attempts", attempt),
		).Error("failed to publish order event")
		return fmt.Errorf("gateway order events, publish %s for order %d: %w", event.Type, event.OrderID, err)
	}

	return nil
}

package order_event

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"

	"github.com/bidbinh/vnss-tms-sub009/internal/entities"
	"github.com/bidbinh/vnss-tms-sub009/internal/service/orderevent"
	"github.com/bidbinh/vnss-tms-sub009/pkg/logger"
)

type Handler struct {
	orderEventService        Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, orderEventService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		orderEventService:        orderEventService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("order events: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Rebalance or consumer group shutdown.
			h.log.Info("order events: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing handles a single Kafka message. Returns true when
// ConsumeClaim must stop so the message is redelivered after the
// context cancellation.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event entities.OrderEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("order events handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("order", event.OrderID),
		logger.NewField("event_type", event.Type),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("order event processing")

	err = h.orderEventService.ProcessOrderEvent(ctx, event)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order events handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, orderevent.ErrInvalidEvent):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order events handler received malformed event")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order events handler failed to process event")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.Info("order event processed")

	sess.MarkMessage(message, "")
	return false
}

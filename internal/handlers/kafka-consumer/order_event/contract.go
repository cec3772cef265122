package order_event

import (
	"context"

	"github.com/bidbinh/vnss-tms-sub009/internal/entities"
	"github.com/bidbinh/vnss-tms-sub009/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ProcessOrderEvent(ctx context.Context, event entities.OrderEvent) error
}

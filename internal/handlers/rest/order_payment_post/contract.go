//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_payment_post_test
package order_payment_post

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
	MarkCustomerPaid(ctx context.Context, id, amount int64, actorID *int64) (*entities.Order, error)
	MarkDriverPaid(ctx context.Context, id int64, actorID *int64) (*entities.Order, error)
}

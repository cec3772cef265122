//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=orders_assigned_get_test
package orders_assigned_get

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
	ListAssignedOrders(ctx context.Context, driverActorID int64, status *entities.OrderStatusType) ([]entities.Order, error)
}

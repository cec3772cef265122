//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_transition_post_test
package order_transition_post

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
	SubmitOrder(ctx context.Context, id int64, actorID *int64) (*entities.Order, error)
	AssignOrder(ctx context.Context, id int64, assignment entities.OrderAssignment) (*entities.Order, error)
	UnassignOrder(ctx context.Context, id int64, actorID *int64) (*entities.Order, error)
	AcceptOrder(ctx context.Context, id int64, driverActorID int64) (*entities.Order, error)
	StartTransit(ctx context.Context, id int64, driverActorID int64) (*entities.Order, error)
	RecordPickup(ctx context.Context, id int64, driverActorID int64) (*entities.Order, error)
	DeliverOrder(ctx context.Context, id int64, driverActorID int64) (*entities.Order, error)
	CompleteOrder(ctx context.Context, id int64, actorID *int64) (*entities.Order, error)
	CancelOrder(ctx context.Context, id int64, reason string, actorID *int64) (*entities.Order, error)
	HoldOrder(ctx context.Context, id int64, actorID *int64) (*entities.Order, error)
	ResumeOrder(ctx context.Context, id int64, actorID *int64) (*entities.Order, error)
}

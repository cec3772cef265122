//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"github.com/bidbinh/vnss-tms-sub009/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, orderModifyEntity entities.OrderModify) (*entities.Order, error)
	GetByID(ctx context.Context, id int64) (*entities.Order, error)
	GetByIdempotencyKey(ctx context.Context, key string) (*entities.Order, error)
	List(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error)
	ListAssigned(ctx context.Context, driverActorID int64, status *entities.OrderStatusType) ([]entities.Order, error)
	Update(ctx context.Context, orderModifyEntity entities.OrderModify) (*entities.Order, error)
	Delete(ctx context.Context, id int64) error
	// UpdateStatusGuarded applies the patch and flips the status only
	// while the row still holds fromStatus, returning ErrStatusNotMatched
	// otherwise.
	UpdateStatusGuarded(ctx context.Context, id int64, fromStatus, toStatus entities.OrderStatusType, patch entities.OrderStatusPatch) (*entities.Order, error)
	UpdatePayment(ctx context.Context, id int64, patch entities.OrderPaymentPatch) (*entities.Order, error)
	AppendHistory(ctx context.Context, historyEntity entities.OrderStatusHistory) error
	ListHistory(ctx context.Context, orderID int64) ([]entities.OrderStatusHistory, error)
	CountActiveByOwner(ctx context.Context, ownerActorID int64) (int64, error)
	UpsertSegment(ctx context.Context, segmentEntity entities.OrderSegment) error
}

type ActorProvider interface {
	GetActor(ctx context.Context, id int64) (*entities.Actor, error)
}

type RelationshipChecker interface {
	HasActiveAssignableRelationship(ctx context.Context, actorID, relatedActorID int64, types []string) (bool, error)
}

type CodeFactory interface {
	NewOrderCode() string
}

type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, event entities.OrderEvent) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Settings are the workflow toggles read from the environment.
type Settings struct {
	EnforceAssignment          bool
	AssignableTypes            []string
	CompleteRequiresDriverPaid bool
}

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=actor_test
package actor

import (
	"context"

	"github.com/bidbinh/vnss-tms-sub009/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, actorModifyEntity entities.ActorModify) (*entities.Actor, error)
	GetByID(ctx context.Context, id int64) (*entities.Actor, error)
	List(ctx context.Context, filter entities.ActorFilter) ([]entities.Actor, error)
	Update(ctx context.Context, actorModifyEntity entities.ActorModify) (*entities.Actor, error)
}

// OrderCounter guards soft deletion: an actor owning assigned or moving
// orders must not be deleted.
type OrderCounter interface {
	CountActiveByOwner(ctx context.Context, ownerActorID int64) (int64, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

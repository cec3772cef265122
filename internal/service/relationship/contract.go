//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=relationship_test
package relationship

import (
	"context"

	"github.com/bidbinh/vnss-tms-sub009/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, relationshipModifyEntity entities.RelationshipModify) (*entities.Relationship, error)
	// GetByIDForActor returns the edge only when actorID is one of its
	// endpoints.
	GetByIDForActor(ctx context.Context, id, actorID int64) (*entities.Relationship, error)
	Update(ctx context.Context, relationshipModifyEntity entities.RelationshipModify) (*entities.Relationship, error)
	Delete(ctx context.Context, id int64) error
	ListByActor(ctx context.Context, actorID int64, filter entities.RelationshipFilter) ([]entities.Relationship, error)
	ExistsActiveBetween(ctx context.Context, actorID, relatedActorID int64, types []string) (bool, error)
	// ApplyStatsDelta increments the aggregate counters of every active
	// edge between the pair, in either direction. Returns affected rows.
	ApplyStatsDelta(ctx context.Context, actorID, relatedActorID int64, delta entities.RelationshipStatsDelta) (int64, error)
	// ReconcileStats recomputes all aggregate counters from the order
	// table. Returns the number of corrected edges.
	ReconcileStats(ctx context.Context) (int64, error)
}

type ActorProvider interface {
	GetActor(ctx context.Context, id int64) (*entities.Actor, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

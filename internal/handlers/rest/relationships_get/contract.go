//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=relationships_get_test
package relationships_get

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
	ListRelationships(ctx context.Context, actorID int64, filter entities.RelationshipFilter) ([]entities.Relationship, error)
	GetRelationship(ctx context.Context, actorID, id int64) (*entities.Relationship, error)
}

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=relationship_projection_get_test
package relationship_projection_get

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
	ListEmployees(ctx context.Context, actorID int64) ([]entities.Relationship, error)
	ListEmployers(ctx context.Context, actorID int64) ([]entities.Relationship, error)
	ListConnections(ctx context.Context, actorID int64) ([]entities.Relationship, error)
	ListPendingRequests(ctx context.Context, actorID int64) ([]entities.Relationship, error)
}

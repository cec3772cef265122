//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=relationship_post_test
package relationship_post

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
	CreateRelationship(ctx context.Context, actorID int64, relationshipModifyEntity entities.RelationshipModify) (*entities.Relationship, error)
}

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=relationship_patch_test
package relationship_patch

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
	UpdateRelationship(ctx context.Context, actorID, id int64, relationshipModifyEntity entities.RelationshipModify) (*entities.Relationship, error)
}

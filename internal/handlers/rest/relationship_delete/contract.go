//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=relationship_delete_test
package relationship_delete

import (
	"context"

	"github.com/bidbinh/vnss-tms-sub009/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	DeleteRelationship(ctx context.Context, actorID, id int64) error
}

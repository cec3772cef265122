//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=actor_patch_test
package actor_patch

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
	UpdateActor(ctx context.Context, actorModifyEntity entities.ActorModify) (*entities.Actor, error)
}

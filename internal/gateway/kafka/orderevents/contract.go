//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=orderevents_test
package orderevents

import (
	"context"

	"github.com/IBM/sarama"

	"github.com/bidbinh/vnss-tms-sub009/pkg/logger"
)

type producer interface {
	SendMessage(msg *sarama.ProducerMessage) (partition int32, offset int64, err error)
}

type retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	orderEventsGateway "github.com/bidbinh/vnss-tms-sub009/internal/gateway/kafka/orderevents"
	"github.com/bidbinh/vnss-tms-sub009/internal/handlers/rest/actor_delete"
	"github.com/bidbinh/vnss-tms-sub009/internal/handlers/rest/actor_get"
	"github.com/bidbinh/vnss-tms-sub009/internal/handlers/rest/actor_patch"
	"github.com/bidbinh/vnss-tms-sub009/internal/handlers/rest/actor_post"
	"github.com/bidbinh/vnss-tms-sub009/internal/handlers/rest/actors_get"
	"github.com/bidbinh/vnss-tms-sub009/internal/handlers/rest/order_delete"
	"github.com/bidbinh/vnss-tms-sub009/internal/handlers/rest/order_get"
	"github.com/bidbinh/vnss-tms-sub009/internal/handlers/rest/order_history_get"
	"github.com/bidbinh/vnss-tms-sub009/internal/handlers/rest/order_patch"
	"github.com/bidbinh/vnss-tms-sub009/internal/handlers/rest/order_payment_post"
	"github.com/bidbinh/vnss-tms-sub009/internal/handlers/rest/order_post"
	"github.com/bidbinh/vnss-tms-sub009/internal/handlers/rest/order_transition_post"
	"github.com/bidbinh/vnss-tms-sub009/internal/handlers/rest/orders_assigned_get"
	"github.com/bidbinh/vnss-tms-sub009/internal/handlers/rest/orders_get"
	"github.com/bidbinh/vnss-tms-sub009/internal/handlers/rest/relationship_delete"
	"github.com/bidbinh/vnss-tms-sub009/internal/handlers/rest/relationship_patch"
	"github.com/bidbinh/vnss-tms-sub009/internal/handlers/rest/relationship_post"
	"github.com/bidbinh/vnss-tms-sub009/internal/handlers/rest/relationship_projection_get"
	"github.com/bidbinh/vnss-tms-sub009/internal/handlers/rest/relationships_get"
	"github.com/bidbinh/vnss-tms-sub009/internal/handlers/tasks/relationship_stats_reconcile"
	"github.com/bidbinh/vnss-tms-sub009/internal/pkg/config"
	"github.com/bidbinh/vnss-tms-sub009/internal/pkg/factory/event_handle"
	"github.com/bidbinh/vnss-tms-sub009/internal/pkg/factory/order_code"

	actorRepo "github.com/bidbinh/vnss-tms-sub009/internal/repository/actor"
	orderRepo "github.com/bidbinh/vnss-tms-sub009/internal/repository/order"
	relationshipRepo "github.com/bidbinh/vnss-tms-sub009/internal/repository/relationship"
	actorService "github.com/bidbinh/vnss-tms-sub009/internal/service/actor"
	orderService "github.com/bidbinh/vnss-tms-sub009/internal/service/order"
	orderEventService "github.com/bidbinh/vnss-tms-sub009/internal/service/orderevent"
	relationshipService "github.com/bidbinh/vnss-tms-sub009/internal/service/relationship"

	"github.com/bidbinh/vnss-tms-sub009/pkg/background"
	"github.com/bidbinh/vnss-tms-sub009/pkg/logger"
	"github.com/bidbinh/vnss-tms-sub009/pkg/querier"
	"github.com/bidbinh/vnss-tms-sub009/pkg/tx"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	ReconcileInterval time.Duration
)

type Application struct {
	ServiceActor        ServiceActor
	ServiceRelationship ServiceRelationship
	ServiceOrder        ServiceOrder
	BackgroundWorkers   *background.Worker
}

type ServiceActor interface {
	actor_post.Service
	actor_get.Service
	actors_get.Service
	actor_patch.Service
	actor_delete.Service
}

type ServiceRelationship interface {
	relationship_post.Service
	relationships_get.Service
	relationship_patch.Service
	relationship_delete.Service
	relationship_projection_get.Service
}

type ServiceOrder interface {
	order_post.Service
	order_get.Service
	orders_get.Service
	order_patch.Service
	order_delete.Service
	order_history_get.Service
	orders_assigned_get.Service
	order_transition_post.Service
	order_payment_post.Service
}

// InitializeApplication wires the HTTP service (cmd/service).
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideReconcileInterval,

		provideActorRepository,
		provideRelationshipRepository,
		provideOrderRepository,

		provideServiceActor,
		provideServiceRelationship,
		provideServiceOrder,
		provideOrderSettings,
		provideOrderEventGateway,
		order_code.New,

		provideStatsReconcileTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceActor), new(*actorService.Actor)),
		wire.Bind(new(ServiceRelationship), new(*relationshipService.Relationship)),
		wire.Bind(new(ServiceOrder), new(*orderService.Order)),

		wire.Bind(new(actorService.Repository), new(*actorRepo.Repository)),
		wire.Bind(new(actorService.OrderCounter), new(*orderRepo.Repository)),
		wire.Bind(new(relationshipService.Repository), new(*relationshipRepo.Repository)),
		wire.Bind(new(relationshipService.ActorProvider), new(*actorService.Actor)),
		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.ActorProvider), new(*actorService.Actor)),
		wire.Bind(new(orderService.RelationshipChecker), new(*relationshipService.Relationship)),
		wire.Bind(new(orderService.CodeFactory), new(*order_code.OrderCodeFactory)),
		wire.Bind(new(orderService.EventPublisher), new(*orderEventsGateway.OrderEventGateway)),

		wire.Bind(new(actorService.TxManager), new(*tx.Manager)),
		wire.Bind(new(relationshipService.TxManager), new(*tx.Manager)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),

		wire.Bind(new(relationship_stats_reconcile.Service), new(*relationshipService.Relationship)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	OrderEventService *orderEventService.OrderEvent
}

// InitializeKafkaWorkerApp wires the Kafka worker (cmd/worker-order-events).
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideActorRepository,
		provideRelationshipRepository,
		provideOrderRepository,

		provideServiceActor,
		provideServiceRelationship,

		provideEventHandlerFactory,
		provideServiceOrderEvent,

		wire.Bind(new(actorService.Repository), new(*actorRepo.Repository)),
		wire.Bind(new(actorService.OrderCounter), new(*orderRepo.Repository)),
		wire.Bind(new(relationshipService.Repository), new(*relationshipRepo.Repository)),
		wire.Bind(new(relationshipService.ActorProvider), new(*actorService.Actor)),

		wire.Bind(new(actorService.TxManager), new(*tx.Manager)),
		wire.Bind(new(relationshipService.TxManager), new(*tx.Manager)),

		wire.Bind(new(orderEventService.RelationshipStats), new(*relationshipService.Relationship)),
		wire.Bind(new(orderEventService.HandlerFactory), new(*event_handle.Factory)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideActorRepository(querier *querier.Querier) *actorRepo.Repository {
	return actorRepo.New(querier)
}

func provideRelationshipRepository(querier *querier.Querier) *relationshipRepo.Repository {
	return relationshipRepo.New(querier)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideServiceActor(
	repository actorService.Repository,
	orderCounter actorService.OrderCounter,
	txManager actorService.TxManager,
	cfg *config.Config,
) *actorService.Actor {
	return actorService.New(repository, orderCounter, txManager, cfg.Workflow.DefaultCountry)
}

func provideServiceRelationship(
	repository relationshipService.Repository,
	actorProvider relationshipService.ActorProvider,
	txManager relationshipService.TxManager,
	cfg *config.Config,
) *relationshipService.Relationship {
	return relationshipService.New(repository, actorProvider, txManager, cfg.Workflow.RelationshipAutoAcceptTypes)
}

func provideOrderSettings(cfg *config.Config) orderService.Settings {
	return orderService.Settings{
		EnforceAssignment:          cfg.Workflow.RelationshipEnforceAssignment,
		AssignableTypes:            cfg.Workflow.RelationshipAssignableTypes,
		CompleteRequiresDriverPaid: cfg.Workflow.OrderCompleteRequireDriverPaid,
	}
}

func provideServiceOrder(
	repository orderService.Repository,
	actorProvider orderService.ActorProvider,
	relationshipChecker orderService.RelationshipChecker,
	codeFactory orderService.CodeFactory,
	events orderService.EventPublisher,
	txManager orderService.TxManager,
	settings orderService.Settings,
) *orderService.Order {
	return orderService.New(
		repository,
		actorProvider,
		relationshipChecker,
		codeFactory,
		events,
		txManager,
		settings,
	)
}

func provideOrderEventGateway(log logger.Logger, producer sarama.SyncProducer, cfg *config.Config) *orderEventsGateway.OrderEventGateway {
	return orderEventsGateway.New(log, producer, cfg.Kafka.Topic)
}

func provideEventHandlerFactory(relationshipStats orderEventService.RelationshipStats) *event_handle.Factory {
	return event_handle.New(relationshipStats)
}

func provideServiceOrderEvent(handlerFactory orderEventService.HandlerFactory) *orderEventService.OrderEvent {
	return orderEventService.New(handlerFactory)
}

func provideReconcileInterval(cfg *config.Config) ReconcileInterval {
	return ReconcileInterval(cfg.Tasks.RelationshipStatsReconcileInterval)
}

func provideStatsReconcileTask(
	log logger.Logger,
	relationshipService relationship_stats_reconcile.Service,
	interval ReconcileInterval,
) *relationship_stats_reconcile.StatsReconcile {
	return relationship_stats_reconcile.NewStatsReconcile(log, relationshipService, time.Duration(interval))
}

func provideTaskList(
	statsReconcileTask *relationship_stats_reconcile.StatsReconcile,
) []background.Task {
	return []background.Task{
		statsReconcileTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}

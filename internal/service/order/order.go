package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bidbinh/vnss-tms-sub009/internal/entities"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200

	defaultCurrency = "VND"
)

type Order struct {
	repository          Repository
	actorProvider       ActorProvider
	relationshipChecker RelationshipChecker
	codeFactory         CodeFactory
	events              EventPublisher
	txManager           TxManager
	settings            Settings
}

func New(
	repository Repository,
	actorProvider ActorProvider,
	relationshipChecker RelationshipChecker,
	codeFactory CodeFactory,
	events EventPublisher,
	txManager TxManager,
	settings Settings,
) *Order {
	return &Order{
		repository:          repository,
		actorProvider:       actorProvider,
		relationshipChecker: relationshipChecker,
		codeFactory:         codeFactory,
		events:              events,
		txManager:           txManager,
		settings:            settings,
	}
}

// CreateOrder registers a new order for its owner. With asDraft the
// record starts in DRAFT and enters the workflow on submit, otherwise
// it starts in PENDING and the implicit submit is recorded in history.
func (s *Order) CreateOrder(ctx context.Context, orderModifyEntity entities.OrderModify, asDraft bool) (*entities.Order, error) {
	if orderModifyEntity.OwnerActorID == nil || *orderModifyEntity.OwnerActorID <= 0 {
		return nil, fmt.Errorf("%w: owner_actor_id", ErrMissingRequiredFields)
	}
	if err := validateCharges(orderModifyEntity); err != nil {
		return nil, err
	}
	if orderModifyEntity.SourceType != nil && !isValidSource(*orderModifyEntity.SourceType) {
		return nil, fmt.Errorf("%w: source_type", ErrMissingRequiredFields)
	}

	if _, err := s.actorProvider.GetActor(ctx, *orderModifyEntity.OwnerActorID); err != nil {
		return nil, err
	}

	if orderModifyEntity.IdempotencyKey != nil {
		existing, err := s.repository.GetByIdempotencyKey(ctx, *orderModifyEntity.IdempotencyKey)
		if err == nil {
			return existing, nil
		}
		if !errors.Is(err, ErrOrderNotFound) {
			return nil, err
		}
	}

	status := entities.OrderPending
	if asDraft {
		status = entities.OrderDraft
	}
	orderModifyEntity.Status = &status

	orderCode := s.codeFactory.NewOrderCode()
	orderModifyEntity.OrderCode = &orderCode

	if orderModifyEntity.SourceType == nil {
		source := entities.DefaultOrderSource
		orderModifyEntity.SourceType = &source
	}
	if orderModifyEntity.Currency == nil {
		currency := defaultCurrency
		orderModifyEntity.Currency = &currency
	}

	total := totalCharge(orderModifyEntity.FreightCharge, orderModifyEntity.AdditionalCharges, 0, 0)
	orderModifyEntity.TotalCharge = &total

	var created *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.repository.Create(ctx, orderModifyEntity)
		if err != nil {
			return err
		}

		if status == entities.OrderPending {
			now := time.Now().UTC()
			if _, err := s.repository.UpdateStatusGuarded(ctx, created.ID, status, status, entities.OrderStatusPatch{
				SubmittedAt: &now,
			}); err != nil {
				return err
			}
			created.SubmittedAt = &now

			return s.repository.AppendHistory(ctx, entities.OrderStatusHistory{
				OrderID:    created.ID,
				FromStatus: entities.OrderDraft,
				ToStatus:   entities.OrderPending,
			})
		}

		return nil
	})
	if err != nil {
		// A retried create races its predecessor on the idempotency key,
		// the stored row wins.
		if orderModifyEntity.IdempotencyKey != nil && errors.Is(err, ErrConflict) {
			if existing, getErr := s.repository.GetByIdempotencyKey(ctx, *orderModifyEntity.IdempotencyKey); getErr == nil {
				return existing, nil
			}
		}

		return nil, err
	}

	if status == entities.OrderPending {
		s.publishStatusChanged(ctx, created, entities.OrderDraft, entities.OrderPending)
	}

	return created, nil
}

func (s *Order) GetOrder(ctx context.Context, id int64) (*entities.Order, error) {
	if id <= 0 {
		return nil, ErrInvalidOrderID
	}

	return s.repository.GetByID(ctx, id)
}

func (s *Order) ListOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	if filter.OwnerActorID <= 0 {
		return nil, fmt.Errorf("%w: owner_actor_id", ErrMissingRequiredFields)
	}
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, ErrInvalidStatus
	}

	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}
	if filter.Limit > maxListLimit {
		filter.Limit = maxListLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	return s.repository.List(ctx, filter)
}

func (s *Order) ListAssignedOrders(ctx context.Context, driverActorID int64, status *entities.OrderStatusType) ([]entities.Order, error) {
	if driverActorID <= 0 {
		return nil, ErrInvalidActorID
	}
	if status != nil && !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	return s.repository.ListAssigned(ctx, driverActorID, status)
}

func (s *Order) GetOrderHistory(ctx context.Context, orderID int64) ([]entities.OrderStatusHistory, error) {
	if orderID <= 0 {
		return nil, ErrInvalidOrderID
	}

	if _, err := s.repository.GetByID(ctx, orderID); err != nil {
		return nil, err
	}

	return s.repository.ListHistory(ctx, orderID)
}

// UpdateOrder edits order attributes. Status and assignment never move
// through here, the workflow endpoints own them.
func (s *Order) UpdateOrder(ctx context.Context, orderModifyEntity entities.OrderModify) (*entities.Order, error) {
	if orderModifyEntity.ID == nil || *orderModifyEntity.ID <= 0 {
		return nil, ErrInvalidOrderID
	}
	if err := validateCharges(orderModifyEntity); err != nil {
		return nil, err
	}

	orderModifyEntity.Status = nil
	orderModifyEntity.OwnerActorID = nil
	orderModifyEntity.OrderCode = nil
	orderModifyEntity.IdempotencyKey = nil

	var updated *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, *orderModifyEntity.ID)
		if err != nil {
			return err
		}

		if orderModifyEntity.FreightCharge != nil || orderModifyEntity.AdditionalCharges != nil {
			total := totalCharge(
				orderModifyEntity.FreightCharge, orderModifyEntity.AdditionalCharges,
				current.FreightCharge, current.AdditionalCharges,
			)
			orderModifyEntity.TotalCharge = &total
		} else {
			orderModifyEntity.TotalCharge = nil
		}

		updated, err = s.repository.Update(ctx, orderModifyEntity)

		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteOrder removes a draft that never entered the workflow. Anything
// past DRAFT is cancelled instead so its history survives.
func (s *Order) DeleteOrder(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidOrderID
	}

	return s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if current.Status != entities.OrderDraft {
			return fmt.Errorf("%w: status %s", ErrOrderNotDeletable, current.Status)
		}

		return s.repository.Delete(ctx, id)
	})
}

// transition is the shared workflow step: load, guard, flip the status
// under a matching-status condition and append exactly one history row.
// A row already in the target status short-circuits as a successful
// retry.
func (s *Order) transition(
	ctx context.Context,
	id int64,
	target entities.OrderStatusType,
	changedBy *int64,
	note string,
	guard func(current *entities.Order) error,
	buildPatch func(now time.Time, current *entities.Order) entities.OrderStatusPatch,
	after func(ctx context.Context, now time.Time, updated *entities.Order) error,
) (*entities.Order, error) {
	if id <= 0 {
		return nil, ErrInvalidOrderID
	}

	var (
		result     *entities.Order
		fromStatus entities.OrderStatusType
		changed    bool
	)
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		changed = false

		current, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if guard != nil {
			if err := guard(current); err != nil {
				return err
			}
		}

		if current.Status == target {
			result = current
			return nil
		}

		if !current.Status.CanTransitionTo(target) {
			return fmt.Errorf("%w: %s to %s", ErrInvalidStatusTransition, current.Status, target)
		}

		now := time.Now().UTC()
		var patch entities.OrderStatusPatch
		if buildPatch != nil {
			patch = buildPatch(now, current)
		}

		updated, err := s.repository.UpdateStatusGuarded(ctx, id, current.Status, target, patch)
		if err != nil {
			if errors.Is(err, ErrStatusNotMatched) {
				return fmt.Errorf("%w: order %d", ErrStateConflict, id)
			}

			return err
		}

		if err := s.repository.AppendHistory(ctx, entities.OrderStatusHistory{
			OrderID:          id,
			FromStatus:       current.Status,
			ToStatus:         target,
			ChangedByActorID: changedBy,
			Note:             note,
		}); err != nil {
			return err
		}

		if after != nil {
			if err := after(ctx, now, updated); err != nil {
				return err
			}
		}

		result = updated
		fromStatus = current.Status
		changed = true

		return nil
	})
	if err != nil {
		return nil, err
	}

	if changed {
		s.publishStatusChanged(ctx, result, fromStatus, target)
	}

	return result, nil
}

func (s *Order) publishStatusChanged(ctx context.Context, orderEntity *entities.Order, from, to entities.OrderStatusType) {
	// Delivery is best effort, the stats reconcile task repairs misses.
	_ = s.events.PublishOrderEvent(ctx, entities.OrderEvent{
		Type:            entities.EventOrderStatusChanged,
		OrderID:         orderEntity.ID,
		OrderCode:       orderEntity.OrderCode,
		OwnerActorID:    orderEntity.OwnerActorID,
		DriverActorID:   orderEntity.PrimaryDriverActorID,
		CustomerActorID: orderEntity.CustomerActorID,
		FromStatus:      from,
		ToStatus:        to,
		DriverPayment:   orderEntity.DriverPayment,
		OccurredAt:      time.Now().UTC(),
	})
}

func (s *Order) publishPaymentChanged(ctx context.Context, orderEntity *entities.Order, leg string, amount int64) {
	_ = s.events.PublishOrderEvent(ctx, entities.OrderEvent{
		Type:            entities.EventOrderPaymentChanged,
		OrderID:         orderEntity.ID,
		OrderCode:       orderEntity.OrderCode,
		OwnerActorID:    orderEntity.OwnerActorID,
		DriverActorID:   orderEntity.PrimaryDriverActorID,
		CustomerActorID: orderEntity.CustomerActorID,
		PaymentLeg:      leg,
		Amount:          amount,
		OccurredAt:      time.Now().UTC(),
	})
}

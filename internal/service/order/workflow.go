package order

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bidbinh/vnss-tms-sub009/internal/entities"
)

const (
	defaultSegmentNumber = 1
	defaultSegmentType   = "PRIMARY"
)

// SubmitOrder moves a draft into the dispatch queue.
func (s *Order) SubmitOrder(ctx context.Context, id int64, actorID *int64) (*entities.Order, error) {
	return s.transition(ctx, id, entities.OrderPending, actorID, "",
		func(current *entities.Order) error {
			if current.Status != entities.OrderDraft {
				return nil
			}

			return validateSubmittable(current)
		},
		func(now time.Time, _ *entities.Order) entities.OrderStatusPatch {
			return entities.OrderStatusPatch{SubmittedAt: &now}
		},
		nil,
	)
}

// AssignOrder attaches a driver, and optionally a vehicle, to a pending
// order. Repeating the call with the same driver is a no-op, a
// different driver on an already assigned order is a conflict.
func (s *Order) AssignOrder(ctx context.Context, id int64, assignment entities.OrderAssignment) (*entities.Order, error) {
	if assignment.DriverActorID <= 0 {
		return nil, fmt.Errorf("%w: driver_actor_id", ErrMissingRequiredFields)
	}

	driver, err := s.actorProvider.GetActor(ctx, assignment.DriverActorID)
	if err != nil {
		return nil, err
	}
	if driver.Status != entities.ActorActive {
		return nil, fmt.Errorf("%w: status %s", ErrDriverNotActive, driver.Status)
	}

	segmentNumber := assignment.SegmentNumber
	if segmentNumber <= 0 {
		segmentNumber = defaultSegmentNumber
	}
	segmentType := assignment.SegmentType
	if segmentType == "" {
		segmentType = defaultSegmentType
	}

	return s.transition(ctx, id, entities.OrderAssigned, assignment.ActorID,
		fmt.Sprintf("driver %d assigned", assignment.DriverActorID),
		func(current *entities.Order) error {
			if current.Status == entities.OrderAssigned {
				if current.PrimaryDriverActorID == nil || *current.PrimaryDriverActorID != assignment.DriverActorID {
					return fmt.Errorf("%w: order %d already assigned", ErrStateConflict, id)
				}

				return nil
			}

			if s.settings.EnforceAssignment && current.OwnerActorID != assignment.DriverActorID {
				linked, err := s.relationshipChecker.HasActiveAssignableRelationship(
					ctx, current.OwnerActorID, assignment.DriverActorID, s.settings.AssignableTypes,
				)
				if err != nil {
					return err
				}
				if !linked {
					return fmt.Errorf("%w: owner %d, driver %d",
						ErrNoAssignableRelationship, current.OwnerActorID, assignment.DriverActorID)
				}
			}

			return nil
		},
		func(now time.Time, _ *entities.Order) entities.OrderStatusPatch {
			return entities.OrderStatusPatch{
				AssignedAt:           &now,
				PrimaryDriverActorID: &assignment.DriverActorID,
				PrimaryVehicleID:     assignment.VehicleID,
			}
		},
		func(ctx context.Context, now time.Time, updated *entities.Order) error {
			return s.repository.UpsertSegment(ctx, entities.OrderSegment{
				OrderID:       updated.ID,
				SegmentNumber: segmentNumber,
				SegmentType:   segmentType,
				DriverActorID: assignment.DriverActorID,
				VehicleID:     assignment.VehicleID,
				AssignedAt:    now,
			})
		},
	)
}

// UnassignOrder returns an assigned order to the dispatch queue and
// clears the primary driver and vehicle.
func (s *Order) UnassignOrder(ctx context.Context, id int64, actorID *int64) (*entities.Order, error) {
	return s.transition(ctx, id, entities.OrderPending, actorID, "driver unassigned",
		nil,
		func(now time.Time, _ *entities.Order) entities.OrderStatusPatch {
			return entities.OrderStatusPatch{ClearAssignment: true}
		},
		nil,
	)
}

// AcceptOrder confirms the assignment. Only the assigned driver may
// accept.
func (s *Order) AcceptOrder(ctx context.Context, id int64, driverActorID int64) (*entities.Order, error) {
	if driverActorID <= 0 {
		return nil, ErrInvalidActorID
	}

	return s.transition(ctx, id, entities.OrderAccepted, &driverActorID, "",
		requireAssignedDriver(driverActorID),
		func(now time.Time, _ *entities.Order) entities.OrderStatusPatch {
			return entities.OrderStatusPatch{AcceptedAt: &now}
		},
		nil,
	)
}

// StartTransit marks the accepted order as moving.
func (s *Order) StartTransit(ctx context.Context, id int64, driverActorID int64) (*entities.Order, error) {
	if driverActorID <= 0 {
		return nil, ErrInvalidActorID
	}

	return s.transition(ctx, id, entities.OrderInTransit, &driverActorID, "",
		requireAssignedDriver(driverActorID),
		func(now time.Time, _ *entities.Order) entities.OrderStatusPatch {
			return entities.OrderStatusPatch{StartedAt: &now}
		},
		nil,
	)
}

// RecordPickup stamps the cargo pickup on an in-transit order. The
// status does not change and no history row is written.
func (s *Order) RecordPickup(ctx context.Context, id int64, driverActorID int64) (*entities.Order, error) {
	if id <= 0 {
		return nil, ErrInvalidOrderID
	}
	if driverActorID <= 0 {
		return nil, ErrInvalidActorID
	}

	var result *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if err := requireAssignedDriver(driverActorID)(current); err != nil {
			return err
		}
		if current.PickedUpAt != nil {
			result = current
			return nil
		}
		if current.Status != entities.OrderInTransit {
			return fmt.Errorf("%w: pickup in status %s", ErrStateConflict, current.Status)
		}

		now := time.Now().UTC()
		result, err = s.repository.UpdateStatusGuarded(ctx, id, current.Status, current.Status, entities.OrderStatusPatch{
			PickedUpAt: &now,
		})

		return err
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// DeliverOrder marks the cargo handed over at the destination.
func (s *Order) DeliverOrder(ctx context.Context, id int64, driverActorID int64) (*entities.Order, error) {
	if driverActorID <= 0 {
		return nil, ErrInvalidActorID
	}

	return s.transition(ctx, id, entities.OrderDelivered, &driverActorID, "",
		requireAssignedDriver(driverActorID),
		func(now time.Time, _ *entities.Order) entities.OrderStatusPatch {
			return entities.OrderStatusPatch{DeliveredAt: &now}
		},
		nil,
	)
}

// CompleteOrder closes a delivered order. Completion is what feeds the
// relationship counters downstream.
func (s *Order) CompleteOrder(ctx context.Context, id int64, actorID *int64) (*entities.Order, error) {
	return s.transition(ctx, id, entities.OrderCompleted, actorID, "",
		func(current *entities.Order) error {
			if current.Status == entities.OrderCompleted {
				return nil
			}
			if s.settings.CompleteRequiresDriverPaid &&
				current.PrimaryDriverActorID != nil &&
				current.DriverPaymentStatus != entities.PaymentPaid {
				return ErrDriverNotPaid
			}

			return nil
		},
		func(now time.Time, _ *entities.Order) entities.OrderStatusPatch {
			return entities.OrderStatusPatch{CompletedAt: &now}
		},
		nil,
	)
}

// CancelOrder aborts the workflow from any non-terminal status. The
// reason is mandatory and lands in the history row.
func (s *Order) CancelOrder(ctx context.Context, id int64, reason string, actorID *int64) (*entities.Order, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, ErrReasonRequired
	}

	return s.transition(ctx, id, entities.OrderCancelled, actorID, reason,
		nil,
		func(now time.Time, _ *entities.Order) entities.OrderStatusPatch {
			return entities.OrderStatusPatch{CancelledAt: &now, CancelledReason: &reason}
		},
		nil,
	)
}

// HoldOrder pauses the workflow, remembering the current status for
// resume.
func (s *Order) HoldOrder(ctx context.Context, id int64, actorID *int64) (*entities.Order, error) {
	return s.transition(ctx, id, entities.OrderOnHold, actorID, "",
		nil,
		func(now time.Time, current *entities.Order) entities.OrderStatusPatch {
			heldFrom := current.Status

			return entities.OrderStatusPatch{HeldAt: &now, HeldFromStatus: &heldFrom}
		},
		nil,
	)
}

// ResumeOrder returns a held order to the status it was paused in.
func (s *Order) ResumeOrder(ctx context.Context, id int64, actorID *int64) (*entities.Order, error) {
	if id <= 0 {
		return nil, ErrInvalidOrderID
	}

	var (
		result *entities.Order
		target entities.OrderStatusType
	)
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if current.Status != entities.OrderOnHold {
			return fmt.Errorf("%w: status %s", ErrNotOnHold, current.Status)
		}
		if current.HeldFromStatus == nil {
			return fmt.Errorf("%w: pre-hold status missing", ErrNotOnHold)
		}

		target = *current.HeldFromStatus
		result, err = s.repository.UpdateStatusGuarded(ctx, id, entities.OrderOnHold, target, entities.OrderStatusPatch{
			ClearHold: true,
		})
		if err != nil {
			return err
		}

		return s.repository.AppendHistory(ctx, entities.OrderStatusHistory{
			OrderID:          id,
			FromStatus:       entities.OrderOnHold,
			ToStatus:         target,
			ChangedByActorID: actorID,
		})
	})
	if err != nil {
		return nil, err
	}

	s.publishStatusChanged(ctx, result, entities.OrderOnHold, target)

	return result, nil
}

func requireAssignedDriver(driverActorID int64) func(current *entities.Order) error {
	return func(current *entities.Order) error {
		if current.PrimaryDriverActorID == nil || *current.PrimaryDriverActorID != driverActorID {
			return fmt.Errorf("%w: actor %d", ErrNotAssignedDriver, driverActorID)
		}

		return nil
	}
}

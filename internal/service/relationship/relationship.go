package relationship

import (
	"context"
	"fmt"

	"github.com/bidbinh/vnss-tms-sub009/internal/entities"
)

type Relationship struct {
	repository      Repository
	actorProvider   ActorProvider
	txManager       TxManager
	autoAcceptTypes map[string]struct{}
}

// New builds the relationship service. autoAcceptTypes lists the
// relationship types created directly in ACTIVE status, skipping the
// PENDING handshake.
func New(repository Repository, actorProvider ActorProvider, txManager TxManager, autoAcceptTypes []string) *Relationship {
	autoAccept := make(map[string]struct{}, len(autoAcceptTypes))
	for _, relationshipType := range autoAcceptTypes {
		autoAccept[relationshipType] = struct{}{}
	}

	return &Relationship{
		repository:      repository,
		actorProvider:   actorProvider,
		txManager:       txManager,
		autoAcceptTypes: autoAccept,
	}
}

func (s *Relationship) CreateRelationship(ctx context.Context, actorID int64, relationshipModifyEntity entities.RelationshipModify) (*entities.Relationship, error) {
	if actorID <= 0 {
		return nil, ErrInvalidActorID
	}
	if relationshipModifyEntity.RelatedActorID == nil {
		return nil, fmt.Errorf("%w: related_actor_id", ErrMissingRequiredFields)
	}
	if relationshipModifyEntity.Type == nil || !isValidType(*relationshipModifyEntity.Type) {
		return nil, fmt.Errorf("%w: type", ErrMissingRequiredFields)
	}

	relatedActorID := *relationshipModifyEntity.RelatedActorID
	if relatedActorID == actorID {
		return nil, ErrSelfRelationship
	}

	for _, id := range []int64{actorID, relatedActorID} {
		actorEntity, err := s.actorProvider.GetActor(ctx, id)
		if err != nil {
			return nil, err
		}
		if actorEntity.Status != entities.ActorActive {
			return nil, fmt.Errorf("%w: actor %d is %s", ErrActorNotActive, id, actorEntity.Status)
		}
	}

	initialStatus := entities.DefaultRelationshipStatus
	if _, ok := s.autoAcceptTypes[*relationshipModifyEntity.Type]; ok {
		initialStatus = entities.RelationshipActive
	}

	relationshipModifyEntity.ActorID = &actorID
	relationshipModifyEntity.Status = &initialStatus

	return s.repository.Create(ctx, relationshipModifyEntity)
}

func (s *Relationship) GetRelationship(ctx context.Context, actorID, id int64) (*entities.Relationship, error) {
	if actorID <= 0 {
		return nil, ErrInvalidActorID
	}
	if id <= 0 {
		return nil, ErrInvalidRelationshipID
	}

	return s.repository.GetByIDForActor(ctx, id, actorID)
}

func (s *Relationship) ListRelationships(ctx context.Context, actorID int64, filter entities.RelationshipFilter) ([]entities.Relationship, error) {
	if actorID <= 0 {
		return nil, ErrInvalidActorID
	}
	if filter.Direction == "" {
		filter.Direction = entities.DirectionBoth
	}
	if filter.Status != nil && !isValidStatus(*filter.Status) {
		return nil, ErrInvalidStatus
	}

	return s.repository.ListByActor(ctx, actorID, filter)
}

func (s *Relationship) UpdateRelationship(ctx context.Context, actorID, id int64, relationshipModifyEntity entities.RelationshipModify) (*entities.Relationship, error) {
	if actorID <= 0 {
		return nil, ErrInvalidActorID
	}
	if id <= 0 {
		return nil, ErrInvalidRelationshipID
	}
	if relationshipModifyEntity.Status != nil && !isValidStatus(*relationshipModifyEntity.Status) {
		return nil, ErrInvalidStatus
	}

	var updated *entities.Relationship
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByIDForActor(ctx, id, actorID)
		if err != nil {
			return err
		}

		if current.Status.IsTerminal() && hasAttributeChanges(relationshipModifyEntity) {
			return ErrRelationshipTerminal
		}

		if relationshipModifyEntity.Status != nil {
			target := *relationshipModifyEntity.Status
			if !current.Status.CanTransitionTo(target) {
				return fmt.Errorf("%w: %s to %s", ErrInvalidStatusTransition, current.Status, target)
			}
			// Answering a PENDING request is reserved for the actor the
			// request was sent to.
			if current.Status == entities.RelationshipPending && target != current.Status && actorID != current.RelatedActorID {
				return ErrNotRelationshipTarget
			}
			if target == current.Status {
				relationshipModifyEntity.Status = nil
			}
		}

		relationshipModifyEntity.ID = &id
		relationshipModifyEntity.ActorID = nil
		relationshipModifyEntity.RelatedActorID = nil

		updated, err = s.repository.Update(ctx, relationshipModifyEntity)

		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteRelationship removes an edge that never became active: a
// pending request withdrawn by either side, or a declined one cleaned
// up. Active history is kept via TERMINATED instead.
func (s *Relationship) DeleteRelationship(ctx context.Context, actorID, id int64) error {
	if actorID <= 0 {
		return ErrInvalidActorID
	}
	if id <= 0 {
		return ErrInvalidRelationshipID
	}

	return s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByIDForActor(ctx, id, actorID)
		if err != nil {
			return err
		}

		if current.Status != entities.RelationshipPending && current.Status != entities.RelationshipDeclined {
			return fmt.Errorf("%w: status %s", ErrNotDeletable, current.Status)
		}

		return s.repository.Delete(ctx, id)
	})
}

func (s *Relationship) ListEmployees(ctx context.Context, actorID int64) ([]entities.Relationship, error) {
	return s.listProjection(ctx, actorID, entities.DirectionOutgoing, entities.RelationshipEmployment, entities.RelationshipActive)
}

func (s *Relationship) ListEmployers(ctx context.Context, actorID int64) ([]entities.Relationship, error) {
	return s.listProjection(ctx, actorID, entities.DirectionIncoming, entities.RelationshipEmployment, entities.RelationshipActive)
}

func (s *Relationship) ListConnections(ctx context.Context, actorID int64) ([]entities.Relationship, error) {
	return s.listProjection(ctx, actorID, entities.DirectionBoth, entities.RelationshipConnection, entities.RelationshipActive)
}

func (s *Relationship) ListPendingRequests(ctx context.Context, actorID int64) ([]entities.Relationship, error) {
	if actorID <= 0 {
		return nil, ErrInvalidActorID
	}

	pending := entities.RelationshipPending

	return s.repository.ListByActor(ctx, actorID, entities.RelationshipFilter{
		Direction: entities.DirectionIncoming,
		Status:    &pending,
	})
}

func (s *Relationship) listProjection(ctx context.Context, actorID int64, direction entities.RelationshipDirection, relationshipType string, status entities.RelationshipStatusType) ([]entities.Relationship, error) {
	if actorID <= 0 {
		return nil, ErrInvalidActorID
	}

	return s.repository.ListByActor(ctx, actorID, entities.RelationshipFilter{
		Direction: direction,
		Type:      &relationshipType,
		Status:    &status,
	})
}

// HasActiveAssignableRelationship reports whether an ACTIVE edge of one
// of the given types links the two actors in either direction.
func (s *Relationship) HasActiveAssignableRelationship(ctx context.Context, actorID, relatedActorID int64, types []string) (bool, error) {
	if actorID <= 0 || relatedActorID <= 0 {
		return false, ErrInvalidActorID
	}

	return s.repository.ExistsActiveBetween(ctx, actorID, relatedActorID, types)
}

// ApplyOrderCompleted moves a completed order into the pair's counters:
// one more completed order, its driver payment added to the pending
// total. Counters only grow, the reconcile task repairs drift.
func (s *Relationship) ApplyOrderCompleted(ctx context.Context, ownerActorID, driverActorID, driverPayment int64) error {
	delta := entities.RelationshipStatsDelta{OrdersCompleted: 1, AmountPending: driverPayment}
	_, err := s.repository.ApplyStatsDelta(ctx, ownerActorID, driverActorID, delta)

	return err
}

func (s *Relationship) ApplyDriverPayment(ctx context.Context, ownerActorID, driverActorID, amount int64) error {
	delta := entities.RelationshipStatsDelta{AmountPaid: amount}
	_, err := s.repository.ApplyStatsDelta(ctx, ownerActorID, driverActorID, delta)

	return err
}

func (s *Relationship) ApplyCustomerPayment(ctx context.Context, ownerActorID, customerActorID, amount int64) error {
	delta := entities.RelationshipStatsDelta{AmountPaid: amount}
	_, err := s.repository.ApplyStatsDelta(ctx, ownerActorID, customerActorID, delta)

	return err
}

// ReconcileStats recomputes the aggregate counters from the order
// table. Event delivery is at-least-once and best-effort, this is the
// repair path.
func (s *Relationship) ReconcileStats(ctx context.Context) (int64, error) {
	var corrected int64
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		corrected, err = s.repository.ReconcileStats(ctx)

		return err
	})

	return corrected, err
}

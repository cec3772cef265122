package actor

import (
	"context"
	"fmt"

	"github.com/bidbinh/vnss-tms-sub009/internal/entities"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

type Actor struct {
	repository     Repository
	orderCounter   OrderCounter
	txManager      TxManager
	defaultCountry string
}

func New(repository Repository, orderCounter OrderCounter, txManager TxManager, defaultCountry string) *Actor {
	return &Actor{
		repository:     repository,
		orderCounter:   orderCounter,
		txManager:      txManager,
		defaultCountry: defaultCountry,
	}
}

func (s *Actor) CreateActor(ctx context.Context, actorModifyEntity entities.ActorModify) (*entities.Actor, error) {
	if actorModifyEntity.Name == nil {
		return nil, fmt.Errorf("%w: name", ErrMissingRequiredFields)
	}
	if !isValidName(*actorModifyEntity.Name) {
		return nil, ErrInvalidName
	}

	if actorModifyEntity.Type == nil {
		defaultType := entities.DefaultActorType
		actorModifyEntity.Type = &defaultType
	} else if !isValidType(*actorModifyEntity.Type) {
		return nil, ErrInvalidType
	}

	if actorModifyEntity.Status == nil {
		defaultStatus := entities.DefaultActorStatus
		actorModifyEntity.Status = &defaultStatus
	} else if !isValidStatus(*actorModifyEntity.Status) || *actorModifyEntity.Status == entities.ActorDeleted {
		return nil, ErrInvalidStatus
	}

	if actorModifyEntity.Country == nil && s.defaultCountry != "" {
		country := s.defaultCountry
		actorModifyEntity.Country = &country
	}

	return s.repository.Create(ctx, actorModifyEntity)
}

func (s *Actor) GetActor(ctx context.Context, id int64) (*entities.Actor, error) {
	if id <= 0 {
		return nil, ErrInvalidActorID
	}

	actorEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if actorEntity.Status == entities.ActorDeleted {
		return nil, ErrActorNotFound
	}

	return actorEntity, nil
}

func (s *Actor) ListActors(ctx context.Context, filter entities.ActorFilter) ([]entities.Actor, error) {
	if filter.Type != nil && !isValidType(*filter.Type) {
		return nil, ErrInvalidType
	}
	if filter.Status != nil && !isValidStatus(*filter.Status) {
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

func (s *Actor) UpdateActor(ctx context.Context, actorModifyEntity entities.ActorModify) (*entities.Actor, error) {
	if actorModifyEntity.ID == nil || *actorModifyEntity.ID <= 0 {
		return nil, ErrInvalidActorID
	}
	if actorModifyEntity.Name != nil && !isValidName(*actorModifyEntity.Name) {
		return nil, ErrInvalidName
	}
	if actorModifyEntity.Status != nil {
		if !isValidStatus(*actorModifyEntity.Status) || *actorModifyEntity.Status == entities.ActorDeleted {
			return nil, ErrInvalidStatus
		}
	}

	var updated *entities.Actor
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.GetActor(ctx, *actorModifyEntity.ID)
		if err != nil {
			return err
		}

		if actorModifyEntity.Type != nil && *actorModifyEntity.Type != current.Type {
			return ErrTypeImmutable
		}
		actorModifyEntity.Type = nil

		updated, err = s.repository.Update(ctx, actorModifyEntity)

		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteActor marks the actor DELETED. The record stays referencable
// from relationships and order history.
func (s *Actor) DeleteActor(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidActorID
	}

	return s.txManager.Do(ctx, func(ctx context.Context) error {
		if _, err := s.GetActor(ctx, id); err != nil {
			return err
		}

		activeOrders, err := s.orderCounter.CountActiveByOwner(ctx, id)
		if err != nil {
			return err
		}
		if activeOrders > 0 {
			return fmt.Errorf("%w: %d active orders", ErrActorHasActiveWork, activeOrders)
		}

		deletedStatus := entities.ActorDeleted
		_, err = s.repository.Update(ctx, entities.ActorModify{
			ID:     &id,
			Status: &deletedStatus,
		})

		return err
	})
}

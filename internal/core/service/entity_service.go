package service

import (
	"context"

	"gitlab.com/s.izotov81/orderdesk/internal/core/entity"
	"gitlab.com/s.izotov81/orderdesk/internal/core/repository"
)

var ErrNotFound = repository.ErrNotFound

// EntityService CRUD для одного типа сущности. Для заказов входные данные
// проходят через entity.CoerceDates перед созданием и обновлением.
type EntityService[T entity.Entity] struct {
	repo      repository.Repository[T]
	construct func(data map[string]any) (T, error)
	prepare   func(data map[string]any) (map[string]any, error)
}

func newEntityService[T entity.Entity](repo repository.Repository[T], construct func(map[string]any) (T, error)) *EntityService[T] {
	return &EntityService[T]{
		repo:      repo,
		construct: construct,
		prepare:   func(data map[string]any) (map[string]any, error) { return data, nil },
	}
}

func NewUserService(repo repository.Repository[*entity.User]) *EntityService[*entity.User] {
	return newEntityService(repo, entity.NewUser)
}

func NewOfferService(repo repository.Repository[*entity.Offer]) *EntityService[*entity.Offer] {
	return newEntityService(repo, entity.NewOffer)
}

func (s *EntityService[T]) Create(ctx context.Context, data map[string]any) (T, error) {
	var zero T

	data, err := s.prepare(data)
	if err != nil {
		return zero, err
	}

	e, err := s.construct(data)
	if err != nil {
		return zero, err
	}

	return s.repo.Create(ctx, e)
}

func (s *EntityService[T]) Get(ctx context.Context, id int) (T, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *EntityService[T]) List(ctx context.Context) ([]T, error) {
	return s.repo.List(ctx)
}

func (s *EntityService[T]) Update(ctx context.Context, id int, partial map[string]any) (T, error) {
	partial, err := s.prepare(partial)
	if err != nil {
		var zero T
		return zero, err
	}

	return s.repo.Update(ctx, id, partial)
}

func (s *EntityService[T]) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

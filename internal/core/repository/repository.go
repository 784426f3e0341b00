package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"gitlab.com/s.izotov81/orderdesk/internal/core/entity"
	"gitlab.com/s.izotov81/orderdesk/internal/infrastructure/db/adapter"
)

var ErrNotFound = errors.New("not found")

// Repository CRUD-операции над одной таблицей
type Repository[T entity.Entity] interface {
	Create(ctx context.Context, e T) (T, error)
	GetByID(ctx context.Context, id int) (T, error)
	List(ctx context.Context) ([]T, error)
	Update(ctx context.Context, id int, partial map[string]any) (T, error)
	Delete(ctx context.Context, id int) error
}

type sqlRepository[T entity.Entity] struct {
	adapter   *adapter.SQLAdapter
	tx        adapter.Transactor
	newEntity func() T
	table     string
	columns   []string
}

func newSQLRepository[T entity.Entity](a *adapter.SQLAdapter, tx adapter.Transactor, newEntity func() T) *sqlRepository[T] {
	proto := newEntity()
	return &sqlRepository[T]{
		adapter:   a,
		tx:        tx,
		newEntity: newEntity,
		table:     proto.Table(),
		columns:   proto.Columns(),
	}
}

func NewUserRepository(a *adapter.SQLAdapter, tx adapter.Transactor) Repository[*entity.User] {
	return newSQLRepository(a, tx, func() *entity.User { return &entity.User{} })
}

func NewOfferRepository(a *adapter.SQLAdapter, tx adapter.Transactor) Repository[*entity.Offer] {
	return newSQLRepository(a, tx, func() *entity.Offer { return &entity.Offer{} })
}

func (r *sqlRepository[T]) Create(ctx context.Context, e T) (T, error) {
	err := r.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		return insert(ctx, r.adapter, e)
	})
	if err != nil {
		var zero T
		return zero, fmt.Errorf("failed to create %s: %w", r.table, err)
	}
	return e, nil
}

func (r *sqlRepository[T]) GetByID(ctx context.Context, id int) (T, error) {
	e := r.newEntity()
	err := r.adapter.Get(ctx, e, r.table, r.columns, adapter.Condition{Equal: sq.Eq{"id": id}})
	if err != nil {
		var zero T
		if errors.Is(err, adapter.ErrRecordNotFound) {
			return zero, fmt.Errorf("%s %d: %w", r.table, id, ErrNotFound)
		}
		return zero, fmt.Errorf("failed to get %s: %w", r.table, err)
	}
	return e, nil
}

func (r *sqlRepository[T]) List(ctx context.Context) ([]T, error) {
	items := []T{}
	if err := r.adapter.List(ctx, &items, r.table, r.columns, adapter.Condition{}); err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", r.table, err)
	}
	return items, nil
}

// Update читает строку с блокировкой, применяет partial и сохраняет все поля
func (r *sqlRepository[T]) Update(ctx context.Context, id int, partial map[string]any) (T, error) {
	e := r.newEntity()
	err := r.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		q := r.adapter.Builder().
			Select(r.columns...).
			From(r.table).
			Where(sq.Eq{"id": id}).
			Suffix("FOR UPDATE")
		if err := r.adapter.GetOne(ctx, e, q); err != nil {
			if errors.Is(err, adapter.ErrRecordNotFound) {
				return fmt.Errorf("%s %d: %w", r.table, id, ErrNotFound)
			}
			return err
		}

		if err := e.Update(partial); err != nil {
			return err
		}

		_, err := r.adapter.Update(ctx, r.table, e.FlatMap().Without("id").Map(), adapter.Condition{Equal: sq.Eq{"id": id}})
		return err
	})
	if err != nil {
		var zero T
		return zero, fmt.Errorf("failed to update %s: %w", r.table, err)
	}
	return e, nil
}

// Delete идемпотентен: отсутствие строки не является ошибкой
func (r *sqlRepository[T]) Delete(ctx context.Context, id int) error {
	err := r.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		_, err := r.adapter.Delete(ctx, r.table, adapter.Condition{Equal: sq.Eq{"id": id}})
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", r.table, err)
	}
	return nil
}

func insert(ctx context.Context, a *adapter.SQLAdapter, e entity.Entity) error {
	id, err := a.Create(ctx, e.Table(), e.FlatMap().Without("id").Map())
	if err != nil {
		return err
	}
	e.SetID(id)
	return nil
}

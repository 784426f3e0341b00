package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"gitlab.com/s.izotov81/orderdesk/internal/core/entity"
	"gitlab.com/s.izotov81/orderdesk/internal/infrastructure/db/adapter"
)

type OrderRepository interface {
	Repository[*entity.Order]
	GetDetail(ctx context.Context, id int) (entity.OrderDetail, error)
}

type orderRepository struct {
	*sqlRepository[*entity.Order]
}

func NewOrderRepository(a *adapter.SQLAdapter, tx adapter.Transactor) OrderRepository {
	return &orderRepository{
		sqlRepository: newSQLRepository(a, tx, func() *entity.Order { return &entity.Order{} }),
	}
}

// GetDetail соединяет заказ с users дважды: по customer_id и по executor_id.
// Если заказа нет или одна из ссылок пуста/висит, возвращается ErrNotFound.
func (r *orderRepository) GetDetail(ctx context.Context, id int) (entity.OrderDetail, error) {
	q := r.adapter.Builder().
		Select(
			"o.id",
			"o.description",
			"c.last_name AS customer_name",
			"e.last_name AS executor_name",
		).
		From("orders o").
		Join("users c ON c.id = o.customer_id").
		Join("users e ON e.id = o.executor_id").
		Where(sq.Eq{"o.id": id})

	var detail entity.OrderDetail
	if err := r.adapter.GetOne(ctx, &detail, q); err != nil {
		if errors.Is(err, adapter.ErrRecordNotFound) {
			return entity.OrderDetail{}, fmt.Errorf("order %d with customer and executor: %w", id, ErrNotFound)
		}
		return entity.OrderDetail{}, fmt.Errorf("failed to get order detail: %w", err)
	}
	return detail, nil
}

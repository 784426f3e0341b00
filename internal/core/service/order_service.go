package service

import (
	"context"

	"gitlab.com/s.izotov81/orderdesk/internal/core/entity"
	"gitlab.com/s.izotov81/orderdesk/internal/core/repository"
)

type OrderService struct {
	*EntityService[*entity.Order]
	repo repository.OrderRepository
}

func NewOrderService(repo repository.OrderRepository) *OrderService {
	base := newEntityService[*entity.Order](repo, entity.NewOrder)
	base.prepare = entity.CoerceDates

	return &OrderService{
		EntityService: base,
		repo:          repo,
	}
}

// GetDetail заказ с фамилиями заказчика и исполнителя
func (s *OrderService) GetDetail(ctx context.Context, id int) (entity.OrderDetail, error) {
	return s.repo.GetDetail(ctx, id)
}

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gitlab.com/s.izotov81/orderdesk/internal/core/entity"
	"gitlab.com/s.izotov81/orderdesk/internal/core/repository"
)

// MockRepository implements repository.Repository[T]
type MockRepository[T entity.Entity] struct {
	mock.Mock
}

func (m *MockRepository[T]) Create(ctx context.Context, e T) (T, error) {
	args := m.Called(ctx, e)
	if args.Get(0) == nil {
		var zero T
		return zero, args.Error(1)
	}
	return args.Get(0).(T), args.Error(1)
}

func (m *MockRepository[T]) GetByID(ctx context.Context, id int) (T, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		var zero T
		return zero, args.Error(1)
	}
	return args.Get(0).(T), args.Error(1)
}

func (m *MockRepository[T]) List(ctx context.Context) ([]T, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockRepository[T]) Update(ctx context.Context, id int, partial map[string]any) (T, error) {
	args := m.Called(ctx, id, partial)
	if args.Get(0) == nil {
		var zero T
		return zero, args.Error(1)
	}
	return args.Get(0).(T), args.Error(1)
}

func (m *MockRepository[T]) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockOrderRepository implements repository.OrderRepository
type MockOrderRepository struct {
	MockRepository[*entity.Order]
}

func (m *MockOrderRepository) GetDetail(ctx context.Context, id int) (entity.OrderDetail, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(entity.OrderDetail), args.Error(1)
}

var _ repository.OrderRepository = (*MockOrderRepository)(nil)

func TestUserService_Create(t *testing.T) {
	repo := new(MockRepository[*entity.User])
	svc := NewUserService(repo)
	ctx := context.Background()

	expectedUser := &entity.User{FirstName: "Jake", LastName: "Smith", Age: 41}
	repo.On("Create", ctx, expectedUser).Return(&entity.User{ID: 1, FirstName: "Jake", LastName: "Smith", Age: 41}, nil)

	u, err := svc.Create(ctx, map[string]any{
		"first_name": "Jake",
		"last_name":  "Smith",
		"age":        json.Number("41"),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, u.ID)
	repo.AssertExpectations(t)
}

func TestUserService_Create_InvalidData(t *testing.T) {
	repo := new(MockRepository[*entity.User])
	svc := NewUserService(repo)

	_, err := svc.Create(context.Background(), map[string]any{"id": 5, "last_name": "Smith"})
	assert.ErrorIs(t, err, entity.ErrReadOnlyField)

	_, err = svc.Create(context.Background(), map[string]any{"salary": 100})
	assert.ErrorIs(t, err, entity.ErrUnknownField)

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_Get_NotFound(t *testing.T) {
	repo := new(MockRepository[*entity.User])
	svc := NewUserService(repo)
	ctx := context.Background()

	repo.On("GetByID", ctx, 42).Return(nil, fmt.Errorf("users 42: %w", repository.ErrNotFound))

	_, err := svc.Get(ctx, 42)
	assert.ErrorIs(t, err, ErrNotFound)
	repo.AssertExpectations(t)
}

func TestOfferService_ListAndDelete(t *testing.T) {
	repo := new(MockRepository[*entity.Offer])
	svc := NewOfferService(repo)
	ctx := context.Background()

	repo.On("List", ctx).Return([]*entity.Offer{{ID: 1}, {ID: 2}}, nil)
	repo.On("Delete", ctx, 2).Return(nil)

	offers, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, offers, 2)

	require.NoError(t, svc.Delete(ctx, 2))
	repo.AssertExpectations(t)
}

func TestUserService_Update_PassesPartialThrough(t *testing.T) {
	repo := new(MockRepository[*entity.User])
	svc := NewUserService(repo)
	ctx := context.Background()

	partial := map[string]any{"phone": "2148134853"}
	repo.On("Update", ctx, 2, partial).Return(&entity.User{ID: 2, Phone: "2148134853"}, nil)

	u, err := svc.Update(ctx, 2, partial)
	require.NoError(t, err)
	assert.Equal(t, "2148134853", u.Phone)
	repo.AssertExpectations(t)
}

func TestOrderService_Create_CoercesDates(t *testing.T) {
	repo := new(MockOrderRepository)
	svc := NewOrderService(repo)
	ctx := context.Background()

	repo.On("Create", ctx, mock.MatchedBy(func(o *entity.Order) bool {
		return o.StartDate == entity.Date{Year: 2013, Month: time.February, Day: 8} && o.EndDate.IsZero()
	})).Return(&entity.Order{ID: 1}, nil)

	_, err := svc.Create(ctx, map[string]any{
		"name":       "Встретить тетю на вокзале",
		"start_date": "02/08/2013",
		"end_date":   nil,
	})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestOrderService_Update_MalformedDate(t *testing.T) {
	repo := new(MockOrderRepository)
	svc := NewOrderService(repo)

	_, err := svc.Update(context.Background(), 1, map[string]any{"end_date": "2055-03-08"})
	assert.ErrorIs(t, err, entity.ErrMalformedDate)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderService_Update_CoercesDates(t *testing.T) {
	repo := new(MockOrderRepository)
	svc := NewOrderService(repo)
	ctx := context.Background()

	repo.On("Update", ctx, 1, map[string]any{"end_date": entity.Date{Year: 2055, Month: time.March, Day: 8}}).
		Return(&entity.Order{ID: 1}, nil)

	_, err := svc.Update(ctx, 1, map[string]any{"end_date": "03/08/2055"})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestOrderService_GetDetail(t *testing.T) {
	repo := new(MockOrderRepository)
	svc := NewOrderService(repo)
	ctx := context.Background()

	detail := entity.OrderDetail{ID: 1, Description: "d", CustomerName: "Smith", ExecutorName: "Jones"}
	repo.On("GetDetail", ctx, 1).Return(detail, nil)
	repo.On("GetDetail", ctx, 2).Return(entity.OrderDetail{}, repository.ErrNotFound)

	got, err := svc.GetDetail(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, detail, got)

	_, err = svc.GetDetail(ctx, 2)
	assert.True(t, errors.Is(err, ErrNotFound))
}

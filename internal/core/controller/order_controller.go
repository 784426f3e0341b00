package controller

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"gitlab.com/s.izotov81/orderdesk/internal/core/entity"
	"gitlab.com/s.izotov81/orderdesk/pkg/responder"
)

type OrderService interface {
	EntityService[*entity.Order]
	GetDetail(ctx context.Context, id int) (entity.OrderDetail, error)
}

// OrderController CRUD заказов; GET /orders/{id} отдает проекцию с
// фамилиями заказчика и исполнителя вместо плоского заказа.
type OrderController struct {
	*CRUDController[*entity.Order]
	orders OrderService
}

func NewOrderController(orders OrderService, responder responder.Responder, log *zap.Logger) *OrderController {
	return &OrderController{
		CRUDController: NewCRUDController[*entity.Order](orders, responder, log),
		orders:         orders,
	}
}

// GetDetail godoc
// @Summary Get order with customer and executor names
// @Tags orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} entity.OrderDetail
// @Failure 400 {object} responder.ErrorResponse
// @Failure 404 {object} responder.ErrorResponse
// @Failure 500 {object} responder.ErrorResponse
// @Router /orders/{id} [get]
func (c *OrderController) GetDetail(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(c.responder, c.log, w, r, err)
		return
	}

	detail, err := c.orders.GetDetail(r.Context(), id)
	if err != nil {
		writeError(c.responder, c.log, w, r, err)
		return
	}

	c.responder.Respond(w, http.StatusOK, detail)
}

package controller

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"gitlab.com/s.izotov81/orderdesk/internal/core/entity"
	"gitlab.com/s.izotov81/orderdesk/pkg/responder"
)

type EntityService[T entity.Entity] interface {
	Create(ctx context.Context, data map[string]any) (T, error)
	Get(ctx context.Context, id int) (T, error)
	List(ctx context.Context) ([]T, error)
	Update(ctx context.Context, id int, partial map[string]any) (T, error)
	Delete(ctx context.Context, id int) error
}

// CRUDController обработчики /{collection} и /{collection}/{id}
type CRUDController[T entity.Entity] struct {
	service   EntityService[T]
	responder responder.Responder
	log       *zap.Logger
}

func NewCRUDController[T entity.Entity](service EntityService[T], responder responder.Responder, log *zap.Logger) *CRUDController[T] {
	return &CRUDController[T]{
		service:   service,
		responder: responder,
		log:       log,
	}
}

// List godoc
// @Summary List entities
// @Description Returns every row of the collection ordered by id
// @Tags crud
// @Produce json
// @Success 200 {array} object
// @Failure 500 {object} responder.ErrorResponse
// @Router /users [get]
// @Router /orders [get]
// @Router /offers [get]
func (c *CRUDController[T]) List(w http.ResponseWriter, r *http.Request) {
	items, err := c.service.List(r.Context())
	if err != nil {
		writeError(c.responder, c.log, w, r, err)
		return
	}

	out := make([]entity.FlatMap, len(items))
	for i, item := range items {
		out[i] = item.FlatMap()
	}
	c.responder.Respond(w, http.StatusOK, out)
}

// Create godoc
// @Summary Create entity
// @Description Creates a row from a flat JSON object. Unknown fields are rejected, dates use MM/DD/YYYY.
// @Tags crud
// @Accept json
// @Produce json
// @Param request body object true "Flat entity fields without id"
// @Success 201 {object} object
// @Failure 400 {object} responder.ErrorResponse
// @Failure 500 {object} responder.ErrorResponse
// @Router /users [post]
// @Router /orders [post]
// @Router /offers [post]
func (c *CRUDController[T]) Create(w http.ResponseWriter, r *http.Request) {
	data, err := c.responder.DecodeObject(r)
	if err != nil {
		writeError(c.responder, c.log, w, r, err)
		return
	}

	created, err := c.service.Create(r.Context(), data)
	if err != nil {
		writeError(c.responder, c.log, w, r, err)
		return
	}

	c.responder.Respond(w, http.StatusCreated, created.FlatMap())
}

// Get godoc
// @Summary Get entity by ID
// @Tags crud
// @Produce json
// @Param id path int true "Entity ID"
// @Success 200 {object} object
// @Failure 400 {object} responder.ErrorResponse
// @Failure 404 {object} responder.ErrorResponse
// @Failure 500 {object} responder.ErrorResponse
// @Router /users/{id} [get]
// @Router /offers/{id} [get]
func (c *CRUDController[T]) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(c.responder, c.log, w, r, err)
		return
	}

	item, err := c.service.Get(r.Context(), id)
	if err != nil {
		writeError(c.responder, c.log, w, r, err)
		return
	}

	c.responder.Respond(w, http.StatusOK, item.FlatMap())
}

// Update godoc
// @Summary Update entity
// @Description Overwrites only the supplied fields
// @Tags crud
// @Accept json
// @Produce json
// @Param id path int true "Entity ID"
// @Param request body object true "Fields to change"
// @Success 200 {object} object
// @Failure 400 {object} responder.ErrorResponse
// @Failure 404 {object} responder.ErrorResponse
// @Failure 500 {object} responder.ErrorResponse
// @Router /users/{id} [put]
// @Router /orders/{id} [put]
// @Router /offers/{id} [put]
func (c *CRUDController[T]) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(c.responder, c.log, w, r, err)
		return
	}

	partial, err := c.responder.DecodeObject(r)
	if err != nil {
		writeError(c.responder, c.log, w, r, err)
		return
	}

	updated, err := c.service.Update(r.Context(), id, partial)
	if err != nil {
		writeError(c.responder, c.log, w, r, err)
		return
	}

	c.responder.Respond(w, http.StatusOK, updated.FlatMap())
}

// Delete godoc
// @Summary Delete entity
// @Description Idempotent: deleting a missing id also returns 204
// @Tags crud
// @Param id path int true "Entity ID"
// @Success 204 "No Content"
// @Failure 400 {object} responder.ErrorResponse
// @Failure 500 {object} responder.ErrorResponse
// @Router /users/{id} [delete]
// @Router /orders/{id} [delete]
// @Router /offers/{id} [delete]
func (c *CRUDController[T]) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(c.responder, c.log, w, r, err)
		return
	}

	if err := c.service.Delete(r.Context(), id); err != nil {
		writeError(c.responder, c.log, w, r, err)
		return
	}

	c.responder.Respond(w, http.StatusNoContent, nil)
}

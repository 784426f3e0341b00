package controller

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"gitlab.com/s.izotov81/orderdesk/internal/core/service"
	"gitlab.com/s.izotov81/orderdesk/pkg/responder"
)

type AdminService interface {
	CreateAll(ctx context.Context) (service.SeedResult, error)
	DropAll(ctx context.Context) error
	ResetSchema(ctx context.Context) error
}

type AdminController struct {
	admin     AdminService
	responder responder.Responder
	log       *zap.Logger
}

func NewAdminController(admin AdminService, responder responder.Responder, log *zap.Logger) *AdminController {
	return &AdminController{
		admin:     admin,
		responder: responder,
		log:       log,
	}
}

// CreateAll godoc
// @Summary Create tables and load fixtures
// @Description Creates users, orders and offers tables and loads the configured JSON fixtures in one transaction
// @Tags admin
// @Produce json
// @Success 201 {object} map[string]int
// @Failure 400 {object} responder.ErrorResponse
// @Failure 500 {object} responder.ErrorResponse
// @Router /admin/create_all [post]
func (c *AdminController) CreateAll(w http.ResponseWriter, r *http.Request) {
	result, err := c.admin.CreateAll(r.Context())
	if err != nil {
		writeError(c.responder, c.log, w, r, err)
		return
	}

	c.responder.Respond(w, http.StatusCreated, result)
}

// DropAll godoc
// @Summary Drop all tables
// @Tags admin
// @Success 204 "No Content"
// @Failure 500 {object} responder.ErrorResponse
// @Router /admin/drop_all [post]
func (c *AdminController) DropAll(w http.ResponseWriter, r *http.Request) {
	if err := c.admin.DropAll(r.Context()); err != nil {
		writeError(c.responder, c.log, w, r, err)
		return
	}

	c.responder.Respond(w, http.StatusNoContent, nil)
}

// Reset godoc
// @Summary Drop and recreate empty tables
// @Tags admin
// @Success 204 "No Content"
// @Failure 500 {object} responder.ErrorResponse
// @Router /admin/reset [post]
func (c *AdminController) Reset(w http.ResponseWriter, r *http.Request) {
	if err := c.admin.ResetSchema(r.Context()); err != nil {
		writeError(c.responder, c.log, w, r, err)
		return
	}

	c.responder.Respond(w, http.StatusNoContent, nil)
}

package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"gitlab.com/s.izotov81/orderdesk/internal/core/entity"
	"gitlab.com/s.izotov81/orderdesk/internal/core/repository"
	"gitlab.com/s.izotov81/orderdesk/pkg/responder"
)

var errInvalidID = errors.New("invalid id")

// statusFor переводит ошибку домена в HTTP статус
func statusFor(err error) int {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, errInvalidID),
		errors.Is(err, responder.ErrInvalidBody),
		errors.Is(err, entity.ErrMalformedDate),
		errors.Is(err, entity.ErrUnknownField),
		errors.Is(err, entity.ErrReadOnlyField),
		errors.Is(err, entity.ErrInvalidFieldValue):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(resp responder.Responder, log *zap.Logger, w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		log.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	}
	resp.Error(w, status, err.Error())
}

func parseID(r *http.Request) (int, error) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errInvalidID, idStr)
	}
	return id, nil
}

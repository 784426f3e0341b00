package responder

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

// ErrInvalidBody тело запроса не является JSON-объектом
var ErrInvalidBody = errors.New("invalid request body")

// Responder определяет интерфейс для отправки ответов
type Responder interface {
	Respond(w http.ResponseWriter, status int, data interface{})
	Error(w http.ResponseWriter, status int, message string)
	Decode(r *http.Request, v interface{}) error
	DecodeObject(r *http.Request) (map[string]any, error)
}

// ErrorResponse представляет стандартный ответ об ошибке
type ErrorResponse struct {
	Error string `json:"error"`
}

// JSONResponder реализует Responder для JSON ответов
type JSONResponder struct {
	log *zap.Logger
}

// NewJSONResponder создает новый JSONResponder
func NewJSONResponder(log *zap.Logger) *JSONResponder {
	return &JSONResponder{log: log}
}

// Respond отправляет успешный JSON ответ; при data == nil тело пустое
func (j *JSONResponder) Respond(w http.ResponseWriter, status int, data interface{}) {
	if data == nil {
		w.WriteHeader(status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		j.log.Error("failed to encode response", zap.Error(err))
	}
}

// Error отправляет JSON ответ с ошибкой
func (j *JSONResponder) Error(w http.ResponseWriter, status int, message string) {
	j.Respond(w, status, ErrorResponse{Error: message})
}

// Decode декодирует тело запроса в структуру
func (j *JSONResponder) Decode(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBody, err)
	}
	return nil
}

// DecodeObject декодирует тело как плоский JSON-объект, числа остаются
// json.Number, чтобы целые не превращались во float64.
func (j *JSONResponder) DecodeObject(r *http.Request) (map[string]any, error) {
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()

	var data map[string]any
	if err := dec.Decode(&data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBody, err)
	}
	if data == nil {
		return nil, fmt.Errorf("%w: expected JSON object", ErrInvalidBody)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: unexpected data after JSON object", ErrInvalidBody)
	}
	return data, nil
}

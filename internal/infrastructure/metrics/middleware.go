package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// HTTPMetricsMiddleware middleware для сбора HTTP метрик. Путь берется из
// шаблона маршрута chi (/users/{id}), чтобы не плодить метки по каждому id.
func HTTPMetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			status := ww.Status()
			if rec := recover(); rec != nil {
				status = http.StatusInternalServerError
				if ww.Status() == 0 {
					ww.WriteHeader(status)
				}
			}
			if status == 0 {
				status = http.StatusOK
			}

			ObserveHTTPRequest(routePattern(r), r.Method, strconv.Itoa(status), time.Since(start))
		}()

		next.ServeHTTP(ww, r)
	})
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return r.URL.Path
}

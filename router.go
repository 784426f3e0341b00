package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	"gitlab.com/s.izotov81/orderdesk/internal/config"
	"gitlab.com/s.izotov81/orderdesk/internal/core/controller"
	"gitlab.com/s.izotov81/orderdesk/internal/core/entity"
	"gitlab.com/s.izotov81/orderdesk/internal/infrastructure/logger"
	"gitlab.com/s.izotov81/orderdesk/internal/infrastructure/metrics"
	"gitlab.com/s.izotov81/orderdesk/internal/infrastructure/pprof"
)

// Controllers обработчики, которые монтирует роутер
type Controllers struct {
	Users  *controller.CRUDController[*entity.User]
	Orders *controller.OrderController
	Offers *controller.CRUDController[*entity.Offer]
	Admin  *controller.AdminController
}

func setupRouter(c Controllers, zlog *zap.Logger, cfg config.HTTP) *chi.Mux {
	r := chi.NewRouter()

	r.Use(metrics.HTTPMetricsMiddleware)
	r.Use(logger.Middleware(zlog))
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	r.Handle("/metrics", promhttp.Handler())

	// Swagger
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(cfg.SwaggerURL),
	))

	// Профилирование, в Swagger не документируется
	if cfg.PprofEnabled {
		r.Route(pprof.Prefix, func(r chi.Router) {
			r.Use(pprof.Middleware(zlog))
			r.Mount("/", pprof.Handler())
		})
	}

	r.Route("/users", func(r chi.Router) {
		r.Get("/", c.Users.List)
		r.Post("/", c.Users.Create)
		r.Get("/{id}", c.Users.Get)
		r.Put("/{id}", c.Users.Update)
		r.Delete("/{id}", c.Users.Delete)
	})

	r.Route("/orders", func(r chi.Router) {
		r.Get("/", c.Orders.List)
		r.Post("/", c.Orders.Create)
		r.Get("/{id}", c.Orders.GetDetail)
		r.Put("/{id}", c.Orders.Update)
		r.Delete("/{id}", c.Orders.Delete)
	})

	r.Route("/offers", func(r chi.Router) {
		r.Get("/", c.Offers.List)
		r.Post("/", c.Offers.Create)
		r.Get("/{id}", c.Offers.Get)
		r.Put("/{id}", c.Offers.Update)
		r.Delete("/{id}", c.Offers.Delete)
	})

	r.Route("/admin", func(r chi.Router) {
		r.Post("/create_all", c.Admin.CreateAll)
		r.Post("/drop_all", c.Admin.DropAll)
		r.Post("/reset", c.Admin.Reset)
	})

	return r
}

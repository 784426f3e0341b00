package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"gitlab.com/s.izotov81/orderdesk/internal/config"
	"gitlab.com/s.izotov81/orderdesk/internal/core/controller"
	"gitlab.com/s.izotov81/orderdesk/internal/core/entity"
	"gitlab.com/s.izotov81/orderdesk/internal/core/repository"
	"gitlab.com/s.izotov81/orderdesk/internal/core/service"
	"gitlab.com/s.izotov81/orderdesk/internal/infrastructure/db"
	"gitlab.com/s.izotov81/orderdesk/internal/infrastructure/db/adapter"
	"gitlab.com/s.izotov81/orderdesk/internal/infrastructure/logger"
	"gitlab.com/s.izotov81/orderdesk/pkg/responder"

	_ "gitlab.com/s.izotov81/orderdesk/docs"
)

// @title Orderdesk API
// @version 1.0
// @description Пользователи, заказы и отклики исполнителей на заказы
// @contact.name API Support
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zlog, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer zlog.Sync()

	// Initialize database
	dbConn, err := db.NewPostgresDB(cfg.Postgres, zlog)
	if err != nil {
		zlog.Fatal("failed to connect to database", zap.Error(err))
	}
	defer dbConn.Close()

	migrator, err := db.NewMigrator(dbConn, zlog)
	if err != nil {
		zlog.Fatal("failed to init migrator", zap.Error(err))
	}
	if err := migrator.CreateAll(context.Background()); err != nil {
		zlog.Fatal("failed to create tables", zap.Error(err))
	}

	// Initialize dependencies
	sqlAdapter := adapter.NewSQLAdapter(dbConn)
	txManager := adapter.NewTxManager(dbConn)

	userRepo := repository.NewUserRepository(sqlAdapter, txManager)
	orderRepo := repository.NewOrderRepository(sqlAdapter, txManager)
	offerRepo := repository.NewOfferRepository(sqlAdapter, txManager)
	seeder := repository.NewSeeder(sqlAdapter, txManager)

	jsonResponder := responder.NewJSONResponder(zlog)
	controllers := Controllers{
		Users:  controller.NewCRUDController[*entity.User](service.NewUserService(userRepo), jsonResponder, zlog),
		Orders: controller.NewOrderController(service.NewOrderService(orderRepo), jsonResponder, zlog),
		Offers: controller.NewCRUDController[*entity.Offer](service.NewOfferService(offerRepo), jsonResponder, zlog),
		Admin: controller.NewAdminController(
			service.NewAdminService(migrator, seeder, txManager, cfg.Fixtures, zlog),
			jsonResponder,
			zlog,
		),
	}

	r := setupRouter(controllers, zlog, cfg.HTTP)

	server := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      r,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		zlog.Info("server started", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("could not start server", zap.Error(err))
		}
	}()

	<-done
	zlog.Info("server is shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		zlog.Error("server shutdown failed", zap.Error(err))
	}

	zlog.Info("server stopped gracefully")
}

package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"gitlab.com/s.izotov81/orderdesk/internal/config"
	"gitlab.com/s.izotov81/orderdesk/internal/core/entity"
	"gitlab.com/s.izotov81/orderdesk/internal/infrastructure/db/adapter"
	"gitlab.com/s.izotov81/orderdesk/internal/infrastructure/metrics"
)

// SchemaManager создание и удаление таблиц
type SchemaManager interface {
	CreateAll(ctx context.Context) error
	DropAll(ctx context.Context) error
	Reset(ctx context.Context) error
}

// FixtureSeeder загрузка одной фикстуры
type FixtureSeeder interface {
	SeedFromFixture(ctx context.Context, kind entity.Kind, path string) ([]entity.Entity, error)
}

type AdminService struct {
	schema   SchemaManager
	seeder   FixtureSeeder
	tx       adapter.Transactor
	fixtures config.Fixtures
	log      *zap.Logger
}

func NewAdminService(schema SchemaManager, seeder FixtureSeeder, tx adapter.Transactor, fixtures config.Fixtures, log *zap.Logger) *AdminService {
	return &AdminService{
		schema:   schema,
		seeder:   seeder,
		tx:       tx,
		fixtures: fixtures,
		log:      log,
	}
}

// SeedResult количество загруженных записей по коллекциям
type SeedResult map[entity.Kind]int

// CreateAll создает таблицы и загружает пользователей, заказы и отклики
// одной транзакцией.
func (s *AdminService) CreateAll(ctx context.Context) (SeedResult, error) {
	if err := s.schema.CreateAll(ctx); err != nil {
		return nil, err
	}

	result := SeedResult{}
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		for _, kind := range entity.Kinds {
			created, err := s.seeder.SeedFromFixture(ctx, kind, s.fixturePath(kind))
			if err != nil {
				return err
			}
			result[kind] = len(created)
		}
		return nil
	})
	if err != nil {
		s.log.Error("seeding failed, nothing was written", zap.Error(err))
		return nil, err
	}

	for kind, n := range result {
		metrics.AddSeededRecords(string(kind), n)
	}
	s.log.Info("fixtures loaded",
		zap.Int("users", result[entity.KindUser]),
		zap.Int("orders", result[entity.KindOrder]),
		zap.Int("offers", result[entity.KindOffer]),
	)
	return result, nil
}

// DropAll удаляет все таблицы
func (s *AdminService) DropAll(ctx context.Context) error {
	if err := s.schema.DropAll(ctx); err != nil {
		return err
	}
	s.log.Warn("all tables dropped")
	return nil
}

// ResetSchema удаляет и заново создает пустые таблицы
func (s *AdminService) ResetSchema(ctx context.Context) error {
	if err := s.schema.Reset(ctx); err != nil {
		return err
	}
	s.log.Warn("schema reset")
	return nil
}

func (s *AdminService) fixturePath(kind entity.Kind) string {
	switch kind {
	case entity.KindUser:
		return s.fixtures.Users
	case entity.KindOrder:
		return s.fixtures.Orders
	case entity.KindOffer:
		return s.fixtures.Offers
	default:
		panic(fmt.Sprintf("no fixture configured for %q", kind))
	}
}

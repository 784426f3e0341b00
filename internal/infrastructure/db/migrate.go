package db

import (
	"context"
	"embed"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrations embed.FS

const migrationsDir = "migrations"

// Migrator создает и удаляет таблицы users, orders, offers
type Migrator struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewMigrator(db *sqlx.DB, log *zap.Logger) (*Migrator, error) {
	goose.SetBaseFS(migrations)
	goose.SetLogger(zap.NewStdLog(log.Named("goose")))
	if err := goose.SetDialect("postgres"); err != nil {
		return nil, fmt.Errorf("set goose dialect: %w", err)
	}

	return &Migrator{db: db, log: log}, nil
}

// CreateAll применяет все миграции
func (m *Migrator) CreateAll(ctx context.Context) error {
	if err := goose.UpContext(ctx, m.db.DB, migrationsDir); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	m.log.Info("tables created")
	return nil
}

// DropAll откатывает все миграции, удаляя таблицы вместе с данными
func (m *Migrator) DropAll(ctx context.Context) error {
	if err := goose.ResetContext(ctx, m.db.DB, migrationsDir); err != nil {
		return fmt.Errorf("failed to roll back migrations: %w", err)
	}
	m.log.Info("tables dropped")
	return nil
}

// Reset удаляет и заново создает пустые таблицы
func (m *Migrator) Reset(ctx context.Context) error {
	if err := m.DropAll(ctx); err != nil {
		return err
	}
	return m.CreateAll(ctx)
}

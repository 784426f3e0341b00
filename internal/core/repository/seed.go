package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"gitlab.com/s.izotov81/orderdesk/internal/core/entity"
	"gitlab.com/s.izotov81/orderdesk/internal/infrastructure/db/adapter"
)

// Seeder загружает сущности из JSON-фикстур
type Seeder struct {
	adapter *adapter.SQLAdapter
	tx      adapter.Transactor
}

func NewSeeder(a *adapter.SQLAdapter, tx adapter.Transactor) *Seeder {
	return &Seeder{adapter: a, tx: tx}
}

// SeedFromFixture читает массив плоских объектов из path, приводит даты и
// вставляет записи в порядке файла. Все вставки идут в одной транзакции:
// ошибка в любой записи откатывает весь файл.
func (s *Seeder) SeedFromFixture(ctx context.Context, kind entity.Kind, path string) ([]entity.Entity, error) {
	records, err := ReadFixture(path)
	if err != nil {
		return nil, err
	}

	created := make([]entity.Entity, 0, len(records))
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		for i, record := range records {
			data, err := entity.CoerceDates(record)
			if err != nil {
				return fmt.Errorf("%s record #%d: %w", kind, i, err)
			}

			e, err := kind.New(data)
			if err != nil {
				return fmt.Errorf("%s record #%d: %w", kind, i, err)
			}

			if err := insert(ctx, s.adapter, e); err != nil {
				return fmt.Errorf("%s record #%d: %w", kind, i, err)
			}
			created = append(created, e)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to seed %s from %s: %w", kind, path, err)
	}

	return created, nil
}

// ReadFixture читает JSON-массив объектов, числа сохраняются как json.Number
func ReadFixture(path string) ([]map[string]any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var records []map[string]any
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("decode fixture %s: %w", path, err)
	}
	return records, nil
}

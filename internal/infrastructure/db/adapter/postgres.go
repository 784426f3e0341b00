package adapter

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"gitlab.com/s.izotov81/orderdesk/internal/infrastructure/metrics"
)

// ErrRecordNotFound запрос Get не вернул ни одной строки
var ErrRecordNotFound = errors.New("record not found")

type SQLAdapter struct {
	DB      *sqlx.DB
	builder sq.StatementBuilderType
}

func NewSQLAdapter(db *sqlx.DB) *SQLAdapter {
	return &SQLAdapter{
		DB:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Builder построитель запросов с плейсхолдерами $1, $2, ...
func (a *SQLAdapter) Builder() sq.StatementBuilderType {
	return a.builder
}

// ext транзакция из контекста, иначе пул соединений
func (a *SQLAdapter) ext(ctx context.Context) sqlx.ExtContext {
	if tx := TxFromContext(ctx); tx != nil {
		return tx
	}
	return a.DB
}

func observe(method string, start time.Time) {
	metrics.ObserveDBRequest(method, time.Since(start))
}

// Create вставляет строку и возвращает сгенерированный id
func (a *SQLAdapter) Create(ctx context.Context, tableName string, data map[string]interface{}) (int, error) {
	defer observe("insert", time.Now())

	if len(data) == 0 {
		return 0, fmt.Errorf("no data to insert")
	}

	query, args, err := a.builder.Insert(tableName).SetMap(data).Suffix("RETURNING id").ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build insert query: %w", err)
	}

	var id int
	if err := a.ext(ctx).QueryRowxContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to insert record: %w", err)
	}

	return id, nil
}

// Update возвращает число затронутых строк
func (a *SQLAdapter) Update(ctx context.Context, tableName string, data map[string]interface{}, condition Condition) (int64, error) {
	defer observe("update", time.Now())

	query, args, err := a.builder.Update(tableName).
		SetMap(data).
		Where(condition.Equal).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build update query: %w", err)
	}

	res, err := a.ext(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to update record: %w", err)
	}

	return res.RowsAffected()
}

// Delete удаляет строки без проверки существования
func (a *SQLAdapter) Delete(ctx context.Context, tableName string, condition Condition) (int64, error) {
	defer observe("delete", time.Now())

	query, args, err := a.builder.Delete(tableName).
		Where(condition.Equal).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build delete query: %w", err)
	}

	res, err := a.ext(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to delete record: %w", err)
	}

	return res.RowsAffected()
}

// List выбирает строки, отсортированные по id
func (a *SQLAdapter) List(ctx context.Context, dest interface{}, tableName string, columns []string, condition Condition) error {
	q := a.builder.Select(columns...).From(tableName).OrderBy("id")
	if len(condition.Equal) > 0 {
		q = q.Where(condition.Equal)
	}
	return a.Select(ctx, dest, q)
}

func (a *SQLAdapter) Get(ctx context.Context, dest interface{}, tableName string, columns []string, condition Condition) error {
	q := a.builder.Select(columns...).From(tableName).Where(condition.Equal)
	return a.GetOne(ctx, dest, q)
}

// Select выполняет произвольный SELECT в dest (срез)
func (a *SQLAdapter) Select(ctx context.Context, dest interface{}, q sq.SelectBuilder) error {
	defer observe("select", time.Now())

	query, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build select query: %w", err)
	}

	if err := sqlx.SelectContext(ctx, a.ext(ctx), dest, query, args...); err != nil {
		return fmt.Errorf("failed to select records: %w", err)
	}

	return nil
}

// GetOne выполняет SELECT, ожидая ровно одну строку
func (a *SQLAdapter) GetOne(ctx context.Context, dest interface{}, q sq.SelectBuilder) error {
	defer observe("get", time.Now())

	query, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build select query: %w", err)
	}

	if err := sqlx.GetContext(ctx, a.ext(ctx), dest, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrRecordNotFound
		}
		return fmt.Errorf("failed to get record: %w", err)
	}

	return nil
}

type Condition struct {
	Equal sq.Eq
}

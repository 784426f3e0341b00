package adapter

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockTxManager(t *testing.T) (*TxManager, *SQLAdapter, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	return NewTxManager(sqlxDB), NewSQLAdapter(sqlxDB), mock
}

func TestTxManager_Commit(t *testing.T) {
	tm, a, mock := newMockTxManager(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM offers").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := tm.WithinTransaction(context.Background(), func(ctx context.Context) error {
		assert.NotNil(t, TxFromContext(ctx))
		_, err := a.Delete(ctx, "offers", Condition{Equal: map[string]interface{}{"id": 1}})
		return err
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTxManager_RollbackOnError(t *testing.T) {
	tm, _, mock := newMockTxManager(t)
	boom := errors.New("boom")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := tm.WithinTransaction(context.Background(), func(ctx context.Context) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTxManager_RollbackOnPanic(t *testing.T) {
	tm, _, mock := newMockTxManager(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.Panics(t, func() {
		_ = tm.WithinTransaction(context.Background(), func(ctx context.Context) error {
			panic("unexpected")
		})
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTxManager_NestedReusesOuter(t *testing.T) {
	tm, _, mock := newMockTxManager(t)

	mock.ExpectBegin()
	mock.ExpectCommit()

	err := tm.WithinTransaction(context.Background(), func(outer context.Context) error {
		return tm.WithinTransaction(outer, func(inner context.Context) error {
			assert.Same(t, TxFromContext(outer), TxFromContext(inner))
			return nil
		})
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTxManager_BeginError(t *testing.T) {
	tm, _, mock := newMockTxManager(t)

	mock.ExpectBegin().WillReturnError(errors.New("too many connections"))

	called := false
	err := tm.WithinTransaction(context.Background(), func(ctx context.Context) error {
		called = true
		return nil
	})
	assert.Error(t, err)
	assert.False(t, called)
}

func TestTxFromContext_Empty(t *testing.T) {
	assert.Nil(t, TxFromContext(context.Background()))
}

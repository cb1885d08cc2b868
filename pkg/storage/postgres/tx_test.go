package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"guidiqo/pkg/domain"
	"guidiqo/pkg/storage"
	"guidiqo/pkg/storage/postgres"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_Begin_SuccessAndAlreadyInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)

	inner, ok := txStorage.(*postgres.PgSQL)
	require.True(t, ok)
	_, isTx := inner.DB.(*sql.Tx)
	require.True(t, isTx)

	_, err = inner.Begin(ctx)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)

	require.NoError(t, inner.Rollback())
}

func TestPgSQL_CommitRollback_NotInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	require.ErrorIs(t, pg.Commit(), storage.ErrNotInTx)
	require.ErrorIs(t, pg.Rollback(), storage.ErrNotInTx)
}

func TestPgSQL_WithTx_CommitAndRollback(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	committed := domain.UserID(uuid.New())
	rolledBack := domain.UserID(uuid.New())

	err := pg.WithTx(ctx, func(s storage.AllStorage) error {
		_, e := s.UpsertUser(ctx, domain.User{ID: committed, Email: "a@example.com"})

		return e
	})
	require.NoError(t, err)

	err = pg.WithTx(ctx, func(s storage.AllStorage) error {
		_, e := s.UpsertUser(ctx, domain.User{ID: rolledBack, Email: "b@example.com"})
		require.NoError(t, e)

		return errors.New("boom")
	})
	require.EqualError(t, err, "boom")

	u, err := pg.UserByID(ctx, committed)
	require.NoError(t, err)
	require.NotNil(t, u)

	u, err = pg.UserByID(ctx, rolledBack)
	require.NoError(t, err)
	require.Nil(t, u)
}

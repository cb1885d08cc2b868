package postgres_test

import (
	"context"
	"guidiqo/pkg/domain"
	"guidiqo/pkg/storage"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_UpsertUser(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	id := domain.UserID(uuid.New())

	first, err := pg.UpsertUser(ctx, domain.User{ID: id, Email: "ana@example.com", Name: "Ana"})
	require.NoError(t, err)
	require.Equal(t, domain.RoleUser, first.Role)

	second, err := pg.UpsertUser(ctx, domain.User{
		ID:    id,
		Email: "ana@new.example.com",
		Name:  "Ana B.",
		Role:  domain.RoleSuperAdmin,
	})
	require.NoError(t, err)
	require.Equal(t, "ana@new.example.com", second.Email)
	require.Equal(t, domain.RoleSuperAdmin, second.Role)
	require.True(t, first.CreatedAt.Equal(second.CreatedAt), "created_at is preserved")

	count, err := pg.CountUsers(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)

	missing, err := pg.UserByID(ctx, domain.UserID(uuid.New()))
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestPgSQL_Users_PaginationAndRecipients(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	seedUser(t, pg, "First@Example.com")
	time.Sleep(5 * time.Millisecond)
	seedUser(t, pg, "second@example.com")
	time.Sleep(5 * time.Millisecond)
	seedUser(t, pg, "first@example.com")
	time.Sleep(5 * time.Millisecond)
	_, err := pg.UpsertUser(ctx, domain.User{ID: domain.UserID(uuid.New())})
	require.NoError(t, err)

	page, err := pg.Users(ctx, storage.Cursor{}, 3)
	require.NoError(t, err)
	require.Len(t, page.Users, 3)
	require.NotNil(t, page.NextCursor)

	page, err = pg.Users(ctx, *page.NextCursor, 3)
	require.NoError(t, err)
	require.Len(t, page.Users, 1)
	require.Nil(t, page.NextCursor)

	emails, err := pg.RecipientEmails(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"first@example.com", "second@example.com"}, emails)
}

func TestPgSQL_Users_PaginationSameCreationTime(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	require.NoError(t, pg.WithTx(ctx, func(tx storage.AllStorage) error {
		for range 4 {
			if _, err := tx.UpsertUser(ctx, domain.User{ID: domain.UserID(uuid.New())}); err != nil {
				return err
			}
		}

		return nil
	}))

	first, err := pg.Users(ctx, storage.Cursor{}, 3)
	require.NoError(t, err)
	require.Len(t, first.Users, 3)
	require.NotNil(t, first.NextCursor)

	second, err := pg.Users(ctx, *first.NextCursor, 3)
	require.NoError(t, err)
	require.Len(t, second.Users, 1)
	require.Nil(t, second.NextCursor)
	for _, u := range first.Users {
		require.NotEqual(t, u.ID, second.Users[0].ID)
	}
}

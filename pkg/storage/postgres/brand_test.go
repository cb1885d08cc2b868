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

func TestPgSQL_Brands_CRUD(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	owner := seedUser(t, pg, "owner@example.com")
	other := seedUser(t, pg, "other@example.com")

	stored, err := pg.StoreBrand(ctx, domain.Brand{
		UserID:   owner.ID,
		Name:     "Maison Lumière",
		Industry: "boulangerie",
		Colors:   domain.Colors{Primary: "#112233", Accent: "#ffcc00"},
		Personality: domain.Personality{
			Tone:   "chaleureux",
			Values: []string{"artisanat", "proximité"},
		},
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, uuid.UUID(stored.ID))
	require.Equal(t, domain.BrandStatusDraft, stored.Status)
	require.Equal(t, "#112233", stored.Colors.Primary)
	require.Equal(t, []string{"artisanat", "proximité"}, stored.Personality.Values)
	require.False(t, stored.CreatedAt.IsZero())

	got, err := pg.BrandByID(ctx, owner.ID, stored.ID)
	require.NoError(t, err)
	require.Equal(t, stored.Name, got.Name)

	got, err = pg.BrandByID(ctx, other.ID, stored.ID)
	require.NoError(t, err)
	require.Nil(t, got, "brands are scoped to their owner")

	name := "Maison Lumière & Fils"
	step := 5
	status := domain.BrandStatusCompleted
	updated, err := pg.UpdateBrand(ctx, owner.ID, stored.ID, storage.BrandUpdates{
		Name:           &name,
		Typography:     &domain.Typography{HeadingFont: "Playfair Display", BodyFont: "Inter"},
		OnboardingStep: &step,
		Status:         &status,
	})
	require.NoError(t, err)
	require.Equal(t, name, updated.Name)
	require.Equal(t, "boulangerie", updated.Industry, "fields not provided are kept")
	require.Equal(t, "#112233", updated.Colors.Primary)
	require.Equal(t, "Inter", updated.Typography.BodyFont)
	require.Equal(t, 5, updated.OnboardingStep)
	require.Equal(t, domain.BrandStatusCompleted, updated.Status)

	missing, err := pg.UpdateBrand(ctx, other.ID, stored.ID, storage.BrandUpdates{Name: &name})
	require.NoError(t, err)
	require.Nil(t, missing)

	count, err := pg.CountBrands(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)

	deleted, err := pg.DeleteBrand(ctx, owner.ID, stored.ID)
	require.NoError(t, err)
	require.NotNil(t, deleted)

	deleted, err = pg.DeleteBrand(ctx, owner.ID, stored.ID)
	require.NoError(t, err)
	require.Nil(t, deleted, "deleting twice finds nothing")

	got, err = pg.BrandByID(ctx, owner.ID, stored.ID)
	require.NoError(t, err)
	require.Nil(t, got)

	count, err = pg.CountBrands(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 0, count)
}

func TestPgSQL_UserBrands_Pagination(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	owner := seedUser(t, pg, "owner@example.com")

	for i := range 5 {
		_, err := pg.StoreBrand(ctx, domain.Brand{UserID: owner.ID, Name: string(rune('A' + i))})
		require.NoError(t, err)
		time.Sleep(5 * time.Millisecond)
	}

	page, err := pg.UserBrands(ctx, owner.ID, storage.Cursor{}, 2)
	require.NoError(t, err)
	require.Len(t, page.Brands, 2)
	require.Equal(t, "E", page.Brands[0].Name)
	require.NotNil(t, page.NextCursor)

	var names []string
	cursor := storage.Cursor{}
	for {
		page, err := pg.UserBrands(ctx, owner.ID, cursor, 2)
		require.NoError(t, err)
		for _, b := range page.Brands {
			names = append(names, b.Name)
		}
		if page.NextCursor == nil {
			break
		}
		cursor = *page.NextCursor
	}
	require.Equal(t, []string{"E", "D", "C", "B", "A"}, names)
}

func TestPgSQL_UserBrands_PaginationSameCreationTime(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	owner := seedUser(t, pg, "owner@example.com")

	// CURRENT_TIMESTAMP is frozen inside a transaction, so every brand shares created_at.
	stored := map[domain.BrandID]bool{}
	require.NoError(t, pg.WithTx(ctx, func(tx storage.AllStorage) error {
		for i := range 5 {
			b, err := tx.StoreBrand(ctx, domain.Brand{UserID: owner.ID, Name: string(rune('A' + i))})
			if err != nil {
				return err
			}
			stored[b.ID] = true
		}

		return nil
	}))

	seen := map[domain.BrandID]bool{}
	cursor := storage.Cursor{}
	for {
		page, err := pg.UserBrands(ctx, owner.ID, cursor, 2)
		require.NoError(t, err)
		for _, b := range page.Brands {
			require.False(t, seen[b.ID], "brand %s listed twice", b.Name)
			seen[b.ID] = true
		}
		if page.NextCursor == nil {
			break
		}
		cursor = *page.NextCursor
	}
	require.Equal(t, stored, seen)
}

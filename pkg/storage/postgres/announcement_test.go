package postgres_test

import (
	"context"
	"guidiqo/pkg/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_Announcement_Upsert(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	a, err := pg.Announcement(ctx)
	require.NoError(t, err)
	require.Nil(t, a)

	admin := seedUser(t, pg, "admin@example.com")
	stored, err := pg.StoreAnnouncement(ctx, domain.Announcement{
		Enabled:   true,
		Message:   "Maintenance ce soir",
		UpdatedBy: admin.ID,
	})
	require.NoError(t, err)
	require.True(t, stored.Enabled)
	require.Equal(t, domain.AnnouncementInfo, stored.Variant)
	require.Equal(t, admin.ID, stored.UpdatedBy)

	stored, err = pg.StoreAnnouncement(ctx, domain.Announcement{
		Message:   "Nouvelle fonctionnalité",
		LinkLabel: "Voir",
		LinkURL:   "https://guidiqo.com/nouveautes",
		Variant:   domain.AnnouncementSuccess,
	})
	require.NoError(t, err)
	require.False(t, stored.Enabled)

	a, err = pg.Announcement(ctx)
	require.NoError(t, err)
	require.Equal(t, "Nouvelle fonctionnalité", a.Message)
	require.Equal(t, domain.AnnouncementSuccess, a.Variant)
}

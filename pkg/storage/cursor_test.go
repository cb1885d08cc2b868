package storage_test

import (
	"guidiqo/pkg/storage"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestCursor_RoundTrip(t *testing.T) {
	c := storage.Cursor{
		CreatedAt: time.Date(2025, 3, 1, 10, 0, 0, 123456000, time.UTC),
		ID:        uuid.MustParse("6f1c2a0e-3d4b-4c5a-9e8f-112233445566"),
	}
	require.Equal(t, "2025-03-01T10:00:00.123456Z_6f1c2a0e-3d4b-4c5a-9e8f-112233445566", c.String())

	parsed, err := storage.ParseCursor(c.String())
	require.NoError(t, err)
	require.True(t, c.CreatedAt.Equal(parsed.CreatedAt))
	require.Equal(t, c.ID, parsed.ID)
}

func TestCursor_Empty(t *testing.T) {
	require.Empty(t, storage.Cursor{}.String())

	c, err := storage.ParseCursor("")
	require.NoError(t, err)
	require.True(t, c.IsZero())
}

func TestParseCursor_Invalid(t *testing.T) {
	for _, s := range []string{
		"yesterday",
		"2025-03-01T10:00:00Z",
		"2025-03-01T10:00:00Z_not-a-uuid",
		"soon_6f1c2a0e-3d4b-4c5a-9e8f-112233445566",
	} {
		_, err := storage.ParseCursor(s)
		require.Error(t, err, s)
	}
}

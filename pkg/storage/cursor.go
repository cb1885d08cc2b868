package storage

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Cursor points at the last row of a page ordered by created_at DESC, id DESC.
// The next page starts strictly after (CreatedAt, ID), so rows sharing a
// creation time are neither skipped nor repeated.
type Cursor struct {
	CreatedAt time.Time
	ID        uuid.UUID
}

// IsZero reports whether the cursor selects the first page.
func (c Cursor) IsZero() bool {
	return c.CreatedAt.IsZero()
}

// String encodes the cursor as "<RFC3339Nano creation time>_<id>".
func (c Cursor) String() string {
	if c.IsZero() {
		return ""
	}

	return c.CreatedAt.UTC().Format(time.RFC3339Nano) + "_" + c.ID.String()
}

// ParseCursor decodes a cursor produced by Cursor.String. An empty string is
// the zero cursor.
func ParseCursor(s string) (Cursor, error) {
	if s == "" {
		return Cursor{}, nil
	}

	ts, id, ok := strings.Cut(s, "_")
	if !ok {
		return Cursor{}, errors.New("cursor has no id part")
	}
	createdAt, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return Cursor{}, fmt.Errorf("could not parse cursor time: %w", err)
	}
	parsedID, err := uuid.Parse(id)
	if err != nil {
		return Cursor{}, fmt.Errorf("could not parse cursor id: %w", err)
	}

	return Cursor{CreatedAt: createdAt, ID: parsedID}, nil
}

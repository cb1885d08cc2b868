package storage

import (
	"context"
	"guidiqo/pkg/domain"
)

// AnnouncementStorage persists the single site-wide announcement.
type AnnouncementStorage interface {
	// Announcement returns the current announcement or nil when none was ever saved.
	Announcement(ctx context.Context) (*domain.Announcement, error)
	// StoreAnnouncement replaces the announcement and returns the stored value.
	StoreAnnouncement(ctx context.Context, announcement domain.Announcement) (*domain.Announcement, error)
}

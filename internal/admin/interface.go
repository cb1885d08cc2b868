package admin

import (
	"context"
	"guidiqo/pkg/domain"
)

// Stats are the headline counters of the super-admin console.
type Stats struct {
	Users        int64
	Brands       int64
	Unsubscribes int64
	Campaigns    int64
}

// AnnouncementInput is the banner sent by the console.
type AnnouncementInput struct {
	Enabled   bool                       `json:"enabled"`
	Message   string                     `json:"message"   validate:"required_if=Enabled true,max=280"`
	LinkLabel string                     `json:"linkLabel" validate:"max=40"`
	LinkURL   string                     `json:"linkUrl"   validate:"omitempty,url"`
	Variant   domain.AnnouncementVariant `json:"variant"   validate:"omitempty,oneof=info warning success"`
}

//go:generate mockgen -package mockadmin -source=interface.go -destination=mock/mockadmin.go *
type Admin interface {
	// Me records the caller and returns the stored user.
	Me(ctx context.Context, user domain.User) (*domain.User, error)
	// Authorize checks that user may use the super-admin console and that the
	// database is reachable.
	Authorize(ctx context.Context, user domain.User) error
	// Users returns a page of users, newest first.
	Users(ctx context.Context, cursor string, limit uint) ([]domain.User, string, error)
	// Stats counts users, brands, unsubscribes and campaigns.
	Stats(ctx context.Context) (*Stats, error)
	// Announcement returns the current banner. A disabled one is returned when none was saved.
	Announcement(ctx context.Context) (*domain.Announcement, error)
	// UpdateAnnouncement replaces the banner.
	UpdateAnnouncement(ctx context.Context, by domain.User, in AnnouncementInput) (*domain.Announcement, error)
}

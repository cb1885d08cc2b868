// Package admin implements the user mirror and the super-admin console: the
// access gate, user listing, statistics and the site announcement.
package admin

import (
	"context"
	"fmt"
	"guidiqo/internal/config"
	"guidiqo/pkg/domain"
	"guidiqo/pkg/logger"
	"guidiqo/pkg/serrors"
	"guidiqo/pkg/storage"
	"guidiqo/pkg/validation"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Pagination bounds of Users.
const (
	DefaultPageSize = 50
	MaxPageSize     = 200
)

// Options configure the admin service.
type Options struct {
	// AdminEmails are granted super-admin access whatever their token role.
	AdminEmails []string
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{AdminEmails: cfg.Auth.AdminEmails}
}

type admin struct {
	storage storage.Storage
	emails  map[string]struct{}
}

// IsAdmin reports whether user holds the super-admin role or an allowlisted email.
func (a admin) IsAdmin(user domain.User) bool {
	if user.IsSuperAdmin() {
		return true
	}
	_, ok := a.emails[normalizeEmail(user.Email)]

	return ok && user.Email != ""
}

func (a admin) Me(ctx context.Context, user domain.User) (*domain.User, error) {
	if user.Role == "" {
		user.Role = domain.RoleUser
	}
	if a.IsAdmin(user) {
		user.Role = domain.RoleSuperAdmin
	}

	res, err := a.storage.UpsertUser(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("could not upsert user: %w", err)
	}

	return res, nil
}

func (a admin) Authorize(ctx context.Context, user domain.User) error {
	if !a.IsAdmin(user) {
		return serrors.With(serrors.ErrForbidden, "Accès réservé aux super-administrateurs.")
	}
	if err := a.storage.Ping(ctx); err != nil {
		logger.Error(ctx, "database ping failed", zap.Error(err))

		return serrors.Wrap(serrors.ErrUnavailable, err, "Base de données indisponible.")
	}

	return nil
}

func (a admin) Users(ctx context.Context, cursor string, limit uint) ([]domain.User, string, error) {
	after, err := storage.ParseCursor(cursor)
	if err != nil {
		return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "Curseur de pagination invalide.")
	}
	switch {
	case limit == 0:
		limit = DefaultPageSize
	case limit > MaxPageSize:
		limit = MaxPageSize
	}

	page, err := a.storage.Users(ctx, after, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not get users: %w", err)
	}

	var next string
	if page.NextCursor != nil {
		next = page.NextCursor.String()
	}

	return page.Users, next, nil
}

func (a admin) Stats(ctx context.Context) (*Stats, error) {
	var stats Stats
	g, gctx := errgroup.WithContext(ctx)
	for _, c := range []struct {
		name  string
		dst   *int64
		count func(context.Context) (int64, error)
	}{
		{"users", &stats.Users, a.storage.CountUsers},
		{"brands", &stats.Brands, a.storage.CountBrands},
		{"unsubscribes", &stats.Unsubscribes, a.storage.CountUnsubscribes},
		{"campaigns", &stats.Campaigns, a.storage.CountCampaigns},
	} {
		g.Go(func() error {
			n, err := c.count(gctx)
			if err != nil {
				return fmt.Errorf("could not count %s: %w", c.name, err)
			}
			*c.dst = n

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &stats, nil
}

func (a admin) Announcement(ctx context.Context) (*domain.Announcement, error) {
	res, err := a.storage.Announcement(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get announcement: %w", err)
	}
	if res == nil {
		return &domain.Announcement{Variant: domain.AnnouncementInfo}, nil
	}

	return res, nil
}

func (a admin) UpdateAnnouncement(ctx context.Context,
	by domain.User,
	in AnnouncementInput) (*domain.Announcement, error) {
	in.Message = strings.TrimSpace(in.Message)
	in.LinkLabel = strings.TrimSpace(in.LinkLabel)
	in.LinkURL = strings.TrimSpace(in.LinkURL)
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	if in.Variant == "" {
		in.Variant = domain.AnnouncementInfo
	}

	res, err := a.storage.StoreAnnouncement(ctx, domain.Announcement{
		Enabled:   in.Enabled,
		Message:   in.Message,
		LinkLabel: in.LinkLabel,
		LinkURL:   in.LinkURL,
		Variant:   in.Variant,
		UpdatedBy: by.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("could not store announcement: %w", err)
	}

	return res, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// New creates an Admin service backed by storage.
func New(storage storage.Storage, options Options) Admin {
	emails := make(map[string]struct{}, len(options.AdminEmails))
	for _, e := range options.AdminEmails {
		if e = normalizeEmail(e); e != "" {
			emails[e] = struct{}{}
		}
	}

	return &admin{storage: storage, emails: emails}
}

// Package brandkit manages the brand-identity kits of users: the onboarding
// CRUD flow and the HTML/PDF export.
package brandkit

import (
	"context"
	"fmt"
	"guidiqo/internal/config"
	"guidiqo/pkg/domain"
	"guidiqo/pkg/htmlpdf"
	"guidiqo/pkg/serrors"
	"guidiqo/pkg/storage"
	"time"
)

// Pagination bounds of List.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Options configure the brand-kit service.
type Options struct {
	// ExportTimeout bounds a single PDF rendering.
	ExportTimeout time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		ExportTimeout: cfg.Export.Timeout,
	}
}

type brandKit struct {
	options Options
	storage storage.Storage
	// renderer is nil when PDF export is disabled.
	renderer htmlpdf.Renderer
}

// Create validates in and stores a new brand owned by owner. The owner row is
// upserted in the same transaction so a first-time user can create a brand
// before any other call.
func (b brandKit) Create(ctx context.Context, owner domain.User, in Input) (*domain.Brand, error) {
	if err := in.validate(true); err != nil {
		return nil, err
	}

	var brand *domain.Brand
	if err := b.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		if _, err := tx.UpsertUser(ctx, owner); err != nil {
			return fmt.Errorf("could not upsert owner: %w", err)
		}

		res, err := tx.StoreBrand(ctx, in.brand(owner.ID))
		if err != nil {
			return fmt.Errorf("could not store brand: %w", err)
		}
		brand = res

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not create brand: %w", err)
	}

	return brand, nil
}

// Get returns a brand of userID or a not-found error.
func (b brandKit) Get(ctx context.Context, userID domain.UserID, brandID domain.BrandID) (*domain.Brand, error) {
	res, err := b.storage.BrandByID(ctx, userID, brandID)
	if err != nil {
		return nil, fmt.Errorf("could not get brand: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "Marque introuvable.")
	}

	return res, nil
}

// List returns a page of brands for userID. cursor is the opaque value
// returned by the previous page.
func (b brandKit) List(ctx context.Context,
	userID domain.UserID,
	cursor string,
	limit uint) ([]domain.Brand, string, error) {
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

	page, err := b.storage.UserBrands(ctx, userID, after, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not get user brands: %w", err)
	}

	var next string
	if page.NextCursor != nil {
		next = page.NextCursor.String()
	}

	return page.Brands, next, nil
}

// Update validates in and applies the provided fields.
func (b brandKit) Update(ctx context.Context,
	userID domain.UserID,
	brandID domain.BrandID,
	in Input) (*domain.Brand, error) {
	if err := in.validate(false); err != nil {
		return nil, err
	}

	res, err := b.storage.UpdateBrand(ctx, userID, brandID, in.updates())
	if err != nil {
		return nil, fmt.Errorf("could not update brand: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "Marque introuvable.")
	}

	return res, nil
}

// Delete soft-deletes a brand belonging to userID.
func (b brandKit) Delete(ctx context.Context, userID domain.UserID, brandID domain.BrandID) error {
	res, err := b.storage.DeleteBrand(ctx, userID, brandID)
	if err != nil {
		return fmt.Errorf("could not delete brand: %w", err)
	}
	if res == nil {
		return serrors.With(serrors.ErrNotFound, "Marque introuvable.")
	}

	return nil
}

// Preview renders the export document of a brand as HTML.
func (b brandKit) Preview(ctx context.Context, userID domain.UserID, brandID domain.BrandID) (string, error) {
	brand, err := b.Get(ctx, userID, brandID)
	if err != nil {
		return "", err
	}

	return RenderHTML(*brand)
}

// ExportPDF prints the export document of a brand.
func (b brandKit) ExportPDF(ctx context.Context,
	userID domain.UserID,
	brandID domain.BrandID) ([]byte, string, error) {
	if b.renderer == nil {
		return nil, "", serrors.With(serrors.ErrUnavailable, "L'export PDF est indisponible.")
	}

	brand, err := b.Get(ctx, userID, brandID)
	if err != nil {
		return nil, "", err
	}

	html, err := RenderHTML(*brand)
	if err != nil {
		return nil, "", err
	}

	if b.options.ExportTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.options.ExportTimeout)
		defer cancel()
	}

	pdf, err := b.renderer.Render(ctx, html)
	if err != nil {
		if ctx.Err() != nil {
			return nil, "", serrors.Wrap(serrors.ErrTimeout, err, "L'export PDF a pris trop de temps.")
		}

		return nil, "", fmt.Errorf("could not render pdf: %w", err)
	}

	return pdf, Slug(brand.Name) + ".pdf", nil
}

// New creates a BrandKit backed by storage. renderer may be nil, in which
// case ExportPDF reports the export as unavailable.
func New(storage storage.Storage, renderer htmlpdf.Renderer, options Options) BrandKit {
	return &brandKit{
		options:  options,
		storage:  storage,
		renderer: renderer,
	}
}

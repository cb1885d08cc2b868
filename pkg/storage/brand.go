package storage

import (
	"context"
	"guidiqo/pkg/domain"
)

// BrandUpdates describes a set of optional fields that can be applied to an
// existing brand during an update. Only non-nil fields will be updated.
// Nested groups (colors, typography...) are replaced as a whole.
type BrandUpdates struct {
	Name        *string
	Tagline     *string
	Industry    *string
	Description *string

	Colors      *domain.Colors
	Typography  *domain.Typography
	Personality *domain.Personality
	Cover       *domain.Cover

	OnboardingStep *int
	Status         *domain.BrandStatus
}

// BrandPage groups a page of brands together with an optional NextCursor used
// for pagination.
type BrandPage struct {
	Brands []domain.Brand
	// NextCursor is nil when there is no next page.
	NextCursor *Cursor
}

// BrandStorage defines CRUD operations on brand kits. Every read and write is
// scoped to the owner and ignores soft-deleted rows.
type BrandStorage interface {
	// StoreBrand inserts a brand and returns the stored row including generated fields.
	StoreBrand(ctx context.Context, brand domain.Brand) (*domain.Brand, error)
	// BrandByID returns the brand, or nil when it does not exist or belongs to another user.
	BrandByID(ctx context.Context, userID domain.UserID, ID domain.BrandID) (*domain.Brand, error)
	// UserBrands returns brands after the optional cursor, newest first.
	UserBrands(ctx context.Context, userID domain.UserID, cursor Cursor, limit uint) (BrandPage, error)
	// UpdateBrand applies updates and returns the updated row, or nil when not found.
	// updated_at is set automatically.
	UpdateBrand(ctx context.Context,
		userID domain.UserID,
		ID domain.BrandID,
		updates BrandUpdates) (*domain.Brand, error)
	// DeleteBrand soft-deletes the brand and returns it, or nil when not found.
	DeleteBrand(ctx context.Context, userID domain.UserID, ID domain.BrandID) (*domain.Brand, error)
	// CountBrands returns the number of brands that are not deleted.
	CountBrands(ctx context.Context) (int64, error)
}

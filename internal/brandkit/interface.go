package brandkit

import (
	"context"
	"guidiqo/pkg/domain"
)

//go:generate mockgen -package mockbrandkit -source=interface.go -destination=mock/mockbrandkit.go *
type BrandKit interface {
	// Create stores a new draft brand for owner, upserting the owner first.
	Create(ctx context.Context, owner domain.User, in Input) (*domain.Brand, error)
	// Get returns a brand of userID or a not-found error.
	Get(ctx context.Context, userID domain.UserID, brandID domain.BrandID) (*domain.Brand, error)
	// List returns a page of brands, newest first, and the cursor of the next page.
	List(ctx context.Context, userID domain.UserID, cursor string, limit uint) ([]domain.Brand, string, error)
	// Update applies the fields set in in and returns the updated brand.
	Update(ctx context.Context, userID domain.UserID, brandID domain.BrandID, in Input) (*domain.Brand, error)
	// Delete soft-deletes a brand.
	Delete(ctx context.Context, userID domain.UserID, brandID domain.BrandID) error
	// Preview renders the printable HTML document of a brand.
	Preview(ctx context.Context, userID domain.UserID, brandID domain.BrandID) (string, error)
	// ExportPDF renders a brand to PDF and returns the document and its file name.
	ExportPDF(ctx context.Context, userID domain.UserID, brandID domain.BrandID) ([]byte, string, error)
}

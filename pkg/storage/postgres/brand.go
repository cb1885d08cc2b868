package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"guidiqo/pkg/domain"
	"guidiqo/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	brandsTable = "brands"
)

func (p *PgSQL) StoreBrand(ctx context.Context, brand domain.Brand) (*domain.Brand, error) {
	var row PgBrand
	if err := row.FromDomain(brand); err != nil {
		return nil, err
	}

	var res PgBrand
	if _, err := p.Builder.Insert(brandsTable).
		Rows(row).
		Returning(&PgBrand{}).
		Executor().ScanStructContext(ctx, &res); err != nil {
		return nil, fmt.Errorf("could not store brand into pg: %w", err)
	}

	return res.ToDomain()
}

// BrandByID returns a brand owned by userID, excluding soft-deleted rows.
func (p *PgSQL) BrandByID(ctx context.Context, userID domain.UserID, id domain.BrandID) (*domain.Brand, error) {
	var row PgBrand
	found, err := p.Builder.From(brandsTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch brand by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// UserBrands returns a list of brands for a user filtered by optional cursor and limited by limit.
// Results are ordered by created_at DESC, id DESC.
func (p *PgSQL) UserBrands(ctx context.Context,
	userID domain.UserID,
	cursor storage.Cursor,
	limit uint) (storage.BrandPage, error) {
	w := []goqu.Expression{
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.I("deleted_at").IsNull(),
	}
	if !cursor.IsZero() {
		w = append(w, afterCursor(cursor))
	}

	var rows []PgBrand
	if err := p.Builder.From(brandsTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(limit+1).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.BrandPage{}, fmt.Errorf("could not fetch user brands from pg: %w", err)
	}

	var nextCursor *storage.Cursor
	if uint(len(rows)) > limit && limit > 0 {
		rows = rows[:limit]
		last := rows[len(rows)-1]
		nextCursor = &storage.Cursor{CreatedAt: last.CreatedAt, ID: last.ID}
	}

	brands, err := pgBrandsToDomain(rows)
	if err != nil {
		return storage.BrandPage{}, err
	}

	return storage.BrandPage{Brands: brands, NextCursor: nextCursor}, nil
}

// UpdateBrand sets the provided fields and updated_at on a brand owned by userID.
func (p *PgSQL) UpdateBrand(ctx context.Context,
	userID domain.UserID,
	id domain.BrandID,
	updates storage.BrandUpdates) (*domain.Brand, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	setString := func(col string, v *string) {
		if v != nil {
			rec[col] = *v
		}
	}
	setString("name", updates.Name)
	setString("tagline", updates.Tagline)
	setString("industry", updates.Industry)
	setString("description", updates.Description)
	if updates.OnboardingStep != nil {
		rec["onboarding_step"] = *updates.OnboardingStep
	}
	if updates.Status != nil {
		rec["status"] = string(*updates.Status)
	}
	for col, v := range map[string]any{
		"colors":      updates.Colors,
		"typography":  updates.Typography,
		"personality": updates.Personality,
		"cover":       updates.Cover,
	} {
		if isNilGroup(v) {
			continue
		}
		b, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("could not marshal brand %s: %w", col, err)
		}
		rec[col] = b
	}

	var row PgBrand
	found, err := p.Builder.Update(brandsTable).
		Set(rec).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
			goqu.I("deleted_at").IsNull(),
		).
		Returning(&PgBrand{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update brand in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// isNilGroup reports whether v holds a nil pointer to one of the JSONB groups.
func isNilGroup(v any) bool {
	switch g := v.(type) {
	case *domain.Colors:
		return g == nil
	case *domain.Typography:
		return g == nil
	case *domain.Personality:
		return g == nil
	case *domain.Cover:
		return g == nil
	default:
		return v == nil
	}
}

// DeleteBrand performs a soft delete by setting deleted_at timestamp
// for a given brand id and user, returning the deleted record.
func (p *PgSQL) DeleteBrand(ctx context.Context, userID domain.UserID, id domain.BrandID) (*domain.Brand, error) {
	var row PgBrand
	found, err := p.Builder.Update(brandsTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgBrand{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete brand in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// CountBrands returns the number of brands that are not soft-deleted.
func (p *PgSQL) CountBrands(ctx context.Context) (int64, error) {
	n, err := p.Builder.From(brandsTable).Where(goqu.I("deleted_at").IsNull()).CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count brands: %w", err)
	}

	return n, nil
}

package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"guidiqo/pkg/domain"
	"guidiqo/pkg/storage"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

type PgUser struct {
	ID         uuid.UUID `db:"id"`
	Email      string    `db:"email"`
	Name       string    `db:"name"`
	Role       string    `db:"role"`
	CreatedAt  time.Time `db:"created_at"   goqu:"skipinsert"`
	LastSeenAt time.Time `db:"last_seen_at" goqu:"skipinsert"`
}

func (p *PgUser) ToDomain() *domain.User {
	return &domain.User{
		ID:         domain.UserID(p.ID),
		Email:      p.Email,
		Name:       p.Name,
		Role:       domain.Role(p.Role),
		CreatedAt:  p.CreatedAt,
		LastSeenAt: p.LastSeenAt,
	}
}

func (p *PgUser) FromDomain(user domain.User) {
	role := user.Role
	if role == "" {
		role = domain.RoleUser
	}
	*p = PgUser{
		ID:    uuid.UUID(user.ID),
		Email: user.Email,
		Name:  user.Name,
		Role:  string(role),
	}
}

type PgBrand struct {
	ID     uuid.UUID `db:"id"      goqu:"skipinsert"`
	UserID uuid.UUID `db:"user_id"`

	Name        string `db:"name"`
	Tagline     string `db:"tagline"`
	Industry    string `db:"industry"`
	Description string `db:"description"`

	Colors      json.RawMessage `db:"colors"`
	Typography  json.RawMessage `db:"typography"`
	Personality json.RawMessage `db:"personality"`
	Cover       json.RawMessage `db:"cover"`

	OnboardingStep int    `db:"onboarding_step"`
	Status         string `db:"status"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgBrand) ToDomain() (*domain.Brand, error) {
	b := &domain.Brand{
		ID:             domain.BrandID(p.ID),
		UserID:         domain.UserID(p.UserID),
		Name:           p.Name,
		Tagline:        p.Tagline,
		Industry:       p.Industry,
		Description:    p.Description,
		OnboardingStep: p.OnboardingStep,
		Status:         domain.BrandStatus(p.Status),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt.Time,
		DeletedAt:      p.DeletedAt.Time,
	}
	if b.UpdatedAt.IsZero() {
		b.UpdatedAt = p.CreatedAt
	}
	for _, f := range []struct {
		name string
		raw  json.RawMessage
		dst  any
	}{
		{"colors", p.Colors, &b.Colors},
		{"typography", p.Typography, &b.Typography},
		{"personality", p.Personality, &b.Personality},
		{"cover", p.Cover, &b.Cover},
	} {
		if len(f.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(f.raw, f.dst); err != nil {
			return nil, fmt.Errorf("could not unmarshal brand %s: %w", f.name, err)
		}
	}

	return b, nil
}

func (p *PgBrand) FromDomain(brand domain.Brand) error {
	*p = PgBrand{
		ID:             uuid.UUID(brand.ID),
		UserID:         uuid.UUID(brand.UserID),
		Name:           brand.Name,
		Tagline:        brand.Tagline,
		Industry:       brand.Industry,
		Description:    brand.Description,
		OnboardingStep: brand.OnboardingStep,
		Status:         string(brand.Status),
	}
	if p.Status == "" {
		p.Status = string(domain.BrandStatusDraft)
	}

	var err error
	if p.Colors, err = json.Marshal(brand.Colors); err != nil {
		return fmt.Errorf("could not marshal brand colors: %w", err)
	}
	if p.Typography, err = json.Marshal(brand.Typography); err != nil {
		return fmt.Errorf("could not marshal brand typography: %w", err)
	}
	if p.Personality, err = json.Marshal(brand.Personality); err != nil {
		return fmt.Errorf("could not marshal brand personality: %w", err)
	}
	if p.Cover, err = json.Marshal(brand.Cover); err != nil {
		return fmt.Errorf("could not marshal brand cover: %w", err)
	}

	return nil
}

func pgBrandsToDomain(brands []PgBrand) ([]domain.Brand, error) {
	out := make([]domain.Brand, 0, len(brands))
	for _, brand := range brands {
		d, err := brand.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}

type PgCampaign struct {
	ID uuid.UUID `db:"id" goqu:"skipinsert"`

	Subject  string `db:"subject"`
	Title    string `db:"title"`
	Body     string `db:"body"`
	CTALabel string `db:"cta_label"`
	CTAURL   string `db:"cta_url"`

	Status      string         `db:"status"`
	BatchesDone int            `db:"batches_done" goqu:"skipinsert"`
	Sent        int            `db:"sent"         goqu:"skipinsert"`
	Skipped     int            `db:"skipped"      goqu:"skipinsert"`
	Failed      int            `db:"failed"       goqu:"skipinsert"`
	LastError   sql.NullString `db:"last_error"   goqu:"skipinsert"`

	CreatedBy uuid.UUID    `db:"created_by"`
	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgCampaign) ToDomain() *domain.Campaign {
	c := &domain.Campaign{
		ID:          domain.CampaignID(p.ID),
		Subject:     p.Subject,
		Title:       p.Title,
		Body:        p.Body,
		CTALabel:    p.CTALabel,
		CTAURL:      p.CTAURL,
		Status:      domain.CampaignStatus(p.Status),
		BatchesDone: p.BatchesDone,
		Sent:        p.Sent,
		Skipped:     p.Skipped,
		Failed:      p.Failed,
		LastError:   p.LastError.String,
		CreatedBy:   domain.UserID(p.CreatedBy),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt.Time,
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = p.CreatedAt
	}

	return c
}

func (p *PgCampaign) FromDomain(c domain.Campaign) {
	status := c.Status
	if status == "" {
		status = domain.CampaignStatusQueued
	}
	*p = PgCampaign{
		Subject:   c.Subject,
		Title:     c.Title,
		Body:      c.Body,
		CTALabel:  c.CTALabel,
		CTAURL:    c.CTAURL,
		Status:    string(status),
		CreatedBy: uuid.UUID(c.CreatedBy),
	}
}

type PgAnnouncement struct {
	ID        int           `db:"id"`
	Enabled   bool          `db:"enabled"`
	Message   string        `db:"message"`
	LinkLabel string        `db:"link_label"`
	LinkURL   string        `db:"link_url"`
	Variant   string        `db:"variant"`
	UpdatedBy uuid.NullUUID `db:"updated_by"`
	UpdatedAt time.Time     `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgAnnouncement) ToDomain() *domain.Announcement {
	return &domain.Announcement{
		Enabled:   p.Enabled,
		Message:   p.Message,
		LinkLabel: p.LinkLabel,
		LinkURL:   p.LinkURL,
		Variant:   domain.AnnouncementVariant(p.Variant),
		UpdatedBy: domain.UserID(p.UpdatedBy.UUID),
		UpdatedAt: p.UpdatedAt,
	}
}

func (p *PgAnnouncement) FromDomain(a domain.Announcement) {
	variant := a.Variant
	if variant == "" {
		variant = domain.AnnouncementInfo
	}
	*p = PgAnnouncement{
		ID:        announcementRowID,
		Enabled:   a.Enabled,
		Message:   a.Message,
		LinkLabel: a.LinkLabel,
		LinkURL:   a.LinkURL,
		Variant:   string(variant),
		UpdatedBy: uuid.NullUUID{
			UUID:  uuid.UUID(a.UpdatedBy),
			Valid: a.UpdatedBy != domain.UserID(uuid.Nil),
		},
	}
}

// afterCursor selects rows strictly after c in created_at DESC, id DESC order.
func afterCursor(c storage.Cursor) goqu.Expression {
	return goqu.L("(created_at, id) < (?, ?)", c.CreatedAt, c.ID)
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// BrandID uniquely identifies a brand kit.
type BrandID uuid.UUID

// String returns the canonical textual form of the ID.
func (id BrandID) String() string { return uuid.UUID(id).String() }

// BrandStatus represents where a brand kit is in the onboarding flow.
type BrandStatus string

const (
	// BrandStatusDraft is a kit still going through the onboarding wizard.
	BrandStatusDraft BrandStatus = "draft"
	// BrandStatusCompleted is a kit whose onboarding is finished and can be exported.
	BrandStatusCompleted BrandStatus = "completed"
)

// LastOnboardingStep is the index of the final onboarding step. Reaching it
// completes the brand kit.
const LastOnboardingStep = 5

// Colors is the brand palette. Every value is a #rrggbb hex color.
type Colors struct {
	Primary    string `json:"primary,omitempty"    validate:"omitempty,hexcolor"`
	Secondary  string `json:"secondary,omitempty"  validate:"omitempty,hexcolor"`
	Accent     string `json:"accent,omitempty"     validate:"omitempty,hexcolor"`
	Background string `json:"background,omitempty" validate:"omitempty,hexcolor"`
	Text       string `json:"text,omitempty"       validate:"omitempty,hexcolor"`
}

// Typography is the font pairing of a brand.
type Typography struct {
	HeadingFont string `json:"headingFont,omitempty" validate:"max=80"`
	BodyFont    string `json:"bodyFont,omitempty"    validate:"max=80"`
}

// Personality describes the voice of a brand.
type Personality struct {
	Tone      string   `json:"tone,omitempty"      validate:"max=80"`
	Archetype string   `json:"archetype,omitempty" validate:"max=80"`
	Values    []string `json:"values,omitempty"    validate:"max=10,dive,max=40"`
	Keywords  []string `json:"keywords,omitempty"  validate:"max=10,dive,max=40"`
}

// Cover is the cover image chosen for the kit, usually from the stock-photo proxy.
type Cover struct {
	URL             string `json:"url,omitempty"             validate:"omitempty,url"`
	Alt             string `json:"alt,omitempty"             validate:"max=300"`
	Photographer    string `json:"photographer,omitempty"    validate:"max=120"`
	PhotographerURL string `json:"photographerUrl,omitempty" validate:"omitempty,url"`
	Source          string `json:"source,omitempty"          validate:"max=20"`
}

// Brand is a brand-identity kit owned by a user.
type Brand struct {
	ID     BrandID `json:"id"`
	UserID UserID  `json:"userId"`

	Name        string `json:"name"`
	Tagline     string `json:"tagline"`
	Industry    string `json:"industry"`
	Description string `json:"description"`

	Colors      Colors      `json:"colors"`
	Typography  Typography  `json:"typography"`
	Personality Personality `json:"personality"`
	Cover       Cover       `json:"cover"`

	// OnboardingStep is the last completed wizard step, from 0 to LastOnboardingStep.
	OnboardingStep int         `json:"onboardingStep"`
	Status         BrandStatus `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	// DeletedAt marks when the brand was soft-deleted; zero value means not deleted.
	DeletedAt time.Time `json:"-"`
}

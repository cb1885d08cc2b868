package brandkit

import (
	"guidiqo/pkg/domain"
	"guidiqo/pkg/storage"
	"guidiqo/pkg/validation"
	"strings"
)

// Input carries the brand fields sent by clients. Nil fields are left
// untouched on update. Nested groups replace the stored group as a whole.
type Input struct {
	Name        *string `json:"name"        validate:"omitempty,min=1,max=80"`
	Tagline     *string `json:"tagline"     validate:"omitempty,max=160"`
	Industry    *string `json:"industry"    validate:"omitempty,max=80"`
	Description *string `json:"description" validate:"omitempty,max=2000"`

	Colors      *domain.Colors      `json:"colors"`
	Typography  *domain.Typography  `json:"typography"`
	Personality *domain.Personality `json:"personality"`
	Cover       *domain.Cover       `json:"cover"`

	OnboardingStep *int                `json:"onboardingStep" validate:"omitempty,min=0,max=5"`
	Status         *domain.BrandStatus `json:"status"         validate:"omitempty,oneof=draft completed"`
}

// normalize trims free text and lowercases colors.
func (in *Input) normalize() {
	for _, s := range []*string{in.Name, in.Tagline, in.Industry, in.Description} {
		if s != nil {
			*s = strings.TrimSpace(*s)
		}
	}
	if in.Colors != nil {
		for _, c := range []*string{
			&in.Colors.Primary, &in.Colors.Secondary, &in.Colors.Accent, &in.Colors.Background, &in.Colors.Text,
		} {
			*c = strings.ToLower(strings.TrimSpace(*c))
		}
	}
	if in.Status != nil {
		*in.Status = domain.BrandStatus(strings.ToLower(strings.TrimSpace(string(*in.Status))))
	}
}

// validate checks in; requireName is set on creation.
func (in *Input) validate(requireName bool) error {
	in.normalize()
	// omitempty skips empty strings behind pointers, so a blank name is checked here
	if (requireName && in.Name == nil) || (in.Name != nil && *in.Name == "") {
		return validation.Required("name")
	}
	if in.Status != nil && *in.Status == "" {
		in.Status = nil
	}

	return validation.Struct(in)
}

// updates converts in to storage updates. Reaching the last onboarding step
// completes the brand unless a status is given explicitly.
func (in *Input) updates() storage.BrandUpdates {
	u := storage.BrandUpdates{
		Name:           in.Name,
		Tagline:        in.Tagline,
		Industry:       in.Industry,
		Description:    in.Description,
		Colors:         in.Colors,
		Typography:     in.Typography,
		Personality:    in.Personality,
		Cover:          in.Cover,
		OnboardingStep: in.OnboardingStep,
		Status:         in.Status,
	}
	if u.Status == nil && in.OnboardingStep != nil && *in.OnboardingStep >= domain.LastOnboardingStep {
		completed := domain.BrandStatusCompleted
		u.Status = &completed
	}

	return u
}

// brand builds a new brand for owner from in.
func (in *Input) brand(owner domain.UserID) domain.Brand {
	u := in.updates()
	b := domain.Brand{UserID: owner, Status: domain.BrandStatusDraft}
	deref := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	deref(&b.Name, u.Name)
	deref(&b.Tagline, u.Tagline)
	deref(&b.Industry, u.Industry)
	deref(&b.Description, u.Description)
	if u.Colors != nil {
		b.Colors = *u.Colors
	}
	if u.Typography != nil {
		b.Typography = *u.Typography
	}
	if u.Personality != nil {
		b.Personality = *u.Personality
	}
	if u.Cover != nil {
		b.Cover = *u.Cover
	}
	if u.OnboardingStep != nil {
		b.OnboardingStep = *u.OnboardingStep
	}
	if u.Status != nil {
		b.Status = *u.Status
	}

	return b
}

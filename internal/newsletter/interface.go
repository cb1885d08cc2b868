package newsletter

import (
	"context"
	"guidiqo/pkg/domain"
)

// CampaignInput is a newsletter as written in the super-admin console.
type CampaignInput struct {
	Subject  string `json:"subject"  validate:"required,max=150"`
	Title    string `json:"title"    validate:"required,max=150"`
	Body     string `json:"body"     validate:"required,max=20000"`
	CTALabel string `json:"ctaLabel" validate:"max=40"`
	CTAURL   string `json:"ctaUrl"   validate:"required_with=CTALabel,omitempty,url"`
	// TestRecipient, when set, sends the campaign to this address only and
	// stores nothing.
	TestRecipient string `json:"testRecipient" validate:"omitempty,email"`
}

//go:generate mockgen -package mocknewsletter -source=interface.go -destination=mock/mocknewsletter.go *
type Newsletter interface {
	// Schedule stores a queued campaign and enqueues its delivery job, or
	// sends a single test email when in.TestRecipient is set.
	Schedule(ctx context.Context, by domain.User, in CampaignInput) (*domain.Campaign, error)
	// Campaign returns a campaign and its delivery counters.
	Campaign(ctx context.Context, ID domain.CampaignID) (*domain.Campaign, error)
	// Unsubscribe records the opt-out carried by token and returns the email.
	Unsubscribe(ctx context.Context, token string) (string, error)
}

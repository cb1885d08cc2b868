package storage

import (
	"context"
	"guidiqo/pkg/domain"
)

// CampaignUpdates describes optional campaign fields to change. Only non-nil
// fields will be updated.
type CampaignUpdates struct {
	Status      *domain.CampaignStatus
	BatchesDone *int
	Sent        *int
	Skipped     *int
	Failed      *int
	// LastError, when provided, sets the last error text. An empty string value
	// clears it.
	LastError *string
}

// NewsletterStorage persists campaigns and newsletter opt-outs.
type NewsletterStorage interface {
	// StoreCampaign inserts a campaign and returns it with generated fields.
	StoreCampaign(ctx context.Context, campaign domain.Campaign) (*domain.Campaign, error)
	// CampaignByID returns the campaign or nil when unknown.
	CampaignByID(ctx context.Context, ID domain.CampaignID) (*domain.Campaign, error)
	// UpdateCampaign applies updates and returns the updated row, or nil when unknown.
	UpdateCampaign(ctx context.Context, ID domain.CampaignID, updates CampaignUpdates) (*domain.Campaign, error)
	// CountCampaigns returns the number of campaigns ever scheduled.
	CountCampaigns(ctx context.Context) (int64, error)
	// MarkDelivered records that the campaign was handed to the provider for
	// emails. Marking an email twice is a no-op.
	MarkDelivered(ctx context.Context, ID domain.CampaignID, emails []string) error
	// DeliveredEmails returns the lowercased emails already marked for the campaign.
	DeliveredEmails(ctx context.Context, ID domain.CampaignID) ([]string, error)

	// StoreUnsubscribe records an opt-out. Emails compare case-insensitively
	// and storing an existing one is a no-op; created reports whether a row was added.
	StoreUnsubscribe(ctx context.Context, email string) (created bool, err error)
	// UnsubscribedEmails returns every opted-out email, lowercased.
	UnsubscribedEmails(ctx context.Context) ([]string, error)
	// CountUnsubscribes returns the number of opted-out emails.
	CountUnsubscribes(ctx context.Context) (int64, error)
}

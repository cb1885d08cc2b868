package domain

import (
	"time"

	"github.com/google/uuid"
)

// CampaignID uniquely identifies a newsletter campaign.
type CampaignID uuid.UUID

// String returns the canonical textual form of the ID.
func (id CampaignID) String() string { return uuid.UUID(id).String() }

// CampaignStatus represents the lifecycle state of a newsletter campaign.
type CampaignStatus string

const (
	// CampaignStatusQueued indicates the campaign is stored and its job enqueued.
	CampaignStatusQueued CampaignStatus = "queued"
	// CampaignStatusSending indicates at least one batch went out.
	CampaignStatusSending CampaignStatus = "sending"
	// CampaignStatusSent indicates every batch was handed to the email provider.
	CampaignStatusSent CampaignStatus = "sent"
	// CampaignStatusFailed indicates the job gave up after its last attempt.
	CampaignStatusFailed CampaignStatus = "failed"
)

// Campaign is a newsletter sent by a super admin to every subscribed user.
type Campaign struct {
	ID CampaignID `json:"id"`

	Subject  string `json:"subject"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	CTALabel string `json:"ctaLabel"`
	CTAURL   string `json:"ctaUrl"`

	Status CampaignStatus `json:"status"`
	// BatchesDone is the number of recipient batches already handed to the provider.
	// Retries resume from per-recipient delivery records, not from this count.
	BatchesDone int    `json:"batchesDone"`
	Sent        int    `json:"sent"`
	Skipped     int    `json:"skipped"`
	Failed      int    `json:"failed"`
	LastError   string `json:"-"`

	CreatedBy UserID    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Unsubscribe records that an email address opted out of newsletters.
type Unsubscribe struct {
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

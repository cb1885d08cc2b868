package domain

import "time"

// AnnouncementVariant selects the banner style shown in the dashboard.
type AnnouncementVariant string

const (
	AnnouncementInfo    AnnouncementVariant = "info"
	AnnouncementWarning AnnouncementVariant = "warning"
	AnnouncementSuccess AnnouncementVariant = "success"
)

// Announcement is the site-wide banner configured from the super-admin console.
// There is at most one.
type Announcement struct {
	Enabled   bool                `json:"enabled"`
	Message   string              `json:"message"`
	LinkLabel string              `json:"linkLabel"`
	LinkURL   string              `json:"linkUrl"`
	Variant   AnnouncementVariant `json:"variant"`

	UpdatedBy UserID    `json:"updatedBy"`
	UpdatedAt time.Time `json:"updatedAt"`
}

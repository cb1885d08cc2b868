// Package newsletter schedules super-admin campaigns, renders their emails
// and manages unsubscribe tokens. Delivery itself runs in the worker.
package newsletter

import (
	"context"
	"fmt"
	"guidiqo/internal/config"
	"guidiqo/pkg/domain"
	"guidiqo/pkg/logger"
	"guidiqo/pkg/mailer"
	"guidiqo/pkg/serrors"
	"guidiqo/pkg/storage"
	"guidiqo/pkg/validation"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Options configure campaign scheduling and rendering.
type Options struct {
	// MaxAttempts is the maximum number of attempts of a delivery job.
	MaxAttempts int
	Composer    Composer
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxAttempts: cfg.Worker.MaxAttempts,
		Composer: Composer{
			From:              cfg.Newsletter.From,
			PublicBaseURL:     cfg.Newsletter.PublicBaseURL,
			UnsubscribeSecret: cfg.Newsletter.UnsubscribeSecret,
		},
	}
}

type newsletter struct {
	options Options
	storage storage.Storage
	sender  mailer.Sender
}

func (n newsletter) Schedule(ctx context.Context, by domain.User, in CampaignInput) (*domain.Campaign, error) {
	in.Subject = strings.TrimSpace(in.Subject)
	in.Title = strings.TrimSpace(in.Title)
	in.Body = strings.TrimSpace(in.Body)
	in.CTALabel = strings.TrimSpace(in.CTALabel)
	in.CTAURL = strings.TrimSpace(in.CTAURL)
	in.TestRecipient = strings.TrimSpace(in.TestRecipient)
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	campaign := domain.Campaign{
		Subject:   in.Subject,
		Title:     in.Title,
		Body:      in.Body,
		CTALabel:  in.CTALabel,
		CTAURL:    in.CTAURL,
		Status:    domain.CampaignStatusQueued,
		CreatedBy: by.ID,
	}

	if in.TestRecipient != "" {
		return n.sendTest(ctx, campaign, in.TestRecipient)
	}

	var res *domain.Campaign
	if err := n.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		stored, err := tx.StoreCampaign(ctx, campaign)
		if err != nil {
			return fmt.Errorf("could not store campaign: %w", err)
		}
		res = stored

		if _, err := tx.AddJob(ctx, JobArgs{
			CampaignID:  uuid.UUID(stored.ID),
			maxAttempts: n.options.MaxAttempts,
		}, nil); err != nil {
			return fmt.Errorf("could not add job: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not schedule campaign: %w", err)
	}

	logger.Info(ctx, "newsletter campaign scheduled",
		zap.String("campaignID", res.ID.String()), zap.String("subject", res.Subject))

	return res, nil
}

func (n newsletter) sendTest(ctx context.Context, campaign domain.Campaign, to string) (*domain.Campaign, error) {
	email, err := n.options.Composer.Compose(campaign, normalizeEmail(to))
	if err != nil {
		return nil, err
	}
	email.Subject = "[TEST] " + email.Subject

	if _, err := n.sender.Send(ctx, email); err != nil {
		return nil, fmt.Errorf("could not send test email: %w", err)
	}

	campaign.Status = domain.CampaignStatusSent
	campaign.Sent = 1
	campaign.BatchesDone = 1

	return &campaign, nil
}

func (n newsletter) Campaign(ctx context.Context, ID domain.CampaignID) (*domain.Campaign, error) {
	res, err := n.storage.CampaignByID(ctx, ID)
	if err != nil {
		return nil, fmt.Errorf("could not get campaign: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "Campagne introuvable.")
	}

	return res, nil
}

func (n newsletter) Unsubscribe(ctx context.Context, token string) (string, error) {
	email, err := ParseUnsubscribeToken(n.options.Composer.UnsubscribeSecret, strings.TrimSpace(token))
	if err != nil {
		return "", serrors.Wrap(serrors.ErrBadRequest, err, "Lien de désinscription invalide.")
	}

	created, err := n.storage.StoreUnsubscribe(ctx, email)
	if err != nil {
		return "", fmt.Errorf("could not store unsubscribe: %w", err)
	}
	if created {
		logger.Info(ctx, "newsletter unsubscribe recorded")
	}

	return email, nil
}

// New creates a Newsletter service.
func New(storage storage.Storage, sender mailer.Sender, options Options) Newsletter {
	return &newsletter{
		options: options,
		storage: storage,
		sender:  sender,
	}
}

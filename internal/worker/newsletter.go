package worker

import (
	"context"
	"errors"
	"fmt"
	"guidiqo/internal/newsletter"
	"guidiqo/pkg/domain"
	"guidiqo/pkg/logger"
	"guidiqo/pkg/mailer"
	"guidiqo/pkg/serrors"
	"guidiqo/pkg/storage"
	"strings"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// NewsletterWorker is a River worker delivering newsletter campaigns.
//
// Recipients are the user emails minus the unsubscribed ones, in a stable
// order, split into batches of Options.BatchSize. Every delivered batch is
// recorded per recipient before the counters are updated, so a retried job
// only mails the recipients without a delivery record, whatever happened to
// the recipient list in the meantime.
//
// Provider calls of every concurrent job share one token bucket (SendRate per
// second). When the provider still throttles us the job is snoozed for
// RateLimitSnooze. Any other failure is retried by River; on the last attempt
// the campaign is marked failed and the undelivered recipients are counted
// as failed.
type NewsletterWorker struct {
	river.WorkerDefaults[newsletter.JobArgs]

	options  Options
	storage  storage.AllStorage
	sender   mailer.Sender
	composer newsletter.Composer
	limiter  *rate.Limiter
}

// NewNewsletterWorker constructs a NewsletterWorker.
func NewNewsletterWorker(storage storage.AllStorage,
	sender mailer.Sender,
	composer newsletter.Composer,
	options Options) *NewsletterWorker {
	if options.BatchSize <= 0 || options.BatchSize > mailer.MaxBatchSize {
		options.BatchSize = mailer.MaxBatchSize
	}

	limit := rate.Inf
	if options.SendRate > 0 {
		limit = rate.Limit(options.SendRate)
	}

	return &NewsletterWorker{
		options:  options,
		storage:  storage,
		sender:   sender,
		composer: composer,
		limiter:  rate.NewLimiter(limit, 1),
	}
}

// Work delivers the remaining batches of one campaign.
func (w *NewsletterWorker) Work(ctx context.Context, job *river.Job[newsletter.JobArgs]) error {
	campaignID := domain.CampaignID(job.Args.CampaignID)
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.String("campaignID", campaignID.String()))

	campaign, err := w.storage.CampaignByID(ctx, campaignID)
	if err != nil {
		return fmt.Errorf("could not get campaign: %w", err)
	}
	if campaign == nil {
		return river.JobCancel(errors.New("campaign not found")) //nolint: wrapcheck
	}
	if campaign.Status == domain.CampaignStatusSent {
		logger.Info(ctx, "campaign already sent, skipping")

		return nil
	}

	pending, sent, skipped, err := w.recipients(ctx, campaignID)
	if err != nil {
		return err
	}
	batches := chunk(pending, w.options.BatchSize)

	done := campaign.BatchesDone
	for i, batch := range batches {
		if err := w.sendBatch(ctx, *campaign, batch); err != nil {
			return w.handleFailure(ctx, job, campaign, batches[i:], err)
		}
		if err := w.storage.MarkDelivered(ctx, campaignID, batch); err != nil {
			return fmt.Errorf("could not record delivered batch: %w", err)
		}

		sent += len(batch)
		done++
		status := domain.CampaignStatusSending
		batchesDone, sentSoFar, skippedSoFar := done, sent, skipped
		updated, err := w.storage.UpdateCampaign(ctx, campaignID, storage.CampaignUpdates{
			Status:      &status,
			BatchesDone: &batchesDone,
			Sent:        &sentSoFar,
			Skipped:     &skippedSoFar,
		})
		if err != nil {
			return fmt.Errorf("could not update campaign counters: %w", err)
		}
		if updated != nil {
			campaign = updated
		}

		logger.Debug(ctx, "newsletter batch sent", zap.Int("batch", i+1), zap.Int("batches", len(batches)))
	}

	status := domain.CampaignStatusSent
	noError := ""
	if _, err := w.storage.UpdateCampaign(ctx, campaignID, storage.CampaignUpdates{
		Status:    &status,
		Sent:      &sent,
		Skipped:   &skipped,
		LastError: &noError,
	}); err != nil {
		return fmt.Errorf("could not mark campaign sent: %w", err)
	}

	logger.Info(ctx, "campaign sent", zap.Int("sent", sent), zap.Int("skipped", skipped))

	return nil
}

// recipients returns the emails still to mail in a stable order, the number of
// recipients already delivered for the campaign and the number of pending
// users skipped because they unsubscribed. A delivered recipient who
// unsubscribed afterwards still counts as delivered.
func (w *NewsletterWorker) recipients(ctx context.Context, campaignID domain.CampaignID) ([]string, int, int, error) {
	emails, err := w.storage.RecipientEmails(ctx)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("could not list recipients: %w", err)
	}
	unsubscribed, err := w.storage.UnsubscribedEmails(ctx)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("could not list unsubscribes: %w", err)
	}
	delivered, err := w.storage.DeliveredEmails(ctx, campaignID)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("could not list deliveries: %w", err)
	}

	optedOut := emailSet(unsubscribed)
	done := emailSet(delivered)

	out := make([]string, 0, len(emails))
	skipped := 0
	for _, e := range emails {
		key := normalizeEmail(e)
		if _, ok := done[key]; ok {
			continue
		}
		if _, ok := optedOut[key]; ok {
			skipped++

			continue
		}
		out = append(out, e)
	}

	return out, len(done), skipped, nil
}

func emailSet(emails []string) map[string]struct{} {
	set := make(map[string]struct{}, len(emails))
	for _, e := range emails {
		set[normalizeEmail(e)] = struct{}{}
	}

	return set
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (w *NewsletterWorker) sendBatch(ctx context.Context, campaign domain.Campaign, batch []string) error {
	emails := make([]mailer.Email, 0, len(batch))
	for _, to := range batch {
		email, err := w.composer.Compose(campaign, to)
		if err != nil {
			return fmt.Errorf("could not compose email: %w", err)
		}
		emails = append(emails, email)
	}

	if err := w.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("could not wait for send slot: %w", err)
	}

	if _, err := w.sender.SendBatch(ctx, emails); err != nil {
		return fmt.Errorf("could not send batch: %w", err)
	}

	return nil
}

// handleFailure records err on the campaign and maps it to a River action.
func (w *NewsletterWorker) handleFailure(ctx context.Context,
	job *river.Job[newsletter.JobArgs],
	campaign *domain.Campaign,
	remaining [][]string,
	err error) error {
	logger.Error(ctx, "could not deliver newsletter batch", zap.Error(err), zap.Int("attempt", job.Attempt))

	lastError := err.Error()
	updates := storage.CampaignUpdates{LastError: &lastError}

	rateLimited := errors.Is(err, serrors.ErrRateLimited)
	if !rateLimited && job.Attempt >= job.MaxAttempts {
		failed := campaign.Failed
		for _, b := range remaining {
			failed += len(b)
		}
		status := domain.CampaignStatusFailed
		updates.Status = &status
		updates.Failed = &failed
	}

	if _, uErr := w.storage.UpdateCampaign(ctx, campaign.ID, updates); uErr != nil {
		logger.Error(ctx, "could not record campaign failure", zap.Error(uErr))
	}

	if rateLimited {
		return river.JobSnooze(w.options.RateLimitSnooze) //nolint: wrapcheck
	}

	return err
}

func chunk(items []string, size int) [][]string {
	var out [][]string
	for size < len(items) {
		items, out = items[size:], append(out, items[:size])
	}
	if len(items) > 0 {
		out = append(out, items)
	}

	return out
}

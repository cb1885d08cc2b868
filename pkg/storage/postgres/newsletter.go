package postgres

import (
	"context"
	"fmt"
	"guidiqo/pkg/domain"
	"guidiqo/pkg/storage"
	"strings"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	campaignsTable    = "newsletter_campaigns"
	unsubscribesTable = "newsletter_unsubscribes"
	deliveriesTable   = "newsletter_deliveries"
)

func (p *PgSQL) StoreCampaign(ctx context.Context, campaign domain.Campaign) (*domain.Campaign, error) {
	var row PgCampaign
	row.FromDomain(campaign)

	var res PgCampaign
	if _, err := p.Builder.Insert(campaignsTable).
		Rows(row).
		Returning(&PgCampaign{}).
		Executor().ScanStructContext(ctx, &res); err != nil {
		return nil, fmt.Errorf("could not store campaign into pg: %w", err)
	}

	return res.ToDomain(), nil
}

func (p *PgSQL) CampaignByID(ctx context.Context, id domain.CampaignID) (*domain.Campaign, error) {
	var row PgCampaign
	found, err := p.Builder.From(campaignsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch campaign by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UpdateCampaign sets the provided counters and status. updated_at is set automatically.
func (p *PgSQL) UpdateCampaign(ctx context.Context,
	id domain.CampaignID,
	updates storage.CampaignUpdates) (*domain.Campaign, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Status != nil {
		rec["status"] = string(*updates.Status)
	}
	for col, v := range map[string]*int{
		"batches_done": updates.BatchesDone,
		"sent":         updates.Sent,
		"skipped":      updates.Skipped,
		"failed":       updates.Failed,
	} {
		if v != nil {
			rec[col] = *v
		}
	}
	if updates.LastError != nil {
		if *updates.LastError == "" {
			// set to NULL when empty string provided
			rec["last_error"] = goqu.L("NULL")
		} else {
			rec["last_error"] = *updates.LastError
		}
	}

	var row PgCampaign
	found, err := p.Builder.Update(campaignsTable).
		Set(rec).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgCampaign{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update campaign in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) CountCampaigns(ctx context.Context) (int64, error) {
	n, err := p.Builder.From(campaignsTable).CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count campaigns: %w", err)
	}

	return n, nil
}

// MarkDelivered records the lowercased emails as delivered for the campaign.
// Emails already marked are ignored.
func (p *PgSQL) MarkDelivered(ctx context.Context, id domain.CampaignID, emails []string) error {
	if len(emails) == 0 {
		return nil
	}

	rows := make([]any, 0, len(emails))
	for _, e := range emails {
		rows = append(rows, goqu.Record{
			"campaign_id": uuid.UUID(id),
			"email":       strings.ToLower(strings.TrimSpace(e)),
		})
	}

	if _, err := p.Builder.Insert(deliveriesTable).
		Rows(rows...).
		OnConflict(goqu.DoNothing()).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not store deliveries into pg: %w", err)
	}

	return nil
}

func (p *PgSQL) DeliveredEmails(ctx context.Context, id domain.CampaignID) ([]string, error) {
	var emails []string
	if err := p.Builder.From(deliveriesTable).
		Select("email").
		Where(goqu.I("campaign_id").Eq(uuid.UUID(id))).
		Order(goqu.I("email").Asc()).
		Executor().ScanValsContext(ctx, &emails); err != nil {
		return nil, fmt.Errorf("could not fetch delivered emails: %w", err)
	}

	return emails, nil
}

// StoreUnsubscribe inserts the lowercased email unless it is already present.
func (p *PgSQL) StoreUnsubscribe(ctx context.Context, email string) (bool, error) {
	res, err := p.Builder.Insert(unsubscribesTable).
		Rows(goqu.Record{"email": strings.ToLower(strings.TrimSpace(email))}).
		OnConflict(goqu.DoNothing()).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not store unsubscribe into pg: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not get affected rows: %w", err)
	}

	return n > 0, nil
}

func (p *PgSQL) UnsubscribedEmails(ctx context.Context) ([]string, error) {
	var emails []string
	if err := p.Builder.From(unsubscribesTable).
		Select("email").
		Order(goqu.I("email").Asc()).
		Executor().ScanValsContext(ctx, &emails); err != nil {
		return nil, fmt.Errorf("could not fetch unsubscribed emails: %w", err)
	}

	return emails, nil
}

func (p *PgSQL) CountUnsubscribes(ctx context.Context) (int64, error) {
	n, err := p.Builder.From(unsubscribesTable).CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count unsubscribes: %w", err)
	}

	return n, nil
}

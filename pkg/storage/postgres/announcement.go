package postgres

import (
	"context"
	"fmt"
	"guidiqo/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const (
	announcementsTable = "announcements"
	// announcementRowID is the key of the only announcement row.
	announcementRowID = 1
)

func (p *PgSQL) Announcement(ctx context.Context) (*domain.Announcement, error) {
	var row PgAnnouncement
	found, err := p.Builder.From(announcementsTable).
		Where(goqu.I("id").Eq(announcementRowID)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch announcement: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// StoreAnnouncement upserts the single announcement row.
func (p *PgSQL) StoreAnnouncement(ctx context.Context, a domain.Announcement) (*domain.Announcement, error) {
	var row PgAnnouncement
	row.FromDomain(a)

	var res PgAnnouncement
	if _, err := p.Builder.Insert(announcementsTable).
		Rows(row).
		OnConflict(goqu.DoUpdate("id", goqu.Record{
			"enabled":    goqu.L("EXCLUDED.enabled"),
			"message":    goqu.L("EXCLUDED.message"),
			"link_label": goqu.L("EXCLUDED.link_label"),
			"link_url":   goqu.L("EXCLUDED.link_url"),
			"variant":    goqu.L("EXCLUDED.variant"),
			"updated_by": goqu.L("EXCLUDED.updated_by"),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		})).
		Returning(&PgAnnouncement{}).
		Executor().ScanStructContext(ctx, &res); err != nil {
		return nil, fmt.Errorf("could not store announcement into pg: %w", err)
	}

	return res.ToDomain(), nil
}

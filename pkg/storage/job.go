package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage enqueues background jobs in the same database as the rest of the
// application data, so a job can be inserted atomically with the rows it
// refers to (e.g. a newsletter campaign and its delivery job).
//
// Example:
//
//	err := s.WithTx(ctx, func(tx storage.AllStorage) error {
//		c, err := tx.StoreCampaign(ctx, campaign)
//		if err != nil { return err }
//		_, err = tx.AddJob(ctx, newsletter.JobArgs{CampaignID: c.ID}, nil)
//		return err
//	})
type JobStorage interface {
	// AddJob enqueues a new job with the given arguments. It is atomic with
	// respect to the surrounding transaction when called on a TxStorage.
	// It returns false when a unique job with the same arguments already exists.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}

package queries

import (
	"context"

	"majestic-manor/internal/pkg/errs"
)

type BillingReadStore interface {
	Summarize(ctx context.Context) (*BillingSummaryView, error)
}

// BillingQueries is the dashboard aggregate: total order count, revenue over
// confirmed bookings, pending count. It is recomputed on every call; at this
// system's scale a single aggregation pass is cheaper than maintaining it.
type BillingQueries interface {
	Summary(ctx context.Context) (*BillingSummaryView, error)
}

type billingQueriesImpl struct {
	store BillingReadStore
}

func NewBillingQueries(store BillingReadStore) BillingQueries {
	return &billingQueriesImpl{store: store}
}

func (b *billingQueriesImpl) Summary(ctx context.Context) (*BillingSummaryView, error) {
	summary, err := b.store.Summarize(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return summary, nil
}

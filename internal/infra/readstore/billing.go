package readstore

import (
	"context"

	"majestic-manor/internal/domain/booking"
	"majestic-manor/internal/infra"
	"majestic-manor/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
)

type BillingReadStore struct {
	db *pgxpool.Pool
}

func NewBillingReadStore(db *pgxpool.Pool) *BillingReadStore {
	return &BillingReadStore{db: db}
}

// The whole summary is one aggregation pass so the three figures are always
// taken from the same snapshot.
const billingSummarySQL = `
SELECT COUNT(*),
       COALESCE(SUM(total_paise) FILTER (WHERE status = 'confirmed'), 0),
       COUNT(*) FILTER (WHERE status = 'pending')
FROM bookings`

func (r *BillingReadStore) Summarize(ctx context.Context) (*queries.BillingSummaryView, error) {
	var view queries.BillingSummaryView
	err := r.db.QueryRow(ctx, billingSummarySQL).
		Scan(&view.TotalOrders, &view.ConfirmedRevenuePaise, &view.PendingPayments)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to summarize billing", err)
	}
	view.ConfirmedRevenueDisplay = booking.NewMoney(view.ConfirmedRevenuePaise).Display()
	return &view, nil
}

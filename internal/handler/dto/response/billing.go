package response

import (
	"majestic-manor/internal/usecase/queries"
)

type BillingSummaryResponse struct {
	TotalOrders             int64  `json:"totalOrders"`
	ConfirmedRevenuePaise   int64  `json:"confirmedRevenuePaise"`
	ConfirmedRevenueDisplay string `json:"confirmedRevenueDisplay"`
	PendingPayments         int64  `json:"pendingPayments"`
}

func FromBillingSummaryView(rm *queries.BillingSummaryView) *BillingSummaryResponse {
	return &BillingSummaryResponse{
		TotalOrders:             rm.TotalOrders,
		ConfirmedRevenuePaise:   rm.ConfirmedRevenuePaise,
		ConfirmedRevenueDisplay: rm.ConfirmedRevenueDisplay,
		PendingPayments:         rm.PendingPayments,
	}
}

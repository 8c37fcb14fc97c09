package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type RoomView struct {
	ID           uuid.UUID `json:"id"`
	Number       string    `json:"number"`
	RoomType     string    `json:"room_type"`
	PricePaise   int64     `json:"price_paise"`
	PriceDisplay string    `json:"price_display"`
	Description  string    `json:"description"`
	Available    bool      `json:"available"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type BookingView struct {
	ID               uuid.UUID `json:"id"`
	RoomID           uuid.UUID `json:"room_id"`
	RoomNumber       string    `json:"room_number"`
	RoomType         string    `json:"room_type"`
	CustomerName     string    `json:"customer_name"`
	CustomerEmail    string    `json:"customer_email"`
	CheckIn          time.Time `json:"check_in"`
	CheckOut         time.Time `json:"check_out"`
	TotalPaise       int64     `json:"total_paise"`
	TotalDisplay     string    `json:"total_display"`
	Status           string    `json:"status"`
	GatewayOrderID   string    `json:"gateway_order_id"`
	GatewayPaymentID *string   `json:"gateway_payment_id,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

type BillingSummaryView struct {
	TotalOrders             int64  `json:"total_orders"`
	ConfirmedRevenuePaise   int64  `json:"confirmed_revenue_paise"`
	ConfirmedRevenueDisplay string `json:"confirmed_revenue_display"`
	PendingPayments         int64  `json:"pending_payments"`
}

type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

// AvailabilityMode controls how the availability query treats existing
// confirmed bookings.
type AvailabilityMode string

const (
	// AvailabilityPointInTime reproduces the original policy: a room with any
	// confirmed booking whose check-out is on or after the query date is
	// excluded, whether or not the requested stay would overlap it.
	AvailabilityPointInTime AvailabilityMode = "point_in_time"
	AvailabilityOverlap     AvailabilityMode = "interval_overlap"
)

type AvailabilityQuery struct {
	// Date the query is evaluated at; zero value means today.
	Date time.Time
	// Text filters case-insensitively against room type, description, or
	// price text. Empty matches everything.
	Text string
	// Stay bounds, only consulted in interval_overlap mode.
	CheckIn  time.Time
	CheckOut time.Time
}

package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyOrderID = errors.New("gateway order id cannot be empty")
)

// Booking is one reservation attempt. It links a room, a customer and a stay
// period to a payment lifecycle, and carries the opaque gateway correlation
// fields. The order id is assigned exactly once, at creation; payment id and
// signature stay empty until a callback is reconciled, and are then recorded
// whether or not verification succeeded.
type Booking struct {
	id               uuid.UUID
	roomID           uuid.UUID
	customerID       uuid.UUID
	period           StayPeriod
	totalAmount      Money
	status           Status
	gatewayOrderID   string
	gatewayPaymentID *string
	gatewaySignature *string
	createdAt        time.Time
	updatedAt        time.Time
}

func NewBooking(
	roomID, customerID uuid.UUID,
	period StayPeriod,
	totalAmount Money,
	gatewayOrderID string,
) (*Booking, error) {
	if gatewayOrderID == "" {
		return nil, ErrEmptyOrderID
	}

	return &Booking{
		id:             uuid.New(),
		roomID:         roomID,
		customerID:     customerID,
		period:         period,
		totalAmount:    totalAmount,
		status:         StatusPending,
		gatewayOrderID: gatewayOrderID,
	}, nil
}

func ReconstructBooking(
	id, roomID, customerID uuid.UUID,
	period StayPeriod,
	totalAmount Money,
	status Status,
	gatewayOrderID string,
	gatewayPaymentID, gatewaySignature *string,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:               id,
		roomID:           roomID,
		customerID:       customerID,
		period:           period,
		totalAmount:      totalAmount,
		status:           status,
		gatewayOrderID:   gatewayOrderID,
		gatewayPaymentID: gatewayPaymentID,
		gatewaySignature: gatewaySignature,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

// Confirm records the callback's payment id and signature and moves the
// booking to confirmed.
func (b *Booking) Confirm(paymentID, signature string) {
	b.recordPaymentAttempt(paymentID, signature)
	b.status = StatusConfirmed
}

// Fail records the callback's payment id and signature and moves the booking
// to failed. The fields are kept even though verification did not pass; they
// are the audit trail for the attempt.
func (b *Booking) Fail(paymentID, signature string) {
	b.recordPaymentAttempt(paymentID, signature)
	b.status = StatusFailed
}

func (b *Booking) recordPaymentAttempt(paymentID, signature string) {
	b.gatewayPaymentID = &paymentID
	b.gatewaySignature = &signature
}

func (b *Booking) IsPending() bool {
	return b.status == StatusPending
}

func (b *Booking) ID() uuid.UUID             { return b.id }
func (b *Booking) RoomID() uuid.UUID         { return b.roomID }
func (b *Booking) CustomerID() uuid.UUID     { return b.customerID }
func (b *Booking) Period() StayPeriod        { return b.period }
func (b *Booking) TotalAmount() Money        { return b.totalAmount }
func (b *Booking) Status() Status            { return b.status }
func (b *Booking) GatewayOrderID() string    { return b.gatewayOrderID }
func (b *Booking) GatewayPaymentID() *string { return b.gatewayPaymentID }
func (b *Booking) GatewaySignature() *string { return b.gatewaySignature }
func (b *Booking) CreatedAt() time.Time      { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time      { return b.updatedAt }

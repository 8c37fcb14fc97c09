package commands

import (
	"context"

	"majestic-manor/internal/domain/booking"
	"majestic-manor/internal/domain/customer"
	"majestic-manor/internal/domain/room"
	"majestic-manor/internal/domain/user"

	"github.com/google/uuid"
)

type RoomRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*room.Room, error)
	Create(ctx context.Context, r *room.Room) error
	Update(ctx context.Context, r *room.Room) error
}

type CustomerRepository interface {
	// FindOldestByEmail resolves duplicates with "first match wins": the
	// earliest created row for the email is the canonical customer.
	FindOldestByEmail(ctx context.Context, email string) (*customer.Customer, error)
	Create(ctx context.Context, c *customer.Customer) error
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	FindByOrderID(ctx context.Context, orderID string) (*booking.Booking, error)
	// UpdateReconciliation persists status plus the gateway payment id and
	// signature in one statement; there is no surrounding transaction.
	UpdateReconciliation(ctx context.Context, b *booking.Booking) error
}

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*user.User, error)
}

// PaymentGateway is the closed adapter surface over the remote gateway.
// CreateOrder returns errs.ErrGatewayConfig or errs.ErrGatewayTransport
// through errors.Is; VerifySignature returns errs.ErrSignatureInvalid on a
// mismatch. No SDK types leak past this interface.
type PaymentGateway interface {
	CreateOrder(ctx context.Context, amountPaise int64, currency string, immediateCapture bool) (string, error)
	VerifySignature(orderID, paymentID, signature string) error
	KeyID() string
}

// EventPublisher emits lifecycle events after terminal transitions. A nil
// implementation is valid and drops everything.
type EventPublisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
}

package commands

import (
	"context"
	"log/slog"
	"time"

	"majestic-manor/internal/domain/booking"
	"majestic-manor/internal/domain/customer"
	"majestic-manor/internal/infra"
	"majestic-manor/internal/infra/events"
	"majestic-manor/internal/observability"
	"majestic-manor/internal/pkg/clock"
	"majestic-manor/internal/pkg/config"
	"majestic-manor/internal/pkg/errs"
	"majestic-manor/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateBookingInput struct {
	RoomID    uuid.UUID
	FirstName string
	LastName  string
	Email     string
	Phone     string
	CheckIn   time.Time
	CheckOut  time.Time
}

// CreateBookingResult carries what the client-side checkout needs to start
// the gateway payment flow.
type CreateBookingResult struct {
	BookingID   uuid.UUID
	OrderID     string
	KeyID       string
	AmountPaise int64
	Currency    string
}

type ReconcilePaymentInput struct {
	OrderID   string
	PaymentID string
	Signature string
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, in CreateBookingInput) (*CreateBookingResult, error)
	ReconcilePayment(ctx context.Context, in ReconcilePaymentInput) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	roomRepo       RoomRepository
	customerRepo   CustomerRepository
	bookingRepo    BookingRepository
	gateway        PaymentGateway
	publisher      EventPublisher
	bookingQueries queries.BookingQueries
	pricer         *booking.Pricer
	policy         config.BookingConfig
	clock          clock.Clock
}

func NewBookingCommands(
	roomRepo RoomRepository,
	customerRepo CustomerRepository,
	bookingRepo BookingRepository,
	gateway PaymentGateway,
	publisher EventPublisher,
	bookingQueries queries.BookingQueries,
	pricer *booking.Pricer,
	policy config.BookingConfig,
	clock clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		roomRepo:       roomRepo,
		customerRepo:   customerRepo,
		bookingRepo:    bookingRepo,
		gateway:        gateway,
		publisher:      publisher,
		bookingQueries: bookingQueries,
		pricer:         pricer,
		policy:         policy,
		clock:          clock,
	}
}

// CreateBooking runs the reservation flow: resolve room, resolve-or-create
// customer, price the stay, open the remote order, then persist a pending
// booking holding the order id. The remote order and the local insert are not
// wrapped in a transaction; a crash between the two leaves an orphaned remote
// order, an accepted gap.
func (b *bookingCommandsImpl) CreateBooking(ctx context.Context, in CreateBookingInput) (*CreateBookingResult, error) {
	roomEntity, err := b.roomRepo.FindByID(ctx, in.RoomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrRoomNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	custEntity, err := b.resolveCustomer(ctx, in)
	if err != nil {
		return nil, err
	}

	period, err := booking.NewStayPeriod(in.CheckIn, in.CheckOut, b.policy.RequireDateOrder)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidStayPeriod)
	}

	total := b.pricer.TotalFor(roomEntity.NightlyPrice(), period)

	orderID, err := b.gateway.CreateOrder(ctx, total.Paise(), b.policy.Currency, true)
	if err != nil {
		// No booking row exists yet; gateway errors surface as-is.
		return nil, err
	}

	bookingEntity, err := booking.NewBooking(roomEntity.ID(), custEntity.ID(), period, total, orderID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := b.bookingRepo.Create(ctx, bookingEntity); err != nil {
		slog.Error("booking insert failed after remote order creation",
			"order_id", orderID, "error", err.Error())
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	observability.BookingTransitions.WithLabelValues(booking.StatusPending.String()).Inc()

	return &CreateBookingResult{
		BookingID:   bookingEntity.ID(),
		OrderID:     orderID,
		KeyID:       b.gateway.KeyID(),
		AmountPaise: total.Paise(),
		Currency:    b.policy.Currency,
	}, nil
}

func (b *bookingCommandsImpl) resolveCustomer(ctx context.Context, in CreateBookingInput) (*customer.Customer, error) {
	email, err := customer.NewEmail(in.Email)
	if err != nil {
		return nil, err
	}

	existing, err := b.customerRepo.FindOldestByEmail(ctx, email.Value())
	if err == nil {
		return existing, nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	created := customer.NewCustomer(in.FirstName, in.LastName, email, in.Phone)
	if err := b.customerRepo.Create(ctx, created); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return created, nil
}

// ReconcilePayment processes a gateway callback. The payment id and signature
// are written to the booking whatever the verification outcome; only the
// resulting status differs. A duplicate callback for the same order is not
// guarded against, last write wins.
func (b *bookingCommandsImpl) ReconcilePayment(ctx context.Context, in ReconcilePaymentInput) (*queries.BookingView, error) {
	bookingEntity, err := b.bookingRepo.FindByOrderID(ctx, in.OrderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	verifyErr := b.gateway.VerifySignature(in.OrderID, in.PaymentID, in.Signature)
	if verifyErr != nil {
		bookingEntity.Fail(in.PaymentID, in.Signature)
	} else {
		bookingEntity.Confirm(in.PaymentID, in.Signature)
	}

	if err := b.bookingRepo.UpdateReconciliation(ctx, bookingEntity); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	observability.BookingTransitions.WithLabelValues(bookingEntity.Status().String()).Inc()
	b.publishTransition(ctx, bookingEntity)

	if verifyErr != nil {
		return nil, verifyErr
	}

	return b.bookingQueries.GetByID(ctx, bookingEntity.ID())
}

func (b *bookingCommandsImpl) publishTransition(ctx context.Context, entity *booking.Booking) {
	if b.publisher == nil {
		return
	}

	routingKey := events.RoutingBookingFailed
	if entity.Status() == booking.StatusConfirmed {
		routingKey = events.RoutingBookingConfirmed
	}

	evt := events.NewBookingEvent(
		routingKey,
		entity.ID().String(),
		entity.RoomID().String(),
		entity.GatewayOrderID(),
		entity.TotalAmount().Paise(),
		b.policy.Currency,
		entity.Status().String(),
		b.clock.Now(),
	)

	if err := b.publisher.PublishJSON(ctx, routingKey, evt); err != nil {
		slog.Warn("failed to publish booking event",
			"routing_key", routingKey, "booking_id", entity.ID().String(), "error", err.Error())
	}
}

package repository

import (
	"context"
	"errors"

	"majestic-manor/internal/domain/booking"
	"majestic-manor/internal/infra"
	"majestic-manor/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{db: db}
}

const insertBookingSQL = `
INSERT INTO bookings (id, room_id, customer_id, check_in, check_out, total_paise, status, gateway_order_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	_, err := r.db.Exec(ctx, insertBookingSQL,
		b.ID(),
		b.RoomID(),
		b.CustomerID(),
		pgconv.DateToPgtype(b.Period().CheckIn()),
		pgconv.DateToPgtype(b.Period().CheckOut()),
		b.TotalAmount().Paise(),
		b.Status().String(),
		b.GatewayOrderID(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create booking", err, classifyPgError(err))
	}
	return nil
}

const selectBookingByOrderSQL = `
SELECT id, room_id, customer_id, check_in, check_out, total_paise, status,
       gateway_order_id, gateway_payment_id, gateway_signature, created_at, updated_at
FROM bookings
WHERE gateway_order_id = $1`

func (r *BookingRepository) FindByOrderID(ctx context.Context, orderID string) (*booking.Booking, error) {
	row := r.db.QueryRow(ctx, selectBookingByOrderSQL, orderID)

	var (
		id, roomID, customerID             uuid.UUID
		checkIn, checkOut                  pgtype.Date
		totalPaise                         int64
		status, gatewayOrderID             string
		gatewayPaymentID, gatewaySignature *string
		createdAt, updatedAt               pgtype.Timestamptz
	)

	err := row.Scan(&id, &roomID, &customerID, &checkIn, &checkOut, &totalPaise,
		&status, &gatewayOrderID, &gatewayPaymentID, &gatewaySignature, &createdAt, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by order id", err)
	}

	// Reconstruction bypasses the date-order policy check: stored rows are
	// history, not new input.
	period, err := booking.NewStayPeriod(checkIn.Time, checkOut.Time, false)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt stay period", err)
	}

	parsedStatus, err := booking.NewStatus(status)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt booking status", err)
	}

	return booking.ReconstructBooking(
		id, roomID, customerID,
		period,
		booking.NewMoney(totalPaise),
		parsedStatus,
		gatewayOrderID,
		gatewayPaymentID, gatewaySignature,
		createdAt.Time, updatedAt.Time,
	), nil
}

const updateReconciliationSQL = `
UPDATE bookings
SET status = $2, gateway_payment_id = $3, gateway_signature = $4, updated_at = now()
WHERE id = $1`

func (r *BookingRepository) UpdateReconciliation(ctx context.Context, b *booking.Booking) error {
	tag, err := r.db.Exec(ctx, updateReconciliationSQL,
		b.ID(),
		b.Status().String(),
		b.GatewayPaymentID(),
		b.GatewaySignature(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking reconciliation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking vanished during reconciliation", nil, infra.KindNotFound)
	}
	return nil
}

func classifyPgError(err error) infra.RepositoryErrorKind {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return infra.KindDuplicateKey
		case "23503":
			return infra.KindForeignKeyViolated
		}
	}
	return infra.KindDBFailure
}

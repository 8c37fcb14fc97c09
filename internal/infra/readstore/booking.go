package readstore

import (
	"context"

	"majestic-manor/internal/domain/booking"
	"majestic-manor/internal/infra"
	"majestic-manor/internal/pkg/pgconv"
	"majestic-manor/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingReadStore struct {
	db *pgxpool.Pool
}

func NewBookingReadStore(db *pgxpool.Pool) *BookingReadStore {
	return &BookingReadStore{db: db}
}

const selectBookingViewColumns = `
SELECT b.id, b.room_id, r.number, r.room_type,
       trim(c.first_name || ' ' || c.last_name) AS customer_name, c.email,
       b.check_in, b.check_out, b.total_paise, b.status,
       b.gateway_order_id, b.gateway_payment_id, b.created_at
FROM bookings b
JOIN rooms r ON r.id = b.room_id
JOIN customers c ON c.id = b.customer_id`

const selectBookingViewByIDSQL = selectBookingViewColumns + `
WHERE b.id = $1`

const selectBookingsNewestFirstSQL = selectBookingViewColumns + `
ORDER BY b.created_at DESC, b.id DESC`

func (r *BookingReadStore) FindViewByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row := r.db.QueryRow(ctx, selectBookingViewByIDSQL, id)
	view, err := scanBookingView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking view", err)
	}
	return view, nil
}

func (r *BookingReadStore) FindAllNewestFirst(ctx context.Context) ([]*queries.BookingView, error) {
	rows, err := r.db.Query(ctx, selectBookingsNewestFirstSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query bookings", err)
	}
	defer rows.Close()

	views := make([]*queries.BookingView, 0)
	for rows.Next() {
		view, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", err)
	}
	return views, nil
}

func scanBookingView(row pgx.Row) (*queries.BookingView, error) {
	var (
		view              queries.BookingView
		checkIn, checkOut pgtype.Date
		paymentID         pgtype.Text
		createdAt         pgtype.Timestamptz
	)
	err := row.Scan(&view.ID, &view.RoomID, &view.RoomNumber, &view.RoomType,
		&view.CustomerName, &view.CustomerEmail,
		&checkIn, &checkOut, &view.TotalPaise, &view.Status,
		&view.GatewayOrderID, &paymentID, &createdAt)
	if err != nil {
		return nil, err
	}
	view.CheckIn = checkIn.Time
	view.CheckOut = checkOut.Time
	view.TotalDisplay = booking.NewMoney(view.TotalPaise).Display()
	view.GatewayPaymentID = pgconv.StringPtrFromPgtype(paymentID)
	view.CreatedAt = createdAt.Time
	return &view, nil
}

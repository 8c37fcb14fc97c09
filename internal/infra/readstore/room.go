package readstore

import (
	"context"
	"strings"

	"majestic-manor/internal/domain/booking"
	"majestic-manor/internal/infra"
	"majestic-manor/internal/pkg/pgconv"
	"majestic-manor/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RoomReadStore struct {
	db *pgxpool.Pool
}

func NewRoomReadStore(db *pgxpool.Pool) *RoomReadStore {
	return &RoomReadStore{db: db}
}

const selectRoomColumns = `
SELECT id, number, room_type, price_paise, description, available, created_at, updated_at
FROM rooms`

// Point-in-time availability: a room is taken if any confirmed booking has a
// check-out on or after the query date, regardless of whether the stay being
// searched for would actually overlap it.
const availablePointInTimeSQL = selectRoomColumns + `
WHERE available = TRUE
  AND NOT EXISTS (
    SELECT 1 FROM bookings b
    WHERE b.room_id = rooms.id
      AND b.status = 'confirmed'
      AND b.check_out >= $1
  )
  AND ($2 = '' OR room_type ILIKE $3 OR description ILIKE $3
       OR price_paise::text LIKE $3
       OR to_char(price_paise / 100.0, 'FM999999990.00') LIKE $3)
ORDER BY number`

const availableOverlapSQL = selectRoomColumns + `
WHERE available = TRUE
  AND NOT EXISTS (
    SELECT 1 FROM bookings b
    WHERE b.room_id = rooms.id
      AND b.status = 'confirmed'
      AND b.check_in < $2
      AND b.check_out > $1
  )
  AND ($3 = '' OR room_type ILIKE $4 OR description ILIKE $4
       OR price_paise::text LIKE $4
       OR to_char(price_paise / 100.0, 'FM999999990.00') LIKE $4)
ORDER BY number`

const selectRoomByIDSQL = selectRoomColumns + `
WHERE id = $1`

func (r *RoomReadStore) FindAvailable(ctx context.Context, q queries.AvailabilityQuery, mode queries.AvailabilityMode) ([]*queries.RoomView, error) {
	text := strings.TrimSpace(q.Text)
	pattern := "%" + text + "%"

	var (
		rows pgx.Rows
		err  error
	)
	if mode == queries.AvailabilityOverlap && !q.CheckIn.IsZero() && !q.CheckOut.IsZero() {
		rows, err = r.db.Query(ctx, availableOverlapSQL,
			pgconv.DateToPgtype(q.CheckIn), pgconv.DateToPgtype(q.CheckOut), text, pattern)
	} else {
		rows, err = r.db.Query(ctx, availablePointInTimeSQL,
			pgconv.DateToPgtype(q.Date), text, pattern)
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query available rooms", err)
	}
	defer rows.Close()

	views := make([]*queries.RoomView, 0)
	for rows.Next() {
		view, err := scanRoomView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan room row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read room rows", err)
	}
	return views, nil
}

func (r *RoomReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RoomView, error) {
	row := r.db.QueryRow(ctx, selectRoomByIDSQL, id)
	view, err := scanRoomView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room by id", err)
	}
	return view, nil
}

func scanRoomView(row pgx.Row) (*queries.RoomView, error) {
	var (
		view                 queries.RoomView
		createdAt, updatedAt pgtype.Timestamptz
	)
	err := row.Scan(&view.ID, &view.Number, &view.RoomType, &view.PricePaise,
		&view.Description, &view.Available, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	view.PriceDisplay = booking.NewMoney(view.PricePaise).Display()
	view.CreatedAt = createdAt.Time
	view.UpdatedAt = updatedAt.Time
	return &view, nil
}

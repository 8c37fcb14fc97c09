package repository

import (
	"context"

	"majestic-manor/internal/domain/booking"
	"majestic-manor/internal/domain/room"
	"majestic-manor/internal/infra"
	"majestic-manor/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RoomRepository struct {
	db *pgxpool.Pool
}

func NewRoomRepository(db *pgxpool.Pool) *RoomRepository {
	return &RoomRepository{db: db}
}

const selectRoomByIDSQL = `
SELECT id, number, room_type, price_paise, description, available, created_at, updated_at
FROM rooms
WHERE id = $1`

func (r *RoomRepository) FindByID(ctx context.Context, id uuid.UUID) (*room.Room, error) {
	row := r.db.QueryRow(ctx, selectRoomByIDSQL, id)

	var (
		roomID               uuid.UUID
		number, roomType     string
		pricePaise           int64
		description          string
		available            bool
		createdAt, updatedAt pgtype.Timestamptz
	)

	err := row.Scan(&roomID, &number, &roomType, &pricePaise, &description, &available, &createdAt, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room by id", err)
	}

	parsedType, err := room.NewType(roomType)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt room type", err)
	}

	return room.ReconstructRoom(
		roomID, number, parsedType,
		booking.NewMoney(pricePaise),
		description, available,
		createdAt.Time, updatedAt.Time,
	), nil
}

const insertRoomSQL = `
INSERT INTO rooms (id, number, room_type, price_paise, description, available)
VALUES ($1, $2, $3, $4, $5, $6)`

func (r *RoomRepository) Create(ctx context.Context, entity *room.Room) error {
	_, err := r.db.Exec(ctx, insertRoomSQL,
		entity.ID(),
		entity.Number(),
		entity.RoomType().String(),
		entity.NightlyPrice().Paise(),
		entity.Description(),
		entity.Available(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create room", err, classifyPgError(err))
	}
	return nil
}

const updateRoomSQL = `
UPDATE rooms
SET price_paise = $2, description = $3, available = $4, updated_at = now()
WHERE id = $1`

func (r *RoomRepository) Update(ctx context.Context, entity *room.Room) error {
	tag, err := r.db.Exec(ctx, updateRoomSQL,
		entity.ID(),
		entity.NightlyPrice().Paise(),
		entity.Description(),
		entity.Available(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update room", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}

package commands

import (
	"context"
	"log/slog"

	"majestic-manor/internal/domain/booking"
	"majestic-manor/internal/domain/room"
	"majestic-manor/internal/infra"
	"majestic-manor/internal/pkg/errs"

	"github.com/google/uuid"
)

type CreateRoomInput struct {
	Number      string
	RoomType    string
	PricePaise  int64
	Description string
}

type UpdateRoomInput struct {
	PricePaise  *int64
	Description *string
	Available   *bool
}

// RoomCacheInvalidator drops cached catalog entries after a write.
type RoomCacheInvalidator interface {
	Invalidate(ctx context.Context) error
}

// RoomCommands is the back-office write surface for the catalog. Rooms are
// never deleted: historical bookings reference them.
type RoomCommands interface {
	CreateRoom(ctx context.Context, in CreateRoomInput) (uuid.UUID, error)
	UpdateRoom(ctx context.Context, id uuid.UUID, in UpdateRoomInput) error
}

type roomCommandsImpl struct {
	roomRepo    RoomRepository
	invalidator RoomCacheInvalidator
}

func NewRoomCommands(roomRepo RoomRepository, invalidator RoomCacheInvalidator) RoomCommands {
	return &roomCommandsImpl{
		roomRepo:    roomRepo,
		invalidator: invalidator,
	}
}

func (r *roomCommandsImpl) CreateRoom(ctx context.Context, in CreateRoomInput) (uuid.UUID, error) {
	roomType, err := room.NewType(in.RoomType)
	if err != nil {
		return uuid.Nil, err
	}

	price, err := booking.NewMoneyFromPaise(in.PricePaise)
	if err != nil {
		return uuid.Nil, err
	}

	entity, err := room.NewRoom(in.Number, roomType, price, in.Description)
	if err != nil {
		return uuid.Nil, err
	}

	if err := r.roomRepo.Create(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, errs.ErrDuplicateRoomNumber
		}
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	r.invalidate(ctx)
	return entity.ID(), nil
}

func (r *roomCommandsImpl) UpdateRoom(ctx context.Context, id uuid.UUID, in UpdateRoomInput) error {
	entity, err := r.roomRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrRoomNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if in.PricePaise != nil {
		price, err := booking.NewMoneyFromPaise(*in.PricePaise)
		if err != nil {
			return err
		}
		if err := entity.ChangePrice(price); err != nil {
			return err
		}
	}
	if in.Description != nil {
		entity.ChangeDescription(*in.Description)
	}
	if in.Available != nil {
		entity.SetAvailable(*in.Available)
	}

	if err := r.roomRepo.Update(ctx, entity); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	r.invalidate(ctx)
	return nil
}

func (r *roomCommandsImpl) invalidate(ctx context.Context) {
	if r.invalidator == nil {
		return
	}
	if err := r.invalidator.Invalidate(ctx); err != nil {
		slog.Warn("room cache invalidation failed", "error", err)
	}
}

package queries

import (
	"context"
	"time"

	"majestic-manor/internal/infra"
	"majestic-manor/internal/pkg/clock"
	"majestic-manor/internal/pkg/errs"

	"github.com/google/uuid"
)

type RoomReadStore interface {
	FindAvailable(ctx context.Context, q AvailabilityQuery, mode AvailabilityMode) ([]*RoomView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
}

type RoomQueries interface {
	ListAvailable(ctx context.Context, q AvailabilityQuery) ([]*RoomView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
}

type roomQueriesImpl struct {
	store RoomReadStore
	mode  AvailabilityMode
	clock clock.Clock
}

func NewRoomQueries(store RoomReadStore, mode AvailabilityMode, clock clock.Clock) RoomQueries {
	return &roomQueriesImpl{
		store: store,
		mode:  mode,
		clock: clock,
	}
}

func (r *roomQueriesImpl) ListAvailable(ctx context.Context, q AvailabilityQuery) ([]*RoomView, error) {
	if q.Date.IsZero() {
		now := r.clock.Now()
		q.Date = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}

	rooms, err := r.store.FindAvailable(ctx, q, r.mode)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return rooms, nil
}

func (r *roomQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error) {
	view, err := r.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrRoomNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

//go:build unit || e2e

package builder

import (
	"time"

	dombooking "majestic-manor/internal/domain/booking"
	domroom "majestic-manor/internal/domain/room"
	reqdto "majestic-manor/internal/handler/dto/request"
	"majestic-manor/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomBuilder struct {
	ID          uuid.UUID
	Number      string
	RoomType    string
	PricePaise  int64
	Description string
	Available   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewRoomBuilder() *RoomBuilder {
	now := time.Now()
	return &RoomBuilder{
		ID:          uuid.New(),
		Number:      "101",
		RoomType:    "double",
		PricePaise:  150000, // 1500.00 INR
		Description: "Garden view double",
		Available:   true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (r *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(r)
	return r
}

func (r *RoomBuilder) BuildDomain() (*domroom.Room, error) {
	roomType, err := domroom.NewType(r.RoomType)
	if err != nil {
		return nil, err
	}
	return domroom.NewRoom(r.Number, roomType, dombooking.NewMoney(r.PricePaise), r.Description)
}

func (r *RoomBuilder) BuildReconstructed() *domroom.Room {
	roomType, _ := domroom.NewType(r.RoomType)
	return domroom.ReconstructRoom(
		r.ID, r.Number, roomType, dombooking.NewMoney(r.PricePaise),
		r.Description, r.Available, r.CreatedAt, r.UpdatedAt,
	)
}

func (r *RoomBuilder) BuildView() *queries.RoomView {
	return &queries.RoomView{
		ID:           r.ID,
		Number:       r.Number,
		RoomType:     r.RoomType,
		PricePaise:   r.PricePaise,
		PriceDisplay: dombooking.NewMoney(r.PricePaise).Display(),
		Description:  r.Description,
		Available:    r.Available,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func (r *RoomBuilder) BuildCreateRequestDTO() reqdto.CreateRoomRequest {
	return reqdto.CreateRoomRequest{
		Number:      r.Number,
		RoomType:    r.RoomType,
		PricePaise:  r.PricePaise,
		Description: r.Description,
	}
}

package response

import (
	"time"

	"majestic-manor/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomResponse struct {
	ID           uuid.UUID `json:"id"`
	Number       string    `json:"number"`
	RoomType     string    `json:"roomType"`
	PricePaise   int64     `json:"pricePaise"`
	PriceDisplay string    `json:"priceDisplay"`
	Description  string    `json:"description"`
	Available    bool      `json:"available"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func FromRoomView(rm *queries.RoomView) *RoomResponse {
	return &RoomResponse{
		ID:           rm.ID,
		Number:       rm.Number,
		RoomType:     rm.RoomType,
		PricePaise:   rm.PricePaise,
		PriceDisplay: rm.PriceDisplay,
		Description:  rm.Description,
		Available:    rm.Available,
		CreatedAt:    rm.CreatedAt,
		UpdatedAt:    rm.UpdatedAt,
	}
}

func FromRoomViews(rms []*queries.RoomView) []*RoomResponse {
	out := make([]*RoomResponse, len(rms))
	for i, rm := range rms {
		out[i] = FromRoomView(rm)
	}
	return out
}

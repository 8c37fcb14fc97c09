package request

import (
	"strings"

	"majestic-manor/internal/usecase/commands"
)

type CreateRoomRequest struct {
	Number      string `json:"number" binding:"required,max=10"`
	RoomType    string `json:"room_type" binding:"required,oneof=single double suite"`
	PricePaise  int64  `json:"price_paise" binding:"required,min=0"`
	Description string `json:"description"`
}

func (r CreateRoomRequest) ToInput() commands.CreateRoomInput {
	return commands.CreateRoomInput{
		Number:      strings.TrimSpace(r.Number),
		RoomType:    r.RoomType,
		PricePaise:  r.PricePaise,
		Description: strings.TrimSpace(r.Description),
	}
}

type UpdateRoomRequest struct {
	PricePaise  *int64  `json:"price_paise,omitempty" binding:"omitempty,min=0"`
	Description *string `json:"description,omitempty"`
	Available   *bool   `json:"available,omitempty"`
}

func (r UpdateRoomRequest) ToInput() commands.UpdateRoomInput {
	return commands.UpdateRoomInput{
		PricePaise:  r.PricePaise,
		Description: r.Description,
		Available:   r.Available,
	}
}

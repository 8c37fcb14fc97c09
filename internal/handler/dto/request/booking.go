package request

import (
	"errors"
	"strings"
	"time"

	"majestic-manor/internal/usecase/commands"

	"github.com/google/uuid"
)

var ErrInvalidDate = errors.New("dates must be formatted YYYY-MM-DD")

const dateLayout = "2006-01-02"

type CreateBookingRequest struct {
	RoomID    uuid.UUID `json:"room_id" binding:"required"`
	FirstName string    `json:"first_name" binding:"required"`
	LastName  string    `json:"last_name" binding:"required"`
	Email     string    `json:"email" binding:"required,email"`
	Phone     string    `json:"phone" binding:"required"`
	CheckIn   string    `json:"check_in" binding:"required"`
	CheckOut  string    `json:"check_out" binding:"required"`
}

func (r CreateBookingRequest) ToInput() (commands.CreateBookingInput, error) {
	checkIn, err := time.Parse(dateLayout, r.CheckIn)
	if err != nil {
		return commands.CreateBookingInput{}, ErrInvalidDate
	}
	checkOut, err := time.Parse(dateLayout, r.CheckOut)
	if err != nil {
		return commands.CreateBookingInput{}, ErrInvalidDate
	}

	return commands.CreateBookingInput{
		RoomID:    r.RoomID,
		FirstName: strings.TrimSpace(r.FirstName),
		LastName:  strings.TrimSpace(r.LastName),
		Email:     strings.TrimSpace(r.Email),
		Phone:     strings.TrimSpace(r.Phone),
		CheckIn:   checkIn,
		CheckOut:  checkOut,
	}, nil
}

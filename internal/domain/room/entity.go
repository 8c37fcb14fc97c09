package room

import (
	"errors"
	"strings"
	"time"

	"majestic-manor/internal/domain/booking"

	"github.com/google/uuid"
)

var (
	ErrEmptyRoomNumber   = errors.New("room number cannot be empty")
	ErrRoomNumberTooLong = errors.New("room number is too long (max 10 characters)")
	ErrNegativePrice     = errors.New("nightly price cannot be negative")
)

const (
	MaxRoomNumberLength = 10
)

// Room is a bookable unit. Number and type never change after creation;
// price, description and the availability flag are edited from the back office.
type Room struct {
	id           uuid.UUID
	number       string
	roomType     Type
	nightlyPrice booking.Money
	description  string
	available    bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewRoom(number string, roomType Type, nightlyPrice booking.Money, description string) (*Room, error) {
	if err := validateNumber(number); err != nil {
		return nil, err
	}
	if !roomType.IsValid() {
		return nil, ErrInvalidRoomType
	}
	if nightlyPrice.Paise() < 0 {
		return nil, ErrNegativePrice
	}

	return &Room{
		id:           uuid.New(),
		number:       strings.TrimSpace(number),
		roomType:     roomType,
		nightlyPrice: nightlyPrice,
		description:  description,
		available:    true,
	}, nil
}

func ReconstructRoom(
	id uuid.UUID,
	number string,
	roomType Type,
	nightlyPrice booking.Money,
	description string,
	available bool,
	createdAt, updatedAt time.Time,
) *Room {
	return &Room{
		id:           id,
		number:       number,
		roomType:     roomType,
		nightlyPrice: nightlyPrice,
		description:  description,
		available:    available,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (r *Room) SetAvailable(available bool) {
	r.available = available
}

func (r *Room) ChangePrice(price booking.Money) error {
	if price.Paise() < 0 {
		return ErrNegativePrice
	}
	r.nightlyPrice = price
	return nil
}

func (r *Room) ChangeDescription(description string) {
	r.description = description
}

func validateNumber(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return ErrEmptyRoomNumber
	}
	if len(number) > MaxRoomNumberLength {
		return ErrRoomNumberTooLong
	}
	return nil
}

func (r *Room) ID() uuid.UUID               { return r.id }
func (r *Room) Number() string              { return r.number }
func (r *Room) RoomType() Type              { return r.roomType }
func (r *Room) NightlyPrice() booking.Money { return r.nightlyPrice }
func (r *Room) Description() string         { return r.description }
func (r *Room) Available() bool             { return r.available }
func (r *Room) CreatedAt() time.Time        { return r.createdAt }
func (r *Room) UpdatedAt() time.Time        { return r.updatedAt }

//go:build unit || e2e

package builder

import (
	"time"

	dombooking "majestic-manor/internal/domain/booking"
	reqdto "majestic-manor/internal/handler/dto/request"
	"majestic-manor/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID             uuid.UUID
	RoomID         uuid.UUID
	CustomerID     uuid.UUID
	RoomNumber     string
	RoomType       string
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	CheckIn        time.Time
	CheckOut       time.Time
	TotalPaise     int64
	Status         string
	GatewayOrderID string
	CreatedAt      time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now()
	return &BookingBuilder{
		ID:             uuid.New(),
		RoomID:         uuid.New(),
		CustomerID:     uuid.New(),
		RoomNumber:     "101",
		RoomType:       "double",
		FirstName:      "Asha",
		LastName:       "Nair",
		Email:          "asha.nair@example.com",
		Phone:          "+919876543210",
		CheckIn:        time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:       time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		TotalPaise:     150000,
		Status:         "pending",
		GatewayOrderID: "order_MhZ7aBcDeFgHiJ",
		CreatedAt:      now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	period, err := dombooking.NewStayPeriod(b.CheckIn, b.CheckOut, false)
	if err != nil {
		return nil, err
	}
	return dombooking.NewBooking(b.RoomID, b.CustomerID, period, dombooking.NewMoney(b.TotalPaise), b.GatewayOrderID)
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:             b.ID,
		RoomID:         b.RoomID,
		RoomNumber:     b.RoomNumber,
		RoomType:       b.RoomType,
		CustomerName:   b.FirstName + " " + b.LastName,
		CustomerEmail:  b.Email,
		CheckIn:        b.CheckIn,
		CheckOut:       b.CheckOut,
		TotalPaise:     b.TotalPaise,
		TotalDisplay:   dombooking.NewMoney(b.TotalPaise).Display(),
		Status:         b.Status,
		GatewayOrderID: b.GatewayOrderID,
		CreatedAt:      b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		RoomID:    b.RoomID,
		FirstName: b.FirstName,
		LastName:  b.LastName,
		Email:     b.Email,
		Phone:     b.Phone,
		CheckIn:   b.CheckIn.Format("2006-01-02"),
		CheckOut:  b.CheckOut.Format("2006-01-02"),
	}
}

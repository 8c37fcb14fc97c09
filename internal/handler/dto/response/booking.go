package response

import (
	"time"

	"majestic-manor/internal/usecase/commands"
	"majestic-manor/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID               uuid.UUID `json:"id"`
	RoomID           uuid.UUID `json:"roomId"`
	RoomNumber       string    `json:"roomNumber"`
	RoomType         string    `json:"roomType"`
	CustomerName     string    `json:"customerName"`
	CustomerEmail    string    `json:"customerEmail"`
	CheckIn          string    `json:"checkIn"`
	CheckOut         string    `json:"checkOut"`
	TotalPaise       int64     `json:"totalPaise"`
	TotalDisplay     string    `json:"totalDisplay"`
	Status           string    `json:"status"`
	GatewayOrderID   string    `json:"gatewayOrderId"`
	GatewayPaymentID *string   `json:"gatewayPaymentId,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

// CheckoutResponse is everything the browser needs to open the gateway
// checkout widget after a booking is created.
type CheckoutResponse struct {
	BookingID   uuid.UUID `json:"bookingId"`
	OrderID     string    `json:"orderId"`
	KeyID       string    `json:"keyId"`
	AmountPaise int64     `json:"amountPaise"`
	Currency    string    `json:"currency"`
}

func FromBookingView(rm *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:               rm.ID,
		RoomID:           rm.RoomID,
		RoomNumber:       rm.RoomNumber,
		RoomType:         rm.RoomType,
		CustomerName:     rm.CustomerName,
		CustomerEmail:    rm.CustomerEmail,
		CheckIn:          rm.CheckIn.Format("2006-01-02"),
		CheckOut:         rm.CheckOut.Format("2006-01-02"),
		TotalPaise:       rm.TotalPaise,
		TotalDisplay:     rm.TotalDisplay,
		Status:           rm.Status,
		GatewayOrderID:   rm.GatewayOrderID,
		GatewayPaymentID: rm.GatewayPaymentID,
		CreatedAt:        rm.CreatedAt,
	}
}

func FromCheckoutResult(res *commands.CreateBookingResult) *CheckoutResponse {
	return &CheckoutResponse{
		BookingID:   res.BookingID,
		OrderID:     res.OrderID,
		KeyID:       res.KeyID,
		AmountPaise: res.AmountPaise,
		Currency:    res.Currency,
	}
}

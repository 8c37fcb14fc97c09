//go:build e2e

package booking_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	reqdto "majestic-manor/internal/handler/dto/request"
	resdto "majestic-manor/internal/handler/dto/response"
	"majestic-manor/internal/infra/gateway/razorpay"
	"majestic-manor/tests/common/dbtest"
	commonhttp "majestic-manor/tests/common/httptest"
	"majestic-manor/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type bookingSuite struct {
	e2e.SharedSuite
	gatewayStub *httptest.Server
	orderSeq    atomic.Int64
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(bookingSuite))
}

func (s *bookingSuite) SetupSuite() {
	// The stub stands in for the payment gateway's order API.
	s.gatewayStub = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/orders" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if _, _, ok := r.BasicAuth(); !ok {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":{"code":"BAD_REQUEST_ERROR","description":"Authentication failed"}}`))
			return
		}
		id := fmt.Sprintf("order_e2e_%06d", s.orderSeq.Add(1))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"` + id + `"}`))
	}))
	s.GatewayURL = s.gatewayStub.URL

	s.SharedSuite.SetupSuite()
}

func (s *bookingSuite) TearDownSuite() {
	if s.gatewayStub != nil {
		s.gatewayStub.Close()
	}
}

func (s *bookingSuite) adminToken() string {
	reqBody := reqdto.LoginRequest{Email: dbtest.AdminEmail, Password: dbtest.AdminPassword}
	w := commonhttp.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/login", reqBody, "")
	require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())

	var response resdto.LoginResponse
	commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &response)
	return response.AccessToken
}

func (s *bookingSuite) createRoom(token, number string, pricePaise int64) resdto.RoomResponse {
	reqBody := reqdto.CreateRoomRequest{
		Number:      number,
		RoomType:    "double",
		PricePaise:  pricePaise,
		Description: "Garden view double",
	}
	w := commonhttp.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/admin/rooms", reqBody, token)
	require.Equal(s.T(), http.StatusCreated, w.Code, w.Body.String())

	var created map[string]string
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &created))

	get := commonhttp.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/rooms/"+created["id"], nil, "")
	require.Equal(s.T(), http.StatusOK, get.Code, get.Body.String())

	var room resdto.RoomResponse
	commonhttp.AssertSuccessResponse(s.T(), get, http.StatusOK, &room)
	return room
}

func (s *bookingSuite) createBooking(room resdto.RoomResponse, nights int) resdto.CheckoutResponse {
	checkIn := time.Now().AddDate(0, 1, 0)
	checkOut := checkIn.AddDate(0, 0, nights)

	reqBody := reqdto.CreateBookingRequest{
		RoomID:    room.ID,
		FirstName: "Asha",
		LastName:  "Nair",
		Email:     "asha.nair@example.com",
		Phone:     "+919876543210",
		CheckIn:   checkIn.Format("2006-01-02"),
		CheckOut:  checkOut.Format("2006-01-02"),
	}
	w := commonhttp.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/bookings", reqBody, "")
	require.Equal(s.T(), http.StatusCreated, w.Code, w.Body.String())

	var checkout resdto.CheckoutResponse
	commonhttp.AssertSuccessResponse(s.T(), w, http.StatusCreated, &checkout)
	return checkout
}

func (s *bookingSuite) postCallback(orderID, paymentID, signature string) *httptest.ResponseRecorder {
	form := url.Values{}
	form.Set("razorpay_order_id", orderID)
	form.Set("razorpay_payment_id", paymentID)
	form.Set("razorpay_signature", signature)
	return commonhttp.PerformFormRequest(s.T(), s.Router, http.MethodPost, "/api/payments/callback", form)
}

func (s *bookingSuite) TestBookingLifecycle() {
	s.Run("full flow: room, booking, payment, billing", func() {
		token := s.adminToken()
		room := s.createRoom(token, "201", 150000)

		// Room shows up in the public availability listing.
		list := commonhttp.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/rooms", nil, "")
		require.Equal(s.T(), http.StatusOK, list.Code)
		var rooms []resdto.RoomResponse
		commonhttp.AssertSuccessResponse(s.T(), list, http.StatusOK, &rooms)
		require.Len(s.T(), rooms, 1)
		require.Equal(s.T(), "201", rooms[0].Number)

		// Single-night pricing charges one night even for a two-night stay.
		checkout := s.createBooking(room, 2)
		require.Equal(s.T(), int64(150000), checkout.AmountPaise)
		require.Equal(s.T(), "INR", checkout.Currency)
		require.NotEmpty(s.T(), checkout.OrderID)

		// The booking is pending until the gateway calls back.
		get := commonhttp.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/bookings/"+checkout.BookingID.String(), nil, "")
		var pending resdto.BookingResponse
		commonhttp.AssertSuccessResponse(s.T(), get, http.StatusOK, &pending)
		require.Equal(s.T(), "pending", pending.Status)
		require.Equal(s.T(), "Asha Nair", pending.CustomerName)
		require.Equal(s.T(), "asha.nair@example.com", pending.CustomerEmail)

		// A correctly signed callback confirms it.
		paymentID := "pay_e2e_000001"
		signature := razorpay.Sign(s.Config.Gateway.KeySecret, checkout.OrderID, paymentID)
		cb := s.postCallback(checkout.OrderID, paymentID, signature)
		require.Equal(s.T(), http.StatusOK, cb.Code, cb.Body.String())

		var confirmed resdto.BookingResponse
		require.NoError(s.T(), json.Unmarshal(cb.Body.Bytes(), &confirmed))
		require.Equal(s.T(), "confirmed", confirmed.Status)
		require.NotNil(s.T(), confirmed.GatewayPaymentID)
		require.Equal(s.T(), paymentID, *confirmed.GatewayPaymentID)

		// A confirmed future stay takes the room out of the listing.
		list = commonhttp.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/rooms", nil, "")
		commonhttp.AssertSuccessResponse(s.T(), list, http.StatusOK, &rooms)
		require.Empty(s.T(), rooms)

		// The billing summary reflects the confirmed revenue.
		summary := commonhttp.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/admin/billing/summary", nil, token)
		var billing resdto.BillingSummaryResponse
		commonhttp.AssertSuccessResponse(s.T(), summary, http.StatusOK, &billing)
		require.Equal(s.T(), int64(1), billing.TotalOrders)
		require.Equal(s.T(), int64(150000), billing.ConfirmedRevenuePaise)
		require.Equal(s.T(), "1500.00", billing.ConfirmedRevenueDisplay)
		require.Equal(s.T(), int64(0), billing.PendingPayments)

		// And the back-office list shows the confirmed booking first.
		adminList := commonhttp.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/admin/bookings", nil, token)
		var adminBookings []resdto.BookingResponse
		commonhttp.AssertSuccessResponse(s.T(), adminList, http.StatusOK, &adminBookings)
		require.Len(s.T(), adminBookings, 1)
		require.Equal(s.T(), checkout.BookingID, adminBookings[0].ID)
	})

	s.Run("tampered callback marks the booking failed", func() {
		token := s.adminToken()
		room := s.createRoom(token, "202", 99000)
		checkout := s.createBooking(room, 1)

		cb := s.postCallback(checkout.OrderID, "pay_e2e_bad", "not-a-real-signature")
		require.Equal(s.T(), http.StatusOK, cb.Code)

		var body map[string]string
		require.NoError(s.T(), json.Unmarshal(cb.Body.Bytes(), &body))
		require.Equal(s.T(), "failed", body["status"])

		get := commonhttp.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/bookings/"+checkout.BookingID.String(), nil, "")
		var failed resdto.BookingResponse
		commonhttp.AssertSuccessResponse(s.T(), get, http.StatusOK, &failed)
		require.Equal(s.T(), "failed", failed.Status)
		require.Equal(s.T(), checkout.AmountPaise, failed.TotalPaise)

		// Failed bookings count as orders but carry no revenue.
		summary := commonhttp.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/admin/billing/summary", nil, token)
		var billing resdto.BillingSummaryResponse
		commonhttp.AssertSuccessResponse(s.T(), summary, http.StatusOK, &billing)
		require.Equal(s.T(), int64(1), billing.TotalOrders)
		require.Equal(s.T(), int64(0), billing.ConfirmedRevenuePaise)
	})

	s.Run("free-text search matches the displayed price", func() {
		token := s.adminToken()
		s.createRoom(token, "204", 120000)

		list := commonhttp.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/rooms?q=1200.00", nil, "")
		var rooms []resdto.RoomResponse
		commonhttp.AssertSuccessResponse(s.T(), list, http.StatusOK, &rooms)
		require.Len(s.T(), rooms, 1)
		require.Equal(s.T(), "204", rooms[0].Number)

		list = commonhttp.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/rooms?q=9999.99", nil, "")
		commonhttp.AssertSuccessResponse(s.T(), list, http.StatusOK, &rooms)
		require.Empty(s.T(), rooms)
	})

	s.Run("a room taken off sale disappears from the listing", func() {
		token := s.adminToken()
		room := s.createRoom(token, "203", 120000)

		list := commonhttp.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/rooms", nil, "")
		var rooms []resdto.RoomResponse
		commonhttp.AssertSuccessResponse(s.T(), list, http.StatusOK, &rooms)
		require.Len(s.T(), rooms, 1)

		unavailable := false
		patch := commonhttp.PerformRequest(s.T(), s.Router, http.MethodPatch,
			"/api/admin/rooms/"+room.ID.String(), reqdto.UpdateRoomRequest{Available: &unavailable}, token)
		require.Equal(s.T(), http.StatusNoContent, patch.Code, patch.Body.String())

		// The update also invalidates the cached listing.
		list = commonhttp.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/rooms", nil, "")
		commonhttp.AssertSuccessResponse(s.T(), list, http.StatusOK, &rooms)
		require.Empty(s.T(), rooms)
	})

	s.Run("callback for an unknown order is rejected", func() {
		cb := s.postCallback("order_never_created", "pay_e2e_x", "whatever")
		require.Equal(s.T(), http.StatusBadRequest, cb.Code, cb.Body.String())
	})

	s.Run("booking an unknown room returns 404", func() {
		reqBody := reqdto.CreateBookingRequest{
			RoomID:    uuid.New(),
			FirstName: "Asha",
			LastName:  "Nair",
			Email:     "asha.nair@example.com",
			Phone:     "+919876543210",
			CheckIn:   time.Now().AddDate(0, 1, 0).Format("2006-01-02"),
			CheckOut:  time.Now().AddDate(0, 1, 2).Format("2006-01-02"),
		}
		w := commonhttp.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/bookings", reqBody, "")
		require.Equal(s.T(), http.StatusNotFound, w.Code, w.Body.String())
	})
}

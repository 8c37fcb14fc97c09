package api

import (
	"errors"
	"net/http"

	resdto "majestic-manor/internal/handler/dto/response"
	"majestic-manor/internal/pkg/errs"
	"majestic-manor/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	bookingCommands commands.BookingCommands
}

func NewPaymentHandler(bookingCommands commands.BookingCommands) *PaymentHandler {
	return &PaymentHandler{
		bookingCommands: bookingCommands,
	}
}

// @Summary Payment callback
// @Description Gateway redirect target that reconciles the payment outcome
// @Tags payments
// @Accept x-www-form-urlencoded
// @Produce json
// @Param razorpay_order_id formData string true "Gateway order ID"
// @Param razorpay_payment_id formData string true "Gateway payment ID"
// @Param razorpay_signature formData string true "Callback signature"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Router /payments/callback [post]
func (h *PaymentHandler) Callback(c *gin.Context) {
	// The gateway only ever POSTs; anything else is a probe.
	if c.Request.Method != http.MethodPost {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request",
		})
		return
	}

	input := commands.ReconcilePaymentInput{
		OrderID:   c.PostForm("razorpay_order_id"),
		PaymentID: c.PostForm("razorpay_payment_id"),
		Signature: c.PostForm("razorpay_signature"),
	}

	if input.OrderID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Missing order ID",
		})
		return
	}

	view, err := h.bookingCommands.ReconcilePayment(c.Request.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrBookingNotFound):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, errs.ErrSignatureInvalid):
			// The booking is already marked failed; the client sees the
			// outcome, not an error status.
			c.JSON(http.StatusOK, gin.H{
				"status":  "failed",
				"message": "Payment verification failed",
			})
		case errors.Is(err, errs.ErrDatabaseOperationFailed):
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		default:
			c.JSON(http.StatusOK, gin.H{
				"status":  "failed",
				"message": "Payment could not be reconciled: " + err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

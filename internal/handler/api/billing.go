package api

import (
	"net/http"

	resdto "majestic-manor/internal/handler/dto/response"
	"majestic-manor/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BillingHandler struct {
	billingQueries queries.BillingQueries
}

func NewBillingHandler(billingQueries queries.BillingQueries) *BillingHandler {
	return &BillingHandler{
		billingQueries: billingQueries,
	}
}

// @Summary Billing summary
// @Description Total orders, confirmed revenue, and pending payment count
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.BillingSummaryResponse
// @Failure 401 {object} map[string]string
// @Router /admin/billing/summary [get]
func (h *BillingHandler) Summary(c *gin.Context) {
	summary, err := h.billingQueries.Summary(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromBillingSummaryView(summary))
}

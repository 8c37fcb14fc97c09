//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"majestic-manor/internal/handler/api"
	resdto "majestic-manor/internal/handler/dto/response"
	"majestic-manor/internal/usecase/queries"
	"majestic-manor/tests/common/httptest"
	queriesmock "majestic-manor/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BillingHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockBillingQueries
	handler     *api.BillingHandler
}

func (s *BillingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockBillingQueries(s.mockCtrl)
	s.handler = api.NewBillingHandler(s.mockQueries)

	s.router.GET("/api/admin/billing/summary", s.handler.Summary)
}

func (s *BillingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBillingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BillingHandlerTestSuite))
}

func (s *BillingHandlerTestSuite) TestSummary() {
	url := "/api/admin/billing/summary"

	s.Run("success: returns aggregated figures", func() {
		s.mockQueries.EXPECT().Summary(gomock.Any()).
			Return(&queries.BillingSummaryView{
				TotalOrders:             12,
				ConfirmedRevenuePaise:   1800000,
				ConfirmedRevenueDisplay: "18000.00",
				PendingPayments:         3,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.BillingSummaryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(12), response.TotalOrders)
		s.Equal(int64(1800000), response.ConfirmedRevenuePaise)
		s.Equal("18000.00", response.ConfirmedRevenueDisplay)
		s.Equal(int64(3), response.PendingPayments)
	})

	s.Run("success: all zeros when nothing booked yet", func() {
		s.mockQueries.EXPECT().Summary(gomock.Any()).
			Return(&queries.BillingSummaryView{ConfirmedRevenueDisplay: "0.00"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.BillingSummaryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Zero(response.TotalOrders)
		s.Equal("0.00", response.ConfirmedRevenueDisplay)
	})

	s.Run("error: 500 on query failure", func() {
		s.mockQueries.EXPECT().Summary(gomock.Any()).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

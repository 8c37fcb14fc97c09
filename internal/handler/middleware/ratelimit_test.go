//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"majestic-manor/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

type RateLimitTestSuite struct {
	suite.Suite
	router *gin.Engine
}

func (s *RateLimitTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.POST("/callback", middleware.RateLimit(1, 2), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
}

func TestRateLimitTestSuite(t *testing.T) {
	suite.Run(t, new(RateLimitTestSuite))
}

func (s *RateLimitTestSuite) hit(remoteAddr string) int {
	req := httptest.NewRequest(http.MethodPost, "/callback", nil)
	req.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w.Code
}

func (s *RateLimitTestSuite) TestThrottlesAfterBurst() {
	s.Equal(http.StatusOK, s.hit("203.0.113.10:51000"))
	s.Equal(http.StatusOK, s.hit("203.0.113.10:51000"))
	s.Equal(http.StatusTooManyRequests, s.hit("203.0.113.10:51000"))
}

func (s *RateLimitTestSuite) TestClientsAreThrottledIndependently() {
	s.Equal(http.StatusOK, s.hit("203.0.113.10:51000"))
	s.Equal(http.StatusOK, s.hit("203.0.113.10:51000"))
	s.Equal(http.StatusTooManyRequests, s.hit("203.0.113.10:51000"))

	// A fresh source IP gets its own bucket.
	s.Equal(http.StatusOK, s.hit("203.0.113.11:51000"))
	s.Equal(http.StatusOK, s.hit("203.0.113.11:51000"))
	s.Equal(http.StatusTooManyRequests, s.hit("203.0.113.11:51000"))
}

//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	reqdto "majestic-manor/internal/handler/dto/request"
	resdto "majestic-manor/internal/handler/dto/response"
	"majestic-manor/tests/common/dbtest"
	"majestic-manor/tests/common/httptest"
	"majestic-manor/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const loginURL = "/api/auth/login"

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{
			name:           "admin logs in with seeded credentials",
			email:          dbtest.AdminEmail,
			password:       dbtest.AdminPassword,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "staff logs in with seeded credentials",
			email:          dbtest.StaffEmail,
			password:       dbtest.StaffPassword,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown account is rejected",
			email:          "nobody@majestic-manor.test",
			password:       dbtest.AdminPassword,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrong password is rejected",
			email:          dbtest.AdminEmail,
			password:       "wrong-password-1",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "empty password fails validation",
			email:          dbtest.AdminEmail,
			password:       "",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			reqBody := reqdto.LoginRequest{
				Email:    tt.email,
				Password: tt.password,
			}

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusOK {
				var response resdto.LoginResponse
				httptest.AssertSuccessResponse(t, w, http.StatusOK, &response)
				require.NotEmpty(t, response.AccessToken)
				require.Equal(t, tt.email, response.User.Email)
			}
		})
	}
}

func (s *authSuite) TestProtectedRoutes() {
	s.Run("admin surface rejects anonymous requests", func() {
		for _, path := range []string{"/api/admin/bookings", "/api/admin/billing/summary"} {
			w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, path, nil, "")
			require.Equal(s.T(), http.StatusUnauthorized, w.Code, path)
		}
	})

	s.Run("admin surface accepts a fresh token", func() {
		token := s.login(dbtest.AdminEmail, dbtest.AdminPassword)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/admin/billing/summary", nil, token)
		require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())
	})
}

func (s *authSuite) login(email, password string) string {
	reqBody := reqdto.LoginRequest{Email: email, Password: password}
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL, reqBody, "")
	require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())

	var response resdto.LoginResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &response)
	return response.AccessToken
}

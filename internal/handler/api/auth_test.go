//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"majestic-manor/internal/handler/api"
	resdto "majestic-manor/internal/handler/dto/response"
	"majestic-manor/internal/pkg/errs"
	"majestic-manor/internal/usecase/commands"
	"majestic-manor/tests/common/builder"
	"majestic-manor/tests/common/httptest"
	"majestic-manor/tests/common/testutil"
	commandsmock "majestic-manor/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	handler      *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockCommands)

	s.router.POST("/api/auth/login", s.handler.Login)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/api/auth/login"

	userBuilder := builder.NewUserBuilder()
	returnUser := userBuilder.BuildView()
	reqBody := map[string]any{
		"email":    userBuilder.Email,
		"password": userBuilder.Password,
	}
	expectedToken := "test-jwt-token"

	s.Run("success: returns 200 OK with token and user for valid credentials", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), userBuilder.Email, userBuilder.Password).
			Return(&commands.LoginResult{
				AccessToken: expectedToken,
				User:        returnUser,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(expectedToken, response.AccessToken)
		s.Equal(returnUser.Email, response.User.Email)
		s.Equal(returnUser.Role, response.User.Role)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "invalid email", mutate: testutil.Field("email", "not-an-email")},
			{name: "missing email", mutate: testutil.Field("email", nil)},
			{name: "empty email", mutate: testutil.Field("email", "")},
			{name: "password below minimum (7 chars)", mutate: testutil.Field("password", strings.Repeat("a", 7))},
			{name: "missing password", mutate: testutil.Field("password", nil)},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "invalid credentials",
				commandsError:  errs.ErrInvalidCredentials,
				expectedStatus: http.StatusUnauthorized,
				expectedMsg:    "Invalid email or password",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Login(gomock.Any(), userBuilder.Email, userBuilder.Password).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"workspace-booking/internal/handler/api"
	reqdto "workspace-booking/internal/handler/dto/request"
	resdto "workspace-booking/internal/handler/dto/response"
	"workspace-booking/internal/usecase/commands"
	"workspace-booking/tests/common/httptest"
	"workspace-booking/tests/common/testutil"
	commandsmock "workspace-booking/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.router.POST("/admin/login", api.NewAuthHandler(s.mockCommands).Login)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/admin/login"
	reqBody := reqdto.AdminLoginRequest{Username: "admin", Password: "s3cret-pass"}

	s.Run("success: returns a bearer token", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), "admin", "s3cret-pass").
			Return(&commands.LoginResult{AccessToken: "signed.jwt.token", ExpiresIn: 15 * time.Minute}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.AdminLoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("signed.jwt.token", body.AccessToken)
		s.Equal("Bearer", body.TokenType)
		s.Equal(int64(900), body.ExpiresIn)
	})

	invalid := []struct {
		name   string
		mutate func(m map[string]any)
	}{
		{name: "missing username", mutate: testutil.Field("username", nil)},
		{name: "missing password", mutate: testutil.Field("password", nil)},
		{name: "password longer than bcrypt accepts", mutate: testutil.Field("password", strings.Repeat("x", 73))},
	}
	for _, tc := range invalid {
		s.Run("error: 400 for "+tc.name, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
		})
	}

	s.Run("error: 401 on wrong credentials", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrInvalidCredentials).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid username or password")
	})

	s.Run("error: 500 when the token cannot be issued", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.Join(commands.ErrTokenGeneration, errors.New("no key"))).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

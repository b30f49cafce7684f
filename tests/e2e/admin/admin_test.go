//go:build e2e

package admin_test

import (
	"net/http"
	"testing"

	"workspace-booking/internal/handler/dto/request"
	"workspace-booking/internal/handler/dto/response"
	"workspace-booking/internal/pkg/config"
	"workspace-booking/tests/common/httptest"
	"workspace-booking/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const loginURL = "/api/admin/login"

type AdminSuite struct {
	e2e.SharedSuite
}

func TestAdminSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AdminSuite))
}

func (s *AdminSuite) TestLogin() {
	tests := []struct {
		name           string
		username       string
		password       string
		expectedStatus int
	}{
		{name: "valid credentials", username: "admin", password: config.TestAdminPassword, expectedStatus: http.StatusOK},
		{name: "wrong password", username: "admin", password: "not-the-password", expectedStatus: http.StatusUnauthorized},
		{name: "unknown username", username: "root", password: config.TestAdminPassword, expectedStatus: http.StatusUnauthorized},
		{name: "empty password", username: "admin", password: "", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()
			rec := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
				request.AdminLoginRequest{Username: tt.username, Password: tt.password}, "")

			if tt.expectedStatus != http.StatusOK {
				httptest.AssertErrorResponse(t, rec, tt.expectedStatus, "")
				return
			}

			var res response.AdminLoginResponse
			httptest.AssertSuccessResponse(t, rec, http.StatusOK, &res)
			require.NotEmpty(t, res.AccessToken)
			require.Equal(t, "Bearer", res.TokenType)
			require.Equal(t, int64(15*60), res.ExpiresIn)
		})
	}
}

//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"workspace-booking/internal/handler/dto/request"
	"workspace-booking/internal/handler/dto/response"
	"workspace-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// LoginAdmin signs in through the admin endpoint and returns the bearer token.
func LoginAdmin(t *testing.T, router *gin.Engine, username, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/admin/login",
		request.AdminLoginRequest{Username: username, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp response.AdminLoginResponse
	httptest.DecodeResponseBody(t, w.Body, &resp)
	require.NotEmpty(t, resp.AccessToken, "access token is empty")

	return resp.AccessToken
}

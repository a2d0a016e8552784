package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"skillbridge_backend/internal/auth"
	"skillbridge_backend/internal/config"
	"skillbridge_backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTestConfig(t *testing.T) {
	t.Helper()
	prev := config.AppConfig
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret-do-not-use"
	cfg.JWT.TTL = 30
	config.AppConfig = cfg
	t.Cleanup(func() { config.AppConfig = prev })
}

func testRouter(extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	chain := append([]gin.HandlerFunc{AuthMiddleware()}, extra...)
	chain = append(chain, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": GetUserID(c)})
	})
	r.GET("/protected", chain...)
	return r
}

func doRequest(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	setTestConfig(t)

	token, err := auth.GenerateToken("user-123", "student")
	require.NoError(t, err)

	w := doRequest(testRouter(), "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-123")
}

func TestAuthMiddlewareRejectsMissingOrMalformedHeader(t *testing.T) {
	setTestConfig(t)
	r := testRouter()

	assert.Equal(t, http.StatusUnauthorized, doRequest(r, "").Code)
	assert.Equal(t, http.StatusUnauthorized, doRequest(r, "Token abc").Code)
	assert.Equal(t, http.StatusUnauthorized, doRequest(r, "Bearer garbage").Code)
}

func TestRoleMiddleware(t *testing.T) {
	setTestConfig(t)

	studentToken, err := auth.GenerateToken("student-1", "student")
	require.NoError(t, err)
	businessToken, err := auth.GenerateToken("biz-1", "business")
	require.NoError(t, err)

	r := testRouter(RoleMiddleware(models.UserRoleBusiness))

	assert.Equal(t, http.StatusForbidden, doRequest(r, "Bearer "+studentToken).Code)
	assert.Equal(t, http.StatusOK, doRequest(r, "Bearer "+businessToken).Code)
}

func TestRequireRolesAllowsAnyListed(t *testing.T) {
	setTestConfig(t)

	studentToken, err := auth.GenerateToken("student-1", "student")
	require.NoError(t, err)
	businessToken, err := auth.GenerateToken("biz-1", "business")
	require.NoError(t, err)

	r := testRouter(RequireRoles(models.UserRoleStudent, models.UserRoleBusiness))

	assert.Equal(t, http.StatusOK, doRequest(r, "Bearer "+studentToken).Code)
	assert.Equal(t, http.StatusOK, doRequest(r, "Bearer "+businessToken).Code)
}

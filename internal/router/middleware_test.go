package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/canvascart/go-api/pkg/models"
	"github.com/canvascart/go-api/pkg/tokens"
)

const testJWTSecret = "middleware-test-secret"

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("JWT_SECRET", testJWTSecret)
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func issueTestToken(t *testing.T, userID, email, role string) string {
	t.Helper()
	token, err := tokens.New(userID, email, role, []byte(testJWTSecret))
	require.NoError(t, err)
	return token
}

func TestProtectMissingToken(t *testing.T) {
	r := newTestRouter(t)
	r.GET("/secure", Protect(), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "No token provided")
}

func TestProtectMalformedHeader(t *testing.T) {
	r := newTestRouter(t)
	r.GET("/secure", Protect(), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "Token abcdef")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtectInvalidToken(t *testing.T) {
	r := newTestRouter(t)
	r.GET("/secure", Protect(), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "Bearer not.a.valid.token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid or expired token")
}

func TestProtectStoresClaims(t *testing.T) {
	r := newTestRouter(t)

	userID := bson.NewObjectID().Hex()
	var gotID, gotEmail, gotRole string
	r.GET("/secure", Protect(), func(c *gin.Context) {
		gotID = c.GetString(ctxUserID)
		gotEmail = c.GetString(ctxEmail)
		gotRole = c.GetString(ctxRole)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+issueTestToken(t, userID, "buyer@example.com", models.RoleBuyer))
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, userID, gotID)
	assert.Equal(t, "buyer@example.com", gotEmail)
	assert.Equal(t, models.RoleBuyer, gotRole)
}

func TestOptionalAuthNeverRejects(t *testing.T) {
	r := newTestRouter(t)

	var gotID string
	r.POST("/open", OptionalAuth(), func(c *gin.Context) {
		gotID = c.GetString(ctxUserID)
		c.Status(http.StatusOK)
	})

	// No token at all still reaches the handler.
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/open", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, gotID)

	// A garbage token is ignored rather than rejected.
	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/open", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, gotID)

	// A valid token attaches the identity.
	userID := bson.NewObjectID().Hex()
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/open", nil)
	req.Header.Set("Authorization", "Bearer "+issueTestToken(t, userID, "buyer@example.com", models.RoleBuyer))
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, userID, gotID)
}

func TestRequireAdmin(t *testing.T) {
	r := newTestRouter(t)
	r.GET("/admin", Protect(), RequireAdmin(), func(c *gin.Context) { c.Status(http.StatusOK) })

	// A buyer token passes Protect but fails the capability check.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+issueTestToken(t, bson.NewObjectID().Hex(), "buyer@example.com", models.RoleBuyer))
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Admin access required")

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+issueTestToken(t, bson.NewObjectID().Hex(), "admin@example.com", models.RoleAdmin))
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCallerID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	id := bson.NewObjectID()
	c.Set(ctxUserID, id.Hex())
	got, err := callerID(c)
	require.NoError(t, err)
	assert.Equal(t, id, got)

	c, _ = gin.CreateTestContext(httptest.NewRecorder())
	_, err = callerID(c)
	assert.Error(t, err)
}

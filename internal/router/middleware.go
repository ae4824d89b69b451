package router

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/canvascart/go-api/pkg/global"
	"github.com/canvascart/go-api/pkg/models"
	"github.com/canvascart/go-api/pkg/tokens"
)

// Context keys set by the auth middleware.
const (
	ctxUserID = "user_id"
	ctxEmail  = "email"
	ctxRole   = "role"
)

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	return strings.TrimPrefix(header, "Bearer "), true
}

// Protect requires a valid bearer token and stores the caller's identity
// in the request context.
func Protect() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, global.ErrorResponse("No token provided", nil))
			c.Abort()
			return
		}

		claims, err := tokens.Parse(token, global.GetJWTSecret())
		if err != nil {
			c.JSON(http.StatusUnauthorized, global.ErrorResponse("Invalid or expired token", nil))
			c.Abort()
			return
		}

		c.Set(ctxUserID, claims.Subject)
		c.Set(ctxEmail, claims.Email)
		c.Set(ctxRole, claims.Role)
		c.Next()
	}
}

// OptionalAuth attaches the caller's identity when a valid token is
// present but never rejects the request. Payment verification uses it to
// enrich the stored record for logged-in buyers while still accepting
// guest confirmations.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := bearerToken(c); ok {
			if claims, err := tokens.Parse(token, global.GetJWTSecret()); err == nil {
				c.Set(ctxUserID, claims.Subject)
				c.Set(ctxEmail, claims.Email)
				c.Set(ctxRole, claims.Role)
			}
		}
		c.Next()
	}
}

// callerID returns the authenticated caller's ObjectID from the claims
// stored by Protect.
func callerID(c *gin.Context) (bson.ObjectID, error) {
	return bson.ObjectIDFromHex(c.GetString(ctxUserID))
}

// RequireAdmin is the single capability check for admin routes: the role
// claim must be admin. Runs after Protect.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ctxRole) != models.RoleAdmin {
			c.JSON(http.StatusForbidden, global.ErrorResponse("Admin access required", nil))
			c.Abort()
			return
		}
		c.Next()
	}
}

package router

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/canvascart/go-api/pkg/global"
	"github.com/canvascart/go-api/pkg/models"
	"github.com/canvascart/go-api/pkg/mongo"
)

func GetUserProfile(c *gin.Context) {
	userID, err := callerID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, global.ErrorResponse("Invalid session", nil))
		return
	}

	user, err := mongo.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNotFound) {
			c.JSON(http.StatusNotFound, global.ErrorResponse("User not found", nil))
			return
		}
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Error getting profile", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(user))
}

func UpdateUserProfile(c *gin.Context) {
	userID, err := callerID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, global.ErrorResponse("Invalid session", nil))
		return
	}

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data", []global.ValidationError{
			{Field: "request", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}

	user, err := mongo.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNotFound) {
			c.JSON(http.StatusNotFound, global.ErrorResponse("User not found", nil))
			return
		}
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Error updating profile", nil))
		return
	}

	if req.FirstName != "" {
		user.FirstName = req.FirstName
	}
	if req.LastName != "" {
		user.LastName = req.LastName
	}
	if req.Username != "" {
		user.Username = req.Username
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}
	if req.Address != "" {
		user.Address = req.Address
	}
	if req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to process password", nil))
			return
		}
		user.Password = string(hashed)
	}
	user.SetTimestamps()

	if err := mongo.SaveUser(c.Request.Context(), user); err != nil {
		if errors.Is(err, mongo.ErrDuplicateKey) {
			c.JSON(http.StatusBadRequest, global.ErrorResponse("Email already in use", []global.ValidationError{
				{Field: "email", Message: "This email is already registered", Code: "duplicate_email"},
			}))
			return
		}
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Error updating profile", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(user.ToPublicProfile()))
}

func GetAllUsers(c *gin.Context) {
	users, err := mongo.GetAllUsers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to get users", nil))
		return
	}
	c.JSON(http.StatusOK, global.SuccessResponse(users))
}

// UpdateUserRole lets a user switch themselves between buyer and seller.
// Admin is never assignable here; that happens only through the
// configured admin list.
func UpdateUserRole(c *gin.Context) {
	userID, err := callerID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, global.ErrorResponse("Invalid session", nil))
		return
	}

	var req struct {
		Role string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || (req.Role != models.RoleBuyer && req.Role != models.RoleSeller) {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid role", []global.ValidationError{
			{Field: "role", Message: "Role must be buyer or seller", Code: "invalid_role"},
		}))
		return
	}

	user, err := mongo.UpdateUserRole(c.Request.Context(), userID, req.Role)
	if err != nil {
		if errors.Is(err, mongo.ErrNotFound) {
			c.JSON(http.StatusNotFound, global.ErrorResponse("User not found", nil))
			return
		}
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to update role", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(map[string]string{"role": user.Role}))
}

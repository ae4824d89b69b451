package router

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/canvascart/go-api/pkg/global"
	"github.com/canvascart/go-api/pkg/models"
	"github.com/canvascart/go-api/pkg/mongo"
	"github.com/canvascart/go-api/pkg/tokens"
)

func issueToken(user *models.User) (string, error) {
	return tokens.New(user.ID.Hex(), user.Email, user.Role, global.GetJWTSecret())
}

func Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data", []global.ValidationError{
			{Field: "request", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to process password", nil))
		return
	}

	user := &models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Username:  req.Username,
		Email:     req.Email,
		Password:  string(hashedPassword),
		Phone:     req.Phone,
		Address:   req.Address,
		Role:      models.RoleForEmail(req.Email, global.AdminEmails()),
	}
	user.SetTimestamps()

	if err := mongo.CreateUser(c.Request.Context(), user); err != nil {
		if errors.Is(err, mongo.ErrDuplicateKey) {
			c.JSON(http.StatusBadRequest, global.ErrorResponse("User already exists", []global.ValidationError{
				{Field: "email", Message: "This email is already registered", Code: "duplicate_email"},
			}))
			return
		}
		log.Printf("Error creating user: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Signup failed", nil))
		return
	}

	token, err := issueToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to issue token", nil))
		return
	}

	c.JSON(http.StatusCreated, global.SuccessResponse(map[string]interface{}{
		"token": token,
		"user":  user.ToPublicProfile(),
	}))
}

func Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data", []global.ValidationError{
			{Field: "request", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}

	user, err := mongo.GetUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, mongo.ErrNotFound) {
			c.JSON(http.StatusBadRequest, global.ErrorResponse("User not found", nil))
			return
		}
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Login failed", nil))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, global.ErrorResponse("Invalid credentials", nil))
		return
	}

	// Configured admin addresses always end up with the admin role,
	// overwriting whatever is stored.
	if models.IsAdminEmail(user.Email, global.AdminEmails()) && user.Role != models.RoleAdmin {
		user.Role = models.RoleAdmin
		if err := mongo.SaveUser(c.Request.Context(), user); err != nil {
			log.Printf("Error re-asserting admin role for %s: %v", user.Email, err)
			c.JSON(http.StatusInternalServerError, global.ErrorResponse("Login failed", nil))
			return
		}
	}

	token, err := issueToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to issue token", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(map[string]interface{}{
		"token": token,
		"user":  user.ToPublicProfile(),
	}))
}

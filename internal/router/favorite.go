package router

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/canvascart/go-api/pkg/global"
	"github.com/canvascart/go-api/pkg/models"
	"github.com/canvascart/go-api/pkg/mongo"
)

func AddToFavorites(c *gin.Context) {
	userID, err := callerID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, global.ErrorResponse("Invalid session", nil))
		return
	}

	var req models.AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data", []global.ValidationError{
			{Field: "request", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}

	productID, err := bson.ObjectIDFromHex(req.ProductID)
	if err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid product ID format", []global.ValidationError{
			{Field: "productId", Message: "Must be a valid ObjectID", Code: "invalid_format"},
		}))
		return
	}

	favorite, err := mongo.AddFavorite(c.Request.Context(), userID, productID)
	if err != nil {
		log.Printf("Error adding favorite: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to add to favorites", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(map[string]interface{}{
		"message":  "Added to favorites",
		"favorite": favorite,
	}))
}

// GetFavorites returns the user's favorites with products expanded. A
// user without a favorites record gets an empty shape, not an error.
func GetFavorites(c *gin.Context) {
	userID, err := callerID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, global.ErrorResponse("Invalid session", nil))
		return
	}

	favorites, err := mongo.GetExpandedFavorites(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNotFound) {
			c.JSON(http.StatusOK, global.SuccessResponse(models.ExpandedFavorite{Products: []models.Product{}}))
			return
		}
		log.Printf("Error fetching favorites: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to fetch favorites", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(favorites))
}

func RemoveFromFavorites(c *gin.Context) {
	userID, err := callerID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, global.ErrorResponse("Invalid session", nil))
		return
	}

	productID, err := bson.ObjectIDFromHex(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid product ID format", []global.ValidationError{
			{Field: "productId", Message: "Must be a valid ObjectID", Code: "invalid_format"},
		}))
		return
	}

	favorite, err := mongo.RemoveFavorite(c.Request.Context(), userID, productID)
	if err != nil {
		log.Printf("Error removing favorite: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to remove from favorites", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(map[string]interface{}{
		"message":  "Removed from favorites",
		"favorite": favorite,
	}))
}

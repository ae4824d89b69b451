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

func AddShippingDetails(c *gin.Context) {
	var req models.CreateShippingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Error saving shipping details", []global.ValidationError{
			{Field: "request", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}

	details, err := req.ToShippingDetails()
	if err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid order ID format", []global.ValidationError{
			{Field: "orderId", Message: "Must be a valid ObjectID", Code: "invalid_format"},
		}))
		return
	}

	if err := mongo.CreateShippingDetails(c.Request.Context(), details); err != nil {
		log.Printf("Error saving shipping details: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Error saving shipping details", nil))
		return
	}

	c.JSON(http.StatusCreated, global.SuccessResponse(details))
}

func GetAllShippingDetails(c *gin.Context) {
	details, err := mongo.GetAllShippingDetails(c.Request.Context())
	if err != nil {
		log.Printf("Error fetching shipping details: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to fetch details", nil))
		return
	}
	c.JSON(http.StatusOK, global.SuccessResponse(details))
}

func DeleteShippingDetails(c *gin.Context) {
	id, err := bson.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid shipping ID format", []global.ValidationError{
			{Field: "id", Message: "Must be a valid ObjectID", Code: "invalid_format"},
		}))
		return
	}

	if err := mongo.DeleteShippingDetails(c.Request.Context(), id); err != nil {
		if errors.Is(err, mongo.ErrNotFound) {
			c.JSON(http.StatusNotFound, global.ErrorResponse("Shipping details not found", nil))
			return
		}
		log.Printf("Error deleting shipping details: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Deletion failed", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(map[string]string{"message": "Shipping details deleted successfully"}))
}

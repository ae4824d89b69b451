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

func AddReview(c *gin.Context) {
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

	var req models.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data", []global.ValidationError{
			{Field: "request", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}

	review := &models.Review{
		ID:      bson.NewObjectID(),
		Product: productID,
		User:    userID,
		Comment: req.Comment,
		Stars:   req.Stars,
	}
	review.SetTimestamps()

	if err := mongo.CreateReview(c.Request.Context(), review); err != nil {
		log.Printf("Error creating review: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to add review", nil))
		return
	}

	c.JSON(http.StatusCreated, global.SuccessResponse(map[string]interface{}{
		"message": "Review added",
		"review":  review,
	}))
}

// GetReviewsByProduct is public; each review is enriched with the
// author's username only.
func GetReviewsByProduct(c *gin.Context) {
	productID, err := bson.ObjectIDFromHex(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid product ID format", []global.ValidationError{
			{Field: "productId", Message: "Must be a valid ObjectID", Code: "invalid_format"},
		}))
		return
	}

	reviews, err := mongo.GetReviewsByProduct(c.Request.Context(), productID)
	if err != nil {
		log.Printf("Error fetching reviews: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to fetch reviews", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(reviews))
}

// loadOwnReview fetches the review and enforces author-only mutation:
// a review that exists but belongs to someone else is a 403, distinct
// from the 404 for a review that does not exist.
func loadOwnReview(c *gin.Context) (*models.Review, bool) {
	userID, err := callerID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, global.ErrorResponse("Invalid session", nil))
		return nil, false
	}

	reviewID, err := bson.ObjectIDFromHex(c.Param("reviewId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid review ID format", []global.ValidationError{
			{Field: "reviewId", Message: "Must be a valid ObjectID", Code: "invalid_format"},
		}))
		return nil, false
	}

	review, err := mongo.GetReviewByID(c.Request.Context(), reviewID)
	if err != nil {
		if errors.Is(err, mongo.ErrNotFound) {
			c.JSON(http.StatusNotFound, global.ErrorResponse("Review not found", nil))
			return nil, false
		}
		log.Printf("Error fetching review: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to fetch review", nil))
		return nil, false
	}

	if !review.IsAuthoredBy(userID) {
		c.JSON(http.StatusForbidden, global.ErrorResponse("Unauthorized to modify this review", nil))
		return nil, false
	}
	return review, true
}

func UpdateReview(c *gin.Context) {
	review, ok := loadOwnReview(c)
	if !ok {
		return
	}

	var req models.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data", []global.ValidationError{
			{Field: "request", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}

	review.ApplyUpdate(&req)

	if err := mongo.SaveReview(c.Request.Context(), review); err != nil {
		log.Printf("Error updating review: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to update review", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(map[string]interface{}{
		"message": "Review updated",
		"review":  review,
	}))
}

func DeleteReview(c *gin.Context) {
	review, ok := loadOwnReview(c)
	if !ok {
		return
	}

	if err := mongo.DeleteReview(c.Request.Context(), review.ID); err != nil {
		log.Printf("Error deleting review: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to delete review", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(map[string]string{"message": "Review deleted"}))
}

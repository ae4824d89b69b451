package router

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/canvascart/go-api/pkg/global"
	"github.com/canvascart/go-api/pkg/models"
	"github.com/canvascart/go-api/pkg/mongo"
	"github.com/canvascart/go-api/pkg/redis"
)

func parsePriceBound(c *gin.Context, name string) (*float64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid price bound", []global.ValidationError{
			{Field: name, Message: "Must be a number", Code: "invalid_format"},
		}))
		return nil, false
	}
	return &value, true
}

// GetAllProducts lists the catalog with the combinable filters:
// ?search=abc&category=Landscape&artType=Oil&minPrice=100&maxPrice=5000
func GetAllProducts(c *gin.Context) {
	filter := models.ProductFilter{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		ArtType:  c.Query("artType"),
	}

	minPrice, ok := parsePriceBound(c, "minPrice")
	if !ok {
		return
	}
	maxPrice, ok := parsePriceBound(c, "maxPrice")
	if !ok {
		return
	}
	filter.MinPrice = minPrice
	filter.MaxPrice = maxPrice

	products, err := mongo.GetProducts(c.Request.Context(), filter)
	if err != nil {
		log.Printf("Error fetching products: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to fetch products", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(map[string]interface{}{"products": products}))
}

// GetProductByID retrieves one product, cache-aside through Redis.
func GetProductByID(c *gin.Context) {
	id, err := bson.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid product ID format", []global.ValidationError{
			{Field: "id", Message: "Must be a valid ObjectID", Code: "invalid_format"},
		}))
		return
	}

	ctx := c.Request.Context()

	product, err := redis.GetProductFromCache(ctx, id.Hex())
	if err == nil {
		c.Header("X-Cache", "HIT")
		c.JSON(http.StatusOK, global.SuccessResponse(product))
		return
	}

	product, err = mongo.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNotFound) {
			c.JSON(http.StatusNotFound, global.ErrorResponse("Product not found", []global.ValidationError{
				{Field: "id", Message: "No product exists with this ID", Code: "not_found"},
			}))
			return
		}
		log.Printf("Error fetching product from MongoDB: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to fetch product", nil))
		return
	}

	if cacheErr := redis.CacheSingleProduct(ctx, product); cacheErr != nil {
		log.Printf("Warning: Failed to cache product in Redis: %v", cacheErr)
	}

	c.Header("X-Cache", "MISS")
	c.JSON(http.StatusOK, global.SuccessResponse(product))
}

func AddProduct(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data", []global.ValidationError{
			{Field: "request", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}

	product := req.ToProduct()
	if err := mongo.CreateProduct(c.Request.Context(), product); err != nil {
		log.Printf("Error creating product: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to add product", nil))
		return
	}

	if cacheErr := redis.CacheSingleProduct(c.Request.Context(), product); cacheErr != nil {
		log.Printf("Warning: Failed to cache product in Redis: %v", cacheErr)
	}

	c.JSON(http.StatusCreated, global.SuccessResponse(map[string]interface{}{
		"message": "Product added",
		"product": product,
	}))
}

// UpdateProduct merges non-empty fields into the stored product and
// refreshes the cache entry.
func UpdateProduct(c *gin.Context) {
	id, err := bson.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid product ID format", []global.ValidationError{
			{Field: "id", Message: "Must be a valid ObjectID", Code: "invalid_format"},
		}))
		return
	}

	var req models.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data", []global.ValidationError{
			{Field: "request", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}

	ctx := c.Request.Context()

	product, err := mongo.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNotFound) {
			c.JSON(http.StatusNotFound, global.ErrorResponse("Product not found", nil))
			return
		}
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to update product", nil))
		return
	}

	// Drop the stale cache entry before writing so a failed save cannot
	// leave the old document cached past the update.
	if cacheErr := redis.RemoveProductFromCache(ctx, id.Hex()); cacheErr != nil {
		log.Printf("Warning: Failed to invalidate product cache: %v", cacheErr)
	}

	product.ApplyUpdate(&req)

	if err := mongo.SaveProduct(ctx, product); err != nil {
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to update product", nil))
		return
	}

	if cacheErr := redis.CacheSingleProduct(ctx, product); cacheErr != nil {
		log.Printf("Warning: Failed to refresh product cache: %v", cacheErr)
	}

	c.JSON(http.StatusOK, global.SuccessResponse(map[string]interface{}{
		"message": "Product updated",
		"product": product,
	}))
}

func DeleteProduct(c *gin.Context) {
	id, err := bson.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid product ID format", []global.ValidationError{
			{Field: "id", Message: "Must be a valid ObjectID", Code: "invalid_format"},
		}))
		return
	}

	if err := mongo.DeleteProductByID(c.Request.Context(), id); err != nil {
		if errors.Is(err, mongo.ErrNotFound) {
			c.JSON(http.StatusNotFound, global.ErrorResponse("Product not found", nil))
			return
		}
		log.Printf("Error deleting product: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to delete product", nil))
		return
	}

	if cacheErr := redis.RemoveProductFromCache(c.Request.Context(), id.Hex()); cacheErr != nil {
		log.Printf("Warning: Failed to remove product from Redis cache: %v", cacheErr)
	}

	c.JSON(http.StatusOK, global.SuccessResponse(map[string]string{"message": "Product deleted successfully"}))
}

package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/canvascart/go-api/pkg/models"
)

// GetProducts runs the combinable catalog query: case-insensitive
// substring search over title/description, exact category and art-type
// matches, and inclusive price bounds.
func GetProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	query := bson.M{}

	if filter.Search != "" {
		regex := bson.M{"$regex": filter.Search, "$options": "i"}
		query["$or"] = bson.A{
			bson.M{"title": regex},
			bson.M{"description": regex},
		}
	}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.ArtType != "" {
		query["art_type"] = filter.ArtType
	}
	if filter.MinPrice != nil || filter.MaxPrice != nil {
		price := bson.M{}
		if filter.MinPrice != nil {
			price["$gte"] = *filter.MinPrice
		}
		if filter.MaxPrice != nil {
			price["$lte"] = *filter.MaxPrice
		}
		query["price"] = price
	}

	cursor, err := GetCollection("products").Find(ctx, query)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func GetProductByID(ctx context.Context, id bson.ObjectID) (*models.Product, error) {
	var product models.Product
	err := GetCollection("products").FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

func CreateProduct(ctx context.Context, product *models.Product) error {
	_, err := GetCollection("products").InsertOne(ctx, product)
	return err
}

// SaveProduct replaces the stored document with the given state.
func SaveProduct(ctx context.Context, product *models.Product) error {
	result, err := GetCollection("products").ReplaceOne(ctx, bson.M{"_id": product.ID}, product)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func DeleteProductByID(ctx context.Context, id bson.ObjectID) error {
	result, err := GetCollection("products").DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// GetProductPrices fetches current prices for the given products in one
// query. Products that no longer exist are simply absent from the map.
func GetProductPrices(ctx context.Context, ids []bson.ObjectID) (map[bson.ObjectID]float64, error) {
	prices := make(map[bson.ObjectID]float64, len(ids))
	if len(ids) == 0 {
		return prices, nil
	}

	cursor, err := GetCollection("products").Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	for _, p := range products {
		prices[p.ID] = p.Price
	}
	return prices, nil
}

// GetProductsByIDs fetches full documents for cart and favorites expansion.
func GetProductsByIDs(ctx context.Context, ids []bson.ObjectID) (map[bson.ObjectID]*models.Product, error) {
	byID := make(map[bson.ObjectID]*models.Product, len(ids))
	if len(ids) == 0 {
		return byID, nil
	}

	cursor, err := GetCollection("products").Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	for i := range products {
		byID[products[i].ID] = &products[i]
	}
	return byID, nil
}

package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/canvascart/go-api/pkg/models"
)

func getFavoriteByUser(ctx context.Context, userID bson.ObjectID) (*models.Favorite, error) {
	var favorite models.Favorite
	err := GetCollection("favorites").FindOne(ctx, bson.M{"user": userID}).Decode(&favorite)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &favorite, nil
}

func saveFavorite(ctx context.Context, favorite *models.Favorite) error {
	opts := options.Replace().SetUpsert(true)
	_, err := GetCollection("favorites").ReplaceOne(ctx, bson.M{"user": favorite.User}, favorite, opts)
	return err
}

// AddFavorite set-adds the product to the user's favorites, creating the
// record on first use. A duplicate add is a no-op.
func AddFavorite(ctx context.Context, userID, productID bson.ObjectID) (*models.Favorite, error) {
	favorite, err := getFavoriteByUser(ctx, userID)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			return nil, err
		}
		favorite = models.NewFavorite(userID)
	}

	if favorite.Add(productID) {
		if err := saveFavorite(ctx, favorite); err != nil {
			return nil, err
		}
	}
	return favorite, nil
}

// RemoveFavorite filters the product out; absent products and missing
// records are both no-ops.
func RemoveFavorite(ctx context.Context, userID, productID bson.ObjectID) (*models.Favorite, error) {
	favorite, err := getFavoriteByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if favorite.Remove(productID) {
		if err := saveFavorite(ctx, favorite); err != nil {
			return nil, err
		}
	}
	return favorite, nil
}

// GetExpandedFavorites returns the favorites with product references
// joined to full documents, preserving insertion order for display.
func GetExpandedFavorites(ctx context.Context, userID bson.ObjectID) (*models.ExpandedFavorite, error) {
	favorite, err := getFavoriteByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	products, err := GetProductsByIDs(ctx, favorite.Products)
	if err != nil {
		return nil, err
	}

	expanded := &models.ExpandedFavorite{
		ID:       favorite.ID,
		User:     favorite.User,
		Products: []models.Product{},
	}
	for _, id := range favorite.Products {
		if product, ok := products[id]; ok {
			expanded.Products = append(expanded.Products, *product)
		}
	}
	return expanded, nil
}

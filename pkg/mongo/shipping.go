package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/canvascart/go-api/pkg/models"
)

func CreateShippingDetails(ctx context.Context, details *models.ShippingDetails) error {
	result, err := GetCollection("shipping_details").InsertOne(ctx, details)
	if err != nil {
		return err
	}
	if id, ok := result.InsertedID.(bson.ObjectID); ok {
		details.ID = id
	}
	return nil
}

func GetAllShippingDetails(ctx context.Context) ([]models.ShippingDetails, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := GetCollection("shipping_details").Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	details := []models.ShippingDetails{}
	if err := cursor.All(ctx, &details); err != nil {
		return nil, err
	}
	return details, nil
}

func DeleteShippingDetails(ctx context.Context, id bson.ObjectID) error {
	result, err := GetCollection("shipping_details").DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/canvascart/go-api/pkg/models"
)

func CreateReview(ctx context.Context, review *models.Review) error {
	result, err := GetCollection("reviews").InsertOne(ctx, review)
	if err != nil {
		return err
	}
	if id, ok := result.InsertedID.(bson.ObjectID); ok {
		review.ID = id
	}
	return nil
}

func GetReviewByID(ctx context.Context, id bson.ObjectID) (*models.Review, error) {
	var review models.Review
	err := GetCollection("reviews").FindOne(ctx, bson.M{"_id": id}).Decode(&review)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &review, nil
}

func SaveReview(ctx context.Context, review *models.Review) error {
	result, err := GetCollection("reviews").ReplaceOne(ctx, bson.M{"_id": review.ID}, review)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func DeleteReview(ctx context.Context, id bson.ObjectID) error {
	result, err := GetCollection("reviews").DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// GetReviewsByProduct lists a product's reviews enriched with the author's
// username only, newest first.
func GetReviewsByProduct(ctx context.Context, productID bson.ObjectID) ([]models.ReviewWithAuthor, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: "product", Value: productID}}}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "users"},
			{Key: "localField", Value: "user"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "author"},
		}}},
		bson.D{{Key: "$addFields", Value: bson.D{
			{Key: "username", Value: bson.D{{Key: "$arrayElemAt", Value: bson.A{"$author.username", 0}}}},
		}}},
		bson.D{{Key: "$project", Value: bson.D{{Key: "author", Value: 0}}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
	}

	cursor, err := GetCollection("reviews").Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	reviews := []models.ReviewWithAuthor{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

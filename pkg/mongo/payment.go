package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/canvascart/go-api/pkg/models"
)

// CreatePayment persists one verified payment. The unique index on
// razorpay_payment_id turns a client retry of the same confirmation into
// ErrDuplicateKey rather than a silent second record.
func CreatePayment(ctx context.Context, payment *models.Payment) error {
	result, err := GetCollection("payments").InsertOne(ctx, payment)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		return err
	}
	if id, ok := result.InsertedID.(bson.ObjectID); ok {
		payment.ID = id
	}
	return nil
}

func GetPaymentByID(ctx context.Context, id bson.ObjectID) (*models.Payment, error) {
	var payment models.Payment
	err := GetCollection("payments").FindOne(ctx, bson.M{"_id": id}).Decode(&payment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &payment, nil
}

// GetPaymentsByUser lists a user's payments newest first, matching either
// the top-level user reference or the embedded snapshot's user id.
func GetPaymentsByUser(ctx context.Context, userID bson.ObjectID) ([]models.Payment, error) {
	query := bson.M{"$or": bson.A{
		bson.M{"user": userID},
		bson.M{"user_details.user_id": userID},
	}}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := GetCollection("payments").Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	payments := []models.Payment{}
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

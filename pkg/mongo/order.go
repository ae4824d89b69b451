package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/canvascart/go-api/pkg/models"
)

// PlaceOrder snapshots the user's cart into an order and clears the cart.
// Both writes run in one transaction so a crash cannot leave an order
// recorded with the cart still populated.
func PlaceOrder(ctx context.Context, userID bson.ObjectID, req *models.PlaceOrderRequest) (*models.Order, error) {
	unlock := lockCart(userID)
	defer unlock()

	cart, err := GetCartByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrEmptyCart
		}
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, ErrEmptyCart
	}

	order := models.OrderFromCart(cart, req)

	session, err := GetClient().StartSession()
	if err != nil {
		return nil, err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(ctx context.Context) (interface{}, error) {
		if _, err := GetCollection("orders").InsertOne(ctx, order); err != nil {
			return nil, err
		}
		cart.Clear()
		if err := saveCart(ctx, cart); err != nil {
			return nil, err
		}
		return nil, nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func GetOrdersByUser(ctx context.Context, userID bson.ObjectID) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := GetCollection("orders").Find(ctx, bson.M{"user": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

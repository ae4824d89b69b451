package mongo

import (
	"context"
	"errors"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/canvascart/go-api/pkg/models"
)

// cartLocks serializes read-modify-write cycles per user so two
// concurrent mutations of the same cart cannot race on the stored
// document. Carts of different users proceed in parallel.
var cartLocks sync.Map

func lockCart(userID bson.ObjectID) func() {
	mu, _ := cartLocks.LoadOrStore(userID.Hex(), &sync.Mutex{})
	m := mu.(*sync.Mutex)
	m.Lock()
	return m.Unlock
}

func GetCartByUser(ctx context.Context, userID bson.ObjectID) (*models.Cart, error) {
	var cart models.Cart
	err := GetCollection("carts").FindOne(ctx, bson.M{"user": userID}).Decode(&cart)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &cart, nil
}

func saveCart(ctx context.Context, cart *models.Cart) error {
	opts := options.Replace().SetUpsert(true)
	_, err := GetCollection("carts").ReplaceOne(ctx, bson.M{"user": cart.User}, cart, opts)
	return err
}

// recomputeCartTotal refreshes the derived total from current product
// prices. This runs on every mutating call and never on read.
func recomputeCartTotal(ctx context.Context, cart *models.Cart) error {
	ids := make([]bson.ObjectID, 0, len(cart.Items))
	for _, item := range cart.Items {
		ids = append(ids, item.Product)
	}
	prices, err := GetProductPrices(ctx, ids)
	if err != nil {
		return err
	}
	cart.RecomputeTotal(prices)
	return nil
}

// AddCartItem validates the product, merges the line into the user's cart
// (creating the cart on first add) and recomputes the total.
func AddCartItem(ctx context.Context, userID, productID bson.ObjectID, quantity int) (*models.Cart, error) {
	if _, err := GetProductByID(ctx, productID); err != nil {
		return nil, err
	}

	unlock := lockCart(userID)
	defer unlock()

	cart, err := GetCartByUser(ctx, userID)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			return nil, err
		}
		cart = models.NewCart(userID)
	}

	cart.Upsert(productID, quantity)
	if err := recomputeCartTotal(ctx, cart); err != nil {
		return nil, err
	}
	if err := saveCart(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// AdjustCartQuantity increments or decrements a line (dec floors at 1)
// and recomputes the total.
func AdjustCartQuantity(ctx context.Context, userID, productID bson.ObjectID, direction string) (*models.Cart, error) {
	unlock := lockCart(userID)
	defer unlock()

	cart, err := GetCartByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !cart.AdjustQuantity(productID, direction) {
		return nil, ErrItemNotFound
	}
	if err := recomputeCartTotal(ctx, cart); err != nil {
		return nil, err
	}
	if err := saveCart(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// RemoveCartItem filters the line out. Removing a product that is not in
// the cart succeeds without changing it. The total is recomputed here too,
// keeping the recompute-on-every-mutation policy uniform.
func RemoveCartItem(ctx context.Context, userID, productID bson.ObjectID) (*models.Cart, error) {
	unlock := lockCart(userID)
	defer unlock()

	cart, err := GetCartByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if cart.RemoveItem(productID) {
		if err := recomputeCartTotal(ctx, cart); err != nil {
			return nil, err
		}
		if err := saveCart(ctx, cart); err != nil {
			return nil, err
		}
	}
	return cart, nil
}

// GetExpandedCart returns the cart with line items joined to full product
// documents. Lines whose product has been deleted are skipped.
func GetExpandedCart(ctx context.Context, userID bson.ObjectID) (*models.ExpandedCart, error) {
	cart, err := GetCartByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	ids := make([]bson.ObjectID, 0, len(cart.Items))
	for _, item := range cart.Items {
		ids = append(ids, item.Product)
	}
	products, err := GetProductsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	expanded := &models.ExpandedCart{
		ID:         cart.ID,
		User:       cart.User,
		Items:      []models.ExpandedCartItem{},
		TotalPrice: cart.TotalPrice,
	}
	for _, item := range cart.Items {
		product, ok := products[item.Product]
		if !ok {
			continue
		}
		expanded.Items = append(expanded.Items, models.ExpandedCartItem{
			Product:  product,
			Quantity: item.Quantity,
		})
	}
	return expanded, nil
}

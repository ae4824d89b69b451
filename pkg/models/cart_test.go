package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestCartUpsertMergesLines(t *testing.T) {
	t.Parallel()

	cart := NewCart(bson.NewObjectID())
	product := bson.NewObjectID()

	cart.Upsert(product, 1)
	cart.Upsert(product, 1)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestCartUpsertFloorsQuantity(t *testing.T) {
	t.Parallel()

	cart := NewCart(bson.NewObjectID())
	product := bson.NewObjectID()

	cart.Upsert(product, 0)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].Quantity)

	cart.Upsert(bson.NewObjectID(), -5)
	require.Len(t, cart.Items, 2)
	assert.Equal(t, 1, cart.Items[1].Quantity)
}

func TestCartAdjustQuantity(t *testing.T) {
	t.Parallel()

	cart := NewCart(bson.NewObjectID())
	product := bson.NewObjectID()
	cart.Upsert(product, 1)

	require.True(t, cart.AdjustQuantity(product, "inc"))
	assert.Equal(t, 2, cart.Items[0].Quantity)

	require.True(t, cart.AdjustQuantity(product, "dec"))
	assert.Equal(t, 1, cart.Items[0].Quantity)

	// Decrement never drops a line below quantity 1.
	require.True(t, cart.AdjustQuantity(product, "dec"))
	assert.Equal(t, 1, cart.Items[0].Quantity)

	assert.False(t, cart.AdjustQuantity(bson.NewObjectID(), "inc"))
}

func TestCartRemoveItem(t *testing.T) {
	t.Parallel()

	cart := NewCart(bson.NewObjectID())
	first := bson.NewObjectID()
	second := bson.NewObjectID()
	cart.Upsert(first, 1)
	cart.Upsert(second, 3)

	assert.True(t, cart.RemoveItem(first))
	require.Len(t, cart.Items, 1)
	assert.Equal(t, second, cart.Items[0].Product)

	// Removing an absent product leaves the cart unchanged.
	assert.False(t, cart.RemoveItem(first))
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)
}

func TestCartRecomputeTotal(t *testing.T) {
	t.Parallel()

	cart := NewCart(bson.NewObjectID())
	painting := bson.NewObjectID()
	sketch := bson.NewObjectID()
	cart.Upsert(painting, 2)
	cart.Upsert(sketch, 1)

	prices := map[bson.ObjectID]float64{painting: 150.0, sketch: 40.0}
	cart.RecomputeTotal(prices)
	assert.InDelta(t, 340.0, cart.TotalPrice, 1e-9)

	// A price change alone does not touch the stored total; only the
	// next recompute picks it up.
	prices[painting] = 200.0
	assert.InDelta(t, 340.0, cart.TotalPrice, 1e-9)
	cart.RecomputeTotal(prices)
	assert.InDelta(t, 440.0, cart.TotalPrice, 1e-9)
}

func TestCartRecomputeTotalSkipsDeletedProducts(t *testing.T) {
	t.Parallel()

	cart := NewCart(bson.NewObjectID())
	kept := bson.NewObjectID()
	deleted := bson.NewObjectID()
	cart.Upsert(kept, 1)
	cart.Upsert(deleted, 4)

	cart.RecomputeTotal(map[bson.ObjectID]float64{kept: 25.0})
	assert.InDelta(t, 25.0, cart.TotalPrice, 1e-9)
}

func TestCartClear(t *testing.T) {
	t.Parallel()

	cart := NewCart(bson.NewObjectID())
	cart.Upsert(bson.NewObjectID(), 2)
	cart.RecomputeTotal(map[bson.ObjectID]float64{})

	require.False(t, cart.IsEmpty())
	cart.Clear()
	assert.True(t, cart.IsEmpty())
	assert.Zero(t, cart.TotalPrice)
}

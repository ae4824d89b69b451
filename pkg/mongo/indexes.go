package mongo

import (
	"log"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/canvascart/go-api/pkg/global"
)

type IndexConfig struct {
	CollectionName string
	IndexModel     mongo.IndexModel
}

var requiredIndexes = []IndexConfig{
	// Users
	{
		CollectionName: "users",
		IndexModel: mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("idx_user_email_unique"),
		},
	},

	// Products: category and art-type exact-match filters
	{
		CollectionName: "products",
		IndexModel: mongo.IndexModel{
			Keys:    bson.D{{Key: "category", Value: 1}},
			Options: options.Index().SetName("idx_category"),
		},
	},
	{
		CollectionName: "products",
		IndexModel: mongo.IndexModel{
			Keys:    bson.D{{Key: "art_type", Value: 1}},
			Options: options.Index().SetName("idx_art_type"),
		},
	},
	// Price range bounds combine with the filters above
	{
		CollectionName: "products",
		IndexModel: mongo.IndexModel{
			Keys:    bson.D{{Key: "price", Value: 1}},
			Options: options.Index().SetName("idx_price"),
		},
	},

	// Carts and favorites are owned 1:1 by a user
	{
		CollectionName: "carts",
		IndexModel: mongo.IndexModel{
			Keys:    bson.D{{Key: "user", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("idx_cart_user_unique"),
		},
	},
	{
		CollectionName: "favorites",
		IndexModel: mongo.IndexModel{
			Keys:    bson.D{{Key: "user", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("idx_favorite_user_unique"),
		},
	},

	// Reviews: product listing and author lookups
	{
		CollectionName: "reviews",
		IndexModel: mongo.IndexModel{
			Keys:    bson.D{{Key: "product", Value: 1}},
			Options: options.Index().SetName("idx_product_reviews"),
		},
	},
	{
		CollectionName: "reviews",
		IndexModel: mongo.IndexModel{
			Keys:    bson.D{{Key: "user", Value: 1}},
			Options: options.Index().SetName("idx_user_reviews"),
		},
	},

	// Payments: the unique payment id makes a replayed verification
	// surface as a conflict instead of persisting twice
	{
		CollectionName: "payments",
		IndexModel: mongo.IndexModel{
			Keys:    bson.D{{Key: "razorpay_payment_id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("idx_payment_id_unique"),
		},
	},
	{
		CollectionName: "payments",
		IndexModel: mongo.IndexModel{
			Keys:    bson.D{{Key: "razorpay_order_id", Value: 1}},
			Options: options.Index().SetName("idx_payment_order_id"),
		},
	},
	{
		CollectionName: "payments",
		IndexModel: mongo.IndexModel{
			Keys: bson.D{
				{Key: "user_details.user_id", Value: 1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().SetName("idx_payment_user_history"),
		},
	},

	// Orders: per-user history
	{
		CollectionName: "orders",
		IndexModel: mongo.IndexModel{
			Keys: bson.D{
				{Key: "user", Value: 1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().SetName("idx_user_orders"),
		},
	},

	// Shipping details are listed newest first
	{
		CollectionName: "shipping_details",
		IndexModel: mongo.IndexModel{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_shipping_recent"),
		},
	},
}

func EnsureIndexes() error {
	log.Println("Starting index creation...")

	for _, idxConfig := range requiredIndexes {
		collection := GetCollection(idxConfig.CollectionName)
		ctx, cancel := global.GetDefaultTimer()
		defer cancel()

		indexName, err := collection.Indexes().CreateOne(ctx, idxConfig.IndexModel)
		if err != nil {
			log.Printf("Error creating index on collection %s: %v",
				idxConfig.CollectionName, err)
			return err
		}

		log.Printf("Created index '%s' on collection '%s'", indexName, idxConfig.CollectionName)
	}

	log.Println("All indexes created successfully")
	return nil
}

func EnsureIndexesOnStartup() {
	if err := EnsureIndexes(); err != nil {
		log.Fatalf("Failed to ensure indexes: %v", err)
	}
}

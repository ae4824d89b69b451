package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Product represents a single artwork listing in the catalog
type Product struct {
	ID          bson.ObjectID `json:"id" bson:"_id,omitempty"`
	Title       string        `json:"title" bson:"title" validate:"required,min=2,max=200"`
	Description string        `json:"description" bson:"description" validate:"max=2000"`
	Image       string        `json:"image" bson:"image"`
	Price       float64       `json:"price" bson:"price" validate:"required,gt=0"`
	Category    string        `json:"category" bson:"category"` // e.g. "Landscape", "Portrait"
	ArtType     string        `json:"artType" bson:"art_type"`  // e.g. "Acrylic", "Watercolor", "Oil"
	Rating      float64       `json:"rating" bson:"rating" validate:"gte=0,lte=5"`
	CreatedAt   time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at" bson:"updated_at"`
}

type CreateProductRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Category    string  `json:"category"`
	ArtType     string  `json:"artType"`
}

// UpdateProductRequest carries a partial update; zero-valued fields keep
// the stored values.
type UpdateProductRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	ArtType     string  `json:"artType"`
}

// ProductFilter holds the combinable catalog query parameters.
type ProductFilter struct {
	Search   string
	Category string
	ArtType  string
	MinPrice *float64
	MaxPrice *float64
}

func (req *CreateProductRequest) ToProduct() *Product {
	now := time.Now()
	return &Product{
		ID:          bson.NewObjectID(),
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
		Price:       req.Price,
		Category:    req.Category,
		ArtType:     req.ArtType,
		Rating:      0,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// ApplyUpdate merges non-empty request fields into the product, mirroring
// the merge-style update of the catalog manager UI.
func (p *Product) ApplyUpdate(req *UpdateProductRequest) {
	if req.Title != "" {
		p.Title = req.Title
	}
	if req.Description != "" {
		p.Description = req.Description
	}
	if req.Image != "" {
		p.Image = req.Image
	}
	if req.Price > 0 {
		p.Price = req.Price
	}
	if req.Category != "" {
		p.Category = req.Category
	}
	if req.ArtType != "" {
		p.ArtType = req.ArtType
	}
	p.UpdatedAt = time.Now()
}

func (p *Product) SetTimestamps() {
	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
}

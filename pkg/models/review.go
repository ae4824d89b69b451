package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Review belongs to exactly one product and one authoring user. Only the
// author may update or delete it.
type Review struct {
	ID        bson.ObjectID `json:"id" bson:"_id,omitempty"`
	Product   bson.ObjectID `json:"product" bson:"product" validate:"required"`
	User      bson.ObjectID `json:"user" bson:"user" validate:"required"`
	Comment   string        `json:"comment" bson:"comment" validate:"max=2000"`
	Stars     int           `json:"stars" bson:"stars" validate:"required,gte=1,lte=5"`
	CreatedAt time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time     `json:"updated_at" bson:"updated_at"`
}

type CreateReviewRequest struct {
	Comment string `json:"comment"`
	Stars   int    `json:"stars" binding:"required,gte=1,lte=5"`
}

// UpdateReviewRequest is merge-style: zero values keep the stored fields.
type UpdateReviewRequest struct {
	Comment string `json:"comment"`
	Stars   int    `json:"stars"`
}

// ReviewWithAuthor is the public listing shape: the review enriched with
// the author's display name only.
type ReviewWithAuthor struct {
	Review   `bson:",inline"`
	Username string `json:"username" bson:"username"`
}

// IsAuthoredBy reports whether the given user wrote this review.
func (r *Review) IsAuthoredBy(userID bson.ObjectID) bool {
	return r.User == userID
}

// ApplyUpdate merges non-zero request fields into the review.
func (r *Review) ApplyUpdate(req *UpdateReviewRequest) {
	if req.Comment != "" {
		r.Comment = req.Comment
	}
	if req.Stars >= 1 && req.Stars <= 5 {
		r.Stars = req.Stars
	}
	r.UpdatedAt = time.Now()
}

func (r *Review) SetTimestamps() {
	now := time.Now()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	r.UpdatedAt = now
}

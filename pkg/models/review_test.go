package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestReviewIsAuthoredBy(t *testing.T) {
	t.Parallel()

	author := bson.NewObjectID()
	review := Review{Product: bson.NewObjectID(), User: author, Comment: "Lovely piece", Stars: 5}

	assert.True(t, review.IsAuthoredBy(author))
	assert.False(t, review.IsAuthoredBy(bson.NewObjectID()))
}

func TestReviewApplyUpdate(t *testing.T) {
	t.Parallel()

	review := Review{Comment: "Lovely piece", Stars: 5}

	review.ApplyUpdate(&UpdateReviewRequest{Comment: "Even better in person", Stars: 4})
	assert.Equal(t, "Even better in person", review.Comment)
	assert.Equal(t, 4, review.Stars)

	// Zero values keep the stored fields.
	review.ApplyUpdate(&UpdateReviewRequest{})
	assert.Equal(t, "Even better in person", review.Comment)
	assert.Equal(t, 4, review.Stars)

	// Ratings outside 1..5 are ignored rather than stored.
	review.ApplyUpdate(&UpdateReviewRequest{Stars: 0})
	assert.Equal(t, 4, review.Stars)
	review.ApplyUpdate(&UpdateReviewRequest{Stars: 6})
	assert.Equal(t, 4, review.Stars)
	review.ApplyUpdate(&UpdateReviewRequest{Stars: -1})
	assert.Equal(t, 4, review.Stars)

	review.ApplyUpdate(&UpdateReviewRequest{Stars: 1})
	assert.Equal(t, 1, review.Stars)
}

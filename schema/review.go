package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ReviewCollection = "reviews"
)

// CategoryRatings holds the 1-5 ratings of a review. A nil or non-positive
// value means the category was not rated.
type CategoryRatings struct {
	Cleanliness   *int `json:"cleanliness,omitempty" bson:"cleanliness,omitempty"`
	Supplies      *int `json:"supplies,omitempty" bson:"supplies,omitempty"`
	Accessibility *int `json:"accessibility,omitempty" bson:"accessibility,omitempty"`
	WaitTime      *int `json:"waitTime,omitempty" bson:"waitTime,omitempty"`
}

// Get returns the rating of a category and whether it is rated.
func (r *CategoryRatings) Get(category RatingCategory) (int, bool) {
	if r == nil {
		return 0, false
	}

	var v *int
	switch category {
	case RatingCleanliness:
		v = r.Cleanliness
	case RatingSupplies:
		v = r.Supplies
	case RatingAccessibility:
		v = r.Accessibility
	case RatingWaitTime:
		v = r.WaitTime
	}

	if v == nil || *v <= 0 {
		return 0, false
	}
	return *v, true
}

// Review is a stored review. Old documents may lack Ratings and only carry
// the top-level Cleanliness value.
type Review struct {
	ID            primitive.ObjectID `json:"id" bson:"_id"`
	LocationID    primitive.ObjectID `json:"location_id" bson:"location_id"`
	UserID        string             `json:"-" bson:"user_id"`
	Ratings       *CategoryRatings   `json:"ratings,omitempty" bson:"ratings,omitempty"`
	Cleanliness   *float64           `json:"cleanliness,omitempty" bson:"cleanliness,omitempty"`
	AverageRating float64            `json:"average_rating" bson:"average_rating"`
	Comment       string             `json:"comment" bson:"comment"`
	Helpful       int64              `json:"helpful" bson:"helpful"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"`
}

// CategoryValue returns the value a review contributes to a category.
// Cleanliness falls back to the legacy top-level field.
func (r Review) CategoryValue(category RatingCategory) (float64, bool) {
	if v, ok := r.Ratings.Get(category); ok {
		return float64(v), true
	}

	if category == RatingCleanliness && r.Cleanliness != nil && *r.Cleanliness > 0 {
		return *r.Cleanliness, true
	}

	return 0, false
}

// ReviewInput is a review as submitted by a user.
type ReviewInput struct {
	LocationID primitive.ObjectID `json:"-"`
	UserID     string             `json:"-"`
	Ratings    CategoryRatings    `json:"ratings"`
	Comment    string             `json:"comment"`
}

package schema

import "time"

type RatingCategory string

const (
	RatingCleanliness   RatingCategory = "cleanliness"
	RatingSupplies      RatingCategory = "supplies"
	RatingAccessibility RatingCategory = "accessibility"
	RatingWaitTime      RatingCategory = "waitTime"
)

// RatingCategories lists every category in display order.
var RatingCategories = []RatingCategory{
	RatingCleanliness,
	RatingSupplies,
	RatingAccessibility,
	RatingWaitTime,
}

// RatingCategoryLabels is a category with its display label and the labels
// of levels 1 to 5.
type RatingCategoryLabels struct {
	ID     RatingCategory `json:"id"`
	Label  string         `json:"label"`
	Levels [5]string      `json:"levels"`
}

// LocationRatings is the aggregate of all reviews of a location.
type LocationRatings struct {
	Overall       float64   `json:"overall" bson:"overall"`
	Cleanliness   float64   `json:"cleanliness" bson:"cleanliness"`
	Supplies      float64   `json:"supplies" bson:"supplies"`
	Accessibility float64   `json:"accessibility" bson:"accessibility"`
	WaitTime      float64   `json:"waitTime" bson:"waitTime"`
	Count         int64     `json:"count" bson:"count"`
	LastUpdated   time.Time `json:"last_updated" bson:"last_updated"`
}

// Category returns the average of a single category.
func (r LocationRatings) Category(category RatingCategory) float64 {
	switch category {
	case RatingCleanliness:
		return r.Cleanliness
	case RatingSupplies:
		return r.Supplies
	case RatingAccessibility:
		return r.Accessibility
	case RatingWaitTime:
		return r.WaitTime
	}
	return 0
}

package score

import (
	"fmt"
	"time"

	"github.com/benvisser/call-of-doody-sub000/schema"
)

const (
	MinRating = 1
	MaxRating = 5
)

// Clock supplies timestamps for votes, reviews and aggregates.
type Clock func() time.Time

// SystemClock is the server time in UTC.
func SystemClock() time.Time {
	return time.Now().UTC()
}

// ValidationError is returned when a review is rejected before any write.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var ErrRatingsRequired = &ValidationError{Message: "All 4 ratings are required"}

// ValidateReview checks that every category is rated within range and
// returns the plain mean of the four ratings rounded to 1 decimal.
func ValidateReview(ratings schema.CategoryRatings) (float64, error) {
	values := make([]float64, 0, len(schema.RatingCategories))
	for _, c := range schema.RatingCategories {
		v, ok := ratings.Get(c)
		if !ok {
			return 0, ErrRatingsRequired
		}
		if v < MinRating || v > MaxRating {
			return 0, &ValidationError{
				Message: fmt.Sprintf("%s rating must be between %d and %d", c, MinRating, MaxRating),
			}
		}
		values = append(values, float64(v))
	}

	return Round(Average(values...), 1), nil
}

// IncrementalRatings folds a single new review into the previous aggregate with
// a weighted running mean. Only overall, cleanliness and count move; the other
// categories are left for RecomputeRatings.
func IncrementalRatings(prev schema.LocationRatings, averageRating, cleanliness float64, now time.Time) schema.LocationRatings {
	prevCount := float64(prev.Count)
	newCount := prev.Count + 1

	next := prev
	next.Overall = Round((prev.Overall*prevCount+averageRating)/float64(newCount), 1)
	next.Cleanliness = Round((prev.Cleanliness*prevCount+cleanliness)/float64(newCount), 1)
	next.Count = newCount
	next.LastUpdated = now
	return next
}

// RecomputeRatings derives the aggregate from the full review set. Each
// category is averaged over the reviews that rated it and the overall rating
// is the mean of the categories that have data.
func RecomputeRatings(reviews []schema.Review, now time.Time) schema.LocationRatings {
	if len(reviews) == 0 {
		return schema.LocationRatings{LastUpdated: now}
	}

	averages := make(map[schema.RatingCategory]float64, len(schema.RatingCategories))
	rated := make([]float64, 0, len(schema.RatingCategories))
	for _, c := range schema.RatingCategories {
		values := []float64{}
		for _, r := range reviews {
			if v, ok := r.CategoryValue(c); ok {
				values = append(values, v)
			}
		}

		avg := Average(values...)
		averages[c] = avg
		if avg > 0 {
			rated = append(rated, avg)
		}
	}

	return schema.LocationRatings{
		Overall:       Round(Average(rated...), 2),
		Cleanliness:   Round(averages[schema.RatingCleanliness], 2),
		Supplies:      Round(averages[schema.RatingSupplies], 2),
		Accessibility: Round(averages[schema.RatingAccessibility], 2),
		WaitTime:      Round(averages[schema.RatingWaitTime], 2),
		Count:         int64(len(reviews)),
		LastUpdated:   now,
	}
}

package score

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/benvisser/call-of-doody-sub000/schema"
)

func intp(v int) *int {
	return &v
}

func ratingsOf(cleanliness, supplies, accessibility, waitTime int) schema.CategoryRatings {
	return schema.CategoryRatings{
		Cleanliness:   intp(cleanliness),
		Supplies:      intp(supplies),
		Accessibility: intp(accessibility),
		WaitTime:      intp(waitTime),
	}
}

func TestValidateReviewMissingCategory(t *testing.T) {
	_, err := ValidateReview(ratingsOf(4, 0, 3, 5))
	assert.Equal(t, ErrRatingsRequired, err)
	assert.Equal(t, "All 4 ratings are required", err.Error())

	_, err = ValidateReview(schema.CategoryRatings{Cleanliness: intp(4)})
	assert.Equal(t, ErrRatingsRequired, err)
}

func TestValidateReviewOutOfRange(t *testing.T) {
	_, err := ValidateReview(ratingsOf(4, 6, 3, 5))
	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))
	assert.NotEqual(t, ErrRatingsRequired, err)
}

func TestValidateReviewAverage(t *testing.T) {
	avg, err := ValidateReview(ratingsOf(5, 5, 5, 5))
	assert.NoError(t, err)
	assert.Equal(t, 5.0, avg)

	avg, err = ValidateReview(ratingsOf(4, 3, 3, 3))
	assert.NoError(t, err)
	assert.Equal(t, 3.3, avg)
}

func TestIncrementalRatingsScenario(t *testing.T) {
	now := time.Now()

	agg := IncrementalRatings(schema.LocationRatings{}, 5.0, 5, now)
	assert.Equal(t, 5.0, agg.Overall)
	assert.Equal(t, 5.0, agg.Cleanliness)
	assert.Equal(t, int64(1), agg.Count)

	agg = IncrementalRatings(agg, 3.0, 3, now)
	assert.Equal(t, 4.0, agg.Overall)
	assert.Equal(t, 4.0, agg.Cleanliness)
	assert.Equal(t, int64(2), agg.Count)
}

func TestIncrementalRatingsLeavesOtherCategories(t *testing.T) {
	prev := schema.LocationRatings{Overall: 4, Cleanliness: 4, Supplies: 3.25, WaitTime: 2, Count: 4}
	agg := IncrementalRatings(prev, 2, 2, time.Now())
	assert.Equal(t, 3.6, agg.Overall)
	assert.Equal(t, 3.6, agg.Cleanliness)
	assert.Equal(t, 3.25, agg.Supplies)
	assert.Equal(t, 2.0, agg.WaitTime)
	assert.Equal(t, int64(5), agg.Count)
}

func TestRecomputeRatingsNoReviews(t *testing.T) {
	agg := RecomputeRatings(nil, time.Now())
	assert.Equal(t, 0.0, agg.Overall)
	assert.Equal(t, 0.0, agg.Cleanliness)
	assert.Equal(t, 0.0, agg.Supplies)
	assert.Equal(t, 0.0, agg.Accessibility)
	assert.Equal(t, 0.0, agg.WaitTime)
	assert.Equal(t, int64(0), agg.Count)
}

func TestRecomputeRatingsScenario(t *testing.T) {
	r1 := ratingsOf(5, 5, 5, 5)
	r2 := ratingsOf(3, 3, 3, 3)
	agg := RecomputeRatings([]schema.Review{
		{Ratings: &r1, AverageRating: 5},
		{Ratings: &r2, AverageRating: 3},
	}, time.Now())

	assert.Equal(t, 4.0, agg.Overall)
	assert.Equal(t, 4.0, agg.Cleanliness)
	assert.Equal(t, int64(2), agg.Count)
}

func TestRecomputeRatingsFiltersUnratedAndLegacy(t *testing.T) {
	legacy := 2.0
	full := ratingsOf(4, 5, 3, 4)
	partial := schema.CategoryRatings{Cleanliness: intp(3), Supplies: intp(4)}

	agg := RecomputeRatings([]schema.Review{
		{Ratings: &full},
		{Ratings: &partial},
		{Cleanliness: &legacy},
	}, time.Now())

	assert.Equal(t, 3.0, agg.Cleanliness)
	assert.Equal(t, 4.5, agg.Supplies)
	assert.Equal(t, 3.0, agg.Accessibility)
	assert.Equal(t, 4.0, agg.WaitTime)
	assert.Equal(t, 3.63, agg.Overall)
	assert.Equal(t, int64(3), agg.Count)
}

func TestRecomputeRatingsExcludesEmptyCategoriesFromOverall(t *testing.T) {
	legacy := 4.0
	agg := RecomputeRatings([]schema.Review{{Cleanliness: &legacy}}, time.Now())
	assert.Equal(t, 4.0, agg.Cleanliness)
	assert.Equal(t, 0.0, agg.Supplies)
	assert.Equal(t, 4.0, agg.Overall)
}

func TestIncrementalConvergesWithRecompute(t *testing.T) {
	inputs := []schema.CategoryRatings{
		ratingsOf(5, 4, 3, 2),
		ratingsOf(1, 2, 3, 4),
		ratingsOf(4, 4, 5, 5),
		ratingsOf(3, 2, 2, 1),
		ratingsOf(5, 5, 4, 5),
		ratingsOf(2, 3, 3, 3),
	}

	now := time.Now()
	agg := schema.LocationRatings{}
	reviews := []schema.Review{}
	for i := range inputs {
		avg, err := ValidateReview(inputs[i])
		assert.NoError(t, err)
		agg = IncrementalRatings(agg, avg, float64(*inputs[i].Cleanliness), now)
		reviews = append(reviews, schema.Review{Ratings: &inputs[i], AverageRating: avg})
	}

	direct := RecomputeRatings(reviews, now)
	assert.InDelta(t, direct.Overall, agg.Overall, 0.05)
	assert.InDelta(t, direct.Cleanliness, agg.Cleanliness, 0.05)
	assert.Equal(t, direct.Count, agg.Count)
}

package store

import (
	"context"
	"strings"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/benvisser/call-of-doody-sub000/schema"
	"github.com/benvisser/call-of-doody-sub000/score"
)

const (
	DefaultReviewLimit = 50
	MaxCommentLength   = 2000
)

type Review interface {
	SubmitReview(ctx context.Context, input schema.ReviewInput) (*schema.Review, *schema.LocationRatings, error)
	ListReviews(ctx context.Context, locationID primitive.ObjectID, limit int64) ([]schema.Review, error)
	MarkReviewHelpful(ctx context.Context, reviewID primitive.ObjectID) (int64, error)
	DeleteReview(ctx context.Context, userID string, reviewID primitive.ObjectID) (*schema.Review, *schema.LocationRatings, error)
	RecomputeRatings(ctx context.Context, locationID primitive.ObjectID) (*schema.LocationRatings, error)
}

type ratingsDocument struct {
	ID      primitive.ObjectID     `bson:"_id"`
	Ratings schema.LocationRatings `bson:"ratings"`
}

// SubmitReview validates a review, then inserts it and folds it into the
// location aggregate in one transaction.
func (m *mongoDB) SubmitReview(ctx context.Context, input schema.ReviewInput) (*schema.Review, *schema.LocationRatings, error) {
	average, err := score.ValidateReview(input.Ratings)
	if err != nil {
		return nil, nil, err
	}

	comment := strings.TrimSpace(input.Comment)
	if len(comment) > MaxCommentLength {
		return nil, nil, &score.ValidationError{Message: "Comment is too long"}
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	reviews := m.collection(schema.ReviewCollection)
	locations := m.collection(schema.LocationCollection)

	ratings := input.Ratings
	review := schema.Review{
		ID:            primitive.NewObjectID(),
		LocationID:    input.LocationID,
		UserID:        input.UserID,
		Ratings:       &ratings,
		AverageRating: average,
		Comment:       comment,
	}
	cleanliness, _ := ratings.Get(schema.RatingCleanliness)

	result, err := m.withTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		var doc ratingsDocument
		err := locations.FindOne(sc,
			bson.M{"_id": input.LocationID},
			options.FindOne().SetProjection(bson.M{"ratings": 1}),
		).Decode(&doc)
		if err != nil {
			if err == mongo.ErrNoDocuments {
				return nil, ErrLocationNotFound
			}
			return nil, err
		}

		now := m.now()
		review.CreatedAt = now
		if _, err := reviews.InsertOne(sc, review); err != nil {
			return nil, err
		}

		next := score.IncrementalRatings(doc.Ratings, average, float64(cleanliness), now)
		if _, err := locations.UpdateOne(sc, bson.M{"_id": input.LocationID}, bson.M{
			"$set": bson.M{
				"ratings.overall":      next.Overall,
				"ratings.cleanliness":  next.Cleanliness,
				"ratings.count":        next.Count,
				"ratings.last_updated": next.LastUpdated,
				"updated_at":           now,
			},
		}); err != nil {
			return nil, err
		}

		return &next, nil
	})

	if err != nil {
		log.WithFields(log.Fields{
			"prefix":      mongoLogPrefix,
			"location_id": input.LocationID.Hex(),
			"error":       err,
		}).Error("submit review")
		return nil, nil, err
	}

	return &review, result.(*schema.LocationRatings), nil
}

// ListReviews returns the newest reviews of a location first.
func (m *mongoDB) ListReviews(ctx context.Context, locationID primitive.ObjectID, limit int64) ([]schema.Review, error) {
	if limit <= 0 || limit > DefaultReviewLimit {
		limit = DefaultReviewLimit
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := m.collection(schema.ReviewCollection).Find(ctx, bson.M{"location_id": locationID}, opts)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix":      mongoLogPrefix,
			"location_id": locationID.Hex(),
			"error":       err,
		}).Error("list reviews")
		return nil, err
	}

	reviews := []schema.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (m *mongoDB) MarkReviewHelpful(ctx context.Context, reviewID primitive.ObjectID) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var review schema.Review
	err := m.collection(schema.ReviewCollection).FindOneAndUpdate(ctx,
		bson.M{"_id": reviewID},
		bson.M{"$inc": bson.M{"helpful": 1}},
		options.FindOneAndUpdate().SetReturnDocument(options.After).SetProjection(bson.M{"helpful": 1}),
	).Decode(&review)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return 0, ErrReviewNotFound
		}
		return 0, err
	}
	return review.Helpful, nil
}

// DeleteReview removes a review owned by userID and recomputes the ratings of
// its location in the same transaction.
func (m *mongoDB) DeleteReview(ctx context.Context, userID string, reviewID primitive.ObjectID) (*schema.Review, *schema.LocationRatings, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	reviews := m.collection(schema.ReviewCollection)

	var review schema.Review
	result, err := m.withTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		if err := reviews.FindOne(sc, bson.M{"_id": reviewID}).Decode(&review); err != nil {
			if err == mongo.ErrNoDocuments {
				return nil, ErrReviewNotFound
			}
			return nil, err
		}

		if review.UserID != userID {
			return nil, ErrReviewNotOwned
		}

		res, err := reviews.DeleteOne(sc, bson.M{"_id": reviewID, "user_id": userID})
		if err != nil {
			return nil, err
		}
		if res.DeletedCount == 0 {
			return nil, ErrReviewNotFound
		}

		return m.recomputeRatings(sc, review.LocationID)
	})

	if err != nil {
		switch err {
		case ErrReviewNotFound, ErrReviewNotOwned:
			log.WithFields(log.Fields{
				"prefix":    mongoLogPrefix,
				"review_id": reviewID.Hex(),
				"error":     err,
			}).Debug("delete review rejected")
		default:
			log.WithFields(log.Fields{
				"prefix":    mongoLogPrefix,
				"review_id": reviewID.Hex(),
				"error":     err,
			}).Error("delete review")
		}
		return nil, nil, err
	}

	return &review, result.(*schema.LocationRatings), nil
}

// RecomputeRatings rebuilds the aggregate of a location from all its reviews.
func (m *mongoDB) RecomputeRatings(ctx context.Context, locationID primitive.ObjectID) (*schema.LocationRatings, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := m.withTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return m.recomputeRatings(sc, locationID)
	})

	if err != nil {
		log.WithFields(log.Fields{
			"prefix":      mongoLogPrefix,
			"location_id": locationID.Hex(),
			"error":       err,
		}).Error("recompute ratings")
		return nil, err
	}

	return result.(*schema.LocationRatings), nil
}

// recomputeRatings writes the aggregate of a location derived from the
// reviews visible in the session.
func (m *mongoDB) recomputeRatings(sc mongo.SessionContext, locationID primitive.ObjectID) (*schema.LocationRatings, error) {
	cursor, err := m.collection(schema.ReviewCollection).Find(sc, bson.M{"location_id": locationID})
	if err != nil {
		return nil, err
	}

	var all []schema.Review
	if err := cursor.All(sc, &all); err != nil {
		return nil, err
	}

	now := m.now()
	ratings := score.RecomputeRatings(all, now)

	res, err := m.collection(schema.LocationCollection).UpdateOne(sc, bson.M{"_id": locationID}, bson.M{
		"$set": bson.M{
			"ratings":    ratings,
			"updated_at": now,
		},
	})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ErrLocationNotFound
	}

	return &ratings, nil
}

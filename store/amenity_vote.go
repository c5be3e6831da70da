package store

import (
	"context"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/benvisser/call-of-doody-sub000/amenity"
	"github.com/benvisser/call-of-doody-sub000/schema"
	"github.com/benvisser/call-of-doody-sub000/score"
)

type AmenityVote interface {
	ApplyVote(ctx context.Context, vote schema.AmenityVote) (*schema.VoteOutcome, error)
	HasVoted(ctx context.Context, key schema.VoteKey) (bool, error)
	RebuildAmenityStatus(ctx context.Context, locationID primitive.ObjectID) (schema.LocationAmenities, error)
}

type amenitiesDocument struct {
	ID        primitive.ObjectID  `bson:"_id"`
	Amenities schema.RawAmenities `bson:"amenities"`
}

// amenitiesUpdate writes entry under its own path when the stored map is
// already current, and replaces the amenities field once when it is legacy.
func amenitiesUpdate(raw schema.RawAmenities, amenities schema.LocationAmenities, amenityID string) bson.M {
	set := bson.M{
		"confirmed_amenities": amenity.ConfirmedAmenities(amenities),
	}
	if raw.Format == schema.AmenityFormatCurrent && len(raw.Current) > 0 && amenityID != "" {
		set["amenities."+amenityID] = amenities[amenityID]
	} else {
		set["amenities"] = schema.CurrentAmenities(amenities)
	}
	return set
}

// ApplyVote records a user's vote and updates the amenity status of the
// location in the same transaction.
func (m *mongoDB) ApplyVote(ctx context.Context, vote schema.AmenityVote) (*schema.VoteOutcome, error) {
	if !vote.Vote.Valid() {
		return nil, ErrInvalidVote
	}
	if !amenity.Known(vote.Key.AmenityID) {
		return nil, ErrUnknownAmenity
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	votes := m.collection(schema.AmenityVoteCollection)
	locations := m.collection(schema.LocationCollection)
	amenityID := vote.Key.AmenityID

	result, err := m.withTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		if err := votes.FindOne(sc, bson.M{"_id": vote.Key}).Err(); err == nil {
			return nil, ErrDuplicateVote
		} else if err != mongo.ErrNoDocuments {
			return nil, err
		}

		now := m.now()
		record := vote
		if record.CreatedAt.IsZero() {
			record.CreatedAt = now
		}
		if _, err := votes.InsertOne(sc, record); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return nil, ErrDuplicateVote
			}
			return nil, err
		}

		var doc amenitiesDocument
		err := locations.FindOne(sc,
			bson.M{"_id": vote.Key.LocationID},
			options.FindOne().SetProjection(bson.M{"amenities": 1}),
		).Decode(&doc)
		if err != nil {
			if err == mongo.ErrNoDocuments {
				return nil, ErrLocationNotFound
			}
			return nil, err
		}

		amenities := amenity.NormalizeAmenities(doc.Amenities)
		previous, ok := amenities[amenityID]
		if !ok {
			previous = schema.NewAmenityStatusEntry()
		}
		entry := m.thresholds.ApplyVote(previous, vote.Vote, now)
		amenities[amenityID] = entry

		set := amenitiesUpdate(doc.Amenities, amenities, amenityID)
		set["updated_at"] = now

		res, err := locations.UpdateOne(sc, bson.M{"_id": vote.Key.LocationID}, bson.M{"$set": set})
		if err != nil {
			return nil, err
		}
		if res.MatchedCount == 0 {
			return nil, ErrLocationNotFound
		}

		return &schema.VoteOutcome{
			AmenityID:          amenityID,
			Entry:              entry,
			PreviousStatus:     previous.Status,
			ConfirmedAmenities: amenity.ConfirmedAmenities(amenities),
		}, nil
	})

	if err != nil {
		fields := log.Fields{
			"prefix":      mongoLogPrefix,
			"location_id": vote.Key.LocationID.Hex(),
			"amenity_id":  amenityID,
			"error":       err,
		}
		if err == ErrDuplicateVote || err == ErrLocationNotFound {
			log.WithFields(fields).Debug("apply vote rejected")
		} else {
			log.WithFields(fields).Error("apply vote")
		}
		return nil, err
	}

	return result.(*schema.VoteOutcome), nil
}

func (m *mongoDB) HasVoted(ctx context.Context, key schema.VoteKey) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	count, err := m.collection(schema.AmenityVoteCollection).CountDocuments(ctx, bson.M{"_id": key})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

type voteTally struct {
	AmenityID string `bson:"_id"`
	Confirm   int    `bson:"confirm"`
	Deny      int    `bson:"deny"`
}

// RebuildAmenityStatus recounts every amenity of a location from its vote
// records and rewrites the amenities map. Amenities without votes are kept.
func (m *mongoDB) RebuildAmenityStatus(ctx context.Context, locationID primitive.ObjectID) (schema.LocationAmenities, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	votes := m.collection(schema.AmenityVoteCollection)
	locations := m.collection(schema.LocationCollection)

	result, err := m.withTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		var doc amenitiesDocument
		err := locations.FindOne(sc,
			bson.M{"_id": locationID},
			options.FindOne().SetProjection(bson.M{"amenities": 1}),
		).Decode(&doc)
		if err != nil {
			if err == mongo.ErrNoDocuments {
				return nil, ErrLocationNotFound
			}
			return nil, err
		}

		cursor, err := votes.Aggregate(sc, mongo.Pipeline{
			AggregationMatch(bson.M{"_id.location_id": locationID}),
			AggregationGroup("$_id.amenity_id", bson.D{
				{Key: "confirm", Value: bson.M{"$sum": bson.M{"$cond": bson.A{bson.M{"$eq": bson.A{"$vote", schema.VoteConfirm}}, 1, 0}}}},
				{Key: "deny", Value: bson.M{"$sum": bson.M{"$cond": bson.A{bson.M{"$eq": bson.A{"$vote", schema.VoteDeny}}, 1, 0}}}},
			}),
		})
		if err != nil {
			return nil, err
		}

		var tallies []voteTally
		if err := cursor.All(sc, &tallies); err != nil {
			return nil, err
		}

		now := m.now()
		amenities := amenity.NormalizeAmenities(doc.Amenities)
		for _, t := range tallies {
			entry := schema.AmenityStatusEntry{
				Votes:        t.Confirm + t.Deny,
				ConfirmVotes: t.Confirm,
				DenyVotes:    t.Deny,
			}
			previous, ok := amenities[t.AmenityID]
			if ok && previous.Votes == entry.Votes && previous.ConfirmVotes == entry.ConfirmVotes && previous.DenyVotes == entry.DenyVotes {
				entry.LastUpdated = previous.LastUpdated
			} else {
				entry.LastUpdated = now
			}
			entry.Percentage = score.Percentage(entry.ConfirmVotes, entry.Votes)
			entry.Status = m.thresholds.Derive(entry.ConfirmVotes, entry.DenyVotes)
			amenities[t.AmenityID] = entry
		}

		set := amenitiesUpdate(schema.RawAmenities{}, amenities, "")
		set["updated_at"] = now
		if _, err := locations.UpdateOne(sc, bson.M{"_id": locationID}, bson.M{"$set": set}); err != nil {
			return nil, err
		}

		return amenities, nil
	})
	if err != nil {
		log.WithFields(log.Fields{
			"prefix":      mongoLogPrefix,
			"location_id": locationID.Hex(),
			"error":       err,
		}).Error("rebuild amenity status")
		return nil, err
	}

	return result.(schema.LocationAmenities), nil
}

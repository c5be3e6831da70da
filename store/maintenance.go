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
)

type Maintenance interface {
	RecomputeAllRatings(ctx context.Context) (int, error)
	MigrateLocationAmenities(ctx context.Context) (int, error)
}

func (m *mongoDB) locationIDs(ctx context.Context, filter bson.M) ([]primitive.ObjectID, error) {
	cursor, err := m.collection(schema.LocationCollection).Find(ctx, filter,
		options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	ids := []primitive.ObjectID{}
	for cursor.Next(ctx) {
		var doc struct {
			ID primitive.ObjectID `bson:"_id"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		ids = append(ids, doc.ID)
	}
	return ids, cursor.Err()
}

// RecomputeAllRatings recomputes the aggregate of every location and returns
// the number of locations updated.
func (m *mongoDB) RecomputeAllRatings(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, maintenanceTimeout)
	defer cancel()

	ids, err := m.locationIDs(ctx, bson.M{})
	if err != nil {
		log.WithField("prefix", mongoLogPrefix).WithError(err).Error("list locations for recompute")
		return 0, err
	}

	updated := 0
	for _, id := range ids {
		if _, err := m.RecomputeRatings(ctx, id); err != nil {
			if err == ErrLocationNotFound {
				continue
			}
			return updated, err
		}
		updated++
	}

	log.WithField("prefix", mongoLogPrefix).Infof("recomputed ratings of %d locations", updated)
	return updated, nil
}

// MigrateLocationAmenities rewrites every location whose amenities are still
// stored in a legacy format. It returns the number of migrated locations.
func (m *mongoDB) MigrateLocationAmenities(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, maintenanceTimeout)
	defer cancel()

	ids, err := m.locationIDs(ctx, bson.M{"amenities": bson.M{"$exists": true}})
	if err != nil {
		log.WithField("prefix", mongoLogPrefix).WithError(err).Error("list locations for migration")
		return 0, err
	}

	migrated := 0
	for _, id := range ids {
		ok, err := m.migrateLocationAmenities(ctx, id)
		if err != nil {
			log.WithFields(log.Fields{
				"prefix":      mongoLogPrefix,
				"location_id": id.Hex(),
				"error":       err,
			}).Error("migrate location amenities")
			return migrated, err
		}
		if ok {
			migrated++
		}
	}

	log.WithField("prefix", mongoLogPrefix).Infof("migrated amenities of %d locations", migrated)
	return migrated, nil
}

func (m *mongoDB) migrateLocationAmenities(ctx context.Context, id primitive.ObjectID) (bool, error) {
	locations := m.collection(schema.LocationCollection)

	result, err := m.withTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		var doc amenitiesDocument
		err := locations.FindOne(sc,
			bson.M{"_id": id},
			options.FindOne().SetProjection(bson.M{"amenities": 1}),
		).Decode(&doc)
		if err != nil {
			if err == mongo.ErrNoDocuments {
				return false, nil
			}
			return false, err
		}

		if doc.Amenities.Format == schema.AmenityFormatCurrent {
			return false, nil
		}

		amenities := amenity.NormalizeAmenities(doc.Amenities)
		set := amenitiesUpdate(doc.Amenities, amenities, "")
		set["updated_at"] = m.now()
		if _, err := locations.UpdateOne(sc, bson.M{"_id": id}, bson.M{"$set": set}); err != nil {
			return false, err
		}
		return true, nil
	})
	if err != nil {
		return false, err
	}
	return result.(bool), nil
}

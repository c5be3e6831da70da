package store

import (
	"context"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/benvisser/call-of-doody-sub000/amenity"
	"github.com/benvisser/call-of-doody-sub000/geo"
	"github.com/benvisser/call-of-doody-sub000/schema"
	"github.com/benvisser/call-of-doody-sub000/score"
)

const (
	DefaultNearbyRadiusKm = 5.0
	MaxNearbyRadiusKm     = 50.0
	DefaultNearbyLimit    = 50
)

type Location interface {
	AddLocation(ctx context.Context, l schema.NewLocation) (*schema.Location, error)
	GetLocation(ctx context.Context, id primitive.ObjectID) (*schema.Location, error)
	NearbyLocations(ctx context.Context, center schema.Coordinates, radiusKm float64, amenityID string, limit int64) ([]schema.LocationSummary, error)
}

func validCoordinates(c schema.Coordinates) bool {
	return c.Latitude >= -90 && c.Latitude <= 90 && c.Longitude >= -180 && c.Longitude <= 180
}

// AddLocation inserts a new restroom. Coordinates are looked up from the
// address when missing, and the address is reverse geocoded when missing.
// Geocoding failures only drop the optional fields.
func (m *mongoDB) AddLocation(ctx context.Context, l schema.NewLocation) (*schema.Location, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	l.Name = strings.TrimSpace(l.Name)
	l.Address = strings.TrimSpace(l.Address)
	if l.Name == "" {
		return nil, ErrInvalidLocation
	}

	if l.Coordinates == (schema.Coordinates{}) {
		if l.Address == "" {
			return nil, ErrInvalidLocation
		}
		coordinates, err := geo.LookupCoordinate(ctx, l.Address)
		if err != nil {
			log.WithFields(log.Fields{
				"prefix":  mongoLogPrefix,
				"address": l.Address,
				"error":   err,
			}).Warn("lookup coordinate of new location")
			return nil, ErrInvalidLocation
		}
		l.Coordinates = coordinates
	}

	if !validCoordinates(l.Coordinates) {
		return nil, ErrInvalidLocation
	}

	amenities := schema.LocationAmenities{}
	for _, id := range l.Amenities {
		id = amenity.CurrentID(id)
		if !amenity.Known(id) {
			return nil, ErrUnknownAmenity
		}
		amenities[id] = schema.NewAmenityStatusEntry()
	}

	now := m.now()
	location := schema.Location{
		ID:                 primitive.NewObjectID(),
		Name:               l.Name,
		Address:            l.Address,
		Location:           l.Coordinates.Point(),
		Amenities:          schema.CurrentAmenities(amenities),
		ConfirmedAmenities: []string{},
		Ratings:            schema.LocationRatings{LastUpdated: now},
		CreatedBy:          l.CreatedBy,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	info, err := geo.PoliticalGeoInfo(ctx, l.Coordinates)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": mongoLogPrefix,
			"lat":    l.Coordinates.Latitude,
			"lng":    l.Coordinates.Longitude,
			"error":  err,
		}).Warn("resolve political info of new location")
	} else {
		location.Country = info.Country
		location.State = info.State
		location.City = info.City
		if location.Address == "" {
			location.Address = info.FormattedAddress
		}
	}

	if _, err := m.collection(schema.LocationCollection).InsertOne(ctx, location); err != nil {
		log.WithFields(log.Fields{
			"prefix": mongoLogPrefix,
			"name":   location.Name,
			"error":  err,
		}).Error("insert location")
		return nil, err
	}

	return &location, nil
}

// GetLocation returns a location with its amenities in the current format.
func (m *mongoDB) GetLocation(ctx context.Context, id primitive.ObjectID) (*schema.Location, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var location schema.Location
	if err := m.collection(schema.LocationCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&location); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrLocationNotFound
		}
		log.WithFields(log.Fields{
			"prefix":      mongoLogPrefix,
			"location_id": id.Hex(),
			"error":       err,
		}).Error("get location")
		return nil, err
	}

	amenities := amenity.NormalizeAmenities(location.Amenities)
	location.Amenities = schema.CurrentAmenities(amenities)
	location.ConfirmedAmenities = amenity.ConfirmedAmenities(amenities)

	return &location, nil
}

// NearbyLocations lists locations within radiusKm of center ordered by
// distance. Distances are returned in kilometers.
func (m *mongoDB) NearbyLocations(ctx context.Context, center schema.Coordinates, radiusKm float64, amenityID string, limit int64) ([]schema.LocationSummary, error) {
	if !validCoordinates(center) {
		return nil, ErrInvalidLocation
	}
	if radiusKm <= 0 {
		radiusKm = DefaultNearbyRadiusKm
	}
	if radiusKm > MaxNearbyRadiusKm {
		radiusKm = MaxNearbyRadiusKm
	}
	if limit <= 0 {
		limit = DefaultNearbyLimit
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if amenityID != "" {
		if !amenity.Known(amenityID) {
			return nil, ErrUnknownAmenity
		}
		query["confirmed_amenities"] = amenityID
	}

	pipeline := mongo.Pipeline{
		geoWithDistanceAggregate(center, radiusKm*1000, query),
		limitAggregate(limit),
		AggregationProject(bson.M{
			"name":                1,
			"address":             1,
			"location":            1,
			"confirmed_amenities": 1,
			"distance":            1,
			"overall":             "$ratings.overall",
			"review_count":        "$ratings.count",
		}),
	}

	opts := options.Aggregate().SetMaxTime(5 * time.Second)
	cursor, err := m.collection(schema.LocationCollection).Aggregate(ctx, pipeline, opts)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": mongoLogPrefix,
			"error":  err,
		}).Error("aggregate nearby locations")
		return nil, err
	}
	defer cursor.Close(ctx)

	results := []schema.LocationSummary{}
	for cursor.Next(ctx) {
		var summary schema.LocationSummary
		if err := cursor.Decode(&summary); err != nil {
			log.WithField("prefix", mongoLogPrefix).WithError(err).Warn("nearby location decode fail")
			continue
		}
		summary.Distance = score.Round(summary.Distance/1000, 2)
		if summary.ConfirmedAmenities == nil {
			summary.ConfirmedAmenities = []string{}
		}
		results = append(results, summary)
	}

	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

func geoWithDistanceAggregate(center schema.Coordinates, maxDistanceMeters float64, query bson.M) bson.D {
	return bson.D{{Key: "$geoNear", Value: bson.M{
		"near":          center.Point(),
		"distanceField": "distance",
		"maxDistance":   maxDistanceMeters,
		"query":         query,
		"spherical":     true,
	}}}
}

func limitAggregate(number int64) bson.D {
	return bson.D{{Key: "$limit", Value: number}}
}

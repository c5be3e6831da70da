package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	LocationCollection = "locations"
)

type GeoJSON struct {
	Type        string    `json:"type" bson:"type"`
	Coordinates []float64 `json:"coordinates" bson:"coordinates"`
}

// Coordinates is a plain latitude / longitude pair used by clients.
type Coordinates struct {
	Latitude  float64 `json:"latitude" bson:"latitude"`
	Longitude float64 `json:"longitude" bson:"longitude"`
}

// Point converts coordinates into a GeoJSON point. GeoJSON stores longitude first.
func (c Coordinates) Point() *GeoJSON {
	return &GeoJSON{
		Type:        "Point",
		Coordinates: []float64{c.Longitude, c.Latitude},
	}
}

type Location struct {
	ID                 primitive.ObjectID `bson:"_id" json:"id"`
	Name               string             `bson:"name" json:"name"`
	Address            string             `bson:"address" json:"address"`
	Country            string             `bson:"country" json:"-"`
	State              string             `bson:"state" json:"-"`
	City               string             `bson:"city" json:"-"`
	Location           *GeoJSON           `bson:"location" json:"-"`
	Amenities          RawAmenities       `bson:"amenities" json:"-"`
	ConfirmedAmenities []string           `bson:"confirmed_amenities" json:"confirmed_amenities"`
	Ratings            LocationRatings    `bson:"ratings" json:"ratings"`
	CreatedBy          string             `bson:"created_by" json:"-"`
	CreatedAt          time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt          time.Time          `bson:"updated_at" json:"updated_at"`
}

// Coordinates returns the position of a location, or nil when it has none.
func (l Location) Coordinates() *Coordinates {
	if l.Location == nil || len(l.Location.Coordinates) != 2 {
		return nil
	}
	return &Coordinates{
		Longitude: l.Location.Coordinates[0],
		Latitude:  l.Location.Coordinates[1],
	}
}

// NewLocation carries what a user provides when adding a restroom.
type NewLocation struct {
	Name        string      `json:"name"`
	Address     string      `json:"address"`
	Coordinates Coordinates `json:"coordinates"`
	Amenities   []string    `json:"amenities"`
	CreatedBy   string      `json:"-"`
}

// LocationSummary is a list item returned by proximity queries.
type LocationSummary struct {
	ID                 primitive.ObjectID `bson:"_id" json:"id"`
	Name               string             `bson:"name" json:"name"`
	Address            string             `bson:"address" json:"address"`
	Location           *GeoJSON           `bson:"location" json:"-"`
	ConfirmedAmenities []string           `bson:"confirmed_amenities" json:"confirmed_amenities"`
	Overall            float64            `bson:"overall" json:"overall_rating"`
	ReviewCount        int64              `bson:"review_count" json:"review_count"`
	Distance           float64            `bson:"distance" json:"distance"`
}

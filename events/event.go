package events

import (
	"time"

	"github.com/benvisser/call-of-doody-sub000/schema"
)

const (
	RoutingAmenityStatusChanged = "amenity.status_changed"
	RoutingRatingsUpdated       = "location.ratings_updated"
)

// Event is a domain event published after a committed mutation.
type Event interface {
	RoutingKey() string
}

// AmenityStatusChanged is published when a vote moves an amenity to another status.
type AmenityStatusChanged struct {
	LocationID         string               `json:"location_id"`
	AmenityID          string               `json:"amenity_id"`
	PreviousStatus     schema.AmenityStatus `json:"previous_status"`
	Status             schema.AmenityStatus `json:"status"`
	Votes              int                  `json:"votes"`
	Percentage         int                  `json:"percentage"`
	ConfirmedAmenities []string             `json:"confirmed_amenities"`
	ChangedAt          time.Time            `json:"changed_at"`
}

func (AmenityStatusChanged) RoutingKey() string { return RoutingAmenityStatusChanged }

// RatingsUpdated is published after a review or a recompute changed the aggregate.
type RatingsUpdated struct {
	LocationID string                 `json:"location_id"`
	Source     string                 `json:"source"`
	Ratings    schema.LocationRatings `json:"ratings"`
}

func (RatingsUpdated) RoutingKey() string { return RoutingRatingsUpdated }

const (
	RatingsSourceReview    = "review"
	RatingsSourceRecompute = "recompute"
)

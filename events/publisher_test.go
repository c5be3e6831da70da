package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"

	"github.com/benvisser/call-of-doody-sub000/schema"
)

func TestNewPublishing(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	event := AmenityStatusChanged{
		LocationID:     "loc",
		AmenityID:      "toilet_paper",
		PreviousStatus: schema.AmenityStatusUnverified,
		Status:         schema.AmenityStatusConfirmed,
		Votes:          5,
		Percentage:     60,
	}

	msg, err := newPublishing(event, now)
	assert.NoError(t, err)
	assert.Equal(t, "application/json", msg.ContentType)
	assert.Equal(t, amqp.Persistent, msg.DeliveryMode)
	assert.Equal(t, RoutingAmenityStatusChanged, msg.Type)
	assert.Equal(t, now, msg.Timestamp)
	assert.NotEmpty(t, msg.MessageId)

	var decoded AmenityStatusChanged
	assert.NoError(t, json.Unmarshal(msg.Body, &decoded))
	assert.Equal(t, schema.AmenityStatusConfirmed, decoded.Status)
	assert.Equal(t, "toilet_paper", decoded.AmenityID)
}

func TestMemoryPublisher(t *testing.T) {
	p := &MemoryPublisher{}
	assert.NoError(t, p.Publish(context.Background(), RatingsUpdated{LocationID: "a", Source: RatingsSourceReview}))
	assert.NoError(t, p.Publish(context.Background(), RatingsUpdated{LocationID: "b", Source: RatingsSourceRecompute}))

	events := p.Events()
	assert.Len(t, events, 2)
	assert.Equal(t, RoutingRatingsUpdated, events[1].RoutingKey())
}

package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/benvisser/call-of-doody-sub000/amenity"
	"github.com/benvisser/call-of-doody-sub000/cache"
	"github.com/benvisser/call-of-doody-sub000/events"
	"github.com/benvisser/call-of-doody-sub000/schema"
)

func (s *Server) listAmenities(c *gin.Context) {
	var params struct {
		Lang string `form:"lang"`
	}
	if err := c.BindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}
	if params.Lang == "" {
		params.Lang = "en"
	}

	c.JSON(http.StatusOK, gin.H{"result": amenity.ListCatalog(params.Lang)})
}

func (s *Server) voteAmenity(c *gin.Context) {
	locationID, ok := objectIDParam(c, "locationID")
	if !ok {
		return
	}

	var body struct {
		Vote schema.VoteValue `json:"vote"`
	}
	if err := c.BindJSON(&body); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	ctx := c.Request.Context()
	outcome, err := s.mongoStore.ApplyVote(ctx, schema.AmenityVote{
		Key: schema.VoteKey{
			LocationID: locationID,
			UserID:     requester(c),
			AmenityID:  amenity.CurrentID(c.Param("amenityID")),
		},
		Vote: body.Vote,
	})
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	s.invalidateLocation(c, locationID.Hex())

	if outcome.StatusChanged() {
		s.publish(c, events.AmenityStatusChanged{
			LocationID:         locationID.Hex(),
			AmenityID:          outcome.AmenityID,
			PreviousStatus:     outcome.PreviousStatus,
			Status:             outcome.Entry.Status,
			Votes:              outcome.Entry.Votes,
			Percentage:         outcome.Entry.Percentage,
			ConfirmedAmenities: outcome.ConfirmedAmenities,
			ChangedAt:          outcome.Entry.LastUpdated,
		})
	}

	c.JSON(http.StatusOK, gin.H{"result": outcome})
}

// invalidateLocation drops the cached responses of a location. A failure only
// leaves a stale entry until it expires.
func (s *Server) invalidateLocation(c *gin.Context, locationID string) {
	if err := cache.InvalidateLocation(c.Request.Context(), s.cache, locationID); err != nil {
		log.WithField("location_id", locationID).WithError(err).Warn("fail to invalidate cache")
	}
}

// publish sends an event for a committed change. The change is not rolled
// back when publishing fails.
func (s *Server) publish(c *gin.Context, event events.Event) {
	if err := s.publisher.Publish(c.Request.Context(), event); err != nil {
		log.WithField("routing_key", event.RoutingKey()).WithError(err).Error("fail to publish event")
	}
}

func (s *Server) getMyVote(c *gin.Context) {
	locationID, ok := objectIDParam(c, "locationID")
	if !ok {
		return
	}

	voted, err := s.mongoStore.HasVoted(c.Request.Context(), schema.VoteKey{
		LocationID: locationID,
		UserID:     requester(c),
		AmenityID:  amenity.CurrentID(c.Param("amenityID")),
	})
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": gin.H{"voted": voted}})
}

package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/benvisser/call-of-doody-sub000/cache"
	"github.com/benvisser/call-of-doody-sub000/events"
	"github.com/benvisser/call-of-doody-sub000/schema"
)

func (s *Server) submitReview(c *gin.Context) {
	locationID, ok := objectIDParam(c, "locationID")
	if !ok {
		return
	}

	var body schema.ReviewInput
	if err := c.BindJSON(&body); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}
	body.LocationID = locationID
	body.UserID = requester(c)

	review, ratings, err := s.mongoStore.SubmitReview(c.Request.Context(), body)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	s.invalidateLocation(c, locationID.Hex())
	s.publish(c, events.RatingsUpdated{
		LocationID: locationID.Hex(),
		Source:     events.RatingsSourceReview,
		Ratings:    *ratings,
	})

	c.JSON(http.StatusCreated, gin.H{
		"result":  review,
		"ratings": ratings,
	})
}

func (s *Server) listReviews(c *gin.Context) {
	locationID, ok := objectIDParam(c, "locationID")
	if !ok {
		return
	}

	var params struct {
		Limit int64 `form:"limit"`
	}
	if err := c.BindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	ctx := c.Request.Context()

	// only the default page is cached
	key := cache.ReviewsKey(locationID.Hex(), cache.CurrentVersion(ctx, s.cache, locationID.Hex()))
	cacheable := params.Limit == 0

	var reviews []schema.Review
	if cacheable && cache.GetJSON(ctx, s.cache, key, &reviews) {
		c.JSON(http.StatusOK, gin.H{"result": reviews})
		return
	}

	reviews, err := s.mongoStore.ListReviews(ctx, locationID, params.Limit)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	if cacheable {
		if err := cache.SetJSON(ctx, s.cache, key, reviews, s.cacheTTL); err != nil {
			log.WithField("key", key).WithError(err).Warn("fail to cache reviews")
		}
	}

	c.JSON(http.StatusOK, gin.H{"result": reviews})
}

func (s *Server) markReviewHelpful(c *gin.Context) {
	reviewID, ok := objectIDParam(c, "reviewID")
	if !ok {
		return
	}

	helpful, err := s.mongoStore.MarkReviewHelpful(c.Request.Context(), reviewID)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": gin.H{"helpful": helpful}})
}

func (s *Server) deleteReview(c *gin.Context) {
	reviewID, ok := objectIDParam(c, "reviewID")
	if !ok {
		return
	}

	review, ratings, err := s.mongoStore.DeleteReview(c.Request.Context(), requester(c), reviewID)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	s.invalidateLocation(c, review.LocationID.Hex())

	s.publishRecompute(c, review.LocationID, ratings)

	c.JSON(http.StatusOK, gin.H{"result": ratings})
}

func (s *Server) publishRecompute(c *gin.Context, locationID primitive.ObjectID, ratings *schema.LocationRatings) {
	s.publish(c, events.RatingsUpdated{
		LocationID: locationID.Hex(),
		Source:     events.RatingsSourceRecompute,
		Ratings:    *ratings,
	})
}

package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/benvisser/call-of-doody-sub000/score"
)

func (s *Server) listRatingCategories(c *gin.Context) {
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

	c.JSON(http.StatusOK, gin.H{"result": score.RatingCategories(params.Lang)})
}

func (s *Server) recomputeLocationRatings(c *gin.Context) {
	locationID, ok := objectIDParam(c, "locationID")
	if !ok {
		return
	}

	ratings, err := s.mongoStore.RecomputeRatings(c.Request.Context(), locationID)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	s.invalidateLocation(c, locationID.Hex())
	s.publishRecompute(c, locationID, ratings)

	c.JSON(http.StatusOK, gin.H{"result": ratings})
}

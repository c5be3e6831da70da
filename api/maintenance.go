package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/benvisser/call-of-doody-sub000/cache"
)

func (s *Server) invalidateAllLocations(c *gin.Context) {
	if err := cache.InvalidateAllLocations(c.Request.Context(), s.cache); err != nil {
		log.WithError(err).Warn("fail to invalidate cache")
	}
}

func (s *Server) migrateAmenities(c *gin.Context) {
	migrated, err := s.mongoStore.MigrateLocationAmenities(c.Request.Context())
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	s.invalidateAllLocations(c)
	log.WithField("migrated", migrated).Info("location amenities migrated")
	c.JSON(http.StatusOK, gin.H{"result": gin.H{"migrated": migrated}})
}

func (s *Server) recomputeAllRatings(c *gin.Context) {
	updated, err := s.mongoStore.RecomputeAllRatings(c.Request.Context())
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	s.invalidateAllLocations(c)
	log.WithField("updated", updated).Info("location ratings recomputed")
	c.JSON(http.StatusOK, gin.H{"result": gin.H{"updated": updated}})
}

func (s *Server) rebuildAmenityStatus(c *gin.Context) {
	locationID, ok := objectIDParam(c, "locationID")
	if !ok {
		return
	}

	amenities, err := s.mongoStore.RebuildAmenityStatus(c.Request.Context(), locationID)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	s.invalidateLocation(c, locationID.Hex())
	c.JSON(http.StatusOK, gin.H{"result": amenities})
}

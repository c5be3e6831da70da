package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/benvisser/call-of-doody-sub000/amenity"
	"github.com/benvisser/call-of-doody-sub000/cache"
	"github.com/benvisser/call-of-doody-sub000/schema"
)

// locationDetail is the response of a single location. Amenities hold every
// entry; removed ones are dropped when the response is written.
type locationDetail struct {
	schema.Location
	Coordinates *schema.Coordinates      `json:"coordinates"`
	Amenities   schema.LocationAmenities `json:"amenities"`
}

func newLocationDetail(l *schema.Location) locationDetail {
	return locationDetail{
		Location:    *l,
		Coordinates: l.Coordinates(),
		Amenities:   amenity.NormalizeAmenities(l.Amenities),
	}
}

func (s *Server) addLocation(c *gin.Context) {
	var body schema.NewLocation
	if err := c.BindJSON(&body); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}
	body.CreatedBy = requester(c)

	location, err := s.mongoStore.AddLocation(c.Request.Context(), body)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"result": newLocationDetail(location)})
}

func (s *Server) getLocation(c *gin.Context) {
	locationID, ok := objectIDParam(c, "locationID")
	if !ok {
		return
	}

	var params struct {
		All bool `form:"all"`
	}
	if err := c.BindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	ctx := c.Request.Context()
	key := cache.LocationKey(locationID.Hex(), cache.CurrentVersion(ctx, s.cache, locationID.Hex()))

	var detail locationDetail
	if !cache.GetJSON(ctx, s.cache, key, &detail) {
		location, err := s.mongoStore.GetLocation(ctx, locationID)
		if err != nil {
			abortWithStoreError(c, err)
			return
		}
		detail = newLocationDetail(location)

		if err := cache.SetJSON(ctx, s.cache, key, detail, s.cacheTTL); err != nil {
			log.WithField("key", key).WithError(err).Warn("fail to cache location")
		}
	}

	if !params.All {
		detail.Amenities = amenity.VisibleAmenities(detail.Amenities)
	}

	c.JSON(http.StatusOK, gin.H{"result": detail})
}

func (s *Server) nearbyLocations(c *gin.Context) {
	var params struct {
		Lat     *float64 `form:"lat"`
		Lng     *float64 `form:"lng"`
		Radius  float64  `form:"radius"`
		Amenity string   `form:"amenity"`
		Limit   int64    `form:"limit"`
	}
	if err := c.BindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	center, err := requestCoordinates(c, params.Lat, params.Lng)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	amenityID := ""
	if params.Amenity != "" {
		amenityID = amenity.CurrentID(params.Amenity)
		if !amenity.Known(amenityID) {
			abortWithEncoding(c, http.StatusBadRequest, errorUnknownAmenity)
			return
		}
	}

	locations, err := s.mongoStore.NearbyLocations(c.Request.Context(), center, params.Radius, amenityID, params.Limit)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": locations})
}

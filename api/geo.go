package api

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/benvisser/call-of-doody-sub000/schema"
)

// parseGeoPosition will parse latitude and longitude from the geo-position string
func parseGeoPosition(geoPosition string) (float64, float64, error) {
	positions := strings.Split(geoPosition, ";")

	if len(positions) != 2 {
		return 0, 0, fmt.Errorf("invalid geo-position value")
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(positions[0]), 64)
	if err != nil {
		return 0, 0, err
	}

	long, err := strconv.ParseFloat(strings.TrimSpace(positions[1]), 64)
	if err != nil {
		return 0, 0, err
	}

	return lat, long, nil
}

// requestCoordinates takes the lat / lng query parameters, falling back to
// the Geo-Position header.
func requestCoordinates(c *gin.Context, lat, lng *float64) (schema.Coordinates, error) {
	if lat != nil && lng != nil {
		return schema.Coordinates{Latitude: *lat, Longitude: *lng}, nil
	}

	geoPosition := c.GetHeader("Geo-Position")
	if geoPosition == "" {
		return schema.Coordinates{}, fmt.Errorf("lat and lng are required")
	}

	la, lo, err := parseGeoPosition(geoPosition)
	if err != nil {
		return schema.Coordinates{}, err
	}
	return schema.Coordinates{Latitude: la, Longitude: lo}, nil
}

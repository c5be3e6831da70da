package geo

import (
	"context"

	"googlemaps.github.io/maps"

	"github.com/benvisser/call-of-doody-sub000/schema"
)

// GoogleGeocoder resolves addresses with the Google Maps geocoding API.
type GoogleGeocoder struct {
	client *maps.Client
}

func NewGoogleGeocoder(apiKey string) (*GoogleGeocoder, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	return &GoogleGeocoder{client: client}, nil
}

func (g *GoogleGeocoder) GetPoliticalInfo(ctx context.Context, coordinates schema.Coordinates) (PoliticalInfo, error) {
	results, err := g.client.ReverseGeocode(ctx, &maps.GeocodingRequest{
		LatLng: &maps.LatLng{
			Lat: coordinates.Latitude,
			Lng: coordinates.Longitude,
		},
	})
	if err != nil {
		return PoliticalInfo{}, err
	}

	if len(results) == 0 {
		return PoliticalInfo{}, ErrLocationNotFound
	}

	return PoliticalInfoFromGeocoding(results), nil
}

func (g *GoogleGeocoder) LookupCoordinate(ctx context.Context, query string) (schema.Coordinates, error) {
	results, err := g.client.Geocode(ctx, &maps.GeocodingRequest{Address: query})
	if err != nil {
		return schema.Coordinates{}, err
	}

	if len(results) == 0 {
		return schema.Coordinates{}, ErrLocationNotFound
	}

	return schema.Coordinates{
		Latitude:  results[0].Geometry.Location.Lat,
		Longitude: results[0].Geometry.Location.Lng,
	}, nil
}

// PoliticalInfoFromGeocoding picks the formatted address of the first result
// and the political components found across all results.
func PoliticalInfoFromGeocoding(results []maps.GeocodingResult) PoliticalInfo {
	var info PoliticalInfo
	if len(results) == 0 {
		return info
	}

	info.FormattedAddress = results[0].FormattedAddress
	for _, r := range results {
		for _, c := range r.AddressComponents {
			for _, t := range c.Types {
				switch t {
				case "country":
					if info.Country == "" {
						info.Country = c.LongName
					}
				case "administrative_area_level_1":
					if info.State == "" {
						info.State = c.LongName
					}
				case "locality":
					if info.City == "" {
						info.City = c.LongName
					}
				}
			}
		}
	}
	return info
}

package geo

import (
	"context"

	"github.com/benvisser/call-of-doody-sub000/external/nominatim"
	"github.com/benvisser/call-of-doody-sub000/schema"
)

// NominatimGeocoder implements both LocationResolver and LocationSearcher on
// an OpenStreetMap Nominatim endpoint.
type NominatimGeocoder struct {
	client *nominatim.NominatimClient
}

func NewNominatimGeocoder(endpoint, userAgent string) *NominatimGeocoder {
	return &NominatimGeocoder{
		client: nominatim.New(endpoint, userAgent),
	}
}

func (n *NominatimGeocoder) LookupCoordinate(ctx context.Context, query string) (schema.Coordinates, error) {
	results, err := n.client.Query(ctx, query)
	if err != nil {
		return schema.Coordinates{}, err
	}

	if len(results) == 0 {
		return schema.Coordinates{}, ErrLocationNotFound
	}

	return schema.Coordinates{
		Latitude:  results[0].Latitude,
		Longitude: results[0].Longitude,
	}, nil
}

func (n *NominatimGeocoder) GetPoliticalInfo(ctx context.Context, coordinates schema.Coordinates) (PoliticalInfo, error) {
	result, err := n.client.Reverse(ctx, coordinates.Latitude, coordinates.Longitude)
	if err != nil {
		return PoliticalInfo{}, err
	}

	return PoliticalInfo{
		FormattedAddress: result.DisplayName,
		Country:          result.Address.Country,
		State:            result.Address.State,
		City:             result.Address.Locality(),
	}, nil
}

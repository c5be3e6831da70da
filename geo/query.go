package geo

import (
	"context"
	"fmt"

	"github.com/benvisser/call-of-doody-sub000/schema"
)

var (
	ErrLocationNotFound       = fmt.Errorf("location is not found")
	ErrSearcherNotInitialized = fmt.Errorf("location searcher is not initialized")
	ErrResolverNotInitialized = fmt.Errorf("location resolver is not initialized")
)

// PoliticalInfo is the address of a coordinate as returned by a geocoder.
type PoliticalInfo struct {
	FormattedAddress string
	Country          string
	State            string
	City             string
}

// LocationResolver turns a coordinate into an address.
type LocationResolver interface {
	GetPoliticalInfo(ctx context.Context, coordinates schema.Coordinates) (PoliticalInfo, error)
}

// LocationSearcher turns a free-text query into a coordinate.
type LocationSearcher interface {
	LookupCoordinate(ctx context.Context, query string) (schema.Coordinates, error)
}

var (
	defaultResolver LocationResolver
	defaultSearcher LocationSearcher
)

func SetLocationResolver(resolver LocationResolver) {
	defaultResolver = resolver
}

func SetLocationSearcher(searcher LocationSearcher) {
	defaultSearcher = searcher
}

// PoliticalGeoInfo resolves the address of a coordinate with the default resolver.
func PoliticalGeoInfo(ctx context.Context, coordinates schema.Coordinates) (PoliticalInfo, error) {
	if defaultResolver == nil {
		return PoliticalInfo{}, ErrResolverNotInitialized
	}

	return defaultResolver.GetPoliticalInfo(ctx, coordinates)
}

func LookupCoordinate(ctx context.Context, query string) (schema.Coordinates, error) {
	if defaultSearcher == nil {
		return schema.Coordinates{}, ErrSearcherNotInitialized
	}

	return defaultSearcher.LookupCoordinate(ctx, query)
}

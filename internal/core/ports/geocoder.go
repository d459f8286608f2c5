package ports

import (
	"context"

	"deliverya/internal/core/domain/model/kernel"
)

// GeocodedPlace is a resolved address: coordinates plus the canonical display
// name the provider knows the place by.
type GeocodedPlace struct {
	Position    kernel.GeoPoint
	DisplayName string
}

// Geocoder resolves free-text addresses to coordinates. The region hint
// scopes the lookup to the deployment's service area; an empty hint searches
// globally. Returns ObjectNotFoundError when the provider knows no such place.
type Geocoder interface {
	Resolve(ctx context.Context, address, regionHint string) (GeocodedPlace, error)
}

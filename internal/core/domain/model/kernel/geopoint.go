package kernel

import (
	"errors"
	"fmt"
	"math"

	"deliverya/internal/pkg/errs"
	"deliverya/internal/pkg/guard"
)

const (
	// MinLatitude is the minimum valid latitude in degrees.
	MinLatitude float64 = -90
	// MaxLatitude is the maximum valid latitude in degrees.
	MaxLatitude float64 = 90
	// MinLongitude is the minimum valid longitude in degrees.
	MinLongitude float64 = -180
	// MaxLongitude is the maximum valid longitude in degrees.
	MaxLongitude float64 = 180

	// earthRadiusKm is the mean Earth radius used by the haversine formula.
	earthRadiusKm = 6371
)

// ErrGeoPointIsNotConstructed is returned when attempting to use an improperly
// initialized GeoPoint. GeoPoints must be created via NewGeoPoint.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint constructor")

// GeoPoint represents a geographic position as a latitude/longitude pair in
// decimal degrees. It is an immutable value object; the zero value is invalid
// and fails validation.
//
// Example:
//
//	p, err := kernel.NewGeoPoint(-35.0311, -63.0128)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(p) // Output: GeoPoint(-35.031100,-63.012800)
type GeoPoint struct { //nolint:recvcheck //using for validation
	lat   float64
	lng   float64
	guard guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint with the given coordinates.
// Latitude must be within [-90, 90] and longitude within [-180, 180];
// an out-of-range coordinate yields a validation error.
func NewGeoPoint(lat, lng float64) (GeoPoint, error) {
	p := GeoPoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(p.setLat(lat), p.setLng(lng)); err != nil {
		return GeoPoint{}, err
	}

	return p, nil
}

// Validate checks that the GeoPoint was created through NewGeoPoint.
// The zero value fails with ErrGeoPointIsNotConstructed.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Lat returns the latitude in decimal degrees.
func (p GeoPoint) Lat() float64 {
	return p.lat
}

// Lng returns the longitude in decimal degrees.
func (p GeoPoint) Lng() float64 {
	return p.lng
}

// String implements fmt.Stringer.
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%f,%f)", p.lat, p.lng)
}

// IsEqual reports whether two points share the same coordinates.
// Both points must be properly constructed.
func (p GeoPoint) IsEqual(other GeoPoint) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return p.lat == other.lat && p.lng == other.lng, nil
}

// DistanceKm calculates the great-circle distance to another point in
// kilometers using the haversine formula.
//
// Example:
//
//	a, _ := kernel.NewGeoPoint(-35.0311, -63.0128)
//	b, _ := kernel.NewGeoPoint(-35.0400, -63.0000)
//	km, _ := a.DistanceKm(b)
func (p GeoPoint) DistanceKm(other GeoPoint) (float64, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	dLat := (other.lat - p.lat) * math.Pi / 180
	dLng := (other.lng - p.lng) * math.Pi / 180
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(p.lat*math.Pi/180)*math.Cos(other.lat*math.Pi/180)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c, nil
}

// PlanarDistance calculates the Euclidean distance to another point directly
// in coordinate-degree space. This is an accepted approximation for short
// intra-city hops where the curvature error is negligible; it is NOT valid
// over large distances.
func (p GeoPoint) PlanarDistance(other GeoPoint) (float64, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	dLat := other.lat - p.lat
	dLng := other.lng - p.lng
	return math.Sqrt(dLat*dLat + dLng*dLng), nil
}

// StepToward advances the point one step of the given length (in coordinate
// degrees) along the straight line toward target. When the remaining planar
// distance is within one step, the target itself is returned (snap).
//
// Distances here are planar on purpose; see PlanarDistance.
func (p GeoPoint) StepToward(target GeoPoint, step float64) (GeoPoint, error) {
	if step <= 0 {
		return GeoPoint{}, errs.NewValueIsInvalidErrorWithCause("step",
			fmt.Errorf("%f is not greater than 0", step))
	}

	distance, err := p.PlanarDistance(target)
	if err != nil {
		return GeoPoint{}, err
	}

	if distance <= step {
		return target, nil
	}

	dLat := target.lat - p.lat
	dLng := target.lng - p.lng
	return NewGeoPoint(
		p.lat+dLat/distance*step,
		p.lng+dLng/distance*step,
	)
}

// EstimatedMinutes derives a delivery time estimate from a distance in
// kilometers: roughly 12 km/h average courier speed plus a fixed 5 minute
// pickup buffer.
func EstimatedMinutes(distanceKm float64) int {
	return int(math.Round(distanceKm*5)) + 5
}

// setLat sets the latitude with range validation.
// Pointer receiver on a private setter enables self-encapsulated validation
// during construction.
func (p *GeoPoint) setLat(lat float64) error {
	if lat < MinLatitude || lat > MaxLatitude {
		return errs.NewValueIsOutOfRangeError("lat", lat, MinLatitude, MaxLatitude)
	}

	p.lat = lat
	return nil
}

// setLng sets the longitude with range validation.
func (p *GeoPoint) setLng(lng float64) error {
	if lng < MinLongitude || lng > MaxLongitude {
		return errs.NewValueIsOutOfRangeError("lng", lng, MinLongitude, MaxLongitude)
	}

	p.lng = lng
	return nil
}

// Package kernel provides the core domain primitives shared across the order
// service.
//
// The package includes:
//   - UUID: a value object for unique identifiers with validation and
//     comparison capabilities
//   - GeoPoint: a validated latitude/longitude pair with great-circle
//     distance, ETA estimation, and planar step interpolation
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are immutable and
// safe for concurrent use.
package kernel

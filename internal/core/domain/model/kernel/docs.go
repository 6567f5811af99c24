// Package kernel provides the shared domain primitives used across the
// delivery model.
//
// It contains:
//   - UUID: identifier value object with validation and comparison
//   - Address: postal address snapshot keyed by city and pincode for zone matching
//   - GeoPoint: bounds-checked WGS84 coordinate pair for live courier positions
//
// All primitives are immutable value objects that validate their invariants at
// construction time, so the aggregates built on top of them never observe a
// structurally invalid identifier, address, or coordinate.
package kernel

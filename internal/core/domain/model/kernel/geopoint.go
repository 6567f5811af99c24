package kernel

import "dispatch/internal/pkg/errs"

const (
	minLongitude = -180.0
	maxLongitude = 180.0
	minLatitude  = -90.0
	maxLatitude  = 90.0
)

// GeoPoint is a value object holding a WGS84 coordinate pair.
// Tracking records carry the courier's last reported position as a GeoPoint;
// the assignment logic itself never reads it, the position is populated by
// the courier's device and served back to customers for live tracking.
//
// The zero value (0, 0) is a valid coordinate in the Gulf of Guinea, so
// callers that need "no position yet" should use a *GeoPoint.
type GeoPoint struct {
	longitude float64
	latitude  float64
}

// NewGeoPoint creates a bounds-checked coordinate pair.
// Longitude must lie in [-180, 180] and latitude in [-90, 90].
func NewGeoPoint(longitude, latitude float64) (GeoPoint, error) {
	if longitude < minLongitude || longitude > maxLongitude {
		return GeoPoint{}, errs.NewValueIsOutOfRangeError("longitude", longitude, minLongitude, maxLongitude)
	}
	if latitude < minLatitude || latitude > maxLatitude {
		return GeoPoint{}, errs.NewValueIsOutOfRangeError("latitude", latitude, minLatitude, maxLatitude)
	}

	return GeoPoint{longitude: longitude, latitude: latitude}, nil
}

// Longitude returns the east-west coordinate in degrees.
func (p GeoPoint) Longitude() float64 {
	return p.longitude
}

// Latitude returns the north-south coordinate in degrees.
func (p GeoPoint) Latitude() float64 {
	return p.latitude
}

// IsEqual reports whether two points hold identical coordinates.
func (p GeoPoint) IsEqual(other GeoPoint) bool {
	return p == other
}

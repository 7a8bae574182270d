// Package geo computes distances on the WGS84 ellipsoid.
package geo

import (
	"math"

	"github.com/tidwall/geodesic"
)

// Point is a (longitude, latitude) pair in degrees.
type Point struct {
	Lon float64
	Lat float64
}

// DistanceKm is the geodesic distance between a and b on WGS84.
func DistanceKm(a, b Point) float64 {
	var s12 float64
	geodesic.WGS84.Inverse(a.Lat, a.Lon, b.Lat, b.Lon, &s12, nil, nil)
	return s12 / 1000
}

// Box is an inclusive latitude/longitude window. When WrapsLon is set the
// longitude bound is ignored and every longitude is inside.
type Box struct {
	MinLat, MaxLat float64
	MinLon, MaxLon float64
	WrapsLon       bool
}

// Contains reports whether p lies in the box.
func (b Box) Contains(p Point) bool {
	if p.Lat < b.MinLat || p.Lat > b.MaxLat {
		return false
	}
	return b.WrapsLon || (p.Lon >= b.MinLon && p.Lon <= b.MaxLon)
}

// minRadiusKm is the smallest WGS84 meridional radius of curvature (at the
// equator) rounded down, so boxes never come out too narrow.
const minRadiusKm = 6335.0

// BoundingBox returns a box that holds every point within radiusKm of
// center. It may hold more; callers filter by DistanceKm afterwards.
func BoundingBox(center Point, radiusKm float64) Box {
	dLat := radiusKm / minRadiusKm * 180 / math.Pi
	box := Box{
		MinLat: math.Max(-90, center.Lat-dLat),
		MaxLat: math.Min(90, center.Lat+dLat),
	}

	if box.MinLat <= -90 || box.MaxLat >= 90 {
		box.WrapsLon = true
		return box
	}

	// Widest longitude span is at the latitude furthest from the equator.
	maxAbsLat := math.Max(math.Abs(box.MinLat), math.Abs(box.MaxLat))
	cosLat := math.Cos(maxAbsLat * math.Pi / 180)
	if cosLat <= 0 {
		box.WrapsLon = true
		return box
	}
	dLon := dLat / cosLat
	if dLon >= 180 {
		box.WrapsLon = true
		return box
	}

	box.MinLon = center.Lon - dLon
	box.MaxLon = center.Lon + dLon
	if box.MinLon < -180 || box.MaxLon > 180 {
		box.WrapsLon = true
	}
	return box
}

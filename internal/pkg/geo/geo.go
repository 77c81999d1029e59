package geo

import "math"

const earthRadiusMeters = 6371000

// Coordinate is a WGS 84 point in degrees.
type Coordinate struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

type FenceKind string

const (
	FenceKindCircle  FenceKind = "circle"
	FenceKindPolygon FenceKind = "polygon"
)

// Fence is a circular or polygonal geofence. Circle fences use Center and
// RadiusMeters; polygon fences use Vertices (ordered ring, last vertex
// implicitly closes to the first).
type Fence struct {
	Kind         FenceKind    `json:"kind"`
	Active       bool         `json:"active"`
	Center       *Coordinate  `json:"center,omitempty"`
	RadiusMeters float64      `json:"radius_m,omitempty"`
	Vertices     []Coordinate `json:"vertices,omitempty"`
}

// DistanceMeters computes the haversine great-circle distance between two
// coordinates in meters.
func DistanceMeters(a, b Coordinate) float64 {
	dLat := (b.Latitude - a.Latitude) * (math.Pi / 180.0)
	dLon := (b.Longitude - a.Longitude) * (math.Pi / 180.0)

	latARad := a.Latitude * (math.Pi / 180.0)
	latBRad := b.Latitude * (math.Pi / 180.0)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(latARad)*math.Cos(latBRad)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMeters * c
}

// Contains reports whether p lies inside the fence. Inactive or malformed
// fences never admit a point. Points exactly on a polygon edge may be
// classified either way (ray-casting limitation).
func (f Fence) Contains(p Coordinate) bool {
	if !f.Active {
		return false
	}

	switch f.Kind {
	case FenceKindCircle:
		if f.Center == nil || f.RadiusMeters <= 0 {
			return false
		}
		return DistanceMeters(*f.Center, p) <= f.RadiusMeters
	case FenceKindPolygon:
		if len(f.Vertices) < 3 {
			return false
		}
		return pointInPolygon(p, f.Vertices)
	}

	return false
}

// pointInPolygon runs the even-odd ray-casting test over the closed vertex
// ring. The 1e-9 term guards the division when two adjacent vertices share
// the same longitude.
func pointInPolygon(p Coordinate, polygon []Coordinate) bool {
	inside := false
	j := len(polygon) - 1
	for i := 0; i < len(polygon); i++ {
		vi, vj := polygon[i], polygon[j]
		intersects := (vi.Longitude > p.Longitude) != (vj.Longitude > p.Longitude) &&
			p.Latitude < (vj.Latitude-vi.Latitude)*(p.Longitude-vi.Longitude)/(vj.Longitude-vi.Longitude+1e-9)+vi.Latitude
		if intersects {
			inside = !inside
		}
		j = i
	}
	return inside
}

package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceMeters_SymmetricAndZero(t *testing.T) {
	pairs := []struct {
		a, b Coordinate
	}{
		{Coordinate{0, 0}, Coordinate{0, 1}},
		{Coordinate{-33.45, -70.66}, Coordinate{-12.05, -77.04}},
		{Coordinate{89.9, 179.9}, Coordinate{-89.9, -179.9}},
	}
	for _, p := range pairs {
		assert.Equal(t, DistanceMeters(p.a, p.b), DistanceMeters(p.b, p.a))
	}

	same := Coordinate{-33.45, -70.66}
	assert.Zero(t, DistanceMeters(same, same))
}

func TestDistanceMeters_KnownDistance(t *testing.T) {
	// One degree of longitude at the equator is ~111.19 km.
	d := DistanceMeters(Coordinate{0, 0}, Coordinate{0, 1})
	assert.InDelta(t, 111195, d, 100)
}

func TestFenceContains_Circle(t *testing.T) {
	fence := Fence{
		Kind:         FenceKindCircle,
		Active:       true,
		Center:       &Coordinate{Latitude: 0, Longitude: 0},
		RadiusMeters: 1000,
	}

	assert.True(t, fence.Contains(Coordinate{0, 0}))

	// ~2000 m east of the center along the equator.
	farPoint := Coordinate{Latitude: 0, Longitude: 0.018}
	assert.Greater(t, DistanceMeters(*fence.Center, farPoint), 1500.0)
	assert.False(t, fence.Contains(farPoint))
}

func TestFenceContains_Polygon(t *testing.T) {
	fence := Fence{
		Kind:   FenceKindPolygon,
		Active: true,
		Vertices: []Coordinate{
			{0, 0}, {0, 10}, {10, 10}, {10, 0},
		},
	}

	assert.True(t, fence.Contains(Coordinate{5, 5}))
	assert.False(t, fence.Contains(Coordinate{20, 20}))
	assert.False(t, fence.Contains(Coordinate{-5, 5}))
}

func TestFenceContains_FailClosed(t *testing.T) {
	inside := Coordinate{5, 5}

	inactive := Fence{
		Kind:   FenceKindPolygon,
		Active: false,
		Vertices: []Coordinate{
			{0, 0}, {0, 10}, {10, 10}, {10, 0},
		},
	}
	assert.False(t, inactive.Contains(inside))

	missingCenter := Fence{Kind: FenceKindCircle, Active: true, RadiusMeters: 500}
	assert.False(t, missingCenter.Contains(inside))

	zeroRadius := Fence{Kind: FenceKindCircle, Active: true, Center: &Coordinate{5, 5}}
	assert.False(t, zeroRadius.Contains(inside))

	degeneratePolygon := Fence{
		Kind:     FenceKindPolygon,
		Active:   true,
		Vertices: []Coordinate{{0, 0}, {10, 10}},
	}
	assert.False(t, degeneratePolygon.Contains(inside))

	unknownKind := Fence{Kind: "ellipse", Active: true}
	assert.False(t, unknownKind.Contains(inside))
}

func TestFenceContains_ConcavePolygon(t *testing.T) {
	// L-shaped fence: the notch at the upper right is outside.
	fence := Fence{
		Kind:   FenceKindPolygon,
		Active: true,
		Vertices: []Coordinate{
			{0, 0}, {0, 10}, {5, 10}, {5, 5}, {10, 5}, {10, 0},
		},
	}

	assert.True(t, fence.Contains(Coordinate{2, 2}))
	assert.True(t, fence.Contains(Coordinate{8, 2}))
	assert.False(t, fence.Contains(Coordinate{8, 8}))
}

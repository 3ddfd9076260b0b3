package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	u, ok := Vec3{X: 3, Z: 4}.Normalize()
	require.True(t, ok)
	assert.InDelta(t, 0.6, u.X, 1e-12)
	assert.InDelta(t, 0.8, u.Z, 1e-12)
	assert.InDelta(t, 1.0, u.Length(), 1e-12)

	_, ok = Vec3{}.Normalize()
	assert.False(t, ok, "zero vector has no direction")

	_, ok = Vec3{X: math.NaN()}.Normalize()
	assert.False(t, ok)
}

func TestNormalizeOr(t *testing.T) {
	fallback := Vec3{Z: 1}
	assert.Equal(t, fallback, Vec3{}.NormalizeOr(fallback))
	assert.InDelta(t, 1.0, Vec3{X: -2}.NormalizeOr(fallback).Length(), 1e-12)
}

func TestHeadingVector(t *testing.T) {
	tests := []struct {
		name    string
		heading float64
		want    Vec3
	}{
		{"zero faces +Z", 0, Vec3{Z: 1}},
		{"quarter turn faces +X", math.Pi / 2, Vec3{X: 1}},
		{"half turn faces -Z", math.Pi, Vec3{Z: -1}},
		{"negative quarter faces -X", -math.Pi / 2, Vec3{X: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HeadingVector(tt.heading)
			assert.InDelta(t, tt.want.X, got.X, 1e-12)
			assert.Equal(t, 0.0, got.Y)
			assert.InDelta(t, tt.want.Z, got.Z, 1e-12)
		})
	}
}

func TestSpheresOverlap(t *testing.T) {
	assert.True(t, SpheresOverlap(Vec3{}, 1, Vec3{X: 1.5}, 1))
	assert.False(t, SpheresOverlap(Vec3{}, 1, Vec3{X: 2}, 1), "touching is not overlapping")
	assert.False(t, SpheresOverlap(Vec3{}, 0.5, Vec3{X: 3, Z: 3}, 0.5))
}

func TestEllipsoidOverlapsSphere(t *testing.T) {
	radii := Vec3{X: 0.5, Y: 0.5, Z: 0.8}

	// Facing +Z: long axis along Z.
	assert.True(t, EllipsoidOverlapsSphere(Vec3{}, radii, 0, Vec3{Z: 1.2}, 0.5))
	assert.False(t, EllipsoidOverlapsSphere(Vec3{}, radii, 0, Vec3{X: 1.2}, 0.5))

	// Turned a quarter: long axis now along X.
	assert.True(t, EllipsoidOverlapsSphere(Vec3{}, radii, math.Pi/2, Vec3{X: 1.2}, 0.5))
	assert.False(t, EllipsoidOverlapsSphere(Vec3{}, radii, math.Pi/2, Vec3{Z: 1.2}, 0.5))

	// Centred at an offset.
	c := Vec3{X: 10, Z: -10}
	assert.True(t, EllipsoidOverlapsSphere(c, radii, 0, c, 0.1))
}

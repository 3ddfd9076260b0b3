// Package physics provides vector math and overlap tests for the play plane.
package physics

import "math"

// Vec3 is a point or direction in world space. The play plane is XZ; Y is up.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v * s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// LengthSquared returns |v|².
func (v Vec3) LengthSquared() float64 {
	return v.Dot(v)
}

// Length returns |v|.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// minNormalizeLength is the shortest vector Normalize will accept.
const minNormalizeLength = 1e-9

// Normalize returns the unit vector along v.
// ok is false when v is too short (or not finite) to have a direction.
func (v Vec3) Normalize() (unit Vec3, ok bool) {
	l := v.Length()
	if l < minNormalizeLength || math.IsNaN(l) || math.IsInf(l, 0) {
		return Vec3{}, false
	}
	return v.Scale(1 / l), true
}

// NormalizeOr returns the unit vector along v, or fallback when v has no direction.
func (v Vec3) NormalizeOr(fallback Vec3) Vec3 {
	if u, ok := v.Normalize(); ok {
		return u
	}
	return fallback
}

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(a, b Vec3) float64 {
	return b.Sub(a).LengthSquared()
}

// HeadingVector returns the unit forward vector on the XZ plane for a heading.
// Heading 0 faces +Z; positive headings turn toward +X.
func HeadingVector(heading float64) Vec3 {
	return Vec3{X: math.Sin(heading), Z: math.Cos(heading)}
}

// SpheresOverlap checks if two spheres overlap.
func SpheresOverlap(a Vec3, ra float64, b Vec3, rb float64) bool {
	minDist := ra + rb
	return DistanceSquared(a, b) < minDist*minDist
}

// EllipsoidOverlapsSphere approximates an overlap test between an ellipsoid and a sphere.
// The ellipsoid is centred at center, has semi-axes radii in its local frame
// (X lateral, Y up, Z forward) and is yawed by heading. The sphere is folded into
// the ellipsoid by growing each semi-axis by r, which is exact along the axes and
// slightly generous between them.
func EllipsoidOverlapsSphere(center, radii Vec3, heading float64, sphere Vec3, r float64) bool {
	d := sphere.Sub(center)
	forward := HeadingVector(heading)
	right := Vec3{X: forward.Z, Z: -forward.X}

	lx := d.Dot(right) / (radii.X + r)
	ly := d.Y / (radii.Y + r)
	lz := d.Dot(forward) / (radii.Z + r)
	return lx*lx+ly*ly+lz*lz < 1
}

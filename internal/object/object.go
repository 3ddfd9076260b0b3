// Package object defines the entities of the simulation: the ship, its bolts and the rocks.
package object

import (
	"github.com/tomz197/rockfield/internal/physics"
)

// Kind discriminates entity variants.
type Kind int

const (
	KindShip Kind = iota + 1
	KindProjectile
	KindObstacle
)

// String returns the kind name used in logs and visual specs.
func (k Kind) String() string {
	switch k {
	case KindShip:
		return "ship"
	case KindProjectile:
		return "projectile"
	case KindObstacle:
		return "obstacle"
	default:
		return "unknown"
	}
}

// VisualHandle identifies a visual owned by one entity. Zero means "no visual".
type VisualHandle uint64

// VisualSpec describes the visual a display should create for an entity.
type VisualSpec struct {
	Kind   Kind
	Radius float64      // Bounding radius (rocks, bolts)
	Radii  physics.Vec3 // Ellipsoid semi-axes (ship)
}

// Body is implemented by every entity that takes part in overlap tests.
type Body interface {
	Kind() Kind
	Center() physics.Vec3
	// BoundingRadius is the radius of the sphere used for sphere-vs-sphere tests.
	BoundingRadius() float64
}

// Destructible is implemented by entities that can be destroyed/marked for removal.
type Destructible interface {
	// MarkDestroyed marks the entity for removal at the end of the current pass.
	MarkDestroyed()
	// IsDestroyed returns true if the entity is marked for destruction.
	IsDestroyed() bool
}

// Intersects reports whether two bodies overlap using their own collision volumes.
// The ship uses its heading-oriented ellipsoid; everything else is a sphere.
func Intersects(a, b Body) bool {
	if s, ok := a.(*Ship); ok {
		return s.Overlaps(b.Center(), b.BoundingRadius())
	}
	if s, ok := b.(*Ship); ok {
		return s.Overlaps(a.Center(), a.BoundingRadius())
	}
	return physics.SpheresOverlap(a.Center(), a.BoundingRadius(), b.Center(), b.BoundingRadius())
}

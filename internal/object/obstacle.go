package object

import (
	"math"

	"github.com/tomz197/rockfield/internal/physics"
)

// Obstacle is a destructible rock drifting toward a point near the centre.
type Obstacle struct {
	ID        uint64
	Position  physics.Vec3
	Direction physics.Vec3 // Unit vector, fixed at spawn
	Speed     float64      // Units per tick
	Size      float64      // Diameter
	Radius    float64      // Collision/draw radius
	Health    int          // Hits left; destroyed at <= 0
	Visual    VisualHandle
	destroyed bool
}

// NewObstacle creates a rock of the given size. Health is one hit per started
// unit of size and the radius is half the size.
func NewObstacle(id uint64, pos, dir physics.Vec3, speed, size float64) *Obstacle {
	return &Obstacle{
		ID:        id,
		Position:  pos,
		Direction: dir,
		Speed:     speed,
		Size:      size,
		Radius:    size / 2,
		Health:    HealthForSize(size),
	}
}

// HealthForSize returns the number of hits a rock of the given size absorbs.
func HealthForSize(size float64) int {
	h := int(math.Ceil(size))
	if h < 1 {
		return 1
	}
	return h
}

// Kind implements Body.
func (o *Obstacle) Kind() Kind { return KindObstacle }

// Center implements Body.
func (o *Obstacle) Center() physics.Vec3 { return o.Position }

// BoundingRadius implements Body.
func (o *Obstacle) BoundingRadius() float64 { return o.Radius }

// Hit applies one point of damage and reports whether the rock is now dead.
func (o *Obstacle) Hit() bool {
	o.Health--
	return o.Health <= 0
}

// ScoreValue is the score awarded for destroying the rock.
func (o *Obstacle) ScoreValue() int {
	return int(math.Ceil(o.Radius * 10))
}

// Advance moves the rock one tick along its direction.
func (o *Obstacle) Advance() {
	o.Position = o.Position.Add(o.Direction.Scale(o.Speed))
}

// OutOfBounds reports whether the rock drifted beyond limit on either axis.
func (o *Obstacle) OutOfBounds(limit float64) bool {
	return math.Abs(o.Position.X) > limit || math.Abs(o.Position.Z) > limit
}

// MarkDestroyed marks the rock for removal (implements Destructible).
func (o *Obstacle) MarkDestroyed() {
	o.destroyed = true
}

// IsDestroyed returns true if the rock is marked for destruction (implements Destructible).
func (o *Obstacle) IsDestroyed() bool {
	return o.destroyed
}

// VisualSpec returns the visual description for the display.
func (o *Obstacle) VisualSpec() VisualSpec {
	return VisualSpec{Kind: KindObstacle, Radius: o.Radius}
}

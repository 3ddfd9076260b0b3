package object

import (
	"math"

	"github.com/tomz197/rockfield/internal/physics"
)

// Ship is the player-controlled craft. It moves on the XZ plane only.
type Ship struct {
	Position physics.Vec3 // Y is always 0
	Heading  float64      // Radians; 0 faces +Z, positive turns toward +X
	Speed    float64      // Scalar speed along Forward, units per tick

	MaxSpeed      float64      // Speed cap after thrust
	Acceleration  float64      // Speed gained per thrusting tick
	Drag          float64      // Speed multiplier applied every tick
	RotationSpeed float64      // Heading change per tick while turning
	Radii         physics.Vec3 // Collision ellipsoid semi-axes (lateral, up, forward)

	Visual VisualHandle
}

// ShipParams holds the tunables a ship is created from.
type ShipParams struct {
	MaxSpeed      float64
	Acceleration  float64
	Drag          float64
	RotationSpeed float64
	Radii         physics.Vec3
}

// NewShip creates a ship at rest at the origin facing +Z.
func NewShip(p ShipParams) *Ship {
	return &Ship{
		MaxSpeed:      p.MaxSpeed,
		Acceleration:  p.Acceleration,
		Drag:          p.Drag,
		RotationSpeed: p.RotationSpeed,
		Radii:         p.Radii,
	}
}

// Kind implements Body.
func (s *Ship) Kind() Kind { return KindShip }

// Center implements Body.
func (s *Ship) Center() physics.Vec3 { return s.Position }

// BoundingRadius implements Body. It is the largest ellipsoid semi-axis.
func (s *Ship) BoundingRadius() float64 {
	return math.Max(s.Radii.X, math.Max(s.Radii.Y, s.Radii.Z))
}

// Forward returns the unit vector the ship is facing.
func (s *Ship) Forward() physics.Vec3 {
	return physics.HeadingVector(s.Heading)
}

// Steer applies one tick of rotation and thrust.
// Rotation is a fixed step per tick, not scaled by elapsed time.
func (s *Ship) Steer(left, right, thrust bool) {
	if left {
		s.Heading -= s.RotationSpeed
	}
	if right {
		s.Heading += s.RotationSpeed
	}
	if thrust {
		s.Speed = math.Min(s.Speed+s.Acceleration, s.MaxSpeed)
	}
}

// Integrate applies drag and moves the ship along its heading.
func (s *Ship) Integrate() {
	s.Speed *= s.Drag
	if s.Speed < 0 {
		s.Speed = 0
	} else if s.Speed > s.MaxSpeed {
		s.Speed = s.MaxSpeed
	}
	s.Position = s.Position.Add(s.Forward().Scale(s.Speed))
}

// WrapPosition teleports the ship to the opposite edge on any axis that left
// [-limit, limit], and pins it to the plane.
func (s *Ship) WrapPosition(limit float64) {
	if s.Position.X > limit {
		s.Position.X = -limit
	} else if s.Position.X < -limit {
		s.Position.X = limit
	}
	if s.Position.Z > limit {
		s.Position.Z = -limit
	} else if s.Position.Z < -limit {
		s.Position.Z = limit
	}
	s.Position.Y = 0
}

// Overlaps reports whether a sphere touches the ship's collision ellipsoid.
func (s *Ship) Overlaps(center physics.Vec3, radius float64) bool {
	return physics.EllipsoidOverlapsSphere(s.Position, s.Radii, s.Heading, center, radius)
}

// Halt zeroes the ship's speed.
func (s *Ship) Halt() {
	s.Speed = 0
}

// VisualSpec returns the visual description for the display.
func (s *Ship) VisualSpec() VisualSpec {
	return VisualSpec{Kind: KindShip, Radius: s.BoundingRadius(), Radii: s.Radii}
}

package object

import (
	"time"

	"github.com/tomz197/rockfield/internal/physics"
)

// Projectile is a bolt fired by the ship. Its direction is frozen at fire time.
type Projectile struct {
	ID        uint64
	Position  physics.Vec3
	Direction physics.Vec3  // Unit vector
	Speed     float64       // Units per tick
	Radius    float64       // Collision radius
	CreatedAt time.Duration // Session time the bolt was fired
	Visual    VisualHandle
	destroyed bool
}

// NewProjectile creates a bolt at pos heading along dir.
func NewProjectile(id uint64, pos, dir physics.Vec3, speed, radius float64, now time.Duration) *Projectile {
	return &Projectile{
		ID:        id,
		Position:  pos,
		Direction: dir,
		Speed:     speed,
		Radius:    radius,
		CreatedAt: now,
	}
}

// Kind implements Body.
func (p *Projectile) Kind() Kind { return KindProjectile }

// Center implements Body.
func (p *Projectile) Center() physics.Vec3 { return p.Position }

// BoundingRadius implements Body.
func (p *Projectile) BoundingRadius() float64 { return p.Radius }

// MarkDestroyed marks the projectile for removal.
func (p *Projectile) MarkDestroyed() {
	p.destroyed = true
}

// IsDestroyed returns true if the projectile is marked for destruction.
func (p *Projectile) IsDestroyed() bool {
	return p.destroyed
}

// Expired reports whether the bolt has outlived ttl at session time now.
func (p *Projectile) Expired(now, ttl time.Duration) bool {
	return now-p.CreatedAt >= ttl
}

// Advance moves the projectile one tick along its direction.
func (p *Projectile) Advance() {
	p.Position = p.Position.Add(p.Direction.Scale(p.Speed))
}

// VisualSpec returns the visual description for the display.
func (p *Projectile) VisualSpec() VisualSpec {
	return VisualSpec{Kind: KindProjectile, Radius: p.Radius}
}

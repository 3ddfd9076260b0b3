package game

import (
	"time"

	"github.com/tomz197/rockfield/internal/object"
	"github.com/tomz197/rockfield/internal/physics"
)

// Spawn edges, in the order they are drawn from.
const (
	edgeFar = iota // +Z
	edgeNear       // -Z
	edgeLeft       // -X
	edgeRight      // +X
	edgeCount
)

// TryFireProjectile fires a bolt from the ship's nose if the cooldown allows.
// The first shot of a session is always allowed.
func (s *Session) TryFireProjectile(now time.Duration) (*object.Projectile, bool) {
	if s.IsGameOver() {
		return nil, false
	}
	if s.state.hasFired && now-s.state.LastFire < s.cfg.FireCooldown {
		return nil, false
	}
	s.state.LastFire = now
	s.state.hasFired = true

	forward := s.ship.Forward()
	pos := s.ship.Position.Add(forward.Scale(s.cfg.MuzzleDistance))
	p := object.NewProjectile(s.nextEntityID(), pos, forward, s.cfg.ProjectileSpeed, s.cfg.ProjectileRadius, now)
	p.Visual = s.display.CreateVisual(p.VisualSpec())
	s.display.SetPosition(p.Visual, p.Position)
	s.projectiles = append(s.projectiles, p)

	s.logger.Debug("projectile fired", "id", p.ID, "at", now)
	return p, true
}

// TrySpawnObstacle creates a rock just outside a random edge, aimed at a random
// point near the centre, if the spawn interval has elapsed.
func (s *Session) TrySpawnObstacle(now time.Duration) (*object.Obstacle, bool) {
	if s.IsGameOver() {
		return nil, false
	}
	if now-s.state.LastSpawn < s.cfg.SpawnInterval {
		return nil, false
	}
	s.state.LastSpawn = now

	size := s.uniform(s.cfg.ObstacleMinSize, s.cfg.ObstacleMaxSize)
	pos := s.edgePosition()
	target := physics.Vec3{
		X: s.uniform(-s.cfg.TargetSpread, s.cfg.TargetSpread),
		Z: s.uniform(-s.cfg.TargetSpread, s.cfg.TargetSpread),
	}
	dir := target.Sub(pos).NormalizeOr(pos.Scale(-1).NormalizeOr(physics.Vec3{Z: 1}))
	speed := s.uniform(s.cfg.ObstacleMinSpeed, s.cfg.ObstacleMaxSpeed)

	o := object.NewObstacle(s.nextEntityID(), pos, dir, speed, size)
	o.Visual = s.display.CreateVisual(o.VisualSpec())
	s.display.SetPosition(o.Visual, o.Position)
	s.obstacles = append(s.obstacles, o)

	s.logger.Debug("obstacle spawned", "id", o.ID, "size", size, "x", pos.X, "z", pos.Z)
	return o, true
}

// edgePosition picks one of the four edges and an offset along it.
func (s *Session) edgePosition() physics.Vec3 {
	a := s.cfg.PlayArea
	out := a + s.cfg.SpawnMargin
	edge := s.rng.IntN(edgeCount)
	along := s.uniform(-a, a)

	switch edge {
	case edgeFar:
		return physics.Vec3{X: along, Z: out}
	case edgeNear:
		return physics.Vec3{X: along, Z: -out}
	case edgeLeft:
		return physics.Vec3{X: -out, Z: along}
	default:
		return physics.Vec3{X: out, Z: along}
	}
}

// uniform returns a value in [lo, hi).
func (s *Session) uniform(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

func (s *Session) nextEntityID() uint64 {
	s.nextID++
	return s.nextID
}

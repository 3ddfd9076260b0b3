package game

import "time"

// integrateShip applies input, drag and movement to the ship, then wraps it.
func (s *Session) integrateShip(in Input) {
	s.ship.Steer(in.Held(ActionRotateLeft), in.Held(ActionRotateRight), in.Held(ActionThrust))
	s.ship.Integrate()
	s.ship.WrapPosition(s.cfg.PlayArea)
}

// advanceProjectiles expires bolts past their TTL and moves the rest.
func (s *Session) advanceProjectiles(now time.Duration) {
	for _, p := range s.projectiles {
		if p.IsDestroyed() {
			continue
		}
		if p.Expired(now, s.cfg.ProjectileTTL) {
			s.DestroyProjectile(p)
			continue
		}
		p.Advance()
	}
}

// advanceObstacles moves rocks and drops the ones that drifted off screen.
// Culled rocks score nothing.
func (s *Session) advanceObstacles() {
	limit := s.cfg.PlayArea + s.cfg.CullMargin
	for _, o := range s.obstacles {
		if o.IsDestroyed() {
			continue
		}
		o.Advance()
		if o.OutOfBounds(limit) {
			s.logger.Debug("obstacle culled", "id", o.ID)
			s.DestroyObstacle(o)
		}
	}
}

package game

import (
	"github.com/tomz197/rockfield/internal/object"
)

// resolveCollisions runs the two collision passes for the tick.
func (s *Session) resolveCollisions() {
	s.populateGrid()
	s.checkProjectileObstacleCollisions()
	s.checkShipObstacleCollisions()
}

// populateGrid clears and re-inserts the live rocks into the broad-phase grid.
func (s *Session) populateGrid() {
	s.grid.Clear()
	for i, o := range s.obstacles {
		if !o.IsDestroyed() {
			s.grid.Insert(o.Position, i)
		}
	}
}

// checkProjectileObstacleCollisions lets every bolt damage at most one rock:
// the first one in insertion order that it overlaps.
func (s *Session) checkProjectileObstacleCollisions() {
	for _, p := range s.projectiles {
		if p.IsDestroyed() {
			continue
		}
		target := s.firstObstacleHit(p)
		if target == nil {
			continue
		}

		s.DestroyProjectile(p)
		if target.Hit() {
			s.UpdateScore(target.ScoreValue())
			s.DestroyObstacle(target)
		}
	}
}

// firstObstacleHit returns the lowest-index live rock overlapping p, or nil.
func (s *Session) firstObstacleHit(p *object.Projectile) *object.Obstacle {
	best := -1
	s.grid.QueryAround(p.Position, func(j int) bool {
		if best >= 0 && j > best {
			return false
		}
		o := s.obstacles[j]
		if o.IsDestroyed() || !s.intersect(p, o) {
			return false
		}
		best = j
		return false
	})
	if best < 0 {
		return nil
	}
	return s.obstacles[best]
}

// checkShipObstacleCollisions ends the game on the first rock touching the ship.
func (s *Session) checkShipObstacleCollisions() {
	for _, o := range s.obstacles {
		if o.IsDestroyed() {
			continue
		}
		if s.intersect(s.ship, o) {
			s.logger.Debug("ship hit", "obstacle", o.ID)
			s.TriggerGameOver()
			return
		}
	}
}

// Package game runs the simulation: one Session per player, advanced one tick at a time.
package game

import (
	"io"
	"math"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/rockfield/internal/object"
	"github.com/tomz197/rockfield/internal/physics"
)

// Options wires a session to its collaborators. Every field is optional.
type Options struct {
	Display  Display
	Listener Listener
	Rand     Rand
	Logger   *log.Logger
	// Intersect overrides the overlap test used by both collision passes.
	// Candidates are still pre-filtered by distance, so it may only narrow
	// what the entities' own collision volumes report.
	Intersect func(a, b object.Body) bool
}

// Session owns one ship, its bolts, the rocks and the score.
// It is not safe for concurrent use; a host drives it from a single goroutine.
type Session struct {
	cfg   Config
	ship  *object.Ship
	state GameState

	projectiles []*object.Projectile
	obstacles   []*object.Obstacle
	grid        *physics.SpatialGrid

	display   Display
	listener  Listener
	rng       Rand
	logger    *log.Logger
	intersect func(a, b object.Body) bool

	nextID    uint64
	ticks     uint64
	lastNow   time.Duration
	lastDelta time.Duration
	inTick    bool
}

// New creates a session in the playing phase with the ship at rest at the origin.
func New(cfg Config, opts Options) *Session {
	s := &Session{
		cfg:       cfg,
		display:   opts.Display,
		listener:  opts.Listener,
		rng:       opts.Rand,
		logger:    opts.Logger,
		intersect: opts.Intersect,
	}
	if s.display == nil {
		s.display = nopDisplay{}
	}
	if s.listener == nil {
		s.listener = nopListener{}
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	if s.intersect == nil {
		s.intersect = object.Intersects
	}

	// Cells must cover the widest bolt-to-rock reach.
	cell := math.Max(cfg.GridCellSize, cfg.ObstacleMaxSize/2+cfg.ProjectileRadius)
	s.grid = physics.NewSpatialGrid(cfg.PlayArea+cfg.CullMargin, cell)

	s.ship = object.NewShip(object.ShipParams{
		MaxSpeed:      cfg.Ship.MaxSpeed,
		Acceleration:  cfg.Ship.Acceleration,
		Drag:          cfg.Ship.Drag,
		RotationSpeed: cfg.Ship.RotationSpeed,
		Radii:         physics.Vec3{X: cfg.Ship.RadiusX, Y: cfg.Ship.RadiusY, Z: cfg.Ship.RadiusZ},
	})
	s.ship.Visual = s.display.CreateVisual(s.ship.VisualSpec())
	s.display.SetPosition(s.ship.Visual, s.ship.Position)
	s.display.SetRotation(s.ship.Visual, s.ship.Heading)

	return s
}

// Tick advances the simulation to session time now with the given held input.
// Nothing moves once the game is over.
func (s *Session) Tick(now time.Duration, in Input) {
	if s.ticks > 0 {
		s.lastDelta = now - s.lastNow
	}
	s.lastNow = now
	s.ticks++

	if s.IsGameOver() {
		return
	}
	if in == nil {
		in = Keys(nil)
	}

	s.inTick = true
	defer func() { s.inTick = false }()

	s.integrateShip(in)
	if in.Held(ActionFire) {
		s.TryFireProjectile(now)
	}
	s.TrySpawnObstacle(now)

	s.advanceProjectiles(now)
	s.advanceObstacles()
	s.resolveCollisions()

	s.compact()
	s.syncVisuals()
}

// DestroyProjectile removes a bolt and releases its visual.
// It returns false if the bolt was already destroyed.
func (s *Session) DestroyProjectile(p *object.Projectile) bool {
	if p == nil || p.IsDestroyed() {
		return false
	}
	p.MarkDestroyed()
	s.display.DestroyVisual(p.Visual)
	if !s.inTick {
		s.compact()
	}
	return true
}

// DestroyObstacle removes a rock without scoring and releases its visual.
// It returns false if the rock was already destroyed.
func (s *Session) DestroyObstacle(o *object.Obstacle) bool {
	if o == nil || o.IsDestroyed() {
		return false
	}
	o.MarkDestroyed()
	s.display.DestroyVisual(o.Visual)
	if !s.inTick {
		s.compact()
	}
	return true
}

// compact drops destroyed entities from both collections.
func (s *Session) compact() {
	s.projectiles = compactDestroyed(s.projectiles)
	s.obstacles = compactDestroyed(s.obstacles)
}

// compactDestroyed returns the live items in order. When anything was dropped
// the result is a fresh slice, so a caller still ranging over the previous one
// keeps seeing every element it was handed.
func compactDestroyed[T object.Destructible](items []T) []T {
	dead := 0
	for _, it := range items {
		if it.IsDestroyed() {
			dead++
		}
	}
	if dead == 0 {
		return items
	}
	kept := make([]T, 0, len(items)-dead)
	for _, it := range items {
		if !it.IsDestroyed() {
			kept = append(kept, it)
		}
	}
	return kept
}

// syncVisuals pushes positions (and the ship's heading) to the display.
func (s *Session) syncVisuals() {
	s.display.SetPosition(s.ship.Visual, s.ship.Position)
	s.display.SetRotation(s.ship.Visual, s.ship.Heading)
	for _, p := range s.projectiles {
		s.display.SetPosition(p.Visual, p.Position)
	}
	for _, o := range s.obstacles {
		s.display.SetPosition(o.Visual, o.Position)
	}
}

// Ship returns the player's ship.
func (s *Session) Ship() *object.Ship { return s.ship }

// Projectiles returns the live bolts in firing order. The slice is owned by the session.
func (s *Session) Projectiles() []*object.Projectile { return s.projectiles }

// Obstacles returns the live rocks in spawn order. The slice is owned by the session.
func (s *Session) Obstacles() []*object.Obstacle { return s.obstacles }

// Score returns the current score.
func (s *Session) Score() int { return s.state.Score }

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.state.Phase }

// State returns a copy of the state controller's bookkeeping.
func (s *Session) State() GameState { return s.state }

// LastDelta is the session time between the two most recent ticks.
func (s *Session) LastDelta() time.Duration { return s.lastDelta }

// Ticks is the number of ticks run so far.
func (s *Session) Ticks() uint64 { return s.ticks }

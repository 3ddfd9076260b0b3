package game

import (
	"github.com/tomz197/rockfield/internal/object"
	"github.com/tomz197/rockfield/internal/physics"
)

// seqRand replays fixed draws, cycling when exhausted.
type seqRand struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (r *seqRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[r.fi%len(r.floats)]
	r.fi++
	return v
}

func (r *seqRand) IntN(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[r.ii%len(r.ints)] % n
	r.ii++
	return v
}

// fakeDisplay records every collaborator call.
type fakeDisplay struct {
	next      object.VisualHandle
	kinds     map[object.VisualHandle]object.Kind
	alive     map[object.VisualHandle]bool
	destroyed map[object.VisualHandle]int
	positions map[object.VisualHandle]physics.Vec3
	rotations map[object.VisualHandle]float64
}

func newFakeDisplay() *fakeDisplay {
	return &fakeDisplay{
		kinds:     make(map[object.VisualHandle]object.Kind),
		alive:     make(map[object.VisualHandle]bool),
		destroyed: make(map[object.VisualHandle]int),
		positions: make(map[object.VisualHandle]physics.Vec3),
		rotations: make(map[object.VisualHandle]float64),
	}
}

func (d *fakeDisplay) CreateVisual(spec object.VisualSpec) object.VisualHandle {
	d.next++
	d.kinds[d.next] = spec.Kind
	d.alive[d.next] = true
	return d.next
}

func (d *fakeDisplay) DestroyVisual(h object.VisualHandle) {
	d.destroyed[h]++
	delete(d.alive, h)
}

func (d *fakeDisplay) SetPosition(h object.VisualHandle, pos physics.Vec3) {
	d.positions[h] = pos
}

func (d *fakeDisplay) SetRotation(h object.VisualHandle, heading float64) {
	d.rotations[h] = heading
}

func (d *fakeDisplay) created(kind object.Kind) int {
	n := 0
	for _, k := range d.kinds {
		if k == kind {
			n++
		}
	}
	return n
}

func (d *fakeDisplay) aliveCount(kind object.Kind) int {
	n := 0
	for h := range d.alive {
		if d.kinds[h] == kind {
			n++
		}
	}
	return n
}

// fakeListener records score and game-over notifications.
type fakeListener struct {
	scores   []int
	gameOver []int
}

func (l *fakeListener) OnScoreChanged(score int) { l.scores = append(l.scores, score) }
func (l *fakeListener) OnGameOver(final int)     { l.gameOver = append(l.gameOver, final) }

type harness struct {
	s        *Session
	display  *fakeDisplay
	listener *fakeListener
}

func newHarness(cfg Config, rng Rand) *harness {
	h := &harness{display: newFakeDisplay(), listener: &fakeListener{}}
	if rng == nil {
		rng = &seqRand{floats: []float64{0.5}, ints: []int{0}}
	}
	h.s = New(cfg, Options{Display: h.display, Listener: h.listener, Rand: rng})
	return h
}

// addObstacle places a stationary rock with its own visual.
func (h *harness) addObstacle(pos physics.Vec3, radius float64, health int) *object.Obstacle {
	o := &object.Obstacle{ID: h.s.nextEntityID(), Position: pos, Radius: radius, Size: radius * 2, Health: health}
	o.Visual = h.display.CreateVisual(o.VisualSpec())
	h.s.obstacles = append(h.s.obstacles, o)
	return o
}

// addProjectile places a bolt with its own visual.
func (h *harness) addProjectile(pos, dir physics.Vec3, speed, radius float64) *object.Projectile {
	p := object.NewProjectile(h.s.nextEntityID(), pos, dir, speed, radius, 0)
	p.Visual = h.display.CreateVisual(p.VisualSpec())
	h.s.projectiles = append(h.s.projectiles, p)
	return p
}

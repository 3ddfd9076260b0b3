package draw

import (
	"math"
	"slices"

	"github.com/tomz197/rockfield/internal/object"
	"github.com/tomz197/rockfield/internal/physics"
)

const (
	scenePadding   = 1.0 // World units between the play-area border and the canvas edge
	shipDrawScale  = 1.5 // The ship is tiny at terminal resolution
	circleSegments = 12
)

type visual struct {
	spec    object.VisualSpec
	pos     physics.Vec3
	heading float64
}

// Scene keeps one visual per live entity and draws them top-down.
// World +X is right and +Z is up on screen.
type Scene struct {
	playArea float64
	next     object.VisualHandle
	visuals  map[object.VisualHandle]*visual
}

// NewScene creates an empty scene for a square play area of half-width playArea.
func NewScene(playArea float64) *Scene {
	return &Scene{
		playArea: playArea,
		visuals:  make(map[object.VisualHandle]*visual),
	}
}

// Span is the logical width and height a canvas needs to hold the scene.
func (s *Scene) Span() float64 {
	return 2 * (s.playArea + scenePadding)
}

// CreateVisual registers a visual and returns its handle. Handles are never reused.
func (s *Scene) CreateVisual(spec object.VisualSpec) object.VisualHandle {
	s.next++
	s.visuals[s.next] = &visual{spec: spec}
	return s.next
}

// DestroyVisual releases a visual. Unknown or released handles are ignored.
func (s *Scene) DestroyVisual(h object.VisualHandle) {
	delete(s.visuals, h)
}

// SetPosition moves a visual.
func (s *Scene) SetPosition(h object.VisualHandle, pos physics.Vec3) {
	if v, ok := s.visuals[h]; ok {
		v.pos = pos
	}
}

// SetRotation sets a visual's heading.
func (s *Scene) SetRotation(h object.VisualHandle, heading float64) {
	if v, ok := s.visuals[h]; ok {
		v.heading = heading
	}
}

// Len returns the number of live visuals.
func (s *Scene) Len() int {
	return len(s.visuals)
}

// Has reports whether h is a live visual.
func (s *Scene) Has(h object.VisualHandle) bool {
	_, ok := s.visuals[h]
	return ok
}

// toCanvas maps a world position to canvas logical coordinates.
func (s *Scene) toCanvas(p physics.Vec3) Point {
	half := s.playArea + scenePadding
	return Point{X: p.X + half, Y: half - p.Z}
}

// Render draws the play-area border and every visual onto c.
// Visuals are drawn in handle order so overlapping output is stable.
func (s *Scene) Render(c *Canvas) {
	a := s.playArea
	corners := []Point{
		s.toCanvas(physics.Vec3{X: -a, Z: a}),
		s.toCanvas(physics.Vec3{X: a, Z: a}),
		s.toCanvas(physics.Vec3{X: a, Z: -a}),
		s.toCanvas(physics.Vec3{X: -a, Z: -a}),
	}
	c.DrawPolygon(corners, false)

	handles := make([]object.VisualHandle, 0, len(s.visuals))
	for h := range s.visuals {
		handles = append(handles, h)
	}
	slices.Sort(handles)

	for _, h := range handles {
		v := s.visuals[h]
		switch v.spec.Kind {
		case object.KindShip:
			c.DrawPolygon(s.shipOutline(v), true)
		case object.KindProjectile:
			c.Plot(s.toCanvas(v.pos))
		case object.KindObstacle:
			c.DrawCircle(s.toCanvas(v.pos), v.spec.Radius, circleSegments)
		}
	}
}

// shipOutline returns a triangle with the nose along the heading.
func (s *Scene) shipOutline(v *visual) []Point {
	forward := physics.HeadingVector(v.heading)
	right := physics.Vec3{X: forward.Z, Z: -forward.X}
	length := math.Max(v.spec.Radii.Z, v.spec.Radius) * shipDrawScale
	width := math.Max(v.spec.Radii.X, v.spec.Radius/2) * shipDrawScale

	nose := v.pos.Add(forward.Scale(length))
	tail := v.pos.Sub(forward.Scale(length * 0.8))
	return []Point{
		s.toCanvas(nose),
		s.toCanvas(tail.Add(right.Scale(width))),
		s.toCanvas(tail.Sub(right.Scale(width))),
	}
}

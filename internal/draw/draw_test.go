package draw

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/rockfield/internal/game"
	"github.com/tomz197/rockfield/internal/object"
	"github.com/tomz197/rockfield/internal/physics"
)

var _ game.Display = (*Scene)(nil)

func TestCanvasHalfBlocks(t *testing.T) {
	c := NewScaledCanvas(4, 2, 4, 4)
	c.Plot(Point{X: 0, Y: 0}) // row 0 top
	c.Plot(Point{X: 1, Y: 1}) // row 0 bottom
	c.Plot(Point{X: 2, Y: 2}) // row 1 top
	c.Plot(Point{X: 2, Y: 3}) // row 1 bottom

	var buf bytes.Buffer
	require.NoError(t, c.Render(&buf))

	out := buf.String()
	assert.Contains(t, out, "\033[1;1H▀")
	assert.Contains(t, out, "\033[1;2H▄")
	assert.Contains(t, out, "\033[2;3H█")
	assert.Equal(t, 4, c.LitPixels())
}

func TestCanvasClipsAndClears(t *testing.T) {
	c := NewScaledCanvas(10, 5, 10, 10)
	c.DrawLine(Point{X: -5, Y: 5}, Point{X: 20, Y: 5})

	assert.Equal(t, 10, c.LitPixels())

	c.Clear()
	assert.Zero(t, c.LitPixels())
}

func TestCanvasOffset(t *testing.T) {
	c := NewScaledCanvas(2, 1, 2, 2)
	c.SetOffset(5, 3)
	c.Plot(Point{})

	var buf bytes.Buffer
	require.NoError(t, c.Render(&buf))
	assert.Equal(t, "\033[4;6H▀", buf.String())
}

func TestFilledPolygonCoversInterior(t *testing.T) {
	c := NewScaledCanvas(20, 10, 20, 20)
	square := []Point{{X: 2, Y: 2}, {X: 12, Y: 2}, {X: 12, Y: 12}, {X: 2, Y: 12}}

	c.DrawPolygon(square, false)
	outline := c.LitPixels()
	c.Clear()
	c.DrawPolygon(square, true)

	assert.Greater(t, c.LitPixels(), outline)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestChunkWriterFlush(t *testing.T) {
	var buf bytes.Buffer
	cw := NewChunkWriter(&buf)
	cw.WriteAt(3, 2, "hi")
	cw.WriteCentered(10, 1, "abcd")
	long := strings.Repeat("x", 5000)
	cw.WriteString(long)

	require.NoError(t, cw.Flush())
	assert.Equal(t, "\033[2;3Hhi\033[1;8Habcd"+long, buf.String())

	require.NoError(t, cw.Flush(), "empty flush")

	cw = NewChunkWriter(failingWriter{})
	cw.WriteString(long)
	assert.Error(t, cw.Flush())
}

func TestSceneVisualLifecycle(t *testing.T) {
	s := NewScene(30)
	ship := s.CreateVisual(object.VisualSpec{Kind: object.KindShip, Radii: physics.Vec3{X: 0.5, Y: 0.5, Z: 0.8}})
	rock := s.CreateVisual(object.VisualSpec{Kind: object.KindObstacle, Radius: 1})

	assert.NotEqual(t, ship, rock)
	assert.Equal(t, 2, s.Len())

	s.DestroyVisual(rock)
	assert.NotPanics(t, func() {
		s.DestroyVisual(rock)
		s.DestroyVisual(object.VisualHandle(999))
		s.SetPosition(rock, physics.Vec3{X: 1})
		s.SetRotation(rock, 1)
	})
	assert.Equal(t, 1, s.Len())
	assert.False(t, s.Has(rock))
	assert.True(t, s.Has(ship))

	next := s.CreateVisual(object.VisualSpec{Kind: object.KindProjectile})
	assert.NotEqual(t, rock, next, "handles are not reused")
}

func TestSceneRender(t *testing.T) {
	s := NewScene(30)
	c := NewScaledCanvas(64, 32, s.Span(), s.Span())

	s.Render(c)
	border := c.LitPixels()
	assert.Positive(t, border)

	rock := s.CreateVisual(object.VisualSpec{Kind: object.KindObstacle, Radius: 2})
	s.SetPosition(rock, physics.Vec3{X: 10, Z: 10})
	c.Clear()
	s.Render(c)
	withRock := c.LitPixels()
	assert.Greater(t, withRock, border)

	ship := s.CreateVisual(object.VisualSpec{Kind: object.KindShip, Radii: physics.Vec3{X: 0.5, Y: 0.5, Z: 0.8}})
	s.SetRotation(ship, 1)
	c.Clear()
	s.Render(c)
	assert.Greater(t, c.LitPixels(), withRock)
}

func TestSceneMapsZUp(t *testing.T) {
	s := NewScene(30)

	top := s.toCanvas(physics.Vec3{Z: 30})
	bottom := s.toCanvas(physics.Vec3{Z: -30})
	left := s.toCanvas(physics.Vec3{X: -30})

	assert.Less(t, top.Y, bottom.Y)
	assert.InDelta(t, 1.0, left.X, 1e-9)
	assert.InDelta(t, 62.0, s.Span(), 1e-9)
}

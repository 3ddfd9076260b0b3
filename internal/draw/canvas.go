// Package draw renders the play area to a terminal with half-block characters.
package draw

import (
	"io"
	"math"
	"slices"
	"strconv"
)

// Point is a position in canvas logical coordinates.
type Point struct {
	X, Y float64
}

// Half-block glyphs; each terminal cell holds two vertical pixels.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Canvas is a pixel buffer with 2x vertical resolution.
// Drawing happens in a logical coordinate space that is scaled to the pixel grid.
type Canvas struct {
	cols, rows int    // Terminal cells covered
	pixelRows  int    // rows * 2
	pixels     []bool // [y*cols + x]

	logicalWidth  float64
	logicalHeight float64
	scaleX        float64
	scaleY        float64

	// 0-based terminal offset of the canvas' top-left cell.
	offsetCol int
	offsetRow int

	scaled        []Point
	intersections []float64
	numBuf        [20]byte
}

// NewScaledCanvas creates a canvas covering cols x rows terminal cells that maps
// logicalWidth x logicalHeight onto its pixels.
func NewScaledCanvas(cols, rows int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{logicalWidth: logicalWidth, logicalHeight: logicalHeight}
	c.Resize(cols, rows)
	return c
}

// Resize changes the covered terminal area while keeping the logical size.
func (c *Canvas) Resize(cols, rows int) {
	cols, rows = max(cols, 0), max(rows, 0)
	if cols != c.cols || rows != c.rows || c.pixels == nil {
		c.cols = cols
		c.rows = rows
		c.pixelRows = rows * 2
		c.pixels = make([]bool, c.pixelRows*cols)
	}
	c.scaleX = float64(cols) / c.logicalWidth
	c.scaleY = float64(c.pixelRows) / c.logicalHeight
}

// SetOffset places the canvas' top-left cell at 0-based terminal (col, row).
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

// Clear resets all pixels.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// Cols returns the number of terminal columns covered.
func (c *Canvas) Cols() int { return c.cols }

// Rows returns the number of terminal rows covered.
func (c *Canvas) Rows() int { return c.rows }

// LitPixels returns the number of set pixels.
func (c *Canvas) LitPixels() int {
	n := 0
	for _, p := range c.pixels {
		if p {
			n++
		}
	}
	return n
}

func (c *Canvas) setPixel(x, y int) {
	if x >= 0 && x < c.cols && y >= 0 && y < c.pixelRows {
		c.pixels[y*c.cols+x] = true
	}
}

func (c *Canvas) toPixel(p Point) (int, int) {
	return int(math.Floor(p.X * c.scaleX)), int(math.Floor(p.Y * c.scaleY))
}

// Plot sets the pixel under a logical point.
func (c *Canvas) Plot(p Point) {
	c.setPixel(c.toPixel(p))
}

// DrawLine draws a line between two logical points using Bresenham's algorithm.
func (c *Canvas) DrawLine(p1, p2 Point) {
	x1, y1 := c.toPixel(p1)
	x2, y2 := c.toPixel(p2)

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy
	for {
		c.setPixel(x1, y1)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// DrawPolygon draws a closed polygon, optionally filled.
func (c *Canvas) DrawPolygon(points []Point, filled bool) {
	if len(points) < 3 {
		return
	}
	if filled {
		c.fillPolygon(points)
	}
	for i := range points {
		c.DrawLine(points[i], points[(i+1)%len(points)])
	}
}

// DrawCircle draws a circle outline approximated by a polygon.
func (c *Canvas) DrawCircle(center Point, radius float64, segments int) {
	if segments < 3 {
		segments = 3
	}
	pts := make([]Point, segments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(segments)
		pts[i] = Point{X: center.X + radius*math.Cos(a), Y: center.Y + radius*math.Sin(a)}
	}
	c.DrawPolygon(pts, false)
}

// fillPolygon fills a polygon with a scanline pass in pixel space.
func (c *Canvas) fillPolygon(points []Point) {
	c.scaled = c.scaled[:0]
	for _, p := range points {
		c.scaled = append(c.scaled, Point{X: p.X * c.scaleX, Y: p.Y * c.scaleY})
	}

	minY, maxY := c.scaled[0].Y, c.scaled[0].Y
	for _, p := range c.scaled {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	n := len(c.scaled)
	for y := int(math.Floor(minY)); y <= int(math.Ceil(maxY)); y++ {
		scanY := float64(y) + 0.5
		xs := c.intersections[:0]
		for i := 0; i < n; i++ {
			p1, p2 := c.scaled[i], c.scaled[(i+1)%n]
			if (p1.Y <= scanY && p2.Y > scanY) || (p2.Y <= scanY && p1.Y > scanY) {
				t := (scanY - p1.Y) / (p2.Y - p1.Y)
				xs = append(xs, p1.X+t*(p2.X-p1.X))
			}
		}
		slices.Sort(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			for x := int(math.Ceil(xs[i])); x <= int(math.Floor(xs[i+1])); x++ {
				c.setPixel(x, y)
			}
		}
		c.intersections = xs
	}
}

// Render writes the lit cells as cursor-addressed half-block glyphs.
// Empty cells are skipped; callers clear the screen when needed.
func (c *Canvas) Render(w io.Writer) error {
	var out []byte
	for row := 0; row < c.rows; row++ {
		top := row * 2 * c.cols
		bottom := top + c.cols
		for col := 0; col < c.cols; col++ {
			var ch rune
			switch t, b := c.pixels[top+col], c.pixels[bottom+col]; {
			case t && b:
				ch = BlockFull
			case t:
				ch = BlockUpperHalf
			case b:
				ch = BlockLowerHalf
			default:
				continue
			}
			out = append(out, "\033["...)
			out = append(out, strconv.AppendInt(c.numBuf[:0], int64(row+1+c.offsetRow), 10)...)
			out = append(out, ';')
			out = append(out, strconv.AppendInt(c.numBuf[:0], int64(col+1+c.offsetCol), 10)...)
			out = append(out, 'H')
			out = append(out, string(ch)...)
		}
	}
	_, err := w.Write(out)
	return err
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

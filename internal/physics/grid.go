package physics

import "math"

// SpatialGrid is a uniform grid over the XZ plane for broad-phase collision detection.
// Objects are inserted by position and index, then nearby objects can be queried
// in O(1) per cell via a 3x3 neighbourhood lookup.
//
// Positions outside the covered rectangle are clamped into the edge cells. Clamping
// never pushes two nearby points more than one cell apart, so queries stay complete.
//
// Cell size must be >= the maximum interaction distance between any two
// colliding objects so that all potential collisions are found within
// the 3x3 neighbourhood.
type SpatialGrid struct {
	minX, minZ  float64
	cellSize    float64
	invCellSize float64 // 1 / cellSize (precomputed to avoid division)
	cols        int
	rows        int
	cells       []gridCell
}

// gridCell stores the indices of objects that fall within a grid cell.
// The slice is reused between ticks (reset to [:0]) to avoid allocations.
type gridCell struct {
	items []int
}

// NewSpatialGrid creates a grid covering [-halfExtent, halfExtent] on both axes.
// cellSize should be >= the maximum collision distance for the objects being inserted.
func NewSpatialGrid(halfExtent, cellSize float64) *SpatialGrid {
	span := 2 * halfExtent
	cols := int(math.Ceil(span / cellSize))
	if cols < 1 {
		cols = 1
	}

	return &SpatialGrid{
		minX:        -halfExtent,
		minZ:        -halfExtent,
		cellSize:    cellSize,
		invCellSize: 1.0 / cellSize,
		cols:        cols,
		rows:        cols,
		cells:       make([]gridCell, cols*cols),
	}
}

// Clear removes all items from the grid without deallocating cell memory.
func (g *SpatialGrid) Clear() {
	for i := range g.cells {
		g.cells[i].items = g.cells[i].items[:0]
	}
}

// Insert adds an item (identified by index) at the given world position.
func (g *SpatialGrid) Insert(p Vec3, index int) {
	col, row := g.posToCell(p)
	idx := row*g.cols + col
	g.cells[idx].items = append(g.cells[idx].items, index)
}

// QueryAround calls fn for each item index in the 3x3 cell neighbourhood
// around the given world position. The plane does not wrap for the grid.
// If fn returns true, iteration stops early.
func (g *SpatialGrid) QueryAround(p Vec3, fn func(index int) bool) {
	col, row := g.posToCell(p)

	for r := max(row-1, 0); r <= min(row+1, g.rows-1); r++ {
		rowOffset := r * g.cols
		for c := max(col-1, 0); c <= min(col+1, g.cols-1); c++ {
			for _, itemIdx := range g.cells[rowOffset+c].items {
				if fn(itemIdx) {
					return
				}
			}
		}
	}
}

// posToCell converts world coordinates to grid cell coordinates.
// Clamps to valid range for positions outside the covered area.
func (g *SpatialGrid) posToCell(p Vec3) (col, row int) {
	col = clampCell(int(math.Floor((p.X-g.minX)*g.invCellSize)), g.cols)
	row = clampCell(int(math.Floor((p.Z-g.minZ)*g.invCellSize)), g.rows)
	return col, row
}

func clampCell(v, n int) int {
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}

package core

// Grid stores a 2D grid of cell values in row-major order. Coordinates
// outside the grid are never wrapped.
type Grid[T any] struct {
	W, H int
	data []T
}

// NewGrid allocates a zeroed grid. Negative dimensions are treated as zero.
func NewGrid[T any](w, h int) *Grid[T] {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Grid[T]{W: w, H: h, data: make([]T, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid[T]) Cells() []T { return g.data }

// In reports whether (x, y) lies inside the grid.
func (g *Grid[T]) In(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid[T]) Index(x, y int) int { return x + y*g.W }

// At returns the value at (x, y), or the zero value outside the grid.
func (g *Grid[T]) At(x, y int) T {
	if !g.In(x, y) {
		var zero T
		return zero
	}
	return g.data[g.Index(x, y)]
}

// Put stores v at (x, y) and reports whether the coordinate was inside.
func (g *Grid[T]) Put(x, y int, v T) bool {
	if !g.In(x, y) {
		return false
	}
	g.data[g.Index(x, y)] = v
	return true
}

// Fill sets every cell to v.
func (g *Grid[T]) Fill(v T) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Clear fills the grid with the zero value.
func (g *Grid[T]) Clear() {
	var zero T
	g.Fill(zero)
}

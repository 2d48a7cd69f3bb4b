// Package core provides fundamental types and utilities shared by the game
// logic and the terminal platform. It has no external dependencies (especially
// no Bubble Tea) so game logic stays pure and testable.
package core

// Point is a position in canvas space. Y grows downward, like screen coordinates.
type Point struct {
	X, Y float64
}

// Box is an axis-aligned bounding box in canvas space with inclusive edges.
type Box struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// SquareAround returns the bounding square of a circle centered at c.
func SquareAround(c Point, radius float64) Box {
	return Box{
		MinX: c.X - radius,
		MinY: c.Y - radius,
		MaxX: c.X + radius,
		MaxY: c.Y + radius,
	}
}

// Contains returns true if (x, y) lies inside the box or on its edge.
func (b Box) Contains(x, y float64) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

// Rect is an integer rectangle in screen cells, used for drawing.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

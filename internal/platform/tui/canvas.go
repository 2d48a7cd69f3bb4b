package tui

import (
	"fmt"
	"maps"
	"slices"

	"github.com/vovakirdan/bubblepop/internal/config"
	"github.com/vovakirdan/bubblepop/internal/core"
	"github.com/vovakirdan/bubblepop/internal/game"
)

// Viewport maps between terminal cells and canvas coordinates.
// The whole canvas is stretched over Field, so one cell usually covers
// several canvas units and the aspect ratio follows the terminal.
type Viewport struct {
	Field  core.Rect // Screen cells showing the canvas
	Width  float64   // Canvas width in canvas units
	Height float64   // Canvas height in canvas units
}

// NewViewport creates a viewport showing canvas inside field.
func NewViewport(field core.Rect, canvas config.Canvas) Viewport {
	return Viewport{Field: field, Width: float64(canvas.Width), Height: float64(canvas.Height)}
}

// Scale returns cells per canvas unit on each axis.
func (v Viewport) Scale() (sx, sy float64) {
	return float64(v.Field.W) / v.Width, float64(v.Field.H) / v.Height
}

// ToCanvas converts a screen cell to the canvas point under its center.
// Returns false for cells outside the field.
func (v Viewport) ToCanvas(col, row int) (core.Point, bool) {
	if !v.Field.Contains(col, row) {
		return core.Point{}, false
	}
	sx, sy := v.Scale()
	return core.Point{
		X: (float64(col-v.Field.X) + 0.5) / sx,
		Y: (float64(row-v.Field.Y) + 0.5) / sy,
	}, true
}

// ToField converts a canvas point to fractional cells relative to the field origin.
func (v Viewport) ToField(p core.Point) (x, y float64) {
	sx, sy := v.Scale()
	return p.X * sx, p.Y * sy
}

// Canvas is the terminal drawing surface for a game session.
// It keeps a sprite per live bubble and rasterizes them on demand.
type Canvas struct {
	sprites    map[game.BubbleID]game.Bubble
	gameOver   bool
	finalScore int
	field      *core.Screen
}

var _ game.Surface = (*Canvas)(nil)

// NewCanvas creates an empty canvas.
func NewCanvas() *Canvas {
	return &Canvas{
		sprites: make(map[game.BubbleID]game.Bubble),
		field:   core.NewScreen(0, 0),
	}
}

func (c *Canvas) Create(b game.Bubble) { c.sprites[b.ID] = b }
func (c *Canvas) Move(b game.Bubble) { c.sprites[b.ID] = b }
func (c *Canvas) Delete(id game.BubbleID) { delete(c.sprites, id) }

func (c *Canvas) Clear() {
	clear(c.sprites)
	c.gameOver = false
	c.finalScore = 0
}

func (c *Canvas) GameOver(score int) {
	c.gameOver = true
	c.finalScore = score
}

func (c *Canvas) spriteCount() int {
	return len(c.sprites)
}

// Draw rasterizes the sprites into dst inside v.Field.
// Newer bubbles are drawn over older ones, matching hit-test priority.
func (c *Canvas) Draw(dst *core.Screen, v Viewport) {
	if v.Field.W <= 0 || v.Field.H <= 0 {
		return
	}
	if c.field.Width() != v.Field.W || c.field.Height() != v.Field.H {
		c.field.Resize(v.Field.W, v.Field.H)
	}
	c.field.Clear()

	sx, sy := v.Scale()
	for _, id := range slices.Sorted(maps.Keys(c.sprites)) {
		b := c.sprites[id]
		x, y := v.ToField(b.Center)
		r := float64(b.Radius)
		c.field.FillEllipse(x, y, r*sx, r*sy, '█', bubbleColor(id))
	}

	if c.gameOver {
		mid := v.Field.H / 2
		c.field.DrawTextCentered(mid-1, "Game Over!", core.ColorBrightRed)
		c.field.DrawTextCentered(mid+1, fmt.Sprintf("Final score: %d", c.finalScore), core.ColorBrightWhite)
	}

	dst.Blit(c.field, v.Field.X, v.Field.Y)
}

// bubbleColor alternates shades so overlapping bubbles stay distinguishable.
func bubbleColor(id game.BubbleID) core.Color {
	if id%2 == 0 {
		return core.ColorBlue
	}
	return core.ColorBrightBlue
}

// Package tree lays out, paints and hit-tests the probability tree.
//
// All coordinates are logical pixels. A Surface maps them to its own device units; hit-testing
// takes logical points, so callers convert device coordinates with the surface's scale first.
package tree

import "math"

// Point is a position in logical pixels.
type Point struct {
	X, Y float64
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 { return math.Hypot(p.X-q.X, p.Y-q.Y) }

// Rect is an axis-aligned rectangle in logical pixels.
type Rect struct {
	X, Y, W, H float64
}

// Color is a CSS-style hex colour such as "#ff6b6b".
type Color string

// Font describes the text size used for measuring and drawing.
type Font struct {
	Size float64
	Bold bool
}

type Align int

const (
	AlignCenter Align = iota
	AlignLeft
)

// TextStyle is the full state used to draw one string.
type TextStyle struct {
	Font  Font
	Color Color
	Align Align
}

// Stroke describes a line or outline.
type Stroke struct {
	Color Color
	Width float64
	Alpha float64 // 0 is treated as opaque
}

// DeviceToLogical converts a position in s's device units to logical pixels.
func DeviceToLogical(s Surface, x, y float64) Point {
	sx, sy := s.Scale()
	return Point{X: x * sx, Y: y * sy}
}

// TextMeasurer reports the rendered width of s in logical pixels.
type TextMeasurer interface {
	MeasureText(s string, f Font) float64
}

// Surface is the drawing target the renderer paints on.
type Surface interface {
	TextMeasurer
	// Size is the drawable area in logical pixels.
	Size() (w, h float64)
	// Scale is logical pixels per device unit on each axis.
	Scale() (sx, sy float64)
	Clear()
	FillCircle(c Point, r float64, fill Color)
	StrokeCircle(c Point, r float64, st Stroke)
	Line(a, b Point, st Stroke)
	FillRect(r Rect, fill Color)
	StrokeRect(r Rect, st Stroke)
	Text(s string, at Point, st TextStyle)
}

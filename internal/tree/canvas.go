package tree

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// cell is one terminal character position.
type cell struct {
	ch   rune
	fg   Color
	bg   Color
	bold bool
	cont bool // right half of a wide rune
}

// Canvas is a Surface backed by a grid of terminal cells. Each cell covers sx×sy logical pixels,
// so the same scale converts painted shapes to cells and mouse cells back to logical points.
type Canvas struct {
	cols, rows int
	sx, sy     float64
	cells      []cell
}

// NewCanvas returns a blank canvas of cols×rows cells, each sx×sy logical pixels.
func NewCanvas(cols, rows int, sx, sy float64) *Canvas {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	c := &Canvas{cols: cols, rows: rows, sx: sx, sy: sy, cells: make([]cell, cols*rows)}
	c.Clear()
	return c
}

func (c *Canvas) Size() (float64, float64) { return float64(c.cols) * c.sx, float64(c.rows) * c.sy }

func (c *Canvas) Scale() (float64, float64) { return c.sx, c.sy }

// Dims returns the grid size in cells.
func (c *Canvas) Dims() (cols, rows int) { return c.cols, c.rows }

// ToLogical maps a cell to the logical point at its centre.
func (c *Canvas) ToLogical(col, row int) Point {
	return DeviceToLogical(c, float64(col)+0.5, float64(row)+0.5)
}

// ToCell maps a logical point to the cell containing it.
func (c *Canvas) ToCell(p Point) (col, row int) {
	return int(math.Floor(p.X / c.sx)), int(math.Floor(p.Y / c.sy))
}

// MeasureText returns the width of s in logical pixels. A terminal has a single glyph size,
// so the font only matters for weight, which does not change width.
func (c *Canvas) MeasureText(s string, _ Font) float64 {
	return float64(runewidth.StringWidth(s)) * c.sx
}

func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = cell{ch: ' '}
	}
}

func (c *Canvas) at(col, row int) *cell {
	if col < 0 || row < 0 || col >= c.cols || row >= c.rows {
		return nil
	}
	return &c.cells[row*c.cols+col]
}

// claim returns the cell at (col, row) ready for a new glyph. A wide rune it overlaps is cut
// back to a blank so every row keeps exactly cols columns.
func (c *Canvas) claim(col, row int) *cell {
	cl := c.at(col, row)
	if cl == nil {
		return nil
	}
	if cl.cont {
		if owner := c.at(col-1, row); owner != nil {
			owner.ch = ' '
		}
		cl.cont = false
	} else if next := c.at(col+1, row); next != nil && next.cont {
		next.ch, next.cont = ' ', false
	}
	return cl
}

// box returns the cell range covering the logical rectangle, clamped to the grid.
func (c *Canvas) box(x0, y0, x1, y1 float64) (c0, r0, c1, r1 int) {
	c0, r0 = c.ToCell(Point{X: x0, Y: y0})
	c1, r1 = c.ToCell(Point{X: x1, Y: y1})
	c0, r0 = max(c0, 0), max(r0, 0)
	c1, r1 = min(c1, c.cols-1), min(r1, c.rows-1)
	return
}

func (c *Canvas) FillCircle(ctr Point, r float64, fill Color) {
	c0, r0, c1, r1 := c.box(ctr.X-r, ctr.Y-r, ctr.X+r, ctr.Y+r)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if c.ToLogical(col, row).Dist(ctr) <= r {
				*c.claim(col, row) = cell{ch: ' ', bg: fill}
			}
		}
	}
}

func (c *Canvas) StrokeCircle(ctr Point, r float64, st Stroke) {
	c0, r0, c1, r1 := c.box(ctr.X-r-c.sx, ctr.Y-r-c.sy, ctr.X+r+c.sx, ctr.Y+r+c.sy)
	heavy := st.Width >= selectedStrokeWidth
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			x0, y0 := float64(col)*c.sx, float64(row)*c.sy
			x1, y1 := x0+c.sx, y0+c.sy
			nx, ny := math.Max(x0, math.Min(ctr.X, x1)), math.Max(y0, math.Min(ctr.Y, y1))
			near := math.Hypot(nx-ctr.X, ny-ctr.Y)
			far := math.Hypot(math.Max(math.Abs(x0-ctr.X), math.Abs(x1-ctr.X)), math.Max(math.Abs(y0-ctr.Y), math.Abs(y1-ctr.Y)))
			if near > r || far < r {
				continue
			}
			mid := c.ToLogical(col, row)
			// the tangent is perpendicular to the radius through the cell
			g := glyph(-(mid.Y-ctr.Y)/c.sy, (mid.X-ctr.X)/c.sx, heavy)
			cl := c.claim(col, row)
			cl.ch, cl.fg = g, st.Color
		}
	}
}

// glyph picks a line character for direction (dx, dy) measured in cells.
func glyph(dx, dy float64, heavy bool) rune {
	ax, ay := math.Abs(dx), math.Abs(dy)
	switch {
	case ax < ay/2:
		if heavy {
			return '┃'
		}
		return '│'
	case ay < ax/2:
		if heavy {
			return '━'
		}
		return '─'
	case dx*dy > 0:
		return '╲'
	default:
		return '╱'
	}
}

func (c *Canvas) Line(a, b Point, st Stroke) {
	length := a.Dist(b)
	step := math.Min(c.sx, c.sy) / 2
	n := int(math.Ceil(length/step)) + 1
	translucent := st.Alpha > 0 && st.Alpha < 1
	g := glyph((b.X-a.X)/c.sx, (b.Y-a.Y)/c.sy, st.Width >= overlayWidth)
	for i := 0; i < n; i++ {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		col, row := c.ToCell(Point{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t})
		cl := c.at(col, row)
		if cl == nil {
			continue
		}
		if translucent {
			cl.bg = st.Color
			continue
		}
		cl = c.claim(col, row)
		cl.ch, cl.fg = g, st.Color
	}
}

func (c *Canvas) rectCells(r Rect) (c0, r0, c1, r1 int) {
	// cells whose centres fall inside [x, x+w) × [y, y+h)
	c0 = int(math.Ceil(r.X/c.sx - 0.5))
	r0 = int(math.Ceil(r.Y/c.sy - 0.5))
	c1 = int(math.Ceil((r.X+r.W)/c.sx-0.5)) - 1
	r1 = int(math.Ceil((r.Y+r.H)/c.sy-0.5)) - 1
	return max(c0, 0), max(r0, 0), min(c1, c.cols-1), min(r1, c.rows-1)
}

func (c *Canvas) FillRect(r Rect, fill Color) {
	c0, r0, c1, r1 := c.rectCells(r)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			*c.claim(col, row) = cell{ch: ' ', bg: fill}
		}
	}
}

// StrokeRect brackets the rectangle's left and right edges; a one-row box has no room for more.
func (c *Canvas) StrokeRect(r Rect, st Stroke) {
	c0, r0, c1, r1 := c.rectCells(r)
	if c1 <= c0 {
		return
	}
	for row := r0; row <= r1; row++ {
		for col, ch := range map[int]rune{c0: '[', c1: ']'} {
			cl := c.claim(col, row)
			cl.ch, cl.fg = ch, st.Color
		}
	}
}

func (c *Canvas) Text(s string, at Point, st TextStyle) {
	w := runewidth.StringWidth(s)
	_, row := c.ToCell(at)
	col := int(math.Floor(at.X / c.sx))
	if st.Align == AlignCenter {
		col = int(math.Round(at.X/c.sx - float64(w)/2))
	}
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if cl := c.claim(col, row); cl != nil {
			cl.ch, cl.fg, cl.bold = r, st.Color, st.Font.Bold
			if rw == 2 {
				if next := c.claim(col+1, row); next != nil {
					next.ch, next.cont = ' ', true
				} else {
					// no room for the right half at the grid edge
					cl.ch = ' '
				}
			}
		}
		col += rw
	}
}

// Plain returns the grid's characters without styling, one line per row.
func (c *Canvas) Plain() string {
	var b strings.Builder
	for row := 0; row < c.rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < c.cols; col++ {
			if cl := c.at(col, row); !cl.cont {
				b.WriteRune(cl.ch)
			}
		}
	}
	return b.String()
}

// View renders the grid with lipgloss, joining runs of identically styled cells.
func (c *Canvas) View() string {
	var b strings.Builder
	for row := 0; row < c.rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		var run strings.Builder
		var cur *cell
		flush := func() {
			if cur != nil && run.Len() > 0 {
				b.WriteString(styleFor(*cur).Render(run.String()))
			}
			run.Reset()
		}
		for col := 0; col < c.cols; col++ {
			cl := c.at(col, row)
			if cl.cont {
				continue
			}
			if cur == nil || cur.fg != cl.fg || cur.bg != cl.bg || cur.bold != cl.bold {
				flush()
				cur = cl
			}
			run.WriteRune(cl.ch)
		}
		flush()
	}
	return b.String()
}

func styleFor(cl cell) lipgloss.Style {
	s := lipgloss.NewStyle().Bold(cl.bold)
	if cl.fg != "" {
		s = s.Foreground(lipgloss.Color(cl.fg))
	}
	if cl.bg != "" {
		s = s.Background(lipgloss.Color(cl.bg))
	}
	return s
}

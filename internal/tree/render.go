package tree

import (
	"strings"

	"github.com/DaanHessen/bayes-tree/internal/engine"
)

// Highlight selects optional emphasis drawn over the tree.
type Highlight int

const (
	HighlightNone Highlight = iota
	// HighlightForward retraces the paths into the evidence-positive leaves, the two terms of P(B).
	HighlightForward
)

// Theme holds the colours that do not come from the scenario.
type Theme struct {
	RootFill       Color
	NodeStroke     Color
	NodeText       Color
	LabelFill      Color
	LabelText      Color
	LeafLine       Color
	Hint           Color
	Leaf           [4]Color // semantic colours in engine.AllLeaves order
	SelectedFill   Color
	SelectedStroke Color
	SelectedText   Color
	Overlay        Color
}

func DefaultTheme() Theme {
	return Theme{
		RootFill:       "#333333",
		NodeStroke:     "#333333",
		NodeText:       "#ffffff",
		LabelFill:      "#ffffff",
		LabelText:      "#333333",
		LeafLine:       "#666666",
		Hint:           "#666666",
		Leaf:           [4]Color{"#e74c3c", "#95a5a6", "#f39c12", "#27ae60"},
		SelectedFill:   "#ffff00",
		SelectedStroke: "#ff6600",
		SelectedText:   "#333333",
		Overlay:        "#ffff00",
	}
}

const (
	nodeStrokeWidth     = 2
	selectedStrokeWidth = 4
	branchWidth         = 3
	overlayWidth        = 6
	overlayAlpha        = 0.8
	labelBoxW           = 50
	labelBoxH           = 16
	lineGap             = 6
	hintGap             = 15
	HintText            = "click"
)

// Render paints the whole tree. selected may be empty.
func Render(s Surface, g Geometry, sc engine.Scenario, selected engine.LeafID, hl Highlight, th Theme) {
	s.Clear()

	drawNode(s, g.Root, th.RootFill, th)
	for _, n := range g.Causes {
		drawNode(s, n, Color(sc.Color1), th)
	}
	for _, b := range g.RootBranches {
		drawBranch(s, b, Color(sc.Color1), th)
	}
	for _, n := range g.Evidence {
		drawNode(s, n, Color(sc.Color2), th)
	}
	for _, b := range g.CauseBranches {
		drawBranch(s, b, Color(sc.Color2), th)
	}
	for i, l := range g.Leaves {
		drawLeaf(s, l, th.Leaf[i], l.ID == selected, th)
	}
	for _, b := range g.LeafBranches {
		drawBranch(s, b, th.LeafLine, th)
	}

	if hl == HighlightForward {
		st := Stroke{Color: th.Overlay, Width: overlayWidth, Alpha: overlayAlpha}
		for i, id := range engine.AllLeaves {
			if !id.Evidence() {
				continue
			}
			for _, b := range []Branch{g.RootBranches[i/2], g.CauseBranches[i], g.LeafBranches[i]} {
				s.Line(b.From, b.To, st)
			}
		}
	}
}

func drawNode(s Surface, n Node, fill Color, th Theme) {
	s.FillCircle(n.Center, n.Radius, fill)
	s.StrokeCircle(n.Center, n.Radius, Stroke{Color: th.NodeStroke, Width: nodeStrokeWidth})
	st := TextStyle{Font: n.Font, Color: th.NodeText, Align: AlignCenter}
	lines := wrapLabel(n.Label)
	if len(lines) == 1 {
		s.Text(lines[0], n.Center, st)
		return
	}
	s.Text(lines[0], Point{X: n.Center.X, Y: n.Center.Y - lineGap}, st)
	s.Text(lines[1], Point{X: n.Center.X, Y: n.Center.Y + lineGap}, st)
}

// wrapLabel splits multi-word labels over two lines: the first two words, then the rest.
// Two-word labels put one word per line.
func wrapLabel(label string) []string {
	words := strings.Fields(label)
	switch {
	case len(words) > 2:
		return []string{strings.Join(words[:2], " "), strings.Join(words[2:], " ")}
	case len(words) == 2:
		return words
	default:
		return []string{label}
	}
}

func drawBranch(s Surface, b Branch, c Color, th Theme) {
	s.Line(b.From, b.To, Stroke{Color: c, Width: branchWidth})
	if b.Label == "" {
		return
	}
	mid := Point{X: (b.From.X + b.To.X) / 2, Y: (b.From.Y + b.To.Y) / 2}
	box := Rect{X: mid.X - labelBoxW/2, Y: mid.Y - labelBoxH/2, W: labelBoxW, H: labelBoxH}
	s.FillRect(box, th.LabelFill)
	s.StrokeRect(box, Stroke{Color: c, Width: 1})
	s.Text(b.Label, mid, TextStyle{Font: BranchFont, Color: th.LabelText, Align: AlignCenter})
}

func drawLeaf(s Surface, l Leaf, c Color, selected bool, th Theme) {
	fill, stroke, width, text := c, th.NodeStroke, float64(nodeStrokeWidth), th.NodeText
	if selected {
		fill, stroke, width, text = th.SelectedFill, th.SelectedStroke, selectedStrokeWidth, th.SelectedText
	}
	s.FillCircle(l.Center, l.Radius, fill)
	s.StrokeCircle(l.Center, l.Radius, Stroke{Color: stroke, Width: width})
	s.Text(l.Text, l.Center, TextStyle{Font: LeafFont, Color: text, Align: AlignCenter})
	if !selected {
		hint := Point{X: l.Center.X, Y: l.Center.Y + l.Radius + hintGap}
		s.Text(HintText, hint, TextStyle{Font: HintFont, Color: th.Hint, Align: AlignCenter})
	}
}

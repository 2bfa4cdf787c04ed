package tree

import (
	"fmt"
	"math"

	"github.com/DaanHessen/bayes-tree/internal/engine"
)

// Fixed level heights of the 1-2-4-4 fan, in logical pixels from the top of the tree.
const (
	RootY     = 50
	CauseY    = 150
	EvidenceY = 300
	LeafY     = 450

	// DesignHeight is the height the level constants were laid out for. Taller
	// surfaces centre the tree vertically.
	DesignHeight = 500

	CauseOffset    = 120
	EvidenceOffset = 80

	MinRadius = 4
)

// Per-level radius padding added to half the widest label. Crowded levels get negative padding.
const (
	rootPad     = 10
	causePad    = -5
	evidencePad = -15
	leafPad     = 8
)

const RootLabel = "Population"

var (
	RootFont     = Font{Size: 14, Bold: true}
	CauseFont    = Font{Size: 12, Bold: true}
	EvidenceFont = Font{Size: 11, Bold: true}
	LeafFont     = Font{Size: 12, Bold: true}
	BranchFont   = Font{Size: 11, Bold: true}
	HintFont     = Font{Size: 10}
)

// Node is a labelled circle.
type Node struct {
	Label  string
	Center Point
	Radius float64
	Font   Font
}

// Leaf is a selectable bottom node showing a joint probability.
type Leaf struct {
	ID     engine.LeafID
	Center Point
	Radius float64
	Text   string
}

// Branch is a segment between two nodes, clipped to both circles. Label may be empty.
type Branch struct {
	From, To Point
	Label    string
}

// Geometry is the complete layout of one scenario on one surface size.
// Causes are ordered present/absent; Evidence, Leaves and their branches follow engine.AllLeaves.
type Geometry struct {
	Root     Node
	Causes   [2]Node
	Evidence [4]Node
	Leaves   [4]Leaf

	RootBranches  [2]Branch
	CauseBranches [4]Branch
	LeafBranches  [4]Branch
}

// LeafList returns the leaves in draw order.
func (g Geometry) LeafList() []Leaf { return g.Leaves[:] }

// Leaf returns the geometry of leaf id.
func (g Geometry) Leaf(id engine.LeafID) Leaf { return g.Leaves[id.Index()] }

func pct1(v float64) string { return fmt.Sprintf("%.1f%%", v*100) }

// LeafText is the label drawn inside a leaf: the joint probability as a percentage.
func LeafText(v float64) string { return fmt.Sprintf("%.3f%%", v*100) }

// levelRadius is ceil(half the widest label) plus pad, never below MinRadius.
func levelRadius(m TextMeasurer, f Font, pad float64, labels ...string) float64 {
	r := math.Inf(-1)
	for _, l := range labels {
		r = math.Max(r, math.Ceil(m.MeasureText(l, f)/2)+pad)
	}
	if r < MinRadius || math.IsNaN(r) {
		return MinRadius
	}
	return r
}

// clip shortens the segment between two circle centres so it starts and ends on the circles.
func clip(a Point, ra float64, b Point, rb float64) (Point, Point) {
	d := a.Dist(b)
	if d <= ra+rb {
		mid := Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
		return mid, mid
	}
	ux, uy := (b.X-a.X)/d, (b.Y-a.Y)/d
	return Point{X: a.X + ux*ra, Y: a.Y + uy*ra}, Point{X: b.X - ux*rb, Y: b.Y - uy*rb}
}

func connect(from, to Node, label string) Branch {
	a, b := clip(from.Center, from.Radius, to.Center, to.Radius)
	return Branch{From: a, To: b, Label: label}
}

// Layout computes the tree for scenario s on a w×h surface. It is a pure function of its inputs.
func Layout(s engine.Scenario, w, h float64, m TextMeasurer) Geometry {
	p := s.P
	top := 0.0
	if h > DesignHeight {
		top = (h - DesignHeight) / 2
	}
	cx := w / 2

	rootR := levelRadius(m, RootFont, rootPad, RootLabel)
	causeR := levelRadius(m, CauseFont, causePad, s.Event, s.NoEvent())
	evR := levelRadius(m, EvidenceFont, evidencePad, s.Test, s.NoTest())
	joints := p.Joints()
	leafTexts := [4]string{}
	for i, j := range joints {
		leafTexts[i] = LeafText(j)
	}
	leafR := levelRadius(m, LeafFont, leafPad, leafTexts[:]...)

	var g Geometry
	g.Root = Node{Label: RootLabel, Center: Point{X: cx, Y: top + RootY}, Radius: rootR, Font: RootFont}
	causeLabels := [2]string{s.Event, s.NoEvent()}
	causeX := [2]float64{cx - CauseOffset, cx + CauseOffset}
	for i := range g.Causes {
		g.Causes[i] = Node{Label: causeLabels[i], Center: Point{X: causeX[i], Y: top + CauseY}, Radius: causeR, Font: CauseFont}
	}
	g.RootBranches[0] = connect(g.Root, g.Causes[0], pct1(p.A))
	g.RootBranches[1] = connect(g.Root, g.Causes[1], pct1(p.NotA))

	conditionals := [4]float64{p.BGivenA, p.NotBGivenA, p.BGivenNotA, p.NotBGivenNotA}
	for i, id := range engine.AllLeaves {
		parent := g.Causes[i/2]
		x := parent.Center.X - EvidenceOffset
		label := s.Test
		if !id.Evidence() {
			x = parent.Center.X + EvidenceOffset
			label = s.NoTest()
		}
		g.Evidence[i] = Node{Label: label, Center: Point{X: x, Y: top + EvidenceY}, Radius: evR, Font: EvidenceFont}
		g.CauseBranches[i] = connect(parent, g.Evidence[i], pct1(conditionals[i]))

		g.Leaves[i] = Leaf{ID: id, Center: Point{X: x, Y: top + LeafY}, Radius: leafR, Text: leafTexts[i]}
		leafNode := Node{Center: g.Leaves[i].Center, Radius: leafR}
		g.LeafBranches[i] = connect(g.Evidence[i], leafNode, "")
	}
	return g
}

package tree

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/DaanHessen/bayes-tree/internal/engine"
)

// fixedMeasurer gives every rune the same width.
type fixedMeasurer float64

func (m fixedMeasurer) MeasureText(s string, _ Font) float64 {
	return float64(len([]rune(s))) * float64(m)
}

func medical(t *testing.T) engine.Scenario {
	t.Helper()
	sc, err := engine.NewScenario(engine.DefaultCatalog()[0])
	if err != nil {
		t.Fatalf("new scenario: %v", err)
	}
	return sc
}

func TestLayoutIsPure(t *testing.T) {
	sc := medical(t)
	a := Layout(sc, 800, 500, fixedMeasurer(7))
	b := Layout(sc, 800, 500, fixedMeasurer(7))
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("layout differs between calls (-first +second):\n%s", diff)
	}
}

func TestLayoutRadii(t *testing.T) {
	sc := medical(t)
	g := Layout(sc, 800, 500, fixedMeasurer(7))

	// "Population" is 10 runes: ceil(70/2) + 10.
	if g.Root.Radius != 45 {
		t.Fatalf("root radius = %v, want 45", g.Root.Radius)
	}
	// widest leaf text is "97.020%": ceil(49/2) + 8.
	for _, l := range g.Leaves {
		if l.Radius != 33 {
			t.Fatalf("leaf %s radius = %v, want 33", l.ID, l.Radius)
		}
	}
	if g.Leaf(engine.LeafNoCauseNoEvidence).Text != "97.020%" {
		t.Fatalf("leaf text = %q", g.Leaf(engine.LeafNoCauseNoEvidence).Text)
	}
}

func TestLayoutRadiusClamp(t *testing.T) {
	g := Layout(medical(t), 800, 500, fixedMeasurer(0))
	for _, n := range g.Causes {
		if n.Radius != MinRadius {
			t.Fatalf("cause radius = %v, want %v", n.Radius, MinRadius)
		}
	}
	for _, n := range g.Evidence {
		if n.Radius != MinRadius {
			t.Fatalf("evidence radius = %v, want %v", n.Radius, MinRadius)
		}
	}
}

func TestLayoutCentering(t *testing.T) {
	sc := medical(t)

	g := Layout(sc, 800, 500, fixedMeasurer(7))
	if g.Root.Center != (Point{X: 400, Y: RootY}) {
		t.Fatalf("root centre = %+v", g.Root.Center)
	}
	if g.Causes[0].Center.X != 400-CauseOffset || g.Causes[1].Center.X != 400+CauseOffset {
		t.Fatalf("causes not symmetric: %+v", g.Causes)
	}
	wantX := [4]float64{200, 360, 440, 600}
	for i, l := range g.Leaves {
		if l.Center.X != wantX[i] || l.Center.Y != LeafY {
			t.Fatalf("leaf %d centre = %+v", i, l.Center)
		}
		if l.ID != engine.AllLeaves[i] {
			t.Fatalf("leaf %d id = %s", i, l.ID)
		}
	}

	tall := Layout(sc, 800, 700, fixedMeasurer(7))
	if tall.Root.Center.Y != RootY+100 || tall.Leaves[0].Center.Y != LeafY+100 {
		t.Fatalf("tall surface not centred: root %v leaf %v", tall.Root.Center.Y, tall.Leaves[0].Center.Y)
	}
}

func TestBranchesTouchCircles(t *testing.T) {
	g := Layout(medical(t), 800, 500, fixedMeasurer(7))
	onCircle := func(p, c Point, r float64) bool { return math.Abs(p.Dist(c)-r) < 1e-9 }

	for i, b := range g.RootBranches {
		if !onCircle(b.From, g.Root.Center, g.Root.Radius) || !onCircle(b.To, g.Causes[i].Center, g.Causes[i].Radius) {
			t.Fatalf("root branch %d endpoints off circle: %+v", i, b)
		}
	}
	for i, b := range g.CauseBranches {
		parent := g.Causes[i/2]
		if !onCircle(b.From, parent.Center, parent.Radius) || !onCircle(b.To, g.Evidence[i].Center, g.Evidence[i].Radius) {
			t.Fatalf("cause branch %d endpoints off circle: %+v", i, b)
		}
	}
	for i, b := range g.LeafBranches {
		if b.Label != "" {
			t.Fatalf("leaf branch %d has label %q", i, b.Label)
		}
		if !onCircle(b.To, g.Leaves[i].Center, g.Leaves[i].Radius) {
			t.Fatalf("leaf branch %d endpoint off circle", i)
		}
	}
	if g.RootBranches[0].Label != "1.0%" || g.RootBranches[1].Label != "99.0%" {
		t.Fatalf("root branch labels = %q %q", g.RootBranches[0].Label, g.RootBranches[1].Label)
	}
	if g.CauseBranches[0].Label != "95.0%" || g.CauseBranches[3].Label != "98.0%" {
		t.Fatalf("cause branch labels = %q %q", g.CauseBranches[0].Label, g.CauseBranches[3].Label)
	}
}

func TestClipOverlapping(t *testing.T) {
	a, b := clip(Point{X: 0, Y: 0}, 10, Point{X: 12, Y: 0}, 10)
	if a != b || a != (Point{X: 6, Y: 0}) {
		t.Fatalf("overlapping circles clip to %+v %+v, want midpoint", a, b)
	}
}

func TestWrapLabel(t *testing.T) {
	cases := map[string][]string{
		"Disease":             {"Disease"},
		"No Rain":             {"No", "Rain"},
		"No Positive Test":    {"No Positive", "Test"},
		"Contains 'Free' now": {"Contains 'Free'", "now"},
	}
	for in, want := range cases {
		if diff := cmp.Diff(want, wrapLabel(in)); diff != "" {
			t.Fatalf("wrapLabel(%q) (-want +got):\n%s", in, diff)
		}
	}
}

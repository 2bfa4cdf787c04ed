package tree

import "github.com/DaanHessen/bayes-tree/internal/engine"

// HitTest returns the first leaf, in draw order, whose circle contains p.
func HitTest(p Point, leaves []Leaf) (engine.LeafID, bool) {
	for _, l := range leaves {
		if p.Dist(l.Center) <= l.Radius {
			return l.ID, true
		}
	}
	return "", false
}

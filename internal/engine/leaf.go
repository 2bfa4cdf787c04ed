package engine

import "fmt"

// LeafDescription explains which path a leaf sits on and how its joint probability is formed.
type LeafDescription struct {
	Path    string
	Formula string
}

// DescribeLeaf returns the path and product formula of leaf l in scenario s.
func DescribeLeaf(s Scenario, l LeafID) LeafDescription {
	e, t := s.Event, s.Test
	switch l {
	case LeafCauseEvidence:
		return LeafDescription{
			Path:    fmt.Sprintf("%s → %s", e, t),
			Formula: fmt.Sprintf("P(%s AND %s) = P(%s) × P(%s|%s)", e, t, e, t, e),
		}
	case LeafCauseNoEvidence:
		return LeafDescription{
			Path:    fmt.Sprintf("%s → No %s", e, t),
			Formula: fmt.Sprintf("P(%s AND not %s) = P(%s) × P(not %s|%s)", e, t, e, t, e),
		}
	case LeafNoCauseEvidence:
		return LeafDescription{
			Path:    fmt.Sprintf("No %s → %s", e, t),
			Formula: fmt.Sprintf("P(not %s AND %s) = P(not %s) × P(%s|not %s)", e, t, e, t, e),
		}
	case LeafNoCauseNoEvidence:
		return LeafDescription{
			Path:    fmt.Sprintf("No %s → No %s", e, t),
			Formula: fmt.Sprintf("P(not %s AND not %s) = P(not %s) × P(not %s|not %s)", e, t, e, t, e),
		}
	}
	panic("engine: unknown leaf " + string(l))
}

package engine

import (
	"gonum.org/v1/gonum/floats"
)

// Probabilities holds the twelve quantities derived from a template.
// A is the cause event, B the evidence.
type Probabilities struct {
	A             float64 // P(A)
	NotA          float64 // P(¬A)
	BGivenA       float64 // P(B|A), sensitivity
	BGivenNotA    float64 // P(B|¬A)
	NotBGivenA    float64 // P(¬B|A)
	NotBGivenNotA float64 // P(¬B|¬A), specificity
	AAndB         float64
	AAndNotB      float64
	NotAAndB      float64
	NotAAndNotB   float64
	B             float64 // marginal P(B)
	AGivenB       float64 // posterior P(A|B)
}

// Derive computes the derived quantities by total probability and Bayes' theorem.
func Derive(t Template) Probabilities {
	var p Probabilities
	p.A = t.BaseRate
	p.NotA = 1 - p.A
	p.BGivenA = t.Sensitivity
	p.BGivenNotA = 1 - t.Specificity
	p.NotBGivenA = 1 - p.BGivenA
	p.NotBGivenNotA = t.Specificity

	p.AAndB = p.A * p.BGivenA
	p.AAndNotB = p.A * p.NotBGivenA
	p.NotAAndB = p.NotA * p.BGivenNotA
	p.NotAAndNotB = p.NotA * p.NotBGivenNotA

	p.B = p.AAndB + p.NotAAndB
	p.AGivenB = p.AAndB / p.B
	return p
}

// Joints returns the four joint probabilities in leaf draw order.
func (p Probabilities) Joints() [4]float64 {
	return [4]float64{p.AAndB, p.AAndNotB, p.NotAAndB, p.NotAAndNotB}
}

// Joint returns the joint probability at a leaf.
func (p Probabilities) Joint(l LeafID) float64 {
	switch l {
	case LeafCauseEvidence:
		return p.AAndB
	case LeafCauseNoEvidence:
		return p.AAndNotB
	case LeafNoCauseEvidence:
		return p.NotAAndB
	case LeafNoCauseNoEvidence:
		return p.NotAAndNotB
	}
	panic("engine: unknown leaf " + string(l))
}

// JointSum is the sum of the four joints; 1 up to floating-point error.
func (p Probabilities) JointSum() float64 {
	j := p.Joints()
	return floats.Sum(j[:])
}

// Scenario is one generated round's parameters and derived values. Treat as immutable.
type Scenario struct {
	Template
	P Probabilities
}

// NoEvent and NoTest are the labels of the negated branches.
func (s Scenario) NoEvent() string { return "No " + s.Event }
func (s Scenario) NoTest() string { return "No " + s.Test }

// NewScenario validates t and computes its derived probabilities.
func NewScenario(t Template) (Scenario, error) {
	if err := t.Validate(); err != nil {
		return Scenario{}, err
	}
	return Scenario{Template: t, P: Derive(t)}, nil
}

// Generate draws one template uniformly from the catalog.
func Generate(rng Rand, c Catalog) (Scenario, error) {
	if len(c) == 0 {
		return Scenario{}, ErrEmptyCatalog
	}
	return NewScenario(c[rng.Intn(len(c))])
}

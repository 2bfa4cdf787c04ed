package engine

import (
	"errors"
	"math"
	"testing"
)

func medicalTemplate() Template {
	return Template{Name: "Medical Test", Event: "Has Disease", Test: "Tests Positive", BaseRate: 0.01, Sensitivity: 0.95, Specificity: 0.98}
}

func TestDeriveMedicalExample(t *testing.T) {
	p := Derive(medicalTemplate())
	if math.Abs(p.B-0.0293) > 1e-12 {
		t.Fatalf("P(B) = %v, want 0.0293", p.B)
	}
	if got := r3(p.AGivenB); got != "0.324" {
		t.Fatalf("P(A|B) = %s, want 0.324", got)
	}
	if p.AGivenB != p.AAndB/p.B {
		t.Fatalf("posterior drifted from P(A∧B)/P(B)")
	}
	if p.NotBGivenNotA != 0.98 || p.BGivenA != 0.95 {
		t.Fatalf("sensitivity/specificity not carried through: %+v", p)
	}
}

// randomRate draws a rate strictly inside (0,1).
func randomRate(st *Stream) float64 {
	return 0.001 + 0.998*float64(st.Intn(1_000_000))/1_000_000
}

func TestJointsSumToOne(t *testing.T) {
	seed, _ := NewSeed("joint-sum")
	st := seed.Stream("rates")
	for i := 0; i < 1000; i++ {
		tpl := Template{
			Name:        "random",
			BaseRate:    randomRate(st),
			Sensitivity: randomRate(st),
			Specificity: randomRate(st),
		}
		sc, err := NewScenario(tpl)
		if err != nil {
			t.Fatalf("NewScenario(%+v): %v", tpl, err)
		}
		p := sc.P
		if d := math.Abs(p.JointSum() - 1); d > 1e-9 {
			t.Fatalf("joint sum off by %g for %+v", d, tpl)
		}
		if p.B != p.AAndB+p.NotAAndB {
			t.Fatalf("marginal is not P(A∧B)+P(¬A∧B) for %+v", tpl)
		}
		if p.AGivenB != p.AAndB/p.B {
			t.Fatalf("posterior is not P(A∧B)/P(B) for %+v", tpl)
		}
	}
}

func TestJointByLeafMatchesDrawOrder(t *testing.T) {
	p := Derive(medicalTemplate())
	joints := p.Joints()
	for i, l := range AllLeaves {
		if p.Joint(l) != joints[i] {
			t.Fatalf("leaf %s joint %v, want %v", l, p.Joint(l), joints[i])
		}
	}
}

func TestNewScenarioRejectsOutOfRangeRates(t *testing.T) {
	bad := []Template{
		{Name: "zero", BaseRate: 0, Sensitivity: 0.5, Specificity: 0.5},
		{Name: "one", BaseRate: 0.5, Sensitivity: 1, Specificity: 0.5},
		{Name: "negative", BaseRate: 0.5, Sensitivity: 0.5, Specificity: -0.1},
		{Name: "nan", BaseRate: math.NaN(), Sensitivity: 0.5, Specificity: 0.5},
	}
	for _, tpl := range bad {
		if _, err := NewScenario(tpl); !errors.Is(err, ErrRateOutOfRange) {
			t.Fatalf("%s: expected ErrRateOutOfRange, got %v", tpl.Name, err)
		}
	}
}

func TestGenerateEmptyCatalog(t *testing.T) {
	seed, _ := NewSeed("empty")
	if _, err := Generate(seed.Stream("s"), nil); !errors.Is(err, ErrEmptyCatalog) {
		t.Fatalf("expected ErrEmptyCatalog, got %v", err)
	}
}

func TestGenerateCoversCatalog(t *testing.T) {
	c := DefaultCatalog()
	seed, _ := NewSeed("cover")
	seen := map[string]int{}
	for i := 0; i < 300; i++ {
		sc, err := Generate(seed.Round(i, "scenario"), c)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		seen[sc.Name]++
	}
	for _, tpl := range c {
		if seen[tpl.Name] < 50 {
			t.Fatalf("template %q drawn %d times out of 300", tpl.Name, seen[tpl.Name])
		}
	}
}

func TestGenerateDeterministicPerSeed(t *testing.T) {
	c := DefaultCatalog()
	s1, _ := NewSeed("same")
	s2, _ := NewSeed("same")
	for i := 0; i < 20; i++ {
		a, _ := Generate(s1.Round(i, "scenario"), c)
		b, _ := Generate(s2.Round(i, "scenario"), c)
		if a != b {
			t.Fatalf("round %d differs: %q vs %q", i, a.Name, b.Name)
		}
	}
}

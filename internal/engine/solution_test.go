package engine

import (
	"math"
	"strconv"
	"strings"
	"testing"
)

func medicalScenario(t *testing.T) Scenario {
	t.Helper()
	sc, err := NewScenario(medicalTemplate())
	if err != nil {
		t.Fatal(err)
	}
	return sc
}

func questionOfType(t *testing.T, sc Scenario, qt QuestionType) Question {
	t.Helper()
	for _, q := range Questions(sc) {
		if q.Type == qt {
			return q
		}
	}
	t.Fatalf("no question of type %s", qt)
	return Question{}
}

func TestQuestionsText(t *testing.T) {
	sc := medicalScenario(t)
	qs := Questions(sc)
	if len(qs) != len(AllQuestionTypes) {
		t.Fatalf("got %d questions, want %d", len(qs), len(AllQuestionTypes))
	}
	fwd := qs[0]
	if fwd.Text != "What's the probability of having has disease given tests positive?" {
		t.Fatalf("unexpected forward text: %q", fwd.Text)
	}
	if fwd.Answer != sc.P.AGivenB {
		t.Fatalf("forward answer %v, want %v", fwd.Answer, sc.P.AGivenB)
	}
	comp := qs[1]
	if !strings.Contains(comp.Text, "not having has disease") {
		t.Fatalf("unexpected complement text: %q", comp.Text)
	}
	if comp.Answer != 1-sc.P.AGivenB {
		t.Fatalf("complement answer %v, want %v", comp.Answer, 1-sc.P.AGivenB)
	}
}

func TestNewQuestionPicksBothTypes(t *testing.T) {
	sc := medicalScenario(t)
	seed, _ := NewSeed("questions")
	seen := map[QuestionType]int{}
	for i := 0; i < 200; i++ {
		seen[NewQuestion(sc, seed.Round(i, "question")).Type]++
	}
	for _, qt := range AllQuestionTypes {
		if seen[qt] < 60 {
			t.Fatalf("question type %s picked %d/200 times", qt, seen[qt])
		}
	}
}

func TestExplainForwardSteps(t *testing.T) {
	sc := medicalScenario(t)
	sol := Explain(sc, questionOfType(t, sc, QuestionForward))
	if len(sol.Steps) != 3 {
		t.Fatalf("forward solution has %d steps, want 3", len(sol.Steps))
	}
	marginal := sol.Steps[0].Lines
	if got, want := marginal[1], "= (0.950 × 0.010) + (0.020 × 0.990)"; got != want {
		t.Fatalf("substitution line %q, want %q", got, want)
	}
	if got, want := marginal[len(marginal)-1], "= 0.029"; got != want {
		t.Fatalf("marginal total %q, want %q", got, want)
	}
	if got, want := sol.Steps[2].Lines[0], "0.010 / 0.029 = 0.324"; got != want {
		t.Fatalf("bayes line %q, want %q", got, want)
	}
	if sol.Answer != "P(Has Disease|Tests Positive) = 0.324" {
		t.Fatalf("unexpected answer line %q", sol.Answer)
	}
	if sol.Value != sc.P.AGivenB || sol.Denominator != sc.P.B {
		t.Fatalf("full precision values not carried: %+v", sol)
	}
}

// The displayed numerator and denominator are rounded independently, so re-dividing the
// strings only agrees with the displayed posterior up to the rounding of its inputs.
func TestExplainForwardDisplayedValuesConsistent(t *testing.T) {
	for _, tpl := range DefaultCatalog() {
		sc, _ := NewScenario(tpl)
		sol := Explain(sc, questionOfType(t, sc, QuestionForward))
		parts := strings.Fields(sol.Steps[2].Lines[0]) // "num / den = post"
		num, _ := strconv.ParseFloat(parts[0], 64)
		den, _ := strconv.ParseFloat(parts[2], 64)
		post, _ := strconv.ParseFloat(parts[4], 64)
		if math.Abs(num-sol.Numerator) > 0.0005+1e-12 || math.Abs(den-sol.Denominator) > 0.0005+1e-12 {
			t.Fatalf("%s: displayed %v/%v too far from %v/%v", tpl.Name, num, den, sol.Numerator, sol.Denominator)
		}
		if math.Abs(post-sol.Numerator/sol.Denominator) > 0.0005+1e-12 {
			t.Fatalf("%s: displayed posterior %v vs %v", tpl.Name, post, sol.Value)
		}
		// worst case error of num/den when both carry ±0.0005
		bound := (0.0005*den + 0.0005*num) / (den * (den - 0.0005))
		if math.Abs(num/den-post) > bound+0.0005 {
			t.Fatalf("%s: %v/%v = %v inconsistent with displayed %v", tpl.Name, num, den, num/den, post)
		}
	}
}

func TestExplainComplement(t *testing.T) {
	sc := medicalScenario(t)
	sol := Explain(sc, questionOfType(t, sc, QuestionComplement))
	if len(sol.Steps) != 1 {
		t.Fatalf("complement solution has %d steps, want 1", len(sol.Steps))
	}
	if got, want := sol.Steps[0].Lines[0], "P(not Has Disease|Tests Positive) = 1 - 0.324 = 0.676"; got != want {
		t.Fatalf("complement line %q, want %q", got, want)
	}
	if sol.Value != 1-sc.P.AGivenB {
		t.Fatalf("complement value %v", sol.Value)
	}
}

func TestDescribeLeafCoversAllLeaves(t *testing.T) {
	sc := medicalScenario(t)
	for _, l := range AllLeaves {
		d := DescribeLeaf(sc, l)
		if d.Path == "" || d.Formula == "" {
			t.Fatalf("leaf %s has empty description", l)
		}
		hasNoCause := strings.HasPrefix(d.Path, "No ")
		if hasNoCause == l.Cause() {
			t.Fatalf("leaf %s path %q disagrees with Cause()=%v", l, d.Path, l.Cause())
		}
		if strings.HasSuffix(d.Path, "→ No Tests Positive") == l.Evidence() {
			t.Fatalf("leaf %s path %q disagrees with Evidence()=%v", l, d.Path, l.Evidence())
		}
		if l.Index() < 0 {
			t.Fatalf("leaf %s missing from AllLeaves", l)
		}
	}
}

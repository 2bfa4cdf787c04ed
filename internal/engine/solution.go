package engine

import (
	"fmt"

	"gonum.org/v1/gonum/floats/scalar"
)

// Step is one stage of a worked solution: a heading, a sentence of context and the
// formula lines to display.
type Step struct {
	Title  string
	Detail string
	Lines  []string
}

// Solution is the worked derivation of a question's answer. Display strings are rounded to
// 3 places independently; Numerator, Denominator and Value keep full precision.
type Solution struct {
	Type         QuestionType
	Problem      string
	Formula      string
	Substitution string
	Steps        []Step
	Answer       string

	Numerator   float64
	Denominator float64
	Value       float64
}

// r3 formats v rounded to 3 decimal places.
func r3(v float64) string { return fmt.Sprintf("%.3f", scalar.Round(v, 3)) }

// Explain builds the worked solution for q on s.
func Explain(s Scenario, q Question) Solution {
	switch q.Type {
	case QuestionForward:
		return explainForward(s, q)
	case QuestionComplement:
		return explainComplement(s, q)
	}
	panic("engine: unknown question type " + string(q.Type))
}

func explainForward(s Scenario, q Question) Solution {
	p := s.P
	e, t := s.Event, s.Test
	num := p.BGivenA * p.A
	notTerm := p.BGivenNotA * p.NotA

	marginal := Step{
		Title:  fmt.Sprintf("Step 1: Calculate the Denominator (Total Probability of %s)", t),
		Detail: fmt.Sprintf("We need the probability of observing %s in general, regardless of whether %s happens or not. This is called the marginal probability.", t, e),
		Lines: []string{
			fmt.Sprintf("P(%s) = P(%s|%s) × P(%s) + P(%s|not %s) × P(not %s)", t, t, e, e, t, e, e),
			fmt.Sprintf("= (%s × %s) + (%s × %s)", r3(p.BGivenA), r3(p.A), r3(p.BGivenNotA), r3(p.NotA)),
			fmt.Sprintf("= %s + %s", r3(num), r3(notTerm)),
			fmt.Sprintf("= %s", r3(p.B)),
		},
	}
	joint := Step{
		Title:  "Step 2: Calculate the Numerator (Joint Probability)",
		Detail: fmt.Sprintf("This is the probability that both %s and %s occur together.", e, t),
		Lines: []string{
			fmt.Sprintf("P(%s|%s) × P(%s) = %s × %s = %s", t, e, e, r3(p.BGivenA), r3(p.A), r3(num)),
		},
	}
	bayes := Step{
		Title:  "Step 3: Apply Bayes' Theorem",
		Detail: "Divide the numerator by the denominator to get the conditional probability.",
		Lines: []string{
			fmt.Sprintf("%s / %s = %s", r3(num), r3(p.B), r3(p.AGivenB)),
		},
	}
	return Solution{
		Type:         q.Type,
		Problem:      q.Text,
		Formula:      q.Formula,
		Substitution: fmt.Sprintf("P(%s|%s) = (%s × %s) / %s", e, t, r3(p.BGivenA), r3(p.A), r3(p.B)),
		Steps:        []Step{marginal, joint, bayes},
		Answer:       fmt.Sprintf("P(%s|%s) = %s", e, t, r3(p.AGivenB)),
		Numerator:    num,
		Denominator:  p.B,
		Value:        p.AGivenB,
	}
}

func explainComplement(s Scenario, q Question) Solution {
	p := s.P
	e, t := s.Event, s.Test
	v := 1 - p.AGivenB
	return Solution{
		Type:         q.Type,
		Problem:      q.Text,
		Formula:      q.Formula,
		Substitution: fmt.Sprintf("P(not %s|%s) = 1 - %s", e, t, r3(p.AGivenB)),
		Steps: []Step{{
			Title:  "Step 1: Apply the Complement Rule",
			Detail: fmt.Sprintf("Given %s, %s either happens or it does not, so the two conditional probabilities sum to 1.", t, e),
			Lines: []string{
				fmt.Sprintf("P(not %s|%s) = 1 - %s = %s", e, t, r3(p.AGivenB), r3(v)),
			},
		}},
		Answer:      fmt.Sprintf("P(not %s|%s) = %s", e, t, r3(v)),
		Numerator:   v,
		Denominator: 1,
		Value:       v,
	}
}

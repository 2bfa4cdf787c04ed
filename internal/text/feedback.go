package text

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/DaanHessen/bayes-tree/internal/engine"
)

// Feedback formats the short messages shown after a click or a submitted answer.
type Feedback struct {
	p *message.Printer
}

func NewFeedback(tag language.Tag) *Feedback {
	return &Feedback{p: message.NewPrinter(tag)}
}

// pct formats a probability as a percentage with three decimals.
func (f *Feedback) pct(v float64) string { return f.p.Sprintf("%.3f%%", v*100) }

func (f *Feedback) InvalidNumber() string {
	return "Please enter a valid number or percentage"
}

func (f *Feedback) AlreadyJudged() string {
	return "This round has been judged; the next scenario is on its way."
}

// Correct is the success message. answer is the rounded correct answer.
func (f *Feedback) Correct(answer float64) string {
	return f.p.Sprintf("🎉 Correct! The answer is %s", f.pct(answer))
}

// Incorrect explains a wrong answer: what was entered, what was expected and how to get there.
func (f *Feedback) Incorrect(s engine.Scenario, q engine.Question, ev engine.Evaluation) string {
	e, t := s.Event, s.Test
	var b strings.Builder
	b.WriteString(f.p.Sprintf("❌ Incorrect. Your answer: %s\n\n", f.pct(ev.Parsed)))
	b.WriteString(f.p.Sprintf("The correct answer is %s\n\n", f.pct(ev.Correct)))
	switch q.Type {
	case engine.QuestionForward:
		b.WriteString("Using Bayes' Theorem:\n")
		b.WriteString(f.p.Sprintf("P(%s|%s) = P(%s|%s) × P(%s) / P(%s)\n", e, t, t, e, e, t))
		b.WriteString(f.p.Sprintf("= %s × %s / %s\n", f.pct(s.P.BGivenA), f.pct(s.P.A), f.pct(s.P.B)))
	case engine.QuestionComplement:
		b.WriteString("Using the complement rule:\n")
		b.WriteString(f.p.Sprintf("P(not %s|%s) = 1 - P(%s|%s)\n", e, t, e, t))
		b.WriteString(f.p.Sprintf("= 100%% - %s\n", f.pct(s.P.AGivenB)))
	}
	b.WriteString("= " + f.pct(ev.Correct))
	return b.String()
}

// LeafInfo describes the path to a leaf and how its joint probability is formed.
func (f *Feedback) LeafInfo(d engine.LeafDescription) string {
	return f.p.Sprintf("Path: %s\nThis node represents %s", d.Path, d.Formula)
}

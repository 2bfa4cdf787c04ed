package text

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/text/language"

	"github.com/DaanHessen/bayes-tree/internal/engine"
)

func medical(t *testing.T) engine.Scenario {
	t.Helper()
	sc, err := engine.NewScenario(engine.DefaultCatalog()[0])
	if err != nil {
		t.Fatalf("new scenario: %v", err)
	}
	return sc
}

func question(t *testing.T, sc engine.Scenario, typ engine.QuestionType) engine.Question {
	t.Helper()
	for _, q := range engine.Questions(sc) {
		if q.Type == typ {
			return q
		}
	}
	t.Fatalf("no %s question", typ)
	return engine.Question{}
}

func TestCorrectFeedback(t *testing.T) {
	f := NewFeedback(language.English)
	if got, want := f.Correct(0.324), "🎉 Correct! The answer is 32.400%"; got != want {
		t.Fatalf("Correct = %q, want %q", got, want)
	}
}

func TestIncorrectFeedback(t *testing.T) {
	f := NewFeedback(language.English)
	sc := medical(t)

	fwd := question(t, sc, engine.QuestionForward)
	ev, err := engine.Evaluate("50%", fwd.Answer)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	msg := f.Incorrect(sc, fwd, ev)
	for _, want := range []string{
		"Your answer: 50.000%",
		"The correct answer is 32.400%",
		"Using Bayes' Theorem",
		"P(Has Disease|Tests Positive) = P(Tests Positive|Has Disease) × P(Has Disease) / P(Tests Positive)",
		"= 95.000% × 1.000% / 2.930%",
	} {
		if !strings.Contains(msg, want) {
			t.Fatalf("forward explanation missing %q:\n%s", want, msg)
		}
	}

	cmp := question(t, sc, engine.QuestionComplement)
	ev, _ = engine.Evaluate("0.1", cmp.Answer)
	msg = f.Incorrect(sc, cmp, ev)
	for _, want := range []string{"complement rule", "= 100% - 32.423%", "The correct answer is 67.600%"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("complement explanation missing %q:\n%s", want, msg)
		}
	}
}

func TestLeafInfo(t *testing.T) {
	f := NewFeedback(language.English)
	d := engine.DescribeLeaf(medical(t), engine.LeafCauseNoEvidence)
	msg := f.LeafInfo(d)
	if !strings.HasPrefix(msg, "Path: Has Disease → No Tests Positive\n") {
		t.Fatalf("leaf info = %q", msg)
	}
	if !strings.Contains(msg, "P(Has Disease AND not Tests Positive)") {
		t.Fatalf("leaf info lacks formula: %q", msg)
	}
}

func TestSolutionMarkdownSections(t *testing.T) {
	sc := medical(t)
	sol := engine.Explain(sc, question(t, sc, engine.QuestionForward))
	md := SolutionMarkdown(sol)
	last := -1
	for _, h := range []string{"## Problem", "## Formula", "## Substitution", "### Step 1", "### Step 2", "### Step 3", "## Final Answer"} {
		i := strings.Index(md, h)
		if i <= last {
			t.Fatalf("section %q missing or out of order:\n%s", h, md)
		}
		last = i
	}
}

type failingRenderer struct{}

func (failingRenderer) Render(string) (string, error) { return "", errors.New("no terminal") }

func TestFallbackRenderer(t *testing.T) {
	r := WithFallback(failingRenderer{}, NewPlainRenderer())
	out, err := r.Render("## Title\n**bold** `code`")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "Title\nbold code" {
		t.Fatalf("fallback output = %q", out)
	}

	r = WithFallback(nil, NewPlainRenderer())
	if out, _ := r.Render("# x"); out != "x" {
		t.Fatalf("nil primary output = %q", out)
	}
}

func TestRenderSolutionPlain(t *testing.T) {
	sc := medical(t)
	sol := engine.Explain(sc, question(t, sc, engine.QuestionComplement))
	out := RenderSolution(NewPlainRenderer(), sol)
	if strings.Contains(out, "##") || !strings.Contains(out, "Final Answer") {
		t.Fatalf("plain solution = %q", out)
	}
}

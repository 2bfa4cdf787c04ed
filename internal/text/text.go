// Package text turns engine results into the prose and markdown the interface displays.
package text

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/DaanHessen/bayes-tree/internal/engine"
)

// SolutionMarkdown lays out a worked solution as markdown.
func SolutionMarkdown(sol engine.Solution) string {
	var b strings.Builder
	b.WriteString("## Problem\n")
	b.WriteString(sol.Problem + "\n\n")
	b.WriteString("## Formula\n")
	fmt.Fprintf(&b, "`%s`\n\n", sol.Formula)
	b.WriteString("## Substitution\n")
	fmt.Fprintf(&b, "`%s`\n\n", sol.Substitution)
	for _, st := range sol.Steps {
		fmt.Fprintf(&b, "### %s\n", st.Title)
		b.WriteString(st.Detail + "\n\n")
		for _, l := range st.Lines {
			fmt.Fprintf(&b, "    %s\n", l)
		}
		b.WriteString("\n")
	}
	b.WriteString("## Final Answer\n")
	fmt.Fprintf(&b, "**%s**\n", sol.Answer)
	return b.String()
}

// Renderer turns markdown into terminal output.
type Renderer interface {
	Render(md string) (string, error)
}

type glamourRenderer struct {
	tr *glamour.TermRenderer
}

// NewGlamourRenderer wraps glamour with the given word-wrap width.
func NewGlamourRenderer(width int) (Renderer, error) {
	tr, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(width))
	if err != nil {
		return nil, err
	}
	return &glamourRenderer{tr: tr}, nil
}

func (g *glamourRenderer) Render(md string) (string, error) { return g.tr.Render(md) }

var (
	headingRe  = regexp.MustCompile(`(?m)^#{1,6} `)
	emphasisRe = regexp.MustCompile("\\*\\*|`")
)

// plainRenderer strips markdown syntax; used when styled output is unavailable.
type plainRenderer struct{}

func NewPlainRenderer() Renderer { return plainRenderer{} }

func (plainRenderer) Render(md string) (string, error) {
	out := headingRe.ReplaceAllString(md, "")
	return emphasisRe.ReplaceAllString(out, ""), nil
}

// WithFallback returns a renderer that prefers primary and falls back on error.
func WithFallback(primary, fallback Renderer) Renderer { return &fallbackRenderer{p: primary, f: fallback} }

type fallbackRenderer struct{ p, f Renderer }

func (r *fallbackRenderer) Render(md string) (string, error) {
	if r.p == nil {
		return r.f.Render(md)
	}
	if s, err := r.p.Render(md); err == nil {
		return s, nil
	}
	return r.f.Render(md)
}

// RenderSolution renders sol with r, returning the raw markdown if rendering fails.
func RenderSolution(r Renderer, sol engine.Solution) string {
	md := SolutionMarkdown(sol)
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}

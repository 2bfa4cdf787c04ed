package ui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/DaanHessen/bayes-tree/internal/engine"
	"github.com/DaanHessen/bayes-tree/internal/game"
	"github.com/DaanHessen/bayes-tree/internal/text"
	"github.com/DaanHessen/bayes-tree/internal/tree"
	"github.com/DaanHessen/bayes-tree/internal/util"
)

const (
	topBarRows    = 1
	bottomBarRows = 2
	sidebarWide   = 46
	sidebarNarrow = 32
	minCanvasCols = 10
	minCanvasRows = 5
)

// nextRoundMsg fires when a judged round's delay has elapsed.
type nextRoundMsg struct{ round uuid.UUID }

// Options wires the interface to its collaborators.
type Options struct {
	Config   util.Config
	Catalog  engine.Catalog
	Seed     engine.Seed
	Journal  game.Journal // nil disables journaling
	Logger   *slog.Logger
	Renderer text.Renderer // nil uses glamour with a plain-text fallback

	// SessionID tags journal rows; nil picks a fresh one.
	SessionID uuid.UUID
}

type model struct {
	ctx    context.Context
	ctrl   *game.Controller
	panel  *panel
	input  textinput.Model
	canvas *tree.Canvas
	cfg    util.Config
	theme  string
	log    *slog.Logger
	width  int
	height int
}

func newModel(ctx context.Context, opts Options) (model, error) {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	r := opts.Renderer
	if r == nil {
		g, err := text.NewGlamourRenderer(sidebarWide - 4)
		if err != nil {
			opts.Logger.Warn("glamour unavailable, using plain solutions", "err", err)
		}
		r = text.WithFallback(g, text.NewPlainRenderer())
	}
	p := &panel{renderer: r}
	theme := paletteName(opts.Config.Theme)
	ctrl, err := game.New(ctx, game.Options{
		Catalog:        opts.Catalog,
		Seed:           opts.Seed,
		Sink:           p,
		Journal:        opts.Journal,
		Logger:         opts.Logger,
		Theme:          treeTheme(paletteFor(theme)),
		CorrectDelay:   opts.Config.CorrectDelay,
		IncorrectDelay: opts.Config.IncorrectDelay,
		SessionID:      opts.SessionID,
	})
	if err != nil {
		return model{}, err
	}

	in := textinput.New()
	in.Placeholder = "0.324 or 32.4%"
	in.Prompt = "Answer> "
	in.CharLimit = 32
	in.Width = 24
	in.Focus()

	return model{
		ctx:   ctx,
		ctrl:  ctrl,
		panel: p,
		input: in,
		cfg:   opts.Config,
		theme: theme,
		log:   opts.Logger,
	}, nil
}

func (m model) Init() tea.Cmd { return textinput.Blink }

func (m model) sidebarWidth() int {
	if m.width < 110 {
		return sidebarNarrow
	}
	return sidebarWide
}

// resize rebuilds the canvas for the terminal size and hands the new surface size to the controller.
func (m *model) resize(w, h int) {
	m.width, m.height = w, h
	cols := max(w-m.sidebarWidth(), minCanvasCols)
	rows := max(h-topBarRows-bottomBarRows, minCanvasRows)
	m.canvas = tree.NewCanvas(cols, rows, m.cfg.CellWidth, m.cfg.CellHeight)
	lw, lh := m.canvas.Size()
	m.ctrl.Resize(lw, lh, m.canvas)
}

// canvasPoint converts a terminal position to logical tree coordinates.
func (m model) canvasPoint(x, y int) (tree.Point, bool) {
	if m.canvas == nil {
		return tree.Point{}, false
	}
	col, row := x, y-topBarRows
	cols, rows := m.canvas.Dims()
	if col < 0 || row < 0 || col >= cols || row >= rows {
		return tree.Point{}, false
	}
	// aim at the centre of the clicked cell
	return tree.DeviceToLogical(m.canvas, float64(col)+0.5, float64(row)+0.5), true
}

func scheduleAdvance(p *game.Pending) tea.Cmd {
	id := p.Round
	return tea.Tick(p.Delay, func(time.Time) tea.Msg { return nextRoundMsg{round: id} })
}

func (m *model) startRound() {
	if err := m.ctrl.NewRound(); err != nil {
		m.log.Error("new round", "err", err)
		m.panel.Feedback(game.FeedbackError, err.Error())
		return
	}
	m.panel.clear()
	m.input.SetValue("")
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if p, ok := m.canvasPoint(msg.X, msg.Y); ok {
			m.ctrl.Click(p)
		}
		return m, nil

	case nextRoundMsg:
		advanced, err := m.ctrl.Advance(msg.round)
		if err != nil {
			m.log.Error("advance round", "err", err)
			m.panel.Feedback(game.FeedbackError, err.Error())
		}
		if advanced {
			m.panel.clear()
			m.input.SetValue("")
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			p, err := m.ctrl.Submit(m.input.Value())
			if err != nil {
				return m, nil
			}
			return m, scheduleAdvance(p)
		case "ctrl+n":
			m.startRound()
			return m, nil
		case "ctrl+s":
			m.ctrl.ToggleSolution()
			return m, nil
		case "tab":
			m.ctrl.CycleSelection()
			return m, nil
		case "ctrl+t":
			m.theme = nextThemeName(m.theme, 1)
			m.ctrl.SetTheme(treeTheme(paletteFor(m.theme)))
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) View() string {
	if m.canvas == nil {
		return "loading…"
	}
	pal := paletteFor(m.theme)
	m.ctrl.Paint(m.canvas)

	_, rows := m.canvas.Dims()
	side := lipgloss.NewStyle().
		Width(m.sidebarWidth()-2).
		Height(rows-2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(pal.Border).
		Padding(0, 1).
		MaxHeight(rows).
		Render(m.buildSidebar(pal))
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.canvas.View(), side)
	return lipgloss.JoinVertical(lipgloss.Left, m.renderTopBar(pal), body, m.renderBottomBar(pal))
}

func (m model) renderTopBar(pal palette) string {
	snap := m.ctrl.Snapshot()
	sc := snap.Round.Scenario
	left := fmt.Sprintf("%s %s • Round %d • Streak %d", sc.Emoji, sc.Name, snap.Round.N, snap.Session.Streak)
	right := summaryLine(snap.Summary) + "  [" + m.theme + "]"
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return lipgloss.NewStyle().Bold(true).Foreground(pal.Accent).Render(left + strings.Repeat(" ", gap) + right)
}

func summaryLine(s game.Summary) string {
	if s.Answered == 0 {
		return "no answers yet"
	}
	line := fmt.Sprintf("%d/%d correct • best %d", s.Correct, s.Answered, s.BestStreak)
	if mean, err := s.MeanError(); err == nil {
		line += fmt.Sprintf(" • mean err %.3f", mean)
	}
	return line
}

func (m model) buildSidebar(pal palette) string {
	snap := m.ctrl.Snapshot()
	q := snap.Round.Question
	title := lipgloss.NewStyle().Bold(true).Foreground(pal.Accent)
	muted := lipgloss.NewStyle().Foreground(pal.Muted)
	width := m.sidebarWidth() - 4

	var b strings.Builder
	b.WriteString(title.Render("Question") + "\n")
	b.WriteString(lipgloss.NewStyle().Width(width).Foreground(pal.Text).Render(q.Text) + "\n")
	b.WriteString(muted.Width(width).Render(q.Formula) + "\n\n")

	if m.panel.msg != "" {
		b.WriteString(lipgloss.NewStyle().Width(width).Foreground(m.panel.color(pal)).Render(m.panel.msg) + "\n\n")
	}
	if m.panel.solution != nil {
		b.WriteString(title.Render("Solution") + "\n")
		b.WriteString(m.panel.rendered)
	}
	return b.String()
}

func (m model) renderBottomBar(pal palette) string {
	help := "[Enter] submit  [Tab] select leaf  [Ctrl+S] solution  [Ctrl+N] new round  [Ctrl+T] theme  [Esc] quit"
	if lipgloss.Width(help) > m.width && m.width > 10 {
		help = help[:m.width-3] + "..."
	}
	return m.input.View() + "\n" + lipgloss.NewStyle().Foreground(pal.Muted).Render(help)
}

// panel is the presentation sink: the latest feedback and the rendered solution.
type panel struct {
	kind     game.FeedbackKind
	msg      string
	solution *engine.Solution
	rendered string
	renderer text.Renderer
}

func (p *panel) Feedback(kind game.FeedbackKind, msg string) { p.kind, p.msg = kind, msg }

func (p *panel) Solution(sol *engine.Solution) {
	p.solution, p.rendered = sol, ""
	if sol != nil {
		p.rendered = text.RenderSolution(p.renderer, *sol)
	}
}

func (p *panel) clear() { p.kind, p.msg = "", "" }

func (p *panel) color(pal palette) lipgloss.Color {
	switch p.kind {
	case game.FeedbackSuccess:
		return pal.Success
	case game.FeedbackError:
		return pal.AccentAlt
	default:
		return pal.Warning
	}
}

// Package game owns the quiz session: the current round, the learner's streak and selection,
// and the deferred move to the next round.
package game

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/language"

	"github.com/DaanHessen/bayes-tree/internal/engine"
	"github.com/DaanHessen/bayes-tree/internal/text"
	"github.com/DaanHessen/bayes-tree/internal/tree"
)

const (
	DefaultCorrectDelay   = 2 * time.Second
	DefaultIncorrectDelay = 5 * time.Second

	journalTimeout = 2 * time.Second
)

// Options configures a Controller. Catalog, Seed and Sink are required.
type Options struct {
	Catalog engine.Catalog
	Seed    engine.Seed
	Sink    Sink
	Journal Journal // nil disables journaling
	Logger  *slog.Logger
	Theme   tree.Theme

	CorrectDelay   time.Duration
	IncorrectDelay time.Duration

	Language language.Tag
	Now      func() time.Time

	// SessionID tags journal rows; a fresh id is used when nil.
	SessionID uuid.UUID
}

// Controller drives one quiz session. It is not safe for concurrent use; the event loop that
// owns it must serialise all calls.
type Controller struct {
	ctx     context.Context
	opts    Options
	log     *slog.Logger
	fb      *text.Feedback
	session uuid.UUID

	round   Round
	state   Session
	summary Summary

	geom    tree.Geometry
	w, h    float64
	hasGeom bool
}

// Deal returns the scenario and question of round n for seed. The same inputs always deal the
// same round.
func Deal(seed engine.Seed, c engine.Catalog, n int) (engine.Scenario, engine.Question, error) {
	sc, err := engine.Generate(seed.Round(n, "scenario"), c)
	if err != nil {
		return engine.Scenario{}, engine.Question{}, err
	}
	return sc, engine.NewQuestion(sc, seed.Round(n, "question")), nil
}

// New validates the catalog and deals the first round.
func New(ctx context.Context, opts Options) (*Controller, error) {
	if err := opts.Catalog.Validate(); err != nil {
		return nil, err
	}
	if opts.Sink == nil {
		return nil, errors.New("game: nil sink")
	}
	if opts.Seed.Text == "" {
		return nil, errors.New("game: zero seed")
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.CorrectDelay <= 0 {
		opts.CorrectDelay = DefaultCorrectDelay
	}
	if opts.IncorrectDelay <= 0 {
		opts.IncorrectDelay = DefaultIncorrectDelay
	}
	if opts.Language == language.Und {
		opts.Language = language.English
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Theme == (tree.Theme{}) {
		opts.Theme = tree.DefaultTheme()
	}
	if opts.SessionID == uuid.Nil {
		opts.SessionID = uuid.New()
	}
	c := &Controller{
		ctx:     ctx,
		opts:    opts,
		fb:      text.NewFeedback(opts.Language),
		session: opts.SessionID,
	}
	c.log = opts.Logger.With("session", c.session.String())
	if err := c.NewRound(); err != nil {
		return nil, err
	}
	return c, nil
}

// NewRound replaces the scenario and question, clearing selection, solution and any pending
// transition.
func (c *Controller) NewRound() error {
	n := c.round.N + 1
	sc, q, err := Deal(c.opts.Seed, c.opts.Catalog, n)
	if err != nil {
		return err
	}
	c.round = Round{ID: uuid.New(), N: n, Scenario: sc, Question: q}
	c.state = Session{Streak: c.state.Streak}
	c.opts.Sink.Solution(nil)
	c.hasGeom = false
	c.log.Info("round started", "round", n, "scenario", sc.Name, "question", string(q.Type))
	return nil
}

// Resize records the surface size and recomputes the tree geometry.
func (c *Controller) Resize(w, h float64, m tree.TextMeasurer) {
	c.w, c.h = w, h
	c.relayout(m)
}

func (c *Controller) relayout(m tree.TextMeasurer) {
	c.geom = tree.Layout(c.round.Scenario, c.w, c.h, m)
	c.hasGeom = true
}

// Paint lays out the tree for s if needed and renders it.
func (c *Controller) Paint(s tree.Surface) {
	if w, h := s.Size(); !c.hasGeom || w != c.w || h != c.h {
		c.Resize(w, h, s)
	}
	hl := tree.HighlightNone
	if c.state.ShowingSolution && c.round.Question.Type == engine.QuestionForward {
		hl = tree.HighlightForward
	}
	tree.Render(s, c.geom, c.round.Scenario, c.state.Selected, hl, c.opts.Theme)
}

// SetTheme changes the colours used by Paint.
func (c *Controller) SetTheme(th tree.Theme) { c.opts.Theme = th }

// Geometry returns the last computed layout and whether one exists for the current round.
func (c *Controller) Geometry() (tree.Geometry, bool) { return c.geom, c.hasGeom }

// Click handles a pointer press at p in logical coordinates. It reports whether a leaf was hit.
func (c *Controller) Click(p tree.Point) bool {
	if !c.hasGeom {
		return false
	}
	id, ok := tree.HitTest(p, c.geom.LeafList())
	if !ok {
		return false
	}
	c.toggleLeaf(id)
	return true
}

// CycleSelection selects the leaf after the current one in draw order, wrapping around.
func (c *Controller) CycleSelection() {
	next := engine.AllLeaves[0]
	if c.state.Selected != "" {
		next = engine.AllLeaves[(c.state.Selected.Index()+1)%len(engine.AllLeaves)]
	}
	c.toggleLeaf(next)
}

func (c *Controller) toggleLeaf(id engine.LeafID) {
	if c.state.Selected == id {
		c.state.Selected = ""
		return
	}
	c.state.Selected = id
	c.opts.Sink.Feedback(FeedbackInfo, c.fb.LeafInfo(engine.DescribeLeaf(c.round.Scenario, id)))
}

// Submit judges raw against the current question. On a verdict it returns the pending
// transition the caller must schedule. Unparseable input changes nothing.
func (c *Controller) Submit(raw string) (*Pending, error) {
	if c.state.Judged {
		c.opts.Sink.Feedback(FeedbackInfo, c.fb.AlreadyJudged())
		return nil, ErrRoundJudged
	}
	q := c.round.Question
	ev, err := engine.Evaluate(raw, q.Answer)
	if err != nil {
		var pe *engine.ParseError
		if errors.As(err, &pe) {
			c.opts.Sink.Feedback(FeedbackError, c.fb.InvalidNumber())
		}
		return nil, err
	}

	delay := c.opts.CorrectDelay
	if ev.IsCorrect {
		c.state.Streak++
		c.opts.Sink.Feedback(FeedbackSuccess, c.fb.Correct(ev.Correct))
	} else {
		c.state.Streak = 0
		delay = c.opts.IncorrectDelay
		c.opts.Sink.Feedback(FeedbackError, c.fb.Incorrect(c.round.Scenario, q, ev))
	}
	c.state.Judged = true
	c.state.Pending = &Pending{Round: c.round.ID, Delay: delay}
	c.summary.record(ev, c.state.Streak)
	c.log.Info("answer judged", "round", c.round.N, "input", raw, "parsed", ev.Parsed, "correct", ev.IsCorrect, "streak", c.state.Streak)
	c.journal(raw, ev)

	p := *c.state.Pending
	return &p, nil
}

func (c *Controller) journal(raw string, ev engine.Evaluation) {
	if c.opts.Journal == nil {
		return
	}
	ctx, cancel := context.WithTimeout(c.ctx, journalTimeout)
	defer cancel()
	r := RoundResult{
		SessionID: c.session,
		RoundID:   c.round.ID,
		Round:     c.round.N,
		Seed:      c.opts.Seed.Text,
		Scenario:  c.round.Scenario.Name,
		Question:  c.round.Question.Type,
		Input:     raw,
		Parsed:    ev.Parsed,
		Correct:   ev.Correct,
		IsCorrect: ev.IsCorrect,
		Streak:    c.state.Streak,
		JudgedAt:  c.opts.Now(),
	}
	if err := c.opts.Journal.Record(ctx, r); err != nil {
		c.log.Warn("journal write failed", "round", c.round.N, "err", err)
	}
}

// ToggleSolution shows or hides the worked solution of the current question.
func (c *Controller) ToggleSolution() {
	c.state.ShowingSolution = !c.state.ShowingSolution
	if !c.state.ShowingSolution {
		c.opts.Sink.Solution(nil)
		return
	}
	sol := engine.Explain(c.round.Scenario, c.round.Question)
	c.opts.Sink.Solution(&sol)
}

// Advance performs the pending transition for round id. Transitions for rounds that are no
// longer current, or that were never scheduled, are dropped. It reports whether a new round
// was dealt.
func (c *Controller) Advance(id uuid.UUID) (bool, error) {
	if c.state.Pending == nil || c.state.Pending.Round != id {
		c.log.Debug("stale transition dropped", "round", c.round.N, "for", id.String())
		return false, nil
	}
	if err := c.NewRound(); err != nil {
		return false, err
	}
	return true, nil
}

// SessionID identifies this controller's session in logs and the journal.
func (c *Controller) SessionID() uuid.UUID { return c.session }

func (c *Controller) Summary() Summary { return c.summary }

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() Snapshot {
	st := c.state
	if st.Pending != nil {
		p := *st.Pending
		st.Pending = &p
	}
	return Snapshot{Round: c.round, Session: st, Summary: c.summary}
}

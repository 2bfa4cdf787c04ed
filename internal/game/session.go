package game

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/DaanHessen/bayes-tree/internal/engine"
)

// ErrRoundJudged is returned when an answer is submitted for a round that already has a verdict.
var ErrRoundJudged = errors.New("round already judged")

type FeedbackKind string

const (
	FeedbackSuccess FeedbackKind = "success"
	FeedbackError   FeedbackKind = "error"
	FeedbackInfo    FeedbackKind = "info"
)

// Sink receives everything the controller wants shown. It never reports back.
type Sink interface {
	Feedback(kind FeedbackKind, msg string)
	// Solution shows sol, or hides the solution panel when sol is nil.
	Solution(sol *engine.Solution)
}

// Journal records judged rounds. Failures are logged and otherwise ignored.
type Journal interface {
	Record(ctx context.Context, r RoundResult) error
}

// RoundResult is one judgement as written to the journal.
type RoundResult struct {
	SessionID uuid.UUID
	RoundID   uuid.UUID
	Round     int
	Seed      string
	Scenario  string
	Question  engine.QuestionType
	Input     string
	Parsed    float64
	Correct   float64
	IsCorrect bool
	Streak    int
	JudgedAt  time.Time
}

// Pending is the deferred move to the next round scheduled after a judgement. The caller fires
// Advance(Round) after Delay; the controller ignores it if that round is no longer current.
type Pending struct {
	Round uuid.UUID
	Delay time.Duration
}

// Round is the scenario and question currently on the board.
type Round struct {
	ID       uuid.UUID
	N        int
	Scenario engine.Scenario
	Question engine.Question
}

// Session is the learner-facing state owned by the controller.
type Session struct {
	Streak          int
	Selected        engine.LeafID // empty when no leaf is selected
	ShowingSolution bool
	Judged          bool
	Pending         *Pending
}

// Snapshot is a read-only copy of the controller state.
type Snapshot struct {
	Round   Round
	Session Session
	Summary Summary
}

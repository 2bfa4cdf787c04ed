package engine

import (
	"fmt"
	"strings"
)

// Question is the prompt for one round and its correct answer.
type Question struct {
	Text    string
	Type    QuestionType
	Answer  float64
	Formula string
}

// Questions builds both candidate questions for a scenario, in AllQuestionTypes order.
func Questions(s Scenario) []Question {
	event, test := strings.ToLower(s.Event), strings.ToLower(s.Test)
	return []Question{
		{
			Text:    fmt.Sprintf("What's the probability of having %s given %s?", event, test),
			Type:    QuestionForward,
			Answer:  s.P.AGivenB,
			Formula: fmt.Sprintf("P(%s|%s) = P(%s|%s) × P(%s) / P(%s)", s.Event, s.Test, s.Test, s.Event, s.Event, s.Test),
		},
		{
			Text:    fmt.Sprintf("What's the probability of not having %s given %s?", event, test),
			Type:    QuestionComplement,
			Answer:  1 - s.P.AGivenB,
			Formula: fmt.Sprintf("P(not %s|%s) = 1 - P(%s|%s)", s.Event, s.Test, s.Event, s.Test),
		},
	}
}

// NewQuestion picks one of the candidate questions uniformly.
func NewQuestion(s Scenario, rng Rand) Question {
	qs := Questions(s)
	return qs[rng.Intn(len(qs))]
}

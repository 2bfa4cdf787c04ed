package engine

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats/scalar"
)

// Tolerance is the absolute difference accepted between a rounded answer and the rounded truth.
const Tolerance = 0.01

// gridSlack absorbs binary representation error between values already rounded to 3 places.
const gridSlack = 1e-9

// ParseError reports input that is not a number or percentage.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("enter a valid number or percentage (got %q)", e.Input)
}

// Evaluation is a judged answer. Parsed and Correct are both rounded to 3 places.
type Evaluation struct {
	Parsed    float64
	Correct   float64
	IsCorrect bool
}

// Diff is the absolute difference between the rounded answer and the rounded truth.
func (e Evaluation) Diff() float64 { return math.Abs(e.Parsed - e.Correct) }

// ParseAnswer reads "0.32", ".32" or "32.4%" (percent is divided by 100).
func ParseAnswer(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	percent := strings.Contains(s, "%")
	if percent {
		s = strings.TrimSpace(strings.Replace(s, "%", "", 1))
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &ParseError{Input: raw}
	}
	if percent {
		v /= 100
	}
	return v, nil
}

// Evaluate parses raw and judges it against correct.
func Evaluate(raw string, correct float64) (Evaluation, error) {
	v, err := ParseAnswer(raw)
	if err != nil {
		return Evaluation{}, err
	}
	ev := Evaluation{
		Parsed:  scalar.Round(v, 3),
		Correct: scalar.Round(correct, 3),
	}
	ev.IsCorrect = ev.Diff() <= Tolerance+gridSlack
	return ev, nil
}

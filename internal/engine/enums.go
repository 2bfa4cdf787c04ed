package engine

// String backed enums, stable for logs and the round journal.

type LeafID string
type QuestionType string

const (
	LeafCauseEvidence     LeafID = "cause_and_evidence"
	LeafCauseNoEvidence   LeafID = "cause_and_no_evidence"
	LeafNoCauseEvidence   LeafID = "no_cause_and_evidence"
	LeafNoCauseNoEvidence LeafID = "no_cause_and_no_evidence"
)

// AllLeaves lists the leaves in draw order: left to right along the bottom of the tree.
var AllLeaves = []LeafID{LeafCauseEvidence, LeafCauseNoEvidence, LeafNoCauseEvidence, LeafNoCauseNoEvidence}

// Cause reports whether the leaf lies under the cause-present branch.
func (l LeafID) Cause() bool {
	switch l {
	case LeafCauseEvidence, LeafCauseNoEvidence:
		return true
	case LeafNoCauseEvidence, LeafNoCauseNoEvidence:
		return false
	}
	panic("engine: unknown leaf " + string(l))
}

// Evidence reports whether the leaf lies under an evidence-present branch.
func (l LeafID) Evidence() bool {
	switch l {
	case LeafCauseEvidence, LeafNoCauseEvidence:
		return true
	case LeafCauseNoEvidence, LeafNoCauseNoEvidence:
		return false
	}
	panic("engine: unknown leaf " + string(l))
}

// Index is the leaf's position in AllLeaves.
func (l LeafID) Index() int {
	for i, v := range AllLeaves {
		if v == l {
			return i
		}
	}
	return -1
}

const (
	// QuestionForward asks for P(A|B).
	QuestionForward QuestionType = "bayes"
	// QuestionComplement asks for P(¬A|B) = 1 − P(A|B).
	QuestionComplement QuestionType = "bayes_not"
)

var AllQuestionTypes = []QuestionType{QuestionForward, QuestionComplement}

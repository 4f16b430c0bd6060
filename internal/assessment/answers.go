// internal/assessment/answers.go
package assessment

// AnswerSet is the in-progress mapping from question id to the selected
// option value for one stage. Entries are written one at a time as the user
// advances; revisiting a question overwrites the prior value.
//
// Record does not check that the value is one of the question's declared
// options: that is the caller's contract (the boundary that drives the flow
// only ever offers declared values). Scoring tolerates anything here; an
// undeclared or missing value simply contributes nothing to the numerator.
type AnswerSet map[string]string

// Record stores the selected option value for a question, replacing any
// earlier selection.
func (a AnswerSet) Record(questionID, optionValue string) {
	a[questionID] = optionValue
}

// Complete reports whether every question in the bank has an entry. Scores
// are only meant to be computed from complete sets, but the scorers do not
// enforce that.
func (a AnswerSet) Complete(bank []Question) bool {
	for _, q := range bank {
		if _, ok := a[q.ID]; !ok {
			return false
		}
	}
	return true
}

// Answered counts bank questions that have an entry.
func (a AnswerSet) Answered(bank []Question) int {
	n := 0
	for _, q := range bank {
		if _, ok := a[q.ID]; ok {
			n++
		}
	}
	return n
}

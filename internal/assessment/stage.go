// internal/assessment/stage.go
package assessment

// Stage identifies one phase of the five-step assessment flow.
type Stage string

const (
	StageIntroduction Stage = "introduction"
	StagePsychometric Stage = "psychometric"
	StageTechnical    Stage = "technical"
	StageWISCAR       Stage = "wiscar"
	StageResults      Stage = "results"
)

// stageOrder fixes the linear sequence. Navigation is forward on stage
// completion and backward without re-validation; skipping forward is not a
// representable transition, it just leaves no score behind for the
// aggregator to read.
var stageOrder = []Stage{
	StageIntroduction,
	StagePsychometric,
	StageTechnical,
	StageWISCAR,
	StageResults,
}

// ParseStage validates a stage name coming off the wire.
func ParseStage(s string) (Stage, bool) {
	for _, st := range stageOrder {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}

// Next returns the stage that follows, or false at the end of the sequence.
func (s Stage) Next() (Stage, bool) {
	for i, st := range stageOrder[:len(stageOrder)-1] {
		if st == s {
			return stageOrder[i+1], true
		}
	}
	return "", false
}

// Prev returns the preceding stage, or false at the start of the sequence.
func (s Stage) Prev() (Stage, bool) {
	for i, st := range stageOrder[1:] {
		if st == s {
			return stageOrder[i], true
		}
	}
	return "", false
}

// Scored reports whether the stage produces a score of its own. Introduction
// and Results carry no answer set.
func (s Stage) Scored() bool {
	return s == StagePsychometric || s == StageTechnical || s == StageWISCAR
}

func (s Stage) String() string { return string(s) }

package types

// Stage identifies one of the three sequential expert passes.
type Stage int

// Stage constants in execution order.
const (
	// StageFoundations is the first pass: core concepts and theory.
	StageFoundations Stage = iota + 1
	// StagePractical is the second pass: real-world application and industry insight.
	StagePractical
	// StageLearningPath is the final pass: a personalized study plan.
	StageLearningPath
)

// String returns the action tag recorded in the run log for the stage.
func (s Stage) String() string {
	switch s {
	case StageFoundations:
		return "initial_explanation"
	case StagePractical:
		return "practical_enhancement"
	case StageLearningPath:
		return "finalization"
	default:
		return "unknown"
	}
}

// StageResult is the outcome of a single expert pass. A stage always produces
// text: either generated content (Ok) or fallback text substituted when the
// model returned nothing or failed (Fallback). Experts never raise; the
// distinction is carried structurally so callers cannot forget the contract.
type StageResult struct {
	Text     string `json:"text"`
	Fallback bool   `json:"fallback"`
}

// OkResult wraps successfully generated text.
func OkResult(text string) StageResult {
	return StageResult{Text: text}
}

// FallbackResult wraps substituted fallback text.
func FallbackResult(text string) StageResult {
	return StageResult{Text: text, Fallback: true}
}

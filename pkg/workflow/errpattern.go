package workflow

// ErrorPattern labels a recognized workflow anomaly. Exactly one label is
// emitted per transcript.
type ErrorPattern string

const (
	// ErrImmediateSubmit: the agent used the single-step review tool
	// without ever opening a pending review, skipping the granular
	// workflow entirely.
	ErrImmediateSubmit ErrorPattern = "immediate_submit"
	// ErrMissingLineComments: a pending review was opened but no comment
	// was ever attached to it.
	ErrMissingLineComments ErrorPattern = "missing_line_comments"
	// ErrWrongOrder: the review was submitted before it was opened.
	ErrWrongOrder ErrorPattern = "wrong_order"
	// ErrNone: no recognized anomaly.
	ErrNone ErrorPattern = "none"
)

func (e ErrorPattern) String() string {
	return string(e)
}

type patternRule struct {
	label ErrorPattern
	match func(Sequence) bool
}

// patternRules is evaluated top-down; the first matching rule wins. A
// sequence can exhibit more than one anomaly, only the highest-priority
// one is reported.
var patternRules = []patternRule{
	{
		label: ErrImmediateSubmit,
		match: func(seq Sequence) bool {
			return seq.Contains(ToolCreateAndSubmit) && !seq.Contains(ToolCreatePendingReview)
		},
	},
	{
		label: ErrMissingLineComments,
		match: func(seq Sequence) bool {
			return seq.Contains(ToolCreatePendingReview) && !seq.Contains(ToolAddComment)
		},
	},
	{
		label: ErrWrongOrder,
		match: func(seq Sequence) bool {
			submit := seq.IndexOf(ToolSubmitReview)
			begin := seq.IndexOf(ToolCreatePendingReview)
			return submit >= 0 && begin >= 0 && submit < begin
		},
	},
}

// DetectErrorPattern triages the sequence against the known failure
// patterns. This is a heuristic triage, not an exhaustive diagnosis.
func DetectErrorPattern(seq Sequence) ErrorPattern {
	for _, rule := range patternRules {
		if rule.match(seq) {
			return rule.label
		}
	}
	return ErrNone
}

package eval

import (
	"github.com/revcheck/revcheck/pkg/transcript"
	"github.com/revcheck/revcheck/pkg/workflow"
)

// Result is the immutable per-transcript outcome. It is created once by
// EvaluateTranscript and never mutated afterwards.
type Result struct {
	TranscriptPath string                       `json:"transcriptPath"`
	Model          string                       `json:"model"`
	Task           workflow.Task                `json:"task"`
	Variant        workflow.InstructionsVariant `json:"instructionsVariant"`
	Success        bool                         `json:"success"`

	// ToolSequence is the extracted sequence serialized with the fixed
	// separator, so reports stay greppable.
	ToolSequence string                `json:"toolSequence"`
	ErrorPattern workflow.ErrorPattern `json:"errorType"`
	Notes        string                `json:"notes,omitempty"`
	Counts       workflow.ToolCounts   `json:"toolCounts"`
}

// Sequence re-parses the serialized tool sequence.
func (r *Result) Sequence() workflow.Sequence {
	return workflow.ParseSequence(r.ToolSequence)
}

// EvaluateTranscript runs the full per-transcript pipeline: extract the
// tool sequence, resolve metadata, then the three independent checks
// (success, counts, error pattern). It is deterministic and has no side
// effects; an unreadable or malformed document flows through as an empty
// sequence with sentinel metadata rather than an error.
func EvaluateTranscript(path string, data []byte) *Result {
	seq := transcript.ExtractSequence(data)
	meta := transcript.ResolveMetadata(path, data)

	return &Result{
		TranscriptPath: path,
		Model:          meta.Model,
		Task:           meta.Task,
		Variant:        meta.Variant,
		Success:        workflow.Succeeded(seq, meta.Task, meta.Variant),
		ToolSequence:   seq.Join(),
		ErrorPattern:   workflow.DetectErrorPattern(seq),
		Notes:          transcript.ExtractNotes(data),
		Counts:         workflow.CountTools(seq),
	}
}

// Package workflow classifies tool-call sequences against the expected
// GitHub pull-request review workflows.
package workflow

// Tool names the classifier matches against, verbatim, after any MCP
// namespace prefix has been stripped from the recorded call.
const (
	ToolCreatePendingReview = "create_pending_pull_request_review"
	ToolAddComment          = "add_comment_to_pending_review"
	ToolSubmitReview        = "submit_pending_pull_request_review"
	ToolCreateAndSubmit     = "create_and_submit_pull_request_review"
	ToolCreateIssue         = "create_issue"
	ToolCreatePullRequest   = "create_pull_request"
)

// Task identifies which expected workflow applies to a transcript.
type Task string

const (
	TaskPRReview        Task = "pr_review"
	TaskSimplePRComment Task = "simple_pr_comment"
	TaskIssueLinking    Task = "issue_linking"
	TaskDefault         Task = "default"
)

// ParseTask maps a raw label onto a known task, falling back to the
// default task for anything unrecognized.
func ParseTask(label string) Task {
	switch Task(label) {
	case TaskPRReview, TaskSimplePRComment, TaskIssueLinking:
		return Task(label)
	default:
		return TaskDefault
	}
}

func (t Task) String() string {
	return string(t)
}

// InstructionsVariant records whether the agent was given explicit workflow
// guidance before acting.
type InstructionsVariant string

const (
	WithInstructions    InstructionsVariant = "with_instructions"
	WithoutInstructions InstructionsVariant = "without_instructions"
	UnknownInstructions InstructionsVariant = "unknown"
)

// ParseInstructionsVariant maps a raw label onto a known variant, falling
// back to the unknown sentinel.
func ParseInstructionsVariant(label string) InstructionsVariant {
	switch InstructionsVariant(label) {
	case WithInstructions, WithoutInstructions:
		return InstructionsVariant(label)
	default:
		return UnknownInstructions
	}
}

func (v InstructionsVariant) String() string {
	return string(v)
}

// Succeeded decides whether the sequence satisfies the expected workflow
// for the task. It is a pure function of its inputs: presence checks only,
// so repeated calls to the same tool never change the verdict. Call order
// is judged separately by DetectErrorPattern.
func Succeeded(seq Sequence, task Task, variant InstructionsVariant) bool {
	switch task {
	case TaskSimplePRComment:
		return seq.Contains(ToolCreateAndSubmit)
	case TaskIssueLinking:
		return seq.ContainsAll(ToolCreateIssue, ToolCreatePullRequest)
	default:
		// pr_review and the default task share the instructions-gated
		// rules: strict three-step review when the agent was told the
		// workflow, any review activity otherwise.
		if variant == WithInstructions {
			return seq.ContainsAll(ToolCreatePendingReview, ToolAddComment, ToolSubmitReview)
		}
		return seq.ContainsAny(ToolCreatePendingReview, ToolAddComment, ToolSubmitReview, ToolCreateAndSubmit)
	}
}

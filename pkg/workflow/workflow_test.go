package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSucceededPRReviewWithInstructions(t *testing.T) {
	tests := map[string]struct {
		seq  Sequence
		want bool
	}{
		"all three steps in order": {
			seq:  Sequence{ToolCreatePendingReview, ToolAddComment, ToolSubmitReview},
			want: true,
		},
		"all three steps out of order": {
			seq:  Sequence{ToolSubmitReview, ToolCreatePendingReview, ToolAddComment},
			want: true,
		},
		"all three steps with repeats and noise": {
			seq:  Sequence{ToolCreatePendingReview, ToolAddComment, ToolAddComment, "get_pull_request", ToolSubmitReview},
			want: true,
		},
		"missing begin review": {
			seq:  Sequence{ToolAddComment, ToolSubmitReview},
			want: false,
		},
		"missing comment": {
			seq:  Sequence{ToolCreatePendingReview, ToolSubmitReview},
			want: false,
		},
		"missing submit": {
			seq:  Sequence{ToolCreatePendingReview, ToolAddComment},
			want: false,
		},
		"single-step tool does not satisfy the strict rule": {
			seq:  Sequence{ToolCreateAndSubmit},
			want: false,
		},
		"empty sequence": {
			seq:  Sequence{},
			want: false,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, Succeeded(tc.seq, TaskPRReview, WithInstructions))
		})
	}
}

func TestSucceededPRReviewPermissive(t *testing.T) {
	tests := map[string]struct {
		seq     Sequence
		variant InstructionsVariant
		want    bool
	}{
		"begin review alone": {
			seq:     Sequence{ToolCreatePendingReview},
			variant: WithoutInstructions,
			want:    true,
		},
		"comment alone": {
			seq:     Sequence{ToolAddComment},
			variant: WithoutInstructions,
			want:    true,
		},
		"submit alone": {
			seq:     Sequence{ToolSubmitReview},
			variant: WithoutInstructions,
			want:    true,
		},
		"single-step tool alone": {
			seq:     Sequence{ToolCreateAndSubmit},
			variant: WithoutInstructions,
			want:    true,
		},
		"unknown variant uses the permissive rule": {
			seq:     Sequence{ToolCreateAndSubmit},
			variant: UnknownInstructions,
			want:    true,
		},
		"no review tools at all": {
			seq:     Sequence{"get_pull_request", "list_pull_requests"},
			variant: WithoutInstructions,
			want:    false,
		},
		"empty sequence": {
			seq:     Sequence{},
			variant: WithoutInstructions,
			want:    false,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, Succeeded(tc.seq, TaskPRReview, tc.variant))
		})
	}
}

func TestSucceededSimplePRComment(t *testing.T) {
	tests := map[string]struct {
		seq  Sequence
		want bool
	}{
		"single-step tool present": {
			seq:  Sequence{ToolCreateAndSubmit},
			want: true,
		},
		"single-step tool among others": {
			seq:  Sequence{"get_pull_request", ToolCreateAndSubmit, ToolSubmitReview},
			want: true,
		},
		"full granular workflow does not count": {
			seq:  Sequence{ToolCreatePendingReview, ToolAddComment, ToolSubmitReview},
			want: false,
		},
		"empty sequence": {
			seq:  Sequence{},
			want: false,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			// The variant never matters for this task.
			assert.Equal(t, tc.want, Succeeded(tc.seq, TaskSimplePRComment, WithInstructions))
			assert.Equal(t, tc.want, Succeeded(tc.seq, TaskSimplePRComment, UnknownInstructions))
		})
	}
}

func TestSucceededIssueLinking(t *testing.T) {
	tests := map[string]struct {
		seq  Sequence
		want bool
	}{
		"issue then pull request": {
			seq:  Sequence{ToolCreateIssue, ToolCreatePullRequest},
			want: true,
		},
		"pull request then issue": {
			seq:  Sequence{ToolCreatePullRequest, ToolCreateIssue},
			want: true,
		},
		"issue only": {
			seq:  Sequence{ToolCreateIssue},
			want: false,
		},
		"pull request only": {
			seq:  Sequence{ToolCreatePullRequest},
			want: false,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, Succeeded(tc.seq, TaskIssueLinking, WithoutInstructions))
		})
	}
}

func TestSucceededDefaultTaskMatchesPRReview(t *testing.T) {
	sequences := []Sequence{
		{},
		{ToolCreateAndSubmit},
		{ToolCreatePendingReview, ToolAddComment, ToolSubmitReview},
		{ToolCreatePendingReview},
		{"get_pull_request"},
	}

	for _, seq := range sequences {
		for _, variant := range []InstructionsVariant{WithInstructions, WithoutInstructions, UnknownInstructions} {
			assert.Equal(t,
				Succeeded(seq, TaskPRReview, variant),
				Succeeded(seq, TaskDefault, variant),
				"default task must behave like pr_review for %v under %s", seq, variant)
		}
	}
}

func TestParseTask(t *testing.T) {
	assert.Equal(t, TaskPRReview, ParseTask("pr_review"))
	assert.Equal(t, TaskSimplePRComment, ParseTask("simple_pr_comment"))
	assert.Equal(t, TaskIssueLinking, ParseTask("issue_linking"))
	assert.Equal(t, TaskDefault, ParseTask("something_else"))
	assert.Equal(t, TaskDefault, ParseTask(""))
}

func TestParseInstructionsVariant(t *testing.T) {
	assert.Equal(t, WithInstructions, ParseInstructionsVariant("with_instructions"))
	assert.Equal(t, WithoutInstructions, ParseInstructionsVariant("without_instructions"))
	assert.Equal(t, UnknownInstructions, ParseInstructionsVariant("no-instructions"))
	assert.Equal(t, UnknownInstructions, ParseInstructionsVariant(""))
}

func TestCountTools(t *testing.T) {
	seq := Sequence{
		ToolCreatePendingReview,
		ToolAddComment,
		ToolCreatePendingReview,
		"get_pull_request",
		ToolCreatePendingReview,
	}

	counts := CountTools(seq)
	assert.Equal(t, 3, counts.CreatePendingReview)
	assert.Equal(t, 1, counts.AddComment)
	assert.Equal(t, 0, counts.SubmitReview)
	assert.Equal(t, 0, counts.CreateAndSubmit)
}

func TestCountToolsEmpty(t *testing.T) {
	counts := CountTools(Sequence{})
	assert.Equal(t, ToolCounts{}, counts)
}

func TestDetectErrorPattern(t *testing.T) {
	tests := map[string]struct {
		seq  Sequence
		want ErrorPattern
	}{
		"immediate submit": {
			seq:  Sequence{ToolCreateAndSubmit},
			want: ErrImmediateSubmit,
		},
		"immediate submit outranks wrong order": {
			seq:  Sequence{ToolSubmitReview, ToolCreateAndSubmit},
			want: ErrImmediateSubmit,
		},
		"single-step tool alongside a pending review is fine": {
			seq:  Sequence{ToolCreatePendingReview, ToolAddComment, ToolCreateAndSubmit, ToolSubmitReview},
			want: ErrNone,
		},
		"missing line comments": {
			seq:  Sequence{ToolCreatePendingReview, ToolSubmitReview},
			want: ErrMissingLineComments,
		},
		"missing line comments outranks wrong order": {
			seq:  Sequence{ToolSubmitReview, ToolCreatePendingReview},
			want: ErrMissingLineComments,
		},
		"wrong order": {
			seq:  Sequence{ToolSubmitReview, ToolCreatePendingReview, ToolAddComment},
			want: ErrWrongOrder,
		},
		"correct granular workflow": {
			seq:  Sequence{ToolCreatePendingReview, ToolAddComment, ToolSubmitReview},
			want: ErrNone,
		},
		"empty sequence": {
			seq:  Sequence{},
			want: ErrNone,
		},
		"unrelated tools only": {
			seq:  Sequence{"get_pull_request", "list_issues"},
			want: ErrNone,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, DetectErrorPattern(tc.seq))
		})
	}
}

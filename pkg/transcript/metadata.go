package transcript

import (
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/revcheck/revcheck/pkg/workflow"
)

// UnknownModel is the sentinel emitted when no model identifier could be
// recovered from the document or the filename.
const UnknownModel = "unknown"

// InstructionsPhrase marks a transcript as guided when it appears in the
// source instructions, even if the instructions do not spell out the three
// tool names.
const InstructionsPhrase = "use the pending review workflow"

// Metadata holds the three facts recovered per transcript.
type Metadata struct {
	Model   string                       `json:"model"`
	Task    workflow.Task                `json:"task"`
	Variant workflow.InstructionsVariant `json:"instructionsVariant"`
}

// ResolveMetadata recovers model, task, and instructions variant for a
// transcript. Content-derived values win over filename-derived ones;
// anything still missing falls back to an explicit sentinel so
// classification can proceed regardless.
func ResolveMetadata(path string, data []byte) Metadata {
	meta := metadataFromFilename(path)

	if gjson.ValidBytes(data) {
		doc := gjson.ParseBytes(data)

		if model := contentModel(doc); model != "" {
			meta.Model = model
		}
		if variant, ok := contentVariant(doc); ok {
			meta.Variant = variant
		}
	}

	if meta.Model == "" {
		meta.Model = UnknownModel
	}

	return meta
}

func contentModel(doc gjson.Result) string {
	if model := doc.Get("model").String(); model != "" {
		return model
	}
	return doc.Get("metadata.model").String()
}

// contentVariant inspects the source instructions embedded in the
// transcript. The variant is only decidable from content when at least one
// request carries an instructions field.
func contentVariant(doc gjson.Result) (workflow.InstructionsVariant, bool) {
	found := false
	guided := false

	doc.Get("requests").ForEach(func(_, req gjson.Result) bool {
		instructions := req.Get("source.instructions").String()
		if instructions == "" {
			return true
		}
		found = true
		if instructionsMentionWorkflow(instructions) {
			guided = true
			return false
		}
		return true
	})

	if !found {
		return workflow.UnknownInstructions, false
	}
	if guided {
		return workflow.WithInstructions, true
	}
	return workflow.WithoutInstructions, true
}

func instructionsMentionWorkflow(instructions string) bool {
	lower := strings.ToLower(instructions)
	if strings.Contains(lower, InstructionsPhrase) {
		return true
	}

	return strings.Contains(lower, workflow.ToolCreatePendingReview) &&
		strings.Contains(lower, workflow.ToolAddComment) &&
		strings.Contains(lower, workflow.ToolSubmitReview)
}

// metadataFromFilename parses the model_instructionsVariant_task[...]
// convention. The variant token anchors the split because model names may
// themselves contain underscores.
func metadataFromFilename(path string) Metadata {
	meta := Metadata{
		Task:    workflow.TaskDefault,
		Variant: workflow.UnknownInstructions,
	}

	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	marker := string(workflow.WithoutInstructions)
	idx := strings.Index(base, marker)
	if idx < 0 {
		marker = string(workflow.WithInstructions)
		idx = strings.Index(base, marker)
	}
	if idx < 0 {
		return meta
	}

	meta.Variant = workflow.InstructionsVariant(marker)
	meta.Model = strings.TrimSuffix(base[:idx], "_")

	rest := strings.TrimPrefix(base[idx+len(marker):], "_")
	for _, task := range []workflow.Task{workflow.TaskPRReview, workflow.TaskSimplePRComment, workflow.TaskIssueLinking} {
		if strings.HasPrefix(rest, string(task)) {
			meta.Task = task
			break
		}
	}

	return meta
}

package eval

type ProgressEventType string

const (
	EventEvalStart          ProgressEventType = "eval_start"
	EventTranscriptStart    ProgressEventType = "transcript_start"
	EventTranscriptComplete ProgressEventType = "transcript_complete"
	EventEvalComplete       ProgressEventType = "eval_complete"
)

type ProgressEvent struct {
	Type    ProgressEventType
	Message string
	Path    string
	Index   int
	Total   int
	Result  *Result
}

type ProgressCallback func(event ProgressEvent)

func NoopProgressCallback(_ ProgressEvent) {}

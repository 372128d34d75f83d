package workflow

// ToolCounts holds exact occurrence counts for the four tools the reports
// aggregate over.
type ToolCounts struct {
	CreatePendingReview int `json:"createPendingReview"`
	AddComment          int `json:"addComment"`
	SubmitReview        int `json:"submitReview"`
	CreateAndSubmit     int `json:"createAndSubmit"`
}

// CountTools tallies the tracked tools in the sequence.
func CountTools(seq Sequence) ToolCounts {
	return ToolCounts{
		CreatePendingReview: seq.Count(ToolCreatePendingReview),
		AddComment:          seq.Count(ToolAddComment),
		SubmitReview:        seq.Count(ToolSubmitReview),
		CreateAndSubmit:     seq.Count(ToolCreateAndSubmit),
	}
}

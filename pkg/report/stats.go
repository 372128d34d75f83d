package report

import (
	"strings"

	"github.com/revcheck/revcheck/pkg/eval"
	"github.com/revcheck/revcheck/pkg/workflow"
)

// VariantStats holds the success breakdown for one slice of the results.
type VariantStats struct {
	Total       int     `json:"total"`
	Succeeded   int     `json:"succeeded"`
	SuccessRate float64 `json:"successRate"`
}

// Stats holds computed statistics from a results file.
type Stats struct {
	ResultsFile string  `json:"resultsFile"`
	Total       int     `json:"total"`
	Succeeded   int     `json:"succeeded"`
	SuccessRate float64 `json:"successRate"`

	ByVariant     map[workflow.InstructionsVariant]VariantStats `json:"byVariant"`
	ByTask        map[workflow.Task]VariantStats                `json:"byTask"`
	ErrorPatterns map[workflow.ErrorPattern]int                 `json:"errorPatterns"`
}

// CalculateStats reduces evaluation results into totals, per-variant and
// per-task success rates, and an error-pattern tally.
func CalculateStats(resultsFile string, results []*eval.Result) Stats {
	stats := Stats{
		ResultsFile:   resultsFile,
		Total:         len(results),
		ByVariant:     make(map[workflow.InstructionsVariant]VariantStats),
		ByTask:        make(map[workflow.Task]VariantStats),
		ErrorPatterns: make(map[workflow.ErrorPattern]int),
	}

	for _, result := range results {
		if result.Success {
			stats.Succeeded++
		}

		variant := stats.ByVariant[result.Variant]
		variant.Total++
		if result.Success {
			variant.Succeeded++
		}
		stats.ByVariant[result.Variant] = variant

		task := stats.ByTask[result.Task]
		task.Total++
		if result.Success {
			task.Succeeded++
		}
		stats.ByTask[result.Task] = task

		stats.ErrorPatterns[result.ErrorPattern]++
	}

	if stats.Total > 0 {
		stats.SuccessRate = float64(stats.Succeeded) / float64(stats.Total)
	}
	for variant, vs := range stats.ByVariant {
		if vs.Total > 0 {
			vs.SuccessRate = float64(vs.Succeeded) / float64(vs.Total)
		}
		stats.ByVariant[variant] = vs
	}
	for task, ts := range stats.ByTask {
		if ts.Total > 0 {
			ts.SuccessRate = float64(ts.Succeeded) / float64(ts.Total)
		}
		stats.ByTask[task] = ts
	}

	return stats
}

// Filter returns the subset of results whose task labels contain the filter
// substring.
func Filter(results []*eval.Result, filter string) []*eval.Result {
	if filter == "" {
		return results
	}

	filter = strings.ToLower(filter)
	filtered := make([]*eval.Result, 0, len(results))
	for _, r := range results {
		if strings.Contains(strings.ToLower(r.Task.String()), filter) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

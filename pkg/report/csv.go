// Package report writes the per-transcript results table and computes the
// aggregate statistics printed after a run.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/revcheck/revcheck/pkg/eval"
	"github.com/revcheck/revcheck/pkg/workflow"
)

// header is the fixed column layout of a results file.
var header = []string{
	"model",
	"instructions_variant",
	"task",
	"success",
	"tool_sequence",
	"error_type",
	"notes",
	"count_create_pending_review",
	"count_add_comment",
	"count_submit_review",
	"count_create_and_submit",
}

// WriteCSV writes the header and one row per result, in the order given.
func WriteCSV(w io.Writer, results []*eval.Result) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write results header: %w", err)
	}

	for _, result := range results {
		row := []string{
			result.Model,
			result.Variant.String(),
			result.Task.String(),
			strconv.FormatBool(result.Success),
			result.ToolSequence,
			result.ErrorPattern.String(),
			result.Notes,
			strconv.Itoa(result.Counts.CreatePendingReview),
			strconv.Itoa(result.Counts.AddComment),
			strconv.Itoa(result.Counts.SubmitReview),
			strconv.Itoa(result.Counts.CreateAndSubmit),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write results row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteFile writes the results table to path.
func WriteFile(path string, results []*eval.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create results file: %w", err)
	}
	defer f.Close()

	return WriteCSV(f, results)
}

// ReadCSV parses a results table back into results.
func ReadCSV(r io.Reader) ([]*eval.Result, error) {
	cr := csv.NewReader(r)

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse results CSV: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("results file is empty")
	}
	if len(rows[0]) != len(header) {
		return nil, fmt.Errorf("unexpected results header: got %d columns, want %d", len(rows[0]), len(header))
	}

	results := make([]*eval.Result, 0, len(rows)-1)
	for i, row := range rows[1:] {
		result, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("failed to parse results row %d: %w", i+1, err)
		}
		results = append(results, result)
	}

	return results, nil
}

// ReadFile parses the results table at path.
func ReadFile(path string) ([]*eval.Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read results file: %w", err)
	}
	defer f.Close()

	return ReadCSV(f)
}

func parseRow(row []string) (*eval.Result, error) {
	success, err := strconv.ParseBool(row[3])
	if err != nil {
		return nil, fmt.Errorf("invalid success value %q: %w", row[3], err)
	}

	counts := workflow.ToolCounts{}
	for _, field := range []struct {
		value string
		into  *int
	}{
		{row[7], &counts.CreatePendingReview},
		{row[8], &counts.AddComment},
		{row[9], &counts.SubmitReview},
		{row[10], &counts.CreateAndSubmit},
	} {
		n, err := strconv.Atoi(field.value)
		if err != nil {
			return nil, fmt.Errorf("invalid count value %q: %w", field.value, err)
		}
		*field.into = n
	}

	return &eval.Result{
		Model:        row[0],
		Variant:      workflow.ParseInstructionsVariant(row[1]),
		Task:         workflow.ParseTask(row[2]),
		Success:      success,
		ToolSequence: row[4],
		ErrorPattern: workflow.ErrorPattern(row[5]),
		Notes:        row[6],
		Counts:       counts,
	}, nil
}

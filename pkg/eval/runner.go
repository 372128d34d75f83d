package eval

import (
	"context"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"
)

// EvalRunner evaluates every transcript selected by an EvalSpec.
// Transcripts are independent of each other, so they are fanned out across
// workers; the returned results keep file-enumeration order so reports stay
// reproducible.
type EvalRunner interface {
	Run(ctx context.Context) ([]*Result, error)
	RunWithProgress(ctx context.Context, callback ProgressCallback) ([]*Result, error)
}

type evalRunner struct {
	spec *EvalSpec

	mu               sync.Mutex
	progressCallback ProgressCallback
}

var _ EvalRunner = &evalRunner{}

// NewRunner creates a new EvalRunner from an EvalSpec.
func NewRunner(spec *EvalSpec) (EvalRunner, error) {
	if spec == nil {
		return nil, fmt.Errorf("eval spec cannot be nil")
	}

	return &evalRunner{
		spec:             spec,
		progressCallback: NoopProgressCallback,
	}, nil
}

func (r *evalRunner) Run(ctx context.Context) ([]*Result, error) {
	return r.RunWithProgress(ctx, NoopProgressCallback)
}

func (r *evalRunner) RunWithProgress(ctx context.Context, callback ProgressCallback) ([]*Result, error) {
	r.progressCallback = callback

	paths, err := r.collectTranscriptPaths()
	if err != nil {
		return nil, err
	}

	r.emit(ProgressEvent{
		Type:    EventEvalStart,
		Message: fmt.Sprintf("Evaluating %d transcripts", len(paths)),
		Total:   len(paths),
	})

	// One slot per transcript, filled by input index, so the output order
	// matches enumeration order regardless of worker scheduling.
	results := make([]*Result, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.spec.Config.WorkerLimit())

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			r.emit(ProgressEvent{
				Type:    EventTranscriptStart,
				Message: fmt.Sprintf("Evaluating transcript: %s", path),
				Path:    path,
				Index:   i,
				Total:   len(paths),
			})

			// A transcript that cannot be read still produces a row.
			// EvaluateTranscript treats nil data as an empty document.
			data, err := os.ReadFile(path)
			if err != nil {
				data = nil
			}

			result := EvaluateTranscript(path, data)
			results[i] = result

			r.emit(ProgressEvent{
				Type:    EventTranscriptComplete,
				Message: fmt.Sprintf("Completed transcript: %s (success: %v)", path, result.Success),
				Path:    path,
				Index:   i,
				Total:   len(paths),
				Result:  result,
			})

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	r.emit(ProgressEvent{
		Type:    EventEvalComplete,
		Message: "Evaluation complete",
		Total:   len(paths),
	})

	return results, nil
}

func (r *evalRunner) collectTranscriptPaths() ([]string, error) {
	seen := make(map[string]struct{})
	paths := make([]string, 0)

	for _, pattern := range r.spec.Config.TranscriptGlobs {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("failed to glob %s: %w", pattern, err)
		}

		for _, match := range matches {
			if _, ok := seen[match]; ok {
				continue
			}
			seen[match] = struct{}{}
			paths = append(paths, match)
		}
	}

	sort.Strings(paths)
	return paths, nil
}

// emit serializes progress callbacks so a display callback never sees
// interleaved events from concurrent workers.
func (r *evalRunner) emit(event ProgressEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.progressCallback(event)
}

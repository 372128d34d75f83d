// Package eval runs batch transcript evaluations and owns the result model.
package eval

import (
	"fmt"
	"os"
	"path/filepath"

	"sigs.k8s.io/yaml"

	"github.com/revcheck/revcheck/pkg/util"
)

const (
	KindTranscriptEval = "TranscriptEval"

	// DefaultWorkers bounds parallel transcript evaluation when the spec
	// does not say otherwise.
	DefaultWorkers = 4
)

type EvalSpec struct {
	util.TypeMeta

	Metadata EvalMetadata `json:"metadata"`
	Config   EvalConfig   `json:"config"`

	basePath string
}

type EvalMetadata struct {
	Name string `json:"name"`
}

type EvalConfig struct {
	// TranscriptGlobs select the transcript documents to evaluate.
	// Doublestar patterns are supported. Environment references in the
	// ${VAR} and ${VAR:-default} forms are expanded.
	TranscriptGlobs []string `json:"transcriptGlobs"`

	// OutputFile is where the results CSV is written. Optional; the CLI
	// derives a name from the eval metadata when unset.
	OutputFile string `json:"outputFile,omitempty"`

	// Workers bounds how many transcripts are evaluated concurrently.
	// Unset means DefaultWorkers.
	Workers *int `json:"workers,omitempty"`
}

// WorkerLimit returns the configured worker bound, defaulted when unset.
func (c *EvalConfig) WorkerLimit() int {
	if c.Workers == nil {
		return DefaultWorkers
	}
	return *c.Workers
}

func (e *EvalSpec) UnmarshalJSON(data []byte) error {
	type Doppleganger EvalSpec

	tmp := (*Doppleganger)(e)
	if err := util.UnmarshalWithKind(data, tmp, KindTranscriptEval); err != nil {
		return err
	}

	return e.TypeMeta.Validate(KindTranscriptEval)
}

// BasePath returns the directory the spec file was loaded from. Relative
// globs and output paths are resolved against it.
func (e *EvalSpec) BasePath() string {
	return e.basePath
}

func Read(data []byte, basePath string) (*EvalSpec, error) {
	spec := &EvalSpec{}

	if err := yaml.Unmarshal(data, spec); err != nil {
		return nil, err
	}
	spec.basePath = basePath

	for i := range spec.Config.TranscriptGlobs {
		expanded, err := ExpandEnv(spec.Config.TranscriptGlobs[i])
		if err != nil {
			return nil, fmt.Errorf("failed to expand transcript glob: %w", err)
		}
		spec.Config.TranscriptGlobs[i] = expanded
		resolveFilePath(&spec.Config.TranscriptGlobs[i], basePath)
	}

	expanded, err := ExpandEnv(spec.Config.OutputFile)
	if err != nil {
		return nil, fmt.Errorf("failed to expand output file path: %w", err)
	}
	spec.Config.OutputFile = expanded
	resolveFilePath(&spec.Config.OutputFile, basePath)

	if len(spec.Config.TranscriptGlobs) == 0 {
		return nil, fmt.Errorf("at least one transcript glob must be specified")
	}
	if spec.Config.Workers != nil && *spec.Config.Workers <= 0 {
		return nil, fmt.Errorf("workers must be positive, got %d", *spec.Config.Workers)
	}

	return spec, nil
}

func resolveFilePath(filePath *string, basePath string) {
	if *filePath == "" || filepath.IsAbs(*filePath) {
		return
	}

	*filePath = filepath.Join(basePath, *filePath)
}

func FromFile(path string) (*EvalSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file '%s' for evalspec: %w", path, err)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path for '%s': %w", path, err)
	}

	return Read(data, filepath.Dir(absPath))
}

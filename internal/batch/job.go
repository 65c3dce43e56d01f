// Package batch loads job files, evaluates them concurrently and renders
// the results.
package batch

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Operation names a calc function.
type Operation string

const (
	OpClassify  Operation = "classify"
	OpFactorial Operation = "factorial"
)

// Sentinel errors for job validation
var (
	ErrUnknownOperation = errors.New("unknown operation")
	ErrNoInputs         = errors.New("job has no inputs")
	ErrNoJobs           = errors.New("file contains no jobs")
	ErrUnsupportedFile  = errors.New("unsupported job file extension")
)

// Job is a single operation applied to a list of inputs.
type Job struct {
	Operation Operation `yaml:"operation" json:"operation"`
	Inputs    []uint32  `yaml:"inputs" json:"inputs"`
}

// File is the on-disk job document. A file holds either a single job at the
// top level or a list under jobs.
type File struct {
	Job  `yaml:",inline"`
	Jobs []Job `yaml:"jobs" json:"jobs"`
}

// ParseOperation validates an operation name.
func ParseOperation(s string) (Operation, error) {
	op := Operation(strings.ToLower(strings.TrimSpace(s)))
	switch op {
	case OpClassify, OpFactorial:
		return op, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownOperation, s)
}

// Validate checks the operation and that there is at least one input.
func (j Job) Validate() error {
	if _, err := ParseOperation(string(j.Operation)); err != nil {
		return err
	}
	if len(j.Inputs) == 0 {
		return fmt.Errorf("%s: %w", j.Operation, ErrNoInputs)
	}
	return nil
}

// Load reads a job file, decoding by extension (.yaml, .yml or .json).
func Load(path string) ([]Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	jobs, err := Parse(data, ext)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return jobs, nil
}

// Parse decodes job file contents. ext selects the format and includes the dot.
func Parse(data []byte, ext string) ([]Job, error) {
	var f File
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to parse yaml: %w", err)
		}
	case ".json":
		// encoding/json has no inline tag, so decode the two shapes separately
		if err := json.Unmarshal(data, &f.Job); err != nil {
			return nil, fmt.Errorf("failed to parse json: %w", err)
		}
		var wrapper struct {
			Jobs []Job `json:"jobs"`
		}
		if err := json.Unmarshal(data, &wrapper); err != nil {
			return nil, fmt.Errorf("failed to parse json: %w", err)
		}
		f.Jobs = wrapper.Jobs
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFile, ext)
	}

	jobs := f.Jobs
	if f.Operation != "" || len(f.Inputs) > 0 {
		jobs = append([]Job{f.Job}, jobs...)
	}
	if len(jobs) == 0 {
		return nil, ErrNoJobs
	}

	for i := range jobs {
		op, err := ParseOperation(string(jobs[i].Operation))
		if err != nil {
			return nil, fmt.Errorf("job %d: %w", i, err)
		}
		jobs[i].Operation = op
		if err := jobs[i].Validate(); err != nil {
			return nil, fmt.Errorf("job %d: %w", i, err)
		}
	}
	return jobs, nil
}

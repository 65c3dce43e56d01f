package batch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOperation(t *testing.T) {
	tests := []struct {
		input    string
		expected Operation
		wantErr  bool
	}{
		{input: "classify", expected: OpClassify},
		{input: "factorial", expected: OpFactorial},
		{input: " Factorial ", expected: OpFactorial},
		{input: "fibonacci", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			op, err := ParseOperation(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownOperation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, op)
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		ext      string
		expected []Job
		wantErr  error
	}{
		{
			name: "single yaml job",
			data: "operation: classify\ninputs: [4, 9, 7]\n",
			ext:  ".yaml",
			expected: []Job{
				{Operation: OpClassify, Inputs: []uint32{4, 9, 7}},
			},
		},
		{
			name: "yaml job list",
			data: `
jobs:
  - operation: factorial
    inputs: [0, 5, 13]
  - operation: CLASSIFY
    inputs: [6]
`,
			ext: ".yml",
			expected: []Job{
				{Operation: OpFactorial, Inputs: []uint32{0, 5, 13}},
				{Operation: OpClassify, Inputs: []uint32{6}},
			},
		},
		{
			name: "top level job precedes list",
			data: `
operation: classify
inputs: [1]
jobs:
  - operation: factorial
    inputs: [2]
`,
			ext: ".yaml",
			expected: []Job{
				{Operation: OpClassify, Inputs: []uint32{1}},
				{Operation: OpFactorial, Inputs: []uint32{2}},
			},
		},
		{
			name: "json job list",
			data: `{"jobs": [{"operation": "factorial", "inputs": [10]}]}`,
			ext:  ".json",
			expected: []Job{
				{Operation: OpFactorial, Inputs: []uint32{10}},
			},
		},
		{
			name: "single json job",
			data: `{"operation": "classify", "inputs": [3]}`,
			ext:  ".json",
			expected: []Job{
				{Operation: OpClassify, Inputs: []uint32{3}},
			},
		},
		{
			name:    "unknown operation",
			data:    "operation: sqrt\ninputs: [4]\n",
			ext:     ".yaml",
			wantErr: ErrUnknownOperation,
		},
		{
			name:    "no inputs",
			data:    "operation: factorial\ninputs: []\n",
			ext:     ".yaml",
			wantErr: ErrNoInputs,
		},
		{
			name:    "empty document",
			data:    "{}",
			ext:     ".json",
			wantErr: ErrNoJobs,
		},
		{
			name:    "unsupported extension",
			data:    "operation = classify",
			ext:     ".toml",
			wantErr: ErrUnsupportedFile,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jobs, err := Parse([]byte(tt.data), tt.ext)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, jobs)
		})
	}
}

func TestParseRejectsNegativeInputs(t *testing.T) {
	_, err := Parse([]byte("operation: classify\ninputs: [-1]\n"), ".yaml")
	assert.Error(t, err)

	_, err = Parse([]byte(`{"operation": "classify", "inputs": [-1]}`), ".json")
	assert.Error(t, err)
}

func TestParseRejectsOutOfRangeInputs(t *testing.T) {
	_, err := Parse([]byte("operation: factorial\ninputs: [4294967296]\n"), ".yaml")
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.yaml")
	require.NoError(t, os.WriteFile(path, []byte("operation: factorial\ninputs: [5]\n"), 0644))

	jobs, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []Job{{Operation: OpFactorial, Inputs: []uint32{5}}}, jobs)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

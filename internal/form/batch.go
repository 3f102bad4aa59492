package form

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Batch is a file of queued form submissions, applied in order.
//
//	submissions:
//	  - op: add
//	    id: 1
//	    name: Alice
//	    title: Engineer
//	    compensation: 90000
//	  - op: delete
//	    id: 1
type Batch struct {
	Submissions []Entry `yaml:"submissions"`
}

// Entry is one submission plus the operation to apply.
type Entry struct {
	Op         Op `yaml:"op"`
	Submission `yaml:",inline"`
}

// LoadBatch reads and parses a batch YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or names an unknown operation.
func LoadBatch(path string) (*Batch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}
	return ParseBatch(data)
}

// ParseBatch parses batch YAML from memory.
func ParseBatch(data []byte) (*Batch, error) {
	var batch Batch
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&batch); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	for i, e := range batch.Submissions {
		switch e.Op {
		case OpAdd, OpUpdate, OpDelete:
		case "":
			return nil, fmt.Errorf("submission %d: op is required", i)
		default:
			return nil, fmt.Errorf("submission %d: unknown op %q (must be add, update or delete)", i, e.Op)
		}
	}
	return &batch, nil
}

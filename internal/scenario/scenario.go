// Package scenario loads YAML scripts of tree and heap operations, replays
// them against bst.Tree and maxheap.Heap, and collects the observable
// results into a JSON-serialisable Report.
//
// A script looks like:
//
//	tree:
//	  insert: [9, 4, 20, 1, 6, 15, 170]
//	  successor: [6, 170]
//	  remove: [20, 1]
//	heap:
//	  insert: [1, 2, 4, 6, 3, 9]
//	  extract: 7
//
// Every hook fired while replaying is traced through a *zap.Logger at Debug level.
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	// ErrEmptyScenario is returned when a script holds no YAML document.
	ErrEmptyScenario = errors.New("scenario: empty script")

	// ErrInvalidScenario is returned for scripts that parse but cannot be replayed.
	ErrInvalidScenario = errors.New("scenario: invalid script")

	// ErrUnknownValue is returned when a successor query names a value the tree does not hold.
	ErrUnknownValue = errors.New("scenario: value not in tree")
)

// Scenario is one parsed script.
type Scenario struct {
	Tree TreeScript `yaml:"tree"`
	Heap HeapScript `yaml:"heap"`
}

// TreeScript lists tree operations, applied in the order insert, successor, remove.
type TreeScript struct {
	Insert    []int `yaml:"insert"`
	Successor []int `yaml:"successor"`
	Remove    []int `yaml:"remove"`
}

// HeapScript lists heap operations: all inserts, then Extract calls to ExtractMax.
type HeapScript struct {
	Insert  []int `yaml:"insert"`
	Extract int   `yaml:"extract"`
}

// Load reads and parses the script at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes a YAML script. Unknown keys are rejected so that a typo
// such as "extrct" does not silently drop an operation.
func Parse(data []byte) (*Scenario, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Scenario
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyScenario
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Validate rejects scripts that cannot be replayed.
func (s *Scenario) Validate() error {
	if s.Heap.Extract < 0 {
		return fmt.Errorf("%w: heap.extract cannot be negative (%d)", ErrInvalidScenario, s.Heap.Extract)
	}

	return nil
}

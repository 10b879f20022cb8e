// Package fixture loads node values described in YAML into the in-memory
// engine.
//
//	nodes:
//	  - id: Rain
//	    dimensions: [2]
//	    values: [0.2, 0.8]
//
// An empty values list zero-fills the matrix.
package fixture

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sisl/smile-go/pkg/smile/memengine"
)

// Node describes one node value.
type Node struct {
	ID         string    `yaml:"id"`
	Dimensions []int     `yaml:"dimensions"`
	Values     []float64 `yaml:"values"`
}

// Fixture is a validated set of node descriptions.
type Fixture struct {
	Nodes []Node `yaml:"nodes"`
}

// Load reads and validates a fixture file.
func Load(path string) (*Fixture, error) {
	if path == "" {
		return nil, errors.New("fixture: empty path")
	}
	data, err := os.ReadFile(path) // #nosec G304 -- path is operator supplied
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a fixture document.
func Parse(data []byte) (*Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks ids, dimensions and value counts.
func (f *Fixture) Validate() error {
	seen := make(map[string]struct{}, len(f.Nodes))
	for i, n := range f.Nodes {
		if n.ID == "" {
			return fmt.Errorf("fixture: node %d has no id", i)
		}
		if _, dup := seen[n.ID]; dup {
			return fmt.Errorf("fixture: duplicate node id %q", n.ID)
		}
		seen[n.ID] = struct{}{}

		if len(n.Dimensions) == 0 {
			return fmt.Errorf("fixture: node %q has no dimensions", n.ID)
		}
		size := 1
		for _, d := range n.Dimensions {
			if d <= 0 {
				return fmt.Errorf("fixture: node %q has non-positive dimension %d", n.ID, d)
			}
			size *= d
		}
		if len(n.Values) != 0 && len(n.Values) != size {
			return fmt.Errorf("fixture: node %q has %d values, want %d", n.ID, len(n.Values), size)
		}
	}
	return nil
}

// Names returns the node ids in declaration order.
func (f *Fixture) Names() []string {
	names := make([]string, len(f.Nodes))
	for i, n := range f.Nodes {
		names[i] = n.ID
	}
	return names
}

// Build creates one in-memory node value per node, keyed by id.
func (f *Fixture) Build() (map[string]*memengine.NodeValue, error) {
	out := make(map[string]*memengine.NodeValue, len(f.Nodes))
	for _, n := range f.Nodes {
		m, err := memengine.NewMatrix(n.Dimensions...)
		if err != nil {
			return nil, fmt.Errorf("fixture: node %q: %w", n.ID, err)
		}
		if len(n.Values) > 0 {
			if err := m.SetValues(n.Values); err != nil {
				return nil, fmt.Errorf("fixture: node %q: %w", n.ID, err)
			}
		}
		out[n.ID] = memengine.NewNodeValue(m)
	}
	return out, nil
}

package metagraph

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Schema is the on-disk YAML declaration of a metagraph:
//
//	nodes:
//	  - Gene
//	  - Disease
//	edges:
//	  - source: Gene
//	    target: Gene
//	    kind: interacts
//	  - source: Gene
//	    target: Disease
//	    kind: associates
//	    direction: forward
type Schema struct {
	Nodes []string   `yaml:"nodes"`
	Edges []EdgeSpec `yaml:"edges"`
}

// Metagraph builds the metagraph declared by the schema.
func (s *Schema) Metagraph() (*Metagraph, error) {
	return New(s.Nodes, s.Edges)
}

// LoadSchema reads a YAML schema file and builds its metagraph.
func LoadSchema(path string) (*Metagraph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schema: %w", err)
	}
	var schema Schema
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing schema: %w", err)
	}
	mg, err := schema.Metagraph()
	if err != nil {
		return nil, fmt.Errorf("building metagraph: %w", err)
	}
	return mg, nil
}

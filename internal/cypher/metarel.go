// Package cypher compiles metapaths into parameterized Cypher queries
// computing the degree-weighted path count (DWPC) between two nodes.
package cypher

import (
	"fmt"

	"github.com/gwaygenomics/hetio/internal/metagraph"
)

// MetaRel is one normalized metapath step: rendered endpoint labels,
// the relationship type, and the traversal direction.
type MetaRel struct {
	SourceLabel string
	TargetLabel string
	RelType     string
	Direction   metagraph.Direction
}

// ChainingError reports consecutive metapath steps whose endpoints do
// not share a node kind.
type ChainingError struct {
	Position int
	Prev     string
	Next     string
}

func (e *ChainingError) Error() string {
	return fmt.Sprintf("metapath step %d does not chain: previous target kind %q, next source kind %q",
		e.Position, e.Prev, e.Next)
}

// Normalize flattens a metapath into one MetaRel per edge, checking
// that consecutive steps chain.
func Normalize(path *metagraph.Metapath) ([]MetaRel, error) {
	edges := path.Edges()
	rels := make([]MetaRel, 0, len(edges))
	for i, e := range edges {
		if i > 0 && edges[i-1].Target.Kind != e.Source.Kind {
			return nil, &ChainingError{Position: i, Prev: edges[i-1].Target.Kind, Next: e.Source.Kind}
		}
		rels = append(rels, MetaRel{
			SourceLabel: AsLabel(e.Source.Kind),
			TargetLabel: AsLabel(e.Target.Kind),
			RelType:     AsRelType(e),
			Direction:   e.Direction,
		})
	}
	return rels, nil
}

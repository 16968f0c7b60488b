// Package graph defines the execution boundary between compiled
// metapath queries and the graph store that runs them.
package graph

import (
	"context"

	"github.com/gwaygenomics/hetio/internal/cypher"
)

// Result holds the two aggregates a DWPC query returns.
type Result struct {
	// PathCount is the number of paths matching the metapath.
	PathCount int64
	// DWPC is the degree-weighted path count over those paths.
	DWPC float64
}

// Repository executes compiled queries against a graph store. The
// compiler never touches this boundary; callers bind the parameter
// contract here.
type Repository interface {
	// DWPC runs a compiled metapath query between two nodes, weighting
	// each path by its step degrees raised to -weight.
	DWPC(ctx context.Context, query *cypher.CompiledQuery, source, target string, weight float64) (*Result, error)
	// Close releases resources.
	Close(ctx context.Context) error
}

// Package neo4j runs compiled metapath queries against a Neo4j server.
package neo4j

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/gwaygenomics/hetio/internal/cypher"
	"github.com/gwaygenomics/hetio/internal/graph"
	"github.com/gwaygenomics/hetio/internal/observability"
)

// Repository implements graph.Repository using the Neo4j driver.
type Repository struct {
	driver neo4j.DriverWithContext
}

// New connects to a Neo4j server and verifies connectivity.
func New(ctx context.Context, uri, username, password string) (*Repository, error) {
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(username, password, ""))
	if err != nil {
		return nil, fmt.Errorf("neo4j driver: %w", err)
	}
	if err := driver.VerifyConnectivity(ctx); err != nil {
		return nil, fmt.Errorf("neo4j connectivity: %w", err)
	}
	return &Repository{driver: driver}, nil
}

func (r *Repository) DWPC(ctx context.Context, query *cypher.CompiledQuery, source, target string, weight float64) (*graph.Result, error) {
	ctx, span := observability.StartQuerySpan(ctx, source, target, weight)
	defer span.End()

	session := r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	params := map[string]any{
		cypher.ParamSourceID:       source,
		cypher.ParamTargetID:       target,
		cypher.ParamWeightExponent: weight,
	}

	start := time.Now()
	result, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		records, err := tx.Run(ctx, query.Text, params)
		if err != nil {
			return nil, err
		}
		record, err := records.Single(ctx)
		if err != nil {
			return nil, err
		}
		return recordToResult(record)
	})
	if err != nil {
		observability.RecordError(span, err)
		return nil, fmt.Errorf("dwpc query: %w", err)
	}

	res := result.(*graph.Result)
	observability.RecordQueryResult(span, res.PathCount, res.DWPC)
	slog.Debug("dwpc query complete",
		"source", source,
		"target", target,
		"path_count", res.PathCount,
		"dwpc", res.DWPC,
		"duration", time.Since(start))
	return res, nil
}

func recordToResult(record *neo4j.Record) (*graph.Result, error) {
	res := &graph.Result{}

	raw, ok := record.Get("path_count")
	if !ok {
		return nil, fmt.Errorf("result missing path_count")
	}
	count, ok := raw.(int64)
	if !ok {
		return nil, fmt.Errorf("path_count has type %T, want int64", raw)
	}
	res.PathCount = count

	raw, ok = record.Get("dwpc")
	if !ok {
		return nil, fmt.Errorf("result missing dwpc")
	}
	switch v := raw.(type) {
	case float64:
		res.DWPC = v
	case int64:
		// sum() over an empty match comes back as integer zero.
		res.DWPC = float64(v)
	case nil:
		res.DWPC = 0
	default:
		return nil, fmt.Errorf("dwpc has type %T, want float64", raw)
	}
	return res, nil
}

func (r *Repository) Close(ctx context.Context) error {
	return r.driver.Close(ctx)
}

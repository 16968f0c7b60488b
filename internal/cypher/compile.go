package cypher

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gwaygenomics/hetio/internal/metagraph"
)

// Parameter names of the compiled query's binding contract. Caller
// values are only ever bound through these placeholders, never
// interpolated into the query text.
const (
	ParamSourceID       = "source_id"
	ParamTargetID       = "target_id"
	ParamWeightExponent = "weight_exponent"
)

// Options configures query assembly.
type Options struct {
	// Property is the node property identifying the source and target,
	// by default "name".
	Property string
	// IndexHints emits USING INDEX clauses for the endpoint labels so
	// traversal starts from both ends and meets in the middle.
	IndexHints bool
	// Uniqueness selects the duplicate-node exclusion strategy.
	Uniqueness UniquenessMode
}

// DefaultOptions returns the compiler defaults.
func DefaultOptions() Options {
	return Options{Property: "name", IndexHints: true, Uniqueness: UniquenessExpanded}
}

// CompiledQuery is immutable query text plus its parameter contract.
// Compilation is deterministic: the same path and options always yield
// byte-identical text, so callers may cache by path identity.
type CompiledQuery struct {
	Text       string
	Parameters []string
}

var propertyPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Compile assembles the DWPC query for a metapath: the MATCH pattern,
// optional index hints, endpoint bindings, the uniqueness clause, the
// per-step degree projection, and the path_count/dwpc aggregation.
func Compile(path *metagraph.Metapath, opts Options) (*CompiledQuery, error) {
	rels, err := Normalize(path)
	if err != nil {
		return nil, err
	}

	property := opts.Property
	if property == "" {
		property = "name"
	}
	if !propertyPattern.MatchString(property) {
		return nil, fmt.Errorf("invalid lookup property %q", opts.Property)
	}

	uniqueClause, err := opts.Uniqueness.Clause(rels)
	if err != nil {
		return nil, err
	}

	length := len(rels)
	hints := ""
	if opts.IndexHints {
		hints = fmt.Sprintf("USING INDEX v0:%s(%s)\nUSING INDEX v%d:%s(%s)\n",
			rels[0].SourceLabel, property, length, rels[length-1].TargetLabel, property)
	}

	text := fmt.Sprintf(`MATCH paths = %s
%sWHERE v0.%s = $%s
AND v%d.%s = $%s%s
WITH
[
%s
] AS degrees, paths
RETURN
count(paths) AS path_count,
sum(reduce(pdp = 1.0, d IN degrees | pdp * d ^ -$%s)) AS dwpc`,
		Pattern(rels),
		hints, property, ParamSourceID,
		length, property, ParamTargetID, uniqueClause,
		strings.Join(DegreeTerms(rels), ",\n"),
		ParamWeightExponent)

	return &CompiledQuery{
		Text:       text,
		Parameters: []string{ParamSourceID, ParamTargetID, ParamWeightExponent},
	}, nil
}

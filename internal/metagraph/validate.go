package metagraph

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
)

// AmbiguityError reports abbreviation invariant violations found
// after full disambiguation. Violations are never auto-corrected; the
// schema author has to rename the colliding kinds.
type AmbiguityError struct {
	Violations []string
}

func (e *AmbiguityError) Error() string {
	return fmt.Sprintf("ambiguous metagraph abbreviations: %s", strings.Join(e.Violations, "; "))
}

// ValidateAbbreviations checks the abbreviation assignment against the
// schema invariants and returns one message per violation found. An
// empty slice means the assignment is unambiguous. The metagraph is
// never mutated; this runs once after schema construction, not on
// every compilation.
func ValidateAbbreviations(mg *Metagraph) []string {
	var violations []string

	// Node and edge kind names live in disjoint namespaces.
	edgeKinds := make(map[string]bool)
	for _, e := range mg.edges {
		edgeKinds[e.Kind] = true
	}
	var overlap []string
	for kind := range mg.nodes {
		if edgeKinds[kind] {
			overlap = append(overlap, kind)
		}
	}
	sort.Strings(overlap)
	for _, kind := range overlap {
		violations = append(violations, fmt.Sprintf("kind %q used for both a node and an edge", kind))
	}

	// Node tokens must be unique and uppercase.
	seen := make(map[string][]string)
	for _, node := range mg.nodeList {
		seen[node.Abbrev] = append(seen[node.Abbrev], node.Kind)
		if node.Abbrev != strings.ToUpper(node.Abbrev) || !hasLetter(node.Abbrev) {
			violations = append(violations, fmt.Sprintf("node token %q for kind %q is not uppercase", node.Abbrev, node.Kind))
		}
	}
	for _, abbrev := range sortedKeys(seen) {
		if kinds := seen[abbrev]; len(kinds) > 1 {
			violations = append(violations, fmt.Sprintf("node token %q assigned to multiple kinds: %s", abbrev, strings.Join(kinds, ", ")))
		}
	}

	// Edge core tokens must be lowercase.
	reported := make(map[string]bool)
	for _, e := range mg.edges {
		if reported[e.Kind] {
			continue
		}
		if e.KindAbbrev != strings.ToLower(e.KindAbbrev) || !hasLetter(e.KindAbbrev) {
			violations = append(violations, fmt.Sprintf("edge token %q for kind %q is not lowercase", e.KindAbbrev, e.Kind))
			reported[e.Kind] = true
		}
	}

	// Fully qualified edge tokens (endpoint tokens plus the
	// direction-marked core token) must be unique across every
	// orientation, inverses included.
	qualified := make(map[string][]string)
	for _, e := range mg.steps {
		qualified[e.Abbrev()] = append(qualified[e.Abbrev()], e.Kind)
	}
	for _, abbrev := range sortedKeys(qualified) {
		if kinds := qualified[abbrev]; len(kinds) > 1 {
			violations = append(violations, fmt.Sprintf("edge token %q is ambiguous between kinds: %s", abbrev, strings.Join(kinds, ", ")))
		}
	}

	return violations
}

// Check wraps ValidateAbbreviations into an error value for callers
// treating an ambiguous schema as fatal.
func (mg *Metagraph) Check() error {
	if violations := ValidateAbbreviations(mg); len(violations) > 0 {
		return &AmbiguityError{Violations: violations}
	}
	return nil
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

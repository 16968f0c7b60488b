package cypher

import (
	"fmt"
	"strings"
)

// UniquenessMode selects the strategy for excluding paths that visit
// the same node more than once.
type UniquenessMode int

const (
	// UniquenessNone permits duplicate nodes along a path.
	UniquenessNone UniquenessMode = iota
	// UniquenessNested emits a single clause whose size is independent
	// of path length, testing every path node's multiplicity.
	UniquenessNested
	// UniquenessExpanded emits a pairwise inequality for every pair of
	// node positions, C(L+1, 2) clauses for a path of length L.
	UniquenessExpanded
	// UniquenessLabeled emits pairwise inequalities only for positions
	// sharing a label; differently labeled positions can never hold
	// the same node.
	UniquenessLabeled
)

// UnsupportedModeError reports an unrecognized uniqueness mode.
type UnsupportedModeError struct {
	Mode string
}

func (e *UnsupportedModeError) Error() string {
	return fmt.Sprintf("unsupported uniqueness mode %q", e.Mode)
}

// ParseUniquenessMode maps the configuration strings none, nested,
// expanded, and labeled onto their modes.
func ParseUniquenessMode(s string) (UniquenessMode, error) {
	switch s {
	case "none":
		return UniquenessNone, nil
	case "nested":
		return UniquenessNested, nil
	case "expanded":
		return UniquenessExpanded, nil
	case "labeled":
		return UniquenessLabeled, nil
	}
	return UniquenessNone, &UnsupportedModeError{Mode: s}
}

func (m UniquenessMode) String() string {
	switch m {
	case UniquenessNone:
		return "none"
	case UniquenessNested:
		return "nested"
	case UniquenessExpanded:
		return "expanded"
	case UniquenessLabeled:
		return "labeled"
	}
	return fmt.Sprintf("UniquenessMode(%d)", int(m))
}

const nestedClause = "\nAND ALL (x IN nodes(paths) WHERE size([z IN nodes(paths) WHERE z = x]) = 1)"

// Clause renders the duplicate-node exclusion clause for the mode,
// ready to append to the WHERE conditions.
func (m UniquenessMode) Clause(rels []MetaRel) (string, error) {
	switch m {
	case UniquenessNone:
		return "", nil
	case UniquenessNested:
		return nestedClause, nil
	case UniquenessExpanded:
		n := len(rels) + 1
		var pairs [][2]int
		for a := 0; a < n; a++ {
			for b := a + 1; b < n; b++ {
				pairs = append(pairs, [2]int{a, b})
			}
		}
		return expandedClause(pairs), nil
	case UniquenessLabeled:
		return expandedClause(labeledPairs(rels)), nil
	}
	return "", &UnsupportedModeError{Mode: m.String()}
}

// labeledPairs returns the position pairs sharing a label, grouped in
// first-appearance order so the emitted clause is deterministic.
func labeledPairs(rels []MetaRel) [][2]int {
	labels := make([]string, 0, len(rels)+1)
	for _, rel := range rels {
		labels = append(labels, rel.SourceLabel)
	}
	labels = append(labels, rels[len(rels)-1].TargetLabel)

	byLabel := make(map[string][]int)
	var order []string
	for i, label := range labels {
		if _, ok := byLabel[label]; !ok {
			order = append(order, label)
		}
		byLabel[label] = append(byLabel[label], i)
	}

	var pairs [][2]int
	for _, label := range order {
		positions := byLabel[label]
		for a := 0; a < len(positions); a++ {
			for b := a + 1; b < len(positions); b++ {
				pairs = append(pairs, [2]int{positions[a], positions[b]})
			}
		}
	}
	return pairs
}

func expandedClause(pairs [][2]int) string {
	if len(pairs) == 0 {
		return ""
	}
	parts := make([]string, 0, len(pairs))
	for _, pair := range pairs {
		parts = append(parts, fmt.Sprintf("v%d = v%d", pair[0], pair[1]))
	}
	return "\nAND NOT (" + strings.Join(parts, " OR ") + ")"
}

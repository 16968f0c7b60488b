package cypher

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gwaygenomics/hetio/internal/metagraph"
)

// AsLabel renders a node kind as a Cypher label: title-cased with
// spaces removed, e.g. "side effect" becomes "SideEffect". Pure
// function of the kind name; callers wanting memoization add their own
// cache.
func AsLabel(kind string) string {
	title := cases.Title(language.English).String(kind)
	return strings.ReplaceAll(title, " ", "")
}

// AsRelType renders an edge kind as a Cypher relationship type: the
// kind name uppercased with spaces replaced by underscores, suffixed
// with the disambiguating core token, e.g. "INTERACTS_i".
func AsRelType(e *metagraph.MetaEdge) string {
	relType := strings.ReplaceAll(strings.ToUpper(e.Kind), " ", "_")
	return relType + "_" + e.KindAbbrev
}

// arrows returns the left and right connector halves for a direction.
func arrows(d metagraph.Direction) (string, string) {
	switch d {
	case metagraph.Backward:
		return "<-", "-"
	case metagraph.Forward:
		return "-", "->"
	default:
		return "-", "-"
	}
}

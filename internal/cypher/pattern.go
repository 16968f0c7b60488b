package cypher

import (
	"fmt"
	"strings"
)

// Pattern renders the MATCH pattern for a normalized metapath, one
// node variable per position (v0..vL). Only the endpoint variables
// carry a label, so the planner can use endpoint indexes without
// constraining intermediate nodes.
func Pattern(rels []MetaRel) string {
	var b strings.Builder
	fmt.Fprintf(&b, "(v0:%s)", rels[0].SourceLabel)
	for i, rel := range rels {
		dir0, dir1 := arrows(rel.Direction)
		label := ""
		if i+1 == len(rels) {
			label = ":" + rel.TargetLabel
		}
		fmt.Fprintf(&b, "%s[:%s]%s(v%d%s)", dir0, rel.RelType, dir1, i+1, label)
	}
	return b.String()
}

package cypher

import "fmt"

// DegreeTerms renders, for every step, the two count subexpressions
// feeding the DWPC weighting: how many relationships of the step's
// type touch the source variable in the step's direction, and how many
// touch the target variable.
func DegreeTerms(rels []MetaRel) []string {
	terms := make([]string, 0, 2*len(rels))
	for i, rel := range rels {
		dir0, dir1 := arrows(rel.Direction)
		terms = append(terms,
			fmt.Sprintf("count { (v%d)%s[:%s]%s() }", i, dir0, rel.RelType, dir1),
			fmt.Sprintf("count { ()%s[:%s]%s(v%d) }", dir0, rel.RelType, dir1, i+1),
		)
	}
	return terms
}

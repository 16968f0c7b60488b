package metagraph

import (
	"slices"
	"strings"
	"unicode/utf8"
)

// duplicated returns the tokens assigned to more than one kind.
func duplicated(kindToAbbrev map[string]string) map[string]bool {
	counts := make(map[string]int, len(kindToAbbrev))
	for _, abbrev := range kindToAbbrev {
		counts[abbrev]++
	}
	dups := make(map[string]bool)
	for abbrev, count := range counts {
		if count > 1 {
			dups[abbrev] = true
		}
	}
	return dups
}

// shortCodes finds the shortest unique lowercase prefix token for each
// kind name. Every token is a case-normalized prefix of its name.
// Duplicated tokens are extended one character at a time until unique
// or until the name is exhausted; a residual duplicate (identical
// names, or a name that is a prefix of another) is left in place for
// the validator to report.
func shortCodes(kinds []string) map[string]string {
	kindToAbbrev := make(map[string]string, len(kinds))
	for _, kind := range kinds {
		if kind == "" {
			// Rejected by Metagraph construction; never abbreviated.
			continue
		}
		runes := []rune(kind)
		kindToAbbrev[kind] = strings.ToLower(string(runes[:1]))
	}

	dups := duplicated(kindToAbbrev)
	for len(dups) > 0 {
		extended := false
		for kind, abbrev := range kindToAbbrev {
			runes := []rune(kind)
			width := len([]rune(abbrev))
			if dups[abbrev] && width < len(runes) {
				kindToAbbrev[kind] = abbrev + strings.ToLower(string(runes[width]))
				extended = true
			}
		}
		if !extended {
			// Only unresolvable duplicates remain.
			break
		}
		dups = duplicated(kindToAbbrev)
	}
	return kindToAbbrev
}

// assignAbbreviations computes the global kind-to-token assignment:
// node tokens are uppercased shortest unique prefixes over all node
// kinds; edge tokens are assigned locally within each unordered
// endpoint-pair group and merged longest-wins, so a kind reused across
// several pair contexts keeps the most specific token any context
// required. Groups merge in sorted key order, making the equal-length
// tie-break (keep the earlier entry) deterministic.
func assignAbbreviations(nodeKinds []string, edges []EdgeSpec) map[string]string {
	kindToAbbrev := shortCodes(nodeKinds)
	for kind, abbrev := range kindToAbbrev {
		kindToAbbrev[kind] = strings.ToUpper(abbrev)
	}

	// Group edge kinds by unordered endpoint pair, direction discarded.
	pairToKinds := make(map[string][]string)
	for _, e := range edges {
		a, b := strings.ToLower(e.Source), strings.ToLower(e.Target)
		if a > b {
			a, b = b, a
		}
		key := a + "|" + b
		if !slices.Contains(pairToKinds[key], e.Kind) {
			pairToKinds[key] = append(pairToKinds[key], e.Kind)
		}
	}

	for _, key := range sortedKeys(pairToKinds) {
		for kind, abbrev := range shortCodes(pairToKinds[key]) {
			previous, ok := kindToAbbrev[kind]
			// Length in runes, matching the rune-wise extension loop.
			if ok && utf8.RuneCountInString(abbrev) <= utf8.RuneCountInString(previous) {
				continue
			}
			kindToAbbrev[kind] = abbrev
		}
	}
	return kindToAbbrev
}
package metagraph

import (
	"fmt"
	"strings"
)

// ParseMetapath parses a compact metapath abbreviation such as
// "Gr>GaD" back into an edge sequence. Matching is greedy: at each
// position the longest edge-plus-target-token match wins, which
// resolves the ambiguity between an undirected token and the same
// token followed by a direction marker.
func (mg *Metagraph) ParseMetapath(abbrev string) (*Metapath, error) {
	if abbrev == "" {
		return nil, fmt.Errorf("empty metapath abbreviation")
	}

	current, rest, err := mg.matchNode(abbrev)
	if err != nil {
		return nil, err
	}

	var edges []*MetaEdge
	for rest != "" {
		var best *MetaEdge
		bestWidth := 0
		for _, e := range mg.steps {
			if e.Source != current {
				continue
			}
			token := e.inlineAbbrev() + e.Target.Abbrev
			if strings.HasPrefix(rest, token) && len(token) > bestWidth {
				best = e
				bestWidth = len(token)
			}
		}
		if best == nil {
			offset := len(abbrev) - len(rest)
			return nil, fmt.Errorf("no edge kind from %q matches %q at offset %d of %q", current.Kind, rest, offset, abbrev)
		}
		edges = append(edges, best)
		current = best.Target
		rest = rest[bestWidth:]
	}

	if len(edges) == 0 {
		return nil, fmt.Errorf("metapath %q names a single node kind and no edges", abbrev)
	}
	return &Metapath{edges: edges}, nil
}

// matchNode consumes the longest node token prefixing s.
func (mg *Metagraph) matchNode(s string) (*MetaNode, string, error) {
	var best *MetaNode
	for _, node := range mg.nodeList {
		if strings.HasPrefix(s, node.Abbrev) && (best == nil || len(node.Abbrev) > len(best.Abbrev)) {
			best = node
		}
	}
	if best == nil {
		return nil, "", fmt.Errorf("no node kind token prefixes %q", s)
	}
	return best, s[len(best.Abbrev):], nil
}

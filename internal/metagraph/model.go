// Package metagraph models the typed schema of a heterogeneous
// network: node kinds, edge kinds between them, and the short
// abbreviation tokens used when rendering query identifiers.
package metagraph

import (
	"fmt"
	"sort"
	"strings"
)

// Direction is the orientation of an edge kind between its endpoints.
type Direction string

const (
	Forward    Direction = "forward"
	Backward   Direction = "backward"
	Undirected Direction = "undirected"
)

// Invert returns the opposite orientation. Undirected is its own
// inverse.
func (d Direction) Invert() Direction {
	switch d {
	case Forward:
		return Backward
	case Backward:
		return Forward
	default:
		return Undirected
	}
}

func (d Direction) valid() bool {
	switch d {
	case Forward, Backward, Undirected:
		return true
	}
	return false
}

// MetaNode is one node kind in the schema. Abbrev is the uppercase
// token assigned at metagraph construction.
type MetaNode struct {
	Kind   string
	Abbrev string
}

// MetaEdge is one edge kind connecting two node kinds. KindAbbrev is
// the lowercase core token assigned at metagraph construction; the
// fully qualified token also carries the endpoint tokens and a
// direction marker (see Abbrev).
type MetaEdge struct {
	Source     *MetaNode
	Target     *MetaNode
	Kind       string
	Direction  Direction
	KindAbbrev string

	// inverted marks orientations materialized for traversal rather
	// than declared in the schema.
	inverted bool
}

// Abbrev returns the fully qualified edge token, e.g. "Gr>G" for a
// forward "regulates" edge between two Gene endpoints, "G<rG" for its
// inverse, and "GiG" for an undirected edge.
func (e *MetaEdge) Abbrev() string {
	return e.Source.Abbrev + e.inlineAbbrev() + e.Target.Abbrev
}

// inlineAbbrev is the core token with its direction marker, as it
// appears inside a metapath abbreviation between two node tokens.
func (e *MetaEdge) inlineAbbrev() string {
	switch e.Direction {
	case Forward:
		return e.KindAbbrev + ">"
	case Backward:
		return "<" + e.KindAbbrev
	default:
		return e.KindAbbrev
	}
}

// Inverted reports whether this orientation was materialized from a
// declared edge rather than declared itself.
func (e *MetaEdge) Inverted() bool { return e.inverted }

// EdgeSpec declares one edge kind when constructing a metagraph or
// loading a schema file. An empty direction means undirected.
type EdgeSpec struct {
	Source    string    `yaml:"source"`
	Target    string    `yaml:"target"`
	Kind      string    `yaml:"kind"`
	Direction Direction `yaml:"direction,omitempty"`
}

// Metagraph is an immutable schema: node kinds, declared edge kinds,
// and the abbreviation assignment computed at construction.
type Metagraph struct {
	nodes    map[string]*MetaNode
	nodeList []*MetaNode
	edges    []*MetaEdge
	steps    []*MetaEdge // declared edges plus materialized inverses
	abbrevs  map[string]string
}

// New builds a metagraph from node kind names and edge declarations,
// assigning abbreviation tokens to every kind. Structural problems
// (duplicate declarations, unknown endpoints) are errors here;
// abbreviation ambiguity is reported by ValidateAbbreviations.
func New(nodeKinds []string, edges []EdgeSpec) (*Metagraph, error) {
	mg := &Metagraph{
		nodes:   make(map[string]*MetaNode, len(nodeKinds)),
		abbrevs: assignAbbreviations(nodeKinds, edges),
	}

	for _, kind := range nodeKinds {
		if kind == "" {
			return nil, fmt.Errorf("empty node kind")
		}
		if _, ok := mg.nodes[kind]; ok {
			return nil, fmt.Errorf("duplicate node kind %q", kind)
		}
		node := &MetaNode{Kind: kind, Abbrev: mg.abbrevs[kind]}
		mg.nodes[kind] = node
		mg.nodeList = append(mg.nodeList, node)
	}

	declared := make(map[string]bool, len(edges))
	for _, spec := range edges {
		if spec.Kind == "" {
			return nil, fmt.Errorf("empty edge kind between %q and %q", spec.Source, spec.Target)
		}
		direction := spec.Direction
		if direction == "" {
			direction = Undirected
		}
		if !direction.valid() {
			return nil, fmt.Errorf("edge kind %q: unknown direction %q", spec.Kind, spec.Direction)
		}
		source, ok := mg.nodes[spec.Source]
		if !ok {
			return nil, fmt.Errorf("edge kind %q: unknown source node kind %q", spec.Kind, spec.Source)
		}
		target, ok := mg.nodes[spec.Target]
		if !ok {
			return nil, fmt.Errorf("edge kind %q: unknown target node kind %q", spec.Kind, spec.Target)
		}
		key := spec.Source + "|" + spec.Kind + "|" + spec.Target + "|" + string(direction)
		if declared[key] {
			return nil, fmt.Errorf("duplicate edge kind %q between %q and %q", spec.Kind, spec.Source, spec.Target)
		}
		declared[key] = true

		edge := &MetaEdge{
			Source:     source,
			Target:     target,
			Kind:       spec.Kind,
			Direction:  direction,
			KindAbbrev: mg.abbrevs[spec.Kind],
		}
		mg.edges = append(mg.edges, edge)
		mg.steps = append(mg.steps, edge)
		if inverse := edge.invert(); inverse != nil {
			mg.steps = append(mg.steps, inverse)
		}
	}

	return mg, nil
}

// invert materializes the reverse orientation of a declared edge, or
// nil when the reverse is indistinguishable (undirected self-loop).
func (e *MetaEdge) invert() *MetaEdge {
	if e.Direction == Undirected && e.Source == e.Target {
		return nil
	}
	return &MetaEdge{
		Source:     e.Target,
		Target:     e.Source,
		Kind:       e.Kind,
		Direction:  e.Direction.Invert(),
		KindAbbrev: e.KindAbbrev,
		inverted:   true,
	}
}

// Nodes returns the node kinds in declaration order.
func (mg *Metagraph) Nodes() []*MetaNode { return mg.nodeList }

// Edges returns the declared edge kinds in declaration order,
// excluding materialized inverses.
func (mg *Metagraph) Edges() []*MetaEdge { return mg.edges }

// Node looks up a node kind by name.
func (mg *Metagraph) Node(kind string) (*MetaNode, bool) {
	node, ok := mg.nodes[kind]
	return node, ok
}

// Edge looks up an edge orientation by endpoint kinds and edge kind,
// considering materialized inverses. When both an undirected and a
// directed orientation match, the declared one wins.
func (mg *Metagraph) Edge(source, kind, target string) (*MetaEdge, bool) {
	var found *MetaEdge
	for _, e := range mg.steps {
		if e.Source.Kind != source || e.Kind != kind || e.Target.Kind != target {
			continue
		}
		if !e.inverted {
			return e, true
		}
		if found == nil {
			found = e
		}
	}
	return found, found != nil
}

// KindToAbbrev returns a copy of the kind-to-token assignment covering
// node kinds (uppercase tokens) and edge kinds (lowercase core tokens).
func (mg *Metagraph) KindToAbbrev() map[string]string {
	out := make(map[string]string, len(mg.abbrevs))
	for kind, abbrev := range mg.abbrevs {
		out[kind] = abbrev
	}
	return out
}

// Metapath is an ordered, direction-aware sequence of edge
// orientations through the metagraph.
type Metapath struct {
	edges []*MetaEdge
}

// NewMetapath wraps an ordered edge sequence. Chaining of consecutive
// endpoints is checked at query compilation, not here.
func NewMetapath(edges ...*MetaEdge) (*Metapath, error) {
	if len(edges) == 0 {
		return nil, fmt.Errorf("empty metapath")
	}
	return &Metapath{edges: append([]*MetaEdge(nil), edges...)}, nil
}

// Edges returns the path's edge sequence.
func (p *Metapath) Edges() []*MetaEdge { return p.edges }

// Len returns the number of steps.
func (p *Metapath) Len() int { return len(p.edges) }

// Source returns the first step's source node kind.
func (p *Metapath) Source() *MetaNode { return p.edges[0].Source }

// Target returns the last step's target node kind.
func (p *Metapath) Target() *MetaNode { return p.edges[len(p.edges)-1].Target }

// Abbrev returns the compact abbreviation, e.g. "Gr>GaD".
func (p *Metapath) Abbrev() string {
	var b strings.Builder
	b.WriteString(p.edges[0].Source.Abbrev)
	for _, e := range p.edges {
		b.WriteString(e.inlineAbbrev())
		b.WriteString(e.Target.Abbrev)
	}
	return b.String()
}

func (p *Metapath) String() string { return p.Abbrev() }

// sortedKeys returns map keys in ascending order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

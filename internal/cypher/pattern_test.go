package cypher

import (
	"strings"
	"testing"

	"github.com/gwaygenomics/hetio/internal/metagraph"
)

func TestPattern(t *testing.T) {
	mg := testMetagraph(t)
	tests := []struct {
		abbrev string
		want   string
	}{
		{
			"Gi>Ga>D",
			"(v0:Gene)-[:INTERACTS_i]->(v1)-[:ASSOCIATES_a]->(v2:Disease)",
		},
		{
			"G<iGa>D",
			"(v0:Gene)<-[:INTERACTS_i]-(v1)-[:ASSOCIATES_a]->(v2:Disease)",
		},
		{
			"Ga>D",
			"(v0:Gene)-[:ASSOCIATES_a]->(v1:Disease)",
		},
		{
			"Gi>Gi>Gc>S",
			"(v0:Gene)-[:INTERACTS_i]->(v1)-[:INTERACTS_i]->(v2)-[:CAUSES_c]->(v3:SideEffect)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.abbrev, func(t *testing.T) {
			rels, err := Normalize(testPath(t, mg, tt.abbrev))
			if err != nil {
				t.Fatalf("Normalize: %v", err)
			}
			if got := Pattern(rels); got != tt.want {
				t.Errorf("Pattern = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPattern_UndirectedConnector(t *testing.T) {
	mg, err := metagraph.New(
		[]string{"Gene"},
		[]metagraph.EdgeSpec{{Source: "Gene", Target: "Gene", Kind: "interacts"}},
	)
	if err != nil {
		t.Fatalf("building metagraph: %v", err)
	}
	rels, err := Normalize(testPath(t, mg, "GiG"))
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	got := Pattern(rels)
	if strings.Contains(got, "->") || strings.Contains(got, "<-") {
		t.Errorf("undirected pattern %q contains an arrow", got)
	}
	if got != "(v0:Gene)-[:INTERACTS_i]-(v1:Gene)" {
		t.Errorf("Pattern = %q", got)
	}
}

func TestDegreeTerms(t *testing.T) {
	mg := testMetagraph(t)
	rels, err := Normalize(testPath(t, mg, "Gi>Ga>D"))
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	terms := DegreeTerms(rels)
	want := []string{
		"count { (v0)-[:INTERACTS_i]->() }",
		"count { ()-[:INTERACTS_i]->(v1) }",
		"count { (v1)-[:ASSOCIATES_a]->() }",
		"count { ()-[:ASSOCIATES_a]->(v2) }",
	}
	if len(terms) != len(want) {
		t.Fatalf("expected %d terms, got %d", len(want), len(terms))
	}
	for i, term := range terms {
		if term != want[i] {
			t.Errorf("term %d = %q, want %q", i, term, want[i])
		}
	}
}

func TestDegreeTerms_Backward(t *testing.T) {
	mg := testMetagraph(t)
	rels, err := Normalize(testPath(t, mg, "D<aG"))
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	terms := DegreeTerms(rels)
	if terms[0] != "count { (v0)<-[:ASSOCIATES_a]-() }" {
		t.Errorf("term 0 = %q", terms[0])
	}
	if terms[1] != "count { ()<-[:ASSOCIATES_a]-(v1) }" {
		t.Errorf("term 1 = %q", terms[1])
	}
}

package metagraph

import (
	"strings"
	"testing"
)

func TestShortCodes_GeneDiseaseDrug(t *testing.T) {
	// "disease" and "drug" collide on "d"; every holder of a
	// duplicated token extends, so both grow one character.
	got := shortCodes([]string{"gene", "disease", "drug"})
	want := map[string]string{"gene": "g", "disease": "di", "drug": "dr"}
	for kind, abbrev := range want {
		if got[kind] != abbrev {
			t.Errorf("shortCodes[%q] = %q, want %q", kind, got[kind], abbrev)
		}
	}
}

func TestShortCodes_EmptyNameIgnored(t *testing.T) {
	got := shortCodes([]string{"", "gene"})
	if _, ok := got[""]; ok {
		t.Errorf("empty kind received a token: %v", got)
	}
	if got["gene"] != "g" {
		t.Errorf("shortCodes[gene] = %q, want g", got["gene"])
	}
}

func TestShortCodes_PrefixAndUniqueness(t *testing.T) {
	tests := []struct {
		name  string
		kinds []string
	}{
		{"disjoint", []string{"gene", "disease", "drug"}},
		{"shared_prefixes", []string{"compound", "complex", "component", "cell"}},
		{"one_is_prefix", []string{"side", "side effect"}},
		{"single", []string{"anatomy"}},
		{"spaces", []string{"side effect", "symptom", "cellular component"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shortCodes(tt.kinds)
			if len(got) != len(tt.kinds) {
				t.Fatalf("got %d tokens for %d kinds", len(got), len(tt.kinds))
			}
			seen := make(map[string]string)
			for kind, abbrev := range got {
				if !strings.HasPrefix(strings.ToLower(kind), abbrev) {
					t.Errorf("token %q is not a prefix of %q", abbrev, kind)
				}
				if abbrev != strings.ToLower(abbrev) {
					t.Errorf("token %q is not lowercase", abbrev)
				}
				if prev, dup := seen[abbrev]; dup {
					t.Errorf("token %q assigned to both %q and %q", abbrev, prev, kind)
				}
				seen[abbrev] = kind
			}
		})
	}
}

func TestShortCodes_ResidualDuplicateTerminates(t *testing.T) {
	// "A" and "a" normalize to the same exhausted token; the loop must
	// stop and leave the duplicate for the validator.
	got := shortCodes([]string{"A", "a"})
	if got["A"] != "a" || got["a"] != "a" {
		t.Fatalf("expected residual duplicate tokens, got %v", got)
	}
}

func TestAssignAbbreviations_Casing(t *testing.T) {
	abbrevs := assignAbbreviations(
		[]string{"gene", "disease"},
		[]EdgeSpec{{Source: "gene", Target: "disease", Kind: "associates"}},
	)
	if abbrevs["gene"] != "G" {
		t.Errorf("node token = %q, want G", abbrevs["gene"])
	}
	if abbrevs["disease"] != "D" {
		t.Errorf("node token = %q, want D", abbrevs["disease"])
	}
	if abbrevs["associates"] != "a" {
		t.Errorf("edge token = %q, want a", abbrevs["associates"])
	}
}

func TestAssignAbbreviations_PerPairGrouping(t *testing.T) {
	// "associates" and "alleviates" collide on "a" but connect
	// different node-kind pairs, so each keeps its one-letter local
	// token; the endpoint tokens keep the qualified forms distinct.
	abbrevs := assignAbbreviations(
		[]string{"gene", "disease", "compound"},
		[]EdgeSpec{
			{Source: "gene", Target: "disease", Kind: "associates"},
			{Source: "compound", Target: "disease", Kind: "alleviates"},
		},
	)
	if abbrevs["associates"] != "a" || abbrevs["alleviates"] != "a" {
		t.Errorf("expected both edge kinds to keep local token a, got %v", abbrevs)
	}
}

func TestAssignAbbreviations_LongestWinsAcrossContexts(t *testing.T) {
	// "regulates" needs three characters between gene and gene (to
	// split from "represses") but only one between gene and pathway.
	// The global token must be the longer one.
	abbrevs := assignAbbreviations(
		[]string{"gene", "pathway"},
		[]EdgeSpec{
			{Source: "gene", Target: "gene", Kind: "regulates", Direction: Forward},
			{Source: "gene", Target: "gene", Kind: "represses", Direction: Forward},
			{Source: "gene", Target: "pathway", Kind: "regulates", Direction: Forward},
		},
	)
	if abbrevs["regulates"] != "reg" {
		t.Errorf("regulates token = %q, want reg", abbrevs["regulates"])
	}
	if abbrevs["represses"] != "rep" {
		t.Errorf("represses token = %q, want rep", abbrevs["represses"])
	}
}

func TestAssignAbbreviations_MultibyteKinds(t *testing.T) {
	// Tokens extend rune by rune, so the longest-wins merge has to
	// measure rune counts, not bytes.
	abbrevs := assignAbbreviations(
		[]string{"γene", "πathway"},
		[]EdgeSpec{
			{Source: "γene", Target: "γene", Kind: "ρegulates", Direction: Forward},
			{Source: "γene", Target: "γene", Kind: "ρepresses", Direction: Forward},
			{Source: "γene", Target: "πathway", Kind: "ρegulates", Direction: Forward},
		},
	)
	if abbrevs["ρegulates"] != "ρeg" {
		t.Errorf("ρegulates token = %q, want ρeg", abbrevs["ρegulates"])
	}
	if abbrevs["ρepresses"] != "ρep" {
		t.Errorf("ρepresses token = %q, want ρep", abbrevs["ρepresses"])
	}
	if abbrevs["γene"] != "Γ" {
		t.Errorf("γene token = %q, want Γ", abbrevs["γene"])
	}
}

func TestAssignAbbreviations_DirectionDiscardedInGrouping(t *testing.T) {
	// Both orientations between the same pair land in one group, so
	// the same kind keeps a single token.
	abbrevs := assignAbbreviations(
		[]string{"gene", "disease"},
		[]EdgeSpec{
			{Source: "gene", Target: "disease", Kind: "upregulates", Direction: Forward},
			{Source: "disease", Target: "gene", Kind: "upregulates", Direction: Forward},
			{Source: "gene", Target: "disease", Kind: "underexpresses", Direction: Forward},
		},
	)
	if abbrevs["upregulates"] != "up" || abbrevs["underexpresses"] != "un" {
		t.Errorf("expected up/un after in-group collision, got %v", abbrevs)
	}
}

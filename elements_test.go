// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package phyloxml_test

import (
	"strings"
	"testing"

	"github.com/js-arias/phyloxml"
)

// capture redirects the warnings of the package
// while the test runs.
func capture(t testing.TB) *[]string {
	t.Helper()

	var msgs []string
	warn := phyloxml.Warn
	phyloxml.Warn = func(msg string) { msgs = append(msgs, msg) }
	t.Cleanup(func() { phyloxml.Warn = warn })
	return &msgs
}

func TestLabels(t *testing.T) {
	val := 420.0
	tests := map[string]struct {
		elem phyloxml.Element
		want string
	}{
		"named": {
			&phyloxml.Clade{Name: "Eukaryota"},
			"Clade Eukaryota",
		},
		"bare": {
			&phyloxml.Clade{},
			"Clade",
		},
		"value": {
			&phyloxml.Confidence{Value: 0.95, Type: "bootstrap"},
			"Confidence 0.95",
		},
		"taxonomy code": {
			phyloxml.NewTaxonomy(phyloxml.Taxonomy{
				Code:           "OCTVU",
				ScientificName: "Octopus vulgaris",
			}),
			"Taxonomy OCTVU",
		},
		"taxonomy name": {
			phyloxml.NewTaxonomy(phyloxml.Taxonomy{
				ScientificName: "Octopus vulgaris",
				Rank:           "species",
			}),
			"Taxonomy Octopus vulgaris",
		},
		"taxonomy rank": {
			phyloxml.NewTaxonomy(phyloxml.Taxonomy{Rank: "species"}),
			"Taxonomy species",
		},
		"date with unit": {
			&phyloxml.Date{Value: &val, Unit: "mya"},
			"Date 420 mya",
		},
		"date with description": {
			&phyloxml.Date{Desc: "Silurian"},
			"Date Silurian",
		},
		"bare date": {
			&phyloxml.Date{},
			"Date",
		},
		"uri": {
			&phyloxml.URI{Value: "http://www.phyloxml.org"},
			"Uri http://www.phyloxml.org",
		},
	}
	for name, test := range tests {
		if got := test.elem.String(); got != test.want {
			t.Errorf("%s: got %q, want %q", name, got, test.want)
		}
	}
}

func TestLabelTrim(t *testing.T) {
	cl := &phyloxml.Clade{Name: strings.Repeat("x", 60)}
	got := cl.String()
	want := "Clade " + strings.Repeat("x", 37) + "..."
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDescribe(t *testing.T) {
	bl := 0.25
	tests := map[string]struct {
		elem phyloxml.Element
		want string
	}{
		"taxonomy": {
			phyloxml.NewTaxonomy(phyloxml.Taxonomy{
				Code:           "OCTVU",
				ScientificName: "Octopus vulgaris",
			}),
			`Taxonomy(code="OCTVU", scientific_name="Octopus vulgaris")`,
		},
		"clade": {
			&phyloxml.Clade{Name: "A", BranchLength: &bl},
			`Clade(branch_length=0.25, name="A")`,
		},
		"phylogeny": {
			&phyloxml.Phylogeny{Rooted: true, Name: "tree"},
			`Phylogeny(name="tree")`,
		},
		"empty": {
			&phyloxml.Distribution{},
			"Distribution()",
		},
	}
	for name, test := range tests {
		if got := phyloxml.Describe(test.elem); got != test.want {
			t.Errorf("%s: got %q, want %q", name, got, test.want)
		}
	}
}

func TestWarnings(t *testing.T) {
	msgs := capture(t)

	tax := phyloxml.NewTaxonomy(phyloxml.Taxonomy{Code: "x"})
	if len(*msgs) != 1 {
		t.Fatalf("bad code: got %d warnings, want 1", len(*msgs))
	}
	// The value is stored as given.
	if tax.Code != "x" {
		t.Errorf("bad code: got %q, want %q", tax.Code, "x")
	}

	phyloxml.NewTaxonomy(phyloxml.Taxonomy{Rank: "emperor"})
	if len(*msgs) != 2 {
		t.Errorf("bad rank: got %d warnings, want 2", len(*msgs))
	}

	phyloxml.NewEvents(phyloxml.Events{Type: "big bang"})
	if len(*msgs) != 3 {
		t.Errorf("bad event type: got %d warnings, want 3", len(*msgs))
	}

	phyloxml.NewSequence(phyloxml.Sequence{MolSeq: "0123"})
	if len(*msgs) != 4 {
		t.Errorf("bad sequence: got %d warnings, want 4", len(*msgs))
	}

	// Compliant values do not warn.
	phyloxml.NewTaxonomy(phyloxml.Taxonomy{Code: "OCTVU", Rank: "species"})
	phyloxml.NewEvents(phyloxml.Events{Type: "transfer"})
	phyloxml.NewSequence(phyloxml.Sequence{Symbol: "ACTM", MolSeq: "MVLSPAD"})
	if len(*msgs) != 4 {
		t.Errorf("valid values: got %d warnings, want 4", len(*msgs))
	}
}

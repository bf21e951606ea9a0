// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package phyloxml_test

import (
	"testing"

	"github.com/js-arias/phyloxml"
)

func TestCladeChildren(t *testing.T) {
	root := testTree()

	if root.Len() != len(root.Clades) {
		t.Errorf("len: got %d, want %d", root.Len(), len(root.Clades))
	}
	for i, cl := range root.Clades {
		if root.Child(i) != cl {
			t.Errorf("child %d: got %q, want %q", i, root.Child(i), cl)
		}
	}

	c, err := root.Descend(0, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Name != "C" {
		t.Errorf("descend: got %q, want %q", c.Name, "C")
	}

	if c, err := root.Descend(); err != nil || c != root {
		t.Errorf("empty path: got %q, %v, want the same clade", c, err)
	}

	if _, err := root.Descend(0, 5); err == nil {
		t.Errorf("expecting error on an out of range path")
	}
	if _, err := root.Descend(1, 0); err == nil {
		t.Errorf("expecting error on a path below a terminal")
	}
}

func TestCladeConfidence(t *testing.T) {
	cl := &phyloxml.Clade{}
	if _, err := cl.Confidence(); err == nil {
		t.Errorf("expecting error on an empty confidence list")
	}

	cf := &phyloxml.Confidence{Value: 0.95, Type: "bootstrap"}
	cl.Confidences = append(cl.Confidences, cf)
	got, err := cl.Confidence()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != cf {
		t.Errorf("got %q, want %q", got, cf)
	}

	cl.Confidences = append(cl.Confidences, &phyloxml.Confidence{Value: 0.80, Type: "bootstrap"})
	if _, err := cl.Confidence(); err == nil {
		t.Errorf("expecting error on multiple confidence values")
	}
}

func TestCladeTaxonomy(t *testing.T) {
	cl := &phyloxml.Clade{}
	if _, err := cl.Taxonomy(); err == nil {
		t.Errorf("expecting error on an empty taxonomy list")
	}

	tax := phyloxml.NewTaxonomy(phyloxml.Taxonomy{Code: "OCTVU"})
	cl.Taxonomies = append(cl.Taxonomies, tax)
	got, err := cl.Taxonomy()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != tax {
		t.Errorf("got %q, want %q", got, tax)
	}

	cl.Taxonomies = append(cl.Taxonomies, phyloxml.NewTaxonomy(phyloxml.Taxonomy{Code: "APLCA"}))
	if _, err := cl.Taxonomy(); err == nil {
		t.Errorf("expecting error on multiple taxonomy values")
	}
}

func TestPhylogenyConfidence(t *testing.T) {
	p := phyloxml.NewPhylogeny(testTree(), true)
	if _, err := p.Confidence(); err == nil {
		t.Errorf("expecting error on an empty confidence list")
	}

	cf := &phyloxml.Confidence{Value: 89, Type: "bootstrap"}
	p.Confidences = append(p.Confidences, cf)
	got, err := p.Confidence()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != cf {
		t.Errorf("got %q, want %q", got, cf)
	}

	p.Confidences = append(p.Confidences, &phyloxml.Confidence{Value: 75, Type: "bootstrap"})
	if _, err := p.Confidence(); err == nil {
		t.Errorf("expecting error on multiple confidence values")
	}
}

func TestWrappers(t *testing.T) {
	root := testTree()

	p := root.Phylogeny(true)
	if !p.Rooted {
		t.Errorf("phylogeny: rooted flag not set")
	}
	if p.Root != root {
		t.Errorf("phylogeny: got root %q, want %q", p.Root, root)
	}

	p.Name = "tree of life"
	d := p.Phyloxml(map[string]string{"xmlns": "http://www.phyloxml.org"})
	if d.Len() != 1 {
		t.Fatalf("document: got %d phylogenies, want 1", d.Len())
	}
	if d.Phylogeny(0) != p {
		t.Errorf("document: got phylogeny %q, want %q", d.Phylogeny(0), p)
	}
	if d.Attributes["xmlns"] != "http://www.phyloxml.org" {
		t.Errorf("document: attributes not stored")
	}
}

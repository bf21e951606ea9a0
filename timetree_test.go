// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package phyloxml_test

import (
	"sort"
	"strings"
	"testing"

	"github.com/js-arias/phyloxml"
	"github.com/js-arias/timetree"
)

func TestFromTimeTree(t *testing.T) {
	c, err := timetree.Newick(strings.NewReader("(A:2,(B:1,C:1):1);"), "test", 2_000_000)
	if err != nil {
		t.Fatalf("unable to read newick tree: %v", err)
	}
	tt := c.Tree("test")
	if tt == nil {
		t.Fatalf("tree %q not found", "test")
	}

	ph := phyloxml.FromTimeTree(tt)
	if ph.Name != "test" {
		t.Errorf("name: got %q, want %q", ph.Name, "test")
	}
	if !ph.Rooted {
		t.Errorf("expecting a rooted tree")
	}
	if ph.BranchLengthUnit != "mya" {
		t.Errorf("branch length unit: got %q, want %q", ph.BranchLengthUnit, "mya")
	}

	root := ph.Root
	if root == nil {
		t.Fatalf("expecting a root clade")
	}
	if root.BranchLength != nil {
		t.Errorf("root branch length: got %v, want none", *root.BranchLength)
	}
	if root.Date == nil || root.Date.Value == nil {
		t.Fatalf("expecting a root date")
	}
	if got := *root.Date.Value; got != 2 {
		t.Errorf("root age: got %.6f, want 2", got)
	}
	if root.Len() != 2 {
		t.Errorf("root children: got %d, want 2", root.Len())
	}

	var terms []string
	m := ph.Find(phyloxml.CladeKind)
	for m.Next() {
		cl := m.Element().(*phyloxml.Clade)
		if cl.BranchLength == nil {
			t.Errorf("clade %q: expecting a branch length", cl.Name)
		}
		if cl.NodeID == nil || cl.NodeID.Type != "timetree" {
			t.Errorf("clade %q: expecting a timetree node ID", cl.Name)
		}
		if cl.Len() > 0 {
			continue
		}
		terms = append(terms, cl.Name)
		if got := *cl.Date.Value; got != 0 {
			t.Errorf("terminal %q: age %.6f, want 0", cl.Name, got)
		}
	}
	if err := m.Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sort.Strings(terms)
	want := []string{"A", "B", "C"}
	if len(terms) != len(want) {
		t.Fatalf("terminals: got %v, want %v", terms, want)
	}
	for i, n := range want {
		if terms[i] != n {
			t.Errorf("terminals: got %v, want %v", terms, want)
			break
		}
	}
}

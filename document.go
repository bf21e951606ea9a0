// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package phyloxml

import (
	"errors"
	"fmt"
)

// ErrNotFound is the base error
// of a failed lookup by name or key.
var ErrNotFound = errors.New("not found")

// A Phyloxml is the root of a phyloXML document.
// It contains an arbitrary number of phylogenies,
// possibly followed by elements from other namespaces.
type Phyloxml struct {
	// XML namespace definitions of the document.
	Attributes map[string]string

	Phylogenies []*Phylogeny
	Other       []*Other
}

// Kind returns the kind of the element.
func (d *Phyloxml) Kind() Kind { return PhyloxmlKind }

// String returns the display label of the document.
func (d *Phyloxml) String() string { return label(d) }

// Len returns the number of phylogenies
// in the document.
func (d *Phyloxml) Len() int { return len(d.Phylogenies) }

// Phylogeny returns the i-th phylogeny of the document.
// It panics if the index is out of range.
func (d *Phyloxml) Phylogeny(i int) *Phylogeny {
	return d.Phylogenies[i]
}

// Tree returns the first phylogeny
// with the given name.
// It returns an error that wraps ErrNotFound
// if no phylogeny has that name.
func (d *Phyloxml) Tree(name string) (*Phylogeny, error) {
	for _, p := range d.Phylogenies {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, fmt.Errorf("phyloxml: phylogeny with name %q: %w", name, ErrNotFound)
}

func (d *Phyloxml) fields() []field {
	return []field{
		{"attributes", attrs(d.Attributes)},
		{"other", elems(d.Other)},
		{"phylogenies", elems(d.Phylogenies)},
	}
}

// An Other is a container
// for an element from a namespace
// outside of phyloXML.
// Its content is kept as opaque data.
type Other struct {
	Tag        string
	Namespace  string
	Attributes map[string]string
	Value      string

	Children []*Other
}

// Kind returns the kind of the element.
func (o *Other) Kind() Kind { return OtherKind }

// String returns the display label of the element.
func (o *Other) String() string { return label(o) }

func (o *Other) fields() []field {
	return []field{
		{"attributes", attrs(o.Attributes)},
		{"children", elems(o.Children)},
		{"namespace", strVal(o.Namespace)},
		{"tag", strVal(o.Tag)},
		{"value", strVal(o.Value)},
	}
}

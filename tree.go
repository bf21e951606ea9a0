// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package phyloxml

import (
	"errors"
	"fmt"
)

// A Phylogeny is a phylogenetic tree.
// The topology of the tree
// is given by its root clade.
//
// A phylogeny must indicate explicitly
// if it is rooted or not,
// so it should be created with NewPhylogeny.
type Phylogeny struct {
	Rooted           bool
	Rerootable       *bool
	BranchLengthUnit string
	Type             string

	Name        string
	ID          *ID
	Description string
	Date        *Date
	Root        *Clade

	Confidences       []*Confidence
	CladeRelations    []*CladeRelation
	SequenceRelations []*SequenceRelation
	Properties        []*Property
	Other             []*Other
}

// NewPhylogeny creates a new phylogeny
// with the given root clade.
// The rooted flag must be given explicitly,
// as phyloXML does not define a default.
func NewPhylogeny(root *Clade, rooted bool) *Phylogeny {
	return &Phylogeny{
		Rooted: rooted,
		Root:   root,
	}
}

// Kind returns the kind of the element.
func (p *Phylogeny) Kind() Kind { return PhylogenyKind }

// String returns the display label of the phylogeny.
func (p *Phylogeny) String() string { return label(p) }

// Find returns an iterator
// over the elements of the tree
// that match the given kind
// and attribute conditions.
// It is equivalent to calling Find
// on the root clade of the phylogeny.
func (p *Phylogeny) Find(kind Kind, conds ...Condition) *Matches {
	if p.Root == nil {
		return &Matches{done: true}
	}
	return p.Root.Find(kind, conds...)
}

// Phyloxml creates a new document
// that contains just this phylogeny,
// with the given namespace attributes.
func (p *Phylogeny) Phyloxml(attributes map[string]string) *Phyloxml {
	return &Phyloxml{
		Attributes:  attributes,
		Phylogenies: []*Phylogeny{p},
	}
}

// Confidence returns the confidence of the phylogeny
// if it has exactly one confidence value.
// With zero,
// or more than one value,
// it returns an error;
// in that case use the Confidences field.
func (p *Phylogeny) Confidence() (*Confidence, error) {
	if len(p.Confidences) == 0 {
		return nil, errors.New("phylogeny: confidences is empty")
	}
	if len(p.Confidences) > 1 {
		return nil, errors.New("phylogeny: more than one confidence value available; use the Confidences field")
	}
	return p.Confidences[0], nil
}

func (p *Phylogeny) fields() []field {
	return []field{
		{"branch_length_unit", strVal(p.BranchLengthUnit)},
		{"clade", child(p.Root)},
		{"clade_relations", elems(p.CladeRelations)},
		{"confidences", elems(p.Confidences)},
		{"date", child(p.Date)},
		{"description", strVal(p.Description)},
		{"id", child(p.ID)},
		{"name", strVal(p.Name)},
		{"other", elems(p.Other)},
		{"properties", elems(p.Properties)},
		{"rerootable", boolPtr(p.Rerootable)},
		{"rooted", boolVal(p.Rooted)},
		{"sequence_relations", elems(p.SequenceRelations)},
		{"type", strVal(p.Type)},
	}
}

// A Clade is a branch of a phylogenetic tree.
// Clades nest recursively
// through the Clades field,
// which describes the topology of the tree;
// there is no back-reference to the parent clade.
//
// The branch length is the length
// of the branch that connects the clade
// with its parent.
// The color and width of a branch
// apply to the whole clade
// unless overwritten by a sub-clade.
type Clade struct {
	BranchLength *float64
	IDSource     string

	Name             string
	Width            *float64
	Color            *BranchColor
	NodeID           *ID
	Events           *Events
	BinaryCharacters *BinaryCharacters
	Date             *Date

	Confidences   []*Confidence
	Taxonomies    []*Taxonomy
	Sequences     []*Sequence
	Distributions []*Distribution
	References    []*Reference
	Properties    []*Property
	Clades        []*Clade
	Other         []*Other
}

// Kind returns the kind of the element.
func (c *Clade) Kind() Kind { return CladeKind }

// String returns the display label of the clade.
func (c *Clade) String() string { return label(c) }

// Len returns the number of sub-clades
// directly under this clade.
func (c *Clade) Len() int { return len(c.Clades) }

// Child returns the i-th sub-clade of this clade.
// It panics if the index is out of range.
func (c *Clade) Child(i int) *Clade { return c.Clades[i] }

// Descend walks down the tree
// following a path of child indexes,
// one per level,
// and returns the clade at the end of the path.
// It returns an error if an index is out of range
// at any level.
func (c *Clade) Descend(path ...int) (*Clade, error) {
	for d, i := range path {
		if i < 0 || i >= len(c.Clades) {
			return nil, fmt.Errorf("clade: index %d out of range at level %d", i, d)
		}
		c = c.Clades[i]
	}
	return c, nil
}

// Phylogeny creates a new phylogeny
// with this clade as its root.
// The rooted flag of the new phylogeny
// must be given explicitly.
func (c *Clade) Phylogeny(rooted bool) *Phylogeny {
	return NewPhylogeny(c, rooted)
}

// Confidence returns the confidence of the clade
// if it has exactly one confidence value.
// With zero,
// or more than one value,
// it returns an error;
// in that case use the Confidences field.
func (c *Clade) Confidence() (*Confidence, error) {
	if len(c.Confidences) == 0 {
		return nil, errors.New("clade: confidences is empty")
	}
	if len(c.Confidences) > 1 {
		return nil, errors.New("clade: more than one confidence value available; use the Confidences field")
	}
	return c.Confidences[0], nil
}

// Taxonomy returns the taxonomy of the clade
// if it has exactly one taxonomy.
// With zero,
// or more than one taxonomy,
// it returns an error;
// in that case use the Taxonomies field.
func (c *Clade) Taxonomy() (*Taxonomy, error) {
	if len(c.Taxonomies) == 0 {
		return nil, errors.New("clade: taxonomies is empty")
	}
	if len(c.Taxonomies) > 1 {
		return nil, errors.New("clade: more than one taxonomy value available; use the Taxonomies field")
	}
	return c.Taxonomies[0], nil
}

func (c *Clade) fields() []field {
	return []field{
		{"binary_characters", child(c.BinaryCharacters)},
		{"branch_length", floatPtr(c.BranchLength)},
		{"clades", elems(c.Clades)},
		{"color", child(c.Color)},
		{"confidences", elems(c.Confidences)},
		{"date", child(c.Date)},
		{"distributions", elems(c.Distributions)},
		{"events", child(c.Events)},
		{"id_source", strVal(c.IDSource)},
		{"name", strVal(c.Name)},
		{"node_id", child(c.NodeID)},
		{"other", elems(c.Other)},
		{"properties", elems(c.Properties)},
		{"references", elems(c.References)},
		{"sequences", elems(c.Sequences)},
		{"taxonomies", elems(c.Taxonomies)},
		{"width", floatPtr(c.Width)},
	}
}

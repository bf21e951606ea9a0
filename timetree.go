// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package phyloxml

import (
	"strconv"

	"github.com/js-arias/timetree"
)

// millionYears is the number of years
// in the base time unit of phylogenetic dating.
const millionYears = 1_000_000

// FromTimeTree creates a new phylogeny
// from a time calibrated tree.
//
// The taxon of each node becomes the clade name,
// the node age becomes a clade date
// in million years,
// and branch lengths are set
// to the time between a node and its parent,
// also in million years.
// The identifiers of the source nodes
// are kept as node IDs.
// Time trees are always rooted.
func FromTimeTree(t *timetree.Tree) *Phylogeny {
	p := NewPhylogeny(timeTreeClade(t, t.Root()), true)
	p.Name = t.Name()
	p.BranchLengthUnit = "mya"
	return p
}

func timeTreeClade(t *timetree.Tree, n int) *Clade {
	c := &Clade{
		Name: t.Taxon(n),
		NodeID: &ID{
			Value: strconv.Itoa(n),
			Type:  "timetree",
		},
	}

	age := float64(t.Age(n)) / millionYears
	c.Date = &Date{
		Value: &age,
		Unit:  "mya",
	}
	if !t.IsRoot(n) {
		bl := float64(t.Age(t.Parent(n)))/millionYears - age
		c.BranchLength = &bl
	}

	for _, d := range t.Children(n) {
		c.Clades = append(c.Clades, timeTreeClade(t, d))
	}
	return c
}

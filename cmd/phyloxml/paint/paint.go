// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package paint implements a command to assign
// branch colors to the trees in a tree file,
// scaled by node age.
package paint

import (
	"fmt"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/phyloxml"
	"github.com/js-arias/timetree"
)

var Command = &command.Command{
	Usage: "paint [--tree <tree-name>] <tree-file>",
	Short: "assign age-scaled branch colors",
	Long: `
Command paint reads the trees from a tab-delimited tree file, assigns to
each clade a branch color taken from a color blind friendly gradient scaled
by the age of the node (oldest nodes first in the gradient), and prints each
node with its age and the hexadecimal RGB value of its color to the standard
output.

The argument of the command is the name of the tree file.

By default all trees in the file will be painted. If the flag --tree is set,
only the indicated tree will be painted.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var treeName string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&treeName, "tree", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting tree file")
	}

	tc, err := readTreeFile(args[0])
	if err != nil {
		return err
	}

	ls := tc.Names()
	if treeName != "" {
		ls = []string{treeName}
	}

	fmt.Fprintf(c.Stdout(), "tree\tnode\tage\tcolor\n")
	for _, tn := range ls {
		t := tc.Tree(tn)
		if t == nil {
			continue
		}
		p := phyloxml.FromTimeTree(t)
		if p.Root == nil {
			continue
		}

		rootAge := cladeAge(p.Root)
		paintClade(c, tn, p.Root, rootAge)
	}
	return nil
}

// paintClade assigns a gradient color to a clade
// by the relative age of its node,
// and then descends into its sub-clades.
func paintClade(c *command.Command, name string, cl *phyloxml.Clade, rootAge float64) {
	age := cladeAge(cl)
	v := 0.0
	if rootAge > 0 {
		v = age / rootAge
	}
	cl.Color = phyloxml.Gradient(v)

	node := cl.Name
	if node == "" && cl.NodeID != nil {
		node = cl.NodeID.Value
	}
	fmt.Fprintf(c.Stdout(), "%s\t%s\t%.6f\t%s\n", name, node, age, cl.Color.RGB())

	for _, d := range cl.Clades {
		paintClade(c, name, d, rootAge)
	}
}

func cladeAge(cl *phyloxml.Clade) float64 {
	if cl.Date == nil || cl.Date.Value == nil {
		return 0
	}
	return *cl.Date.Value
}

func readTreeFile(name string) (*timetree.Collection, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := timetree.ReadTSV(f)
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", name, err)
	}
	return c, nil
}

// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package stats implements a command to print
// summary statistics of the branch lengths
// of the trees in a tree file.
package stats

import (
	"fmt"
	"os"
	"sort"

	"github.com/js-arias/command"
	"github.com/js-arias/phyloxml"
	"github.com/js-arias/timetree"
	"gonum.org/v1/gonum/stat"
)

var Command = &command.Command{
	Usage: "stats [--tree <tree-name>] <tree-file>",
	Short: "print branch length statistics",
	Long: `
Command stats reads the trees from a tab-delimited tree file and print, for
each tree, the number of nodes and the mean, standard deviation, median, and
maximum of its branch lengths, in million years, to the standard output.

The argument of the command is the name of the tree file.

By default all trees in the file will be used. If the flag --tree is set,
only the indicated tree will be used.
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

	fmt.Fprintf(c.Stdout(), "tree\tnodes\tmean\tstdev\tmedian\tmax\n")
	for _, tn := range ls {
		t := tc.Tree(tn)
		if t == nil {
			continue
		}
		p := phyloxml.FromTimeTree(t)

		lens, err := branchLengths(p)
		if err != nil {
			return err
		}
		if len(lens) == 0 {
			continue
		}
		sort.Float64s(lens)

		fmt.Fprintf(c.Stdout(), "%s\t%d\t%.6f\t%.6f\t%.6f\t%.6f\n",
			tn, len(lens),
			stat.Mean(lens, nil),
			stat.StdDev(lens, nil),
			stat.Quantile(0.5, stat.Empirical, lens, nil),
			lens[len(lens)-1])
	}
	return nil
}

// branchLengths walks a tree in pre-order
// and collects the branch lengths
// of all its clades.
func branchLengths(p *phyloxml.Phylogeny) ([]float64, error) {
	var lens []float64
	m := p.Find(phyloxml.CladeKind)
	for m.Next() {
		cl := m.Element().(*phyloxml.Clade)
		if cl.BranchLength == nil {
			continue
		}
		lens = append(lens, *cl.BranchLength)
	}
	if err := m.Err(); err != nil {
		return nil, err
	}
	return lens, nil
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

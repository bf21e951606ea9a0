// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package find implements a command to search
// the elements of the trees in a tree file.
package find

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/phyloxml"
	"github.com/js-arias/timetree"
)

var Command = &command.Command{
	Usage: `find [--kind <kind>] [--attr <key=pattern>]
	[--tree <tree-name>] <tree-file>`,
	Short: "search the elements of the trees in a tree file",
	Long: `
Command find reads the trees from a tab-delimited tree file and walks each
tree in pre-order printing the elements that match the query.

The argument of the command is the name of the tree file.

By default every element will be reported. If the flag --kind is set, only
elements of the indicated kind (for example "Clade", "Date", or "Id") will
be reported.

The flag --attr adds a condition on a field of the elements, in the form
"<key>=<pattern>". The key is a phyloXML field name, such as "name" or
"branch_length". If the pattern is "true" or "false" it will match the truth
value of the field; if it is an integer it will match the field value
exactly; any other pattern is used as a regular expression anchored at the
start of the field value. The flag can be given multiple times; an element
will be reported if any of the conditions match.

By default all trees in the file will be searched. If the flag --tree is
set, only the indicated tree will be searched.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var kindFlag string
var treeName string
var attrFlags attrList

type attrList []string

func (a *attrList) String() string { return strings.Join(*a, ",") }

func (a *attrList) Set(v string) error {
	if !strings.Contains(v, "=") {
		return fmt.Errorf("expecting \"<key>=<pattern>\", got %q", v)
	}
	*a = append(*a, v)
	return nil
}

func setFlags(c *command.Command) {
	c.Flags().StringVar(&kindFlag, "kind", "", "")
	c.Flags().StringVar(&treeName, "tree", "", "")
	c.Flags().Var(&attrFlags, "attr", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting tree file")
	}

	kind := phyloxml.AnyElement
	if kindFlag != "" {
		var err error
		kind, err = phyloxml.ParseKind(kindFlag)
		if err != nil {
			return err
		}
	}
	conds, err := parseConditions(attrFlags)
	if err != nil {
		return err
	}

	tc, err := readTreeFile(args[0])
	if err != nil {
		return err
	}

	ls := tc.Names()
	if treeName != "" {
		ls = []string{treeName}
	}
	for _, tn := range ls {
		t := tc.Tree(tn)
		if t == nil {
			continue
		}
		p := phyloxml.FromTimeTree(t)

		m := p.Find(kind, conds...)
		for m.Next() {
			fmt.Fprintf(c.Stdout(), "%s: %s\n", tn, phyloxml.Describe(m.Element()))
		}
		if err := m.Err(); err != nil {
			return err
		}
	}
	return nil
}

// parseConditions builds the query conditions
// from the --attr flags.
// The pattern type is guessed from the value:
// "true" and "false" are truth patterns,
// integers are numeric patterns,
// and anything else is a regular expression.
func parseConditions(attrs []string) ([]phyloxml.Condition, error) {
	var conds []phyloxml.Condition
	for _, a := range attrs {
		key, val, _ := strings.Cut(a, "=")
		if key == "" {
			return nil, fmt.Errorf("invalid attribute condition %q", a)
		}

		var p phyloxml.Pattern
		if n, err := strconv.Atoi(val); err == nil {
			p = phyloxml.Number(n)
		} else if b, err := strconv.ParseBool(val); err == nil {
			p = phyloxml.Flag(b)
		} else {
			p = phyloxml.Text(val)
		}
		conds = append(conds, phyloxml.On(key, p))
	}
	return conds, nil
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

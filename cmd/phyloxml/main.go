// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// PhyloXML is a tool to inspect time calibrated phylogenetic trees
// through the lens of the phyloXML document model.
package main

import (
	"github.com/js-arias/command"
	"github.com/js-arias/phyloxml/cmd/phyloxml/find"
	"github.com/js-arias/phyloxml/cmd/phyloxml/list"
	"github.com/js-arias/phyloxml/cmd/phyloxml/paint"
	"github.com/js-arias/phyloxml/cmd/phyloxml/stats"
	"github.com/js-arias/phyloxml/cmd/phyloxml/terms"
)

var app = &command.Command{
	Usage: "phyloxml <command> [<argument>...]",
	Short: "a tool to inspect phylogenetic trees",
}

func init() {
	app.Add(find.Command)
	app.Add(list.Command)
	app.Add(paint.Command)
	app.Add(stats.Command)
	app.Add(terms.Command)
}

func main() {
	app.Main()
}

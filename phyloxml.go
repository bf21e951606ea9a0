// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package phyloxml implements an in-memory representation
// of phylogenetic trees
// based on the elements of the phyloXML format
// <http://www.phyloxml.org>.
//
// A Phyloxml document contains one or more Phylogeny trees,
// each one rooted at a Clade.
// Clades nest recursively
// and carry typed annotations
// (taxonomies, sequences, confidence values, events, and so on),
// each one a fixed record
// with explicitly optional fields.
// Optional strings use the empty string as the unset value,
// optional numeric and boolean fields are pointers,
// and unset collections are empty slices.
//
// The package does not read or write XML:
// a document is expected to be built field by field
// by an external parser,
// using the element struct literals
// and the New functions of the kinds that require validation.
//
// Elements in a subtree can be retrieved
// with the Find method of a Clade or a Phylogeny,
// which walks the subtree in pre-order
// filtering by element kind
// and by attribute patterns.
package phyloxml

import (
	"fmt"
	"os"
	"strconv"
)

// Warn is called to report a field value
// that does not comply with the phyloXML specification.
// Non-compliant values are stored as given,
// so the report is a warning
// and not an error.
//
// By default it prints the message
// to the standard error.
// It can be replaced,
// for example to silence the warnings,
// or to capture them in tests.
var Warn = func(msg string) {
	fmt.Fprintf(os.Stderr, "phyloxml: warning: %s\n", msg)
}

// Kind is the kind of an element
// in a phyloXML document.
type Kind int

// Element kinds.
const (
	// AnyElement is the kind-group
	// that matches any element kind in a Find query.
	AnyElement Kind = iota

	AccessionKind
	AnnotationKind
	BinaryCharactersKind
	BranchColorKind
	CladeKind
	CladeRelationKind
	ConfidenceKind
	DateKind
	DistributionKind
	DomainArchitectureKind
	EventsKind
	IDKind
	OtherKind
	PhylogenyKind
	PhyloxmlKind
	PointKind
	PolygonKind
	PropertyKind
	ProteinDomainKind
	ReferenceKind
	SequenceKind
	SequenceRelationKind
	TaxonomyKind
	UriKind
)

var kindNames = map[Kind]string{
	AnyElement:             "Element",
	AccessionKind:          "Accession",
	AnnotationKind:         "Annotation",
	BinaryCharactersKind:   "BinaryCharacters",
	BranchColorKind:        "BranchColor",
	CladeKind:              "Clade",
	CladeRelationKind:      "CladeRelation",
	ConfidenceKind:         "Confidence",
	DateKind:               "Date",
	DistributionKind:       "Distribution",
	DomainArchitectureKind: "DomainArchitecture",
	EventsKind:             "Events",
	IDKind:                 "Id",
	OtherKind:              "Other",
	PhylogenyKind:          "Phylogeny",
	PhyloxmlKind:           "Phyloxml",
	PointKind:              "Point",
	PolygonKind:            "Polygon",
	PropertyKind:           "Property",
	ProteinDomainKind:      "ProteinDomain",
	ReferenceKind:          "Reference",
	SequenceKind:           "Sequence",
	SequenceRelationKind:   "SequenceRelation",
	TaxonomyKind:           "Taxonomy",
	UriKind:                "Uri",
}

// String returns the name of an element kind.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "<unknown kind>"
}

// ParseKind returns the element kind
// with the given name.
func ParseKind(s string) (Kind, error) {
	for k, n := range kindNames {
		if n == s {
			return k, nil
		}
	}
	return AnyElement, fmt.Errorf("unknown element kind %q", s)
}

// An Element is a node
// of a phyloXML document graph.
type Element interface {
	// Kind returns the kind of the element.
	Kind() Kind

	// String returns a short display label for the element,
	// made of the kind name
	// and the most identifying field of the element.
	String() string

	// fields returns the fields of the element
	// in lexicographic order of the phyloXML field names.
	fields() []field
}

// A field is a named field of an element,
// under its phyloXML name.
type field struct {
	name string
	val  value
}

// valueKind indicates the type stored in a value.
type valueKind int

const (
	valString valueKind = iota
	valInt
	valFloat
	valBool
	valElement
	valList
	valStrings
	valAttrs
)

// A value holds the content of an element field.
// A value knows if it is set
// (absent fields are semantically different
// from zero values in phyloXML)
// and its own truth value.
type value struct {
	kind valueKind
	set  bool
	str  string
	num  int
	real float64
	flag bool
	elem Element
	list []Element
	strs []string
}

func strVal(s string) value {
	return value{kind: valString, str: s, set: s != ""}
}

func intVal(i int) value {
	return value{kind: valInt, num: i, set: true}
}

func intPtr(p *int) value {
	if p == nil {
		return value{kind: valInt}
	}
	return value{kind: valInt, num: *p, set: true}
}

func floatVal(f float64) value {
	return value{kind: valFloat, real: f, set: true}
}

func floatPtr(p *float64) value {
	if p == nil {
		return value{kind: valFloat}
	}
	return value{kind: valFloat, real: *p, set: true}
}

func boolVal(b bool) value {
	return value{kind: valBool, flag: b, set: true}
}

func boolPtr(p *bool) value {
	if p == nil {
		return value{kind: valBool}
	}
	return value{kind: valBool, flag: *p, set: true}
}

// child stores a single child element,
// or an unset value if the pointer is nil.
func child[T any, P interface {
	*T
	Element
}](p P) value {
	if p == nil {
		return value{kind: valElement}
	}
	return value{kind: valElement, elem: p, set: true}
}

// elems stores an ordered collection of child elements.
func elems[T any, P interface {
	*T
	Element
}](s []P) value {
	ls := make([]Element, len(s))
	for i, e := range s {
		ls[i] = e
	}
	return value{kind: valList, list: ls, set: len(ls) > 0}
}

// names stores a collection of plain strings
// (such as the common names of a taxonomy).
func names(s []string) value {
	return value{kind: valStrings, strs: s, set: len(s) > 0}
}

// attrs stores a collection of foreign XML attributes.
func attrs(m map[string]string) value {
	return value{kind: valAttrs, num: len(m), set: len(m) > 0}
}

// truthy returns the truth value of a field,
// in the sense used by boolean query patterns:
// an unset field,
// an empty string,
// a zero number,
// or an empty collection
// are all false.
func (v value) truthy() bool {
	if !v.set {
		return false
	}
	switch v.kind {
	case valString:
		return v.str != ""
	case valInt:
		return v.num != 0
	case valFloat:
		return v.real != 0
	case valBool:
		return v.flag
	case valElement:
		return v.elem != nil
	case valList:
		return len(v.list) > 0
	case valStrings:
		return len(v.strs) > 0
	case valAttrs:
		return v.num > 0
	}
	return false
}

// text returns the display text of a field value.
func (v value) text() string {
	switch v.kind {
	case valString:
		return v.str
	case valInt:
		return strconv.Itoa(v.num)
	case valFloat:
		return strconv.FormatFloat(v.real, 'g', -1, 64)
	case valBool:
		return strconv.FormatBool(v.flag)
	case valElement:
		if v.elem != nil {
			return v.elem.String()
		}
	}
	return ""
}

// lookup searches a field of an element
// by its phyloXML name.
// It returns false if the element kind
// does not define a field with that name.
func lookup(e Element, name string) (value, bool) {
	for _, f := range e.fields() {
		if f.name == name {
			return f.val, true
		}
	}
	return value{}, false
}

// children returns the child elements of an element,
// visiting single element fields first
// and then the elements of each collection,
// both in lexicographic order of the field names.
func children(e Element) []Element {
	fs := e.fields()
	var ls []Element
	for _, f := range fs {
		if f.val.kind == valElement && f.val.elem != nil {
			ls = append(ls, f.val.elem)
		}
	}
	for _, f := range fs {
		if f.val.kind == valList {
			ls = append(ls, f.val.list...)
		}
	}
	return ls
}

// trim cuts a display string to a maximum length,
// marking the cut with an ellipsis.
func trim(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}

// label builds the display label of an element:
// the kind name followed by the first set
// of the name, value, or id fields,
// cut to 40 characters.
func label(e Element) string {
	s := e.Kind().String()
	for _, name := range []string{"name", "value", "id"} {
		v, ok := lookup(e, name)
		if !ok || !v.truthy() {
			continue
		}
		return s + " " + trim(v.text(), 40)
	}
	return s
}

// Describe returns a debug representation of an element:
// the kind name
// with every set primitive field
// (strings, integers, and floats),
// each value cut to 60 characters.
func Describe(e Element) string {
	s := e.Kind().String() + "("
	first := true
	for _, f := range e.fields() {
		if !f.val.set {
			continue
		}
		var txt string
		switch f.val.kind {
		case valString:
			txt = strconv.Quote(trim(f.val.str, 60))
		case valInt, valFloat:
			txt = trim(f.val.text(), 60)
		default:
			continue
		}
		if !first {
			s += ", "
		}
		first = false
		s += f.name + "=" + txt
	}
	return s + ")"
}

// checkPattern reports a string
// that does not match a constraint
// of the phyloXML specification.
func checkPattern(name, s string, ok func(string) bool) {
	if s == "" {
		return
	}
	if !ok(s) {
		Warn(fmt.Sprintf("string %q is not a valid %s", s, name))
	}
}

// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package phyloxml

import (
	"fmt"
	"regexp"
)

// patternKind indicates the type of a query pattern.
type patternKind int

const (
	patInvalid patternKind = iota
	patText
	patFlag
	patNumber
)

// A Pattern is a value to match
// against an element field in a Find query.
// A pattern is created with Text,
// Flag,
// or Number;
// the zero pattern is invalid
// and will abort the query.
type Pattern struct {
	kind patternKind
	expr string
	flag bool
	num  int
}

// Text returns a pattern that matches a string field
// with a regular expression
// anchored at the start of the field value.
func Text(expr string) Pattern {
	return Pattern{kind: patText, expr: expr}
}

// Flag returns a pattern that matches the truth value
// of a field:
// an unset field,
// an empty string,
// a zero number,
// and an empty collection
// are all false.
func Flag(v bool) Pattern {
	return Pattern{kind: patFlag, flag: v}
}

// Number returns a pattern that matches
// an integer field with the exact value.
// Float fields can not be matched numerically;
// to select them,
// match with Flag
// and filter the retrieved elements.
func Number(v int) Pattern {
	return Pattern{kind: patNumber, num: v}
}

// A Condition pairs a field name,
// under its phyloXML name,
// with the pattern to match against the field.
type Condition struct {
	Key     string
	Pattern Pattern
}

// On is a shorthand to build a condition.
func On(key string, p Pattern) Condition {
	return Condition{Key: key, Pattern: p}
}

// Matches is a lazy iterator
// over the elements that match a Find query.
// The elements are produced in pre-order:
// each element is reported
// before any of its own descendants.
// A Matches value is not restartable;
// call Find again for a new traversal.
//
// The usual loop is:
//
//	for m := c.Find(phyloxml.TaxonomyKind); m.Next(); {
//		e := m.Element()
//		...
//	}
//	if err := m.Err(); err != nil {
//		...
//	}
type Matches struct {
	kind  Kind
	conds []Condition
	res   []*regexp.Regexp

	stack []Element
	cur   Element
	err   error
	done  bool
}

// Find returns an iterator
// over the elements of the subtree of the clade
// that match the given kind
// and attribute conditions.
// The clade itself is not part of the traversal.
//
// The kind selects the elements by their kind;
// AnyElement matches every element.
//
// Each condition names a field
// and gives a pattern for it.
// A condition on a field
// that the element kind does not define
// is ignored for that element.
// With no conditions,
// every element of the kind matches.
// With more than one condition,
// an element matches
// if any single condition matches:
// the result is the union of the conditions,
// not the intersection.
func (c *Clade) Find(kind Kind, conds ...Condition) *Matches {
	m := &Matches{
		kind:  kind,
		conds: conds,
	}
	m.push(c)
	return m
}

// push adds the children of an element
// to the work stack,
// in reverse order,
// so that the stack pops them
// in their pre-order position.
func (m *Matches) push(e Element) {
	ch := children(e)
	for i := len(ch) - 1; i >= 0; i-- {
		m.stack = append(m.stack, ch[i])
	}
}

// Next advances the iterator
// to the next matching element.
// It returns false when the traversal is exhausted,
// or when the query fails;
// check Err to distinguish the two cases.
func (m *Matches) Next() bool {
	if m.err != nil || m.done {
		return false
	}
	if m.res == nil {
		if err := m.compile(); err != nil {
			m.err = err
			m.done = true
			return false
		}
	}
	for len(m.stack) > 0 {
		e := m.stack[len(m.stack)-1]
		m.stack = m.stack[:len(m.stack)-1]
		m.push(e)

		ok, err := m.match(e)
		if err != nil {
			m.err = err
			m.done = true
			return false
		}
		if ok {
			m.cur = e
			return true
		}
	}
	m.done = true
	return false
}

// Element returns the current matching element.
// It is only valid after a call to Next
// that returned true.
func (m *Matches) Element() Element { return m.cur }

// Err returns the error that aborted the query,
// if any.
func (m *Matches) Err() error { return m.err }

// compile validates the query conditions
// and compiles the text patterns,
// anchoring them at the start of the field value.
func (m *Matches) compile() error {
	m.res = make([]*regexp.Regexp, len(m.conds))
	for i, cn := range m.conds {
		switch cn.Pattern.kind {
		case patText:
			re, err := regexp.Compile("^(?:" + cn.Pattern.expr + ")")
			if err != nil {
				return fmt.Errorf("find: invalid pattern for %q: %v", cn.Key, err)
			}
			m.res[i] = re
		case patFlag, patNumber:
		default:
			return fmt.Errorf("find: invalid pattern for %q", cn.Key)
		}
	}
	return nil
}

// match tests an element against the query.
func (m *Matches) match(e Element) (bool, error) {
	if m.kind != AnyElement && e.Kind() != m.kind {
		return false, nil
	}
	if len(m.conds) == 0 {
		return true, nil
	}
	for i, cn := range m.conds {
		v, ok := lookup(e, cn.Key)
		if !ok {
			continue
		}
		switch cn.Pattern.kind {
		case patText:
			if v.kind != valString || !v.set {
				continue
			}
			if m.res[i].MatchString(v.str) {
				return true, nil
			}
		case patFlag:
			if cn.Pattern.flag == v.truthy() {
				return true, nil
			}
		case patNumber:
			if v.kind != valInt || !v.set {
				continue
			}
			if cn.Pattern.num == v.num {
				return true, nil
			}
		}
	}
	return false, nil
}

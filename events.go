// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package phyloxml

import "fmt"

// okEventType is the closed set of valid event types.
var okEventType = map[string]bool{
	"transfer":                  true,
	"fusion":                    true,
	"speciation_or_duplication": true,
	"other":                     true,
	"mixed":                     true,
	"unassigned":                true,
}

// An Events element describes the events
// at the root node of a clade,
// such as gene duplications,
// speciations,
// and gene losses.
//
// Besides the plain fields,
// an Events value can be used
// as a key-value view over its own set fields,
// with the field names as keys.
// Deleting a key sets the field back to unset.
//
// Use NewEvents to validate the type field
// at construction.
type Events struct {
	Type         string
	Duplications *int
	Speciations  *int
	Losses       *int
	Confidence   *Confidence
}

// NewEvents creates a new events element,
// reporting a warning
// if the type is not a valid event type.
// The value is stored as given.
func NewEvents(ev Events) *Events {
	checkPattern("event type", ev.Type, func(s string) bool { return okEventType[s] })
	return &ev
}

// Kind returns the kind of the element.
func (e *Events) Kind() Kind { return EventsKind }

// String returns the display label of the element.
func (e *Events) String() string { return label(e) }

func (e *Events) fields() []field {
	return []field{
		{"confidence", child(e.Confidence)},
		{"duplications", intPtr(e.Duplications)},
		{"losses", intPtr(e.Losses)},
		{"speciations", intPtr(e.Speciations)},
		{"type", strVal(e.Type)},
	}
}

// An EventItem is a key-value pair
// of the map view of an Events element.
type EventItem struct {
	Key   string
	Value any
}

// eventKeys are the field names of an Events element,
// which are the valid keys of its map view.
var eventKeys = []string{
	"confidence",
	"duplications",
	"losses",
	"speciations",
	"type",
}

// Has reports if the given field of the element
// is set.
func (e *Events) Has(key string) bool {
	v, ok := lookup(e, key)
	return ok && v.set
}

// Get returns the value of the given field.
// The returned value is a string for "type",
// an int for the event counts,
// and a *Confidence for "confidence".
// It returns an error that wraps ErrNotFound
// if the field is unset,
// or if the key is not a field of Events.
func (e *Events) Get(key string) (any, error) {
	switch key {
	case "type":
		if e.Type != "" {
			return e.Type, nil
		}
	case "duplications":
		if e.Duplications != nil {
			return *e.Duplications, nil
		}
	case "speciations":
		if e.Speciations != nil {
			return *e.Speciations, nil
		}
	case "losses":
		if e.Losses != nil {
			return *e.Losses, nil
		}
	case "confidence":
		if e.Confidence != nil {
			return e.Confidence, nil
		}
	default:
		return nil, fmt.Errorf("events: key %q: %w", key, ErrNotFound)
	}
	return nil, fmt.Errorf("events: key %q is not set: %w", key, ErrNotFound)
}

// Set assigns a value to the given field.
// The value must be a string for "type",
// an int for the event counts,
// and a *Confidence for "confidence";
// any other type is an error.
// It returns an error that wraps ErrNotFound
// if the key is not a field of Events.
func (e *Events) Set(key string, val any) error {
	switch key {
	case "type":
		s, ok := val.(string)
		if !ok {
			return fmt.Errorf("events: key %q: invalid value of type %T", key, val)
		}
		checkPattern("event type", s, func(s string) bool { return okEventType[s] })
		e.Type = s
	case "duplications", "speciations", "losses":
		n, ok := val.(int)
		if !ok {
			return fmt.Errorf("events: key %q: invalid value of type %T", key, val)
		}
		switch key {
		case "duplications":
			e.Duplications = &n
		case "speciations":
			e.Speciations = &n
		case "losses":
			e.Losses = &n
		}
	case "confidence":
		cf, ok := val.(*Confidence)
		if !ok {
			return fmt.Errorf("events: key %q: invalid value of type %T", key, val)
		}
		e.Confidence = cf
	default:
		return fmt.Errorf("events: key %q: %w", key, ErrNotFound)
	}
	return nil
}

// Del sets the given field back to unset.
// The field itself remains part of the element.
// It returns an error that wraps ErrNotFound
// if the key is not a field of Events.
func (e *Events) Del(key string) error {
	switch key {
	case "type":
		e.Type = ""
	case "duplications":
		e.Duplications = nil
	case "speciations":
		e.Speciations = nil
	case "losses":
		e.Losses = nil
	case "confidence":
		e.Confidence = nil
	default:
		return fmt.Errorf("events: key %q: %w", key, ErrNotFound)
	}
	return nil
}

// Keys returns the names of the set fields
// of the element.
func (e *Events) Keys() []string {
	var ks []string
	for _, k := range eventKeys {
		if e.Has(k) {
			ks = append(ks, k)
		}
	}
	return ks
}

// Values returns the values of the set fields
// of the element,
// in the order of Keys.
func (e *Events) Values() []any {
	var vs []any
	for _, k := range e.Keys() {
		v, err := e.Get(k)
		if err != nil {
			continue
		}
		vs = append(vs, v)
	}
	return vs
}

// Items returns the key-value pairs
// of the set fields of the element,
// in the order of Keys.
func (e *Events) Items() []EventItem {
	var items []EventItem
	for _, k := range e.Keys() {
		v, err := e.Get(k)
		if err != nil {
			continue
		}
		items = append(items, EventItem{Key: k, Value: v})
	}
	return items
}

// Len returns the number of set fields
// of the element.
func (e *Events) Len() int { return len(e.Keys()) }

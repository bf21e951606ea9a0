// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package phyloxml_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/js-arias/phyloxml"
)

func TestEventsView(t *testing.T) {
	dup := 3
	ev := phyloxml.NewEvents(phyloxml.Events{
		Type:         "speciation_or_duplication",
		Duplications: &dup,
	})

	if !ev.Has("type") {
		t.Errorf("expecting key %q", "type")
	}
	if ev.Has("losses") {
		t.Errorf("unexpected key %q", "losses")
	}
	if ev.Has("not-a-field") {
		t.Errorf("unexpected key %q", "not-a-field")
	}

	v, err := ev.Get("duplications")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 3 {
		t.Errorf("got %v, want 3", v)
	}

	if _, err := ev.Get("losses"); !errors.Is(err, phyloxml.ErrNotFound) {
		t.Errorf("unset key: got error %v, want %v", err, phyloxml.ErrNotFound)
	}
	if _, err := ev.Get("not-a-field"); !errors.Is(err, phyloxml.ErrNotFound) {
		t.Errorf("unknown key: got error %v, want %v", err, phyloxml.ErrNotFound)
	}

	keys := ev.Keys()
	wantKeys := []string{"duplications", "type"}
	if !reflect.DeepEqual(keys, wantKeys) {
		t.Errorf("keys: got %v, want %v", keys, wantKeys)
	}
	if ev.Len() != 2 {
		t.Errorf("len: got %d, want 2", ev.Len())
	}

	items := ev.Items()
	wantItems := []phyloxml.EventItem{
		{Key: "duplications", Value: 3},
		{Key: "type", Value: "speciation_or_duplication"},
	}
	if !reflect.DeepEqual(items, wantItems) {
		t.Errorf("items: got %v, want %v", items, wantItems)
	}
}

func TestEventsSet(t *testing.T) {
	ev := &phyloxml.Events{}

	if err := ev.Set("losses", 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev.Losses == nil || *ev.Losses != 2 {
		t.Errorf("losses field not assigned")
	}

	cf := &phyloxml.Confidence{Value: 0.9, Type: "posterior"}
	if err := ev.Set("confidence", cf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev.Confidence != cf {
		t.Errorf("confidence field not assigned")
	}

	if err := ev.Set("losses", "two"); err == nil {
		t.Errorf("expecting error on a value of the wrong type")
	}
	if err := ev.Set("not-a-field", 1); !errors.Is(err, phyloxml.ErrNotFound) {
		t.Errorf("unknown key: got error %v, want %v", err, phyloxml.ErrNotFound)
	}
}

func TestEventsDel(t *testing.T) {
	ev := phyloxml.NewEvents(phyloxml.Events{Type: "speciation_or_duplication"})

	if err := ev.Del("type"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev.Has("type") {
		t.Errorf("key %q should be unset after a delete", "type")
	}

	// The field is still part of the element:
	// it can be set again.
	if err := ev.Set("type", "transfer"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ev.Has("type") {
		t.Errorf("expecting key %q", "type")
	}

	if err := ev.Del("not-a-field"); !errors.Is(err, phyloxml.ErrNotFound) {
		t.Errorf("unknown key: got error %v, want %v", err, phyloxml.ErrNotFound)
	}
}

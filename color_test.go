// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package phyloxml_test

import (
	"strconv"
	"testing"

	"github.com/js-arias/phyloxml"
)

func TestBranchColorRGB(t *testing.T) {
	tests := map[string]struct {
		color phyloxml.BranchColor
		want  string
	}{
		"example": {phyloxml.BranchColor{Red: 12, Green: 200, Blue: 100}, "0cc864"},
		"black":   {phyloxml.BranchColor{}, "000000"},
		"white":   {phyloxml.BranchColor{Red: 255, Green: 255, Blue: 255}, "ffffff"},
		"red":     {phyloxml.BranchColor{Red: 255}, "ff0000"},
	}
	for name, test := range tests {
		if got := test.color.RGB(); got != test.want {
			t.Errorf("%s: got %q, want %q", name, got, test.want)
		}
	}
}

func TestBranchColorRoundTrip(t *testing.T) {
	bc := phyloxml.BranchColor{Red: 12, Green: 200, Blue: 100}
	v, err := strconv.ParseUint(bc.RGB(), 16, 32)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := phyloxml.BranchColor{
		Red:   uint8(v >> 16),
		Green: uint8(v >> 8),
		Blue:  uint8(v),
	}
	if got != bc {
		t.Errorf("got %v, want %v", got, bc)
	}
}

func TestGradient(t *testing.T) {
	for _, v := range []float64{-1, 0, 0.25, 0.5, 0.75, 1, 2} {
		bc := phyloxml.Gradient(v)
		if bc == nil {
			t.Fatalf("value %.2f: expecting a color", v)
		}
		rgb := bc.RGB()
		if len(rgb) != 6 {
			t.Errorf("value %.2f: got %q, want six hexadecimal digits", v, rgb)
		}
		if _, err := strconv.ParseUint(rgb, 16, 32); err != nil {
			t.Errorf("value %.2f: invalid RGB string %q: %v", v, rgb, err)
		}
	}
}

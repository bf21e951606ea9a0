// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package phyloxml

import (
	"fmt"
	"image/color"

	"github.com/js-arias/blind"
)

// A BranchColor indicates the color of a clade
// when rendered graphically.
// The color applies to the whole clade
// unless overwritten by the color of a sub-clade.
type BranchColor struct {
	Red   uint8
	Green uint8
	Blue  uint8
}

// Kind returns the kind of the element.
func (bc *BranchColor) Kind() Kind { return BranchColorKind }

// String returns the display label of the element.
func (bc *BranchColor) String() string { return label(bc) }

// RGB returns the 24 bit hexadecimal representation
// of the color,
// as six lowercase hexadecimal digits,
// suitable for HTML and CSS.
// For example,
// the RGB of BranchColor{12, 200, 100}
// is "0cc864".
func (bc *BranchColor) RGB() string {
	return fmt.Sprintf("%02x%02x%02x", bc.Red, bc.Green, bc.Blue)
}

// Color returns the branch color
// as an image color.
func (bc *BranchColor) Color() color.Color {
	return color.RGBA{R: bc.Red, G: bc.Green, B: bc.Blue, A: 255}
}

// Gradient returns the branch color
// for a value between 0 and 1,
// using a color blind friendly gradient.
// Values outside the range
// are moved to the closest bound.
func Gradient(v float64) *BranchColor {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	r, g, b, _ := blind.Gradient(v).RGBA()
	return &BranchColor{
		Red:   uint8(r >> 8),
		Green: uint8(g >> 8),
		Blue:  uint8(b >> 8),
	}
}

func (bc *BranchColor) fields() []field {
	return []field{
		{"blue", intVal(int(bc.Blue))},
		{"green", intVal(int(bc.Green))},
		{"red", intVal(int(bc.Red))},
	}
}

// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package seqrec defines a generic representation
// of an annotated biological sequence,
// independent of any particular file format.
package seqrec

// An Alphabet indicates the kind of residues
// of a sequence.
type Alphabet int

// Sequence alphabets.
const (
	Unspecified Alphabet = iota
	DNA
	RNA
	Protein
)

// String returns the name of an alphabet.
func (a Alphabet) String() string {
	switch a {
	case DNA:
		return "dna"
	case RNA:
		return "rna"
	case Protein:
		return "protein"
	}
	return "unspecified"
}

// A Record is an annotated biological sequence:
// the residues,
// an identifier,
// a short name,
// and a free text description,
// plus an open collection
// of annotations and sequence features.
type Record struct {
	// ID is the identifier of the sequence,
	// usually an accession.
	ID string

	// Name is a short name for the sequence.
	Name string

	// Description is a free text description
	// of the sequence.
	Description string

	// Seq is the residue string of the sequence.
	Seq string

	// Alphabet is the residue alphabet of the sequence.
	Alphabet Alphabet

	// Annotations is an open collection
	// of sequence level annotations.
	Annotations map[string]string

	// Features are the sequence features
	// defined on the record.
	Features []Feature
}

// A Feature is a span of a sequence
// with an identity and qualifiers,
// for example a protein domain.
// The span is half-open:
// Start is the first position of the feature
// and End is the position
// just after the last one.
type Feature struct {
	ID         string
	Start      int
	End        int
	Qualifiers map[string]string
}

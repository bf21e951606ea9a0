// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package phyloxml

import (
	"regexp"
	"strconv"

	"github.com/js-arias/phyloxml/seqrec"
)

// An Annotation is the annotation
// of a molecular sequence.
// It is recommended to annotate
// using the ref field,
// with values such as "GO:0008270"
// or "EC:1.1.1.1".
type Annotation struct {
	Ref      string
	Source   string
	Evidence string
	Type     string

	Desc       string
	Confidence *Confidence
	URI        *URI

	Properties []*Property
}

// Kind returns the kind of the element.
func (an *Annotation) Kind() Kind { return AnnotationKind }

// String returns the display label of the element.
func (an *Annotation) String() string { return label(an) }

func (an *Annotation) fields() []field {
	return []field{
		{"confidence", child(an.Confidence)},
		{"desc", strVal(an.Desc)},
		{"evidence", strVal(an.Evidence)},
		{"properties", elems(an.Properties)},
		{"ref", strVal(an.Ref)},
		{"source", strVal(an.Source)},
		{"type", strVal(an.Type)},
		{"uri", child(an.URI)},
	}
}

// A DomainArchitecture is the domain architecture
// of a protein.
// The length is the total length of the protein.
type DomainArchitecture struct {
	Length *int

	Domains []*ProteinDomain
}

// Kind returns the kind of the element.
func (da *DomainArchitecture) Kind() Kind { return DomainArchitectureKind }

// String returns the display label of the element.
func (da *DomainArchitecture) String() string { return label(da) }

func (da *DomainArchitecture) fields() []field {
	return []field{
		{"domains", elems(da.Domains)},
		{"length", intPtr(da.Length)},
	}
}

// A ProteinDomain is an individual domain
// in a protein domain architecture.
// The value is the name
// or identifier of the domain,
// and the span is half-open,
// from Start to End.
// The confidence can be used to store,
// for example,
// an E-value.
type ProteinDomain struct {
	Value      string
	Start      int
	End        int
	Confidence *float64
	ID         string
}

// FromFeature creates a new protein domain
// from a generic sequence feature:
// the span of the feature becomes the domain span,
// the feature identifier becomes the domain value,
// and a "confidence" qualifier,
// if present and numeric,
// becomes the domain confidence.
func FromFeature(ft seqrec.Feature) *ProteinDomain {
	pd := &ProteinDomain{
		Value: ft.ID,
		Start: ft.Start,
		End:   ft.End,
	}
	if q, ok := ft.Qualifiers["confidence"]; ok {
		if v, err := strconv.ParseFloat(q, 64); err == nil {
			pd.Confidence = &v
		}
	}
	return pd
}

// Feature returns the protein domain
// as a generic sequence feature
// spanning from the start to the end of the domain.
func (pd *ProteinDomain) Feature() seqrec.Feature {
	ft := seqrec.Feature{
		ID:    pd.Value,
		Start: pd.Start,
		End:   pd.End,
	}
	if pd.Confidence != nil {
		ft.Qualifiers = map[string]string{
			"confidence": strconv.FormatFloat(*pd.Confidence, 'g', -1, 64),
		}
	}
	return ft
}

// Kind returns the kind of the element.
func (pd *ProteinDomain) Kind() Kind { return ProteinDomainKind }

// String returns the display label of the element.
func (pd *ProteinDomain) String() string { return label(pd) }

func (pd *ProteinDomain) fields() []field {
	return []field{
		{"confidence", floatPtr(pd.Confidence)},
		{"end", intVal(pd.End)},
		{"id", strVal(pd.ID)},
		{"start", intVal(pd.Start)},
		{"value", strVal(pd.Value)},
	}
}

// reSymbol is the form of a sequence symbol,
// at most ten characters without spaces.
var reSymbol = regexp.MustCompile(`^\S{1,10}`)

// reMolSeq is the form of a molecular sequence,
// a string over the residue alphabet.
var reMolSeq = regexp.MustCompile(`^[a-zA-Z.\-?*_]+`)

// A Sequence is a molecular sequence
// (protein, DNA, or RNA)
// associated with a node.
// The type is "dna",
// "rna",
// or "aa".
// The symbol is a short name such as "ACTM",
// whereas the name is the full name,
// such as "muscle Actin".
//
// Use NewSequence to validate the symbol
// and the molecular sequence at construction.
type Sequence struct {
	Type     string
	IDRef    string
	IDSource string

	Symbol    string
	Accession *Accession
	Name      string
	Location  string
	MolSeq    string
	URI       *URI

	DomainArchitecture *DomainArchitecture
	Annotations        []*Annotation
	Other              []*Other
}

// NewSequence creates a new sequence,
// reporting a warning
// if the symbol or the molecular sequence
// do not comply with the phyloXML specification.
// The values are stored as given.
func NewSequence(sq Sequence) *Sequence {
	checkPattern("sequence symbol", sq.Symbol, reSymbol.MatchString)
	checkPattern("molecular sequence", sq.MolSeq, reMolSeq.MatchString)
	return &sq
}

// FromRecord creates a new sequence
// from a generic sequence record.
// The record identifier becomes the accession value,
// the record name the symbol,
// the record description the name,
// and the residues the molecular sequence;
// the sequence type is taken
// from the alphabet of the record.
//
// The "ref",
// "source",
// "evidence",
// "type",
// and "desc" annotations of the record,
// if present,
// are repacked into a single annotation child.
// Any feature of the record becomes a protein domain
// in the domain architecture of the sequence.
func FromRecord(rec *seqrec.Record) *Sequence {
	sq := Sequence{
		Symbol: rec.Name,
		Name:   rec.Description,
		MolSeq: rec.Seq,
	}
	if rec.ID != "" {
		sq.Accession = &Accession{Value: rec.ID}
	}
	switch rec.Alphabet {
	case seqrec.DNA:
		sq.Type = "dna"
	case seqrec.RNA:
		sq.Type = "rna"
	case seqrec.Protein:
		sq.Type = "aa"
	}

	an := Annotation{
		Ref:      rec.Annotations["ref"],
		Source:   rec.Annotations["source"],
		Evidence: rec.Annotations["evidence"],
		Type:     rec.Annotations["type"],
		Desc:     rec.Annotations["desc"],
	}
	if an.Ref != "" || an.Source != "" || an.Evidence != "" || an.Type != "" || an.Desc != "" {
		sq.Annotations = []*Annotation{&an}
	}

	if len(rec.Features) > 0 {
		ln := len(rec.Seq)
		da := &DomainArchitecture{Length: &ln}
		for _, ft := range rec.Features {
			da.Domains = append(da.Domains, FromFeature(ft))
		}
		sq.DomainArchitecture = da
	}
	return NewSequence(sq)
}

// Record returns the sequence
// as a generic sequence record,
// rebuilding the identifier,
// the name,
// the description,
// and the residue string
// from the corresponding sequence fields.
// Annotations are not repacked.
func (sq *Sequence) Record() *seqrec.Record {
	rec := &seqrec.Record{
		Name:        sq.Symbol,
		Description: sq.Name,
		Seq:         sq.MolSeq,
	}
	if sq.Accession != nil {
		rec.ID = sq.Accession.Value
	}
	switch sq.Type {
	case "dna":
		rec.Alphabet = seqrec.DNA
	case "rna":
		rec.Alphabet = seqrec.RNA
	case "aa":
		rec.Alphabet = seqrec.Protein
	}
	return rec
}

// Kind returns the kind of the element.
func (sq *Sequence) Kind() Kind { return SequenceKind }

// String returns the display label of the element.
func (sq *Sequence) String() string { return label(sq) }

func (sq *Sequence) fields() []field {
	return []field{
		{"accession", child(sq.Accession)},
		{"annotations", elems(sq.Annotations)},
		{"domain_architecture", child(sq.DomainArchitecture)},
		{"id_ref", strVal(sq.IDRef)},
		{"id_source", strVal(sq.IDSource)},
		{"location", strVal(sq.Location)},
		{"mol_seq", strVal(sq.MolSeq)},
		{"name", strVal(sq.Name)},
		{"other", elems(sq.Other)},
		{"symbol", strVal(sq.Symbol)},
		{"type", strVal(sq.Type)},
		{"uri", child(sq.URI)},
	}
}

// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package phyloxml

import "regexp"

// An Accession captures the local part
// of a sequence identifier.
// For example in "UniProtKB:P17304"
// the value of the accession is "P17304"
// and the source is "UniProtKB".
type Accession struct {
	Value  string
	Source string
}

// Kind returns the kind of the element.
func (a *Accession) Kind() Kind { return AccessionKind }

// String returns the display label of the element.
func (a *Accession) String() string { return label(a) }

func (a *Accession) fields() []field {
	return []field{
		{"source", strVal(a.Source)},
		{"value", strVal(a.Value)},
	}
}

// A BinaryCharacters element holds the names,
// and/or the counts,
// of binary characters present,
// gained,
// and lost
// at the root of a clade.
type BinaryCharacters struct {
	Type         string
	GainedCount  *int
	LostCount    *int
	PresentCount *int
	AbsentCount  *int

	Gained  []string
	Lost    []string
	Present []string
	Absent  []string
}

// Kind returns the kind of the element.
func (bc *BinaryCharacters) Kind() Kind { return BinaryCharactersKind }

// String returns the display label of the element.
func (bc *BinaryCharacters) String() string { return label(bc) }

func (bc *BinaryCharacters) fields() []field {
	return []field{
		{"absent", names(bc.Absent)},
		{"absent_count", intPtr(bc.AbsentCount)},
		{"gained", names(bc.Gained)},
		{"gained_count", intPtr(bc.GainedCount)},
		{"lost", names(bc.Lost)},
		{"lost_count", intPtr(bc.LostCount)},
		{"present", names(bc.Present)},
		{"present_count", intPtr(bc.PresentCount)},
		{"type", strVal(bc.Type)},
	}
}

// A CladeRelation expresses a typed relationship
// between two clades,
// for example to describe multiple parents of a clade.
type CladeRelation struct {
	Type     string
	IDRef0   string
	IDRef1   string
	Distance *float64

	Confidence *Confidence
}

// Kind returns the kind of the element.
func (cr *CladeRelation) Kind() Kind { return CladeRelationKind }

// String returns the display label of the element.
func (cr *CladeRelation) String() string { return label(cr) }

func (cr *CladeRelation) fields() []field {
	return []field{
		{"confidence", child(cr.Confidence)},
		{"distance", floatPtr(cr.Distance)},
		{"id_ref_0", strVal(cr.IDRef0)},
		{"id_ref_1", strVal(cr.IDRef1)},
		{"type", strVal(cr.Type)},
	}
}

// A Confidence is a general purpose support value,
// for example the bootstrap support of a clade
// (in which case the type is "bootstrap").
type Confidence struct {
	Value float64
	Type  string
}

// Kind returns the kind of the element.
func (cf *Confidence) Kind() Kind { return ConfidenceKind }

// String returns the display label of the element.
func (cf *Confidence) String() string { return label(cf) }

func (cf *Confidence) fields() []field {
	return []field{
		{"type", strVal(cf.Type)},
		{"value", floatVal(cf.Value)},
	}
}

// A Date is a date associated with a clade.
// Its value can be numeric,
// in which case the unit should be indicated
// (for example "mya" for million years ago),
// or free text in the description
// (for example "Silurian").
type Date struct {
	Value *float64
	Desc  string
	Unit  string
	Range *float64
}

// Kind returns the kind of the element.
func (dt *Date) Kind() Kind { return DateKind }

// String returns the kind name
// with the human readable date.
func (dt *Date) String() string {
	s := dt.Kind().String()
	if dt.Unit != "" && dt.Value != nil {
		return s + " " + floatPtr(dt.Value).text() + " " + dt.Unit
	}
	if dt.Desc != "" {
		return s + " " + dt.Desc
	}
	return s
}

func (dt *Date) fields() []field {
	return []field{
		{"desc", strVal(dt.Desc)},
		{"range", floatPtr(dt.Range)},
		{"unit", strVal(dt.Unit)},
		{"value", floatPtr(dt.Value)},
	}
}

// A Distribution is the geographic distribution
// of the items of a clade
// (species or sequences).
// The location can be given as free text,
// or with the coordinates
// of one or more points or polygons.
type Distribution struct {
	Desc string

	Points   []*Point
	Polygons []*Polygon
}

// Kind returns the kind of the element.
func (ds *Distribution) Kind() Kind { return DistributionKind }

// String returns the display label of the element.
func (ds *Distribution) String() string { return label(ds) }

func (ds *Distribution) fields() []field {
	return []field{
		{"desc", strVal(ds.Desc)},
		{"points", elems(ds.Points)},
		{"polygons", elems(ds.Polygons)},
	}
}

// An ID is a general purpose identifier,
// with an indication of its type or source,
// for example "6500" with type "ncbi_taxonomy".
type ID struct {
	Value string
	Type  string
}

// Kind returns the kind of the element.
func (id *ID) Kind() Kind { return IDKind }

// String returns the display label of the element.
func (id *ID) String() string { return label(id) }

func (id *ID) fields() []field {
	return []field{
		{"type", strVal(id.Type)},
		{"value", strVal(id.Value)},
	}
}

// A Point is the coordinate of a geographic point,
// with an optional altitude.
// The geodetic datum indicates the map datum
// of the coordinates,
// for example "WGS84".
type Point struct {
	GeodeticDatum string
	Lat           float64
	Lon           float64
	Alt           *float64
}

// Kind returns the kind of the element.
func (pt *Point) Kind() Kind { return PointKind }

// String returns the display label of the element.
func (pt *Point) String() string { return label(pt) }

func (pt *Point) fields() []field {
	return []field{
		{"alt", floatPtr(pt.Alt)},
		{"geodetic_datum", strVal(pt.GeodeticDatum)},
		{"lat", floatVal(pt.Lat)},
		{"long", floatVal(pt.Lon)},
	}
}

// A Polygon is a closed geographic area
// defined by three or more points.
type Polygon struct {
	Points []*Point
}

// Kind returns the kind of the element.
func (pg *Polygon) Kind() Kind { return PolygonKind }

// String returns the display label of the element.
func (pg *Polygon) String() string { return label(pg) }

func (pg *Polygon) fields() []field {
	return []field{
		{"points", elems(pg.Points)},
	}
}

// A Property is a typed and referenced value
// from an external resource.
// Properties can be attached to a phylogeny,
// a clade,
// or an annotation.
// The data type is an xsd data type name,
// such as "xsd:integer" or "xsd:string",
// and applies-to indicates the item
// the property refers to,
// such as "node" or "parent_branch".
type Property struct {
	Value     string
	Ref       string
	AppliesTo string
	DataType  string
	Unit      string
	IDRef     string
}

// Kind returns the kind of the element.
func (pr *Property) Kind() Kind { return PropertyKind }

// String returns the display label of the element.
func (pr *Property) String() string { return label(pr) }

func (pr *Property) fields() []field {
	return []field{
		{"applies_to", strVal(pr.AppliesTo)},
		{"datatype", strVal(pr.DataType)},
		{"id_ref", strVal(pr.IDRef)},
		{"ref", strVal(pr.Ref)},
		{"unit", strVal(pr.Unit)},
		{"value", strVal(pr.Value)},
	}
}

// A Reference is a literature reference
// for a clade,
// usually given as a DOI.
type Reference struct {
	DOI  string
	Desc string
}

// Kind returns the kind of the element.
func (rf *Reference) Kind() Kind { return ReferenceKind }

// String returns the display label of the element.
func (rf *Reference) String() string { return label(rf) }

func (rf *Reference) fields() []field {
	return []field{
		{"desc", strVal(rf.Desc)},
		{"doi", strVal(rf.DOI)},
	}
}

// A SequenceRelation expresses a typed relationship
// between two sequences,
// for example an orthology
// (in which case the type is "orthology").
type SequenceRelation struct {
	Type     string
	IDRef0   string
	IDRef1   string
	Distance *float64

	Confidence *Confidence
}

// Kind returns the kind of the element.
func (sr *SequenceRelation) Kind() Kind { return SequenceRelationKind }

// String returns the display label of the element.
func (sr *SequenceRelation) String() string { return label(sr) }

func (sr *SequenceRelation) fields() []field {
	return []field{
		{"confidence", child(sr.Confidence)},
		{"distance", floatPtr(sr.Distance)},
		{"id_ref_0", strVal(sr.IDRef0)},
		{"id_ref_1", strVal(sr.IDRef1)},
		{"type", strVal(sr.Type)},
	}
}

// reCode is the form of a taxonomy code,
// a UniProt style organism code
// such as "APLCA".
var reCode = regexp.MustCompile(`^[a-zA-Z0-9_]{2,10}`)

// okRank is the closed set of valid taxonomic ranks.
var okRank = map[string]bool{
	"domain": true, "kingdom": true, "subkingdom": true, "branch": true,
	"infrakingdom": true, "superphylum": true, "phylum": true,
	"subphylum": true, "infraphylum": true, "microphylum": true,
	"superdivision": true, "division": true, "subdivision": true,
	"infradivision": true, "superclass": true, "class": true,
	"subclass": true, "infraclass": true, "superlegion": true,
	"legion": true, "sublegion": true, "infralegion": true,
	"supercohort": true, "cohort": true, "subcohort": true,
	"infracohort": true, "superorder": true, "order": true,
	"suborder": true, "superfamily": true, "family": true,
	"subfamily": true, "supertribe": true, "tribe": true,
	"subtribe": true, "infratribe": true, "genus": true,
	"subgenus": true, "superspecies": true, "species": true,
	"subspecies": true, "variety": true, "subvariety": true,
	"form": true, "subform": true, "cultivar": true,
	"unknown": true, "other": true,
}

// A Taxonomy holds the taxonomic information
// of a clade:
// an organism code,
// the scientific name,
// common names,
// the rank,
// and an identifier in an external database.
//
// Use NewTaxonomy to validate the code
// and rank fields at construction.
type Taxonomy struct {
	IDSource string

	ID             *ID
	Code           string
	ScientificName string
	Rank           string
	URI            *URI

	CommonNames []string
	Other       []*Other
}

// NewTaxonomy creates a new taxonomy,
// reporting a warning
// if the code or the rank
// do not comply with the phyloXML specification.
// The values are stored as given.
func NewTaxonomy(tx Taxonomy) *Taxonomy {
	checkPattern("taxonomy code", tx.Code, reCode.MatchString)
	checkPattern("taxonomic rank", tx.Rank, func(s string) bool { return okRank[s] })
	return &tx
}

// Kind returns the kind of the element.
func (tx *Taxonomy) Kind() Kind { return TaxonomyKind }

// String returns the kind name
// with the most identifying field of the taxonomy:
// the code,
// the scientific name,
// the rank,
// or the identifier.
func (tx *Taxonomy) String() string {
	s := tx.Kind().String()
	if tx.Code != "" {
		return s + " " + tx.Code
	}
	if tx.ScientificName != "" {
		return s + " " + tx.ScientificName
	}
	if tx.Rank != "" {
		return s + " " + tx.Rank
	}
	if tx.ID != nil {
		return s + " " + tx.ID.String()
	}
	return s
}

func (tx *Taxonomy) fields() []field {
	return []field{
		{"code", strVal(tx.Code)},
		{"common_names", names(tx.CommonNames)},
		{"id", child(tx.ID)},
		{"id_source", strVal(tx.IDSource)},
		{"other", elems(tx.Other)},
		{"rank", strVal(tx.Rank)},
		{"scientific_name", strVal(tx.ScientificName)},
		{"uri", child(tx.URI)},
	}
}

// A URI is an uniform resource identifier,
// in general an URL,
// for example a link to an image of a taxon,
// in which case the type might be "image"
// and the description a caption.
type URI struct {
	Value string
	Desc  string
	Type  string
}

// Kind returns the kind of the element.
func (u *URI) Kind() Kind { return UriKind }

// String returns the display label of the element.
func (u *URI) String() string { return label(u) }

func (u *URI) fields() []field {
	return []field{
		{"desc", strVal(u.Desc)},
		{"type", strVal(u.Type)},
		{"value", strVal(u.Value)},
	}
}

// Package variant models a single genomic locus: its identity
// (chromosome, position, ref, alt), the per-member genotype calls
// observed there, the transcript annotations naming which genes it
// falls in, and an optional bound Family used by the inheritance
// classifiers. Construction is the only place mutation happens; once a
// caller starts asking classifier questions about a Variant, it must
// not keep adding genotypes or annotations to it (see spec.md §5).
package variant

import (
	"fmt"
	"sort"

	"github.com/nimblegenomics/trioscope/internal/pedigree"
)

// validChroms is the closed set of chromosome names the core accepts.
var validChroms = func() map[string]bool {
	m := map[string]bool{"X": true, "Y": true, "MT": true}
	for i := 1; i <= 22; i++ {
		m[fmt.Sprintf("%d", i)] = true
	}
	return m
}()

// ValidChrom reports whether chrom is one of "1".."22", "X", "Y", "MT".
func ValidChrom(chrom string) bool {
	return validChroms[chrom]
}

// Variant is an immutable-identity genomic locus plus mutable-until-
// classified genotype and annotation data. Chrom/Pos/Ref/Alt never
// change after construction; Genotypes and Annotations are populated by
// AddGenotype/AddAnnotation before any classifier call.
type Variant struct {
	Chrom string
	Pos   int64
	Ref   string
	Alt   string

	family      *pedigree.Family
	genotypes   map[string]*Genotype
	annotations []TranscriptAnnotation
}

// New constructs a Variant identity. Chrom must be one of the accepted
// values, Pos must be non-negative, and Ref/Alt must be non-empty.
func New(chrom string, pos int64, ref, alt string) (*Variant, error) {
	if !ValidChrom(chrom) {
		return nil, pedigree.NewValidationError("chrom", "chromosome outside accepted set {1..22,X,Y,MT}", chrom)
	}
	if pos < 0 {
		return nil, pedigree.NewValidationError("pos", "position must be non-negative", pos)
	}
	if ref == "" || alt == "" {
		return nil, pedigree.NewValidationError("ref/alt", "ref and alt must be non-empty", fmt.Sprintf("%q/%q", ref, alt))
	}
	return &Variant{
		Chrom:     chrom,
		Pos:       pos,
		Ref:       ref,
		Alt:       alt,
		genotypes: make(map[string]*Genotype),
	}, nil
}

// Key returns the variant's unique string identity: "{chrom}:{pos}{ref}>{alt}".
func (v *Variant) Key() string {
	return fmt.Sprintf("%s:%d%s>%s", v.Chrom, v.Pos, v.Ref, v.Alt)
}

// IsX reports whether the variant is on chromosome X.
func (v *Variant) IsX() bool { return v.Chrom == "X" }

// SetFamily binds a pedigree Family to the variant. f must already be a
// well-formed Family (non-nil); the classifiers in internal/inheritance
// require a bound family with a designated proband.
func (v *Variant) SetFamily(f *pedigree.Family) error {
	if f == nil {
		return pedigree.NewValidationError("family", "family must not be nil", nil)
	}
	v.family = f
	return nil
}

// Family returns the bound family, or nil if none has been set.
func (v *Variant) Family() *pedigree.Family { return v.family }

// Genotype returns the genotype call for memberID, or nil if none was
// recorded. A nil return is not an error — classifiers that tolerate
// missingness treat an absent call identically to an explicit "./.".
func (v *Variant) Genotype(memberID string) *Genotype {
	return v.genotypes[memberID]
}

// MemberIDs returns the ids with a recorded genotype, sorted.
func (v *Variant) MemberIDs() []string {
	ids := make([]string, 0, len(v.genotypes))
	for id := range v.genotypes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Annotations returns the transcript annotations in insertion order.
func (v *Variant) Annotations() []TranscriptAnnotation {
	return v.annotations
}

// AddAnnotation appends a transcript annotation. ann.Gene must be set
// (from either a Feature or SYMBOL source field — see
// TranscriptAnnotation).
func (v *Variant) AddAnnotation(ann TranscriptAnnotation) error {
	if ann.Gene == "" {
		return pedigree.NewValidationError("gene", "transcript annotation must name a gene (Feature or SYMBOL)", ann)
	}
	v.annotations = append(v.annotations, ann)
	return nil
}

// HasGene reports whether any transcript annotation names gene.
func (v *Variant) HasGene(gene string) bool {
	for _, a := range v.annotations {
		if a.Gene == gene {
			return true
		}
	}
	return false
}

// Genes returns the distinct gene symbols named by this variant's
// transcript annotations, in first-seen order.
func (v *Variant) Genes() []string {
	seen := make(map[string]bool)
	var genes []string
	for _, a := range v.annotations {
		if !seen[a.Gene] {
			seen[a.Gene] = true
			genes = append(genes, a.Gene)
		}
	}
	return genes
}

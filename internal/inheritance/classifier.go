// Package inheritance implements the per-variant inheritance-pattern
// classifier: ~10 boolean decision functions (autosomal dominant,
// autosomal recessive, de novo, X-linked recessive/dominant, and the
// uniparental-disomy family) over a Variant with a bound Family. Every
// method is a pure boolean formula over genotype predicates and
// pedigree queries — none mutate the Variant or Family they're given.
package inheritance

import (
	"github.com/nimblegenomics/trioscope/internal/genotype"
	"github.com/nimblegenomics/trioscope/internal/pedigree"
	"github.com/nimblegenomics/trioscope/internal/variant"
)

// Classifier evaluates inheritance patterns for a single Variant. The
// Variant must have a Family bound (variant.SetFamily) with a
// designated proband before any Matches* method beyond the plain
// predicates (IsHomRef, IsHet, HasAlt, HasNoAlt) is called.
type Classifier struct {
	v *variant.Variant

	denovoAltRatioThreshold float64
	updMinGenotypeQuality   int
	updMinTotalDepth        int
	lowPenetranceGenes      map[string]bool
}

// Option configures a Classifier's tunable thresholds away from their
// package-constant defaults, e.g. from a viper-backed config file.
type Option func(*Classifier)

// WithDenovoAltRatioThreshold overrides DenovoParentalAltRatioThreshold
// for this Classifier.
func WithDenovoAltRatioThreshold(threshold float64) Option {
	return func(c *Classifier) { c.denovoAltRatioThreshold = threshold }
}

// WithUPDMinGenotypeQuality overrides UPDMinParentalGenotypeQuality for
// this Classifier.
func WithUPDMinGenotypeQuality(q int) Option {
	return func(c *Classifier) { c.updMinGenotypeQuality = q }
}

// WithUPDMinTotalDepth overrides UPDMinParentalTotalDepth for this
// Classifier.
func WithUPDMinTotalDepth(d int) Option {
	return func(c *Classifier) { c.updMinTotalDepth = d }
}

// WithLowPenetranceGenes sets the gene panel Classify's autosomal
// dominant check treats as incompletely penetrant.
func WithLowPenetranceGenes(genes map[string]bool) Option {
	return func(c *Classifier) { c.lowPenetranceGenes = genes }
}

// New wraps v for inheritance-pattern classification. Threshold fields
// default to the package constants; pass Option values to override them.
func New(v *variant.Variant, opts ...Option) *Classifier {
	c := &Classifier{
		v:                       v,
		denovoAltRatioThreshold: DenovoParentalAltRatioThreshold,
		updMinGenotypeQuality:   UPDMinParentalGenotypeQuality,
		updMinTotalDepth:        UPDMinParentalTotalDepth,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// requireProband returns the bound family and its proband, or a
// StateError if no family is bound or no proband has been designated.
func (c *Classifier) requireProband() (*pedigree.Family, *pedigree.FamilyMember, error) {
	fam := c.v.Family()
	if fam == nil {
		return nil, nil, pedigree.NewStateError("classifier requires a family bound to the variant")
	}
	if !fam.HasProband() {
		return nil, nil, pedigree.NewStateError("classifier requires a proband to be set on the family")
	}
	return fam, fam.Proband(), nil
}

// callOf returns the genotype call for id, or a zero-value (fully
// missing, zero-depth) Genotype if none was recorded. This keeps every
// downstream predicate well-defined for members with no genotype.
func (c *Classifier) callOf(id string) *variant.Genotype {
	if id == "" {
		return &variant.Genotype{}
	}
	g := c.v.Genotype(id)
	if g == nil {
		return &variant.Genotype{}
	}
	return g
}

// geneInLowPenetranceSet reports whether the variant is annotated with
// any gene in genes. A nil or empty set never matches.
func geneInLowPenetranceSet(v *variant.Variant, genes map[string]bool) bool {
	if len(genes) == 0 {
		return false
	}
	for _, g := range v.Genes() {
		if genes[g] {
			return true
		}
	}
	return false
}

// sortedPair returns p with its two slots in a canonical order, so two
// pairs carrying the same multiset of alleles compare equal regardless
// of input order.
func sortedPair(p genotype.Pair) genotype.Pair {
	if p[0] > p[1] {
		return genotype.Pair{p[1], p[0]}
	}
	return p
}

// homAllele returns the allele a strictly homozygous pair is hom for,
// and false if p is not strictly Ref/Ref or Alt/Alt.
func homAllele(p genotype.Pair) (genotype.Allele, bool) {
	if p.IsHomRef() {
		return genotype.Ref, true
	}
	if p.IsHomAlt() {
		return genotype.Alt, true
	}
	return genotype.Missing, false
}

// opposite returns the other of {Ref, Alt} for a non-Missing allele.
func opposite(a genotype.Allele) genotype.Allele {
	if a == genotype.Ref {
		return genotype.Alt
	}
	return genotype.Ref
}

// hasAllele reports whether either slot of p equals a.
func hasAllele(p genotype.Pair, a genotype.Allele) bool {
	return p[0] == a || p[1] == a
}

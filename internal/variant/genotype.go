package variant

import (
	"github.com/nimblegenomics/trioscope/internal/genotype"
	"github.com/nimblegenomics/trioscope/internal/pedigree"
)

// Genotype is a single member's observation at a Variant's locus: the
// classified allele pair plus the read-support fields used by the
// de novo and UPD classifiers.
type Genotype struct {
	Alleles         genotype.Pair
	AlleleDepths    []int
	GenotypeQuality int
	TotalDepth      int
}

// AltReadRatio returns the alt allele's read count (AlleleDepths[1] in a
// biallelic ref,alt ordering) divided by TotalDepth, or 0 if TotalDepth
// is 0 or fewer than two allele depths were recorded. Used by the de
// novo classifier's parental read-support heuristic.
func (g *Genotype) AltReadRatio() float64 {
	if g.TotalDepth <= 0 || len(g.AlleleDepths) < 2 {
		return 0
	}
	return float64(g.AlleleDepths[1]) / float64(g.TotalDepth)
}

// AddGenotype records memberID's genotype call at this variant. alleles
// must contain exactly two values drawn from {Ref, Alt, "."};
// allele_depths must be non-empty and non-negative; genotype_quality
// and total_depth are plain integers (always true for Go ints, but the
// non-negative depth check still applies).
func (v *Variant) AddGenotype(memberID string, alleles [2]string, alleleDepths []int, genotypeQuality, totalDepth int) error {
	if memberID == "" {
		return pedigree.NewValidationError("member_id", "member id must not be empty", memberID)
	}
	if len(alleleDepths) < 1 {
		return pedigree.NewValidationError("allele_depths", "allele_depths must be non-empty", alleleDepths)
	}
	for _, d := range alleleDepths {
		if d < 0 {
			return pedigree.NewValidationError("allele_depths", "allele depths must be non-negative", alleleDepths)
		}
	}
	if totalDepth < 0 {
		return pedigree.NewValidationError("total_depth", "total depth must be non-negative", totalDepth)
	}

	a0, err := genotype.ParseAllele(alleles[0], v.Ref, v.Alt)
	if err != nil {
		return pedigree.NewValidationError("alleles", err.Error(), alleles)
	}
	a1, err := genotype.ParseAllele(alleles[1], v.Ref, v.Alt)
	if err != nil {
		return pedigree.NewValidationError("alleles", err.Error(), alleles)
	}

	v.genotypes[memberID] = &Genotype{
		Alleles:         genotype.Pair{a0, a1},
		AlleleDepths:    alleleDepths,
		GenotypeQuality: genotypeQuality,
		TotalDepth:      totalDepth,
	}
	return nil
}

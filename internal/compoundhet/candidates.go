package compoundhet

import (
	"github.com/nimblegenomics/trioscope/internal/inheritance"
	"github.com/nimblegenomics/trioscope/internal/pedigree"
	"github.com/nimblegenomics/trioscope/internal/variant"
)

// isHomAlt reports whether member id is homozygous alt at c's variant,
// built from the exported HasAlt/IsHet predicates (IsHet is defined as
// HasAlt-and-not-hom-alt, so HasAlt-and-not-IsHet is exactly hom-alt).
func isHomAlt(c *inheritance.Classifier, id string) bool {
	return c.HasAlt(id) && !c.IsHet(id)
}

// isCandidate reports whether v qualifies as a compound-het candidate
// for pb, per phase 1: the proband carries alt but is not hom-alt, and
// (for autosomes) no unaffected family member is hom-alt; chrom-X
// variants are candidates only for a female proband.
func isCandidate(fam *pedigree.Family, pb *pedigree.FamilyMember, v *variant.Variant) bool {
	c := inheritance.New(v)
	if !c.HasAlt(pb.ID()) || !c.IsHet(pb.ID()) {
		return false
	}
	if v.IsX() {
		return pb.IsFemale()
	}
	for _, m := range fam.Unaffected() {
		if isHomAlt(c, m.ID()) {
			return false
		}
	}
	return true
}

// GetCandidateCompoundHets runs phase 1 and returns candidate variants
// grouped by gene, in each gene's first-seen variant order. A variant
// annotated with more than one gene can appear as a candidate under
// each gene independently.
func (s *Set) GetCandidateCompoundHets() (map[string][]*variant.Variant, error) {
	if s.family == nil || !s.family.HasProband() {
		return nil, pedigree.NewStateError("compound-het candidate discovery requires a family with a designated proband")
	}
	pb := s.family.Proband()

	candidates := make(map[string][]*variant.Variant)
	for _, v := range s.variants {
		if !isCandidate(s.family, pb, v) {
			continue
		}
		for _, gene := range v.Genes() {
			candidates[gene] = append(candidates[gene], v)
		}
	}
	return candidates, nil
}

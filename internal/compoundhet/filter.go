package compoundhet

import (
	"sort"

	"github.com/nimblegenomics/trioscope/internal/inheritance"
	"github.com/nimblegenomics/trioscope/internal/pedigree"
	"github.com/nimblegenomics/trioscope/internal/variant"
)

// parentOrigin is which parent a variant's alt allele can be assigned
// to, used to test whether two candidates sit in trans.
type parentOrigin int

const (
	originNone parentOrigin = iota
	originMum
	originDad
	originBothMissing
)

// originOf classifies v's parental transmission: mum-only or dad-only
// if exactly one parent carries alt and the other does not (no_alt
// covers both a confirmed hom-ref call and an absent/missing one), or
// both-missing if neither parent has any recorded allele at all.
func originOf(v *variant.Variant, mumID, dadID string) parentOrigin {
	c := inheritance.New(v)
	mumAlt, dadAlt := c.HasAlt(mumID), c.HasAlt(dadID)
	switch {
	case mumAlt && !dadAlt:
		return originMum
	case dadAlt && !mumAlt:
		return originDad
	case c.IsMissing(mumID) && c.IsMissing(dadID):
		return originBothMissing
	default:
		return originNone
	}
}

// isTransPair reports whether v1 and v2's parental origins are
// consistent with a genuine compound-het: each inherited from a
// different parent, or both uninformative and includeDenovo permits
// counting them as potential de-novo alleles.
func isTransPair(o1, o2 parentOrigin, includeDenovo bool) bool {
	if (o1 == originMum && o2 == originDad) || (o1 == originDad && o2 == originMum) {
		return true
	}
	return includeDenovo && o1 == originBothMissing && o2 == originBothMissing
}

// siblingsConsistent applies the affected/unaffected sibling rules: every
// affected sibling must carry alt on both v1 and v2, or be missing on
// both; no unaffected sibling may carry alt on both.
func siblingsConsistent(fam *pedigree.Family, pb *pedigree.FamilyMember, v1, v2 *variant.Variant) bool {
	c1, c2 := inheritance.New(v1), inheritance.New(v2)

	for _, sib := range fam.AffectedSiblings(pb) {
		bothAlt := c1.HasAlt(sib.ID()) && c2.HasAlt(sib.ID())
		bothMissing := c1.IsMissing(sib.ID()) && c2.IsMissing(sib.ID())
		if !bothAlt && !bothMissing {
			return false
		}
	}
	for _, sib := range fam.UnaffectedSiblings(pb) {
		if c1.HasAlt(sib.ID()) && c2.HasAlt(sib.ID()) {
			return false
		}
	}
	return true
}

// isGenuinePair reports whether (v1, v2) survives phase 2 filtering.
func isGenuinePair(fam *pedigree.Family, pb *pedigree.FamilyMember, v1, v2 *variant.Variant, includeDenovo bool) bool {
	mum, dad := fam.Mum(pb), fam.Dad(pb)
	var mumID, dadID string
	if mum != nil {
		mumID = mum.ID()
	}
	if dad != nil {
		dadID = dad.ID()
	}

	o1 := originOf(v1, mumID, dadID)
	o2 := originOf(v2, mumID, dadID)
	if !isTransPair(o1, o2, includeDenovo) {
		return false
	}
	return siblingsConsistent(fam, pb, v1, v2)
}

// FilterCompoundHets runs phase 1 then phase 2 and caches the surviving
// variant keys as the set's final_compound_hets. A gene with fewer than
// two phase-1 candidates never contributes to the result. Within a
// gene, unordered candidate pairs are evaluated in candidate insertion
// order, which makes the result deterministic independent of map
// iteration order.
func (s *Set) FilterCompoundHets(includeDenovo bool) (map[string]struct{}, error) {
	candidates, err := s.GetCandidateCompoundHets()
	if err != nil {
		return nil, err
	}
	pb := s.family.Proband()

	final := make(map[string]struct{})
	for _, gene := range sortedKeys(candidates) {
		vs := candidates[gene]
		if len(vs) < 2 {
			continue
		}
		for i := 0; i < len(vs); i++ {
			for j := i + 1; j < len(vs); j++ {
				genuine := isGenuinePair(s.family, pb, vs[i], vs[j], includeDenovo)
				if s.pairObserver != nil {
					s.pairObserver(gene, vs[i].Key(), vs[j].Key(), genuine)
				}
				if genuine {
					final[vs[i].Key()] = struct{}{}
					final[vs[j].Key()] = struct{}{}
				}
			}
		}
	}

	s.filtered = final
	return final, nil
}

// GetFilteredCompoundHetsAsDict returns the most recently computed
// final_compound_hets set, or an empty set if FilterCompoundHets has
// never been called.
func (s *Set) GetFilteredCompoundHetsAsDict() map[string]struct{} {
	if s.filtered == nil {
		return map[string]struct{}{}
	}
	return s.filtered
}

// GetUnfilteredCompoundHetsAsDict flattens phase 1's candidate
// discovery into a single set of variant keys, ignoring gene grouping
// and the two-candidate-per-gene threshold phase 2 applies.
func (s *Set) GetUnfilteredCompoundHetsAsDict() (map[string]struct{}, error) {
	candidates, err := s.GetCandidateCompoundHets()
	if err != nil {
		return nil, err
	}
	out := make(map[string]struct{})
	for _, vs := range candidates {
		for _, v := range vs {
			out[v.Key()] = struct{}{}
		}
	}
	return out, nil
}

// sortedKeys returns the map's gene keys in sorted order, so
// FilterCompoundHets' insertion-order contract doesn't depend on Go's
// randomized map iteration at the gene level.
func sortedKeys(m map[string][]*variant.Variant) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

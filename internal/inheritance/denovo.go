package inheritance

import "github.com/nimblegenomics/trioscope/internal/pedigree"

// DenovoParentalAltRatioThreshold is the parental alt-read-support
// fraction at or above which a de novo call is rejected: a "clean"
// de novo call expects essentially zero alt-supporting reads in either
// parent, and low-level alt support is more likely low-grade parental
// mosaicism or a mapping artifact than a true absence-in-parents call.
const DenovoParentalAltRatioThreshold = 0.05

// MatchesDenovo reports whether the variant arose de novo in member
// memberID (the proband if memberID is empty): the member carries alt,
// both parents are present and carry no alt (or are missing), and
// neither parent's alt-read ratio reaches
// DenovoParentalAltRatioThreshold.
//
// A pedigree with neither parent present is a StateError — there is
// nothing to confirm absence against. A pedigree with exactly one
// parent present is rejected (returns false, not an error): the
// untested parent could still be the true source, so the call cannot
// be confirmed de novo.
func (c *Classifier) MatchesDenovo(memberID string) (bool, error) {
	fam, pb, err := c.requireProband()
	if err != nil {
		return false, err
	}

	child := pb
	if memberID != "" && memberID != pb.ID() {
		child = fam.Member(memberID)
		if child == nil {
			return false, pedigree.NewValidationError("member_id", "not a member of the bound family", memberID)
		}
	}

	mum, dad := fam.Mum(child), fam.Dad(child)
	if mum == nil && dad == nil {
		return false, pedigree.NewStateError("de novo requires at least one parent present in the family")
	}
	if mum == nil || dad == nil {
		return false, nil
	}

	childCall := c.callOf(child.ID())
	if !childCall.Alleles.HasAlt() {
		return false, nil
	}

	mumCall, dadCall := c.callOf(mum.ID()), c.callOf(dad.ID())
	if !mumCall.Alleles.NoAlt() || !dadCall.Alleles.NoAlt() {
		return false, nil
	}
	if mumCall.AltReadRatio() >= c.denovoAltRatioThreshold {
		return false, nil
	}
	if dadCall.AltReadRatio() >= c.denovoAltRatioThreshold {
		return false, nil
	}

	return true, nil
}

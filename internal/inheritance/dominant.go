package inheritance

// MatchesAutosomalDominant reports whether the variant is consistent
// with autosomal dominant inheritance: the proband carries alt, every
// affected member carries alt or is missing, and every unaffected
// member carries no alt or is missing.
//
// lenient relaxes the hom-alt check: without it, any affected member
// (including the proband) being homozygous alt fails the pattern,
// since classic dominant inheritance is heterozygous; with lenient,
// hom-alt affected members are tolerated (e.g. a non-consanguineous
// founder mutation reaching homozygosity by chance).
//
// lowPenetranceGenes, when the variant is annotated with one of its
// genes, skips the per-member affected/unaffected check entirely
// (incomplete penetrance allowed) but still requires the proband to
// carry alt.
func (c *Classifier) MatchesAutosomalDominant(lenient bool, lowPenetranceGenes map[string]bool) (bool, error) {
	fam, pb, err := c.requireProband()
	if err != nil {
		return false, err
	}

	pbCall := c.callOf(pb.ID())
	if !pbCall.Alleles.HasAlt() {
		return false, nil
	}
	if !lenient && pbCall.Alleles.IsHomAlt() {
		return false, nil
	}

	if geneInLowPenetranceSet(c.v, lowPenetranceGenes) {
		return true, nil
	}

	for _, id := range fam.IDs() {
		if id == pb.ID() {
			continue
		}
		m := fam.Member(id)
		call := c.callOf(id)

		if m.Affected() {
			if !(call.Alleles.HasAlt() || call.Alleles.IsMissing()) {
				return false, nil
			}
			if !lenient && call.Alleles.IsHomAlt() {
				return false, nil
			}
			continue
		}
		if !call.Alleles.NoAlt() {
			return false, nil
		}
	}

	return true, nil
}

package inheritance

// MatchesAutosomalRecessive reports whether the variant is consistent
// with autosomal recessive inheritance: the proband is homozygous alt,
// no unaffected member is homozygous alt, and every other affected
// member (e.g. an affected sibling) is homozygous alt or missing.
// "./." always counts as unknown, never as carrying alt.
func (c *Classifier) MatchesAutosomalRecessive() (bool, error) {
	fam, pb, err := c.requireProband()
	if err != nil {
		return false, err
	}

	if !c.callOf(pb.ID()).Alleles.IsHomAlt() {
		return false, nil
	}

	for _, id := range fam.IDs() {
		if id == pb.ID() {
			continue
		}
		m := fam.Member(id)
		call := c.callOf(id)

		if !m.Affected() {
			if call.Alleles.IsHomAlt() {
				return false, nil
			}
			continue
		}
		if !(call.Alleles.IsHomAlt() || call.Alleles.IsMissing()) {
			return false, nil
		}
	}

	return true, nil
}

package inheritance

// MatchesXRecessive reports whether the variant is consistent with
// X-linked recessive inheritance. Only evaluated on chromosome X: a
// male proband is hemizygous, so carrying any alt suffices; a female
// proband must be homozygous alt. An unaffected father must carry no
// alt (males are hemizygous on X, so there is no carrier state for
// him); an unaffected mother must not be homozygous alt (carrier
// heterozygosity is expected and allowed). An affected father must
// carry alt; an affected mother must be homozygous alt.
func (c *Classifier) MatchesXRecessive() (bool, error) {
	if !c.v.IsX() {
		return false, nil
	}

	fam, pb, err := c.requireProband()
	if err != nil {
		return false, err
	}

	pbCall := c.callOf(pb.ID())
	if pb.IsMale() {
		if !pbCall.Alleles.HasAlt() {
			return false, nil
		}
	} else {
		if !pbCall.Alleles.IsHomAlt() {
			return false, nil
		}
	}

	if dad := fam.Dad(pb); dad != nil {
		dadCall := c.callOf(dad.ID())
		if dad.Affected() {
			if !dadCall.Alleles.HasAlt() {
				return false, nil
			}
		} else if !dadCall.Alleles.NoAlt() {
			return false, nil
		}
	}

	if mum := fam.Mum(pb); mum != nil {
		mumCall := c.callOf(mum.ID())
		if mum.Affected() {
			if !mumCall.Alleles.IsHomAlt() {
				return false, nil
			}
		} else if mumCall.Alleles.IsHomAlt() {
			return false, nil
		}
	}

	return true, nil
}

// MatchesXDominant reports whether the variant is consistent with
// X-linked dominant inheritance. A homozygous-alt female proband is
// rejected (that pattern belongs to X-linked recessive, not dominant).
// Unaffected parents must carry no alt. Every affected male must carry
// alt himself (or be missing); he is expected to transmit to every
// daughter (obligate carriers, since a daughter always inherits her
// father's X — so every one of his daughters must herself be affected,
// regardless of her own genotype call) and to no son (a son inherits
// his father's Y, not his X).
func (c *Classifier) MatchesXDominant() (bool, error) {
	if !c.v.IsX() {
		return false, nil
	}

	fam, pb, err := c.requireProband()
	if err != nil {
		return false, err
	}

	pbCall := c.callOf(pb.ID())
	if !pbCall.Alleles.HasAlt() {
		return false, nil
	}
	if pb.IsFemale() && pbCall.Alleles.IsHomAlt() {
		return false, nil
	}

	if mum := fam.Mum(pb); mum != nil && !mum.Affected() {
		if !c.callOf(mum.ID()).Alleles.NoAlt() {
			return false, nil
		}
	}
	if dad := fam.Dad(pb); dad != nil && !dad.Affected() {
		if !c.callOf(dad.ID()).Alleles.NoAlt() {
			return false, nil
		}
	}

	for _, m := range fam.Males() {
		if !m.Affected() {
			continue
		}
		mCall := c.callOf(m.ID())
		if !mCall.Alleles.HasAlt() && !mCall.Alleles.IsMissing() {
			return false, nil
		}
		for _, son := range fam.Sons(m) {
			if c.callOf(son.ID()).Alleles.HasAlt() {
				return false, nil
			}
		}
		for _, daughter := range fam.Daughters(m) {
			if !daughter.Affected() {
				return false, nil
			}
		}
	}

	return true, nil
}

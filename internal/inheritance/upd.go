package inheritance

import "github.com/nimblegenomics/trioscope/internal/variant"

// UPDMinParentalGenotypeQuality and UPDMinParentalTotalDepth are the
// confidence floors MatchesUniparentalIsodisomy requires of both
// parents' genotype calls before trusting them as donor/non-donor
// evidence — a low-confidence parental call is exactly the kind of
// input that produces a spurious apparent-UPD signal. The paternal/
// maternal isodisomy and ambiguous UPD classifiers do not apply them.
const (
	UPDMinParentalGenotypeQuality = 20
	UPDMinParentalTotalDepth      = 10
)

// MatchesUniparentalIsodisomy reports whether the variant is consistent
// with isodisomic uniparental disomy on an autosome, or on X in a
// female proband (males are hemizygous on X, so UPD isodisomy is
// undefined there and always rejected): the proband is homozygous
// (either allele), exactly one parent is heterozygous and carries the
// proband's allele (the donor), the other parent does not carry that
// allele at all, and both parents' calls meet the genotype-quality and
// depth floors.
func (c *Classifier) MatchesUniparentalIsodisomy() (bool, error) {
	fam, pb, err := c.requireProband()
	if err != nil {
		return false, err
	}
	if c.v.IsX() && pb.IsMale() {
		return false, nil
	}

	pbAllele, ok := homAllele(c.callOf(pb.ID()).Alleles)
	if !ok {
		return false, nil
	}

	mum, dad := fam.Mum(pb), fam.Dad(pb)
	if mum == nil || dad == nil {
		return false, nil
	}
	mumCall, dadCall := c.callOf(mum.ID()), c.callOf(dad.ID())
	if !c.meetsParentalConfidence(mumCall) || !c.meetsParentalConfidence(dadCall) {
		return false, nil
	}

	mumIsDonor := mumCall.Alleles.IsHet() && hasAllele(mumCall.Alleles, pbAllele)
	dadIsDonor := dadCall.Alleles.IsHet() && hasAllele(dadCall.Alleles, pbAllele)
	if mumIsDonor == dadIsDonor {
		return false, nil
	}

	if mumIsDonor {
		return !hasAllele(dadCall.Alleles, pbAllele), nil
	}
	return !hasAllele(mumCall.Alleles, pbAllele), nil
}

func (c *Classifier) meetsParentalConfidence(g *variant.Genotype) bool {
	return g.GenotypeQuality >= c.updMinGenotypeQuality && g.TotalDepth >= c.updMinTotalDepth
}

// matchesUPDIsodisomy reports whether donor (mum or dad, chosen by
// donorIsDad) is heterozygous while the other parent is homozygous for
// the opposite allele from the proband's homozygous call.
func (c *Classifier) matchesUPDIsodisomy(donorIsDad bool) (bool, error) {
	fam, pb, err := c.requireProband()
	if err != nil {
		return false, err
	}

	pbAllele, ok := homAllele(c.callOf(pb.ID()).Alleles)
	if !ok {
		return false, nil
	}

	mum, dad := fam.Mum(pb), fam.Dad(pb)
	if mum == nil || dad == nil {
		return false, nil
	}

	donor, other := mum, dad
	if donorIsDad {
		donor, other = dad, mum
	}
	donorCall, otherCall := c.callOf(donor.ID()), c.callOf(other.ID())

	if !donorCall.Alleles.IsHet() {
		return false, nil
	}
	otherAllele, ok := homAllele(otherCall.Alleles)
	if !ok || otherAllele != opposite(pbAllele) {
		return false, nil
	}
	return true, nil
}

// MatchesPaternalUniparentalIsodisomy reports isodisomic paternal UPD:
// the father is heterozygous, the mother is homozygous for the allele
// the proband did not inherit.
func (c *Classifier) MatchesPaternalUniparentalIsodisomy() (bool, error) {
	return c.matchesUPDIsodisomy(true)
}

// MatchesMaternalUniparentalIsodisomy reports isodisomic maternal UPD:
// the mother is heterozygous, the father is homozygous for the allele
// the proband did not inherit.
func (c *Classifier) MatchesMaternalUniparentalIsodisomy() (bool, error) {
	return c.matchesUPDIsodisomy(false)
}

// matchesUPDAmbiguous reports whether the proband, mother, and father
// are all strictly homozygous (no het, no missing in the
// configuration), with the mother and father hom for the allele
// pattern consistent with one parent being the sole donor. For
// paternal UPD the father matches the proband's allele and the mother
// is hom for the opposite; for maternal UPD the roles are swapped.
func (c *Classifier) matchesUPDAmbiguous(paternal bool) (bool, error) {
	fam, pb, err := c.requireProband()
	if err != nil {
		return false, err
	}

	pbAllele, ok := homAllele(c.callOf(pb.ID()).Alleles)
	if !ok {
		return false, nil
	}

	mum, dad := fam.Mum(pb), fam.Dad(pb)
	if mum == nil || dad == nil {
		return false, nil
	}
	mumAllele, ok := homAllele(c.callOf(mum.ID()).Alleles)
	if !ok {
		return false, nil
	}
	dadAllele, ok := homAllele(c.callOf(dad.ID()).Alleles)
	if !ok {
		return false, nil
	}

	wantMum, wantDad := opposite(pbAllele), pbAllele
	if !paternal {
		wantMum, wantDad = pbAllele, opposite(pbAllele)
	}
	return mumAllele == wantMum && dadAllele == wantDad, nil
}

// MatchesPaternalUniparentalAmbiguous reports the ambiguous (isodisomy
// or heterodisomy indistinguishable) paternal UPD configuration.
func (c *Classifier) MatchesPaternalUniparentalAmbiguous() (bool, error) {
	return c.matchesUPDAmbiguous(true)
}

// MatchesMaternalUniparentalAmbiguous reports the ambiguous maternal
// UPD configuration.
func (c *Classifier) MatchesMaternalUniparentalAmbiguous() (bool, error) {
	return c.matchesUPDAmbiguous(false)
}

// AllelesIdenticalToDad reports whether the proband's allele multiset
// (order-independent) equals the father's. Returns false if no father
// is present rather than erroring — there's nothing to compare against.
func (c *Classifier) AllelesIdenticalToDad() (bool, error) {
	fam, pb, err := c.requireProband()
	if err != nil {
		return false, err
	}
	dad := fam.Dad(pb)
	if dad == nil {
		return false, nil
	}
	return sortedPair(c.callOf(pb.ID()).Alleles) == sortedPair(c.callOf(dad.ID()).Alleles), nil
}

// IsBiparentalInheritance reports whether the proband's two allele
// slots can each be traced to a distinct parent: one slot compatible
// with mum's genotype and the other with dad's, with mum and dad not
// genotypically identical (which would make them indistinguishable as
// sources).
func (c *Classifier) IsBiparentalInheritance() (bool, error) {
	fam, pb, err := c.requireProband()
	if err != nil {
		return false, err
	}
	mum, dad := fam.Mum(pb), fam.Dad(pb)
	if mum == nil || dad == nil {
		return false, nil
	}

	pbAlleles := c.callOf(pb.ID()).Alleles
	mumAlleles := c.callOf(mum.ID()).Alleles
	dadAlleles := c.callOf(dad.ID()).Alleles

	assignable := (hasAllele(mumAlleles, pbAlleles[0]) && hasAllele(dadAlleles, pbAlleles[1])) ||
		(hasAllele(mumAlleles, pbAlleles[1]) && hasAllele(dadAlleles, pbAlleles[0]))
	if !assignable {
		return false, nil
	}

	return sortedPair(mumAlleles) != sortedPair(dadAlleles), nil
}

package inheritance

// IsHomRef reports whether member id is homozygous reference at this
// variant. An absent genotype is treated as missing, so it answers
// false here (missing is neither hom-ref nor hom-alt).
func (c *Classifier) IsHomRef(id string) bool {
	return c.callOf(id).Alleles.IsHomRef()
}

// IsHet reports whether member id is heterozygous at this variant.
func (c *Classifier) IsHet(id string) bool {
	return c.callOf(id).Alleles.IsHet()
}

// HasAlt reports whether member id carries at least one alt allele.
func (c *Classifier) HasAlt(id string) bool {
	return c.callOf(id).Alleles.HasAlt()
}

// HasNoAlt reports whether member id carries no alt allele (hom-ref,
// missing, or absent).
func (c *Classifier) HasNoAlt(id string) bool {
	return c.callOf(id).Alleles.NoAlt()
}

// IsMissing reports whether member id has no recorded genotype call, or
// an explicit "./." call: both allele slots unread. Used by the
// compound-het engine to distinguish a truly uninformative parental
// call from a confirmed hom-ref call, both of which satisfy HasNoAlt.
func (c *Classifier) IsMissing(id string) bool {
	return c.callOf(id).Alleles.IsMissing()
}

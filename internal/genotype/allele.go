// Package genotype provides pure predicates over a single member's
// observed diploid genotype relative to a variant's reference and
// alternate alleles. Every allele slot is reduced to a three-state
// enumeration (Ref, Alt, Missing) at parse time, which keeps every
// predicate in this package a plain boolean formula over two enum
// values instead of repeated string comparison.
package genotype

import "fmt"

// Allele is the classification of a single observed allele slot against
// a variant's ref/alt pair: matches the reference, matches the
// alternate, or is unread ("." in PED/VCF genotype notation).
type Allele int8

const (
	Missing Allele = iota
	Ref
	Alt
)

func (a Allele) String() string {
	switch a {
	case Ref:
		return "ref"
	case Alt:
		return "alt"
	default:
		return "missing"
	}
}

// ParseAllele classifies a raw allele string against the variant's ref
// and alt. "." is Missing; anything equal to ref is Ref; anything equal
// to alt is Alt. Any other value is a non-ref, non-missing string in a
// biallelic context, which the data model treats as an error rather
// than silently coercing to Alt — callers that want permissive
// multiallelic handling should normalize upstream.
func ParseAllele(raw, ref, alt string) (Allele, error) {
	switch raw {
	case ".":
		return Missing, nil
	case ref:
		return Ref, nil
	case alt:
		return Alt, nil
	default:
		return Missing, fmt.Errorf("genotype: allele %q is neither ref %q, alt %q, nor \".\"", raw, ref, alt)
	}
}

// Pair is a diploid genotype call: two allele slots. Order is not
// significant to any predicate in this package.
type Pair [2]Allele

// IsMissing reports whether both slots are Missing.
func (p Pair) IsMissing() bool {
	return p[0] == Missing && p[1] == Missing
}

// IsHomRef reports whether both slots are Ref.
func (p Pair) IsHomRef() bool {
	return p[0] == Ref && p[1] == Ref
}

// IsHomAlt reports whether both slots are Alt.
func (p Pair) IsHomAlt() bool {
	return p[0] == Alt && p[1] == Alt
}

// HasAlt reports whether at least one slot is Alt. A half-missing call
// carrying one alt allele ("A/.") counts as having alt, per spec: a
// single "." does not change predicate answers for the slot that is
// actually observed.
func (p Pair) HasAlt() bool {
	return p[0] == Alt || p[1] == Alt
}

// NoAlt reports whether neither slot is Alt. This includes hom-ref and
// fully-missing calls; "./." is permissive (no_alt is true).
func (p Pair) NoAlt() bool {
	return !p.HasAlt()
}

// IsHet reports whether the pair carries an alt allele without being
// hom-alt: a classic ref/alt call, or a half-missing call with one alt
// ("A/."), both count as het.
func (p Pair) IsHet() bool {
	return p.HasAlt() && !p.IsHomAlt()
}

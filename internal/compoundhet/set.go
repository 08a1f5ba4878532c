// Package compoundhet implements the two-phase compound-heterozygous
// pair engine: candidate discovery per gene, then genuine-pair
// filtering by parental trans-configuration and sibling consistency. It
// operates over a Set of Variants bound to a single Family, rather than
// a single Variant, since a compound-het call is inherently a
// two-variant statement.
package compoundhet

import (
	"github.com/nimblegenomics/trioscope/internal/pedigree"
	"github.com/nimblegenomics/trioscope/internal/variant"
)

// Set aggregates the Variants evaluated together for compound-het
// candidacy. All Variants in a Set must share the same bound Family.
type Set struct {
	family       *pedigree.Family
	variants     []*variant.Variant
	byKey        map[string]bool
	filtered     map[string]struct{}
	pairObserver func(gene, v1Key, v2Key string, genuine bool)
}

// NewSet returns an empty Set.
func NewSet() *Set {
	return &Set{byKey: make(map[string]bool)}
}

// SetPairObserver registers a callback FilterCompoundHets invokes for
// every phase-2 candidate pair it evaluates within a gene, genuine or
// not, for callers that want per-pair audit logging. A nil observer
// (the default) disables the callback entirely.
func (s *Set) SetPairObserver(observer func(gene, v1Key, v2Key string, genuine bool)) {
	s.pairObserver = observer
}

// AddFamily binds f as the Set's family. It must be called before any
// AddVariant, and may only be called once per Set.
func (s *Set) AddFamily(f *pedigree.Family) error {
	if f == nil {
		return pedigree.NewValidationError("family", "family must not be nil", nil)
	}
	if s.family != nil {
		return pedigree.NewValidationError("family", "a variant set may only be bound to one family", f.ID())
	}
	s.family = f
	return nil
}

// AddVariant appends v to the set in insertion order. v is bound to the
// set's family if it has none; a v already bound to a different family
// is rejected. Duplicate variant keys are rejected.
func (s *Set) AddVariant(v *variant.Variant) error {
	if v == nil {
		return pedigree.NewValidationError("variant", "variant must not be nil", nil)
	}
	if s.family == nil {
		return pedigree.NewStateError("variant set requires add_family before variants can be added")
	}
	if v.Family() == nil {
		if err := v.SetFamily(s.family); err != nil {
			return err
		}
	} else if v.Family() != s.family {
		return pedigree.NewValidationError("variant", "variant is already bound to a different family", v.Key())
	}
	if s.byKey[v.Key()] {
		return pedigree.NewValidationError("variant", "duplicate variant key in set", v.Key())
	}
	s.byKey[v.Key()] = true
	s.variants = append(s.variants, v)
	return nil
}

// Variants returns the set's variants in insertion order.
func (s *Set) Variants() []*variant.Variant {
	return s.variants
}

// Family returns the set's bound family, or nil if none has been added.
func (s *Set) Family() *pedigree.Family {
	return s.family
}

// Package trio is the entry façade binding a pedigree Family to the
// Variants evaluated against it, validating the binding once up front
// rather than at every classifier call site, and exposing the
// inheritance classifier and compound-het engine as a single surface.
package trio

import (
	"fmt"

	"github.com/nimblegenomics/trioscope/internal/compoundhet"
	"github.com/nimblegenomics/trioscope/internal/inheritance"
	"github.com/nimblegenomics/trioscope/internal/pedigree"
	"github.com/nimblegenomics/trioscope/internal/variant"
)

// Case is a validated family with a designated proband, ready to
// classify Variants or collect them into a compound-het Set.
type Case struct {
	family         *pedigree.Family
	classifierOpts []inheritance.Option
}

// NewCase validates fam (non-nil, with a proband already set) and
// returns a Case bound to it. opts are forwarded to inheritance.New on
// every Classify/Classifier call, letting a caller apply configured
// thresholds (de novo alt-read ratio, UPD confidence floors, the
// low-penetrance gene panel) once at construction instead of at every
// classification site.
func NewCase(fam *pedigree.Family, opts ...inheritance.Option) (*Case, error) {
	if fam == nil {
		return nil, pedigree.NewValidationError("family", "family must not be nil", nil)
	}
	if !fam.HasProband() {
		return nil, pedigree.NewStateError("family requires a proband before it can be used as a trio case")
	}
	return &Case{family: fam, classifierOpts: opts}, nil
}

// Family returns the case's bound family.
func (c *Case) Family() *pedigree.Family {
	return c.family
}

// Classify binds v to the case's family (if it has none) and returns
// every inheritance pattern v is consistent with, under the Case's
// configured thresholds and low-penetrance gene panel (or the package
// defaults, if the Case was constructed with no options).
func (c *Case) Classify(v *variant.Variant) ([]inheritance.Pattern, error) {
	if err := c.bind(v); err != nil {
		return nil, err
	}
	patterns, err := inheritance.New(v, c.classifierOpts...).Classify()
	if err != nil {
		return nil, fmt.Errorf("trio: classify %s: %w", v.Key(), err)
	}
	return patterns, nil
}

// Classifier binds v to the case's family (if it has none) and returns
// a Classifier, under the Case's configured options, for callers that
// need a specific pattern method (e.g. MatchesAutosomalDominant with
// lenient/low-penetrance arguments) rather than the default Classify
// sweep.
func (c *Case) Classifier(v *variant.Variant) (*inheritance.Classifier, error) {
	if err := c.bind(v); err != nil {
		return nil, err
	}
	return inheritance.New(v, c.classifierOpts...), nil
}

func (c *Case) bind(v *variant.Variant) error {
	if v == nil {
		return pedigree.NewValidationError("variant", "variant must not be nil", nil)
	}
	if v.Family() == nil {
		return v.SetFamily(c.family)
	}
	if v.Family() != c.family {
		return pedigree.NewValidationError("variant", "variant is already bound to a different family", v.Key())
	}
	return nil
}

// NewCompoundHetSet returns an empty compoundhet.Set already bound to
// the case's family, ready for AddVariant calls.
func (c *Case) NewCompoundHetSet() (*compoundhet.Set, error) {
	s := compoundhet.NewSet()
	if err := s.AddFamily(c.family); err != nil {
		return nil, err
	}
	return s, nil
}

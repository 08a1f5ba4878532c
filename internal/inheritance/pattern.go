package inheritance

import "github.com/nimblegenomics/trioscope/internal/pedigree"

// Pattern names one of the closed set of inheritance patterns this
// package evaluates.
type Pattern int

const (
	AutosomalDominant Pattern = iota
	AutosomalRecessive
	DeNovo
	XLinkedRecessive
	XLinkedDominant
	UniparentalIsodisomy
	PaternalUniparentalAmbiguous
	MaternalUniparentalAmbiguous
	PaternalUniparentalIsodisomy
	MaternalUniparentalIsodisomy
)

func (p Pattern) String() string {
	switch p {
	case AutosomalDominant:
		return "autosomal_dominant"
	case AutosomalRecessive:
		return "autosomal_recessive"
	case DeNovo:
		return "de_novo"
	case XLinkedRecessive:
		return "x_linked_recessive"
	case XLinkedDominant:
		return "x_linked_dominant"
	case UniparentalIsodisomy:
		return "uniparental_isodisomy"
	case PaternalUniparentalAmbiguous:
		return "paternal_uniparental_ambiguous"
	case MaternalUniparentalAmbiguous:
		return "maternal_uniparental_ambiguous"
	case PaternalUniparentalIsodisomy:
		return "paternal_uniparental_isodisomy"
	case MaternalUniparentalIsodisomy:
		return "maternal_uniparental_isodisomy"
	default:
		return "unknown"
	}
}

// Classify runs every inheritance pattern against the classifier's
// variant, using strict (non-lenient) autosomal dominant matching and
// whatever low-penetrance gene set and thresholds the Classifier was
// constructed with, and returns the subset that match. It is additive
// sugar over the per-pattern methods: a pipeline that wants "every
// pattern this variant is consistent with" in one call instead of ten.
// Patterns that return a StateError (no family bound, no proband set)
// are treated as non-matching rather than aborting the whole scan,
// since a caller scanning many variants wants partial results, not a
// single bad variant halting the batch.
func (c *Classifier) Classify() ([]Pattern, error) {
	checks := []struct {
		pattern Pattern
		fn      func() (bool, error)
	}{
		{AutosomalDominant, func() (bool, error) { return c.MatchesAutosomalDominant(false, c.lowPenetranceGenes) }},
		{AutosomalRecessive, c.MatchesAutosomalRecessive},
		{DeNovo, func() (bool, error) { return c.MatchesDenovo("") }},
		{XLinkedRecessive, c.MatchesXRecessive},
		{XLinkedDominant, c.MatchesXDominant},
		{UniparentalIsodisomy, c.MatchesUniparentalIsodisomy},
		{PaternalUniparentalAmbiguous, c.MatchesPaternalUniparentalAmbiguous},
		{MaternalUniparentalAmbiguous, c.MatchesMaternalUniparentalAmbiguous},
		{PaternalUniparentalIsodisomy, c.MatchesPaternalUniparentalIsodisomy},
		{MaternalUniparentalIsodisomy, c.MatchesMaternalUniparentalIsodisomy},
	}

	var matched []Pattern
	for _, check := range checks {
		ok, err := check.fn()
		if err != nil {
			if _, isState := err.(*pedigree.StateError); isState {
				continue
			}
			return nil, err
		}
		if ok {
			matched = append(matched, check.pattern)
		}
	}
	return matched, nil
}

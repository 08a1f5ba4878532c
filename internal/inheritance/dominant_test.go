package inheritance

import (
	"testing"

	"github.com/nimblegenomics/trioscope/internal/pedigree"
)

func TestMatchesAutosomalDominant_NoFamilyBound(t *testing.T) {
	v, err := variantWithoutFamily(t)
	if err != nil {
		t.Fatalf("unexpected error building fixture: %v", err)
	}
	c := New(v)
	if _, err := c.MatchesAutosomalDominant(false, nil); err == nil {
		t.Fatal("expected StateError when no family is bound")
	} else if _, ok := err.(*pedigree.StateError); !ok {
		t.Fatalf("expected *pedigree.StateError, got %T: %v", err, err)
	}
}

func TestMatchesAutosomalDominant_NoProbandSet(t *testing.T) {
	v, fam := buildTrioNoProband(t)
	_ = fam
	c := New(v)
	if _, err := c.MatchesAutosomalDominant(false, nil); err == nil {
		t.Fatal("expected StateError when no proband is set")
	} else if _, ok := err.(*pedigree.StateError); !ok {
		t.Fatalf("expected *pedigree.StateError, got %T: %v", err, err)
	}
}

func TestMatchesAutosomalDominant_StrictHomAltProbandFails(t *testing.T) {
	v, _ := buildTrio(t, trioOpts{
		genotypes: map[string][2]string{
			"proband": {"A", "A"},
			"mum":     {"G", "G"},
			"dad":     {"G", "G"},
		},
	})
	c := New(v)

	strict, err := c.MatchesAutosomalDominant(false, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strict {
		t.Error("expected strict mode to reject hom-alt proband")
	}

	lenient, err := c.MatchesAutosomalDominant(true, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !lenient {
		t.Error("expected lenient mode to accept hom-alt proband")
	}
}

func TestMatchesAutosomalDominant_StrictImpliesLenient(t *testing.T) {
	// Property: strict ⇒ lenient (lenient relaxes, never tightens).
	fixtures := []trioOpts{
		{genotypes: map[string][2]string{"proband": {"G", "A"}, "mum": {"G", "G"}, "dad": {"G", "G"}}},
		{genotypes: map[string][2]string{"proband": {"A", "A"}, "mum": {"G", "G"}, "dad": {"G", "G"}}},
		{dadAffected: true, genotypes: map[string][2]string{"proband": {"G", "A"}, "dad": {"A", "A"}, "mum": {"G", "G"}}},
	}
	for i, opts := range fixtures {
		v, _ := buildTrio(t, opts)
		c := New(v)
		strict, err := c.MatchesAutosomalDominant(false, nil)
		if err != nil {
			t.Fatalf("fixture %d: unexpected error: %v", i, err)
		}
		lenient, err := c.MatchesAutosomalDominant(true, nil)
		if err != nil {
			t.Fatalf("fixture %d: unexpected error: %v", i, err)
		}
		if strict && !lenient {
			t.Errorf("fixture %d: strict=true but lenient=false, violates strict⇒lenient", i)
		}
	}
}

func TestMatchesAutosomalDominant_UnaffectedCarrierFails(t *testing.T) {
	v, _ := buildTrio(t, trioOpts{
		genotypes: map[string][2]string{
			"proband": {"G", "A"},
			"mum":     {"G", "A"},
			"dad":     {"G", "G"},
		},
	})
	c := New(v)
	ok, err := c.MatchesAutosomalDominant(false, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected rejection: unaffected mum carries alt")
	}
}

func TestMatchesAutosomalDominant_ProbandMissingFailsClosed(t *testing.T) {
	v, _ := buildTrio(t, trioOpts{})
	c := New(v)
	ok, err := c.MatchesAutosomalDominant(false, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected false when proband has no recorded genotype")
	}
}

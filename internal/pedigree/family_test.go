package pedigree

import "testing"

func buildTrio(t *testing.T) *Family {
	t.Helper()
	f, err := NewFamily("fam1")
	if err != nil {
		t.Fatalf("NewFamily: %v", err)
	}
	mum, _ := NewFamilyMember("mum", "fam1", Female, false, "", "")
	dad, _ := NewFamilyMember("dad", "fam1", Male, false, "", "")
	proband, _ := NewFamilyMember("proband", "fam1", Male, true, "mum", "dad")

	for _, m := range []*FamilyMember{mum, dad, proband} {
		if err := f.AddMember(m); err != nil {
			t.Fatalf("AddMember(%s): %v", m.ID(), err)
		}
	}
	if err := f.SetProband("proband"); err != nil {
		t.Fatalf("SetProband: %v", err)
	}
	return f
}

func TestFamily_AddMember_ParentBeforeChild(t *testing.T) {
	f, _ := NewFamily("fam1")
	child, _ := NewFamilyMember("child", "fam1", Male, true, "mum", "")
	if err := f.AddMember(child); err == nil {
		t.Fatal("expected error adding child before mother exists")
	}
}

func TestFamily_AddMember_ParentSexMismatch(t *testing.T) {
	f, _ := NewFamily("fam1")
	notMum, _ := NewFamilyMember("mum", "fam1", Male, false, "", "")
	_ = f.AddMember(notMum)
	child, _ := NewFamilyMember("child", "fam1", Female, true, "mum", "")
	if err := f.AddMember(child); err == nil {
		t.Fatal("expected error: mother must be FEMALE")
	}
}

func TestFamily_AddMember_CrossFamily(t *testing.T) {
	f, _ := NewFamily("fam1")
	other, _ := NewFamilyMember("x", "fam2", Male, false, "", "")
	if err := f.AddMember(other); err == nil {
		t.Fatal("expected error adding member from a different family")
	}
}

func TestFamily_AddMember_Duplicate(t *testing.T) {
	f, _ := NewFamily("fam1")
	m, _ := NewFamilyMember("m1", "fam1", Male, false, "", "")
	if err := f.AddMember(m); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := f.AddMember(m); err == nil {
		t.Fatal("expected error on duplicate insertion")
	}
}

func TestFamily_SetProband_MustBeAffected(t *testing.T) {
	f, _ := NewFamily("fam1")
	m, _ := NewFamilyMember("m1", "fam1", Male, false, "", "")
	_ = f.AddMember(m)
	if err := f.SetProband("m1"); err == nil {
		t.Fatal("expected error: proband must be affected")
	}
}

func TestFamily_DerivedQueries(t *testing.T) {
	f := buildTrio(t)

	if got := len(f.Affected()); got != 1 {
		t.Errorf("Affected() = %d, want 1", got)
	}
	if got := len(f.Unaffected()); got != 2 {
		t.Errorf("Unaffected() = %d, want 2", got)
	}
	if got := len(f.Males()); got != 2 {
		t.Errorf("Males() = %d, want 2", got)
	}
	if got := len(f.Females()); got != 1 {
		t.Errorf("Females() = %d, want 1", got)
	}

	mum := f.Member("mum")
	sons := f.Sons(mum)
	if len(sons) != 1 || sons[0].ID() != "proband" {
		t.Errorf("Sons(mum) = %v, want [proband]", sons)
	}
	if daughters := f.Daughters(mum); len(daughters) != 0 {
		t.Errorf("Daughters(mum) = %v, want none", daughters)
	}
}

func TestFamily_Siblings(t *testing.T) {
	f := buildTrio(t)
	sibling, _ := NewFamilyMember("sibling", "fam1", Female, false, "mum", "dad")
	_ = f.AddMember(sibling)

	proband := f.Member("proband")
	sibs := f.Siblings(proband)
	if len(sibs) != 1 || sibs[0].ID() != "sibling" {
		t.Errorf("Siblings(proband) = %v, want [sibling]", sibs)
	}
	if len(f.UnaffectedSiblings(proband)) != 1 {
		t.Error("expected one unaffected sibling")
	}
	if len(f.AffectedSiblings(proband)) != 0 {
		t.Error("expected no affected siblings")
	}
}

func TestFamily_ProbandHelpers(t *testing.T) {
	f, _ := NewFamily("fam1")
	if f.HasProband() {
		t.Error("new family should have no proband")
	}
	m, _ := NewFamilyMember("m1", "fam1", Male, true, "", "")
	_ = f.AddMember(m)
	if err := f.SetProband("missing"); err == nil {
		t.Fatal("expected error for unknown proband id")
	}
	if err := f.SetProband("m1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !f.HasProband() || f.Proband().ID() != "m1" {
		t.Error("expected proband m1 to be set")
	}
}

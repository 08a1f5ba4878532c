package pedigree

import "testing"

func TestNewFamilyMember(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		familyID string
		sex      Sex
		affected bool
		mumID    string
		dadID    string
		wantErr  bool
	}{
		{"valid male", "proband", "fam1", Male, true, "mum", "dad", false},
		{"valid female no parents", "mum", "fam1", Female, false, "", "", false},
		{"empty id", "", "fam1", Male, true, "", "", true},
		{"empty family id", "proband", "", Male, true, "", "", true},
		{"unknown sex", "proband", "fam1", Unknown, true, "", "", true},
		{"invalid sex code", "proband", "fam1", Sex(9), true, "", "", true},
		{"self as mum", "proband", "fam1", Male, true, "proband", "", true},
		{"self as dad", "proband", "fam1", Male, true, "", "proband", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFamilyMember(tt.id, tt.familyID, tt.sex, tt.affected, tt.mumID, tt.dadID)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewFamilyMember() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestFamilyMember_Accessors(t *testing.T) {
	m, err := NewFamilyMember("p1", "fam1", Male, true, "m1", "d1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !m.IsMale() || m.IsFemale() {
		t.Error("expected male, not female")
	}
	if !m.HasMum() || !m.HasDad() {
		t.Error("expected both parents recorded")
	}
	if m.MumID() != "m1" || m.DadID() != "d1" {
		t.Errorf("unexpected parent ids: mum=%s dad=%s", m.MumID(), m.DadID())
	}
}

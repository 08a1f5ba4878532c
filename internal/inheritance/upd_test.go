package inheritance

import "testing"

func TestMatchesUniparentalIsodisomy(t *testing.T) {
	tests := []struct {
		name      string
		genotypes map[string][2]string
		depths    map[string][]int
		want      bool
	}{
		{
			name: "paternal donor isodisomy",
			genotypes: map[string][2]string{
				"proband": {"A", "A"}, "mum": {"G", "G"}, "dad": {"G", "A"},
			},
			want: true,
		},
		{
			name: "maternal donor isodisomy",
			genotypes: map[string][2]string{
				"proband": {"G", "G"}, "mum": {"G", "A"}, "dad": {"A", "A"},
			},
			want: true,
		},
		{
			name: "both parents het is not isodisomy",
			genotypes: map[string][2]string{
				"proband": {"A", "A"}, "mum": {"G", "A"}, "dad": {"G", "A"},
			},
			want: false,
		},
		{
			name: "proband het is not homozygous, rejects",
			genotypes: map[string][2]string{
				"proband": {"G", "A"}, "mum": {"G", "G"}, "dad": {"G", "A"},
			},
			want: false,
		},
		{
			name: "low parental read depth rejects",
			genotypes: map[string][2]string{
				"proband": {"A", "A"}, "mum": {"G", "G"}, "dad": {"G", "A"},
			},
			depths: map[string][]int{"dad": {3, 2}},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, _ := buildTrio(t, trioOpts{genotypes: tt.genotypes, depths: tt.depths})
			ok, err := New(v).MatchesUniparentalIsodisomy()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ok != tt.want {
				t.Errorf("MatchesUniparentalIsodisomy() = %v, want %v", ok, tt.want)
			}
		})
	}
}

func TestMatchesPaternalAndMaternalUniparentalIsodisomy(t *testing.T) {
	v, _ := buildTrio(t, trioOpts{
		genotypes: map[string][2]string{
			"proband": {"A", "A"}, "mum": {"G", "G"}, "dad": {"G", "A"},
		},
	})
	c := New(v)

	paternal, err := c.MatchesPaternalUniparentalIsodisomy()
	if err != nil {
		t.Fatalf("MatchesPaternalUniparentalIsodisomy: %v", err)
	}
	if !paternal {
		t.Error("expected paternal isodisomy match: dad het, mum hom for opposite allele")
	}

	maternal, err := c.MatchesMaternalUniparentalIsodisomy()
	if err != nil {
		t.Fatalf("MatchesMaternalUniparentalIsodisomy: %v", err)
	}
	if maternal {
		t.Error("expected maternal isodisomy to reject: mum is not the heterozygous donor")
	}
}

func TestMatchesUPDAmbiguous(t *testing.T) {
	v, _ := buildTrio(t, trioOpts{
		genotypes: map[string][2]string{
			"proband": {"A", "A"}, "mum": {"G", "G"}, "dad": {"A", "A"},
		},
	})
	c := New(v)

	paternal, err := c.MatchesPaternalUniparentalAmbiguous()
	if err != nil {
		t.Fatalf("MatchesPaternalUniparentalAmbiguous: %v", err)
	}
	if !paternal {
		t.Error("expected paternal ambiguous match: dad hom matches proband, mum hom opposite")
	}

	maternal, err := c.MatchesMaternalUniparentalAmbiguous()
	if err != nil {
		t.Fatalf("MatchesMaternalUniparentalAmbiguous: %v", err)
	}
	if maternal {
		t.Error("expected maternal ambiguous to reject: roles are reversed")
	}
}

func TestMatchesUPDAmbiguous_ParentHetRejects(t *testing.T) {
	v, _ := buildTrio(t, trioOpts{
		genotypes: map[string][2]string{
			"proband": {"A", "A"}, "mum": {"G", "A"}, "dad": {"A", "A"},
		},
	})
	ok, err := New(v).MatchesPaternalUniparentalAmbiguous()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected rejection: the ambiguous configuration requires all three strictly homozygous")
	}
}

func TestAllelesIdenticalToDad(t *testing.T) {
	v, _ := buildTrio(t, trioOpts{
		genotypes: map[string][2]string{
			"proband": {"G", "A"}, "mum": {"G", "G"}, "dad": {"G", "A"},
		},
	})
	ok, err := New(v).AllelesIdenticalToDad()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Error("expected match: proband and dad share the same allele multiset")
	}
}

func TestIsBiparentalInheritance(t *testing.T) {
	tests := []struct {
		name      string
		genotypes map[string][2]string
		want      bool
	}{
		{
			name: "classic biparental het",
			genotypes: map[string][2]string{
				"proband": {"G", "A"}, "mum": {"G", "G"}, "dad": {"G", "A"},
			},
			want: true,
		},
		{
			name: "mum and dad genotypically identical, indistinguishable",
			genotypes: map[string][2]string{
				"proband": {"G", "A"}, "mum": {"G", "A"}, "dad": {"G", "A"},
			},
			want: false,
		},
		{
			name: "proband allele not assignable to either parent",
			genotypes: map[string][2]string{
				"proband": {"A", "A"}, "mum": {"G", "G"}, "dad": {"G", "G"},
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, _ := buildTrio(t, trioOpts{genotypes: tt.genotypes})
			ok, err := New(v).IsBiparentalInheritance()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ok != tt.want {
				t.Errorf("IsBiparentalInheritance() = %v, want %v", ok, tt.want)
			}
		})
	}
}

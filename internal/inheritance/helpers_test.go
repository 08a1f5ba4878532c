package inheritance

import (
	"testing"

	"github.com/nimblegenomics/trioscope/internal/pedigree"
	"github.com/nimblegenomics/trioscope/internal/variant"
)

// trioOpts configures buildTrio, which builds a standard mum/dad/proband
// trio on the given chromosome and genotypes each member at a single G>A
// variant. Any member omitted from genotypes (by id) is left ungenotyped
// (missing). Sex and affected defaults match a typical autosomal trio
// (mum female unaffected, dad male unaffected, proband male affected);
// override via opts for X-linked or sibling scenarios. A member without
// an entry in depths gets 20 reads per allele slot, credited to alt only
// for an "A" slot, so a hom-ref call carries no alt-supporting reads.
type trioOpts struct {
	chrom       string
	probandSex  pedigree.Sex
	mumAffected bool
	dadAffected bool
	genotypes   map[string][2]string
	depths      map[string][]int
}

func buildTrio(t *testing.T, opts trioOpts) (*variant.Variant, *pedigree.Family) {
	t.Helper()

	if opts.chrom == "" {
		opts.chrom = "2"
	}
	if opts.probandSex == pedigree.Unknown {
		opts.probandSex = pedigree.Male
	}

	fam, err := pedigree.NewFamily("fam1")
	if err != nil {
		t.Fatalf("NewFamily: %v", err)
	}
	mum, _ := pedigree.NewFamilyMember("mum", "fam1", pedigree.Female, opts.mumAffected, "", "")
	dad, _ := pedigree.NewFamilyMember("dad", "fam1", pedigree.Male, opts.dadAffected, "", "")
	proband, _ := pedigree.NewFamilyMember("proband", "fam1", opts.probandSex, true, "mum", "dad")

	for _, m := range []*pedigree.FamilyMember{mum, dad, proband} {
		if err := fam.AddMember(m); err != nil {
			t.Fatalf("AddMember(%s): %v", m.ID(), err)
		}
	}
	if err := fam.SetProband("proband"); err != nil {
		t.Fatalf("SetProband: %v", err)
	}

	v, err := variant.New(opts.chrom, 100, "G", "A")
	if err != nil {
		t.Fatalf("variant.New: %v", err)
	}
	if err := v.SetFamily(fam); err != nil {
		t.Fatalf("SetFamily: %v", err)
	}

	for id, alleles := range opts.genotypes {
		depths := opts.depths[id]
		if depths == nil {
			depths = []int{0, 0}
			for _, a := range alleles {
				if a == "A" {
					depths[1] += 20
				} else {
					depths[0] += 20
				}
			}
		}
		if err := v.AddGenotype(id, alleles, depths, 60, sum(depths)); err != nil {
			t.Fatalf("AddGenotype(%s): %v", id, err)
		}
	}

	return v, fam
}

// buildTrioFromFamily binds a freshly assembled Family (with its own
// membership and proband already configured by the caller) to a new
// G>A variant at chrom 2, recording genotypes from the given map.
func buildTrioFromFamily(t *testing.T, fam *pedigree.Family, genotypes map[string][2]string) (*variant.Variant, error) {
	t.Helper()
	v, err := variant.New("2", 100, "G", "A")
	if err != nil {
		return nil, err
	}
	if err := v.SetFamily(fam); err != nil {
		return nil, err
	}
	for id, alleles := range genotypes {
		if err := v.AddGenotype(id, alleles, []int{20, 20}, 60, 40); err != nil {
			return nil, err
		}
	}
	return v, nil
}

func sum(xs []int) int {
	total := 0
	for _, x := range xs {
		total += x
	}
	return total
}

// variantWithoutFamily returns a Variant with no bound Family, to
// exercise the "classifier requires a family bound" StateError.
func variantWithoutFamily(t *testing.T) (*variant.Variant, error) {
	t.Helper()
	return variant.New("2", 100, "G", "A")
}

// buildTrioNoProband is like buildTrio but leaves the proband
// undesignated, to exercise the "classifier requires a proband"
// StateError.
func buildTrioNoProband(t *testing.T) (*variant.Variant, *pedigree.Family) {
	t.Helper()
	fam, err := pedigree.NewFamily("fam1")
	if err != nil {
		t.Fatalf("NewFamily: %v", err)
	}
	mum, _ := pedigree.NewFamilyMember("mum", "fam1", pedigree.Female, false, "", "")
	dad, _ := pedigree.NewFamilyMember("dad", "fam1", pedigree.Male, false, "", "")
	proband, _ := pedigree.NewFamilyMember("proband", "fam1", pedigree.Male, true, "mum", "dad")
	for _, m := range []*pedigree.FamilyMember{mum, dad, proband} {
		if err := fam.AddMember(m); err != nil {
			t.Fatalf("AddMember(%s): %v", m.ID(), err)
		}
	}
	v, err := variant.New("2", 100, "G", "A")
	if err != nil {
		t.Fatalf("variant.New: %v", err)
	}
	if err := v.SetFamily(fam); err != nil {
		t.Fatalf("SetFamily: %v", err)
	}
	return v, fam
}

// addSiblingNoGenotype adds a sibling to fam without recording a
// genotype at any variant, to exercise missing-genotype permissiveness.
func addSiblingNoGenotype(fam *pedigree.Family, affected bool) (*pedigree.FamilyMember, error) {
	m, err := pedigree.NewFamilyMember("sib", "fam1", pedigree.Female, affected, "mum", "dad")
	if err != nil {
		return nil, err
	}
	if err := fam.AddMember(m); err != nil {
		return nil, err
	}
	return m, nil
}

func addSibling(t *testing.T, fam *pedigree.Family, v *variant.Variant, id string, sex pedigree.Sex, affected bool, alleles [2]string) {
	t.Helper()
	m, err := pedigree.NewFamilyMember(id, "fam1", sex, affected, "mum", "dad")
	if err != nil {
		t.Fatalf("NewFamilyMember(%s): %v", id, err)
	}
	if err := fam.AddMember(m); err != nil {
		t.Fatalf("AddMember(%s): %v", id, err)
	}
	if err := v.AddGenotype(id, alleles, []int{20, 20}, 60, 40); err != nil {
		t.Fatalf("AddGenotype(%s): %v", id, err)
	}
}

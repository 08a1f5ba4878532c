package genepanel

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SeedEntry is one gene/rationale pair in a YAML seed file.
type SeedEntry struct {
	Gene      string `yaml:"gene"`
	Rationale string `yaml:"rationale"`
}

// LoadSeedYAML reads a YAML document of the form:
//
//	genes:
//	  - gene: BRCA1
//	    rationale: established low-penetrance allele series
//
// into a gene -> rationale map, for seeding a Store via Add.
func LoadSeedYAML(path string) (map[string]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("genepanel: read seed file: %w", err)
	}

	var doc struct {
		Genes []SeedEntry `yaml:"genes"`
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("genepanel: parse seed file: %w", err)
	}

	out := make(map[string]string, len(doc.Genes))
	for _, e := range doc.Genes {
		if e.Gene == "" {
			return nil, fmt.Errorf("genepanel: seed entry missing gene symbol")
		}
		out[e.Gene] = e.Rationale
	}
	return out, nil
}

// SeedStore loads path and inserts every entry into s.
func SeedStore(s *Store, path string) error {
	entries, err := LoadSeedYAML(path)
	if err != nil {
		return err
	}
	for gene, rationale := range entries {
		if err := s.Add(gene, rationale); err != nil {
			return err
		}
	}
	return nil
}

// Package pedio loads the tab-delimited PED pedigree format into
// pedigree.Family/FamilyMember values, grounded on internal/vcf/parser.go's
// bufio.Scanner line-at-a-time reading and descriptive fmt.Errorf
// wrapping.
package pedio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/nimblegenomics/trioscope/internal/pedigree"
)

// missingParentID is the PED convention for "no parent recorded".
const missingParentID = "0"

// Load reads a PED file from path and returns one Family per family_id
// column encountered. probandID, if non-empty, is set as the proband on
// whichever family contains that member id.
func Load(path string, probandID string) (map[string]*pedigree.Family, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pedio: open %s: %w", path, err)
	}
	defer f.Close()
	return LoadFromReader(f, probandID)
}

// record is a single parsed PED line, held until its family has ingested
// every ancestor the line depends on.
type record struct {
	familyID, id, dadID, mumID string
	sex                        pedigree.Sex
	affected                   bool
	lineNumber                 int
}

// LoadFromReader parses r in PED's
// family_id individual_id paternal_id maternal_id sex phenotype layout.
// Records are added to their family in a second pass, topologically
// ordered by parent-before-child, since PED files are not guaranteed to
// list parents before their children.
func LoadFromReader(r io.Reader, probandID string) (map[string]*pedigree.Family, error) {
	var records []record
	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		rec, err := parseLine(line, lineNumber)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("pedio: scan: %w", err)
	}

	families := make(map[string]*pedigree.Family)
	pending := records
	for len(pending) > 0 {
		progressed := false
		var stillPending []record
		for _, rec := range pending {
			fam, err := familyFor(families, rec.familyID)
			if err != nil {
				return nil, err
			}
			if rec.dadID != "" && !fam.Has(rec.dadID) {
				stillPending = append(stillPending, rec)
				continue
			}
			if rec.mumID != "" && !fam.Has(rec.mumID) {
				stillPending = append(stillPending, rec)
				continue
			}
			m, err := pedigree.NewFamilyMember(rec.id, rec.familyID, rec.sex, rec.affected, rec.mumID, rec.dadID)
			if err != nil {
				return nil, fmt.Errorf("pedio: line %d: %w", rec.lineNumber, err)
			}
			if err := fam.AddMember(m); err != nil {
				return nil, fmt.Errorf("pedio: line %d: %w", rec.lineNumber, err)
			}
			progressed = true
		}
		if !progressed && len(stillPending) > 0 {
			return nil, fmt.Errorf("pedio: unresolvable parent references, %d record(s) stuck (cycle or missing ancestor)", len(stillPending))
		}
		pending = stillPending
	}

	if probandID != "" {
		for _, fam := range families {
			if fam.Has(probandID) {
				if err := fam.SetProband(probandID); err != nil {
					return nil, fmt.Errorf("pedio: set proband: %w", err)
				}
				break
			}
		}
	}

	return families, nil
}

func familyFor(families map[string]*pedigree.Family, familyID string) (*pedigree.Family, error) {
	if fam, ok := families[familyID]; ok {
		return fam, nil
	}
	fam, err := pedigree.NewFamily(familyID)
	if err != nil {
		return nil, fmt.Errorf("pedio: %w", err)
	}
	families[familyID] = fam
	return fam, nil
}

func parseLine(line string, lineNumber int) (record, error) {
	fields := strings.Fields(line)
	if len(fields) < 6 {
		return record{}, fmt.Errorf("pedio: line %d: expected 6 fields, found %d", lineNumber, len(fields))
	}

	sexCode, err := strconv.Atoi(fields[4])
	if err != nil {
		return record{}, fmt.Errorf("pedio: line %d: invalid sex code %q: %w", lineNumber, fields[4], err)
	}
	var sex pedigree.Sex
	switch sexCode {
	case 1:
		sex = pedigree.Male
	case 2:
		sex = pedigree.Female
	default:
		return record{}, fmt.Errorf("pedio: line %d: sex code must be 1 or 2, got %d", lineNumber, sexCode)
	}

	phenotype, err := strconv.Atoi(fields[5])
	if err != nil {
		return record{}, fmt.Errorf("pedio: line %d: invalid phenotype code %q: %w", lineNumber, fields[5], err)
	}
	affected := phenotype == 2

	dadID := fields[2]
	if dadID == missingParentID {
		dadID = ""
	}
	mumID := fields[3]
	if mumID == missingParentID {
		mumID = ""
	}

	return record{
		familyID:   fields[0],
		id:         fields[1],
		dadID:      dadID,
		mumID:      mumID,
		sex:        sex,
		affected:   affected,
		lineNumber: lineNumber,
	}, nil
}

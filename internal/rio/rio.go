// Package rio writes inheritance-classification results in
// tab-delimited format, adapted from the teacher's
// internal/output/tab.go column-building TabWriter.
package rio

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/nimblegenomics/trioscope/internal/inheritance"
	"github.com/nimblegenomics/trioscope/internal/variant"
)

// TabWriter writes one row per variant in tab-delimited format, with all
// of that variant's matched patterns in a single column.
type TabWriter struct {
	w       *bufio.Writer
	columns []string
}

// NewTabWriter wraps w for tab-delimited classification output.
func NewTabWriter(w io.Writer) *TabWriter {
	return &TabWriter{
		w: bufio.NewWriter(w),
		columns: []string{
			"#Chrom",
			"Pos",
			"Ref",
			"Alt",
			"Gene",
			"Proband",
			"InheritancePatterns",
		},
	}
}

// WriteHeader writes the header line.
func (tw *TabWriter) WriteHeader() error {
	_, err := tw.w.WriteString(strings.Join(tw.columns, "\t") + "\n")
	return err
}

// Write writes one row for v naming every pattern in patterns,
// comma-joined. patterns is the caller's already-computed classification
// result (typically from trio.Case.Classify), so Write never re-derives
// it under a different set of thresholds than the caller used. A variant
// with no family bound, or for which no pattern matches, still produces
// a row with "-" in the InheritancePatterns column.
func (tw *TabWriter) Write(v *variant.Variant, patterns []inheritance.Pattern) error {
	gene := "-"
	if genes := v.Genes(); len(genes) > 0 {
		gene = strings.Join(genes, ",")
	}

	proband := "-"
	if fam := v.Family(); fam != nil && fam.HasProband() {
		proband = fam.ProbandID()
	}

	patternNames := "-"
	if len(patterns) > 0 {
		names := make([]string, len(patterns))
		for i, p := range patterns {
			names[i] = p.String()
		}
		patternNames = strings.Join(names, ",")
	}

	values := []string{
		v.Chrom,
		fmt.Sprintf("%d", v.Pos),
		v.Ref,
		v.Alt,
		gene,
		proband,
		patternNames,
	}

	_, err := tw.w.WriteString(strings.Join(values, "\t") + "\n")
	return err
}

// Flush flushes any buffered data to the underlying writer.
func (tw *TabWriter) Flush() error {
	return tw.w.Flush()
}

// WriteCompoundHetKeys writes one variant key per line for the surviving
// keys of a FilterCompoundHets result, in the order given.
func WriteCompoundHetKeys(w io.Writer, keys []string) error {
	bw := bufio.NewWriter(w)
	for _, k := range keys {
		if _, err := bw.WriteString(k + "\n"); err != nil {
			return fmt.Errorf("rio: write compound-het key: %w", err)
		}
	}
	return bw.Flush()
}

// Package gtio reads a reduced multi-sample VCF into variant.Variant
// values, grounded on internal/vcf/parser.go's gzip-aware bufio.Reader
// line parsing and on internal/annotate/annotation.go's
// Feature/SYMBOL/Consequence field naming for the CSQ-style INFO
// annotation it lifts into variant.TranscriptAnnotation.
package gtio

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/nimblegenomics/trioscope/internal/variant"
)

// Reader reads genotype records from a minimal multi-sample VCF:
// #CHROM POS ID REF ALT QUAL FILTER INFO FORMAT <sample...>, with a
// GT:AD:GQ:DP FORMAT field per sample.
type Reader struct {
	r           *bufio.Reader
	closer      io.Closer
	sampleNames []string
	lineNumber  int
}

// Open opens path (plain or gzip-compressed) and reads its header.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gtio: open %s: %w", path, err)
	}

	var br *bufio.Reader
	var closer io.Closer = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("gtio: gzip reader: %w", err)
		}
		br = bufio.NewReader(gz)
		closer = gz
	} else {
		br = bufio.NewReader(f)
	}

	rd := &Reader{r: br, closer: closer}
	if err := rd.parseHeader(); err != nil {
		f.Close()
		return nil, err
	}
	return rd, nil
}

// Close releases the underlying file (and gzip reader, if any).
func (rd *Reader) Close() error {
	return rd.closer.Close()
}

// SampleNames returns the sample columns named in the #CHROM header.
func (rd *Reader) SampleNames() []string {
	return rd.sampleNames
}

func (rd *Reader) parseHeader() error {
	for {
		line, err := rd.r.ReadString('\n')
		if err != nil && err != io.EOF {
			return fmt.Errorf("gtio: read header: %w", err)
		}
		rd.lineNumber++
		line = strings.TrimRight(line, "\r\n")

		if strings.HasPrefix(line, "##") {
			if err == io.EOF {
				break
			}
			continue
		}
		if strings.HasPrefix(line, "#CHROM") {
			fields := strings.Split(line, "\t")
			if len(fields) > 9 {
				rd.sampleNames = fields[9:]
			}
			return nil
		}
		if err == io.EOF {
			break
		}
	}
	return fmt.Errorf("gtio: line %d: no #CHROM header line found", rd.lineNumber)
}

// Next reads the next genotype line into a *variant.Variant with every
// sample's call and any CSQ transcript annotations attached. Returns
// nil, nil at end of input.
func (rd *Reader) Next() (*variant.Variant, error) {
	line, err := rd.r.ReadString('\n')
	if err != nil {
		if err == io.EOF && line == "" {
			return nil, nil
		}
		if err != io.EOF {
			return nil, fmt.Errorf("gtio: line %d: read: %w", rd.lineNumber, err)
		}
	}
	rd.lineNumber++
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return rd.Next()
	}
	return rd.parseLine(line)
}

func (rd *Reader) parseLine(line string) (*variant.Variant, error) {
	fields := strings.Split(line, "\t")
	if len(fields) < 9 {
		return nil, fmt.Errorf("gtio: line %d: expected at least 9 columns, found %d", rd.lineNumber, len(fields))
	}

	pos, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("gtio: line %d: invalid position %q: %w", rd.lineNumber, fields[1], err)
	}

	v, err := variant.New(fields[0], pos, fields[3], fields[4])
	if err != nil {
		return nil, fmt.Errorf("gtio: line %d: %w", rd.lineNumber, err)
	}

	for _, ann := range parseCSQ(fields[7], fields[0], pos, fields[3], fields[4]) {
		if err := v.AddAnnotation(ann); err != nil {
			return nil, fmt.Errorf("gtio: line %d: %w", rd.lineNumber, err)
		}
	}

	formatKeys := strings.Split(fields[8], ":")
	for i, sampleName := range rd.sampleNames {
		col := 9 + i
		if col >= len(fields) {
			break
		}
		alleles, depths, gq, dp, err := parseSample(formatKeys, fields[col], fields[3], fields[4])
		if err != nil {
			return nil, fmt.Errorf("gtio: line %d: sample %s: %w", rd.lineNumber, sampleName, err)
		}
		if err := v.AddGenotype(sampleName, alleles, depths, gq, dp); err != nil {
			return nil, fmt.Errorf("gtio: line %d: sample %s: %w", rd.lineNumber, sampleName, err)
		}
	}

	return v, nil
}

// parseSample splits a single sample column by FORMAT's GT:AD:GQ:DP
// layout into the pieces variant.AddGenotype expects. GT is translated
// from VCF index notation (0=ref, 1=alt, .=missing) into the literal
// ref/alt strings AddGenotype's allele parser (genotype.ParseAllele)
// compares against.
func parseSample(formatKeys []string, col string, ref, alt string) (alleles [2]string, depths []int, gq int, dp int, err error) {
	values := strings.Split(col, ":")
	get := func(key string) (string, bool) {
		for i, k := range formatKeys {
			if k == key && i < len(values) {
				return values[i], true
			}
		}
		return "", false
	}

	gtRaw, ok := get("GT")
	if !ok {
		return alleles, nil, 0, 0, fmt.Errorf("missing GT field")
	}
	gtParts := strings.FieldsFunc(gtRaw, func(r rune) bool { return r == '/' || r == '|' })
	if len(gtParts) != 2 {
		return alleles, nil, 0, 0, fmt.Errorf("malformed GT %q", gtRaw)
	}
	alleles, err = decodeGT(gtParts, ref, alt)
	if err != nil {
		return alleles, nil, 0, 0, err
	}

	if adRaw, ok := get("AD"); ok {
		for _, d := range strings.Split(adRaw, ",") {
			n, convErr := strconv.Atoi(d)
			if convErr != nil {
				return alleles, nil, 0, 0, fmt.Errorf("invalid AD %q: %w", adRaw, convErr)
			}
			depths = append(depths, n)
		}
	}
	if gqRaw, ok := get("GQ"); ok {
		gq, err = strconv.Atoi(gqRaw)
		if err != nil {
			return alleles, nil, 0, 0, fmt.Errorf("invalid GQ %q: %w", gqRaw, err)
		}
	}
	if dpRaw, ok := get("DP"); ok {
		dp, err = strconv.Atoi(dpRaw)
		if err != nil {
			return alleles, nil, 0, 0, fmt.Errorf("invalid DP %q: %w", dpRaw, err)
		}
	}
	if len(depths) == 0 {
		depths = []int{0, 0}
	}
	return alleles, depths, gq, dp, nil
}

// decodeGT maps GT index notation ("0", "1", ".") onto the variant's
// literal ref/alt strings, the vocabulary genotype.ParseAllele compares
// against.
func decodeGT(parts []string, ref, alt string) ([2]string, error) {
	var out [2]string
	for i, p := range parts {
		switch p {
		case "0":
			out[i] = ref
		case "1":
			out[i] = alt
		case ".":
			out[i] = "."
		default:
			return out, fmt.Errorf("unsupported GT allele index %q (only biallelic 0/1/. supported)", p)
		}
	}
	return out, nil
}

// parseCSQ extracts CSQ=... from the INFO field and lifts each
// Feature/SYMBOL/Consequence-shaped entry (pipe-delimited, VEP CSQ
// convention) into a TranscriptAnnotation. The gene is taken from
// SYMBOL, or from Feature when an entry has no SYMBOL; an entry with
// neither is dropped.
func parseCSQ(info, chrom string, pos int64, ref, alt string) []variant.TranscriptAnnotation {
	if info == "." || info == "" {
		return nil
	}
	var csqValue string
	for _, kv := range strings.Split(info, ";") {
		if strings.HasPrefix(kv, "CSQ=") {
			csqValue = strings.TrimPrefix(kv, "CSQ=")
			break
		}
	}
	if csqValue == "" {
		return nil
	}

	var anns []variant.TranscriptAnnotation
	for _, entry := range strings.Split(csqValue, ",") {
		parts := strings.Split(entry, "|")
		var ann variant.TranscriptAnnotation
		for _, p := range parts {
			kv := strings.SplitN(p, "=", 2)
			if len(kv) != 2 {
				continue
			}
			switch kv[0] {
			case "SYMBOL":
				ann.Gene = kv[1]
			case "Feature":
				ann.FeatureID = kv[1]
			case "Consequence":
				ann.Consequence = kv[1]
			}
		}
		if ann.Gene == "" {
			ann.Gene = ann.FeatureID
		}
		if ann.Gene != "" {
			anns = append(anns, ann)
		}
	}
	return anns
}

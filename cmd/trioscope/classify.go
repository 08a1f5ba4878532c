package main

import (
	"fmt"
	"os"

	"github.com/nimblegenomics/trioscope/internal/gtio"
	"github.com/nimblegenomics/trioscope/internal/pedigree"
	"github.com/nimblegenomics/trioscope/internal/pedio"
	"github.com/nimblegenomics/trioscope/internal/rio"
	"github.com/nimblegenomics/trioscope/internal/trio"
	"github.com/spf13/cobra"
)

func newClassifyCmd() *cobra.Command {
	var probandID string
	var outputPath string

	cmd := &cobra.Command{
		Use:   "classify <ped> <vcf>",
		Short: "Run every inheritance classifier against each variant and write a TSV report",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClassify(args[0], args[1], probandID, outputPath)
		},
	}
	cmd.Flags().StringVar(&probandID, "proband", "", "proband member id (required when the PED file names more than one family)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file (default: stdout)")
	return cmd
}

func runClassify(pedPath, vcfPath, probandID, outputPath string) error {
	logger := newLogger()
	defer logger.Sync()

	fam, err := loadSingleFamily(pedPath, probandID)
	if err != nil {
		return err
	}
	logger.LoadedPedigree(fam.ID(), fam.Len())

	classifierOpts, closePanel, err := buildClassifierOptions()
	if err != nil {
		return err
	}
	defer closePanel()

	tc, err := trio.NewCase(fam, classifierOpts...)
	if err != nil {
		return fmt.Errorf("trioscope: %w", err)
	}

	rd, err := gtio.Open(vcfPath)
	if err != nil {
		return fmt.Errorf("trioscope: %w", err)
	}
	defer rd.Close()

	out := os.Stdout
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("trioscope: create output: %w", err)
		}
		defer f.Close()
		out = f
	}

	tw := rio.NewTabWriter(out)
	if err := tw.WriteHeader(); err != nil {
		return fmt.Errorf("trioscope: write header: %w", err)
	}

	count := 0
	for {
		v, err := rd.Next()
		if err != nil {
			return fmt.Errorf("trioscope: %w", err)
		}
		if v == nil {
			break
		}
		patterns, err := tc.Classify(v)
		if err != nil {
			return fmt.Errorf("trioscope: %w", err)
		}
		for _, p := range patterns {
			logger.ClassifierDecision(v.Key(), p.String(), true)
		}
		if err := tw.Write(v, patterns); err != nil {
			return fmt.Errorf("trioscope: %w", err)
		}
		count++
	}
	logger.LoadedGenotypes(vcfPath, count)

	return tw.Flush()
}

// loadSingleFamily loads a PED file and returns its one family, or the
// family containing probandID if more than one is present.
func loadSingleFamily(pedPath, probandID string) (*pedigree.Family, error) {
	families, err := pedio.Load(pedPath, probandID)
	if err != nil {
		return nil, fmt.Errorf("trioscope: %w", err)
	}
	if len(families) == 1 {
		for _, f := range families {
			return f, nil
		}
	}
	if probandID == "" {
		return nil, fmt.Errorf("trioscope: PED file names %d families; pass --proband to select one", len(families))
	}
	for _, f := range families {
		if f.HasProband() {
			return f, nil
		}
	}
	return nil, fmt.Errorf("trioscope: no family in %s contains proband %q", pedPath, probandID)
}

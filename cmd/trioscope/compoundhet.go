package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/nimblegenomics/trioscope/internal/gtio"
	"github.com/nimblegenomics/trioscope/internal/rio"
	"github.com/nimblegenomics/trioscope/internal/trio"
	"github.com/spf13/cobra"
)

func newCompoundHetCmd() *cobra.Command {
	var probandID string
	var outputPath string
	var includeDenovo bool

	cmd := &cobra.Command{
		Use:   "compound-het <ped> <vcf>",
		Short: "Resolve candidate compound-heterozygous variant pairs and print the surviving keys",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompoundHet(args[0], args[1], probandID, outputPath, includeDenovo)
		},
	}
	cmd.Flags().StringVar(&probandID, "proband", "", "proband member id (required when the PED file names more than one family)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&includeDenovo, "include-denovo", false, "count both-parents-uninformative candidate pairs as potential de novo compound hets")
	return cmd
}

func runCompoundHet(pedPath, vcfPath, probandID, outputPath string, includeDenovo bool) error {
	logger := newLogger()
	defer logger.Sync()

	fam, err := loadSingleFamily(pedPath, probandID)
	if err != nil {
		return err
	}
	logger.LoadedPedigree(fam.ID(), fam.Len())

	tc, err := trio.NewCase(fam)
	if err != nil {
		return fmt.Errorf("trioscope: %w", err)
	}

	set, err := tc.NewCompoundHetSet()
	if err != nil {
		return fmt.Errorf("trioscope: %w", err)
	}
	set.SetPairObserver(logger.CompoundHetPair)

	rd, err := gtio.Open(vcfPath)
	if err != nil {
		return fmt.Errorf("trioscope: %w", err)
	}
	defer rd.Close()

	count := 0
	for {
		v, err := rd.Next()
		if err != nil {
			return fmt.Errorf("trioscope: %w", err)
		}
		if v == nil {
			break
		}
		if err := set.AddVariant(v); err != nil {
			return fmt.Errorf("trioscope: %w", err)
		}
		count++
	}
	logger.LoadedGenotypes(vcfPath, count)

	final, err := set.FilterCompoundHets(includeDenovo)
	if err != nil {
		return fmt.Errorf("trioscope: %w", err)
	}

	keys := make([]string, 0, len(final))
	for k := range final {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := os.Stdout
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("trioscope: create output: %w", err)
		}
		defer f.Close()
		out = f
	}

	return rio.WriteCompoundHetKeys(out, keys)
}

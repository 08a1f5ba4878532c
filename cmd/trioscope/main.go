// Package main provides the trioscope command-line tool.
package main

import (
	"fmt"
	"os"

	"github.com/nimblegenomics/trioscope/internal/obs"
	"github.com/nimblegenomics/trioscope/internal/rconfig"
	"github.com/spf13/cobra"
)

// Version information (set at build time).
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "trioscope",
		Short:         "Trio-based inheritance-pattern classifier and compound-het resolver",
		Version:       fmt.Sprintf("%s (%s) built %s", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return rconfig.Init()
		},
	}

	cmd.AddCommand(newClassifyCmd())
	cmd.AddCommand(newCompoundHetCmd())
	cmd.AddCommand(newConfigCmd())

	return cmd
}

func newLogger() *obs.Logger {
	logger, err := obs.New()
	if err != nil {
		return obs.NewNop()
	}
	return logger
}

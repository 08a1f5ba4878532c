// Package rconfig exposes typed accessors over viper configuration keys
// for the engine's tunable thresholds, the same way cmd/vibe-vep/config.go
// reads and writes a viper-backed ~/.vibe-vep.yaml — here ~/.trioscope.yaml.
package rconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Viper keys for the engine tunables this package exposes.
const (
	KeyDenovoAltRatioThreshold = "denovo.parental_alt_ratio_threshold"
	KeyUPDMinGenotypeQuality   = "upd.min_genotype_quality"
	KeyUPDMinTotalDepth        = "upd.min_total_depth"
	KeyLowPenetranceGenesPath  = "genepanel.low_penetrance_path"
	KeyGenePanelDBPath         = "genepanel.db_path"
)

// Defaults mirror the named constants in internal/inheritance, so a
// fresh config file is consistent with the engine's built-in behavior
// until a user overrides a key.
const (
	DefaultDenovoAltRatioThreshold = 0.05
	DefaultUPDMinGenotypeQuality   = 20
	DefaultUPDMinTotalDepth        = 10
	DefaultGenePanelDBPath         = ""
)

// ConfigFilePath returns the default config file location,
// ~/.trioscope.yaml, or an error if the home directory can't be
// determined.
func ConfigFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".trioscope.yaml"), nil
}

// Init wires viper's defaults and config search path. Callers invoke
// this once at startup before reading any key.
func Init() error {
	viper.SetDefault(KeyDenovoAltRatioThreshold, DefaultDenovoAltRatioThreshold)
	viper.SetDefault(KeyUPDMinGenotypeQuality, DefaultUPDMinGenotypeQuality)
	viper.SetDefault(KeyUPDMinTotalDepth, DefaultUPDMinTotalDepth)
	viper.SetDefault(KeyGenePanelDBPath, DefaultGenePanelDBPath)

	home, err := os.UserHomeDir()
	if err == nil {
		viper.AddConfigPath(home)
	}
	viper.SetConfigName(".trioscope")
	viper.SetConfigType("yaml")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	return nil
}

// DenovoAltRatioThreshold returns the configured de novo parental
// alt-read-ratio rejection threshold.
func DenovoAltRatioThreshold() float64 {
	return viper.GetFloat64(KeyDenovoAltRatioThreshold)
}

// UPDMinGenotypeQuality returns the configured minimum parental
// genotype quality the uniparental isodisomy classifier
// (MatchesUniparentalIsodisomy) requires.
func UPDMinGenotypeQuality() int {
	return viper.GetInt(KeyUPDMinGenotypeQuality)
}

// UPDMinTotalDepth returns the configured minimum parental total read
// depth the uniparental isodisomy classifier
// (MatchesUniparentalIsodisomy) requires.
func UPDMinTotalDepth() int {
	return viper.GetInt(KeyUPDMinTotalDepth)
}

// LowPenetranceGenesPath returns the configured path to a YAML
// low-penetrance gene seed file, or "" if unset.
func LowPenetranceGenesPath() string {
	return viper.GetString(KeyLowPenetranceGenesPath)
}

// GenePanelDBPath returns the configured DuckDB file backing
// internal/genepanel, or "" for an in-memory database.
func GenePanelDBPath() string {
	return viper.GetString(KeyGenePanelDBPath)
}

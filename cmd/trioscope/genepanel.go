package main

import (
	"fmt"

	"github.com/nimblegenomics/trioscope/internal/genepanel"
	"github.com/nimblegenomics/trioscope/internal/inheritance"
	"github.com/nimblegenomics/trioscope/internal/rconfig"
)

// buildClassifierOptions assembles the inheritance.Option set from the
// resolved config: the de novo and UPD thresholds always apply, and the
// low-penetrance gene panel is loaded from genepanel.db_path/
// genepanel.low_penetrance_path only when a seed path is configured. The
// returned closer must be deferred by the caller; it is a no-op when no
// panel was opened.
func buildClassifierOptions() ([]inheritance.Option, func() error, error) {
	opts := []inheritance.Option{
		inheritance.WithDenovoAltRatioThreshold(rconfig.DenovoAltRatioThreshold()),
		inheritance.WithUPDMinGenotypeQuality(rconfig.UPDMinGenotypeQuality()),
		inheritance.WithUPDMinTotalDepth(rconfig.UPDMinTotalDepth()),
	}

	panelPath := rconfig.LowPenetranceGenesPath()
	if panelPath == "" {
		return opts, func() error { return nil }, nil
	}

	store, err := genepanel.Open(rconfig.GenePanelDBPath())
	if err != nil {
		return nil, nil, fmt.Errorf("trioscope: open gene panel: %w", err)
	}
	if err := genepanel.SeedStore(store, panelPath); err != nil {
		store.Close()
		return nil, nil, fmt.Errorf("trioscope: seed gene panel: %w", err)
	}
	genes, err := store.AsSet()
	if err != nil {
		store.Close()
		return nil, nil, fmt.Errorf("trioscope: load gene panel: %w", err)
	}

	opts = append(opts, inheritance.WithLowPenetranceGenes(genes))
	return opts, store.Close, nil
}

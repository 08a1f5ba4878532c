// Package obs wraps the zap structured logger shared across trioscope's
// packages, the way vibe-vep factors shared concerns into small internal
// packages (internal/cache, internal/output) rather than passing a raw
// *zap.Logger everywhere.
package obs

import "go.uber.org/zap"

// Logger is the shared structured logger handle. A nil *Logger is not
// valid; use New or NewNop to obtain one.
type Logger struct {
	z *zap.Logger
}

// New builds a production zap logger (JSON encoding, info level).
func New() (*Logger, error) {
	z, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return &Logger{z: z}, nil
}

// NewNop returns a Logger that discards everything, for tests and for
// callers that never configured logging.
func NewNop() *Logger {
	return &Logger{z: zap.NewNop()}
}

// Sync flushes any buffered log entries.
func (l *Logger) Sync() error {
	return l.z.Sync()
}

// ClassifierDecision logs a single classifier verdict at debug level:
// the variant key, the pattern name, and the boolean result.
func (l *Logger) ClassifierDecision(variantKey, pattern string, matched bool) {
	l.z.Debug("inheritance decision",
		zap.String("variant", variantKey),
		zap.String("pattern", pattern),
		zap.Bool("matched", matched),
	)
}

// CompoundHetPair logs a phase-2 pair evaluation outcome.
func (l *Logger) CompoundHetPair(gene, v1Key, v2Key string, genuine bool) {
	l.z.Info("compound-het pair evaluated",
		zap.String("gene", gene),
		zap.String("variant1", v1Key),
		zap.String("variant2", v2Key),
		zap.Bool("genuine", genuine),
	)
}

// LoadedPedigree logs a successful PED load.
func (l *Logger) LoadedPedigree(familyID string, memberCount int) {
	l.z.Info("loaded pedigree",
		zap.String("family", familyID),
		zap.Int("members", memberCount),
	)
}

// LoadedGenotypes logs a successful genotype file load.
func (l *Logger) LoadedGenotypes(path string, variantCount int) {
	l.z.Info("loaded genotypes",
		zap.String("path", path),
		zap.Int("variants", variantCount),
	)
}

package variant

// TranscriptAnnotation is a single transcript-level consequence call
// for a Variant: which gene it affects (named by either a "Feature" or
// "SYMBOL" source field, normalized here to Gene) and the predicted
// consequence term. The inheritance core only ever reads Gene (for
// compound-het gene grouping and the low-penetrance gene set); the
// consequence term is carried through for callers downstream of
// compound-het resolution that want to report it, but no classifier in
// this repository branches on it.
type TranscriptAnnotation struct {
	Gene        string
	FeatureID   string
	Consequence string
}

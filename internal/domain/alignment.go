package domain

// AlignedPair is one resolved sentence pair with its combined confidence.
type AlignedPair struct {
	Source int
	Target int
	Score  float64
}

// Alignment is the resolved one-to-one alignment of one bundle. Each
// source and target index appears at most once across Pairs; surplus
// indices are listed unmatched in ascending order. An empty Pairs slice
// is a valid outcome.
type Alignment struct {
	Pairs           []AlignedPair
	UnmatchedSource []int
	UnmatchedTarget []int
}

// Record is the per-document output of the pipeline. SourceSegs and
// TargetSegs map sentence indices back to corpus segment identifiers
// for the writer.
type Record struct {
	SourceID   string
	TargetID   string
	Alignment  Alignment
	SourceSegs []string
	TargetSegs []string
}

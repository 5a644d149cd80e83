package domain

import "errors"

var (
	// ErrUnknownScorer signals a scorer name not in the registry.
	ErrUnknownScorer = errors.New("unknown scorer")
	// ErrDuplicateScorer signals a scorer listed more than once.
	ErrDuplicateScorer = errors.New("duplicate scorer")
	// ErrMissingResource signals a configured scorer without its required resource.
	ErrMissingResource = errors.New("missing scorer resource")
	// ErrInvalidThreshold signals a threshold outside [0,1].
	ErrInvalidThreshold = errors.New("invalid threshold")
	// ErrInvalidWeight signals a non-positive or unassignable scorer weight.
	ErrInvalidWeight = errors.New("invalid scorer weight")

	// ErrEmptyBundle signals a document bundle with an empty sentence sequence.
	ErrEmptyBundle = errors.New("empty document bundle")
	// ErrVectorDimMismatch signals a vector whose dimension differs from its space.
	ErrVectorDimMismatch = errors.New("vector dimension mismatch")
	// ErrDuplicateToken signals a token seen twice while loading a resource.
	ErrDuplicateToken = errors.New("duplicate token")
	// ErrEmbeddingProviderError signals a remote embedding provider failure.
	ErrEmbeddingProviderError = errors.New("embedding provider error")
)

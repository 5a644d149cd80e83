package domain

// VectorSpace maps tokens to fixed-dimension embedding vectors. Source
// and target spaces are pre-aligned externally into the same geometric
// space. Immutable after loading; safe for concurrent reads.
type VectorSpace struct {
	dim  int
	vecs map[string][]float32
}

// NewVectorSpace creates an empty space of the given dimension.
func NewVectorSpace(dim int) *VectorSpace {
	return &VectorSpace{dim: dim, vecs: make(map[string][]float32)}
}

// Add registers a token vector. Rejects dimension mismatches and
// duplicate tokens.
func (s *VectorSpace) Add(token string, vec []float32) error {
	if len(vec) != s.dim {
		return ErrVectorDimMismatch
	}
	if _, ok := s.vecs[token]; ok {
		return ErrDuplicateToken
	}
	s.vecs[token] = vec
	return nil
}

// Lookup returns the vector for a token.
func (s *VectorSpace) Lookup(token string) ([]float32, bool) {
	v, ok := s.vecs[token]
	return v, ok
}

// Dim returns the vector dimension.
func (s *VectorSpace) Dim() int { return s.dim }

// Size returns the vocabulary size.
func (s *VectorSpace) Size() int { return len(s.vecs) }

// TranslationTable gives lexical generation probabilities in both
// directions, built from word-alignment training output. Immutable
// after loading; safe for concurrent reads.
type TranslationTable struct {
	fwd map[string]map[string]float64
	inv map[string]map[string]float64
}

// NewTranslationTable wraps forward (source token -> target token ->
// probability) and inverse tables. The inverse table may be empty.
func NewTranslationTable(fwd, inv map[string]map[string]float64) *TranslationTable {
	if fwd == nil {
		fwd = map[string]map[string]float64{}
	}
	if inv == nil {
		inv = map[string]map[string]float64{}
	}
	return &TranslationTable{fwd: fwd, inv: inv}
}

// Forward returns the generation distribution of a source token.
func (t *TranslationTable) Forward(src string) map[string]float64 { return t.fwd[src] }

// Inverse returns the generation distribution of a target token.
func (t *TranslationTable) Inverse(tgt string) map[string]float64 { return t.inv[tgt] }

// ForwardSize returns the number of source tokens with a distribution.
func (t *TranslationTable) ForwardSize() int { return len(t.fwd) }

// InverseSize returns the number of target tokens with a distribution.
func (t *TranslationTable) InverseSize() int { return len(t.inv) }

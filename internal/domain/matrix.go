package domain

// ScoreMatrix is a dense grid of pairwise candidate scores indexed by
// (source sentence index, target sentence index).
type ScoreMatrix struct {
	rows  int
	cols  int
	cells []float64
}

// NewScoreMatrix creates a zeroed rows x cols matrix.
func NewScoreMatrix(rows, cols int) *ScoreMatrix {
	return &ScoreMatrix{rows: rows, cols: cols, cells: make([]float64, rows*cols)}
}

// Rows returns the number of source sentences.
func (m *ScoreMatrix) Rows() int { return m.rows }

// Cols returns the number of target sentences.
func (m *ScoreMatrix) Cols() int { return m.cols }

// At returns the score at (i, j).
func (m *ScoreMatrix) At(i, j int) float64 { return m.cells[i*m.cols+j] }

// Set stores a score at (i, j).
func (m *ScoreMatrix) Set(i, j int, v float64) { m.cells[i*m.cols+j] = v }

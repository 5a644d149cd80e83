// Package resolve turns a combined confidence matrix into a discrete
// one-to-one alignment.
package resolve

import (
	"math"

	"github.com/bitext-tools/realign/internal/domain"
)

// Resolve masks every cell below threshold, then solves maximum-weight
// one-to-one assignment over the remaining cells and reports surplus
// indices as unmatched. A threshold of 0 disables filtering and leaves
// pure maximum-weight matching. An empty alignment is a valid outcome.
//
// The solver iterates rows and columns in ascending order, so equal-
// weight alternatives resolve to the lowest (source, target) pair and
// repeated runs produce identical output.
func Resolve(m *domain.ScoreMatrix, threshold float64) domain.Alignment {
	rows, cols := m.Rows(), m.Cols()
	n := rows
	if cols > n {
		n = cols
	}

	// Square cost matrix for minimization: kept cells cost 1-score,
	// masked and padding cells cost 1 (same as a zero-score match).
	cost := make([][]float64, n)
	for i := range cost {
		cost[i] = make([]float64, n)
		for j := range cost[i] {
			cost[i][j] = 1
		}
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if w := m.At(i, j); w >= threshold {
				cost[i][j] = 1 - w
			}
		}
	}

	rowToCol := assign(cost)

	aln := domain.Alignment{}
	matchedTgt := make([]bool, cols)
	for i := 0; i < rows; i++ {
		j := rowToCol[i]
		if j >= cols {
			aln.UnmatchedSource = append(aln.UnmatchedSource, i)
			continue
		}
		w := m.At(i, j)
		if w >= threshold && w > 0 {
			aln.Pairs = append(aln.Pairs, domain.AlignedPair{Source: i, Target: j, Score: w})
			matchedTgt[j] = true
		} else {
			aln.UnmatchedSource = append(aln.UnmatchedSource, i)
		}
	}
	for j := 0; j < cols; j++ {
		if !matchedTgt[j] {
			aln.UnmatchedTarget = append(aln.UnmatchedTarget, j)
		}
	}
	return aln
}

// assign solves minimum-cost perfect assignment on a square cost matrix
// by shortest augmenting paths with row/column potentials. O(n^3).
// Returns the assigned column per row.
func assign(cost [][]float64) []int {
	n := len(cost)
	u := make([]float64, n+1)
	v := make([]float64, n+1)
	p := make([]int, n+1) // p[j] = row currently assigned to column j, 1-based
	way := make([]int, n+1)

	for i := 1; i <= n; i++ {
		p[0] = i
		j0 := 0
		minv := make([]float64, n+1)
		used := make([]bool, n+1)
		for j := range minv {
			minv[j] = math.Inf(1)
		}
		for {
			used[j0] = true
			i0 := p[j0]
			delta := math.Inf(1)
			j1 := 0
			for j := 1; j <= n; j++ {
				if used[j] {
					continue
				}
				cur := cost[i0-1][j-1] - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}
			for j := 0; j <= n; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			if p[j0] == 0 {
				break
			}
		}
		for j0 != 0 {
			j1 := way[j0]
			p[j0] = p[j1]
			j0 = j1
		}
	}

	rowToCol := make([]int, n)
	for j := 1; j <= n; j++ {
		rowToCol[p[j]-1] = j - 1
	}
	return rowToCol
}

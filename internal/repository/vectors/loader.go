// Package vectors loads pre-aligned word embedding spaces from text
// vector files.
package vectors

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/bitext-tools/realign/internal/domain"
)

// maxLineBytes bounds one vector line; 300-dim float text fits easily.
const maxLineBytes = 1 << 20

// Load reads a fasttext/MUSE-style text vector file: a "count dim"
// header line, then one token followed by dim floats per line.
// maxVocab caps the vocabulary (0 means unlimited); tokens past the cap
// are ignored. Duplicate tokens and dimension drift are load errors.
func Load(path string, maxVocab int) (*domain.VectorSpace, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open vectors %s: %w", path, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), maxLineBytes)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("read vectors %s: %w", path, err)
		}
		return nil, fmt.Errorf("vectors %s: empty file", path)
	}
	header := strings.Fields(sc.Text())
	if len(header) != 2 {
		return nil, fmt.Errorf("vectors %s: malformed header %q", path, sc.Text())
	}
	dim, err := strconv.Atoi(header[1])
	if err != nil || dim <= 0 {
		return nil, fmt.Errorf("vectors %s: bad dimension %q", path, header[1])
	}

	space := domain.NewVectorSpace(dim)
	line := 1
	for sc.Scan() {
		line++
		if maxVocab > 0 && space.Size() >= maxVocab {
			break
		}
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != dim+1 {
			return nil, fmt.Errorf("vectors %s:%d: expected %d values, got %d", path, line, dim, len(fields)-1)
		}
		vec := make([]float32, dim)
		for i, fv := range fields[1:] {
			v, err := strconv.ParseFloat(fv, 32)
			if err != nil {
				return nil, fmt.Errorf("vectors %s:%d: %w", path, line, err)
			}
			vec[i] = float32(v)
		}
		if err := space.Add(fields[0], vec); err != nil {
			return nil, fmt.Errorf("vectors %s:%d: token %q: %w", path, line, fields[0], err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read vectors %s: %w", path, err)
	}
	if space.Size() == 0 {
		return nil, fmt.Errorf("vectors %s: no vectors loaded", path)
	}
	return space, nil
}

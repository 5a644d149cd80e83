// Package ttable loads lexical translation-probability tables produced
// by word-alignment training (GIZA t-table format).
package ttable

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/bitext-tools/realign/internal/domain"
)

// Paths names the table inputs. Inverse may be empty; the inverse
// direction is then unavailable and contributes no evidence.
type Paths struct {
	SourceVocab string
	TargetVocab string
	Forward     string
	Inverse     string
}

// Load reads the vocabularies and probability tables into an immutable
// TranslationTable queryable in both directions.
func Load(paths Paths) (*domain.TranslationTable, error) {
	srcVocab, err := loadVocab(paths.SourceVocab)
	if err != nil {
		return nil, err
	}
	tgtVocab, err := loadVocab(paths.TargetVocab)
	if err != nil {
		return nil, err
	}
	fwd, err := loadTable(paths.Forward, srcVocab, tgtVocab)
	if err != nil {
		return nil, err
	}
	var inv map[string]map[string]float64
	if paths.Inverse != "" {
		inv, err = loadTable(paths.Inverse, tgtVocab, srcVocab)
		if err != nil {
			return nil, err
		}
	}
	return domain.NewTranslationTable(fwd, inv), nil
}

// loadVocab reads "id token count" lines into an id-to-token map.
// Id 0 is reserved for the null token and implied.
func loadVocab(path string) (map[int]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open vocab %s: %w", path, err)
	}
	defer f.Close()

	vocab := map[int]string{0: ""}
	sc := bufio.NewScanner(f)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 3 {
			return nil, fmt.Errorf("vocab %s:%d: expected 3 fields, got %d", path, line, len(fields))
		}
		id, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("vocab %s:%d: %w", path, line, err)
		}
		if _, ok := vocab[id]; ok && id != 0 {
			return nil, fmt.Errorf("vocab %s:%d: id %d: %w", path, line, id, domain.ErrDuplicateToken)
		}
		vocab[id] = fields[1]
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read vocab %s: %w", path, err)
	}
	return vocab, nil
}

// loadTable reads "srcID tgtID prob" lines into token distributions.
func loadTable(path string, from, to map[int]string) (map[string]map[string]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open t-table %s: %w", path, err)
	}
	defer f.Close()

	table := make(map[string]map[string]float64)
	sc := bufio.NewScanner(f)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 3 {
			return nil, fmt.Errorf("t-table %s:%d: expected 3 fields, got %d", path, line, len(fields))
		}
		fromID, err1 := strconv.Atoi(fields[0])
		toID, err2 := strconv.Atoi(fields[1])
		prob, err3 := strconv.ParseFloat(fields[2], 64)
		if err1 != nil || err2 != nil || err3 != nil {
			return nil, fmt.Errorf("t-table %s:%d: malformed entry %q", path, line, text)
		}
		fromTok, ok := from[fromID]
		if !ok {
			return nil, fmt.Errorf("t-table %s:%d: unknown source id %d", path, line, fromID)
		}
		toTok, ok := to[toID]
		if !ok {
			return nil, fmt.Errorf("t-table %s:%d: unknown target id %d", path, line, toID)
		}
		if fromTok == "" || toTok == "" {
			continue // null-token alignments carry no lexical evidence
		}
		dist := table[fromTok]
		if dist == nil {
			dist = make(map[string]float64)
			table[fromTok] = dist
		}
		dist[toTok] = prob
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read t-table %s: %w", path, err)
	}
	return table, nil
}

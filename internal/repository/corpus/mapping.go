package corpus

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bitext-tools/realign/internal/domain"
)

type mappingFile struct {
	XMLName       xml.Name `xml:"alignments"`
	SourceID      string   `xml:"source_id,attr"`
	TranslationID string   `xml:"translation_id,attr"`
}

// ReadPairs collects the document pair mappings from an alignment
// directory (*.aln.xml files). Pairs are normalized so that the target
// language ends up on the translation side regardless of how the
// mapping file ordered the two ids, and returned in sorted order for
// reproducible runs.
func ReadPairs(alnDir, targetLang string) ([]domain.DocumentPair, error) {
	if targetLang == "" {
		targetLang = "eng"
	}
	paths, err := filepath.Glob(filepath.Join(alnDir, "*.aln.xml"))
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", alnDir, err)
	}
	pairs := make([]domain.DocumentPair, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read mapping %s: %w", path, err)
		}
		var m mappingFile
		if err := xml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("parse mapping %s: %w", path, err)
		}
		src, tgt := m.SourceID, m.TranslationID
		if strings.HasPrefix(strings.ToLower(src), targetLang) {
			src, tgt = tgt, src
		}
		pairs = append(pairs, domain.DocumentPair{SourceID: src, TargetID: tgt})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].SourceID < pairs[j].SourceID })
	return pairs, nil
}

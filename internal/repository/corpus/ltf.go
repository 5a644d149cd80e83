// Package corpus reads LTF document bundles and writes alignment
// records in the dataset's XML formats.
package corpus

import (
	"encoding/xml"
	"fmt"
	"os"
	"strings"

	"github.com/bitext-tools/realign/internal/domain"
)

type ltfFile struct {
	XMLName xml.Name `xml:"LCTL_TEXT"`
	Docs    []ltfDoc `xml:"DOC"`
}

type ltfDoc struct {
	ID   string   `xml:"id,attr"`
	Lang string   `xml:"lang,attr"`
	Segs []ltfSeg `xml:"TEXT>SEG"`
}

type ltfSeg struct {
	ID     string   `xml:"id,attr"`
	Tokens []string `xml:"TOKEN"`
}

// ReadDocument parses a single-document LTF file into its ordered
// sentence sequence. Sentence text is the space-joined token stream.
func ReadDocument(path string) (docID string, sentences []domain.Sentence, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("read ltf %s: %w", path, err)
	}
	var file ltfFile
	if err := xml.Unmarshal(data, &file); err != nil {
		return "", nil, fmt.Errorf("parse ltf %s: %w", path, err)
	}
	if len(file.Docs) != 1 {
		return "", nil, fmt.Errorf("ltf %s: expected one DOC, got %d", path, len(file.Docs))
	}
	doc := file.Docs[0]
	sentences = make([]domain.Sentence, 0, len(doc.Segs))
	for i, seg := range doc.Segs {
		tokens := make([]string, 0, len(seg.Tokens))
		for _, t := range seg.Tokens {
			t = strings.TrimSpace(t)
			if t != "" {
				tokens = append(tokens, t)
			}
		}
		sentences = append(sentences, domain.Sentence{
			Index:  i,
			ID:     seg.ID,
			Text:   strings.Join(tokens, " "),
			Tokens: tokens,
		})
	}
	return doc.ID, sentences, nil
}

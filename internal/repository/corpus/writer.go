package corpus

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitext-tools/realign/internal/domain"
)

type alignmentsXML struct {
	XMLName       xml.Name       `xml:"alignments"`
	SourceID      string         `xml:"source_id,attr"`
	TranslationID string         `xml:"translation_id,attr"`
	Alignments    []alignmentXML `xml:"alignment"`
}

type alignmentXML struct {
	Score       string     `xml:"score,attr"`
	Source      segmentRef `xml:"source"`
	Translation segmentRef `xml:"translation"`
}

type segmentRef struct {
	Segments string `xml:"segments,attr"`
}

// Writer persists one alignment file per processed document under the
// output directory.
type Writer struct {
	outDir string
}

// NewWriter creates a writer; the directory is created on demand.
func NewWriter(outDir string) *Writer {
	return &Writer{outDir: outDir}
}

// Path returns the output file for a source document identifier.
func (w *Writer) Path(sourceID string) string {
	return filepath.Join(w.outDir, sourceID+".aln.xml")
}

// Exists reports whether the output for a source document is already
// present, for skip-existing runs.
func (w *Writer) Exists(sourceID string) bool {
	_, err := os.Stat(w.Path(sourceID))
	return err == nil
}

// Write serializes one record. Unmatched indices are not persisted in
// the alignment file; they surface in the run summary.
func (w *Writer) Write(rec domain.Record) error {
	if err := os.MkdirAll(w.outDir, 0o755); err != nil {
		return fmt.Errorf("ensure out dir %s: %w", w.outDir, err)
	}
	doc := alignmentsXML{
		SourceID:      rec.SourceID,
		TranslationID: rec.TargetID,
		Alignments:    make([]alignmentXML, 0, len(rec.Alignment.Pairs)),
	}
	for _, p := range rec.Alignment.Pairs {
		doc.Alignments = append(doc.Alignments, alignmentXML{
			Score:       fmt.Sprintf("%.4f", p.Score),
			Source:      segmentRef{Segments: rec.SourceSegs[p.Source]},
			Translation: segmentRef{Segments: rec.TargetSegs[p.Target]},
		})
	}
	data, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal alignment %s: %w", rec.SourceID, err)
	}
	data = append([]byte(xml.Header), data...)
	data = append(data, '\n')
	if err := os.WriteFile(w.Path(rec.SourceID), data, 0o644); err != nil {
		return fmt.Errorf("write alignment %s: %w", rec.SourceID, err)
	}
	return nil
}

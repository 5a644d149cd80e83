package corpus

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitext-tools/realign/internal/domain"
)

// Store resolves and loads document bundles from the dataset's "found"
// directory layout: <found>/<lang>/ltf/<docID>.ltf.xml, where the
// language code is the docID prefix before the first underscore.
type Store struct {
	foundDir   string
	targetLang string
}

// NewStore creates a bundle store over a found directory. targetLang is
// the target-language code ("eng" when empty).
func NewStore(foundDir, targetLang string) *Store {
	if targetLang == "" {
		targetLang = "eng"
	}
	return &Store{foundDir: foundDir, targetLang: targetLang}
}

// VerifyLayout checks the found-directory layout before a run starts:
// the target language LTF directory must exist, and so must the source
// language one when a source language is configured. Runs without a
// configured source language discover it per document from the pair
// ids instead.
func (s *Store) VerifyLayout(sourceLang string) error {
	langs := []string{s.targetLang}
	if sourceLang != "" {
		langs = append(langs, strings.ToLower(sourceLang))
	}
	for _, lang := range langs {
		dir := filepath.Join(s.foundDir, lang, "ltf")
		info, err := os.Stat(dir)
		if err != nil {
			return fmt.Errorf("found dir layout: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("found dir layout: %s is not a directory", dir)
		}
	}
	return nil
}

// DocPath returns the LTF file path for a document identifier.
func (s *Store) DocPath(docID string) string {
	lang := strings.ToLower(docID)
	if i := strings.IndexByte(lang, '_'); i > 0 {
		lang = lang[:i]
	}
	return filepath.Join(s.foundDir, lang, "ltf", docID+".ltf.xml")
}

// Load reads both sides of a document pair into a bundle. Per-document
// failures are bundle-processing errors: the caller skips the bundle
// and continues the run.
func (s *Store) Load(_ context.Context, pair domain.DocumentPair) (domain.DocumentBundle, error) {
	srcDoc, srcSents, err := ReadDocument(s.DocPath(pair.SourceID))
	if err != nil {
		return domain.DocumentBundle{}, err
	}
	tgtDoc, tgtSents, err := ReadDocument(s.DocPath(pair.TargetID))
	if err != nil {
		return domain.DocumentBundle{}, err
	}
	if srcDoc != pair.SourceID || tgtDoc != pair.TargetID {
		return domain.DocumentBundle{}, fmt.Errorf(
			"document id mismatch: want %s x %s, got %s x %s", pair.SourceID, pair.TargetID, srcDoc, tgtDoc)
	}
	b := domain.DocumentBundle{
		SourceID: pair.SourceID,
		TargetID: pair.TargetID,
		Source:   srcSents,
		Target:   tgtSents,
	}
	return b, b.Validate()
}

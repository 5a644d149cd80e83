// Package realign orchestrates the per-bundle alignment pipeline and
// the worker pool that fans it out across document bundles.
package realign

import (
	"context"

	"github.com/bitext-tools/realign/internal/domain"
)

// BundleSource loads document bundles by pair identifier.
type BundleSource interface {
	Load(ctx context.Context, pair domain.DocumentPair) (domain.DocumentBundle, error)
}

// RecordWriter persists output records and answers skip-existing checks.
type RecordWriter interface {
	Write(rec domain.Record) error
	Exists(sourceID string) bool
}

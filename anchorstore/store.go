// Package anchorstore defines the persistence boundary for baseline
// anchors. It is a collaborator interface the detection core depends on
// only through this package, never through a concrete adapter: on-disk
// anchor stores, indexing and caching are performance scaffolding around
// the drift algorithms, not part of them.
package anchorstore

import (
	"context"
	"errors"

	"driftwatch/domain/core"
	"driftwatch/domain/drift"
)

// ErrNotFound is returned by Get when no anchor exists for the given ID.
var ErrNotFound = errors.New("anchorstore: anchor not found")

// Store persists and retrieves Anchor records by their AnchorID (spec §6
// "Structured Anchor record"). Implementations must treat Put as an
// upsert: anchors are appended-to via drift.Anchor.WithLastSeen, never
// mutated in place by the caller, so a later Put for the same AnchorID
// always represents a newer observation.
type Store interface {
	Get(ctx context.Context, id core.AnchorID) (drift.Anchor, error)
	Put(ctx context.Context, anchor drift.Anchor) error
	Delete(ctx context.Context, id core.AnchorID) error
	ListByDataset(ctx context.Context, dataset string) ([]drift.Anchor, error)
}

// Package postgres is a reference anchorstore.Store adapter backed by
// PostgreSQL, in the teacher's repository style: a thin struct wrapping
// *sqlx.DB, one SQL statement per method, no query builder.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"driftwatch/anchorstore"
	"driftwatch/domain/core"
	"driftwatch/domain/drift"
	"driftwatch/fingerprint"
)

// Store implements anchorstore.Store against a Postgres anchors table.
type Store struct {
	db *sqlx.DB
}

// New wraps an existing *sqlx.DB connection.
func New(db *sqlx.DB) anchorstore.Store {
	return &Store{db: db}
}

// Open connects to Postgres and wraps the resulting *sqlx.DB.
func Open(dsn string) (anchorstore.Store, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("anchorstore/postgres: connect: %w", err)
	}
	return &Store{db: db}, nil
}

type anchorRow struct {
	AnchorID    string       `db:"anchor_id"`
	Dataset     string       `db:"dataset"`
	ColumnName  string       `db:"column_name"`
	Fingerprint string       `db:"fingerprint"`
	FirstSeen   sql.NullTime `db:"first_seen"`
	LastSeen    sql.NullTime `db:"last_seen"`
	Confidence  *float64     `db:"confidence"`
}

func (s *Store) Get(ctx context.Context, id core.AnchorID) (drift.Anchor, error) {
	var row anchorRow
	err := s.db.GetContext(ctx, &row, `
		SELECT anchor_id, dataset, column_name, fingerprint, first_seen, last_seen, confidence
		FROM drift_anchors
		WHERE anchor_id = $1
	`, id.String())
	if err == sql.ErrNoRows {
		return drift.Anchor{}, anchorstore.ErrNotFound
	}
	if err != nil {
		return drift.Anchor{}, fmt.Errorf("anchorstore/postgres: get %s: %w", id, err)
	}
	return rowToAnchor(row)
}

func (s *Store) Put(ctx context.Context, anchor drift.Anchor) error {
	if anchor.AnchorID == "" {
		anchor.AnchorID = core.NewAnchorID()
	}
	serialized := fingerprint.Serialize(anchor.Fingerprint)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO drift_anchors (anchor_id, dataset, column_name, fingerprint, first_seen, last_seen, confidence)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (anchor_id) DO UPDATE SET
			fingerprint = EXCLUDED.fingerprint,
			last_seen = EXCLUDED.last_seen,
			confidence = EXCLUDED.confidence
	`, anchor.AnchorID.String(), anchor.Dataset, anchor.ColumnName, serialized,
		anchor.FirstSeen.Time(), anchor.LastSeen.Time(), anchor.Confidence)
	if err != nil {
		return fmt.Errorf("anchorstore/postgres: put %s: %w", anchor.AnchorID, err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, id core.AnchorID) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM drift_anchors WHERE anchor_id = $1`, id.String())
	if err != nil {
		return fmt.Errorf("anchorstore/postgres: delete %s: %w", id, err)
	}
	return nil
}

func (s *Store) ListByDataset(ctx context.Context, dataset string) ([]drift.Anchor, error) {
	var rows []anchorRow
	err := s.db.SelectContext(ctx, &rows, `
		SELECT anchor_id, dataset, column_name, fingerprint, first_seen, last_seen, confidence
		FROM drift_anchors
		WHERE dataset = $1
		ORDER BY column_name ASC
	`, dataset)
	if err != nil {
		return nil, fmt.Errorf("anchorstore/postgres: list %s: %w", dataset, err)
	}

	anchors := make([]drift.Anchor, 0, len(rows))
	for _, row := range rows {
		anchor, err := rowToAnchor(row)
		if err != nil {
			return nil, err
		}
		anchors = append(anchors, anchor)
	}
	return anchors, nil
}

func rowToAnchor(row anchorRow) (drift.Anchor, error) {
	fp, err := fingerprint.Deserialize(row.Fingerprint)
	if err != nil {
		return drift.Anchor{}, fmt.Errorf("anchorstore/postgres: decode fingerprint for %s: %w", row.AnchorID, err)
	}

	if _, err := uuid.Parse(row.AnchorID); err != nil {
		return drift.Anchor{}, fmt.Errorf("anchorstore/postgres: malformed anchor id %q: %w", row.AnchorID, err)
	}

	return drift.Anchor{
		AnchorID:    core.AnchorID(row.AnchorID),
		Dataset:     row.Dataset,
		ColumnName:  row.ColumnName,
		Fingerprint: fp,
		FirstSeen:   core.NewTimestamp(row.FirstSeen.Time),
		LastSeen:    core.NewTimestamp(row.LastSeen.Time),
		Confidence:  row.Confidence,
	}, nil
}

// Schema is the DDL a caller runs once to create the anchors table this
// adapter expects. It is exposed as a constant rather than a migration
// file since the teacher repo's migration tooling is out of scope here.
const Schema = `
CREATE TABLE IF NOT EXISTS drift_anchors (
	anchor_id    UUID PRIMARY KEY,
	dataset      TEXT NOT NULL,
	column_name  TEXT NOT NULL,
	fingerprint  TEXT NOT NULL,
	first_seen   TIMESTAMPTZ NOT NULL,
	last_seen    TIMESTAMPTZ NOT NULL,
	confidence   DOUBLE PRECISION,
	UNIQUE (dataset, column_name)
);
`

package postgres

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/bunpou/bunpou/store"
)

func (d *DB) GetProgress(ctx context.Context, visitorID string) (*store.ProgressLedger, error) {
	var payload string
	err := d.db.QueryRowContext(ctx,
		"SELECT ledger FROM progress WHERE visitor_id = $1", visitorID,
	).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to query progress")
	}

	ledger := &store.ProgressLedger{}
	if err := json.Unmarshal([]byte(payload), ledger); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal ledger for %s", visitorID)
	}
	ledger.VisitorID = visitorID
	return ledger, nil
}

func (d *DB) UpsertProgress(ctx context.Context, upsert *store.ProgressLedger) (*store.ProgressLedger, error) {
	payload, err := json.Marshal(upsert)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal ledger")
	}

	stmt := `INSERT INTO progress (visitor_id, ledger)
		VALUES ($1, $2)
		ON CONFLICT (visitor_id) DO UPDATE SET
			ledger = EXCLUDED.ledger,
			updated_ts = EXTRACT(EPOCH FROM NOW())`
	if _, err := d.db.ExecContext(ctx, stmt, upsert.VisitorID, string(payload)); err != nil {
		return nil, errors.Wrap(err, "failed to upsert progress")
	}

	return upsert, nil
}

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/simaogato/unitflow-backend/internal/domain"
)

// rateRepository implements domain.RateRepository
type rateRepository struct {
	db *DB
}

// NewRateRepository creates a new currency rate snapshot repository
func NewRateRepository(db *DB) domain.RateRepository {
	return &rateRepository{db: db}
}

// Save stores a snapshot and all of its rates in a database transaction
func (r *rateRepository) Save(ctx context.Context, snapshot *domain.RateSnapshot) error {
	dbTx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer dbTx.Rollback()

	// Insert the snapshot header
	insertSnapshotQuery := `
		INSERT INTO rate_snapshots (id, base, fetched_at)
		VALUES ($1, $2, $3)
	`

	_, err = dbTx.ExecContext(ctx, insertSnapshotQuery,
		snapshot.ID,
		snapshot.Base,
		snapshot.FetchedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert rate snapshot: %w", err)
	}

	// Bulk load the entries
	stmt, err := dbTx.PrepareContext(ctx, pq.CopyIn("rate_snapshot_entries", "snapshot_id", "currency_code", "rate"))
	if err != nil {
		return fmt.Errorf("failed to prepare rate entries copy: %w", err)
	}
	defer stmt.Close()

	for code, rate := range snapshot.Rates {
		if _, err := stmt.ExecContext(ctx, snapshot.ID.String(), code, rate.String()); err != nil {
			return fmt.Errorf("failed to copy rate for %s: %w", code, err)
		}
	}
	if _, err := stmt.ExecContext(ctx); err != nil {
		return fmt.Errorf("failed to flush rate entries: %w", err)
	}

	// Commit the transaction
	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetLatest retrieves the most recently fetched snapshot
func (r *rateRepository) GetLatest(ctx context.Context) (*domain.RateSnapshot, error) {
	query := `
		SELECT id, base, fetched_at
		FROM rate_snapshots
		ORDER BY fetched_at DESC
		LIMIT 1
	`

	var snapshot domain.RateSnapshot
	err := r.db.QueryRowContext(ctx, query).Scan(
		&snapshot.ID,
		&snapshot.Base,
		&snapshot.FetchedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("no rate snapshot saved: %w", domain.ErrRatesUnavailable)
		}
		return nil, fmt.Errorf("failed to get latest rate snapshot: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT currency_code, rate
		FROM rate_snapshot_entries
		WHERE snapshot_id = $1
	`, snapshot.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get rate entries: %w", err)
	}
	defer rows.Close()

	snapshot.Rates = make(map[string]decimal.Decimal)
	for rows.Next() {
		var code, rateStr string
		if err := rows.Scan(&code, &rateStr); err != nil {
			return nil, fmt.Errorf("failed to scan rate entry: %w", err)
		}

		// Parse rate (NUMERIC)
		rate, err := decimal.NewFromString(rateStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse rate for %s: %w", code, err)
		}
		snapshot.Rates[code] = rate
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rate entries: %w", err)
	}

	return &snapshot, nil
}

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/simaogato/unitflow-backend/internal/domain"
)

// uniqueViolation is the PostgreSQL error code for a unique constraint violation
const uniqueViolation = pq.ErrorCode("23505")

// favoriteRepository implements domain.FavoriteRepository
type favoriteRepository struct {
	db *DB
}

// NewFavoriteRepository creates a new favorite conversion repository
func NewFavoriteRepository(db *DB) domain.FavoriteRepository {
	return &favoriteRepository{db: db}
}

// Create creates a new favorite conversion
func (r *favoriteRepository) Create(ctx context.Context, favorite *domain.FavoriteConversion) error {
	query := `
		INSERT INTO favorite_conversions (id, category_id, from_unit, to_unit, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.ExecContext(ctx, query,
		favorite.ID,
		string(favorite.CategoryID),
		favorite.FromUnit,
		favorite.ToUnit,
		favorite.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return fmt.Errorf("%w: %s %s -> %s", domain.ErrFavoriteExists, favorite.CategoryID, favorite.FromUnit, favorite.ToUnit)
		}
		return fmt.Errorf("failed to insert favorite conversion: %w", err)
	}

	return nil
}

// GetByID retrieves a favorite conversion by its ID
func (r *favoriteRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.FavoriteConversion, error) {
	query := `
		SELECT id, category_id, from_unit, to_unit, created_at
		FROM favorite_conversions
		WHERE id = $1
	`

	favorite, err := scanFavorite(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrFavoriteNotFound, id)
		}
		return nil, fmt.Errorf("failed to get favorite conversion by ID: %w", err)
	}

	return favorite, nil
}

// Find retrieves the favorite matching the triple, or nil if there is none
func (r *favoriteRepository) Find(ctx context.Context, categoryID domain.CategoryID, fromUnit, toUnit string) (*domain.FavoriteConversion, error) {
	query := `
		SELECT id, category_id, from_unit, to_unit, created_at
		FROM favorite_conversions
		WHERE category_id = $1 AND from_unit = $2 AND to_unit = $3
	`

	favorite, err := scanFavorite(r.db.QueryRowContext(ctx, query, string(categoryID), fromUnit, toUnit))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find favorite conversion: %w", err)
	}

	return favorite, nil
}

// List retrieves favorites ordered by creation time
// If categoryID is empty, returns all favorites
func (r *favoriteRepository) List(ctx context.Context, categoryID domain.CategoryID) ([]*domain.FavoriteConversion, error) {
	var query string
	var args []interface{}

	if categoryID == "" {
		query = `
			SELECT id, category_id, from_unit, to_unit, created_at
			FROM favorite_conversions
			ORDER BY created_at, id
		`
	} else {
		query = `
			SELECT id, category_id, from_unit, to_unit, created_at
			FROM favorite_conversions
			WHERE category_id = $1
			ORDER BY created_at, id
		`
		args = append(args, string(categoryID))
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorite conversions: %w", err)
	}
	defer rows.Close()

	var favorites []*domain.FavoriteConversion
	for rows.Next() {
		favorite, err := scanFavorite(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan favorite conversion: %w", err)
		}
		favorites = append(favorites, favorite)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating favorite conversions: %w", err)
	}

	return favorites, nil
}

// Delete removes a favorite conversion
func (r *favoriteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM favorite_conversions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete favorite conversion: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", domain.ErrFavoriteNotFound, id)
	}

	return nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanFavorite(row rowScanner) (*domain.FavoriteConversion, error) {
	var favorite domain.FavoriteConversion
	var categoryID string

	if err := row.Scan(
		&favorite.ID,
		&categoryID,
		&favorite.FromUnit,
		&favorite.ToUnit,
		&favorite.CreatedAt,
	); err != nil {
		return nil, err
	}
	favorite.CategoryID = domain.CategoryID(categoryID)

	return &favorite, nil
}

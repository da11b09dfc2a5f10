package domain

import (
	"context"

	"github.com/google/uuid"
)

// FavoriteRepository defines the interface for favorite conversion persistence operations
type FavoriteRepository interface {
	// Create creates a new favorite conversion
	Create(ctx context.Context, favorite *FavoriteConversion) error

	// GetByID retrieves a favorite conversion by its ID
	// Returns ErrFavoriteNotFound (wrapped) if it does not exist
	GetByID(ctx context.Context, id uuid.UUID) (*FavoriteConversion, error)

	// Find retrieves the favorite matching the triple, or nil if there is none
	Find(ctx context.Context, categoryID CategoryID, fromUnit, toUnit string) (*FavoriteConversion, error)

	// List retrieves favorites ordered by creation time
	// If categoryID is empty, returns all favorites
	List(ctx context.Context, categoryID CategoryID) ([]*FavoriteConversion, error)

	// Delete removes a favorite conversion
	// Returns ErrFavoriteNotFound (wrapped) if it does not exist
	Delete(ctx context.Context, id uuid.UUID) error
}

// RateRepository defines the interface for currency rate snapshot persistence operations
type RateRepository interface {
	// Save stores a snapshot and all of its rates
	Save(ctx context.Context, snapshot *RateSnapshot) error

	// GetLatest retrieves the most recently fetched snapshot
	// Returns ErrRatesUnavailable (wrapped) if nothing has been saved yet
	GetLatest(ctx context.Context) (*RateSnapshot, error)
}

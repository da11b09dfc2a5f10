package favorite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/simaogato/unitflow-backend/internal/domain"
)

// UnitResolver resolves unit identifiers to their canonical units
type UnitResolver interface {
	Category(id domain.CategoryID) (domain.Category, error)
	ResolveUnit(categoryID domain.CategoryID, identifier string) (domain.Unit, error)
}

// AddFavoriteInput represents the input for saving a favorite conversion
type AddFavoriteInput struct {
	CategoryID domain.CategoryID
	FromUnit   string
	ToUnit     string
}

// FavoriteService handles favorite conversion operations
type FavoriteService struct {
	FavoriteRepo domain.FavoriteRepository
	Units        UnitResolver
}

// NewFavoriteService creates a new FavoriteService instance
func NewFavoriteService(favoriteRepo domain.FavoriteRepository, units UnitResolver) *FavoriteService {
	return &FavoriteService{
		FavoriteRepo: favoriteRepo,
		Units:        units,
	}
}

// Add saves a favorite conversion
// Logic:
//  1. Resolve both units strictly; unknown categories or units are rejected
//  2. Store the canonical unit IDs so "MILE" and "mile" are the same favorite
//  3. Reject the triple if it is already saved
func (s *FavoriteService) Add(ctx context.Context, input AddFavoriteInput) (*domain.FavoriteConversion, error) {
	from, err := s.Units.ResolveUnit(input.CategoryID, input.FromUnit)
	if err != nil {
		return nil, err
	}
	to, err := s.Units.ResolveUnit(input.CategoryID, input.ToUnit)
	if err != nil {
		return nil, err
	}

	existing, err := s.FavoriteRepo.Find(ctx, input.CategoryID, from.ID, to.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: %s %s -> %s", domain.ErrFavoriteExists, input.CategoryID, from.ID, to.ID)
	}

	favorite := &domain.FavoriteConversion{
		ID:         uuid.New(),
		CategoryID: input.CategoryID,
		FromUnit:   from.ID,
		ToUnit:     to.ID,
		CreatedAt:  time.Now(),
	}
	if err := favorite.Validate(); err != nil {
		return nil, err
	}

	if err := s.FavoriteRepo.Create(ctx, favorite); err != nil {
		return nil, err
	}

	return favorite, nil
}

// List returns saved favorites, optionally limited to one category
func (s *FavoriteService) List(ctx context.Context, categoryID domain.CategoryID) ([]*domain.FavoriteConversion, error) {
	if categoryID != "" {
		if _, err := s.Units.Category(categoryID); err != nil {
			return nil, err
		}
	}
	return s.FavoriteRepo.List(ctx, categoryID)
}

// Remove deletes a favorite conversion
func (s *FavoriteService) Remove(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return fmt.Errorf("%w: empty ID", domain.ErrFavoriteNotFound)
	}
	return s.FavoriteRepo.Delete(ctx, id)
}

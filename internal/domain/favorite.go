package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// FavoriteConversion is a saved (category, from-unit, to-unit) triple
// Unit identifiers are stored in their canonical form
type FavoriteConversion struct {
	ID         uuid.UUID
	CategoryID CategoryID
	FromUnit   string
	ToUnit     string
	CreatedAt  time.Time
}

// Validate ensures the favorite adheres to domain rules
func (f *FavoriteConversion) Validate() error {
	if f.ID == uuid.Nil {
		return errors.New("favorite conversion must have an ID")
	}
	if f.CategoryID == "" {
		return errors.New("favorite conversion must have a category")
	}
	if f.FromUnit == "" || f.ToUnit == "" {
		return errors.New("favorite conversion must have both units")
	}
	return nil
}

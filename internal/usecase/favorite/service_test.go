package favorite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/simaogato/unitflow-backend/internal/domain"
	"github.com/simaogato/unitflow-backend/internal/usecase/converter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockFavoriteRepository is a mock implementation of FavoriteRepository for testing
type MockFavoriteRepository struct {
	mock.Mock
}

func (m *MockFavoriteRepository) Create(ctx context.Context, favorite *domain.FavoriteConversion) error {
	args := m.Called(ctx, favorite)
	return args.Error(0)
}

func (m *MockFavoriteRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.FavoriteConversion, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FavoriteConversion), args.Error(1)
}

func (m *MockFavoriteRepository) Find(ctx context.Context, categoryID domain.CategoryID, fromUnit, toUnit string) (*domain.FavoriteConversion, error) {
	args := m.Called(ctx, categoryID, fromUnit, toUnit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FavoriteConversion), args.Error(1)
}

func (m *MockFavoriteRepository) List(ctx context.Context, categoryID domain.CategoryID) ([]*domain.FavoriteConversion, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.FavoriteConversion), args.Error(1)
}

func (m *MockFavoriteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTestService(repo domain.FavoriteRepository) *FavoriteService {
	return NewFavoriteService(repo, converter.NewRegistry(nil))
}

func TestAdd_StoresCanonicalUnits(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockFavoriteRepository)
	service := newTestService(mockRepo)

	mockRepo.On("Find", ctx, converter.CategoryLength, "mile", "kilometer").Return(nil, nil)
	mockRepo.On("Create", ctx, mock.MatchedBy(func(f *domain.FavoriteConversion) bool {
		return f.ID != uuid.Nil && f.FromUnit == "mile" && f.ToUnit == "kilometer" && !f.CreatedAt.IsZero()
	})).Return(nil)

	favorite, err := service.Add(ctx, AddFavoriteInput{
		CategoryID: converter.CategoryLength,
		FromUnit:   "MILE",
		ToUnit:     "Kilometer",
	})

	require.NoError(t, err)
	assert.Equal(t, converter.CategoryLength, favorite.CategoryID)
	assert.Equal(t, "mile", favorite.FromUnit)
	assert.Equal(t, "kilometer", favorite.ToUnit)
	mockRepo.AssertExpectations(t)
}

func TestAdd_RejectsUnknownIdentifiers(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		input   AddFavoriteInput
		wantErr error
	}{
		{
			name:    "Unknown category",
			input:   AddFavoriteInput{CategoryID: "warp-speed", FromUnit: "c", ToUnit: "kph"},
			wantErr: domain.ErrCategoryNotFound,
		},
		{
			name:    "Unknown from unit",
			input:   AddFavoriteInput{CategoryID: converter.CategoryTemperature, FromUnit: "gas mark", ToUnit: "celsius"},
			wantErr: domain.ErrUnitNotFound,
		},
		{
			name:    "Unknown to unit",
			input:   AddFavoriteInput{CategoryID: converter.CategoryPower, FromUnit: "W", ToUnit: "mw"},
			wantErr: domain.ErrUnitNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockFavoriteRepository)
			service := newTestService(mockRepo)

			favorite, err := service.Add(ctx, tt.input)

			assert.Nil(t, favorite)
			assert.ErrorIs(t, err, tt.wantErr)
			mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestAdd_RejectsDuplicate(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockFavoriteRepository)
	service := newTestService(mockRepo)

	existing := &domain.FavoriteConversion{
		ID:         uuid.New(),
		CategoryID: converter.CategoryTemperature,
		FromUnit:   "celsius",
		ToUnit:     "fahrenheit",
		CreatedAt:  time.Now(),
	}
	mockRepo.On("Find", ctx, converter.CategoryTemperature, "celsius", "fahrenheit").Return(existing, nil)

	favorite, err := service.Add(ctx, AddFavoriteInput{
		CategoryID: converter.CategoryTemperature,
		FromUnit:   "°C",
		ToUnit:     "F",
	})

	assert.Nil(t, favorite)
	assert.ErrorIs(t, err, domain.ErrFavoriteExists)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAdd_RepositoryError(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockFavoriteRepository)
	service := newTestService(mockRepo)

	mockRepo.On("Find", ctx, converter.CategoryMass, "pound", "kilogram").Return(nil, nil)
	mockRepo.On("Create", ctx, mock.Anything).Return(errors.New("connection reset"))

	_, err := service.Add(ctx, AddFavoriteInput{CategoryID: converter.CategoryMass, FromUnit: "pound", ToUnit: "kilogram"})

	assert.EqualError(t, err, "connection reset")
}

func TestList(t *testing.T) {
	ctx := context.Background()

	t.Run("All categories", func(t *testing.T) {
		mockRepo := new(MockFavoriteRepository)
		service := newTestService(mockRepo)
		favorites := []*domain.FavoriteConversion{{ID: uuid.New(), CategoryID: converter.CategoryLength, FromUnit: "mile", ToUnit: "meter"}}
		mockRepo.On("List", ctx, domain.CategoryID("")).Return(favorites, nil)

		result, err := service.List(ctx, "")

		require.NoError(t, err)
		assert.Equal(t, favorites, result)
	})

	t.Run("Unknown category", func(t *testing.T) {
		mockRepo := new(MockFavoriteRepository)
		service := newTestService(mockRepo)

		_, err := service.List(ctx, "warp-speed")

		assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
		mockRepo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	})
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockFavoriteRepository)
	service := newTestService(mockRepo)

	id := uuid.New()
	missing := uuid.New()
	mockRepo.On("Delete", ctx, id).Return(nil)
	mockRepo.On("Delete", ctx, missing).Return(domain.ErrFavoriteNotFound)

	assert.NoError(t, service.Remove(ctx, id))
	assert.ErrorIs(t, service.Remove(ctx, missing), domain.ErrFavoriteNotFound)
	assert.ErrorIs(t, service.Remove(ctx, uuid.Nil), domain.ErrFavoriteNotFound)
	mockRepo.AssertExpectations(t)
}

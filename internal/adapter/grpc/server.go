package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/simaogato/unitflow-backend/internal/domain"
	"github.com/simaogato/unitflow-backend/internal/usecase/converter"
	"github.com/simaogato/unitflow-backend/internal/usecase/favorite"
	"github.com/simaogato/unitflow-backend/internal/usecase/rates"
)

// Server implements the ConverterService gRPC server
type Server struct {
	Registry        *converter.Registry
	FavoriteService *favorite.FavoriteService // optional, requires a database
	RateService     *rates.RateService
}

var _ ConverterServiceServer = (*Server)(nil)

// NewServer creates a new gRPC server instance
func NewServer(
	registry *converter.Registry,
	favoriteService *favorite.FavoriteService,
	rateService *rates.RateService,
) *Server {
	return &Server{
		Registry:        registry,
		FavoriteService: favoriteService,
		RateService:     rateService,
	}
}

// Convert handles the Convert RPC
// Request: category_id, value (decimal string), from, to, strict (optional bool)
func (s *Server) Convert(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	value, err := decimalField(req, "value")
	if err != nil {
		return nil, err
	}

	input := converter.ConvertInput{
		CategoryID: domain.CategoryID(stringField(req, "category_id")),
		Value:      value,
		From:       stringField(req, "from"),
		To:         stringField(req, "to"),
	}

	conversion, err := s.Registry.Convert(input)
	if err != nil {
		return nil, mapError(err)
	}

	// Strict callers get NotFound instead of the passthrough value
	if boolField(req, "strict") {
		if err := conversion.Err(); err != nil {
			return nil, mapError(err)
		}
	}

	fields := map[string]interface{}{
		"value":  conversion.Value.String(),
		"status": string(conversion.Status),
	}
	if conversion.OK() {
		fields["from"] = conversion.From
		fields["to"] = conversion.To
	} else {
		fields["missing_unit"] = conversion.MissingUnit
	}

	return newStruct(fields)
}

// ListSections handles the ListSections RPC
func (s *Server) ListSections(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	sections := s.Registry.Sections()

	protoSections := make([]interface{}, 0, len(sections))
	for _, section := range sections {
		categories := make([]interface{}, 0, len(section.Categories))
		for _, category := range section.Categories {
			categories = append(categories, map[string]interface{}{
				"id":          string(category.ID()),
				"icon":        category.Icon(),
				"description": category.Description(),
			})
		}
		protoSections = append(protoSections, map[string]interface{}{
			"id":         string(section.ID),
			"title":      section.Title,
			"icon":       section.Icon,
			"categories": categories,
		})
	}

	return newStruct(map[string]interface{}{"sections": protoSections})
}

// inverseUnits is implemented by categories that mix a quantity and its reciprocal
type inverseUnits interface {
	IsInverseUnit(identifier string) bool
}

// ListUnits handles the ListUnits RPC
// Request: category_id
func (s *Server) ListUnits(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	category, err := s.Registry.Category(domain.CategoryID(stringField(req, "category_id")))
	if err != nil {
		return nil, mapError(err)
	}

	inverse, hasInverse := category.(inverseUnits)

	units := category.Units()
	protoUnits := make([]interface{}, 0, len(units))
	for _, unit := range units {
		protoUnit := map[string]interface{}{
			"id":     unit.ID,
			"symbol": unit.Symbol,
			"name":   unit.Name,
		}
		if hasInverse && inverse.IsInverseUnit(unit.ID) {
			protoUnit["inverse"] = true
		}
		protoUnits = append(protoUnits, protoUnit)
	}

	return newStruct(map[string]interface{}{
		"category_id": string(category.ID()),
		"units":       protoUnits,
	})
}

// AddFavorite handles the AddFavorite RPC
// Request: category_id, from, to
func (s *Server) AddFavorite(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if s.FavoriteService == nil {
		return nil, status.Error(codes.Unavailable, "favorites are not configured")
	}

	fav, err := s.FavoriteService.Add(ctx, favorite.AddFavoriteInput{
		CategoryID: domain.CategoryID(stringField(req, "category_id")),
		FromUnit:   stringField(req, "from"),
		ToUnit:     stringField(req, "to"),
	})
	if err != nil {
		return nil, mapError(err)
	}

	return newStruct(map[string]interface{}{"favorite": favoriteToMap(fav)})
}

// ListFavorites handles the ListFavorites RPC
// Request: category_id (optional)
func (s *Server) ListFavorites(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if s.FavoriteService == nil {
		return nil, status.Error(codes.Unavailable, "favorites are not configured")
	}

	favorites, err := s.FavoriteService.List(ctx, domain.CategoryID(stringField(req, "category_id")))
	if err != nil {
		return nil, mapError(err)
	}

	protoFavorites := make([]interface{}, 0, len(favorites))
	for _, fav := range favorites {
		protoFavorites = append(protoFavorites, favoriteToMap(fav))
	}

	return newStruct(map[string]interface{}{"favorites": protoFavorites})
}

// RemoveFavorite handles the RemoveFavorite RPC
// Request: id
func (s *Server) RemoveFavorite(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if s.FavoriteService == nil {
		return nil, status.Error(codes.Unavailable, "favorites are not configured")
	}

	id, err := uuid.Parse(stringField(req, "id"))
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid id format: %v", err)
	}

	if err := s.FavoriteService.Remove(ctx, id); err != nil {
		return nil, mapError(err)
	}

	return &structpb.Struct{}, nil
}

// RefreshRates handles the RefreshRates RPC
// A failed refresh still reports the snapshot in effect, with error set.
func (s *Server) RefreshRates(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if s.RateService == nil {
		return nil, status.Error(codes.Unavailable, "currency rates are not configured")
	}

	snapshot, err := s.RateService.Refresh(ctx)

	fields := map[string]interface{}{
		"currencies": snapshot.Len(),
		"fetched_at": formatTime(snapshot.FetchedAt()),
		"fallback":   snapshot.IsFallback(),
	}
	if err != nil {
		fields["error"] = err.Error()
	}

	return newStruct(fields)
}

// GetRates handles the GetRates RPC
func (s *Server) GetRates(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var snapshot domain.CurrencyRates
	if s.RateService != nil {
		snapshot = s.RateService.Store.Snapshot()
	}

	protoRates := make(map[string]interface{}, snapshot.Len())
	for _, code := range snapshot.Codes() {
		rate, _ := snapshot.Rate(code)
		protoRates[code] = rate.String()
	}

	return newStruct(map[string]interface{}{
		"base":       domain.BaseCurrency,
		"fetched_at": formatTime(snapshot.FetchedAt()),
		"fallback":   snapshot.IsFallback(),
		"rates":      protoRates,
	})
}

// favoriteToMap converts a domain favorite to its Struct representation
func favoriteToMap(fav *domain.FavoriteConversion) map[string]interface{} {
	return map[string]interface{}{
		"id":          fav.ID.String(),
		"category_id": string(fav.CategoryID),
		"from":        fav.FromUnit,
		"to":          fav.ToUnit,
		"created_at":  formatTime(fav.CreatedAt),
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func newStruct(fields map[string]interface{}) (*structpb.Struct, error) {
	st, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to build response: %v", err)
	}
	return st, nil
}

// mapError converts domain errors to gRPC status errors
func mapError(err error) error {
	if err == nil {
		return nil
	}

	if _, ok := status.FromError(err); ok {
		return err
	}

	errorMsg := err.Error()

	var parseErr *domain.ParseError
	switch {
	case errors.As(err, &parseErr),
		errors.Is(err, domain.ErrNoReciprocal),
		errors.Is(err, domain.ErrValueOutOfRange):
		return status.Errorf(codes.InvalidArgument, "%s", errorMsg)

	case errors.Is(err, domain.ErrUnitNotFound),
		errors.Is(err, domain.ErrCategoryNotFound),
		errors.Is(err, domain.ErrSectionNotFound),
		errors.Is(err, domain.ErrFavoriteNotFound):
		return status.Errorf(codes.NotFound, "%s", errorMsg)

	case errors.Is(err, domain.ErrFavoriteExists):
		return status.Errorf(codes.AlreadyExists, "%s", errorMsg)

	case errors.Is(err, domain.ErrRatesUnavailable):
		return status.Errorf(codes.Unavailable, "%s", errorMsg)

	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return status.FromContextError(err).Err()
	}

	// Default to Internal error for unknown errors
	return status.Errorf(codes.Internal, "%s", errorMsg)
}

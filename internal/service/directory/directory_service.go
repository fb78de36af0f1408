package directory

import (
	"context"
	"fmt"
	"strings"

	"github.com/dworin/KidAirlines/internal/domain"
	"github.com/dworin/KidAirlines/internal/repository"
)

type DirectoryUseCase interface {
	ListAirports(ctx context.Context, activeOnly bool) ([]domain.Airport, error)
	GetAirportByCode(ctx context.Context, code string) (*domain.Airport, error)
	CreateAirport(ctx context.Context, code, name, city string) (*domain.Airport, error)
	SetAirportActive(ctx context.Context, id int64, active bool) error
	ListRoutes(ctx context.Context) ([]domain.Route, error)
	CreateRoute(ctx context.Context, originID, destID int64, flightNumber string) (*domain.Route, error)
	DeleteRoute(ctx context.Context, id int64) error
}

type DirectoryService struct {
	airports repository.AirportRepository
	routes   repository.RouteRepository
}

func NewDirectoryService(airports repository.AirportRepository, routes repository.RouteRepository) *DirectoryService {
	return &DirectoryService{airports: airports, routes: routes}
}

func (s *DirectoryService) ListAirports(ctx context.Context, activeOnly bool) ([]domain.Airport, error) {
	return s.airports.List(ctx, activeOnly)
}

func (s *DirectoryService) GetAirportByCode(ctx context.Context, code string) (*domain.Airport, error) {
	normalized, err := normalizeAirportCode(code)
	if err != nil {
		return nil, err
	}
	return s.airports.GetByCode(ctx, normalized)
}

func (s *DirectoryService) CreateAirport(ctx context.Context, code, name, city string) (*domain.Airport, error) {
	normalized, err := normalizeAirportCode(code)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) == "" || strings.TrimSpace(city) == "" {
		return nil, fmt.Errorf("%w: airport name and city are required", domain.ErrInvalidInput)
	}

	id, err := s.airports.Create(ctx, normalized, name, city)
	if err != nil {
		return nil, err
	}
	return s.airports.GetByID(ctx, id)
}

func (s *DirectoryService) SetAirportActive(ctx context.Context, id int64, active bool) error {
	// Deactivation hides the airport from pickers only; existing routes
	// and flights keep referencing it.
	return s.airports.UpdateStatus(ctx, id, active)
}

func (s *DirectoryService) ListRoutes(ctx context.Context) ([]domain.Route, error) {
	return s.routes.List(ctx)
}

func (s *DirectoryService) CreateRoute(ctx context.Context, originID, destID int64, flightNumber string) (*domain.Route, error) {
	if originID == destID {
		return nil, fmt.Errorf("%w: origin and destination must differ", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(flightNumber) == "" {
		return nil, fmt.Errorf("%w: flight number is required", domain.ErrInvalidInput)
	}

	id, err := s.routes.Create(ctx, originID, destID, strings.ToUpper(flightNumber))
	if err != nil {
		return nil, err
	}
	return s.routes.GetByID(ctx, id)
}

func (s *DirectoryService) DeleteRoute(ctx context.Context, id int64) error {
	return s.routes.Delete(ctx, id)
}

// normalizeAirportCode requires exactly 3 ASCII letters and uppercases them.
func normalizeAirportCode(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != 3 {
		return "", fmt.Errorf("%w: airport code must be exactly 3 letters", domain.ErrInvalidInput)
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return "", fmt.Errorf("%w: airport code must be alphabetic", domain.ErrInvalidInput)
		}
	}
	return code, nil
}

var _ DirectoryUseCase = (*DirectoryService)(nil)

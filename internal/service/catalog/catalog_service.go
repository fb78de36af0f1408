package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/dworin/KidAirlines/internal/domain"
	"github.com/dworin/KidAirlines/internal/repository"
)

const DefaultCapacity = 150

type CatalogUseCase interface {
	List(ctx context.Context, dateFilter string) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	AvailableSeats(ctx context.Context, flightID int64) (int, error)
	Create(ctx context.Context, input CreateFlightInput) (*domain.Flight, error)
}

// FlightCache caches the unfiltered flight list; date-filtered queries go
// straight to the store.
type FlightCache interface {
	GetFlights(ctx context.Context) ([]domain.Flight, error)
	SetFlights(ctx context.Context, flights []domain.Flight) error
	InvalidateFlights(ctx context.Context) error
}

type CatalogService struct {
	repo  repository.FlightRepository
	cache FlightCache
}

type CreateFlightInput struct {
	RouteID       int64  `json:"route_id"`
	DepartureTime string `json:"departure_time"`
	ArrivalTime   string `json:"arrival_time"`
	FlightDate    string `json:"flight_date"`
	Capacity      int    `json:"capacity"`
}

func NewCatalogService(repo repository.FlightRepository, cache FlightCache) *CatalogService {
	return &CatalogService{repo: repo, cache: cache}
}

func (s *CatalogService) List(ctx context.Context, dateFilter string) ([]domain.Flight, error) {
	if dateFilter != "" {
		if _, err := time.Parse("2006-01-02", dateFilter); err != nil {
			return nil, fmt.Errorf("%w: flight date must be YYYY-MM-DD", domain.ErrInvalidInput)
		}
		return s.repo.List(ctx, dateFilter)
	}

	if s.cache != nil {
		if cached, err := s.cache.GetFlights(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	flights, err := s.repo.List(ctx, "")
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetFlights(ctx, flights)
	}
	return flights, nil
}

func (s *CatalogService) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *CatalogService) AvailableSeats(ctx context.Context, flightID int64) (int, error) {
	return s.repo.AvailableSeats(ctx, flightID)
}

func (s *CatalogService) Create(ctx context.Context, input CreateFlightInput) (*domain.Flight, error) {
	if input.Capacity == 0 {
		input.Capacity = DefaultCapacity
	}
	if input.Capacity < 0 {
		return nil, fmt.Errorf("%w: capacity must be positive", domain.ErrInvalidInput)
	}
	if _, err := time.Parse("2006-01-02", input.FlightDate); err != nil {
		return nil, fmt.Errorf("%w: flight date must be YYYY-MM-DD", domain.ErrInvalidInput)
	}
	// Arrival may be an earlier time-of-day than departure: long-haul
	// flights land the next day.
	for _, t := range []string{input.DepartureTime, input.ArrivalTime} {
		if _, err := time.Parse("15:04", t); err != nil {
			return nil, fmt.Errorf("%w: times must be HH:MM", domain.ErrInvalidInput)
		}
	}

	id, err := s.repo.Create(ctx, input.RouteID, input.DepartureTime, input.ArrivalTime, input.FlightDate, input.Capacity)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.InvalidateFlights(ctx)
	}
	return s.repo.GetByID(ctx, id)
}

var _ CatalogUseCase = (*CatalogService)(nil)

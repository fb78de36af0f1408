package catalog

import (
	"context"
	"testing"

	"github.com/dworin/KidAirlines/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockFlightRepository struct {
	mock.Mock
}

func (m *MockFlightRepository) List(ctx context.Context, dateFilter string) ([]domain.Flight, error) {
	args := m.Called(ctx, dateFilter)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightRepository) AvailableSeats(ctx context.Context, flightID int64) (int, error) {
	args := m.Called(ctx, flightID)
	return args.Int(0), args.Error(1)
}

func (m *MockFlightRepository) Create(ctx context.Context, routeID int64, departure, arrival, date string, capacity int) (int64, error) {
	args := m.Called(ctx, routeID, departure, arrival, date, capacity)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFlightRepository) Manifest(ctx context.Context, flightID int64) ([]domain.ManifestEntry, error) {
	args := m.Called(ctx, flightID)
	return args.Get(0).([]domain.ManifestEntry), args.Error(1)
}

type MockFlightCache struct {
	mock.Mock
}

func (m *MockFlightCache) GetFlights(ctx context.Context) ([]domain.Flight, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightCache) SetFlights(ctx context.Context, flights []domain.Flight) error {
	args := m.Called(ctx, flights)
	return args.Error(0)
}

func (m *MockFlightCache) InvalidateFlights(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func sampleFlight(id int64) domain.Flight {
	return domain.Flight{
		ID:            id,
		RouteID:       1,
		DepartureTime: "06:00",
		ArrivalTime:   "08:00",
		FlightDate:    "2025-01-01",
		Capacity:      150,
		FlightNumber:  "KA100",
		OriginCode:    "EWR",
		OriginCity:    "Newark",
		DestCode:      "DTW",
		DestCity:      "Detroit",
	}
}

func TestCatalogService_List_CacheHit(t *testing.T) {
	repo := &MockFlightRepository{}
	cache := &MockFlightCache{}
	service := NewCatalogService(repo, cache)

	ctx := context.Background()
	cached := []domain.Flight{sampleFlight(1)}

	cache.On("GetFlights", ctx).Return(cached, nil).Once()

	flights, err := service.List(ctx, "")

	assert.NoError(t, err)
	assert.Equal(t, cached, flights)
	repo.AssertNotCalled(t, "List")
}

func TestCatalogService_List_CacheMissFillsCache(t *testing.T) {
	repo := &MockFlightRepository{}
	cache := &MockFlightCache{}
	service := NewCatalogService(repo, cache)

	ctx := context.Background()
	stored := []domain.Flight{sampleFlight(1), sampleFlight(2)}

	cache.On("GetFlights", ctx).Return(nil, nil).Once()
	repo.On("List", ctx, "").Return(stored, nil).Once()
	cache.On("SetFlights", ctx, stored).Return(nil).Once()

	flights, err := service.List(ctx, "")

	assert.NoError(t, err)
	assert.Equal(t, stored, flights)
	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestCatalogService_List_DateFilterBypassesCache(t *testing.T) {
	repo := &MockFlightRepository{}
	cache := &MockFlightCache{}
	service := NewCatalogService(repo, cache)

	ctx := context.Background()
	stored := []domain.Flight{sampleFlight(1)}

	repo.On("List", ctx, "2025-01-01").Return(stored, nil).Once()

	flights, err := service.List(ctx, "2025-01-01")

	assert.NoError(t, err)
	assert.Equal(t, stored, flights)
	cache.AssertNotCalled(t, "GetFlights")
}

func TestCatalogService_List_InvalidDate(t *testing.T) {
	service := NewCatalogService(&MockFlightRepository{}, nil)

	flights, err := service.List(context.Background(), "01/01/2025")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Nil(t, flights)
}

func TestCatalogService_AvailableSeats(t *testing.T) {
	repo := &MockFlightRepository{}
	service := NewCatalogService(repo, nil)

	ctx := context.Background()
	repo.On("AvailableSeats", ctx, int64(4)).Return(149, nil).Once()

	available, err := service.AvailableSeats(ctx, 4)

	assert.NoError(t, err)
	assert.Equal(t, 149, available)
}

func TestCatalogService_Create_DefaultsCapacity(t *testing.T) {
	repo := &MockFlightRepository{}
	cache := &MockFlightCache{}
	service := NewCatalogService(repo, cache)

	ctx := context.Background()
	created := sampleFlight(9)

	repo.On("Create", ctx, int64(1), "06:00", "08:00", "2025-01-01", DefaultCapacity).Return(int64(9), nil).Once()
	cache.On("InvalidateFlights", ctx).Return(nil).Once()
	repo.On("GetByID", ctx, int64(9)).Return(&created, nil).Once()

	flight, err := service.Create(ctx, CreateFlightInput{
		RouteID:       1,
		DepartureTime: "06:00",
		ArrivalTime:   "08:00",
		FlightDate:    "2025-01-01",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(9), flight.ID)
	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestCatalogService_Create_Validation(t *testing.T) {
	service := NewCatalogService(&MockFlightRepository{}, nil)
	ctx := context.Background()

	testCases := []struct {
		name  string
		input CreateFlightInput
	}{
		{
			name:  "bad date",
			input: CreateFlightInput{RouteID: 1, DepartureTime: "06:00", ArrivalTime: "08:00", FlightDate: "Jan 1"},
		},
		{
			name:  "bad departure time",
			input: CreateFlightInput{RouteID: 1, DepartureTime: "6am", ArrivalTime: "08:00", FlightDate: "2025-01-01"},
		},
		{
			name:  "negative capacity",
			input: CreateFlightInput{RouteID: 1, DepartureTime: "06:00", ArrivalTime: "08:00", FlightDate: "2025-01-01", Capacity: -1},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			flight, err := service.Create(ctx, tc.input)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Nil(t, flight)
		})
	}
}

func TestCatalogService_Create_OvernightArrivalAllowed(t *testing.T) {
	repo := &MockFlightRepository{}
	service := NewCatalogService(repo, nil)

	ctx := context.Background()
	created := sampleFlight(9)
	created.DepartureTime = "20:00"
	created.ArrivalTime = "15:00"

	repo.On("Create", ctx, int64(1), "20:00", "15:00", "2025-01-01", 250).Return(int64(9), nil).Once()
	repo.On("GetByID", ctx, int64(9)).Return(&created, nil).Once()

	flight, err := service.Create(ctx, CreateFlightInput{
		RouteID:       1,
		DepartureTime: "20:00",
		ArrivalTime:   "15:00",
		FlightDate:    "2025-01-01",
		Capacity:      250,
	})

	assert.NoError(t, err)
	assert.Equal(t, "15:00", flight.ArrivalTime)
}

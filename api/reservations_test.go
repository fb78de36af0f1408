package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dworin/KidAirlines/internal/domain"
	"github.com/dworin/KidAirlines/internal/service/reservation"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockReservationUseCase is a mock implementation of reservation.ReservationUseCase
type MockReservationUseCase struct {
	mock.Mock
}

func (m *MockReservationUseCase) Create(ctx context.Context, input reservation.CreateReservationInput) (*domain.Reservation, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationUseCase) Book(ctx context.Context, input reservation.BookInput) (*domain.Reservation, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationUseCase) AddFlight(ctx context.Context, reservationID, flightID int64, seatNumber *string) error {
	args := m.Called(ctx, reservationID, flightID, seatNumber)
	return args.Error(0)
}

func (m *MockReservationUseCase) RemoveFlight(ctx context.Context, reservationID, flightID int64) error {
	args := m.Called(ctx, reservationID, flightID)
	return args.Error(0)
}

func (m *MockReservationUseCase) UpdateStatus(ctx context.Context, reservationID int64, status domain.ReservationStatus) (*domain.Reservation, error) {
	args := m.Called(ctx, reservationID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationUseCase) Delete(ctx context.Context, reservationID int64) error {
	args := m.Called(ctx, reservationID)
	return args.Error(0)
}

func (m *MockReservationUseCase) List(ctx context.Context) ([]domain.Reservation, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func (m *MockReservationUseCase) GetByConfirmation(ctx context.Context, confirmationNumber string) (*domain.Reservation, error) {
	args := m.Called(ctx, confirmationNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationUseCase) GetByPassenger(ctx context.Context, passengerID int64) ([]domain.Reservation, error) {
	args := m.Called(ctx, passengerID)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

// MockManifestUseCase is a mock implementation of manifest.ManifestUseCase
type MockManifestUseCase struct {
	mock.Mock
}

func (m *MockManifestUseCase) ManifestFor(ctx context.Context, flightID int64) ([]domain.ManifestEntry, error) {
	args := m.Called(ctx, flightID)
	return args.Get(0).([]domain.ManifestEntry), args.Error(1)
}

func (m *MockManifestUseCase) ItineraryFor(ctx context.Context, reservationID int64) ([]domain.ItineraryLeg, error) {
	args := m.Called(ctx, reservationID)
	return args.Get(0).([]domain.ItineraryLeg), args.Error(1)
}

func sampleReservation() *domain.Reservation {
	return &domain.Reservation{
		ID:                 1,
		PassengerID:        2,
		ConfirmationNumber: "ABC123",
		Status:             domain.ReservationStatusConfirmed,
		CreatedAt:          time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
		PassengerFirstName: "Amelia",
		PassengerLastName:  "Earhart",
	}
}

func TestReservationHandler_create(t *testing.T) {
	mockService := &MockReservationUseCase{}
	handler := NewReservationHandler(mockService, &MockManifestUseCase{})

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body, _ := json.Marshal(createReservationRequest{PassengerID: 2})
	c.Request = httptest.NewRequest("POST", "/reservations", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	input := reservation.CreateReservationInput{PassengerID: 2}
	mockService.On("Create", c.Request.Context(), input).Return(sampleReservation(), nil)

	handler.create(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response reservationResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "ABC123", response.ConfirmationNumber)
	assert.Equal(t, "Amelia Earhart", response.PassengerName)
	assert.Equal(t, string(domain.ReservationStatusConfirmed), response.Status)

	mockService.AssertExpectations(t)
}

func TestReservationHandler_create_withFlightBooks(t *testing.T) {
	mockService := &MockReservationUseCase{}
	handler := NewReservationHandler(mockService, &MockManifestUseCase{})

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	seat := "12A"
	body, _ := json.Marshal(createReservationRequest{PassengerID: 2, FlightID: 7, SeatNumber: &seat})
	c.Request = httptest.NewRequest("POST", "/reservations", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("Book", c.Request.Context(), mock.MatchedBy(func(input reservation.BookInput) bool {
		return input.PassengerID == 2 && input.FlightID == 7 && input.SeatNumber != nil && *input.SeatNumber == seat
	})).Return(sampleReservation(), nil)

	handler.create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockService.AssertExpectations(t)
	mockService.AssertNotCalled(t, "Create")
}

func TestReservationHandler_create_seatTaken(t *testing.T) {
	mockService := &MockReservationUseCase{}
	handler := NewReservationHandler(mockService, &MockManifestUseCase{})

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	seat := "12A"
	body, _ := json.Marshal(createReservationRequest{PassengerID: 2, FlightID: 7, SeatNumber: &seat})
	c.Request = httptest.NewRequest("POST", "/reservations", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("Book", c.Request.Context(), mock.Anything).Return(nil, domain.ErrSeatTaken)

	handler.create(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestReservationHandler_get(t *testing.T) {
	mockService := &MockReservationUseCase{}
	handler := NewReservationHandler(mockService, &MockManifestUseCase{})

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "id", Value: "ABC123"}}
	c.Request = httptest.NewRequest("GET", "/reservations/ABC123", nil)

	mockService.On("GetByConfirmation", c.Request.Context(), "ABC123").Return(sampleReservation(), nil)

	handler.get(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response reservationResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), response.ID)
}

func TestReservationHandler_get_notFound(t *testing.T) {
	mockService := &MockReservationUseCase{}
	handler := NewReservationHandler(mockService, &MockManifestUseCase{})

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "id", Value: "ZZZZZZ"}}
	c.Request = httptest.NewRequest("GET", "/reservations/ZZZZZZ", nil)

	mockService.On("GetByConfirmation", c.Request.Context(), "ZZZZZZ").Return(nil, domain.ErrNotFound)

	handler.get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReservationHandler_addFlight(t *testing.T) {
	mockService := &MockReservationUseCase{}
	handler := NewReservationHandler(mockService, &MockManifestUseCase{})

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	seat := "3C"
	body, _ := json.Marshal(addFlightRequest{FlightID: 7, SeatNumber: &seat})
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	c.Request = httptest.NewRequest("POST", "/reservations/1/flights", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("AddFlight", c.Request.Context(), int64(1), int64(7), &seat).Return(nil)

	handler.addFlight(c)

	assert.Equal(t, http.StatusNoContent, w.Code)
	mockService.AssertExpectations(t)
}

func TestReservationHandler_addFlight_invalidID(t *testing.T) {
	handler := NewReservationHandler(&MockReservationUseCase{}, &MockManifestUseCase{})

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "id", Value: "abc"}}
	c.Request = httptest.NewRequest("POST", "/reservations/abc/flights", nil)

	handler.addFlight(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReservationHandler_removeFlight(t *testing.T) {
	mockService := &MockReservationUseCase{}
	handler := NewReservationHandler(mockService, &MockManifestUseCase{})

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "id", Value: "1"}, {Key: "flightId", Value: "7"}}
	c.Request = httptest.NewRequest("DELETE", "/reservations/1/flights/7", nil)

	mockService.On("RemoveFlight", c.Request.Context(), int64(1), int64(7)).Return(nil)

	handler.removeFlight(c)

	assert.Equal(t, http.StatusNoContent, w.Code)
	mockService.AssertExpectations(t)
}

func TestReservationHandler_updateStatus(t *testing.T) {
	mockService := &MockReservationUseCase{}
	handler := NewReservationHandler(mockService, &MockManifestUseCase{})

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body, _ := json.Marshal(statusRequest{Status: "CANCELLED"})
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	c.Request = httptest.NewRequest("PATCH", "/reservations/1/status", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	cancelled := sampleReservation()
	cancelled.Status = domain.ReservationStatusCancelled
	mockService.On("UpdateStatus", c.Request.Context(), int64(1), domain.ReservationStatusCancelled).Return(cancelled, nil)

	handler.updateStatus(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response reservationResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, string(domain.ReservationStatusCancelled), response.Status)
}

func TestReservationHandler_updateStatus_invalid(t *testing.T) {
	mockService := &MockReservationUseCase{}
	handler := NewReservationHandler(mockService, &MockManifestUseCase{})

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body, _ := json.Marshal(statusRequest{Status: "PENDING"})
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	c.Request = httptest.NewRequest("PATCH", "/reservations/1/status", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("UpdateStatus", c.Request.Context(), int64(1), domain.ReservationStatus("PENDING")).Return(nil, domain.ErrInvalidInput)

	handler.updateStatus(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReservationHandler_delete(t *testing.T) {
	mockService := &MockReservationUseCase{}
	handler := NewReservationHandler(mockService, &MockManifestUseCase{})

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "id", Value: "1"}}
	c.Request = httptest.NewRequest("DELETE", "/reservations/1", nil)

	mockService.On("Delete", c.Request.Context(), int64(1)).Return(nil)

	handler.delete(c)

	assert.Equal(t, http.StatusNoContent, w.Code)
	mockService.AssertExpectations(t)
}

func TestReservationHandler_itinerary(t *testing.T) {
	itineraries := &MockManifestUseCase{}
	handler := NewReservationHandler(&MockReservationUseCase{}, itineraries)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "id", Value: "1"}}
	c.Request = httptest.NewRequest("GET", "/reservations/1/itinerary", nil)

	legs := []domain.ItineraryLeg{
		{FlightID: 7, FlightNumber: "KA100", FlightDate: "2025-01-01", DepartureTime: "06:00", ArrivalTime: "08:00", OriginCode: "EWR", DestCode: "DTW"},
	}
	itineraries.On("ItineraryFor", c.Request.Context(), int64(1)).Return(legs, nil)

	handler.itinerary(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response []domain.ItineraryLeg
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, legs, response)
}

package reservation

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/dworin/KidAirlines/internal/domain"
	"github.com/dworin/KidAirlines/internal/kafka"
	"github.com/dworin/KidAirlines/internal/repository"
	"github.com/google/uuid"
)

// codeRetries bounds how many fresh confirmation numbers Create tries
// when a generated code collides. 36^6 combinations make more than one
// retry vanishingly rare.
const codeRetries = 3

type ReservationUseCase interface {
	Create(ctx context.Context, input CreateReservationInput) (*domain.Reservation, error)
	Book(ctx context.Context, input BookInput) (*domain.Reservation, error)
	AddFlight(ctx context.Context, reservationID, flightID int64, seatNumber *string) error
	RemoveFlight(ctx context.Context, reservationID, flightID int64) error
	UpdateStatus(ctx context.Context, reservationID int64, status domain.ReservationStatus) (*domain.Reservation, error)
	Delete(ctx context.Context, reservationID int64) error
	List(ctx context.Context) ([]domain.Reservation, error)
	GetByConfirmation(ctx context.Context, confirmationNumber string) (*domain.Reservation, error)
	GetByPassenger(ctx context.Context, passengerID int64) ([]domain.Reservation, error)
}

// SeatHolder takes a short hold on a seat while the insert is in flight.
// The store's unique index remains the authority.
type SeatHolder interface {
	AcquireSeatHold(ctx context.Context, flightID int64, seat string, ttl time.Duration) (bool, error)
	ReleaseSeatHold(ctx context.Context, flightID int64, seat string) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type ReservationService struct {
	reservations       repository.ReservationRepository
	cache              SeatHolder
	producer           Producer
	reservationsTopic  string
	notificationsTopic string
	seatHoldTTL        time.Duration
}

type CreateReservationInput struct {
	PassengerID        int64  `json:"passenger_id"`
	ConfirmationNumber string `json:"confirmation_number,omitempty"`
}

// BookInput creates a reservation and attaches its first flight in one
// transaction.
type BookInput struct {
	PassengerID int64   `json:"passenger_id"`
	FlightID    int64   `json:"flight_id"`
	SeatNumber  *string `json:"seat_number,omitempty"`
}

type ReservationServiceOption func(*ReservationService)

func WithNotificationsTopic(topic string) ReservationServiceOption {
	return func(s *ReservationService) {
		s.notificationsTopic = topic
	}
}

func NewReservationService(
	reservations repository.ReservationRepository,
	cache SeatHolder,
	producer Producer,
	reservationsTopic string,
	seatHoldTTL time.Duration,
	opts ...ReservationServiceOption,
) *ReservationService {
	service := &ReservationService{
		reservations:      reservations,
		cache:             cache,
		producer:          producer,
		reservationsTopic: reservationsTopic,
		seatHoldTTL:       seatHoldTTL,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// Create makes an empty CONFIRMED reservation. A supplied confirmation
// number is used as-is and a collision is the caller's conflict; a
// generated one is retried with fresh codes.
func (s *ReservationService) Create(ctx context.Context, input CreateReservationInput) (*domain.Reservation, error) {
	if input.PassengerID <= 0 {
		return nil, fmt.Errorf("%w: passenger id is required", domain.ErrInvalidInput)
	}

	id, err := s.createWithCode(ctx, input.ConfirmationNumber, func(code string) (int64, error) {
		return s.reservations.Create(ctx, input.PassengerID, code)
	})
	if err != nil {
		return nil, err
	}

	created, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, "reservation_created", created, 0, nil)
	return created, nil
}

// Book creates the reservation and its first leg atomically: a taken seat
// leaves no empty reservation behind.
func (s *ReservationService) Book(ctx context.Context, input BookInput) (*domain.Reservation, error) {
	if input.PassengerID <= 0 {
		return nil, fmt.Errorf("%w: passenger id is required", domain.ErrInvalidInput)
	}
	if input.FlightID <= 0 {
		return nil, fmt.Errorf("%w: flight id is required", domain.ErrInvalidInput)
	}

	release, err := s.holdSeat(ctx, input.FlightID, input.SeatNumber)
	if err != nil {
		return nil, err
	}
	defer release()

	id, err := s.createWithCode(ctx, "", func(code string) (int64, error) {
		return s.reservations.CreateWithFlight(ctx, input.PassengerID, code, input.FlightID, input.SeatNumber)
	})
	if err != nil {
		return nil, err
	}

	created, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, "reservation_created", created, input.FlightID, input.SeatNumber)
	return created, nil
}

// createWithCode runs insert with the supplied code, or with generated
// codes retried on collision when none is supplied.
func (s *ReservationService) createWithCode(ctx context.Context, supplied string, insert func(code string) (int64, error)) (int64, error) {
	if supplied != "" {
		if err := validateConfirmationNumber(supplied); err != nil {
			return 0, err
		}
		return insert(supplied)
	}

	var lastErr error
	for attempt := 0; attempt < codeRetries; attempt++ {
		id, err := insert(GenerateConfirmationNumber())
		if err == nil {
			return id, nil
		}
		if !errors.Is(err, domain.ErrDuplicateConfirmation) {
			return 0, err
		}
		lastErr = err
	}
	return 0, lastErr
}

// AddFlight attaches a flight, claiming the seat through the insert
// itself. A nil seat never conflicts and does not count against capacity.
func (s *ReservationService) AddFlight(ctx context.Context, reservationID, flightID int64, seatNumber *string) error {
	res, err := s.reservations.GetByID(ctx, reservationID)
	if err != nil {
		return err
	}

	release, err := s.holdSeat(ctx, flightID, seatNumber)
	if err != nil {
		return err
	}
	defer release()

	if err := s.reservations.AddFlight(ctx, reservationID, flightID, seatNumber); err != nil {
		return err
	}
	s.publish(ctx, "flight_added", res, flightID, seatNumber)
	return nil
}

func (s *ReservationService) RemoveFlight(ctx context.Context, reservationID, flightID int64) error {
	res, err := s.reservations.GetByID(ctx, reservationID)
	if err != nil {
		return err
	}
	if err := s.reservations.RemoveFlight(ctx, reservationID, flightID); err != nil {
		return err
	}
	s.publish(ctx, "flight_removed", res, flightID, nil)
	return nil
}

// UpdateStatus flips between CONFIRMED and CANCELLED. Attachments are
// untouched either way: cancelled seats stop counting against
// availability but stay reserved, so reactivation never collides.
func (s *ReservationService) UpdateStatus(ctx context.Context, reservationID int64, status domain.ReservationStatus) (*domain.Reservation, error) {
	if status != domain.ReservationStatusConfirmed && status != domain.ReservationStatusCancelled {
		return nil, fmt.Errorf("%w: status must be CONFIRMED or CANCELLED", domain.ErrInvalidInput)
	}

	if err := s.reservations.UpdateStatus(ctx, reservationID, status); err != nil {
		return nil, err
	}
	updated, err := s.reservations.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	eventType := "reservation_cancelled"
	if status == domain.ReservationStatusConfirmed {
		eventType = "reservation_reactivated"
	}
	s.publish(ctx, eventType, updated, 0, nil)
	return updated, nil
}

func (s *ReservationService) Delete(ctx context.Context, reservationID int64) error {
	res, err := s.reservations.GetByID(ctx, reservationID)
	if err != nil {
		return err
	}
	if err := s.reservations.Delete(ctx, reservationID); err != nil {
		return err
	}
	s.publish(ctx, "reservation_deleted", res, 0, nil)
	return nil
}

func (s *ReservationService) List(ctx context.Context) ([]domain.Reservation, error) {
	return s.reservations.List(ctx)
}

func (s *ReservationService) GetByConfirmation(ctx context.Context, confirmationNumber string) (*domain.Reservation, error) {
	if err := validateConfirmationNumber(confirmationNumber); err != nil {
		return nil, err
	}
	return s.reservations.GetByConfirmation(ctx, confirmationNumber)
}

func (s *ReservationService) GetByPassenger(ctx context.Context, passengerID int64) ([]domain.Reservation, error) {
	return s.reservations.GetByPassenger(ctx, passengerID)
}

// holdSeat acquires the optional cache hold for a non-nil seat. The
// returned release is safe to call unconditionally.
func (s *ReservationService) holdSeat(ctx context.Context, flightID int64, seatNumber *string) (func(), error) {
	if s.cache == nil || seatNumber == nil {
		return func() {}, nil
	}

	ok, err := s.cache.AcquireSeatHold(ctx, flightID, *seatNumber, s.seatHoldTTL)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrSeatTaken
	}
	return func() {
		_ = s.cache.ReleaseSeatHold(ctx, flightID, *seatNumber)
	}, nil
}

func (s *ReservationService) publish(ctx context.Context, eventType string, res *domain.Reservation, flightID int64, seatNumber *string) {
	if s.producer == nil || s.reservationsTopic == "" {
		return
	}

	event := kafka.ReservationEvent{
		ID:                 uuid.NewString(),
		Type:               eventType,
		ReservationID:      res.ID,
		ConfirmationNumber: res.ConfirmationNumber,
		PassengerID:        res.PassengerID,
		PassengerName:      res.PassengerName(),
		FlightID:           flightID,
		Status:             string(res.Status),
		OccurredAt:         time.Now().UTC(),
	}
	if seatNumber != nil {
		event.SeatNumber = *seatNumber
	}

	if err := s.producer.Publish(ctx, s.reservationsTopic, res.ConfirmationNumber, event); err != nil {
		log.Printf("WARNING: failed to publish %s event for reservation %s: %v", eventType, res.ConfirmationNumber, err)
	}
	if s.notificationsTopic != "" {
		if err := s.producer.Publish(ctx, s.notificationsTopic, res.ConfirmationNumber, event); err != nil {
			log.Printf("WARNING: failed to publish %s notification for reservation %s: %v", eventType, res.ConfirmationNumber, err)
		}
	}
}

var _ ReservationUseCase = (*ReservationService)(nil)

package manifest

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/dworin/KidAirlines/internal/domain"
	"github.com/dworin/KidAirlines/internal/repository"
)

type ManifestUseCase interface {
	ManifestFor(ctx context.Context, flightID int64) ([]domain.ManifestEntry, error)
	ItineraryFor(ctx context.Context, reservationID int64) ([]domain.ItineraryLeg, error)
}

type ManifestService struct {
	flights      repository.FlightRepository
	reservations repository.ReservationRepository
}

func NewManifestService(flights repository.FlightRepository, reservations repository.ReservationRepository) *ManifestService {
	return &ManifestService{flights: flights, reservations: reservations}
}

// ManifestFor lists passengers on CONFIRMED reservations, ordered by seat
// row then letter ("2A" before "10A"), seatless passengers last.
func (s *ManifestService) ManifestFor(ctx context.Context, flightID int64) ([]domain.ManifestEntry, error) {
	if _, err := s.flights.GetByID(ctx, flightID); err != nil {
		return nil, err
	}

	entries, err := s.flights.Manifest(ctx, flightID)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return seatLess(entries[i].SeatNumber, entries[j].SeatNumber)
	})
	return entries, nil
}

func (s *ManifestService) ItineraryFor(ctx context.Context, reservationID int64) ([]domain.ItineraryLeg, error) {
	if _, err := s.reservations.GetByID(ctx, reservationID); err != nil {
		return nil, err
	}
	return s.reservations.Flights(ctx, reservationID)
}

func seatLess(a, b *string) bool {
	switch {
	case a == nil:
		return false
	case b == nil:
		return true
	}

	rowA, letterA := splitSeat(*a)
	rowB, letterB := splitSeat(*b)
	if rowA != rowB {
		return rowA < rowB
	}
	if letterA != letterB {
		return letterA < letterB
	}
	return *a < *b
}

// splitSeat parses "12A" into (12, "A"). Labels without a leading row
// number sort after numbered seats of the same letter group.
func splitSeat(seat string) (int, string) {
	seat = strings.ToUpper(strings.TrimSpace(seat))
	i := 0
	for i < len(seat) && seat[i] >= '0' && seat[i] <= '9' {
		i++
	}
	row, err := strconv.Atoi(seat[:i])
	if err != nil {
		return int(^uint(0) >> 1), seat
	}
	return row, seat[i:]
}

var _ ManifestUseCase = (*ManifestService)(nil)

package repository

import (
	"context"
	"errors"

	"github.com/dworin/KidAirlines/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FlightRepository interface {
	List(ctx context.Context, dateFilter string) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	AvailableSeats(ctx context.Context, flightID int64) (int, error)
	Create(ctx context.Context, routeID int64, departure, arrival, date string, capacity int) (int64, error)
	Manifest(ctx context.Context, flightID int64) ([]domain.ManifestEntry, error)
}

type PGFlightRepository struct {
	db *pgxpool.Pool
}

func NewFlightRepository(db *pgxpool.Pool) FlightRepository {
	return &PGFlightRepository{db: db}
}

const flightSelect = `
	SELECT f.id, f.route_id, f.departure_time, f.arrival_time, f.flight_date::text, f.capacity,
	       r.flight_number, o.code, o.city, d.code, d.city
	FROM flights f
	JOIN routes r ON f.route_id = r.id
	JOIN airports o ON r.origin_airport_id = o.id
	JOIN airports d ON r.destination_airport_id = d.id`

func scanFlight(row interface{ Scan(...any) error }) (*domain.Flight, error) {
	var f domain.Flight
	err := row.Scan(&f.ID, &f.RouteID, &f.DepartureTime, &f.ArrivalTime, &f.FlightDate, &f.Capacity,
		&f.FlightNumber, &f.OriginCode, &f.OriginCity, &f.DestCode, &f.DestCity)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *PGFlightRepository) List(ctx context.Context, dateFilter string) ([]domain.Flight, error) {
	query := flightSelect
	args := []any{}
	if dateFilter != "" {
		query += ` WHERE f.flight_date = $1::date`
		args = append(args, dateFilter)
	}
	query += ` ORDER BY f.flight_date, f.departure_time`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	flights := make([]domain.Flight, 0)
	for rows.Next() {
		f, err := scanFlight(rows)
		if err != nil {
			return nil, err
		}
		flights = append(flights, *f)
	}
	return flights, rows.Err()
}

func (r *PGFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	f, err := scanFlight(r.db.QueryRow(ctx, flightSelect+` WHERE f.id=$1`, id))
	if err != nil {
		return nil, translateError(err)
	}
	return f, nil
}

// AvailableSeats counts only seats held by CONFIRMED reservations:
// cancelling a reservation frees its seats for availability purposes,
// while the unique index keeps the seat labels reserved for reactivation.
func (r *PGFlightRepository) AvailableSeats(ctx context.Context, flightID int64) (int, error) {
	var available int
	err := r.db.QueryRow(ctx, `
		SELECT f.capacity - (
			SELECT COUNT(*)
			FROM reservation_flights rf
			JOIN reservations res ON res.id = rf.reservation_id
			WHERE rf.flight_id = f.id
			  AND rf.seat_number IS NOT NULL
			  AND res.status = 'CONFIRMED')
		FROM flights f
		WHERE f.id = $1`, flightID).Scan(&available)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, translateError(err)
	}
	return available, nil
}

func (r *PGFlightRepository) Create(ctx context.Context, routeID int64, departure, arrival, date string, capacity int) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO flights (route_id, departure_time, arrival_time, flight_date, capacity)
		 VALUES ($1, $2, $3, $4::date, $5) RETURNING id`,
		routeID, departure, arrival, date, capacity).Scan(&id)
	if err != nil {
		return 0, translateError(err)
	}
	return id, nil
}

// Manifest lists passengers on CONFIRMED reservations only, matching the
// availability policy. Ordering by seat is done by the manifest service.
func (r *PGFlightRepository) Manifest(ctx context.Context, flightID int64) ([]domain.ManifestEntry, error) {
	rows, err := r.db.Query(ctx, `
		SELECT p.first_name, p.last_name, rf.seat_number, res.confirmation_number
		FROM reservation_flights rf
		JOIN reservations res ON rf.reservation_id = res.id
		JOIN passengers p ON res.passenger_id = p.id
		WHERE rf.flight_id = $1 AND res.status = 'CONFIRMED'`, flightID)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	entries := make([]domain.ManifestEntry, 0)
	for rows.Next() {
		var e domain.ManifestEntry
		if err := rows.Scan(&e.PassengerFirstName, &e.PassengerLastName, &e.SeatNumber, &e.ConfirmationNumber); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

var _ FlightRepository = (*PGFlightRepository)(nil)

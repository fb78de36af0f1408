package repository

import (
	"context"

	"github.com/dworin/KidAirlines/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReservationRepository interface {
	Create(ctx context.Context, passengerID int64, confirmationNumber string) (int64, error)
	CreateWithFlight(ctx context.Context, passengerID int64, confirmationNumber string, flightID int64, seatNumber *string) (int64, error)
	List(ctx context.Context) ([]domain.Reservation, error)
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	GetByConfirmation(ctx context.Context, confirmationNumber string) (*domain.Reservation, error)
	GetByPassenger(ctx context.Context, passengerID int64) ([]domain.Reservation, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error
	Delete(ctx context.Context, id int64) error
	AddFlight(ctx context.Context, reservationID, flightID int64, seatNumber *string) error
	RemoveFlight(ctx context.Context, reservationID, flightID int64) error
	Flights(ctx context.Context, reservationID int64) ([]domain.ItineraryLeg, error)
}

type PGReservationRepository struct {
	db *pgxpool.Pool
}

func NewReservationRepository(db *pgxpool.Pool) ReservationRepository {
	return &PGReservationRepository{db: db}
}

const reservationSelect = `
	SELECT r.id, r.passenger_id, r.confirmation_number, r.status, r.created_at,
	       p.first_name, p.last_name
	FROM reservations r
	JOIN passengers p ON r.passenger_id = p.id`

func scanReservation(row interface{ Scan(...any) error }) (*domain.Reservation, error) {
	var res domain.Reservation
	err := row.Scan(&res.ID, &res.PassengerID, &res.ConfirmationNumber, &res.Status, &res.CreatedAt,
		&res.PassengerFirstName, &res.PassengerLastName)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *PGReservationRepository) Create(ctx context.Context, passengerID int64, confirmationNumber string) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO reservations (passenger_id, confirmation_number, status) VALUES ($1, $2, 'CONFIRMED') RETURNING id`,
		passengerID, confirmationNumber).Scan(&id)
	if err != nil {
		return 0, translateError(err)
	}
	return id, nil
}

// CreateWithFlight books a reservation together with its first leg in a
// single transaction: if the seat is already taken nothing persists.
func (r *PGReservationRepository) CreateWithFlight(ctx context.Context, passengerID int64, confirmationNumber string, flightID int64, seatNumber *string) (int64, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	var id int64
	if err := tx.QueryRow(ctx,
		`INSERT INTO reservations (passenger_id, confirmation_number, status) VALUES ($1, $2, 'CONFIRMED') RETURNING id`,
		passengerID, confirmationNumber).Scan(&id); err != nil {
		return 0, translateError(err)
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO reservation_flights (reservation_id, flight_id, seat_number) VALUES ($1, $2, $3)`,
		id, flightID, seatNumber); err != nil {
		return 0, translateError(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, translateError(err)
	}
	return id, nil
}

func (r *PGReservationRepository) List(ctx context.Context) ([]domain.Reservation, error) {
	return r.queryReservations(ctx, reservationSelect+` ORDER BY r.created_at DESC`)
}

func (r *PGReservationRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	res, err := scanReservation(r.db.QueryRow(ctx, reservationSelect+` WHERE r.id=$1`, id))
	if err != nil {
		return nil, translateError(err)
	}
	return res, nil
}

func (r *PGReservationRepository) GetByConfirmation(ctx context.Context, confirmationNumber string) (*domain.Reservation, error) {
	res, err := scanReservation(r.db.QueryRow(ctx, reservationSelect+` WHERE r.confirmation_number=$1`, confirmationNumber))
	if err != nil {
		return nil, translateError(err)
	}
	return res, nil
}

func (r *PGReservationRepository) GetByPassenger(ctx context.Context, passengerID int64) ([]domain.Reservation, error) {
	return r.queryReservations(ctx, reservationSelect+` WHERE r.passenger_id=$1 ORDER BY r.created_at DESC`, passengerID)
}

func (r *PGReservationRepository) queryReservations(ctx context.Context, query string, args ...any) ([]domain.Reservation, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	reservations := make([]domain.Reservation, 0)
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, *res)
	}
	return reservations, rows.Err()
}

func (r *PGReservationRepository) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
	cmd, err := r.db.Exec(ctx, `UPDATE reservations SET status=$1 WHERE id=$2`, status, id)
	if err != nil {
		return translateError(err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes the join rows and the reservation in one transaction so a
// partial failure can never leave orphaned attachments.
func (r *PGReservationRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM reservation_flights WHERE reservation_id=$1`, id); err != nil {
		return translateError(err)
	}
	cmd, err := tx.Exec(ctx, `DELETE FROM reservations WHERE id=$1`, id)
	if err != nil {
		return translateError(err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return tx.Commit(ctx)
}

// AddFlight relies on the partial unique index on (flight_id, seat_number)
// as the seat allocation lock: the insert either wins the seat or fails
// with ErrSeatTaken. Never check-then-insert.
func (r *PGReservationRepository) AddFlight(ctx context.Context, reservationID, flightID int64, seatNumber *string) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO reservation_flights (reservation_id, flight_id, seat_number) VALUES ($1, $2, $3)`,
		reservationID, flightID, seatNumber)
	return translateError(err)
}

func (r *PGReservationRepository) RemoveFlight(ctx context.Context, reservationID, flightID int64) error {
	// Idempotent: removing an attachment that is not there is a no-op.
	_, err := r.db.Exec(ctx,
		`DELETE FROM reservation_flights WHERE reservation_id=$1 AND flight_id=$2`,
		reservationID, flightID)
	return translateError(err)
}

func (r *PGReservationRepository) Flights(ctx context.Context, reservationID int64) ([]domain.ItineraryLeg, error) {
	rows, err := r.db.Query(ctx, `
		SELECT f.id, rt.flight_number, f.flight_date::text, f.departure_time, f.arrival_time,
		       o.code, o.city, d.code, d.city, rf.seat_number
		FROM reservation_flights rf
		JOIN flights f ON rf.flight_id = f.id
		JOIN routes rt ON f.route_id = rt.id
		JOIN airports o ON rt.origin_airport_id = o.id
		JOIN airports d ON rt.destination_airport_id = d.id
		WHERE rf.reservation_id = $1
		ORDER BY f.flight_date, f.departure_time`, reservationID)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	legs := make([]domain.ItineraryLeg, 0)
	for rows.Next() {
		var leg domain.ItineraryLeg
		if err := rows.Scan(&leg.FlightID, &leg.FlightNumber, &leg.FlightDate, &leg.DepartureTime, &leg.ArrivalTime,
			&leg.OriginCode, &leg.OriginCity, &leg.DestCode, &leg.DestCity, &leg.SeatNumber); err != nil {
			return nil, err
		}
		legs = append(legs, leg)
	}
	return legs, rows.Err()
}

var _ ReservationRepository = (*PGReservationRepository)(nil)

package repository

import (
	"context"
	"time"

	"github.com/dworin/KidAirlines/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PassengerRepository interface {
	List(ctx context.Context) ([]domain.Passenger, error)
	GetByID(ctx context.Context, id int64) (*domain.Passenger, error)
	Search(ctx context.Context, term string) ([]domain.Passenger, error)
	Create(ctx context.Context, firstName, lastName string, dateOfBirth *time.Time) (int64, error)
	Update(ctx context.Context, id int64, firstName, lastName string, dateOfBirth *time.Time) error
}

type PGPassengerRepository struct {
	db *pgxpool.Pool
}

func NewPassengerRepository(db *pgxpool.Pool) PassengerRepository {
	return &PGPassengerRepository{db: db}
}

const passengerSelect = `SELECT id, first_name, last_name, date_of_birth, created_at FROM passengers`

func (r *PGPassengerRepository) List(ctx context.Context) ([]domain.Passenger, error) {
	rows, err := r.db.Query(ctx, passengerSelect+` ORDER BY last_name, first_name`)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	passengers := make([]domain.Passenger, 0)
	for rows.Next() {
		var p domain.Passenger
		if err := rows.Scan(&p.ID, &p.FirstName, &p.LastName, &p.DateOfBirth, &p.CreatedAt); err != nil {
			return nil, err
		}
		passengers = append(passengers, p)
	}
	return passengers, rows.Err()
}

func (r *PGPassengerRepository) GetByID(ctx context.Context, id int64) (*domain.Passenger, error) {
	row := r.db.QueryRow(ctx, passengerSelect+` WHERE id=$1`, id)
	var p domain.Passenger
	if err := row.Scan(&p.ID, &p.FirstName, &p.LastName, &p.DateOfBirth, &p.CreatedAt); err != nil {
		return nil, translateError(err)
	}
	return &p, nil
}

func (r *PGPassengerRepository) Search(ctx context.Context, term string) ([]domain.Passenger, error) {
	pattern := "%" + term + "%"
	rows, err := r.db.Query(ctx,
		passengerSelect+` WHERE first_name ILIKE $1 OR last_name ILIKE $1 ORDER BY last_name, first_name`,
		pattern)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	passengers := make([]domain.Passenger, 0)
	for rows.Next() {
		var p domain.Passenger
		if err := rows.Scan(&p.ID, &p.FirstName, &p.LastName, &p.DateOfBirth, &p.CreatedAt); err != nil {
			return nil, err
		}
		passengers = append(passengers, p)
	}
	return passengers, rows.Err()
}

func (r *PGPassengerRepository) Create(ctx context.Context, firstName, lastName string, dateOfBirth *time.Time) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO passengers (first_name, last_name, date_of_birth) VALUES ($1, $2, $3) RETURNING id`,
		firstName, lastName, dateOfBirth).Scan(&id)
	if err != nil {
		return 0, translateError(err)
	}
	return id, nil
}

func (r *PGPassengerRepository) Update(ctx context.Context, id int64, firstName, lastName string, dateOfBirth *time.Time) error {
	cmd, err := r.db.Exec(ctx,
		`UPDATE passengers SET first_name=$1, last_name=$2, date_of_birth=$3 WHERE id=$4`,
		firstName, lastName, dateOfBirth, id)
	if err != nil {
		return translateError(err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var _ PassengerRepository = (*PGPassengerRepository)(nil)

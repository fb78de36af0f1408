package repository

import (
	"context"

	"github.com/dworin/KidAirlines/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AirportRepository interface {
	List(ctx context.Context, activeOnly bool) ([]domain.Airport, error)
	GetByID(ctx context.Context, id int64) (*domain.Airport, error)
	GetByCode(ctx context.Context, code string) (*domain.Airport, error)
	Create(ctx context.Context, code, name, city string) (int64, error)
	UpdateStatus(ctx context.Context, id int64, active bool) error
}

type PGAirportRepository struct {
	db *pgxpool.Pool
}

func NewAirportRepository(db *pgxpool.Pool) AirportRepository {
	return &PGAirportRepository{db: db}
}

func (r *PGAirportRepository) List(ctx context.Context, activeOnly bool) ([]domain.Airport, error) {
	query := `SELECT id, code, name, city, active FROM airports`
	if activeOnly {
		query += ` WHERE active`
	}
	query += ` ORDER BY code`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	airports := make([]domain.Airport, 0)
	for rows.Next() {
		var a domain.Airport
		if err := rows.Scan(&a.ID, &a.Code, &a.Name, &a.City, &a.Active); err != nil {
			return nil, err
		}
		airports = append(airports, a)
	}
	return airports, rows.Err()
}

func (r *PGAirportRepository) GetByID(ctx context.Context, id int64) (*domain.Airport, error) {
	row := r.db.QueryRow(ctx, `SELECT id, code, name, city, active FROM airports WHERE id=$1`, id)
	var a domain.Airport
	if err := row.Scan(&a.ID, &a.Code, &a.Name, &a.City, &a.Active); err != nil {
		return nil, translateError(err)
	}
	return &a, nil
}

func (r *PGAirportRepository) GetByCode(ctx context.Context, code string) (*domain.Airport, error) {
	row := r.db.QueryRow(ctx, `SELECT id, code, name, city, active FROM airports WHERE code=$1`, code)
	var a domain.Airport
	if err := row.Scan(&a.ID, &a.Code, &a.Name, &a.City, &a.Active); err != nil {
		return nil, translateError(err)
	}
	return &a, nil
}

func (r *PGAirportRepository) Create(ctx context.Context, code, name, city string) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO airports (code, name, city, active) VALUES ($1, $2, $3, TRUE) RETURNING id`,
		code, name, city).Scan(&id)
	if err != nil {
		return 0, translateError(err)
	}
	return id, nil
}

func (r *PGAirportRepository) UpdateStatus(ctx context.Context, id int64, active bool) error {
	cmd, err := r.db.Exec(ctx, `UPDATE airports SET active=$1 WHERE id=$2`, active, id)
	if err != nil {
		return translateError(err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var _ AirportRepository = (*PGAirportRepository)(nil)

package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/dworin/KidAirlines/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RouteRepository interface {
	List(ctx context.Context) ([]domain.Route, error)
	GetByID(ctx context.Context, id int64) (*domain.Route, error)
	Create(ctx context.Context, originID, destID int64, flightNumber string) (int64, error)
	Delete(ctx context.Context, id int64) error
}

type PGRouteRepository struct {
	db *pgxpool.Pool
}

func NewRouteRepository(db *pgxpool.Pool) RouteRepository {
	return &PGRouteRepository{db: db}
}

const routeSelect = `
	SELECT r.id, r.origin_airport_id, r.destination_airport_id, r.flight_number,
	       o.code, o.name, o.city, d.code, d.name, d.city
	FROM routes r
	JOIN airports o ON r.origin_airport_id = o.id
	JOIN airports d ON r.destination_airport_id = d.id`

func scanRoute(row interface{ Scan(...any) error }) (*domain.Route, error) {
	var rt domain.Route
	err := row.Scan(&rt.ID, &rt.OriginAirportID, &rt.DestinationAirportID, &rt.FlightNumber,
		&rt.OriginCode, &rt.OriginName, &rt.OriginCity, &rt.DestCode, &rt.DestName, &rt.DestCity)
	if err != nil {
		return nil, err
	}
	return &rt, nil
}

func (r *PGRouteRepository) List(ctx context.Context) ([]domain.Route, error) {
	rows, err := r.db.Query(ctx, routeSelect+` ORDER BY r.flight_number`)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	routes := make([]domain.Route, 0)
	for rows.Next() {
		rt, err := scanRoute(rows)
		if err != nil {
			return nil, err
		}
		routes = append(routes, *rt)
	}
	return routes, rows.Err()
}

func (r *PGRouteRepository) GetByID(ctx context.Context, id int64) (*domain.Route, error) {
	rt, err := scanRoute(r.db.QueryRow(ctx, routeSelect+` WHERE r.id=$1`, id))
	if err != nil {
		return nil, translateError(err)
	}
	return rt, nil
}

func (r *PGRouteRepository) Create(ctx context.Context, originID, destID int64, flightNumber string) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO routes (origin_airport_id, destination_airport_id, flight_number) VALUES ($1, $2, $3) RETURNING id`,
		originID, destID, flightNumber).Scan(&id)
	if err != nil {
		return 0, translateError(err)
	}
	return id, nil
}

// Delete refuses to remove a route that still has flights: the flights FK
// is RESTRICT, so the violation surfaces here as a conflict rather than
// silently orphaning the schedule.
func (r *PGRouteRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM routes WHERE id=$1`, id)
	if err != nil {
		err = translateError(err)
		if errors.Is(err, domain.ErrIntegrityViolation) {
			return fmt.Errorf("%w: route has scheduled flights", domain.ErrConflict)
		}
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var _ RouteRepository = (*PGRouteRepository)(nil)

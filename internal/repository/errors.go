package repository

import (
	"errors"
	"fmt"

	"github.com/dworin/KidAirlines/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// translateError maps pgx/postgres failures onto the domain taxonomy so
// services and handlers never inspect SQLSTATEs themselves.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			switch pgErr.ConstraintName {
			case "reservation_flights_flight_seat_key":
				return domain.ErrSeatTaken
			case "reservations_confirmation_number_key":
				return domain.ErrDuplicateConfirmation
			}
			return fmt.Errorf("%w: %s", domain.ErrConflict, pgErr.ConstraintName)
		case pgForeignKeyViolation, pgCheckViolation:
			return fmt.Errorf("%w: %s", domain.ErrIntegrityViolation, pgErr.ConstraintName)
		}
	}
	return err
}

package repository

import (
	"errors"
	"testing"

	"github.com/dworin/KidAirlines/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestTranslateError(t *testing.T) {
	testCases := []struct {
		name     string
		in       error
		expected error
	}{
		{
			name:     "no rows becomes not found",
			in:       pgx.ErrNoRows,
			expected: domain.ErrNotFound,
		},
		{
			name:     "seat unique violation becomes seat taken",
			in:       &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "reservation_flights_flight_seat_key"},
			expected: domain.ErrSeatTaken,
		},
		{
			name:     "confirmation unique violation becomes duplicate confirmation",
			in:       &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "reservations_confirmation_number_key"},
			expected: domain.ErrDuplicateConfirmation,
		},
		{
			name:     "other unique violation becomes conflict",
			in:       &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "airports_code_key"},
			expected: domain.ErrConflict,
		},
		{
			name:     "foreign key violation becomes integrity violation",
			in:       &pgconn.PgError{Code: pgForeignKeyViolation, ConstraintName: "flights_route_id_fkey"},
			expected: domain.ErrIntegrityViolation,
		},
		{
			name:     "check violation becomes integrity violation",
			in:       &pgconn.PgError{Code: pgCheckViolation, ConstraintName: "flights_capacity_check"},
			expected: domain.ErrIntegrityViolation,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := translateError(tc.in)
			assert.ErrorIs(t, err, tc.expected)
		})
	}
}

func TestTranslateError_Passthrough(t *testing.T) {
	assert.NoError(t, translateError(nil))

	plain := errors.New("connection refused")
	assert.Equal(t, plain, translateError(plain))
}

func TestSpecificConflictsAreConflicts(t *testing.T) {
	assert.ErrorIs(t, domain.ErrSeatTaken, domain.ErrConflict)
	assert.ErrorIs(t, domain.ErrDuplicateConfirmation, domain.ErrConflict)
}

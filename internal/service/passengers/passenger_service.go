package passengers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dworin/KidAirlines/internal/domain"
	"github.com/dworin/KidAirlines/internal/repository"
)

type PassengerUseCase interface {
	List(ctx context.Context) ([]domain.Passenger, error)
	GetByID(ctx context.Context, id int64) (*domain.Passenger, error)
	Search(ctx context.Context, term string) ([]domain.Passenger, error)
	Create(ctx context.Context, input PassengerInput) (*domain.Passenger, error)
	Update(ctx context.Context, id int64, input PassengerInput) (*domain.Passenger, error)
}

type PassengerService struct {
	repo repository.PassengerRepository
}

type PassengerInput struct {
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
}

func NewPassengerService(repo repository.PassengerRepository) *PassengerService {
	return &PassengerService{repo: repo}
}

func (s *PassengerService) List(ctx context.Context) ([]domain.Passenger, error) {
	return s.repo.List(ctx)
}

func (s *PassengerService) GetByID(ctx context.Context, id int64) (*domain.Passenger, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *PassengerService) Search(ctx context.Context, term string) ([]domain.Passenger, error) {
	if strings.TrimSpace(term) == "" {
		return s.repo.List(ctx)
	}
	return s.repo.Search(ctx, term)
}

// Create allows duplicate names: same-name passengers exist in the real
// world and are told apart by id.
func (s *PassengerService) Create(ctx context.Context, input PassengerInput) (*domain.Passenger, error) {
	if err := validateNames(input); err != nil {
		return nil, err
	}

	id, err := s.repo.Create(ctx, strings.TrimSpace(input.FirstName), strings.TrimSpace(input.LastName), input.DateOfBirth)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *PassengerService) Update(ctx context.Context, id int64, input PassengerInput) (*domain.Passenger, error) {
	if err := validateNames(input); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, id, strings.TrimSpace(input.FirstName), strings.TrimSpace(input.LastName), input.DateOfBirth); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func validateNames(input PassengerInput) error {
	if strings.TrimSpace(input.FirstName) == "" || strings.TrimSpace(input.LastName) == "" {
		return fmt.Errorf("%w: first and last name are required", domain.ErrInvalidInput)
	}
	return nil
}

var _ PassengerUseCase = (*PassengerService)(nil)

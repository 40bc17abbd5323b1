package visits

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrPetNotFound  = errors.New("pet not found")
)

// PetChecker evita importar el paquete pets (pets ya importa visits).
type PetChecker interface {
	Exists(ctx context.Context, petID int) (bool, error)
}

type Service struct {
	repo Repository
	pets PetChecker
	now  func() time.Time
}

func NewService(repo Repository, pets PetChecker) *Service {
	return &Service{
		repo: repo,
		pets: pets,
		now:  time.Now,
	}
}

type CreateInput struct {
	PetID       int
	Date        *time.Time // nil => hoy
	Description string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Visit, error) {
	if in.PetID <= 0 {
		return Visit{}, ErrInvalidInput
	}
	desc := strings.TrimSpace(in.Description)
	if desc == "" {
		return Visit{}, ErrInvalidInput
	}

	ok, err := s.pets.Exists(ctx, in.PetID)
	if err != nil {
		return Visit{}, err
	}
	if !ok {
		return Visit{}, ErrPetNotFound
	}

	date := truncateDay(s.now())
	if in.Date != nil {
		date = truncateDay(*in.Date)
	}

	v := Visit{
		PetID:       in.PetID,
		Date:        date,
		Description: desc,
	}

	id, err := s.repo.Create(ctx, v)
	if err != nil {
		return Visit{}, err
	}
	v.ID = id
	return v, nil
}

func (s *Service) ListByPet(ctx context.Context, petID int) ([]Visit, error) {
	if petID <= 0 {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByPet(ctx, petID)
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

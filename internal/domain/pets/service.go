package pets

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("pet not found")
	ErrOwnerNotFound = errors.New("owner not found")
)

type Service struct {
	repo   Repository
	visits VisitLister
	owners OwnerChecker
	now    func() time.Time
}

func NewService(repo Repository, visits VisitLister, owners OwnerChecker) *Service {
	return &Service{
		repo:   repo,
		visits: visits,
		owners: owners,
		now:    time.Now,
	}
}

type CreateInput struct {
	OwnerID   int
	Name      string
	BirthDate time.Time
	Type      string
}

type UpdateInput struct {
	Name      string
	BirthDate time.Time
	Type      string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Pet, error) {
	if in.OwnerID <= 0 {
		return Pet{}, ErrInvalidInput
	}
	name, typ, err := s.validate(in.Name, in.BirthDate, in.Type)
	if err != nil {
		return Pet{}, err
	}

	ok, err := s.owners.Exists(ctx, in.OwnerID)
	if err != nil {
		return Pet{}, err
	}
	if !ok {
		return Pet{}, ErrOwnerNotFound
	}

	p := Pet{
		OwnerID:   in.OwnerID,
		Name:      name,
		BirthDate: in.BirthDate,
		Type:      typ,
	}

	id, err := s.repo.Create(ctx, p)
	if err != nil {
		return Pet{}, err
	}
	p.ID = id
	return p, nil
}

// Update reemplaza nombre, fecha de nacimiento y tipo. El dueño no cambia.
func (s *Service) Update(ctx context.Context, id int, in UpdateInput) (Pet, error) {
	if id <= 0 {
		return Pet{}, ErrInvalidInput
	}
	name, typ, err := s.validate(in.Name, in.BirthDate, in.Type)
	if err != nil {
		return Pet{}, err
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Pet{}, err
	}

	current.Name = name
	current.BirthDate = in.BirthDate
	current.Type = typ

	if err := s.repo.Update(ctx, current); err != nil {
		return Pet{}, err
	}
	return current, nil
}

func (s *Service) GetByID(ctx context.Context, id int) (Pet, error) {
	if id <= 0 {
		return Pet{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// GetWithVisits es la representación que consume la agregación de visitas del dueño.
func (s *Service) GetWithVisits(ctx context.Context, id int) (Pet, error) {
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return Pet{}, err
	}

	vs, err := s.visits.ListByPet(ctx, p.ID)
	if err != nil {
		return Pet{}, err
	}
	p.Visits = vs
	return p, nil
}

func (s *Service) ListByOwner(ctx context.Context, ownerID int) ([]Pet, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// Exists implementa visits.PetChecker.
func (s *Service) Exists(ctx context.Context, id int) (bool, error) {
	_, err := s.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *Service) validate(name string, birthDate time.Time, typ string) (string, PetType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", "", ErrInvalidInput
	}
	t, ok := ParseType(typ)
	if !ok {
		return "", "", ErrInvalidInput
	}
	if birthDate.IsZero() || birthDate.After(s.now()) {
		return "", "", ErrInvalidInput
	}
	return name, t, nil
}

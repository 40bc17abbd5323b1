package owners

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"petclinic/internal/platform/logger"
	"petclinic/internal/ports/petlookup"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("owner not found")
	ErrUpstream     = errors.New("pet service unavailable")
)

const maxTelephoneDigits = 10

type Service struct {
	repo   Repository
	pets   PetLister
	remote petlookup.PetLookup
	log    logger.Logger
}

func NewService(repo Repository, pets PetLister, remote petlookup.PetLookup, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo:   repo,
		pets:   pets,
		remote: remote,
		log:    log,
	}
}

type Input struct {
	FirstName string
	LastName  string
	Address   string
	City      string
	Telephone string
}

func (s *Service) Create(ctx context.Context, in Input) (Owner, error) {
	o, err := normalize(in)
	if err != nil {
		return Owner{}, err
	}

	id, err := s.repo.Create(ctx, o)
	if err != nil {
		return Owner{}, err
	}
	o.ID = id
	o.Pets = nil
	return o, nil
}

// Update reemplaza los datos editables del dueño.
func (s *Service) Update(ctx context.Context, id int, in Input) (Owner, error) {
	if id <= 0 {
		return Owner{}, ErrNotFound
	}
	o, err := normalize(in)
	if err != nil {
		return Owner{}, err
	}
	o.ID = id

	if err := s.repo.Update(ctx, o); err != nil {
		return Owner{}, err
	}
	return s.GetByID(ctx, id)
}

// GetByID devuelve el dueño con sus mascotas.
func (s *Service) GetByID(ctx context.Context, id int) (Owner, error) {
	if id <= 0 {
		return Owner{}, ErrNotFound
	}
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Owner{}, err
	}

	ps, err := s.pets.ListByOwner(ctx, id)
	if err != nil {
		return Owner{}, err
	}
	o.Pets = ps
	return o, nil
}

// Exists implementa pets.OwnerChecker.
func (s *Service) Exists(ctx context.Context, id int) (bool, error) {
	if id <= 0 {
		return false, nil
	}
	_, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *Service) Search(ctx context.Context, lastNamePrefix string) ([]Owner, error) {
	return s.repo.SearchByLastName(ctx, strings.TrimSpace(lastNamePrefix))
}

// Visits junta las visitas de todas las mascotas del dueño.
// Una llamada secuencial al servicio de mascotas por cada mascota, en el orden
// de ListByOwner; las visitas se concatenan sin deduplicar ni reordenar.
// Si cualquier llamada falla, falla todo (sin resultados parciales).
func (s *Service) Visits(ctx context.Context, ownerID int) ([]petlookup.Visit, error) {
	o, err := s.GetByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	log := s.log.With(map[string]any{"owner_id": ownerID})

	out := make([]petlookup.Visit, 0)
	for _, p := range o.Pets {
		remote, err := s.remote.GetPet(ctx, p.ID)
		if err != nil {
			log.Error("pet lookup failed", map[string]any{"pet_id": p.ID, "err": err})
			return nil, fmt.Errorf("%w: pet %d: %v", ErrUpstream, p.ID, err)
		}
		log.Info("pet visits fetched", map[string]any{"pet_id": p.ID, "visits": len(remote.Visits)})
		out = append(out, remote.Visits...)
	}

	return out, nil
}

func normalize(in Input) (Owner, error) {
	o := Owner{
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Address:   strings.TrimSpace(in.Address),
		City:      strings.TrimSpace(in.City),
		Telephone: strings.TrimSpace(in.Telephone),
	}
	if o.FirstName == "" || o.LastName == "" || o.Address == "" || o.City == "" {
		return Owner{}, ErrInvalidInput
	}
	if !validTelephone(o.Telephone) {
		return Owner{}, ErrInvalidInput
	}
	return o, nil
}

func validTelephone(s string) bool {
	if s == "" || len(s) > maxTelephoneDigits {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

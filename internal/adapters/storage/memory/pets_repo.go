package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"petclinic/internal/domain/pets"
)

type petRepo struct {
	mu     sync.RWMutex
	byID   map[int]pets.Pet
	nextID int
}

func NewPetRepo() pets.Repository {
	return &petRepo{
		byID: make(map[int]pets.Pet),
	}
}

func (r *petRepo) Create(ctx context.Context, p pets.Pet) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	p.ID = r.nextID
	p.Visits = nil
	r.byID[p.ID] = p
	return p.ID, nil
}

func (r *petRepo) Update(ctx context.Context, p pets.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[p.ID]; !exists {
		return pets.ErrNotFound
	}
	p.Visits = nil
	r.byID[p.ID] = p
	return nil
}

func (r *petRepo) GetByID(ctx context.Context, id int) (pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	return p, nil
}

func (r *petRepo) ListByOwner(ctx context.Context, ownerID int) ([]pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pets.Pet, 0)
	for _, p := range r.byID {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}

	// Mismo orden que postgres: nombre, luego id
	sort.Slice(out, func(i, j int) bool {
		ni, nj := strings.ToLower(out[i].Name), strings.ToLower(out[j].Name)
		if ni != nj {
			return ni < nj
		}
		return out[i].ID < out[j].ID
	})

	return out, nil
}

package memory

import (
	"context"
	"sort"
	"sync"

	"petclinic/internal/domain/visits"
)

type visitRepo struct {
	mu     sync.RWMutex
	byPet  map[int][]visits.Visit
	nextID int
}

func NewVisitRepo() visits.Repository {
	return &visitRepo{
		byPet: make(map[int][]visits.Visit),
	}
}

func (r *visitRepo) Create(ctx context.Context, v visits.Visit) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	v.ID = r.nextID
	r.byPet[v.PetID] = append(r.byPet[v.PetID], v)
	return v.ID, nil
}

func (r *visitRepo) ListByPet(ctx context.Context, petID int) ([]visits.Visit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	src := r.byPet[petID]
	out := make([]visits.Visit, len(src))
	copy(out, src)

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].ID < out[j].ID
	})

	return out, nil
}

package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"petclinic/internal/domain/owners"
)

type ownerRepo struct {
	mu     sync.RWMutex
	byID   map[int]owners.Owner
	nextID int
}

func NewOwnerRepo() owners.Repository {
	return &ownerRepo{
		byID: make(map[int]owners.Owner),
	}
}

func (r *ownerRepo) Create(ctx context.Context, o owners.Owner) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	o.ID = r.nextID
	o.Pets = nil
	r.byID[o.ID] = o
	return o.ID, nil
}

func (r *ownerRepo) Update(ctx context.Context, o owners.Owner) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[o.ID]; !exists {
		return owners.ErrNotFound
	}
	o.Pets = nil
	r.byID[o.ID] = o
	return nil
}

func (r *ownerRepo) GetByID(ctx context.Context, id int) (owners.Owner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.byID[id]
	if !ok {
		return owners.Owner{}, owners.ErrNotFound
	}
	return o, nil
}

func (r *ownerRepo) SearchByLastName(ctx context.Context, prefix string) ([]owners.Owner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	prefix = strings.ToLower(strings.TrimSpace(prefix))

	out := make([]owners.Owner, 0)
	for _, o := range r.byID {
		if strings.HasPrefix(strings.ToLower(o.LastName), prefix) {
			out = append(out, o)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].LastName != out[j].LastName {
			return out[i].LastName < out[j].LastName
		}
		return out[i].ID < out[j].ID
	})

	return out, nil
}

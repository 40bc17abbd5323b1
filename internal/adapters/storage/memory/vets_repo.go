package memory

import (
	"context"
	"sort"

	"petclinic/internal/domain/vets"
)

// vetRepo es de solo lectura: el listado se fija al construirlo.
type vetRepo struct {
	items []vets.Vet
}

func NewVetRepo(initial []vets.Vet) vets.Repository {
	items := make([]vets.Vet, 0, len(initial))
	for _, v := range initial {
		specs := make([]vets.Specialty, len(v.Specialties))
		copy(specs, v.Specialties)
		sort.Slice(specs, func(i, j int) bool { return specs[i].Name < specs[j].Name })
		v.Specialties = specs
		items = append(items, v)
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].LastName != items[j].LastName {
			return items[i].LastName < items[j].LastName
		}
		return items[i].ID < items[j].ID
	})

	return &vetRepo{items: items}
}

func (r *vetRepo) List(ctx context.Context) ([]vets.Vet, error) {
	out := make([]vets.Vet, len(r.items))
	copy(out, r.items)
	return out, nil
}

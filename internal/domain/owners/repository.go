package owners

import (
	"context"

	"petclinic/internal/domain/pets"
)

type Repository interface {
	Create(ctx context.Context, o Owner) (int, error)
	Update(ctx context.Context, o Owner) error
	GetByID(ctx context.Context, id int) (Owner, error)
	// SearchByLastName filtra por prefijo (case-insensitive). Vacío => todos.
	// Orden: apellido, luego ID.
	SearchByLastName(ctx context.Context, prefix string) ([]Owner, error)
}

// PetLister lo implementa pets.Repository (o pets.Service).
type PetLister interface {
	ListByOwner(ctx context.Context, ownerID int) ([]pets.Pet, error)
}

package visits

import "context"

type Repository interface {
	// Create persiste la visita y devuelve el ID asignado.
	Create(ctx context.Context, v Visit) (int, error)
	// ListByPet devuelve las visitas ordenadas por fecha asc (y ID).
	ListByPet(ctx context.Context, petID int) ([]Visit, error)
}

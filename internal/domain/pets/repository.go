package pets

import "context"

type Repository interface {
	Create(ctx context.Context, p Pet) (int, error)
	Update(ctx context.Context, p Pet) error
	GetByID(ctx context.Context, id int) (Pet, error)
	// ListByOwner devuelve las mascotas del dueño ordenadas por nombre (y ID).
	ListByOwner(ctx context.Context, ownerID int) ([]Pet, error)
}

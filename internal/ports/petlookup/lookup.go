package petlookup

import "context"

// PetLookup obtiene una mascota (con visitas) desde el servicio de mascotas.
type PetLookup interface {
	GetPet(ctx context.Context, petID int) (Pet, error)
}

package vets

import "context"

type Repository interface {
	// List devuelve los veterinarios por apellido (y ID), con especialidades por nombre.
	List(ctx context.Context) ([]Vet, error)
}

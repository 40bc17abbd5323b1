package pets

import (
	"context"

	"petclinic/internal/domain/visits"
)

// OwnerChecker lo implementa owners.Service.
// Se usa para evitar ciclos de imports entre módulos (owners -> pets).
type OwnerChecker interface {
	Exists(ctx context.Context, ownerID int) (bool, error)
}

// VisitLister lo implementa visits.Repository.
type VisitLister interface {
	ListByPet(ctx context.Context, petID int) ([]visits.Visit, error)
}

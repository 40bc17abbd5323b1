package owners

import "petclinic/internal/domain/pets"

// Owner es un cliente de la clínica.
type Owner struct {
	ID int

	FirstName string
	LastName  string
	Address   string
	City      string
	Telephone string

	// Se completa en GetByID (sin visitas).
	Pets []pets.Pet
}

package vets

type Specialty struct {
	ID   int
	Name string
}

// Vet es un veterinario de la clínica. Puede no tener especialidades.
type Vet struct {
	ID        int
	FirstName string
	LastName  string

	Specialties []Specialty
}

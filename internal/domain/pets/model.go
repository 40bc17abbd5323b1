package pets

import (
	"strings"
	"time"

	"petclinic/internal/domain/visits"
)

// PetType define los tipos de mascota que atiende la clínica.
// @Enum cat, dog, lizard, snake, bird, hamster
type PetType string

const (
	TypeCat     PetType = "cat"
	TypeDog     PetType = "dog"
	TypeLizard  PetType = "lizard"
	TypeSnake   PetType = "snake"
	TypeBird    PetType = "bird"
	TypeHamster PetType = "hamster"
)

var knownTypes = []PetType{TypeBird, TypeCat, TypeDog, TypeHamster, TypeLizard, TypeSnake}

// Types devuelve los tipos soportados ordenados por nombre.
func Types() []PetType {
	out := make([]PetType, len(knownTypes))
	copy(out, knownTypes)
	return out
}

func ParseType(s string) (PetType, bool) {
	t := PetType(strings.ToLower(strings.TrimSpace(s)))
	for _, k := range knownTypes {
		if k == t {
			return t, true
		}
	}
	return "", false
}

// Pet representa una mascota registrada en la clínica.
type Pet struct {
	ID      int
	OwnerID int

	Name      string
	BirthDate time.Time
	Type      PetType

	// Solo se completa en GetWithVisits.
	Visits []visits.Visit
}

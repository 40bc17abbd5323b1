package memory

import (
	"context"
	"fmt"
	"time"

	"petclinic/internal/domain/owners"
	"petclinic/internal/domain/pets"
	"petclinic/internal/domain/visits"
	"petclinic/internal/domain/vets"
)

// Datos de demo de la clínica. Los IDs salen secuenciales (1..N) al insertar
// en este orden, igual que en la migración de postgres.

var demoOwners = []owners.Owner{
	{FirstName: "George", LastName: "Franklin", Address: "110 W. Liberty St.", City: "Madison", Telephone: "6085551023"},
	{FirstName: "Betty", LastName: "Davis", Address: "638 Cardinal Ave.", City: "Sun Prairie", Telephone: "6085551749"},
	{FirstName: "Eduardo", LastName: "Rodriquez", Address: "2693 Commerce St.", City: "McFarland", Telephone: "6085558763"},
	{FirstName: "Harold", LastName: "Davis", Address: "563 Friendly St.", City: "Windsor", Telephone: "6085553198"},
	{FirstName: "Peter", LastName: "McTavish", Address: "2387 S. Fair Way", City: "Madison", Telephone: "6085552765"},
	{FirstName: "Jean", LastName: "Coleman", Address: "105 N. Lake St.", City: "Monona", Telephone: "6085552654"},
	{FirstName: "Jeff", LastName: "Black", Address: "1450 Oak Blvd.", City: "Monona", Telephone: "6085555387"},
	{FirstName: "Maria", LastName: "Escobito", Address: "345 Maple St.", City: "Madison", Telephone: "6085557683"},
	{FirstName: "David", LastName: "Schroeder", Address: "2749 Blackhawk Trail", City: "Madison", Telephone: "6085559435"},
	{FirstName: "Carlos", LastName: "Estaban", Address: "2335 Independence La.", City: "Waunakee", Telephone: "6085555487"},
}

var demoPets = []pets.Pet{
	{OwnerID: 1, Name: "Leo", BirthDate: day(2010, 9, 7), Type: pets.TypeCat},
	{OwnerID: 2, Name: "Basil", BirthDate: day(2012, 8, 6), Type: pets.TypeHamster},
	{OwnerID: 3, Name: "Rosy", BirthDate: day(2011, 4, 17), Type: pets.TypeDog},
	{OwnerID: 3, Name: "Jewel", BirthDate: day(2010, 3, 7), Type: pets.TypeDog},
	{OwnerID: 4, Name: "Iggy", BirthDate: day(2010, 11, 30), Type: pets.TypeLizard},
	{OwnerID: 5, Name: "George", BirthDate: day(2010, 1, 20), Type: pets.TypeSnake},
	{OwnerID: 6, Name: "Samantha", BirthDate: day(2012, 9, 4), Type: pets.TypeCat},
	{OwnerID: 6, Name: "Max", BirthDate: day(2012, 9, 4), Type: pets.TypeCat},
	{OwnerID: 7, Name: "Lucky", BirthDate: day(2011, 8, 6), Type: pets.TypeBird},
	{OwnerID: 8, Name: "Mulligan", BirthDate: day(2007, 2, 24), Type: pets.TypeDog},
	{OwnerID: 9, Name: "Freddy", BirthDate: day(2010, 3, 9), Type: pets.TypeBird},
	{OwnerID: 10, Name: "Lucky", BirthDate: day(2010, 6, 24), Type: pets.TypeDog},
	{OwnerID: 10, Name: "Sly", BirthDate: day(2012, 6, 8), Type: pets.TypeCat},
}

var demoVisits = []visits.Visit{
	{PetID: 7, Date: day(2013, 1, 1), Description: "rabies shot"},
	{PetID: 8, Date: day(2013, 1, 2), Description: "rabies shot"},
	{PetID: 8, Date: day(2013, 1, 3), Description: "neutered"},
	{PetID: 7, Date: day(2013, 1, 4), Description: "spayed"},
}

var (
	radiology = vets.Specialty{ID: 1, Name: "radiology"}
	surgery   = vets.Specialty{ID: 2, Name: "surgery"}
	dentistry = vets.Specialty{ID: 3, Name: "dentistry"}
)

// DemoVets alimenta NewVetRepo cuando SEED_DEMO_DATA está activo.
func DemoVets() []vets.Vet {
	return []vets.Vet{
		{ID: 1, FirstName: "James", LastName: "Carter"},
		{ID: 2, FirstName: "Helen", LastName: "Leary", Specialties: []vets.Specialty{radiology}},
		{ID: 3, FirstName: "Linda", LastName: "Douglas", Specialties: []vets.Specialty{surgery, dentistry}},
		{ID: 4, FirstName: "Rafael", LastName: "Ortega", Specialties: []vets.Specialty{surgery}},
		{ID: 5, FirstName: "Henry", LastName: "Stevens", Specialties: []vets.Specialty{radiology}},
		{ID: 6, FirstName: "Sharon", LastName: "Jenkins"},
	}
}

// SeedDemoData carga dueños, mascotas y visitas de demo en repos vacíos.
func SeedDemoData(ctx context.Context, ownerRepo owners.Repository, petRepo pets.Repository, visitRepo visits.Repository) error {
	for _, o := range demoOwners {
		if _, err := ownerRepo.Create(ctx, o); err != nil {
			return fmt.Errorf("seed owner %s %s: %w", o.FirstName, o.LastName, err)
		}
	}
	for _, p := range demoPets {
		if _, err := petRepo.Create(ctx, p); err != nil {
			return fmt.Errorf("seed pet %s: %w", p.Name, err)
		}
	}
	for _, v := range demoVisits {
		if _, err := visitRepo.Create(ctx, v); err != nil {
			return fmt.Errorf("seed visit for pet %d: %w", v.PetID, err)
		}
	}
	return nil
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

package visits

import "time"

// DateLayout es el formato de fecha de visita en la API (sin hora).
const DateLayout = "2006-01-02"

// Visit es una consulta clínica registrada para una mascota.
type Visit struct {
	ID    int
	PetID int

	Date        time.Time
	Description string
}

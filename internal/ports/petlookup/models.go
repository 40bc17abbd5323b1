package petlookup

// Pet es la representación remota que devuelve GET /pet/{petId}.
// Solo se mapean los campos que usa la agregación.
type Pet struct {
	ID     int     `json:"id"`
	Name   string  `json:"name"`
	Visits []Visit `json:"visits"`
}

// Visit se devuelve tal cual al cliente de GET /owner/{ownerId}/getVisits.
type Visit struct {
	ID          int    `json:"id"`
	PetID       int    `json:"pet_id"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

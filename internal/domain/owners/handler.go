package owners

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"petclinic/internal/domain/pets"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/owner", func(or chi.Router) {
		or.Get("/", searchOwnersHandler(svc))
		or.Post("/", createOwnerHandler(svc))

		or.Get("/{ownerId}", getOwnerHandler(svc))
		or.Put("/{ownerId}", updateOwnerHandler(svc))

		// Visitas de todas las mascotas del dueño (una llamada al servicio de mascotas por mascota)
		or.Get("/{ownerId}/getVisits", getOwnerVisitsHandler(svc))
	})
}

// ownerRequest es el cuerpo de alta/edición de dueño.
type ownerRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Telephone string `json:"telephone"` // solo dígitos, máx 10
}

type ownerResponse struct {
	ID        int                `json:"id"`
	FirstName string             `json:"first_name"`
	LastName  string             `json:"last_name"`
	Address   string             `json:"address"`
	City      string             `json:"city"`
	Telephone string             `json:"telephone"`
	Pets      []ownerPetResponse `json:"pets"`
}

type ownerPetResponse struct {
	ID        int          `json:"id"`
	Name      string       `json:"name"`
	BirthDate string       `json:"birth_date"`
	Type      pets.PetType `json:"type"`
}

// searchOwnersHandler godoc
// @Summary Buscar dueños
// @Description Lista dueños cuyo apellido empieza con `lastName` (sin distinguir mayúsculas). Sin filtro devuelve todos.
// @Tags owners
// @Produce json
// @Param lastName query string false "Prefijo del apellido"
// @Success 200 {array} ownerResponse
// @Failure 500 {string} string "internal error"
// @Router /owner [get]
func searchOwnersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.Search(r.Context(), r.URL.Query().Get("lastName"))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]ownerResponse, 0, len(items))
		for _, o := range items {
			out = append(out, toOwnerResponse(o))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// createOwnerHandler godoc
// @Summary Registrar dueño
// @Tags owners
// @Accept json
// @Produce json
// @Param payload body ownerRequest true "Datos del dueño"
// @Success 201 {object} ownerResponse
// @Failure 400 {string} string "invalid json / validación"
// @Failure 500 {string} string "internal error"
// @Router /owner [post]
func createOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ownerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		o, err := svc.Create(r.Context(), req.toInput())
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toOwnerResponse(o))
	}
}

// getOwnerHandler godoc
// @Summary Obtener dueño con sus mascotas
// @Tags owners
// @Produce json
// @Param ownerId path int true "ID del dueño"
// @Success 200 {object} ownerResponse
// @Failure 400 {string} string "ownerId inválido"
// @Failure 404 {string} string "owner not found"
// @Router /owner/{ownerId} [get]
func getOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := ownerIDParam(w, r)
		if !ok {
			return
		}

		o, err := svc.GetByID(r.Context(), id)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toOwnerResponse(o))
	}
}

// updateOwnerHandler godoc
// @Summary Editar dueño
// @Tags owners
// @Accept json
// @Produce json
// @Param ownerId path int true "ID del dueño"
// @Param payload body ownerRequest true "Datos del dueño"
// @Success 200 {object} ownerResponse
// @Failure 400 {string} string "ownerId inválido / validación"
// @Failure 404 {string} string "owner not found"
// @Router /owner/{ownerId} [put]
func updateOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := ownerIDParam(w, r)
		if !ok {
			return
		}

		var req ownerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		o, err := svc.Update(r.Context(), id, req.toInput())
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toOwnerResponse(o))
	}
}

// getOwnerVisitsHandler godoc
// @Summary Visitas de todas las mascotas de un dueño
// @Description Para cada mascota del dueño (ordenadas por nombre) llama a GET http://{SERVICE_ENDPOINT}/pet/{petId} y concatena sus visitas en ese orden. Si alguna llamada falla devuelve 502 sin resultados parciales.
// @Tags owners
// @Produce json
// @Param ownerId path int true "ID del dueño"
// @Success 200 {array} petlookup.Visit
// @Failure 400 {string} string "ownerId inválido"
// @Failure 404 {string} string "owner not found"
// @Failure 502 {string} string "pet service unavailable"
// @Router /owner/{ownerId}/getVisits [get]
func getOwnerVisitsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := ownerIDParam(w, r)
		if !ok {
			return
		}

		items, err := svc.Visits(r.Context(), id)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, items)
	}
}

func (req ownerRequest) toInput() Input {
	return Input{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Address:   req.Address,
		City:      req.City,
		Telephone: req.Telephone,
	}
}

func ownerIDParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "ownerId"), 10, 32)
	if err != nil || id <= 0 {
		http.Error(w, "ownerId must be a positive integer", http.StatusBadRequest)
		return 0, false
	}
	return int(id), true
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, "first_name, last_name, address, city and a numeric telephone (max 10 digits) are required", http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "owner not found", http.StatusNotFound)
	case errors.Is(err, ErrUpstream):
		http.Error(w, "pet service unavailable", http.StatusBadGateway)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toOwnerResponse(o Owner) ownerResponse {
	ps := make([]ownerPetResponse, 0, len(o.Pets))
	for _, p := range o.Pets {
		ps = append(ps, ownerPetResponse{
			ID:        p.ID,
			Name:      p.Name,
			BirthDate: p.BirthDate.Format("2006-01-02"),
			Type:      p.Type,
		})
	}
	return ownerResponse{
		ID:        o.ID,
		FirstName: o.FirstName,
		LastName:  o.LastName,
		Address:   o.Address,
		City:      o.City,
		Telephone: o.Telephone,
		Pets:      ps,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

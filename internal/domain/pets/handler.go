package pets

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"petclinic/internal/domain/visits"

	"github.com/go-chi/chi/v5"
)

const birthDateLayout = "2006-01-02"

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pet", func(pr chi.Router) {
		pr.Get("/types", listTypesHandler())
		pr.Post("/", createPetHandler(svc))

		// Perfil + visitas. Lo consume el servicio de dueños para agregar visitas.
		pr.Get("/{petId}", getPetHandler(svc))
		pr.Put("/{petId}", updatePetHandler(svc))
	})
}

type createPetRequest struct {
	OwnerID   int    `json:"owner_id"`
	Name      string `json:"name"`
	BirthDate string `json:"birth_date"` // YYYY-MM-DD
	Type      string `json:"type"`
}

type updatePetRequest struct {
	Name      string `json:"name"`
	BirthDate string `json:"birth_date"`
	Type      string `json:"type"`
}

type petResponse struct {
	ID        int               `json:"id"`
	OwnerID   int               `json:"owner_id"`
	Name      string            `json:"name"`
	BirthDate string            `json:"birth_date"`
	Type      PetType           `json:"type"`
	Visits    []visits.Response `json:"visits"`
}

// listTypesHandler godoc
// @Summary Tipos de mascota
// @Tags pets
// @Produce json
// @Success 200 {array} PetType
// @Router /pet/types [get]
func listTypesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, Types())
	}
}

// createPetHandler godoc
// @Summary Registrar mascota
// @Description El dueño debe existir. birth_date en formato YYYY-MM-DD y no puede ser futura.
// @Tags pets
// @Accept json
// @Produce json
// @Param payload body createPetRequest true "Datos de la mascota"
// @Success 201 {object} petResponse
// @Failure 400 {string} string "invalid json / validación"
// @Failure 404 {string} string "owner not found"
// @Failure 500 {string} string "internal error"
// @Router /pet [post]
func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		bd, err := time.Parse(birthDateLayout, req.BirthDate)
		if err != nil {
			http.Error(w, "birth_date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		p, err := svc.Create(r.Context(), CreateInput{
			OwnerID:   req.OwnerID,
			Name:      req.Name,
			BirthDate: bd,
			Type:      req.Type,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toPetResponse(p))
	}
}

// getPetHandler godoc
// @Summary Obtener mascota con sus visitas
// @Description Devuelve el perfil de la mascota y todas sus visitas ordenadas por fecha. Es el contrato que usa GET /owner/{ownerId}/getVisits.
// @Tags pets
// @Produce json
// @Param petId path int true "ID de la mascota"
// @Success 200 {object} petResponse
// @Failure 400 {string} string "petId inválido"
// @Failure 404 {string} string "pet not found"
// @Failure 500 {string} string "internal error"
// @Router /pet/{petId} [get]
func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := petIDParam(w, r)
		if !ok {
			return
		}

		p, err := svc.GetWithVisits(r.Context(), id)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

// updatePetHandler godoc
// @Summary Editar mascota
// @Tags pets
// @Accept json
// @Produce json
// @Param petId path int true "ID de la mascota"
// @Param payload body updatePetRequest true "Nombre, fecha de nacimiento y tipo"
// @Success 200 {object} petResponse
// @Failure 400 {string} string "petId inválido / validación"
// @Failure 404 {string} string "pet not found"
// @Router /pet/{petId} [put]
func updatePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := petIDParam(w, r)
		if !ok {
			return
		}

		var req updatePetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		bd, err := time.Parse(birthDateLayout, req.BirthDate)
		if err != nil {
			http.Error(w, "birth_date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		p, err := svc.Update(r.Context(), id, UpdateInput{
			Name:      req.Name,
			BirthDate: bd,
			Type:      req.Type,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

func petIDParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	// las columnas id son INTEGER (int4)
	id, err := strconv.ParseInt(chi.URLParam(r, "petId"), 10, 32)
	if err != nil || id <= 0 {
		http.Error(w, "petId must be a positive integer", http.StatusBadRequest)
		return 0, false
	}
	return int(id), true
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, "name, type and a past birth_date are required", http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "pet not found", http.StatusNotFound)
	case errors.Is(err, ErrOwnerNotFound):
		http.Error(w, "owner not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toPetResponse(p Pet) petResponse {
	return petResponse{
		ID:        p.ID,
		OwnerID:   p.OwnerID,
		Name:      p.Name,
		BirthDate: p.BirthDate.Format(birthDateLayout),
		Type:      p.Type,
		Visits:    visits.NewResponses(p.Visits),
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

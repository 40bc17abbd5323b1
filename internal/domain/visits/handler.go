package visits

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/visit", func(vr chi.Router) {
		vr.Post("/", createVisitHandler(svc))
		vr.Get("/", listVisitsHandler(svc))
	})
}

// createVisitRequest es el cuerpo para registrar una visita.
type createVisitRequest struct {
	PetID       int    `json:"pet_id"`
	Date        string `json:"date"` // YYYY-MM-DD, opcional (default hoy)
	Description string `json:"description"`
}

// Response es la representación JSON de una visita.
// La usa también el servicio de mascotas al devolver GET /pet/{petId}.
type Response struct {
	ID          int    `json:"id"`
	PetID       int    `json:"pet_id"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

func NewResponse(v Visit) Response {
	return Response{
		ID:          v.ID,
		PetID:       v.PetID,
		Date:        v.Date.Format(DateLayout),
		Description: v.Description,
	}
}

func NewResponses(items []Visit) []Response {
	out := make([]Response, 0, len(items))
	for _, v := range items {
		out = append(out, NewResponse(v))
	}
	return out
}

// createVisitHandler godoc
// @Summary Registrar visita
// @Description Registra una visita clínica para una mascota existente. Si no se envía `date` se usa la fecha de hoy.
// @Tags visits
// @Accept json
// @Produce json
// @Param payload body createVisitRequest true "Datos de la visita; date en formato YYYY-MM-DD"
// @Success 201 {object} Response
// @Failure 400 {string} string "invalid json / date inválido / description vacía"
// @Failure 404 {string} string "pet not found"
// @Failure 500 {string} string "internal error"
// @Router /visit [post]
func createVisitHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createVisitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		var date *time.Time
		if strings.TrimSpace(req.Date) != "" {
			t, err := time.Parse(DateLayout, req.Date)
			if err != nil {
				http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			date = &t
		}

		v, err := svc.Create(r.Context(), CreateInput{
			PetID:       req.PetID,
			Date:        date,
			Description: req.Description,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, "pet_id and description are required", http.StatusBadRequest)
			case errors.Is(err, ErrPetNotFound):
				http.Error(w, "pet not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, NewResponse(v))
	}
}

// listVisitsHandler godoc
// @Summary Listar visitas de una mascota
// @Tags visits
// @Produce json
// @Param petId query int true "ID de la mascota"
// @Success 200 {array} Response
// @Failure 400 {string} string "petId inválido"
// @Failure 500 {string} string "internal error"
// @Router /visit [get]
func listVisitsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, err := strconv.ParseInt(strings.TrimSpace(r.URL.Query().Get("petId")), 10, 32)
		if err != nil || petID <= 0 {
			http.Error(w, "petId must be a positive integer", http.StatusBadRequest)
			return
		}

		items, err := svc.ListByPet(r.Context(), int(petID))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, NewResponses(items))
	}
}

// writeJSON está duplicado en cada módulo a propósito; ver pets/handler.go.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

package vets

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/vet", listVetsHandler(svc))
}

type specialtyResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type vetResponse struct {
	ID          int                 `json:"id"`
	FirstName   string              `json:"first_name"`
	LastName    string              `json:"last_name"`
	Specialties []specialtyResponse `json:"specialties"`
}

// listVetsHandler godoc
// @Summary Listar veterinarios
// @Tags vets
// @Produce json
// @Success 200 {array} vetResponse
// @Failure 500 {string} string "internal error"
// @Router /vet [get]
func listVetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]vetResponse, 0, len(items))
		for _, v := range items {
			specs := make([]specialtyResponse, 0, len(v.Specialties))
			for _, s := range v.Specialties {
				specs = append(specs, specialtyResponse{ID: s.ID, Name: s.Name})
			}
			out = append(out, vetResponse{
				ID:          v.ID,
				FirstName:   v.FirstName,
				LastName:    v.LastName,
				Specialties: specs,
			})
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(out)
	}
}

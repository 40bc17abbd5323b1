package system

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
)

const Welcome = "Welcome to PetClinic"

// Pinger lo implementa *sql.DB. nil => modo in-memory.
type Pinger interface {
	PingContext(ctx context.Context) error
}

func RegisterRoutes(r chi.Router, db Pinger) {
	r.Get("/", welcomeHandler)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			if err := db.PingContext(r.Context()); err != nil {
				http.Error(w, "database unavailable", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
}

// welcomeHandler godoc
// @Summary Bienvenida
// @Tags system
// @Produce plain
// @Success 200 {string} string "Welcome to PetClinic"
// @Router / [get]
func welcomeHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(Welcome))
}

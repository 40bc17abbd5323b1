package petservice

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"petclinic/internal/platform/httpclient"
	"petclinic/internal/platform/logger"
	"petclinic/internal/platform/metrics"
	"petclinic/internal/ports/petlookup"
)

const serviceName = "pet-service"

var (
	ErrPetServiceNotConfigured = errors.New("pet service client not configured")
	ErrPetNotFound             = errors.New("pet service: pet not found")
	ErrPetServiceUpstream      = errors.New("pet service upstream error")
)

// Config del cliente del servicio de mascotas.
// Endpoint suele venir de SERVICE_ENDPOINT ("host:port", sin esquema).
type Config struct {
	Endpoint string
	Timeout  time.Duration
}

// Client implementa petlookup.PetLookup llamando a GET {endpoint}/pet/{petId}.
type Client struct {
	http *httpclient.Client
	log  logger.Logger
}

func NewClient(cfg Config, log logger.Logger) (*Client, error) {
	if strings.TrimSpace(cfg.Endpoint) == "" {
		return nil, ErrPetServiceNotConfigured
	}
	hc, err := httpclient.NewWithBaseURL(cfg.Endpoint, cfg.Timeout)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPetServiceNotConfigured, err)
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Client{
		http: hc,
		log:  log.With(map[string]any{"upstream": serviceName}),
	}, nil
}

// BaseURL es útil para logs y tests.
func (c *Client) BaseURL() string {
	if c == nil || c.http == nil {
		return ""
	}
	return c.http.BaseURL
}

func (c *Client) GetPet(ctx context.Context, petID int) (petlookup.Pet, error) {
	if c == nil || c.http == nil {
		return petlookup.Pet{}, ErrPetServiceNotConfigured
	}

	start := time.Now()
	var out petlookup.Pet
	err := c.http.GetJSON(ctx, fmt.Sprintf("/pet/%d", petID), &out)
	elapsed := time.Since(start)

	if err != nil {
		if httpclient.StatusCode(err) == http.StatusNotFound {
			metrics.ObserveUpstream(serviceName, "not_found", elapsed)
			return petlookup.Pet{}, fmt.Errorf("%w: id=%d", ErrPetNotFound, petID)
		}
		metrics.ObserveUpstream(serviceName, "error", elapsed)
		return petlookup.Pet{}, fmt.Errorf("%w: %v", ErrPetServiceUpstream, err)
	}
	// cuerpo vacío o de otra mascota: no es una respuesta válida
	if out.ID != petID {
		metrics.ObserveUpstream(serviceName, "error", elapsed)
		return petlookup.Pet{}, fmt.Errorf("%w: unexpected pet id %d for %d", ErrPetServiceUpstream, out.ID, petID)
	}
	metrics.ObserveUpstream(serviceName, "ok", elapsed)

	if out.Visits == nil {
		out.Visits = []petlookup.Visit{}
	}

	c.log.Debug("pet fetched", map[string]any{
		"pet_id":     petID,
		"visits":     len(out.Visits),
		"elapsed_ms": elapsed.Milliseconds(),
	})

	return out, nil
}

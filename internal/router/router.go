package router

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"petclinic/internal/adapters/petservice"
	mem "petclinic/internal/adapters/storage/memory"
	pg "petclinic/internal/adapters/storage/postgres"
	"petclinic/internal/domain/owners"
	"petclinic/internal/domain/pets"
	"petclinic/internal/domain/system"
	"petclinic/internal/domain/vets"
	"petclinic/internal/domain/visits"
	"petclinic/internal/middleware"
	"petclinic/internal/platform/logger"
	"petclinic/internal/platform/metrics"

	_ "petclinic/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// host:port del servicio de mascotas (SERVICE_ENDPOINT).
	ServiceEndpoint   string
	PetServiceTimeout time.Duration

	Logger logger.Logger

	// Solo aplica a in-memory; en Postgres los datos de demo vienen de las migraciones.
	SeedDemoData bool
}

func NewRouter(opts Options) (http.Handler, error) {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(chimw.Recoverer)
	r.Use(metrics.InstrumentHandler)

	r.Handle("/metrics", metrics.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	var (
		ownerRepo owners.Repository
		petRepo   pets.Repository
		visitRepo visits.Repository
		vetRepo   vets.Repository
		pinger    system.Pinger
	)

	if opts.DB != nil {
		ownerRepo = pg.NewOwnersRepo(opts.DB)
		petRepo = pg.NewPetsRepo(opts.DB)
		visitRepo = pg.NewVisitsRepo(opts.DB)
		vetRepo = pg.NewVetsRepo(opts.DB)
		pinger = opts.DB
	} else {
		ownerRepo = mem.NewOwnerRepo()
		petRepo = mem.NewPetRepo()
		visitRepo = mem.NewVisitRepo()

		var initialVets []vets.Vet
		if opts.SeedDemoData {
			if err := mem.SeedDemoData(context.Background(), ownerRepo, petRepo, visitRepo); err != nil {
				return nil, fmt.Errorf("seed demo data: %w", err)
			}
			initialVets = mem.DemoVets()
		}
		vetRepo = mem.NewVetRepo(initialVets)
	}

	petClient, err := petservice.NewClient(petservice.Config{
		Endpoint: opts.ServiceEndpoint,
		Timeout:  opts.PetServiceTimeout,
	}, log)
	if err != nil {
		return nil, err
	}

	// Services por módulo.
	// owners -> pets -> visits: cada uno recibe del anterior lo que necesita vía interfaces chicas.
	ownersSvc := owners.NewService(ownerRepo, petRepo, petClient, log)
	petsSvc := pets.NewService(petRepo, visitRepo, ownersSvc)
	visitsSvc := visits.NewService(visitRepo, petsSvc)
	vetsSvc := vets.NewService(vetRepo)

	// Rutas por módulo
	system.RegisterRoutes(r, pinger)
	owners.RegisterRoutes(r, ownersSvc)
	pets.RegisterRoutes(r, petsSvc)
	visits.RegisterRoutes(r, visitsSvc)
	vets.RegisterRoutes(r, vetsSvc)

	log.Info("router ready", map[string]any{
		"storage":     storageName(opts.DB),
		"pet_service": petClient.BaseURL(),
	})

	return r, nil
}

func storageName(db *sql.DB) string {
	if db != nil {
		return "postgres"
	}
	return "memory"
}

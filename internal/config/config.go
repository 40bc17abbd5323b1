package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config se lee de variables de entorno (ver tags).
// SERVICE_ENDPOINT es el host:port donde vive el servicio de mascotas;
// en despliegue es el balanceador que enruta /pet* al servicio correspondiente.
type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	ServiceEndpoint   string        `env:"SERVICE_ENDPOINT" envDefault:"localhost:8080"`
	PetServiceTimeout time.Duration `env:"PET_SERVICE_TIMEOUT" envDefault:"10s"`

	// Vacío => repos in-memory
	DatabaseDSN  string `env:"DB_DSN"`
	DBMigrate    bool   `env:"DB_MIGRATE" envDefault:"true"`
	SeedDemoData bool   `env:"SEED_DEMO_DATA" envDefault:"true"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	AppName   string `env:"APP_NAME" envDefault:"petclinic"`

	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"30s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	cfg.Port = strings.TrimPrefix(strings.TrimSpace(cfg.Port), ":")
	cfg.ServiceEndpoint = strings.TrimSpace(cfg.ServiceEndpoint)
	if cfg.Port == "" {
		return Config{}, fmt.Errorf("config: PORT is empty")
	}
	if cfg.ServiceEndpoint == "" {
		return Config{}, fmt.Errorf("config: SERVICE_ENDPOINT is empty")
	}

	return cfg, nil
}

// Addr devuelve la dirección de escucha del servidor HTTP.
func (c Config) Addr() string {
	return ":" + c.Port
}

func (c Config) UsesPostgres() bool {
	return strings.TrimSpace(c.DatabaseDSN) != ""
}

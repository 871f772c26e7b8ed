// Package config defines configuration parsing and helpers.
package config

import (
	"log"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Port     string `env:"PORT" envDefault:"8080"`
	DBDSN    string `env:"DB_DSN" envDefault:"shopmate.db"`
	AdsDir   string `env:"ADS_DIR" envDefault:"./web/ads"`
	LogFile  string `env:"LOG_FILE" envDefault:"./shopmate.log"`
	Catalog  string `env:"CATALOG_FILE" envDefault:"./web/data/products.json"`
	Template string `env:"TEMPLATE_DIR" envDefault:"./web/templates"`

	// Up to four Gemini credentials; blanks are filtered into the key pool.
	GeminiAPIKey  string `env:"GEMINI_API_KEY"`
	GeminiAPIKey1 string `env:"GEMINI_API_KEY1"`
	GeminiAPIKey2 string `env:"GEMINI_API_KEY2"`
	GoogleAPIKey  string `env:"GOOGLE_API_KEY"`

	// Most-preferred first. Quota failures fall through to the next one.
	Models []string `env:"GEMINI_MODELS" envSeparator:"," envDefault:"gemini-3-flash-preview,gemini-2.0-flash,gemini-2.5-flash,gemini-1.5-flash-latest"`

	// Shared secret for the ?admin= bypass. A soft UX gate, not access control.
	AdminSecret string `env:"ADMIN_SECRET" envDefault:"shinawy"`

	IdleTimeout    time.Duration `env:"IDLE_TIMEOUT" envDefault:"30s"`
	AdRotateEvery  time.Duration `env:"AD_ROTATE_EVERY" envDefault:"5s"`
	SessionMaxIdle time.Duration `env:"SESSION_MAX_IDLE" envDefault:"2h"`
}

func Load() Config {
	// Optional .env for kiosk deployments; absence is not an error.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("[config] parse: %v", err)
	}
	log.Printf("[config] PORT=%s DB_DSN=%s ADS_DIR=%s MODELS=%s KEYS=%d",
		cfg.Port, cfg.DBDSN, cfg.AdsDir, strings.Join(cfg.Models, ","), len(cfg.APIKeys()))
	return cfg
}

// APIKeys returns the ordered credential pool with blank entries removed.
// Order is fixed for the life of the process.
func (c Config) APIKeys() []string {
	keys := make([]string, 0, 4)
	for _, k := range []string{c.GeminiAPIKey, c.GeminiAPIKey1, c.GeminiAPIKey2, c.GoogleAPIKey} {
		if strings.TrimSpace(k) != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

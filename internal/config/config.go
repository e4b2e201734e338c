// Package config loads runtime configuration from the environment, with a
// .env file honored when present.
package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds the runtime knobs. Every field has a default so the CLI
// works out of the box against a local backend.
type Config struct {
	BaseURL        string // backend origin including the /api/ prefix
	CredentialPath string // sqlite file backing the credential store
	StubPort       string // port the development stub server binds
}

// Load reads .env (best effort) and the environment.
func Load() Config {
	_ = godotenv.Load()
	return Config{
		BaseURL:        getenv("SIM_BASE_URL", "http://localhost:3080/api/"),
		CredentialPath: getenv("SIM_CREDENTIALS_PATH", defaultCredentialPath()),
		StubPort:       getenv("SIM_STUB_PORT", "3080"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func defaultCredentialPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "sim-admin.db"
	}
	return filepath.Join(home, ".sim-admin", "credentials.db")
}

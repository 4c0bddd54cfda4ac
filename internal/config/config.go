package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	cerr "github.com/saeidalz13/naval-combat/internal/error"
)

const (
	StageProd = "prod"
	StageDev  = "dev"
)

const (
	defaultPort         = 9191
	defaultLogLevel     = "info"
	defaultMigrationDir = "file://db/migration"
)

type Config struct {
	Stage        string
	Port         int
	DatabaseUrl  string
	MigrationDir string
	LogLevel     zerolog.Level
}

// Load reads the environment. Outside prod a .env file is loaded
// first when present.
func Load() (Config, error) {
	if os.Getenv("STAGE") != StageProd {
		_ = godotenv.Load(".env")
	}
	return FromEnv(os.Getenv)
}

func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		Stage:        getenv("STAGE"),
		Port:         defaultPort,
		DatabaseUrl:  getenv("DATABASE_URL"),
		MigrationDir: defaultMigrationDir,
		LogLevel:     zerolog.InfoLevel,
	}

	if cfg.Stage == "" {
		return Config{}, cerr.ErrEnvNotSet("STAGE")
	}
	if cfg.Stage != StageDev && cfg.Stage != StageProd {
		return Config{}, fmt.Errorf("stage must be either dev or prod, got: %s", cfg.Stage)
	}

	if portEnv := getenv("PORT"); portEnv != "" {
		port, err := strconv.Atoi(portEnv)
		if err != nil || port <= 0 || port > 65535 {
			return Config{}, fmt.Errorf("invalid PORT %q", portEnv)
		}
		cfg.Port = port
	}

	if dir := getenv("MIGRATION_DIR"); dir != "" {
		cfg.MigrationDir = dir
	}

	levelEnv := getenv("LOG_LEVEL")
	if levelEnv == "" {
		levelEnv = defaultLogLevel
	}
	level, err := zerolog.ParseLevel(levelEnv)
	if err != nil {
		return Config{}, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	cfg.LogLevel = level

	if cfg.Stage == StageProd && cfg.DatabaseUrl == "" {
		return Config{}, cerr.ErrEnvNotSet("DATABASE_URL")
	}

	return cfg, nil
}

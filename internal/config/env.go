package config

import (
	"os"

	"github.com/joho/godotenv"

	"topogen/internal/logger"
)

// EnvDatabaseURL overrides the configured database DSN
const EnvDatabaseURL = "TOPOGEN_DATABASE_URL"

// LoadEnv reads a .env file from the working directory into the environment
func LoadEnv(files ...string) {
	if err := godotenv.Load(files...); err != nil {
		logger.Debug("No .env file found, using system environment variables")
	}
}

// ApplyEnv overlays environment variables onto the config
func (c *Config) ApplyEnv() {
	if dsn, ok := os.LookupEnv(EnvDatabaseURL); ok && dsn != "" {
		c.Database.DSN = dsn
	}
}

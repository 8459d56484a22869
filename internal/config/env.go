package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// ServeEnv holds SSH server settings read from the environment.
type ServeEnv struct {
	SSHAddr     string        // SEATJAM_SSH_ADDR
	HostKeyPath string        // SEATJAM_HOST_KEY
	DBPath      string        // SEATJAM_DB
	IdleTimeout time.Duration // SEATJAM_IDLE_TIMEOUT, in minutes
}

// DefaultServeEnv returns the settings used when nothing is set.
func DefaultServeEnv() ServeEnv {
	return ServeEnv{
		SSHAddr:     ":23234",
		DBPath:      "~/.seatjam/scores.db",
		IdleTimeout: 30 * time.Minute,
	}
}

// LoadServeEnv loads envFile (".env" when empty) if it exists and reads the
// SEATJAM_* variables on top of the defaults. Variables already present in
// the environment win over the file.
func LoadServeEnv(envFile string) (ServeEnv, error) {
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return DefaultServeEnv(), fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	env := DefaultServeEnv()
	env.SSHAddr = getEnvWithDefault("SEATJAM_SSH_ADDR", env.SSHAddr)
	env.HostKeyPath = getEnvWithDefault("SEATJAM_HOST_KEY", env.HostKeyPath)
	env.DBPath = getEnvWithDefault("SEATJAM_DB", env.DBPath)

	if v, ok := os.LookupEnv("SEATJAM_IDLE_TIMEOUT"); ok {
		minutes, err := strconv.Atoi(v)
		if err != nil || minutes <= 0 {
			return env, fmt.Errorf("SEATJAM_IDLE_TIMEOUT must be a positive number of minutes, got %q", v)
		}
		env.IdleTimeout = time.Duration(minutes) * time.Minute
	}

	return env, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

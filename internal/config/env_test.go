package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func clearServeEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"SEATJAM_SSH_ADDR", "SEATJAM_HOST_KEY", "SEATJAM_DB", "SEATJAM_IDLE_TIMEOUT"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadServeEnvDefaults(t *testing.T) {
	clearServeEnv(t)
	t.Chdir(t.TempDir())

	env, err := LoadServeEnv("")
	if err != nil {
		t.Fatalf("LoadServeEnv() error: %v", err)
	}
	if env != DefaultServeEnv() {
		t.Errorf("env = %+v, expected defaults", env)
	}
}

func TestLoadServeEnvFromFile(t *testing.T) {
	clearServeEnv(t)
	dir := t.TempDir()
	t.Chdir(dir)

	data := "SEATJAM_SSH_ADDR=:2222\nSEATJAM_DB=/tmp/jam.db\nSEATJAM_IDLE_TIMEOUT=5\n"
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	// Set in the process environment: wins over the file
	t.Setenv("SEATJAM_DB", "/var/lib/seatjam.db")

	env, err := LoadServeEnv("")
	if err != nil {
		t.Fatalf("LoadServeEnv() error: %v", err)
	}
	if env.SSHAddr != ":2222" {
		t.Errorf("SSHAddr = %q", env.SSHAddr)
	}
	if env.DBPath != "/var/lib/seatjam.db" {
		t.Errorf("DBPath = %q", env.DBPath)
	}
	if env.IdleTimeout != 5*time.Minute {
		t.Errorf("IdleTimeout = %v", env.IdleTimeout)
	}
	if env.HostKeyPath != "" {
		t.Errorf("HostKeyPath = %q, expected empty", env.HostKeyPath)
	}
}

func TestLoadServeEnvBadTimeout(t *testing.T) {
	clearServeEnv(t)
	t.Chdir(t.TempDir())
	t.Setenv("SEATJAM_IDLE_TIMEOUT", "soon")

	if _, err := LoadServeEnv(""); err == nil {
		t.Error("expected error for non-numeric timeout")
	}
}

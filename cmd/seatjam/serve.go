package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/seatjam/internal/config"
	"github.com/vovakirdan/seatjam/internal/games/seatjam"
	"github.com/vovakirdan/seatjam/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagEnvFile     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Seat Jam SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets their own session with a game picker menu.
Scores are stored per-server (all users share the same leaderboard).

Settings come from flags, then SEATJAM_* environment variables (also
read from a .env file), then defaults:
  SEATJAM_SSH_ADDR      --ssh
  SEATJAM_HOST_KEY      --host-key
  SEATJAM_DB            --db
  SEATJAM_IDLE_TIMEOUT  --idle-timeout (minutes)

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.seatjam/host_key

Examples:
  seatjam serve                           # Listen on :23234 with auto-generated key
  seatjam serve --ssh :2222               # Listen on port 2222
  seatjam serve --host-key ./my_host_key  # Use specific host key
  seatjam serve --env-file ./prod.env

Users can connect with:
  ssh localhost -p 23234`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagEnvFile, "env-file", ".env", "Environment file with SEATJAM_* settings")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset for every session")
	serveCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runServe(cmd *cobra.Command, _ []string) error {
	env, err := config.LoadServeEnv(flagEnvFile)
	if err != nil {
		return err
	}
	if _, ok := config.ParsePreset(flagDifficulty); !ok {
		return fmt.Errorf("unknown difficulty %q", flagDifficulty)
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.TickRate = flagFPS
	cfg.Address = pick(cmd, "ssh", flagSSHAddr, env.SSHAddr)
	cfg.HostKeyPath = pick(cmd, "host-key", flagHostKey, env.HostKeyPath)
	cfg.DBPath = pick(cmd, "db", flagDBPath, env.DBPath)
	cfg.IdleTimeout = env.IdleTimeout
	if cmd.Flags().Changed("idle-timeout") {
		cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}

	seatjam.SetConfigPath(flagConfig)
	seatjam.SetDifficultyPreset(flagDifficulty)

	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Starting Seat Jam SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.Serve(ctx); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// pick returns the flag value when it was set explicitly, otherwise the
// environment value.
func pick(cmd *cobra.Command, name, flagValue, envValue string) string {
	if cmd.Flags().Changed(name) {
		return flagValue
	}
	return envValue
}

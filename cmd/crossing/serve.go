package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-crossing/internal/config"
	"github.com/vovakirdan/tui-crossing/internal/games/crossing"
	"github.com/vovakirdan/tui-crossing/internal/platform/tui"
	"github.com/vovakirdan/tui-crossing/internal/sprite"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagNoPicker    bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the crossing SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own independent game and starts at the
avatar picker. Sessions never see each other.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.crossing/host_key

Examples:
  crossing serve                           # Listen on :23234 with auto-generated key
  crossing serve --ssh :2222               # Listen on port 2222
  crossing serve --host-key ./my_host_key  # Use specific host key
  crossing serve --difficulty hard         # Every session plays hard

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().BoolVar(&flagNoPicker, "no-picker", false, "Skip the avatar picker when a session starts")
}

func runServe(_ *cobra.Command, _ []string) {
	logger, err := newLogger(os.Stderr, "crossing-ssh")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	gameCfg, err := loadConfig(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// New sessions pick up edits to the config file; running games keep theirs.
	current := func() config.CrossingConfig { return gameCfg.CrossingConfig }
	if gameCfg.FromFile() {
		watcher, watchErr := config.NewWatcher(gameCfg.Source, gameCfg.CrossingConfig, gameCfg.Preset,
			func(_ config.CrossingConfig, err error) {
				if err != nil {
					logger.Warn("config reload failed", "error", err)
					return
				}
				logger.Info("config reloaded", "source", gameCfg.Source)
			})
		if watchErr == nil {
			if watchErr = watcher.Start(context.Background()); watchErr != nil {
				watcher.Stop() //nolint:errcheck // Watcher was never running
			}
		}
		if watchErr != nil {
			logger.Warn("config changes will not be picked up", "error", watchErr)
		} else {
			defer watcher.Stop() //nolint:errcheck // Best-effort cleanup on exit
			current = watcher.Current
		}
	}

	atlas := sprite.DefaultAtlas()
	newGame := func() tui.Game {
		return crossing.New(current(), atlas)
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:    flagFPS,
		PickAvatar:  !flagNoPicker,
	}

	server, err := tui.NewSSHServer(cfg, newGame, atlas, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting crossing SSH server on %s\n", cfg.Address)
	fmt.Printf("Connect with: %s\n", connectCommand(cfg.Address))
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

// connectCommand returns the ssh invocation that reaches a server listening on addr.
func connectCommand(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "ssh " + addr
	}
	switch host {
	case "", "0.0.0.0", "::":
		host = "localhost"
	}
	if port == "22" {
		return "ssh " + host
	}
	return fmt.Sprintf("ssh %s -p %s", host, port)
}

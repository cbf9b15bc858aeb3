// crossing is a terminal bug crossing game: walk to the water, dodge the bugs.
//
// Usage:
//
//	crossing play            - Play a game in this terminal
//	crossing avatars         - List the selectable characters
//	crossing serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--config <path>       - Use a custom crossing.yaml
//	--difficulty <name>   - easy, normal or hard
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write logs of local play to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-crossing/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "crossing",
	Short: "Bug Crossing - walk to the water without getting bitten",
	Long: `Bug Crossing is a terminal take on the classic road crossing game.
Move your character up the board one step at a time, dodge the bugs
crawling along the stone lanes and score when you reach the water.

Available commands:
  play     - Play in this terminal
  avatars  - Show the selectable characters
  serve    - Start SSH server for remote play

Examples:
  crossing play
  crossing play --avatar "cat girl" --difficulty hard
  crossing play --pick
  crossing serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom crossing config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file for local play (logs are discarded if empty)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(avatarsCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadedConfig is the config with the difficulty flag applied, plus where it came from.
type loadedConfig struct {
	config.CrossingConfig
	Source string
	Preset config.DifficultyPreset
}

// FromFile reports whether the config was read from a file on disk.
func (c loadedConfig) FromFile() bool {
	return c.Source != config.SourceEmbedded && c.Source != config.SourceBuiltin
}

// loadConfig loads the crossing config and applies the difficulty flag.
func loadConfig(logger *log.Logger) (loadedConfig, error) {
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return loadedConfig{}, err
	}

	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return loadedConfig{}, err
	}
	config.ApplyPreset(&cfg, preset)

	logger.Debug("config loaded", "source", source, "difficulty", preset, "enemies", len(cfg.Enemies))
	return loadedConfig{CrossingConfig: cfg, Source: source, Preset: preset}, nil
}

// newLogger creates the process logger writing to w at the --log-level level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          prefix,
	}), nil
}

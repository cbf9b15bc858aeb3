package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/games/crossing"
	"github.com/vovakirdan/tui-crossing/internal/platform/tui"
	"github.com/vovakirdan/tui-crossing/internal/sprite"
)

var (
	flagAvatar string
	flagPick   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Arrows/WASD/HJKL  - Move one step
  P                 - Pause
  C                 - Choose avatar
  R                 - Restart (after game over)
  Esc/B             - Leave (while paused or after game over)
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Slower bugs, 5 lives
  normal - Default speeds, 3 lives
  hard   - Faster bugs, 2 lives

Examples:
  crossing play
  crossing play --avatar princess
  crossing play --pick --difficulty easy
  crossing play --config ./my-crossing.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagAvatar, "avatar", "", "Character to play as (see 'crossing avatars')")
	playCmd.Flags().BoolVar(&flagPick, "pick", false, "Open the avatar picker before the game starts")
}

func runPlay(cmd *cobra.Command, args []string) {
	if err := play(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// play runs a local game. Errors are returned so deferred cleanup runs.
func play() error {
	// The TUI owns the terminal, so logs only go to a file when asked.
	logOut, closeLog, err := openLogFile(flagLogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	logger, err := newLogger(logOut, "crossing")
	if err != nil {
		return err
	}

	game, atlas, err := newPlayGame(logger)
	if err != nil {
		return err
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	if err := tui.Run(game, cfg, tui.Options{
		Atlas:      atlas,
		Logger:     logger,
		PickAvatar: flagPick,
	}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// openLogFile opens path for appending. An empty path discards logs.
func openLogFile(path string) (io.Writer, func(), error) {
	if path == "" {
		return io.Discard, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, func() { f.Close() }, nil //nolint:errcheck // Nothing left to report to
}

// newPlayGame builds the game from the config and the --avatar flag.
func newPlayGame(logger *log.Logger) (*crossing.Game, *sprite.Atlas, error) {
	gameCfg, err := loadConfig(logger)
	if err != nil {
		return nil, nil, err
	}

	atlas := sprite.DefaultAtlas()
	game := crossing.New(gameCfg.CrossingConfig, atlas)

	if flagAvatar != "" {
		avatar, err := sprite.AvatarByName(flagAvatar)
		if err != nil {
			return nil, nil, fmt.Errorf("%w (run 'crossing avatars' to see available characters)", err)
		}
		game.SetAvatar(avatar)
	}
	return game, atlas, nil
}

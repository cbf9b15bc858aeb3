package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-crossing/internal/sprite"
)

// withPlayFlags restores the package-level flags after the test. HOME and the
// working directory point at empty dirs so the embedded config is used.
func withPlayFlags(t *testing.T, avatar string) {
	t.Helper()
	oldAvatar, oldConfig, oldDifficulty := flagAvatar, flagConfig, flagDifficulty
	t.Cleanup(func() {
		flagAvatar, flagConfig, flagDifficulty = oldAvatar, oldConfig, oldDifficulty
	})
	flagAvatar, flagConfig, flagDifficulty = avatar, "", ""

	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
}

func TestOpenLogFileCloses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crossing.log")

	w, closeLog, err := openLogFile(path)
	require.NoError(t, err)
	_, err = io.WriteString(w, "started\n")
	require.NoError(t, err)

	closeLog()

	_, err = io.WriteString(w, "after close\n")
	assert.ErrorIs(t, err, os.ErrClosed)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "started\n", string(data))
}

func TestOpenLogFileEmptyPathDiscards(t *testing.T) {
	w, closeLog, err := openLogFile("")
	require.NoError(t, err)
	defer closeLog()

	assert.Equal(t, io.Discard, w)
}

func TestOpenLogFileMissingDirectory(t *testing.T) {
	_, _, err := openLogFile(filepath.Join(t.TempDir(), "nope", "crossing.log"))
	assert.Error(t, err)
}

func TestNewPlayGameAvatarFlag(t *testing.T) {
	withPlayFlags(t, "cat-girl")

	game, atlas, err := newPlayGame(log.New(io.Discard))
	require.NoError(t, err)
	require.NotNil(t, atlas)
	assert.Equal(t, sprite.CharCatGirl, game.Avatar().Sprite)
}

func TestNewPlayGameUnknownAvatarReturnsError(t *testing.T) {
	withPlayFlags(t, "ghost")

	_, _, err := newPlayGame(log.New(io.Discard))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ghost")
	assert.Contains(t, err.Error(), "crossing avatars")
}

package tui

import (
	"io"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-crossing/internal/config"
	"github.com/vovakirdan/tui-crossing/internal/games/crossing"
	"github.com/vovakirdan/tui-crossing/internal/sprite"
)

func newTestServer(t *testing.T, pick bool) *SSHServer {
	t.Helper()
	atlas := sprite.DefaultAtlas()

	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "keys", "host_key")
	cfg.PickAvatar = pick

	srv, err := NewSSHServer(cfg, func() Game {
		return crossing.New(config.DefaultCrossingConfig(), atlas)
	}, atlas, log.New(io.Discard))
	require.NoError(t, err)
	return srv
}

func TestSessionsAreIndependent(t *testing.T) {
	srv := newTestServer(t, false)

	a := srv.sessionModel("alice", 80, 24)
	b := srv.sessionModel("bob", 80, 24)
	a.Init()
	b.Init()

	a, _ = send(t, a, tea.KeyMsg{Type: tea.KeyUp})
	a, _ = send(t, a, tick())

	assert.NotSame(t, a.game, b.game)
	assert.Equal(t, 390.0, a.game.(*crossing.Game).World().Player.Y)
	assert.Equal(t, 400.0, b.game.(*crossing.Game).World().Player.Y)
}

func TestSessionStartsAtPicker(t *testing.T) {
	srv := newTestServer(t, true)

	m := srv.sessionModel("carol", 80, 24)

	assert.True(t, m.PickerOpen())
	assert.Equal(t, 60, m.config.TickRate)
	assert.Equal(t, "127.0.0.1:0", srv.Addr())
}

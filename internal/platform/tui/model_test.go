package tui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-crossing/internal/config"
	"github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/games/crossing"
	"github.com/vovakirdan/tui-crossing/internal/sprite"
)

func newTestModel(t *testing.T, pick bool) (GameModel, *crossing.Game) {
	t.Helper()
	atlas := sprite.DefaultAtlas()
	game := crossing.New(config.DefaultCrossingConfig(), atlas)
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}

	m := NewGameModel(game, cfg, Options{Atlas: atlas, PickAvatar: pick})
	m.Init()
	return m, game
}

func send(t *testing.T, m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(GameModel)
	require.True(t, ok)
	return gm, cmd
}

func tick() tea.Msg {
	return TickMsg(time.Time{})
}

func TestModelMovesPlayerOnTick(t *testing.T) {
	m, game := newTestModel(t, false)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 400.0, game.World().Player.Y, "input waits for the tick")

	m, cmd := send(t, m, tick())
	assert.NotNil(t, cmd, "tick loop continues")
	assert.Equal(t, 390.0, game.World().Player.Y)

	send(t, m, tick())
	assert.Equal(t, 390.0, game.World().Player.Y, "frame was cleared")
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t, false)

	m, cmd := send(t, m, runeKey('q'))

	assert.True(t, m.IsQuitting())
	assert.NotNil(t, cmd)
	assert.Empty(t, m.View())
}

func TestModelBackOnlyWhenStopped(t *testing.T) {
	m, _ := newTestModel(t, false)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.IsQuitting(), "esc during play is ignored")

	m, _ = send(t, m, runeKey('p'))
	m, _ = send(t, m, tick())
	require.True(t, m.State().Paused)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, m.IsQuitting())
}

func TestModelPickerAtStart(t *testing.T) {
	m, game := newTestModel(t, true)
	require.True(t, m.PickerOpen())
	assert.Contains(t, m.View(), "CHOOSE YOUR CHARACTER")

	// Simulation is frozen while the picker is shown.
	m, _ = send(t, m, tick())
	assert.Equal(t, 0.0, game.World().Enemies[0].X)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, m.PickerOpen())
	assert.Equal(t, "Cat Girl", game.Avatar().Name)
	assert.Equal(t, sprite.CharCatGirl, game.World().Player.Sprite)

	send(t, m, tick())
	assert.Greater(t, game.World().Enemies[0].X, 0.0)
}

func TestModelPickerEscKeepsAvatar(t *testing.T) {
	m, game := newTestModel(t, false)

	m, _ = send(t, m, runeKey('c'))
	require.True(t, m.PickerOpen())

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.False(t, m.PickerOpen())
	assert.False(t, m.IsQuitting())
	assert.Equal(t, sprite.DefaultAvatar(), game.Avatar())
}

func TestModelRestartAfterGameOver(t *testing.T) {
	cfg := config.DefaultCrossingConfig()
	cfg.Enemies = []config.EnemyConfig{{Sprite: sprite.EnemyBug, X: 180, Y: 400}}
	game := crossing.New(cfg, sprite.DefaultAtlas())
	m := NewGameModel(game, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}, Options{})
	m.Init()

	for range 3 {
		m, _ = send(t, m, tick())
	}
	require.True(t, m.State().GameOver)
	assert.Contains(t, m.View(), "GAME OVER")

	m, _ = send(t, m, runeKey('r'))
	m, _ = send(t, m, tick())

	assert.False(t, m.State().GameOver)
	assert.Equal(t, 3, m.State().Lives)
}

func TestModelResizeKeepsGame(t *testing.T) {
	m, game := newTestModel(t, false)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = send(t, m, tick())

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	assert.Equal(t, 390.0, game.World().Player.Y)
	lines := strings.Split(m.View(), "\n")
	assert.Len(t, lines, 30)
}

func TestModelLogsMissingSpritesOnce(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	atlas := sprite.DefaultAtlas()
	gameCfg := config.DefaultCrossingConfig()
	gameCfg.Enemies[0].Sprite = "images/enemy-snail.png"
	game := crossing.New(gameCfg, atlas)

	m := NewGameModel(game, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}, Options{Atlas: atlas, Logger: logger})
	m.Init()

	m, _ = send(t, m, tick())
	assert.NotContains(t, buf.String(), "sprites without art", "nothing rendered yet")

	for i := 0; i < 3; i++ {
		m.View()
		m, _ = send(t, m, tick())
	}
	assert.Equal(t, 1, strings.Count(buf.String(), "sprites without art"))
	assert.Contains(t, buf.String(), "count=1")
}

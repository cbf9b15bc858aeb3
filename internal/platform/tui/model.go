package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/sprite"
)

// Options configures a GameModel.
type Options struct {
	Atlas      *sprite.Atlas // Art shown by the avatar picker; DefaultAtlas when nil
	Logger     *log.Logger   // Session events; discarded when nil
	PickAvatar bool          // Open the avatar picker before the first tick
}

// GameModel is the Bubble Tea model that runs one game.
// The avatar picker opens on top of it and freezes the simulation while shown.
type GameModel struct {
	game       Game
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	atlas      *sprite.Atlas
	logger     *log.Logger
	picker     *AvatarPicker
	quitting   bool
	reported   bool // Whether game over has been logged for the current game
	warned     bool // Whether missing sprites have been logged
}

// NewGameModel creates a new Bubble Tea model for the given game.
func NewGameModel(game Game, cfg core.RuntimeConfig, opts Options) GameModel {
	if opts.Atlas == nil {
		opts.Atlas = sprite.DefaultAtlas()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	m := GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		keyMapper:  NewKeyMapper(),
		atlas:      opts.Atlas,
		logger:     opts.Logger.With("game", game.ID()),
	}
	if opts.PickAvatar {
		m.openPicker()
	}
	return m
}

// Init initializes the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("game started", "avatar", m.game.Avatar().Name, "tick_rate", m.config.TickRate)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.picker != nil {
			return m.handlePickerKey(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The board has a fixed size, so a resize never resets the game.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		if m.picker != nil {
			p, _ := m.picker.Update(msg)
			picker := p.(AvatarPicker)
			m.picker = &picker
		}
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input during play.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keyMapper.Keys().Avatar) {
		m.openPicker()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// Back leaves the game only while it is stopped.
	if m.inputFrame.Has(core.ActionBack) && (m.gameState.GameOver || m.gameState.Paused) {
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handlePickerKey forwards keys to the open avatar picker.
func (m GameModel) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p, cmd := m.picker.Update(msg)
	picker := p.(AvatarPicker)

	if picker.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if a, ok := picker.Picked(); ok {
		m.game.SetAvatar(a)
		m.logger.Info("avatar changed", "avatar", a.Name)
	}

	if picker.Done() {
		m.picker = nil
		return m, cmd
	}

	m.picker = &picker
	return m, cmd
}

func (m *GameModel) openPicker() {
	p := NewAvatarPicker(m.atlas, m.game.Avatar(), m.config.ScreenW, m.config.ScreenH)
	m.picker = &p
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.picker != nil {
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.reported = false
		m.inputFrame.Clear()
		m.logger.Info("game restarted")
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if result.Hit {
		m.logger.Debug("player hit", "lives", result.State.Lives)
	}
	if result.Won {
		m.logger.Debug("player crossed", "score", result.State.Score)
	}
	if m.gameState.GameOver && !m.reported {
		m.logger.Info("game over", "score", m.gameState.Score)
		m.reported = true
	}

	// View renders between ticks, so this sees the previous frame.
	if n := m.game.MissingSprites(); n > 0 && !m.warned {
		m.logger.Debug("sprites without art", "count", n)
		m.warned = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	if m.picker != nil {
		return m.picker.View()
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the last observed game state.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// PickerOpen returns true while the avatar picker is shown.
func (m GameModel) PickerOpen() bool {
	return m.picker != nil
}

// IsQuitting returns true if user requested to quit.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program for a local game.
func Run(game Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewGameModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

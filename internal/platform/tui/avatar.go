package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-crossing/internal/sprite"
)

// AvatarPicker is the Bubble Tea model for choosing the player's character.
// Enter picks the highlighted avatar; Esc closes the panel without a change.
type AvatarPicker struct {
	avatars  []sprite.Avatar
	atlas    *sprite.Atlas
	current  sprite.Avatar
	table    table.Model
	help     help.Model
	keys     MenuKeyMap
	width    int
	height   int
	picked   *sprite.Avatar // Set when the user picks an avatar
	closed   bool           // True when the user closed the panel
	quitting bool
}

// NewAvatarPicker creates a picker with the cursor on the current avatar.
func NewAvatarPicker(atlas *sprite.Atlas, current sprite.Avatar, width, height int) AvatarPicker {
	h := help.New()
	h.ShowAll = false
	h.Width = width

	m := AvatarPicker{
		avatars: sprite.Avatars(),
		atlas:   atlas,
		current: current,
		help:    h,
		keys:    DefaultMenuKeyMap(),
		width:   width,
		height:  height,
	}
	m.table = m.createTable()

	for i, a := range m.avatars {
		if a.Sprite == current.Sprite {
			m.table.SetCursor(i)
			break
		}
	}

	return m
}

// createTable builds the avatar table. Navigation keys are handled by the
// picker, so the table only renders.
func (m *AvatarPicker) createTable() table.Model {
	columns := []table.Column{
		{Title: " ", Width: 2},
		{Title: "Avatar", Width: 12},
		{Title: "Look", Width: 8},
	}

	rows := make([]table.Row, len(m.avatars))
	for i, a := range m.avatars {
		mark := ""
		if a.Sprite == m.current.Sprite {
			mark = "✓"
		}
		rows[i] = table.Row{mark, a.Name, m.face(a)}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(len(rows)+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// face returns the first row of an avatar's art without padding.
func (m *AvatarPicker) face(a sprite.Avatar) string {
	s, err := m.atlas.Get(a.Sprite)
	if err != nil || len(s.Rows) == 0 {
		return "?"
	}
	return strings.TrimSpace(s.Rows[0])
}

// Init initializes the picker.
func (m AvatarPicker) Init() tea.Cmd {
	return nil
}

// Update handles messages for the picker.
func (m AvatarPicker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

func (m AvatarPicker) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch MapKeyToMenuAction(m.keys, msg) {
	case MenuActionQuit:
		m.quitting = true

	case MenuActionUp:
		m.table.MoveUp(1)

	case MenuActionDown:
		m.table.MoveDown(1)

	case MenuActionSelect:
		if c := m.table.Cursor(); c >= 0 && c < len(m.avatars) {
			picked := m.avatars[c]
			m.picked = &picked
		}

	case MenuActionBack:
		m.closed = true
	}

	return m, nil
}

// View renders the picker.
func (m AvatarPicker) View() string {
	if m.quitting || m.Done() {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("CHOOSE YOUR CHARACTER", m.width)))
	b.WriteString("\n")

	panel := lipgloss.JoinHorizontal(lipgloss.Top,
		m.table.View(),
		"   ",
		m.preview(),
	)
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, panel))
	b.WriteString("\n\n")

	b.WriteString(centerText(m.help.View(m.keys), m.width))
	b.WriteString("\n")

	return b.String()
}

// preview draws the full art of the highlighted avatar in its own color.
func (m AvatarPicker) preview() string {
	c := m.table.Cursor()
	if c < 0 || c >= len(m.avatars) {
		return ""
	}
	s, err := m.atlas.Get(m.avatars[c].Sprite)
	if err != nil {
		return ""
	}

	style, ok := colorStyles[s.Color]
	if !ok {
		style = lipgloss.NewStyle()
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(1, 2)

	return box.Render(style.Render(strings.Join(s.Rows, "\n")))
}

// Cursor returns the index of the highlighted avatar.
func (m AvatarPicker) Cursor() int {
	return m.table.Cursor()
}

// Picked returns the chosen avatar, if any.
func (m AvatarPicker) Picked() (sprite.Avatar, bool) {
	if m.picked == nil {
		return sprite.Avatar{}, false
	}
	return *m.picked, true
}

// Closed returns true if the user closed the panel without choosing.
func (m AvatarPicker) Closed() bool {
	return m.closed
}

// Done returns true once the picker has a result or was closed.
func (m AvatarPicker) Done() bool {
	return m.picked != nil || m.closed
}

// IsQuitting returns true if user requested to quit.
func (m AvatarPicker) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

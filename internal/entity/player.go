package entity

// Default player tuning.
const (
	DefaultLives     = 3
	DefaultStep      = 10 // Pixels moved per key press
	DefaultWinPoints = 10 // Points for reaching the top row
)

// PlayerOptions tunes lives, step size and scoring. Zero fields use defaults.
type PlayerOptions struct {
	Lives     int
	Step      int
	WinPoints int
}

func (o PlayerOptions) withDefaults() PlayerOptions {
	if o.Lives <= 0 {
		o.Lives = DefaultLives
	}
	if o.Step <= 0 {
		o.Step = DefaultStep
	}
	if o.WinPoints <= 0 {
		o.WinPoints = DefaultWinPoints
	}
	return o
}

// Player is the keyboard-driven entity. It buffers at most one pending move.
type Player struct {
	Entity

	lives     int
	score     int
	moveDelta int  // Pending move, 0 when nothing is buffered
	moveX     bool // Pending move applies to x (true) or y (false)
	step      int
	winPoints int
}

// NewPlayer creates a player with full lives and zero score.
func NewPlayer(sprite string, x, y float64, size Size, bounds Bounds, opts PlayerOptions) *Player {
	opts = opts.withDefaults()
	return &Player{
		Entity:    New(sprite, x, y, size, bounds),
		lives:     opts.Lives,
		step:      opts.Step,
		winPoints: opts.WinPoints,
	}
}

// HandleInput buffers a move in the given direction, replacing any move
// not yet consumed by Update. DirectionNone is ignored.
func (p *Player) HandleInput(d Direction) {
	switch d {
	case DirectionLeft:
		p.moveDelta, p.moveX = -p.step, true
	case DirectionRight:
		p.moveDelta, p.moveX = p.step, true
	case DirectionUp:
		p.moveDelta, p.moveX = -p.step, false
	case DirectionDown:
		p.moveDelta, p.moveX = p.step, false
	}
}

// Pending returns the buffered move delta and whether it applies to x.
func (p *Player) Pending() (delta int, onX bool) {
	return p.moveDelta, p.moveX
}

// Update applies the pending move if the new position stays on the board,
// otherwise drops it. The pending move is cleared either way.
func (p *Player) Update() {
	if p.moveDelta != 0 {
		delta := float64(p.moveDelta)
		if p.moveX {
			if x := p.X + delta; x >= 0 && x <= p.bounds.MaxX-p.size.W {
				p.X = x
			}
		} else {
			if y := p.Y + delta; y >= 0 && y <= p.bounds.MaxY-p.size.H {
				p.Y = y
			}
		}
	}
	p.moveDelta = 0
}

// Win awards points and returns true when the player has reached the top row.
func (p *Player) Win() bool {
	if p.Y <= 0 {
		p.score += p.winPoints
		return true
	}
	return false
}

// Kill takes one life. It returns false when there were no lives left.
func (p *Player) Kill() bool {
	if p.lives > 0 {
		p.lives--
		return true
	}
	return false
}

// Alive reports whether the player has lives left.
func (p *Player) Alive() bool {
	return p.lives > 0
}

// Lives returns the number of lives left.
func (p *Player) Lives() int {
	return p.lives
}

// Score returns the points collected so far.
func (p *Player) Score() int {
	return p.score
}

// SetSprite changes the avatar drawn for the player.
func (p *Player) SetSprite(sprite string) {
	p.Sprite = sprite
}

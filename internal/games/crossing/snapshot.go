package crossing

import "math"

// Snapshot contains the complete game state for replay and determinism checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick     uint64
	Score    int
	Lives    int
	Hits     int
	Wins     int
	GameOver bool
	Paused   bool

	PlayerSprite string
	PlayerX      float64
	PlayerY      float64
	PendingMove  int  // Buffered move delta, 0 when none
	PendingOnX   bool // Buffered move applies to x

	// Enemy positions in config order
	EnemyX []float64
	EnemyY []float64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	p := g.world.Player
	delta, onX := p.Pending()

	enemyX := make([]float64, len(g.world.Enemies))
	enemyY := make([]float64, len(g.world.Enemies))
	for i, e := range g.world.Enemies {
		enemyX[i] = e.X
		enemyY[i] = e.Y
	}

	return Snapshot{
		Tick:     uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		Score:    p.Score(),
		Lives:    p.Lives(),
		Hits:     g.hits,
		Wins:     g.wins,
		GameOver: g.gameOver,
		Paused:   g.paused,

		PlayerSprite: p.Sprite,
		PlayerX:      p.X,
		PlayerY:      p.Y,
		PendingMove:  delta,
		PendingOnX:   onX,

		EnemyX: enemyX,
		EnemyY: enemyY,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
// The player sprite is cosmetic and not hashed.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Hits)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Wins)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PendingMove) //#nosec G115 -- hash computation
	h = h*31 + boolBits(snap.GameOver)
	h = h*31 + boolBits(snap.Paused)
	h = h*31 + boolBits(snap.PendingOnX)
	h = h*31 + math.Float64bits(snap.PlayerX)
	h = h*31 + math.Float64bits(snap.PlayerY)

	for _, v := range snap.EnemyX {
		h = h*31 + math.Float64bits(v)
	}

	for _, v := range snap.EnemyY {
		h = h*31 + math.Float64bits(v)
	}

	return h
}

func boolBits(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

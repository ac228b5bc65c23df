package invaders

// Game status strings, derived from the flags for snapshots and tests.
const (
	StatePlaying  = "playing"
	StatePaused   = "paused"
	StateGameOver = "game_over"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick          uint64
	Score         int
	HighScore     int
	Lives         int
	Wave          int
	PlayerX       float64
	AlienCount    int
	FirstAlienX   float64
	FirstAlienY   float64
	AlienDir      float64
	AlienSpeed    float64
	FireChance    float64
	PlayerBullets int
	AlienBullets  int
	ShootCooldown int
	InvulnTicks   int
	State         string
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	firstX, firstY := 0.0, 0.0
	if len(g.aliens) > 0 {
		firstX = g.aliens[0].X
		firstY = g.aliens[0].Y
	}

	return Snapshot{
		Tick:          g.tick,
		Score:         g.score,
		HighScore:     g.highScore,
		Lives:         g.lives,
		Wave:          g.wave,
		PlayerX:       g.player.X,
		AlienCount:    len(g.aliens),
		FirstAlienX:   firstX,
		FirstAlienY:   firstY,
		AlienDir:      g.alienDir,
		AlienSpeed:    g.alienSpeed,
		FireChance:    g.fireChance,
		PlayerBullets: len(g.playerBullets),
		AlienBullets:  len(g.alienBullets),
		ShootCooldown: g.shootCooldown,
		InvulnTicks:   g.invulnTicks,
		State:         state,
	}
}

package invaders

import (
	"math/rand"

	"github.com/dperique/invaders/internal/core"
	"github.com/dperique/invaders/internal/options"
)

// GameID is the identifier used for storage keys.
const GameID = "invaders"

// ScoreKeeper is the game's view of high score persistence. RecordHighScore
// is best-effort: implementations swallow or log failures so a broken disk
// never stops the tick loop.
type ScoreKeeper interface {
	// HighScore returns the best score ever recorded, 0 if none.
	HighScore() int
	// RecordHighScore persists a new best score.
	RecordHighScore(score int)
}

// Game implements the Space Invaders game logic.
type Game struct {
	runtime core.RuntimeConfig
	rng     *rand.Rand

	// Wiring, set once before the first Reset.
	scores      ScoreKeeper
	optionsPath string

	// Entities.
	player        Entity
	playerBullets []Entity
	aliens        []Entity
	alienBullets  []Entity

	// Formation movement.
	alienDir   float64 // +1 right, -1 left
	alienSpeed float64 // units per tick, grows per wave
	fireChance float64 // per-alien chance per second, grows per wave

	// Options captured at the last reset. Edits to the options file take
	// effect on the next reset, never mid-run.
	missileSpeed   float64
	speedIncrement float64

	// Scoring and progress.
	score     int
	highScore int
	lives     int
	wave      int

	tick          uint64
	shootCooldown int
	invulnTicks   int

	invulnerable bool
	paused       bool
	gameOver     bool
}

// New creates a new game instance. Call Reset before the first Step.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Space Invaders"
}

// SetOptionsPath sets an explicit options file for the next Reset to load
// instead of the default search path.
func (g *Game) SetOptionsPath(path string) {
	g.optionsPath = path
}

// SetScoreKeeper wires high score persistence. A nil keeper means the high
// score starts at 0 and lives only for this session.
func (g *Game) SetScoreKeeper(keeper ScoreKeeper) {
	g.scores = keeper
}

// Reset initializes or restarts the game: fresh formation, full lives,
// score 0. Options are re-read here and the persisted high score is loaded;
// neither is touched by the reset itself.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	opts, err := options.Load(g.optionsPath)
	if err != nil {
		opts = options.Default()
	}
	g.missileSpeed = opts.MissileSpeed
	g.speedIncrement = opts.InvaderSpeedIncrement

	g.player = NewPlayer()
	g.playerBullets = nil
	g.alienBullets = nil
	g.aliens = NewFormation()

	g.alienDir = 1
	g.alienSpeed = AlienBaseSpeed
	g.fireChance = BaseFireChance

	g.score = 0
	g.lives = opts.Lives
	g.wave = 1

	g.highScore = 0
	if g.scores != nil {
		g.highScore = g.scores.HighScore()
	}

	g.tick = 0
	g.shootCooldown = 0
	g.invulnTicks = 0
	g.invulnerable = false
	g.paused = false
	g.gameOver = false
}

// Step advances the game by one tick. On game over the state is terminal:
// nothing moves until a restart input resets the game.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) && g.gameOver {
		// Draw the next seed from the current stream so a restarted run
		// differs from the last one but the whole session stays
		// reproducible from the original seed.
		next := g.runtime
		next.Seed = g.rng.Int63()
		g.Reset(next)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	if g.paused || g.gameOver {
		return core.StepResult{State: g.State()}
	}

	g.tick++

	g.updateInvulnerability()
	g.movePlayer(in)
	g.handleShooting(in)
	g.advanceBullets()
	g.moveAliens()
	g.alienFire()
	g.resolveCollisions()
	g.maybeAdvanceWave()

	return core.StepResult{State: g.State()}
}

// updateInvulnerability counts down the post-hit grace period. When the
// timer reaches 0 the flag clears on the same tick, so collisions apply
// again immediately.
func (g *Game) updateInvulnerability() {
	if !g.invulnerable {
		return
	}
	g.invulnTicks--
	if g.invulnTicks <= 0 {
		g.invulnTicks = 0
		g.invulnerable = false
	}
}

// movePlayer applies horizontal input. A move that would put any part of
// the ship outside the field is discarded entirely, not clamped.
func (g *Game) movePlayer(in core.InputFrame) {
	dx := 0.0
	if in.Has(core.ActionLeft) {
		dx -= PlayerSpeed
	}
	if in.Has(core.ActionRight) {
		dx += PlayerSpeed
	}
	if dx == 0 {
		return
	}

	nx := g.player.X + dx
	if nx < 0 || nx+g.player.W > FieldW {
		return
	}
	g.player.X = nx
}

// handleShooting fires a missile when allowed and runs the cooldown. A
// shot needs a free bullet slot and a cold gun; the cooldown ticks down
// once per tick whether or not the player is shooting.
func (g *Game) handleShooting(in core.InputFrame) {
	if in.Has(core.ActionShoot) && g.shootCooldown == 0 && len(g.playerBullets) < MaxPlayerBullets {
		x := g.player.X + g.player.W/2
		g.playerBullets = append(g.playerBullets, NewPlayerBullet(x, g.player.Y, g.missileSpeed))
		g.shootCooldown = ShootCooldownTicks
	}
	if g.shootCooldown > 0 {
		g.shootCooldown--
	}
}

// advanceBullets moves every bullet by its velocity and drops the ones
// that left the field: missiles past the top, bombs past the bottom.
func (g *Game) advanceBullets() {
	missiles := g.playerBullets[:0]
	for i := range g.playerBullets {
		b := g.playerBullets[i]
		b.Advance()
		if b.Y < 0 {
			continue
		}
		missiles = append(missiles, b)
	}
	g.playerBullets = missiles

	bombs := g.alienBullets[:0]
	for i := range g.alienBullets {
		b := g.alienBullets[i]
		b.Advance()
		if b.Y > FieldH {
			continue
		}
		bombs = append(bombs, b)
	}
	g.alienBullets = bombs
}

// moveAliens moves the formation as one body. If any alien sits at the
// field edge on the side it is heading for, the whole formation reverses
// and descends this tick instead of moving sideways.
func (g *Game) moveAliens() {
	if len(g.aliens) == 0 {
		return
	}

	atEdge := false
	for i := range g.aliens {
		a := &g.aliens[i]
		if (g.alienDir > 0 && a.X+a.W >= FieldW) || (g.alienDir < 0 && a.X <= 0) {
			atEdge = true
			break
		}
	}

	if atEdge {
		g.alienDir = -g.alienDir
		for i := range g.aliens {
			g.aliens[i].Y += AlienDescent
		}
		return
	}

	for i := range g.aliens {
		g.aliens[i].X += g.alienDir * g.alienSpeed
	}
}

// alienFire gives every alien an independent chance to drop a bomb. The
// configured chance is per second, so it is spread across the tick rate.
func (g *Game) alienFire() {
	perTick := g.fireChance / float64(g.runtime.TickRate)
	for i := range g.aliens {
		if g.rng.Float64() < perTick {
			a := g.aliens[i]
			g.alienBullets = append(g.alienBullets, NewAlienBullet(a.X+a.W/2, a.Y+a.H))
		}
	}
}

// resolveCollisions settles this tick's contacts: missiles against aliens
// first, then everything that can hurt the player.
func (g *Game) resolveCollisions() {
	g.collideMissiles()
	if !g.invulnerable {
		g.collidePlayer()
	}
}

// collideMissiles tests each missile against the remaining aliens. A hit
// removes both immediately, so one missile never kills two aliens and a
// dead alien cannot absorb a second missile.
func (g *Game) collideMissiles() {
	surviving := g.playerBullets[:0]
	for i := range g.playerBullets {
		b := g.playerBullets[i]
		hit := -1
		for j := range g.aliens {
			if b.Intersects(g.aliens[j].Box) {
				hit = j
				break
			}
		}
		if hit >= 0 {
			g.aliens = append(g.aliens[:hit], g.aliens[hit+1:]...)
			g.addScore(PointsPerKill)
			continue
		}
		surviving = append(surviving, b)
	}
	g.playerBullets = surviving
}

// collidePlayer checks the two ways the player gets hit: an alien reaching
// the player's row (or touching the ship), or a bomb touching the ship.
// The first hit ends the check; at most one life is lost per tick.
func (g *Game) collidePlayer() {
	for i := range g.aliens {
		a := g.aliens[i]
		// An alien whose bottom reaches the ship's row has invaded,
		// whatever its column. Direct contact counts as well.
		if a.Y+a.H >= g.player.Y || a.Intersects(g.player.Box) {
			g.hitPlayer()
			return
		}
	}

	for i := range g.alienBullets {
		if g.alienBullets[i].Intersects(g.player.Box) {
			g.alienBullets = append(g.alienBullets[:i], g.alienBullets[i+1:]...)
			g.hitPlayer()
			return
		}
	}
}

// hitPlayer takes a life. With lives left the ship recenters and gets a
// grace period; otherwise the game ends.
func (g *Game) hitPlayer() {
	g.lives--
	if g.lives <= 0 {
		g.lives = 0
		g.gameOver = true
		return
	}
	g.player.X = PlayerStartX
	g.invulnerable = true
	g.invulnTicks = InvulnDuration
}

// addScore adds points and pushes a new best through the keeper the moment
// the old record is beaten, not at game over.
func (g *Game) addScore(points int) {
	g.score += points
	if g.score > g.highScore {
		g.highScore = g.score
		if g.scores != nil {
			g.scores.RecordHighScore(g.highScore)
		}
	}
}

// maybeAdvanceWave starts the next wave once the field is clear: a faster,
// more trigger-happy formation and both bullet collections emptied.
func (g *Game) maybeAdvanceWave() {
	if len(g.aliens) != 0 {
		return
	}

	g.wave++
	g.alienSpeed *= g.speedIncrement
	g.fireChance += FireChanceGrowth
	g.aliens = NewFormation()
	g.alienDir = 1
	g.playerBullets = g.playerBullets[:0]
	g.alienBullets = g.alienBullets[:0]
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.score,
		HighScore: g.highScore,
		Lives:     g.lives,
		Wave:      g.wave,
		GameOver:  g.gameOver,
		Paused:    g.paused,
	}
}

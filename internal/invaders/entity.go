// Package invaders implements the Space Invaders game logic: a fixed-step
// simulation of one player ship against descending alien waves. The package
// is pure state and math; drawing goes through core.Screen and persistence
// through the ScoreKeeper interface, so the logic runs identically under the
// local TUI, an SSH session, or a test.
package invaders

// The simulation runs in a fixed 800x600 logical space regardless of
// terminal size; rendering projects it onto whatever cells are available.
const (
	FieldW = 800.0
	FieldH = 600.0
)

// Player ship dimensions and movement.
const (
	PlayerW      = 40.0
	PlayerH      = 30.0
	PlayerSpeed  = 8.0 // units per move input
	PlayerStartX = 400.0
	PlayerY      = 540.0
)

// Alien formation layout and movement.
const (
	AlienW          = 30.0
	AlienH          = 30.0
	AlienBaseSpeed  = 2.0 // units per tick at wave 1
	AlienDescent    = 20.0
	FormationRows   = 5
	FormationCols   = 10
	FormationLeft   = 50.0
	FormationTop    = 50.0
	FormationColGap = 70.0
	FormationRowGap = 50.0
)

// Projectiles.
const (
	BulletW          = 5.0
	BulletH          = 10.0
	AlienBulletSpeed = 5.0 // units per tick, downward
)

// Gameplay tuning.
const (
	BaseFireChance     = 0.02  // per-alien fire probability per second
	FireChanceGrowth   = 0.002 // added per cleared wave
	MaxPlayerBullets   = 10
	ShootCooldownTicks = 10
	InvulnDuration     = 120 // ticks of grace after losing a life
	PointsPerKill      = 100
)

// Kind tags what an entity is. Movement and collision policy live in the
// game loop keyed by kind; the data shape is the same for everything.
type Kind int

const (
	KindPlayer Kind = iota
	KindAlien
	KindPlayerBullet
	KindAlienBullet
)

// Box is an axis-aligned rectangle in logical field coordinates.
type Box struct {
	X, Y float64 // top-left corner
	W, H float64
}

// Intersects reports whether two boxes overlap. Touching edges do not count.
func (b Box) Intersects(o Box) bool {
	return b.X < o.X+o.W && b.X+b.W > o.X &&
		b.Y < o.Y+o.H && b.Y+b.H > o.Y
}

// Entity is anything on the field: the player ship, an alien, or a bullet.
// Its box is both its logical position and its collision shape; the
// renderer derives draw rectangles from it.
type Entity struct {
	Kind Kind
	Box
	VY float64 // vertical velocity, used by bullets
}

// Advance applies one tick of the entity's own velocity.
func (e *Entity) Advance() {
	e.Y += e.VY
}

// NewPlayer returns the ship at its spawn position.
func NewPlayer() Entity {
	return Entity{
		Kind: KindPlayer,
		Box:  Box{X: PlayerStartX, Y: PlayerY, W: PlayerW, H: PlayerH},
	}
}

// NewAlien returns an alien at the given position.
func NewAlien(x, y float64) Entity {
	return Entity{
		Kind: KindAlien,
		Box:  Box{X: x, Y: y, W: AlienW, H: AlienH},
	}
}

// NewPlayerBullet returns a missile moving up at the given speed. The x
// coordinate is the player's horizontal center.
func NewPlayerBullet(x, y, speed float64) Entity {
	return Entity{
		Kind: KindPlayerBullet,
		Box:  Box{X: x, Y: y, W: BulletW, H: BulletH},
		VY:   -speed,
	}
}

// NewAlienBullet returns a bomb moving down from an alien's bottom center.
func NewAlienBullet(x, y float64) Entity {
	return Entity{
		Kind: KindAlienBullet,
		Box:  Box{X: x, Y: y, W: BulletW, H: BulletH},
		VY:   AlienBulletSpeed,
	}
}

// NewFormation builds a fresh wave: FormationRows x FormationCols aliens
// laid out on a fixed grid from the top-left anchor, row-major.
func NewFormation() []Entity {
	aliens := make([]Entity, 0, FormationRows*FormationCols)
	for row := 0; row < FormationRows; row++ {
		for col := 0; col < FormationCols; col++ {
			x := FormationLeft + float64(col)*FormationColGap
			y := FormationTop + float64(row)*FormationRowGap
			aliens = append(aliens, NewAlien(x, y))
		}
	}
	return aliens
}

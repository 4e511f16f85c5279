package shooter

// Event is something notable that happened during a tick. Frontends drain
// events after every tick, mostly for logging.
type Event interface {
	shooterEvent()
}

// LossReason says which loss trigger ended a run.
type LossReason int

const (
	LossNone   LossReason = iota // still playing
	LossLives                    // an enemy reached the bottom with no lives left
	LossHealth                   // the player ship was destroyed
)

func (r LossReason) String() string {
	switch r {
	case LossLives:
		return "lives"
	case LossHealth:
		return "health"
	default:
		return "none"
	}
}

// HitSource says what damaged the player.
type HitSource int

const (
	HitLaser HitSource = iota // enemy projectile
	HitRam                    // direct contact with an enemy ship
)

func (s HitSource) String() string {
	if s == HitRam {
		return "ram"
	}
	return "laser"
}

// RunStartedEvent is emitted when the menu hands over to a new run.
type RunStartedEvent struct{}

func (RunStartedEvent) shooterEvent() {}

// WaveStartedEvent is emitted when a new wave spawns.
type WaveStartedEvent struct {
	Level  int
	Length int
}

func (WaveStartedEvent) shooterEvent() {}

// EnemyDestroyedEvent is emitted when a player laser removes an enemy.
type EnemyDestroyedEvent struct {
	Variant Variant
	X, Y    int
	Kills   int // kills so far in this run
}

func (EnemyDestroyedEvent) shooterEvent() {}

// PlayerHitEvent is emitted when the player takes damage.
type PlayerHitEvent struct {
	Source HitSource
	Damage int
	Health int // health after the hit
}

func (PlayerHitEvent) shooterEvent() {}

// EnemyEscapedEvent is emitted when an enemy passes the bottom edge.
type EnemyEscapedEvent struct {
	Variant Variant
	Lives   int // lives left after the escape
}

func (EnemyEscapedEvent) shooterEvent() {}

// GameLostEvent is emitted once when the run enters the lost state.
type GameLostEvent struct {
	Reason LossReason
	Level  int
	Kills  int
}

func (GameLostEvent) shooterEvent() {}

// RunEndedEvent is emitted when a session terminates.
type RunEndedEvent struct {
	Result    RunResult
	Completed bool // false when the player quit
}

func (RunEndedEvent) shooterEvent() {}

// PausedEvent is emitted when pause is toggled.
type PausedEvent struct {
	Paused bool
}

func (PausedEvent) shooterEvent() {}

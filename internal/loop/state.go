package loop

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/rocketdodge/internal/difficulty"
	"github.com/tomz197/rocketdodge/internal/logging"
	"github.com/tomz197/rocketdodge/internal/object"
	"github.com/tomz197/rocketdodge/internal/physics"
	"github.com/tomz197/rocketdodge/internal/schedule"
)

// GameState represents the current game phase.
type GameState int

const (
	GameStatePlaying GameState = iota // Player alive, gameplay timers armed
	GameStateOver                     // Player dead, waiting for reset
)

// String returns a short name for logging.
func (s GameState) String() string {
	if s == GameStateOver {
		return "over"
	}
	return "playing"
}

// Game holds the whole simulation: every live object in spawn order plus the
// timers and difficulty that drive them. It is not safe for concurrent use.
type Game struct {
	Objects    []object.Object
	toSpawn    []object.Object // Objects to add before the next update pass
	Screen     object.Screen
	Player     *object.Player
	GameState  GameState
	Difficulty difficulty.State
	Scheduler  *schedule.Scheduler
	ShowFPS    bool
	Running    bool

	scoreText           object.Text
	fpsSamples          []int
	screenshotRequested bool
	delta               time.Duration

	rng    *rand.Rand
	logger *log.Logger

	frame     object.Frame
	grid      *physics.SpatialGrid
	asteroids []*object.Asteroid
}

// Option configures a Game.
type Option func(*Game)

// WithRand makes spawning deterministic.
func WithRand(rng *rand.Rand) Option {
	return func(g *Game) {
		g.rng = rng
	}
}

// WithLogger sets where game events are logged.
func WithLogger(logger *log.Logger) Option {
	return func(g *Game) {
		g.logger = logger
	}
}

// NewGame creates a game in the playing state on a screen of the given size.
func NewGame(screen object.Screen, opts ...Option) *Game {
	g := &Game{
		Screen:    screen,
		Scheduler: schedule.NewScheduler(),
		Running:   true,
		grid:      physics.NewSpatialGrid(float64(screen.Width), float64(screen.Height), gridCellSize),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if g.logger == nil {
		g.logger = logging.Discard()
	}

	g.startPlaying()
	return g
}

// Spawn queues an object to be added before the next update pass.
// Implements object.Spawner interface.
func (g *Game) Spawn(obj object.Object) {
	g.toSpawn = append(g.toSpawn, obj)
}

// FlushSpawned adds all queued objects to the game and clears the queue.
func (g *Game) FlushSpawned() {
	g.Objects = append(g.Objects, g.toSpawn...)
	clear(g.toSpawn)
	g.toSpawn = g.toSpawn[:0]
}

// Score returns the current player's score.
func (g *Game) Score() int {
	if g.Player == nil {
		return 0
	}
	return g.Player.Score
}

// UpdateContext creates an UpdateContext from the current state.
func (g *Game) UpdateContext(in object.Input) object.UpdateContext {
	return object.UpdateContext{
		Delta:  g.delta,
		Input:  in,
		Screen: g.Screen,
		Player: g.Player,
	}
}

// startPlaying creates a fresh player and arms the gameplay timers.
func (g *Game) startPlaying() {
	g.Difficulty.Reset()
	g.Scheduler.Arm()

	g.Player = object.NewPlayer(g.Screen)
	g.Spawn(g.Player)
	g.FlushSpawned()

	g.scoreText = object.Text{}.PlaceCentered(float64(g.Screen.Width)/2, scoreTextTop)
	g.GameState = GameStatePlaying
}

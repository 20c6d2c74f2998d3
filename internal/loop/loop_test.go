package loop

import (
	"bufio"
	"bytes"
	"math"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/tomz197/rocketdodge/internal/difficulty"
	"github.com/tomz197/rocketdodge/internal/object"
)

const frame50 = 50 * time.Millisecond

func newTestGame() *Game {
	return NewGame(object.NewScreen(600, 800), WithRand(rand.New(rand.NewSource(1))))
}

func countObjects(g *Game) (asteroids, stars int) {
	for _, obj := range g.Objects {
		switch obj.(type) {
		case *object.Asteroid:
			asteroids++
		case *object.Star:
			stars++
		}
	}
	return asteroids, stars
}

// collide places an asteroid on top of the player and steps once.
func collide(g *Game) {
	cx, cy := g.Player.Rect.Center()
	g.Spawn(object.NewAsteroid(cx, cy, object.AsteroidSmall, 5, g.rng))
	g.Step(0, object.Input{}, 60)
}

func TestNewGameStartsPlaying(t *testing.T) {
	g := newTestGame()

	if g.GameState != GameStatePlaying || !g.Running {
		t.Fatalf("new game state = %v, running = %v", g.GameState, g.Running)
	}
	if len(g.Objects) != 1 || g.Objects[0] != g.Player {
		t.Fatalf("new game objects = %v, want just the player", g.Objects)
	}
	if got := g.Scheduler.Asteroid.Interval(); got != 250*time.Millisecond {
		t.Fatalf("asteroid interval = %v, want 250ms", got)
	}
	if got := g.Difficulty.Time(); got != 1.0 {
		t.Fatalf("difficulty time = %v, want 1.0", got)
	}
}

func TestStepSpawnsOnTimers(t *testing.T) {
	g := newTestGame()
	for i := 0; i < 10; i++ {
		g.Step(frame50, object.Input{}, 60)
	}

	asteroids, stars := countObjects(g)
	if asteroids != 2 {
		t.Fatalf("asteroids after 500ms = %d, want 2", asteroids)
	}
	if stars != 2 {
		t.Fatalf("stars after 500ms = %d, want 2", stars)
	}
}

func TestDifficultyTickShortensAsteroidInterval(t *testing.T) {
	g := newTestGame()
	for i := 0; i < 20; i++ {
		g.Step(frame50, object.Input{}, 60)
	}

	if got := g.Difficulty.Ticks(); got != 1 {
		t.Fatalf("difficulty ticks after 1s = %d, want 1", got)
	}
	if got, want := g.Scheduler.Asteroid.Interval(), difficulty.AsteroidInterval(1); got != want {
		t.Fatalf("asteroid interval = %v, want %v", got, want)
	}
	if got := g.Difficulty.AsteroidSpeed(); math.Abs(got-5.5) > 1e-9 {
		t.Fatalf("asteroid speed = %v, want 5.5", got)
	}
}

func TestCollisionEndsGame(t *testing.T) {
	g := newTestGame()
	collide(g)

	if g.GameState != GameStateOver {
		t.Fatalf("state after collision = %v, want over", g.GameState)
	}
	if g.Player.Alive {
		t.Fatal("player alive after collision")
	}
	if g.Scheduler.Asteroid.Active() || g.Scheduler.Difficulty.Active() {
		t.Fatal("gameplay timers still armed after collision")
	}
	if !g.Scheduler.Star.Active() {
		t.Fatal("star timer stopped after collision")
	}
	if g.scoreText.X != 300 || g.scoreText.Y != 400 {
		t.Fatalf("score text at (%v, %v), want screen centre", g.scoreText.X, g.scoreText.Y)
	}

	// The colliding asteroid and the dead player are gone on the next update,
	// without scoring.
	frame := g.Step(0, object.Input{}, 60)
	if asteroids, _ := countObjects(g); asteroids != 0 {
		t.Fatalf("asteroids after collision = %d, want 0", asteroids)
	}
	for _, obj := range g.Objects {
		if obj == g.Player {
			t.Fatal("dead player still in the object list")
		}
	}
	if g.Score() != 0 {
		t.Fatalf("score after collision = %d, want 0", g.Score())
	}
	if !frame.GameOver {
		t.Fatal("frame not flagged as game over")
	}
}

func TestGameOverStopsAsteroidsButNotStars(t *testing.T) {
	g := newTestGame()
	collide(g)

	for i := 0; i < 40; i++ {
		g.Step(frame50, object.Input{}, 60)
	}
	asteroids, stars := countObjects(g)
	if asteroids != 0 {
		t.Fatalf("asteroids spawned after game over: %d", asteroids)
	}
	if stars == 0 {
		t.Fatal("no stars spawned after game over")
	}
	if g.Difficulty.Ticks() != 0 {
		t.Fatalf("difficulty ticked after game over: %d", g.Difficulty.Ticks())
	}
}

func TestResetStartsFreshGame(t *testing.T) {
	g := newTestGame()
	for i := 0; i < 30; i++ {
		g.Step(frame50, object.Input{}, 60)
	}
	g.Player.Score = 7
	collide(g)

	oldPlayer := g.Player
	g.Step(0, object.Input{Reset: true}, 60)

	if g.GameState != GameStatePlaying {
		t.Fatalf("state after reset = %v, want playing", g.GameState)
	}
	if g.Player == oldPlayer || !g.Player.Alive {
		t.Fatal("reset did not create a new live player")
	}
	if g.Score() != 0 {
		t.Fatalf("score after reset = %d, want 0", g.Score())
	}
	if g.Difficulty.Time() != 1.0 {
		t.Fatalf("difficulty after reset = %v, want 1.0", g.Difficulty.Time())
	}
	if len(g.Objects) != 1 || g.Objects[0] != g.Player {
		t.Fatalf("objects after reset = %d, want just the player", len(g.Objects))
	}
	if g.Scheduler.Asteroid.Interval() != 250*time.Millisecond || !g.Scheduler.Difficulty.Active() {
		t.Fatal("gameplay timers not re-armed by reset")
	}
	if g.scoreText.X != 300 || g.scoreText.Y != scoreTextTop {
		t.Fatalf("score text at (%v, %v) after reset", g.scoreText.X, g.scoreText.Y)
	}
}

func TestScoreTextLagsOneFrame(t *testing.T) {
	g := newTestGame()
	// Far from the player, and one step away from leaving the screen.
	a := object.NewAsteroid(50, 0, object.AsteroidSmall, 5, g.rng)
	a.Rect.Y = 797
	g.Spawn(a)

	first := g.Step(0, object.Input{}, 60)
	if first.Score.Value != "Score: 0" {
		t.Fatalf("first frame score = %q", first.Score.Value)
	}
	if g.Score() != 1 {
		t.Fatalf("score after asteroid left = %d, want 1", g.Score())
	}
	second := g.Step(0, object.Input{}, 60)
	if second.Score.Value != "Score: 1" {
		t.Fatalf("second frame score = %q", second.Score.Value)
	}
}

func TestFrameContents(t *testing.T) {
	g := newTestGame()
	frame := g.Step(0, object.Input{}, 60)

	if len(frame.Blits) != 1 || frame.Blits[0].Kind != object.SpritePlayer {
		t.Fatalf("frame blits = %+v, want the rocket", frame.Blits)
	}
	if frame.Score.Anchor != object.AnchorCenter || frame.Score.X != 300 || frame.Score.Y != 20 {
		t.Fatalf("score text = %+v", frame.Score)
	}
	if frame.FPS.Value != "" {
		t.Fatalf("FPS shown without toggling: %q", frame.FPS.Value)
	}
}

func TestFPSOverlay(t *testing.T) {
	g := newTestGame()
	if _, ok := g.AverageFPS(); ok {
		t.Fatal("AverageFPS reported a value before any reading")
	}

	frame := g.Step(0, object.Input{ToggleFPS: true}, 59.7)
	if frame.FPS.Value != "59" || frame.FPS.X != 10 || frame.FPS.Y != 0 {
		t.Fatalf("FPS text = %+v", frame.FPS)
	}
	g.Step(0, object.Input{}, 61)

	avg, ok := g.AverageFPS()
	if !ok || avg != 60 {
		t.Fatalf("AverageFPS = %v, %v, want 60, true", avg, ok)
	}

	frame = g.Step(0, object.Input{ToggleFPS: true}, 60)
	if frame.FPS.Value != "" {
		t.Fatalf("FPS still shown after toggling off: %q", frame.FPS.Value)
	}
}

func TestQuitAndScreenshot(t *testing.T) {
	g := newTestGame()
	g.Step(0, object.Input{Screenshot: true}, 60)
	if !g.TakeScreenshotRequest() {
		t.Fatal("screenshot request not recorded")
	}
	if g.TakeScreenshotRequest() {
		t.Fatal("screenshot request reported twice")
	}

	g.Step(0, object.Input{Quit: true}, 60)
	if g.Running {
		t.Fatal("game still running after quit")
	}
}

func TestClockThrottlesAndMeasures(t *testing.T) {
	now := time.Unix(0, 0)
	var slept time.Duration
	c := &Clock{
		frameTime: 20 * time.Millisecond,
		now:       func() time.Time { return now },
		sleep: func(d time.Duration) {
			slept += d
			now = now.Add(d)
		},
		last: now,
	}

	if c.FPS() != 0 {
		t.Fatalf("FPS before first tick = %v", c.FPS())
	}

	now = now.Add(5 * time.Millisecond)
	if delta := c.Tick(); delta != 20*time.Millisecond {
		t.Fatalf("fast frame delta = %v, want 20ms", delta)
	}
	if slept != 15*time.Millisecond {
		t.Fatalf("slept %v, want 15ms", slept)
	}

	now = now.Add(30 * time.Millisecond)
	if delta := c.Tick(); delta != 30*time.Millisecond {
		t.Fatalf("slow frame delta = %v, want 30ms", delta)
	}
	if got := c.FPS(); got != 40 {
		t.Fatalf("FPS = %v, want 40", got)
	}
}

func TestTerminalViewDrawsHUD(t *testing.T) {
	g := newTestGame()
	var out bytes.Buffer
	view := newTerminalView(&out, g.Screen, func() (int, int, error) { return 60, 40, nil }, lipgloss.NewRenderer(&out))
	view.updateScreen()

	frame := g.Step(0, object.Input{}, 60)
	if err := view.drawFrame(frame); err != nil {
		t.Fatalf("drawFrame: %v", err)
	}
	if !strings.Contains(out.String(), "Score: 0") {
		t.Fatal("score missing from terminal output")
	}

	collide(g)
	out.Reset()
	if err := view.drawFrame(g.Step(0, object.Input{}, 60)); err != nil {
		t.Fatalf("drawFrame: %v", err)
	}
	if !strings.Contains(out.String(), gameOverHint) {
		t.Fatal("game over hint missing from terminal output")
	}
}

func TestRunQuitsOnInputEnd(t *testing.T) {
	var out bytes.Buffer
	game, err := Run(bufio.NewReader(strings.NewReader("")), &out, Options{
		TermSizeFunc: func() (int, int, error) { return 60, 40, nil },
		Renderer:     lipgloss.NewRenderer(&out),
		Rand:         rand.New(rand.NewSource(1)),
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if game.Running {
		t.Fatal("game still running after input ended")
	}
	if !strings.Contains(out.String(), "\033[?25h") {
		t.Fatal("cursor not restored on exit")
	}
}

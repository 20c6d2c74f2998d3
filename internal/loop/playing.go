package loop

import (
	"strconv"
	"time"

	"github.com/tomz197/rocketdodge/internal/object"
	"github.com/tomz197/rocketdodge/internal/schedule"
)

// Quit stops the game loop after the current frame.
func (g *Game) Quit() {
	g.Running = false
}

// Reset discards every object and starts a new game at the initial difficulty.
func (g *Game) Reset() {
	for _, obj := range g.Objects {
		object.ReleaseObject(obj)
	}
	clear(g.Objects)
	g.Objects = g.Objects[:0]
	for _, obj := range g.toSpawn {
		object.ReleaseObject(obj)
	}
	clear(g.toSpawn)
	g.toSpawn = g.toSpawn[:0]

	g.startPlaying()
	g.logger.Debug("game reset")
}

// Screenshot records a screenshot request for the frontend to pick up.
func (g *Game) Screenshot() {
	g.screenshotRequested = true
}

// TakeScreenshotRequest reports whether a screenshot was requested since the last call.
func (g *Game) TakeScreenshotRequest() bool {
	requested := g.screenshotRequested
	g.screenshotRequested = false
	return requested
}

// ToggleFPS shows or hides the FPS overlay.
func (g *Game) ToggleFPS() {
	g.ShowFPS = !g.ShowFPS
}

// SpawnAsteroid adds an asteroid falling at the current difficulty's speed.
func (g *Game) SpawnAsteroid() {
	object.SpawnAsteroid(g.rng, g.Screen, g.Difficulty.AsteroidSpeed(), g)
}

// SpawnStar adds a background star.
func (g *Game) SpawnStar() {
	object.SpawnStar(g.rng, g.Screen, g)
}

// DifficultyTick raises the difficulty one step and re-arms the asteroid timer
// with the shorter interval.
func (g *Game) DifficultyTick() {
	interval := g.Difficulty.Tick()
	g.Scheduler.SetAsteroidInterval(interval)
	g.logger.Debug("difficulty tick", "time", g.Difficulty.Time(), "interval", interval)
}

// AverageFPS returns the mean of every FPS reading shown on the overlay.
// ok is false if the overlay never showed a reading.
func (g *Game) AverageFPS() (avg float64, ok bool) {
	if len(g.fpsSamples) == 0 {
		return 0, false
	}
	sum := 0
	for _, s := range g.fpsSamples {
		sum += s
	}
	return float64(sum) / float64(len(g.fpsSamples)), true
}

// Step advances the game by one frame: input and timer events first, then the
// score text, the update pass, the frame for rendering and finally the
// collision check. fps is the frontend's measured frame rate.
// The returned frame is only valid until the next call.
func (g *Game) Step(delta time.Duration, in object.Input, fps float64) *object.Frame {
	g.delta = delta

	g.handleInput(in)
	for _, ev := range g.Scheduler.Advance(delta) {
		g.handleEvent(ev)
	}
	g.FlushSpawned()

	g.scoreText.Value = object.ScoreText(g.Score())

	g.updateObjects(in)
	g.buildFrame(fps)
	g.checkCollisions()

	return &g.frame
}

// handleInput routes one-shot key presses to their handlers.
func (g *Game) handleInput(in object.Input) {
	if in.Quit {
		g.Quit()
	}
	if in.Reset {
		g.Reset()
	}
	if in.Screenshot {
		g.Screenshot()
	}
	if in.ToggleFPS {
		g.ToggleFPS()
	}
}

// handleEvent routes a fired timer to its handler.
func (g *Game) handleEvent(ev schedule.Event) {
	switch ev {
	case schedule.EventSpawnAsteroid:
		g.SpawnAsteroid()
	case schedule.EventSpawnStar:
		g.SpawnStar()
	case schedule.EventDifficultyTick:
		g.DifficultyTick()
	}
}

// updateObjects updates all objects and removes any that request removal.
func (g *Game) updateObjects(in object.Input) {
	ctx := g.UpdateContext(in)

	kept := g.Objects[:0] // reuse backing array
	for _, obj := range g.Objects {
		if obj.Update(ctx) {
			object.ReleaseObject(obj)
			continue
		}
		kept = append(kept, obj)
	}
	clear(g.Objects[len(kept):])
	g.Objects = kept

	g.FlushSpawned()
}

// buildFrame collects what the frontend should draw this frame.
func (g *Game) buildFrame(fps float64) {
	f := &g.frame
	f.Reset(g.Screen)
	for _, obj := range g.Objects {
		obj.Draw(f)
	}

	if g.ShowFPS {
		reading := int(fps)
		g.fpsSamples = append(g.fpsSamples, reading)
		f.FPS = object.Text{X: fpsTextLeft, Y: fpsTextTop, Value: strconv.Itoa(reading)}
	}
	f.Score = g.scoreText
	f.GameOver = g.GameState == GameStateOver
}

package loop

import (
	"github.com/tomz197/rocketdodge/internal/object"
)

// collectAsteroids extracts live asteroids from the object list into the
// pre-allocated slice to avoid allocations.
func collectAsteroids(objects []object.Object, asteroids *[]*object.Asteroid) {
	*asteroids = (*asteroids)[:0]
	for _, obj := range objects {
		if a, ok := obj.(*object.Asteroid); ok && !a.IsDestroyed() {
			*asteroids = append(*asteroids, a)
		}
	}
}

// checkCollisions ends the game if the live player overlaps any asteroid.
func (g *Game) checkCollisions() {
	if g.GameState != GameStatePlaying || g.Player == nil || !g.Player.Alive {
		return
	}

	collectAsteroids(g.Objects, &g.asteroids)
	if len(g.asteroids) == 0 {
		return
	}

	g.grid.Clear()
	for i, a := range g.asteroids {
		g.grid.Insert(a.Bounds(), i)
	}

	player := g.Player.Bounds()
	var hit *object.Asteroid
	g.grid.Query(player, func(i int) bool {
		if player.Overlaps(g.asteroids[i].Bounds()) {
			hit = g.asteroids[i]
			return true
		}
		return false
	})
	if hit != nil {
		g.endGame(hit)
	}
}

// endGame kills the player, removes the asteroid that hit it and stops the
// gameplay timers. The score text moves to the middle of the screen.
func (g *Game) endGame(hit *object.Asteroid) {
	g.Player.Kill()
	hit.MarkDestroyed()
	g.Scheduler.Disarm()

	g.scoreText = g.scoreText.PlaceCentered(float64(g.Screen.Width)/2, float64(g.Screen.Height)/2)
	g.GameState = GameStateOver

	g.logger.Info("game over", "score", g.Player.Score, "difficulty", g.Difficulty.Time())
}

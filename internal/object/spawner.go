package object

import (
	"math/rand"

	"github.com/tomz197/rocketdodge/internal/config"
)

// SpawnAsteroid creates an asteroid of a random variant centred on a random x at the
// top edge, falling at speed, and hands it to the spawner.
func SpawnAsteroid(rng *rand.Rand, screen Screen, speed float64, spawner Spawner) *Asteroid {
	variant := rng.Intn(len(config.AsteroidSizes))
	cx := float64(rng.Intn(screen.Width + 1))

	asteroid := NewAsteroid(cx, 0, variant, speed, rng)
	if spawner != nil {
		spawner.Spawn(asteroid)
	}
	return asteroid
}

// SpawnStar creates a star of a random variant entering from a random side at a
// random height and speed, and hands it to the spawner.
func SpawnStar(rng *rand.Rand, screen Screen, spawner Spawner) *Star {
	variant := rng.Intn(len(config.StarSizes))
	fromRight := rng.Intn(2) == 1
	speed := config.StarMinSpeed + rng.Intn(config.StarMaxSpeed-config.StarMinSpeed+1)
	cy := float64(rng.Intn(screen.Height + 1))

	star := NewStar(screen, variant, speed, fromRight, cy)
	if spawner != nil {
		spawner.Spawn(star)
	}
	return star
}

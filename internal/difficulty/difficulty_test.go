package difficulty

import (
	"math"
	"testing"
	"time"

	"github.com/tomz197/rocketdodge/internal/config"
)

const epsilon = 1e-9

func TestCurve(t *testing.T) {
	if got := Curve(0); got != 0 {
		t.Fatalf("Curve(0) = %v, want 0", got)
	}

	prev := Curve(0)
	for x := 1; x <= 1000; x++ {
		fx := float64(x)
		got := Curve(fx)
		want := 500 * fx / (fx + 10)
		if math.Abs(got-want) > epsilon {
			t.Fatalf("Curve(%d) = %v, want %v", x, got, want)
		}
		if got <= prev {
			t.Fatalf("Curve not increasing at %d: %v <= %v", x, got, prev)
		}
		if got >= config.CurveCeiling {
			t.Fatalf("Curve(%d) = %v, want below %v", x, got, config.CurveCeiling)
		}
		prev = got
	}
}

func TestTimeAfterTicks(t *testing.T) {
	var s State
	if s.Time() != 1.0 {
		t.Fatalf("initial Time() = %v, want 1.0", s.Time())
	}
	for n := 0; n < 200; n++ {
		s.Tick()
		want := 1.0 + 0.1*float64(n+1)
		if math.Abs(s.Time()-want) > epsilon {
			t.Fatalf("after %d ticks Time() = %v, want %v", n+1, s.Time(), want)
		}
		if math.Abs(s.Level()-(s.Time()*10-10)) > epsilon {
			t.Fatalf("Level() = %v does not match difficulty time %v", s.Level(), s.Time())
		}
	}

	s.Reset()
	if s.Time() != 1.0 || s.Ticks() != 0 {
		t.Fatalf("after Reset Time() = %v ticks = %d", s.Time(), s.Ticks())
	}
}

func TestAsteroidSpeed(t *testing.T) {
	var s State
	if got := s.AsteroidSpeed(); got != 5 {
		t.Fatalf("speed at 1.0 = %v, want 5", got)
	}
	for i := 0; i < 10; i++ {
		s.Tick()
	}
	if got := s.AsteroidSpeed(); got != 10 {
		t.Fatalf("speed at 2.0 = %v, want 10", got)
	}
}

func TestAsteroidIntervalMonotonic(t *testing.T) {
	var s State
	prev := AsteroidInterval(0)
	if prev != 600*time.Millisecond {
		t.Fatalf("AsteroidInterval(0) = %v, want 600ms", prev)
	}
	for i := 0; i < 5000; i++ {
		got := s.Tick()
		if got > prev {
			t.Fatalf("interval grew at tick %d: %v > %v", i+1, got, prev)
		}
		if got < config.MinAsteroidInterval || got <= 0 {
			t.Fatalf("interval %v below floor at tick %d", got, i+1)
		}
		prev = got
	}
}

func TestAsteroidIntervalFirstTick(t *testing.T) {
	var s State
	got := s.Tick()
	// 600 - 500/11 ms
	wantMs := 600 - 500.0/11
	want := time.Duration(wantMs * float64(time.Millisecond))
	if got != want {
		t.Fatalf("first tick interval = %v, want %v", got, want)
	}
}

func TestAsteroidIntervalClamped(t *testing.T) {
	if got := AsteroidInterval(1e12); got < config.MinAsteroidInterval {
		t.Fatalf("AsteroidInterval(huge) = %v, want >= %v", got, config.MinAsteroidInterval)
	}
	if got := AsteroidInterval(-10); got != 600*time.Millisecond {
		t.Fatalf("AsteroidInterval(-10) = %v, want 600ms (0/0 guarded)", got)
	}
}

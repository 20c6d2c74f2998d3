package main

import (
	"errors"
	"fmt"
	"image/png"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tomz197/rocketdodge/internal/config"
	"github.com/tomz197/rocketdodge/internal/logging"
	"github.com/tomz197/rocketdodge/internal/loop"
	"github.com/tomz197/rocketdodge/internal/object"
)

// windowGame adapts the simulation to ebiten's Update/Draw cycle.
// Update steps the game once per tick; Draw presents the latest frame.
type windowGame struct {
	game   *loop.Game
	frame  *object.Frame
	logger *log.Logger
}

func (w *windowGame) Update() error {
	w.frame = w.game.Step(config.TargetFrameTime, readKeys(), ebiten.ActualFPS())
	if !w.game.Running {
		return ebiten.Termination
	}
	return nil
}

func (w *windowGame) Draw(screen *ebiten.Image) {
	drawBackground(screen)
	if w.frame == nil {
		return
	}
	drawFrame(screen, w.frame)

	if w.game.TakeScreenshotRequest() {
		name, err := saveScreenshot(screen, time.Now())
		if err != nil {
			w.logger.Error("screenshot failed", "err", err)
			return
		}
		w.logger.Info("screenshot saved", "file", name)
	}
}

func (w *windowGame) Layout(_, _ int) (int, int) {
	return w.game.Screen.Width, w.game.Screen.Height
}

// readKeys maps the keyboard to one frame of input. Movement keys report
// whether they are down; the rest fire once per press.
func readKeys() object.Input {
	return object.Input{
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Up:    ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Down:  ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS),

		Quit:       inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ),
		Reset:      inpututil.IsKeyJustPressed(ebiten.KeyR),
		Screenshot: inpututil.IsKeyJustPressed(ebiten.KeyF2),
		ToggleFPS:  inpututil.IsKeyJustPressed(ebiten.KeyF3),
	}
}

// saveScreenshot writes the screen to a timestamped PNG in the working directory.
func saveScreenshot(screen *ebiten.Image, now time.Time) (string, error) {
	name := fmt.Sprintf("screenshot-%s.png", now.Format("20060102-150405.000"))
	f, err := os.Create(name)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", name, err)
	}
	defer f.Close()

	if err := png.Encode(f, screen); err != nil {
		return "", fmt.Errorf("encode %s: %w", name, err)
	}
	return name, nil
}

func main() {
	logOut, closeLog, err := logging.Open(os.Stderr)
	if err != nil {
		logging.New(os.Stderr, "window").Warn("log file unavailable", "err", err)
	}
	defer closeLog()
	logger := logging.New(logOut, "window")

	width, height := config.ScreenSize(ebiten.Monitor().Size())
	screen := object.NewScreen(width, height)

	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetTPS(config.TargetFPS)

	w := &windowGame{
		game:   loop.NewGame(screen, loop.WithLogger(logger)),
		logger: logger,
	}
	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("game error", "err", err)
		closeLog()
		os.Exit(1)
	}

	logger.Info("game finished", "score", w.game.Score())
	if avg, ok := w.game.AverageFPS(); ok {
		logger.Info("average fps", "fps", avg)
	}
}

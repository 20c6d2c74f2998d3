// Package loop provides the game simulation and the terminal game loop.
package loop

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/tomz197/rocketdodge/internal/config"
	"github.com/tomz197/rocketdodge/internal/draw"
	"github.com/tomz197/rocketdodge/internal/input"
	"github.com/tomz197/rocketdodge/internal/logging"
	"github.com/tomz197/rocketdodge/internal/object"
)

// Options configures a terminal game session.
type Options struct {
	TermSizeFunc draw.TermSizeFunc  // Terminal size source; defaults to stdout
	Renderer     *lipgloss.Renderer // HUD colour profile; defaults to stdout's
	Logger       *log.Logger        // Game events; discarded if nil
	Rand         *rand.Rand         // Spawn randomness; seeded from the clock if nil
}

// Run plays one session on the terminal behind r and w until the player quits
// or the input ends. The returned game holds the final score and FPS readings.
func Run(r *bufio.Reader, w io.Writer, opts Options) (*Game, error) {
	if opts.TermSizeFunc == nil {
		opts.TermSizeFunc = draw.DefaultTermSizeFunc
	}
	if opts.Renderer == nil {
		opts.Renderer = lipgloss.DefaultRenderer()
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}

	gameOpts := []Option{WithLogger(opts.Logger)}
	if opts.Rand != nil {
		gameOpts = append(gameOpts, WithRand(opts.Rand))
	}

	screen := object.NewScreen(config.MaxScreenWidth, config.MaxScreenHeight)
	game := NewGame(screen, gameOpts...)
	stream := input.StartStream(r)
	defer input.StopStream(stream)
	view := newTerminalView(w, screen, opts.TermSizeFunc, opts.Renderer)
	clock := NewClock(config.TargetFrameTime)

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)

	opts.Logger.Debug("game started", "width", screen.Width, "height", screen.Height)

	for game.Running {
		delta := clock.Tick()

		in := input.ReadInput(stream)
		if in.Reset {
			input.ResetKeys(stream)
		}

		view.updateScreen()
		frame := game.Step(delta, in, clock.FPS())

		if game.TakeScreenshotRequest() {
			opts.Logger.Warn("screenshots are not supported in the terminal")
		}

		if err := view.drawFrame(frame); err != nil {
			return game, fmt.Errorf("draw frame: %w", err)
		}
	}

	draw.ResetStyle(w)
	draw.ClearScreen(w)
	return game, nil
}

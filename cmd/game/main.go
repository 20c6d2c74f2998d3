package main

import (
	"bufio"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/tomz197/rocketdodge/internal/logging"
	"github.com/tomz197/rocketdodge/internal/loop"
	"golang.org/x/term"
)

func main() {
	report := logging.New(os.Stderr, "game")

	// Log lines would tear the canvas, so they go to a file or nowhere while playing.
	logOut, closeLog, err := logging.Open(io.Discard)
	if err != nil {
		report.Warn("log file unavailable", "err", err)
	}
	defer closeLog()
	logger := logging.New(logOut, "game")

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		report.Fatal("failed to enable raw mode", "err", err)
	}

	reader := bufio.NewReader(os.Stdin)
	game, err := loop.Run(reader, os.Stdout, loop.Options{
		Renderer: lipgloss.NewRenderer(os.Stdout),
		Logger:   logger,
	})
	_ = term.Restore(fd, oldState)
	if err != nil {
		report.Error("game error", "err", err)
		os.Exit(1)
	}

	report.Info("game finished", "score", game.Score())
	if avg, ok := game.AverageFPS(); ok {
		report.Info("average fps", "fps", avg)
	}
}

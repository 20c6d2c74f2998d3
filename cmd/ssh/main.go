package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	wishlogging "github.com/charmbracelet/wish/logging"
	"github.com/muesli/termenv"
	"github.com/tomz197/rocketdodge/internal/config"
	"github.com/tomz197/rocketdodge/internal/draw"
	"github.com/tomz197/rocketdodge/internal/logging"
	"github.com/tomz197/rocketdodge/internal/loop"
)

const (
	defaultHost        = "::"
	defaultPort        = "2222"
	defaultHostKeyPath = "/app/keys/host_key"
)

func main() {
	logger := logging.New(os.Stderr, "ssh")

	host := config.GetEnv(config.EnvSSHHost, defaultHost)
	port := config.GetEnv(config.EnvSSHPort, defaultPort)
	hostKeyPath := config.GetEnv(config.EnvSSHHostKey, defaultHostKeyPath)
	logger.Info("ssh config", "host", host, "port", port, "hostKeyPath", hostKeyPath)

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(host, port)),
		wish.WithMiddleware(
			gameMiddleware(logger),
			activeterm.Middleware(),
			wishlogging.MiddlewareWithLogger(logger),
		),
		// Set TCP_NODELAY to reduce latency for game input
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}

	if hostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(hostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		logger.Fatal("failed to create server", "err", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("starting ssh server", "addr", net.JoinHostPort(host, port))
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			logger.Fatal("server error", "err", err)
		}
	}()

	<-done
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		logger.Fatal("shutdown error", "err", err)
	}
}

// gameMiddleware runs an independent game for every SSH session.
func gameMiddleware(logger *log.Logger) wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(sess ssh.Session) {
			pty, winCh, ok := sess.Pty()
			if !ok {
				fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
				return
			}

			sessLogger := logger.With("user", sess.User())
			sessLogger.Info("new game session", "terminal", pty.Term,
				"width", pty.Window.Width, "height", pty.Window.Height)

			size := &ptySize{width: pty.Window.Width, height: pty.Window.Height}
			go size.watch(winCh)

			renderer := lipgloss.NewRenderer(sess)
			renderer.SetColorProfile(termenv.ANSI256)

			game, err := loop.Run(bufio.NewReader(sess), sess, loop.Options{
				TermSizeFunc: size.get,
				Renderer:     renderer,
				Logger:       sessLogger,
			})
			if err != nil {
				sessLogger.Error("game error", "err", err)
			}

			fields := []any{"score", game.Score()}
			if avg, ok := game.AverageFPS(); ok {
				fields = append(fields, "fps", avg)
			}
			sessLogger.Info("session ended", fields...)
			next(sess)
		}
	}
}

// ptySize holds the latest window size the client reported.
type ptySize struct {
	mu            sync.Mutex
	width, height int
}

// watch applies window-change events until the session closes the channel.
func (p *ptySize) watch(winCh <-chan ssh.Window) {
	for win := range winCh {
		p.mu.Lock()
		p.width, p.height = win.Width, win.Height
		p.mu.Unlock()
	}
}

func (p *ptySize) get() (int, int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.width, p.height, nil
}

var _ draw.TermSizeFunc = (*ptySize)(nil).get

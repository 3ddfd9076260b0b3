package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"

	"github.com/tomz197/rockfield/internal/config"
	"github.com/tomz197/rockfield/internal/draw"
	"github.com/tomz197/rockfield/internal/game"
	"github.com/tomz197/rockfield/internal/loop"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML, JSON or TOML settings file")
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger, closer, err := config.NewLogger(settings.Log, "rockfield", os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	workingDir, workErr := os.Getwd()
	if workErr != nil {
		logger.Warn("failed to get working directory", "err", workErr)
	}
	logger.Info("SSH config",
		"host", settings.SSH.Host, "port", settings.SSH.Port,
		"hostKeyPath", settings.SSH.HostKeyPath, "workingDir", workingDir)

	// Sessions share nothing; the context only tells them the host is stopping.
	sessionsCtx, stopSessions := context.WithCancel(context.Background())
	defer stopSessions()
	var sessions sync.WaitGroup

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(settings.SSH.Host, settings.SSH.Port)),
		wish.WithMiddleware(
			gameMiddleware(sessionsCtx, &sessions, settings.Game, logger),
			activeterm.Middleware(),
			logging.MiddlewareWithLogger(logger),
		),
		// Set TCP_NODELAY to reduce latency for game input
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}
	if settings.SSH.HostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(settings.SSH.HostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		logger.Fatal("failed to create server", "err", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("starting SSH server", "addr", s.Addr)
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			logger.Fatal("server error", "err", err)
		}
	}()

	<-done
	logger.Info("shutting down server")

	// End every running game, then give the loops a moment to restore the terminals.
	stopSessions()
	waitTimeout(&sessions, 5*time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "err", err)
	}
}

// gameMiddleware runs one independent game per SSH session.
func gameMiddleware(hostCtx context.Context, sessions *sync.WaitGroup, cfg game.Config, logger *log.Logger) wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(sess ssh.Session) {
			pty, winCh, ok := sess.Pty()
			if !ok {
				fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
				return
			}

			sessions.Add(1)
			defer sessions.Done()

			sessLogger := logger.With("user", sess.User(), "remote", sess.RemoteAddr().String())
			sessLogger.Info("new game session", "terminal", pty.Term, "width", pty.Window.Width, "height", pty.Window.Height)

			// Track window changes for the frame loop
			sizeTracker := newSizeTracker(pty.Window.Width, pty.Window.Height)
			go func() {
				for win := range winCh {
					sizeTracker.update(win.Width, win.Height)
				}
			}()

			ctx, cancel := context.WithCancel(sess.Context())
			defer cancel()
			stop := context.AfterFunc(hostCtx, cancel)
			defer stop()

			err := loop.Run(ctx, sess, sess, loop.Options{
				Config:   cfg,
				TermSize: sizeTracker.getSize,
				Logger:   sessLogger,
			})
			if err != nil {
				sessLogger.Error("game error", "err", err)
			}

			sessLogger.Info("session ended")
			next(sess)
		}
	}
}

// waitTimeout waits for wg or until d elapses.
func waitTimeout(wg *sync.WaitGroup, d time.Duration) {
	finished := make(chan struct{})
	go func() {
		wg.Wait()
		close(finished)
	}()
	select {
	case <-finished:
	case <-time.After(d):
	}
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}

var _ draw.TermSizeFunc = (*sizeTracker)(nil).getSize

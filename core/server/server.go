package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/browser"
	"go.uber.org/zap"
)

// ErrAddrInUse is returned by Listen when another process already holds the port.
var ErrAddrInUse = errors.New("address already in use")

// shutdownTimeout bounds how long in-flight connections may hold up teardown.
const shutdownTimeout = time.Second

// State is the lifecycle position of a Server.
type State int

const (
	StateCreated State = iota
	StateListening
	StateInterrupted
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateListening:
		return "listening"
	case StateInterrupted:
		return "interrupted"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// BrowserOpener asks the operating system to open url.
type BrowserOpener func(url string) error

// Option customises a Server.
type Option func(*Server)

// WithBrowserOpener replaces the default browser launcher.
func WithBrowserOpener(open BrowserOpener) Option {
	return func(s *Server) {
		s.open = open
	}
}

// Server binds a listener and serves a fiber app on it until its context ends.
type Server struct {
	cfg    Config
	app    *fiber.App
	logger *zap.Logger
	open   BrowserOpener

	mu    sync.Mutex
	state State
	ln    net.Listener
}

// New creates a Server in the Created state.
func New(cfg Config, app *fiber.App, logger *zap.Logger, opts ...Option) *Server {
	s := &Server{
		cfg:    cfg,
		app:    app,
		logger: logger,
		open:   browser.OpenURL,
		state:  StateCreated,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current lifecycle state.
func (s *Server) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Server) setState(state State) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

// Addr returns the bound address, or nil before Listen.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln == nil {
		return nil
	}
	return s.ln.Addr()
}

// URL returns the root URL on the bound port. Before Listen it falls back to the configured port.
func (s *Server) URL() string {
	addr, ok := s.Addr().(*net.TCPAddr)
	if !ok {
		return s.cfg.URL()
	}
	return "http://localhost:" + strconv.Itoa(addr.Port)
}

// Listen binds the configured address. It never retries or picks another port.
func (s *Server) Listen() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateCreated {
		return fmt.Errorf("listen: server is %s", s.state)
	}

	ln, err := net.Listen("tcp", s.cfg.Addr())
	if err != nil {
		if errors.Is(err, syscall.EADDRINUSE) {
			return fmt.Errorf("failed to bind %s: %w: %w", s.cfg.Addr(), ErrAddrInUse, err)
		}
		return fmt.Errorf("failed to bind %s: %w", s.cfg.Addr(), err)
	}

	s.ln = ln
	s.state = StateListening
	return nil
}

// Serve blocks serving requests until ctx is cancelled, then tears the listener down.
func (s *Server) Serve(ctx context.Context) error {
	s.mu.Lock()
	ln := s.ln
	state := s.state
	s.mu.Unlock()

	if state != StateListening {
		return fmt.Errorf("serve: server is %s", state)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.app.Listener(ln)
	}()

	select {
	case err := <-errCh:
		s.setState(StateStopped)
		if err == nil {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	s.setState(StateInterrupted)
	if err := s.app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		s.logger.Debug("Shutdown did not complete cleanly", zap.Error(err))
	}
	// Shutdown only closes listeners the app has already registered.
	_ = ln.Close()
	<-errCh

	s.setState(StateStopped)
	s.logger.Info("Server stopped.")
	return nil
}

// Run listens, announces the URL, opens the browser if enabled and serves until ctx ends.
func (s *Server) Run(ctx context.Context) error {
	if err := s.Listen(); err != nil {
		return err
	}

	url := s.URL()
	s.logger.Info("Serving at "+url, zap.Stringer("addr", s.Addr()))

	if s.cfg.OpenBrowser {
		s.logger.Info("Opening browser...")
		go s.openBrowser(url)
	}

	return s.Serve(ctx)
}

func (s *Server) openBrowser(url string) {
	if err := s.open(url); err != nil {
		s.logger.Warn("Could not open browser", zap.String("url", url), zap.Error(err))
	}
}

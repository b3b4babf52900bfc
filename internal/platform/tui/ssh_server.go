package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-twisty/internal/config"
	"github.com/vovakirdan/tui-twisty/internal/core"
	"github.com/vovakirdan/tui-twisty/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.twisty/host_key.
	HostKeyPath string

	// DBPath is the path to the algorithm library.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Player holds the settings every session starts from.
	Player config.Config

	// Logger receives server and session events. Nil uses a stderr logger.
	Logger *log.Logger
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.twisty/twisty.db",
		IdleTimeout: 30 * time.Minute,
		Player:      config.Default(),
	}
}

// SSHServer wraps a Wish SSH server serving one player per session.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "twisty-ssh",
		})
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open algorithm library", "error", err)
		// Continue without storage
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".twisty", "host_key")
	}

	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	rt := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.Player.FPS,
	}

	sessionID := uuid.NewString()
	logger := s.logger.With("session", sessionID, "user", sshSession.User())
	model := NewSessionModel(s.store, s.config.Player, rt, sessionID, logger)

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.store != nil {
		s.store.Close()
	}

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenPlay
	screenLibrary
)

// SessionModel manages the full flow of one session: menu, play screen
// and library, each returning to the menu.
type SessionModel struct {
	store     *storage.Store
	settings  config.Config
	runtime   core.RuntimeConfig
	sessionID string
	logger    *log.Logger
	screen    sessionScreen
	menu      MenuModel
	play      Model
	library   LibraryModel
	status    string
	quitting  bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(store *storage.Store, settings config.Config, rt core.RuntimeConfig, sessionID string, logger *log.Logger) SessionModel {
	return SessionModel{
		store:     store,
		settings:  settings,
		runtime:   rt,
		sessionID: sessionID,
		logger:    logger,
		menu:      NewMenuModel(store, rt, settings.Puzzle),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.runtime.ScreenW = wsm.Width
		m.runtime.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenPlay:
		return m.updatePlay(msg)
	case screenLibrary:
		return m.updateLibrary(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsLibrary():
		m.library = NewLibraryModel(m.store, m.runtime.ScreenW, m.runtime.ScreenH)
		m.screen = screenLibrary
		return m, m.library.Init()

	case m.menu.Selected() != nil:
		return m.startPlay(m.menu.Selected().PuzzleID, "")
	}

	return m, cmd
}

// updateLibrary handles updates when browsing the library.
func (m SessionModel) updateLibrary(msg tea.Msg) (tea.Model, tea.Cmd) {
	newLib, cmd := m.library.Update(msg)
	if lib, ok := newLib.(LibraryModel); ok {
		m.library = lib
	}

	switch {
	case m.library.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.library.Chosen() != nil:
		a := m.library.Chosen()
		return m.startPlay(a.PuzzleID, a.Moves)

	case m.library.IsGoingBack():
		return m.backToMenu()
	}

	return m, cmd
}

// updatePlay handles updates on the play screen.
func (m SessionModel) updatePlay(msg tea.Msg) (tea.Model, tea.Cmd) {
	newPlay, cmd := m.play.Update(msg)
	if play, ok := newPlay.(Model); ok {
		m.play = play
	}

	if m.play.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.play.BackToMenu() {
		m.settings.Puzzle = m.play.Puzzle()
		return m.backToMenu()
	}

	return m, cmd
}

func (m SessionModel) startPlay(puzzleID, alg string) (tea.Model, tea.Cmd) {
	settings := m.settings
	settings.Puzzle = puzzleID

	play, err := NewModel(PlayOptions{
		Config:    settings,
		Runtime:   m.runtime,
		Store:     m.store,
		SessionID: m.sessionID,
		Logger:    m.logger,
		Algorithm: alg,
		Embedded:  true,
	})
	if err != nil {
		m.logger.Error("cannot open puzzle", "puzzle", puzzleID, "err", err)
		m.status = err.Error()
		return m.backToMenu()
	}

	m.settings = settings
	m.play = play
	m.screen = screenPlay
	m.status = ""
	m.logger.Info("puzzle opened", "puzzle", puzzleID)
	return m, m.play.Init()
}

func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.menu = NewMenuModel(m.store, m.runtime, m.settings.Puzzle)
	m.screen = screenMenu
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenPlay:
		return m.play.View()
	case screenLibrary:
		return m.library.View()
	}
	view := m.menu.View()
	if m.status != "" {
		view += "\n" + centerText(hudStatusStyle.Render(m.status), m.runtime.ScreenW)
	}
	return view
}

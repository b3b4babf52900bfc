package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-twisty/internal/algorithm"
	"github.com/vovakirdan/tui-twisty/internal/config"
	"github.com/vovakirdan/tui-twisty/internal/core"
	"github.com/vovakirdan/tui-twisty/internal/player"
	"github.com/vovakirdan/tui-twisty/internal/registry"
	"github.com/vovakirdan/tui-twisty/internal/render"
	"github.com/vovakirdan/tui-twisty/internal/storage"
)

const (
	hudHeight   = 4
	orbitStep   = 15
	tiltStep    = 10
	historyTail = 24 // tokens of history shown in the HUD
)

var (
	hudTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	hudDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	hudStatusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// PlayOptions configures a play screen.
type PlayOptions struct {
	Config    config.Config
	Runtime   core.RuntimeConfig
	Store     *storage.Store // may be nil
	SessionID string
	Logger    *log.Logger
	Algorithm string // played as soon as the screen opens
	Embedded  bool   // Esc returns to a menu instead of quitting
}

// Model is the Bubble Tea model of the play screen.
type Model struct {
	player   *player.Player
	scene    *render.Scene
	screen   *core.Screen
	palette  Palette
	store    *storage.Store
	settings config.Config
	runtime  core.RuntimeConfig
	session  string
	logger   *log.Logger
	embedded bool

	keys    *KeyMapper
	help    help.Model
	prompt  textinput.Model
	editing bool
	frame   core.InputFrame
	moves   map[string]bool
	status  string

	started  time.Time
	recorded int // history length already stored as a run

	quitting   bool
	backToMenu bool
}

// NewModel creates the play screen for opts.Config.Puzzle.
func NewModel(opts PlayOptions) (Model, error) {
	cfg := opts.Config
	scene := render.NewScene(nil)
	scene.SetCamera(render.CameraFromRotation(cfg.View.Rotation))
	scene.SetHover(cfg.View.Hover)

	popts := cfg.Options()
	popts.Logger = opts.Logger
	pl, err := player.New(cfg.Puzzle, scene, popts)
	if err != nil {
		return Model{}, err
	}

	prompt := textinput.New()
	prompt.Prompt = "alg> "
	prompt.Placeholder = "R U R' U', @saved or >save-as"
	prompt.CharLimit = 512

	h := help.New()
	h.Width = opts.Runtime.ScreenW

	m := Model{
		player:   pl,
		scene:    scene,
		screen:   core.NewScreen(opts.Runtime.ScreenW, core.Max(opts.Runtime.ScreenH-hudHeight, 1)),
		palette:  NewPalette(cfg.View.Background),
		store:    opts.Store,
		settings: cfg,
		runtime:  opts.Runtime,
		session:  opts.SessionID,
		logger:   opts.Logger,
		embedded: opts.Embedded,
		keys:     NewKeyMapper(),
		help:     h,
		prompt:   prompt,
		frame:    core.NewInputFrame(),
		moves:    moveSet(pl.Puzzle().Moves()),
	}
	if m.session == "" {
		m.session = "local"
	}
	if opts.Algorithm != "" {
		m.play(opts.Algorithm)
	}
	return m, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editing {
		return m.handlePromptKey(msg)
	}

	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, m.moves, &m.frame) {
		m.recordRun()
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case m.frame.Has(core.ActionBack):
		m.recordRun()
		m.backToMenu = true
		if !m.embedded {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case m.frame.Has(core.ActionEdit):
		delete(m.frame.Actions, core.ActionEdit)
		m.editing = true
		return m, m.prompt.Focus()
	}

	return m, nil
}

// handlePromptKey feeds the algorithm prompt.
func (m Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		input := strings.TrimSpace(m.prompt.Value())
		m.closePrompt()
		m.submit(input)
		return m, nil
	case tea.KeyEsc:
		m.closePrompt()
		return m, nil
	case tea.KeyCtrlC:
		m.recordRun()
		m.quitting = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

func (m *Model) closePrompt() {
	m.editing = false
	m.prompt.Blur()
	m.prompt.Reset()
}

// submit plays prompt input. "@name" plays a saved algorithm and ">name"
// saves the current history under name.
func (m *Model) submit(input string) {
	switch {
	case input == "":
		return
	case strings.HasPrefix(input, "@"):
		m.playSaved(strings.TrimPrefix(input, "@"))
	case strings.HasPrefix(input, ">"):
		m.saveHistory(strings.TrimPrefix(input, ">"))
	default:
		m.play(input)
	}
}

func (m *Model) play(alg string) {
	tokens, err := m.player.Play(alg, m.settings.Animate)
	if err != nil {
		m.status = err.Error()
		return
	}
	if len(tokens) == 0 {
		m.status = "nothing to play"
		return
	}
	m.markStarted()
	m.status = fmt.Sprintf("playing %s", algorithm.Format(tokens))
}

func (m *Model) playSaved(name string) {
	if m.store == nil {
		m.status = "library unavailable"
		return
	}
	alg, err := m.store.AlgorithmByName(m.player.Puzzle().ID(), name)
	switch {
	case err != nil:
		m.status = err.Error()
	case alg == nil:
		m.status = fmt.Sprintf("no saved algorithm %q", name)
	default:
		m.play(alg.Moves)
	}
}

func (m *Model) saveHistory(name string) {
	if m.store == nil {
		m.status = "library unavailable"
		return
	}
	history := m.player.History()
	if len(history) == 0 {
		m.status = "nothing to save"
		return
	}
	if _, err := m.store.SaveAlgorithm(m.player.Puzzle().ID(), strings.TrimSpace(name), algorithm.Format(history)); err != nil {
		m.status = err.Error()
		return
	}
	m.status = fmt.Sprintf("saved %q (%d moves)", name, len(history))
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, core.Max(msg.Height-hudHeight, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick applies the actions gathered since the last frame, issues at
// most one queued move and advances the animation.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.applyActions()

	if len(m.frame.Moves) > 0 && !m.player.Playing() && !m.player.Puzzle().Busy() {
		tok := m.frame.Moves[0]
		m.frame.Moves = m.frame.Moves[1:]
		m.markStarted()
		if _, err := m.player.Rotate(tok, m.settings.Animate); err != nil {
			m.status = err.Error()
		}
	}
	clear(m.frame.Actions)

	m.player.Tick(now)
	if strings.HasPrefix(m.status, "playing") && !m.player.Playing() {
		m.status = ""
	}
	return m, tickCmd(m.runtime)
}

func (m *Model) applyActions() {
	f := m.frame
	switch {
	case f.Has(core.ActionUndo):
		if _, err := m.player.Undo(m.settings.Animate); err != nil {
			m.status = err.Error()
		}
	case f.Has(core.ActionReset):
		m.recordRun()
		m.player.Reset()
		m.frame.Moves = m.frame.Moves[:0]
		m.started = time.Time{}
		m.recorded = 0
		m.status = "reset"
	case f.Has(core.ActionSpeed):
		preset := config.NextSpeedPreset(m.settings.SpeedMS)
		config.ApplySpeedPreset(&m.settings, preset)
		m.player.SetSpeed(m.settings.Speed())
		m.status = fmt.Sprintf("speed: %s", preset)
	case f.Has(core.ActionNextPuzzle):
		m.nextPuzzle()
	}

	if f.Has(core.ActionOrbitLeft) {
		m.scene.Orbit(-orbitStep, 0)
	}
	if f.Has(core.ActionOrbitRight) {
		m.scene.Orbit(orbitStep, 0)
	}
	if f.Has(core.ActionTiltUp) {
		m.scene.Orbit(0, tiltStep)
	}
	if f.Has(core.ActionTiltDown) {
		m.scene.Orbit(0, -tiltStep)
	}
	if f.Has(core.ActionHover) {
		m.scene.SetHover(!m.scene.Hover())
	}
}

// nextPuzzle switches to the registered puzzle after the current one.
func (m *Model) nextPuzzle() {
	if m.player.Playing() || m.player.Puzzle().Busy() {
		return
	}
	list := registry.List()
	if len(list) < 2 {
		return
	}
	current := m.player.Puzzle().ID()
	next := list[0].ID
	for i, p := range list {
		if p.ID == current {
			next = list[(i+1)%len(list)].ID
			break
		}
	}

	m.recordRun()
	if err := m.player.SetPuzzle(next); err != nil {
		m.status = err.Error()
		return
	}
	m.settings.Puzzle = next
	m.moves = moveSet(m.player.Puzzle().Moves())
	m.frame.Moves = m.frame.Moves[:0]
	m.started = time.Time{}
	m.recorded = 0
	m.status = m.player.Puzzle().Title()
}

func (m *Model) markStarted() {
	if m.started.IsZero() {
		m.started = time.Now()
	}
}

// recordRun stores the history since the last reset, once per change.
func (m *Model) recordRun() {
	history := m.player.History()
	if m.store == nil || len(history) == 0 || len(history) == m.recorded {
		return
	}
	run := storage.Run{
		SessionID: m.session,
		PuzzleID:  m.player.Puzzle().ID(),
		Moves:     algorithm.Format(history),
		MoveCount: len(history),
	}
	if !m.started.IsZero() {
		run.Duration = time.Since(m.started)
	}
	if _, err := m.store.RecordRun(run); err != nil && m.logger != nil {
		m.logger.Warn("could not record run", "err", err)
	}
	m.recorded = len(history)
}

// saveScreenshot saves the current puzzle view to a file.
func (m *Model) saveScreenshot() {
	m.draw()

	home, err := os.UserHomeDir()
	if err != nil {
		m.status = err.Error()
		return
	}
	dir := filepath.Join(home, ".twisty", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.status = err.Error()
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.player.Puzzle().ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.status = err.Error()
		return
	}
	m.status = "screenshot " + path
}

func (m Model) draw() {
	m.screen.Clear()
	m.scene.Draw(m.screen, m.screen.Bounds())
}

// View renders the puzzle and the HUD.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.draw()
	return lipgloss.JoinVertical(lipgloss.Left, m.palette.Render(m.screen), m.hud())
}

func (m Model) hud() string {
	p := m.player.Puzzle()
	animate := "off"
	if m.settings.Animate {
		animate = "on"
	}
	title := hudTitleStyle.Render(p.Title()) + hudDimStyle.Render(fmt.Sprintf(
		"  speed %s  easing %s  animate %s", speedLabel(m.settings.SpeedMS), m.settings.Easing, animate))

	history := m.player.History()
	if len(history) > historyTail {
		history = history[len(history)-historyTail:]
	}
	moves := fmt.Sprintf("moves %d: %s", len(m.player.History()), algorithm.Format(history))
	if m.player.Playing() {
		done, total := m.player.Position()
		moves = fmt.Sprintf("playing %d/%d  ", done, total) + moves
	}

	line := hudStatusStyle.Render(m.status)
	if m.editing {
		line = m.prompt.View()
	}

	return strings.Join([]string{title, moves, line, m.help.View(m.keys)}, "\n")
}

// speedLabel names a speed by its preset when one matches.
func speedLabel(ms int) string {
	for _, p := range config.SpeedPresets {
		if v, _ := config.SpeedMSForPreset(p); v == ms {
			return string(p)
		}
	}
	return fmt.Sprintf("%dms", ms)
}

// Puzzle returns the id of the puzzle on screen.
func (m Model) Puzzle() string {
	return m.player.Puzzle().ID()
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program on a play screen.
func Run(opts PlayOptions) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

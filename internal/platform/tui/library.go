package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-twisty/internal/registry"
	"github.com/vovakirdan/tui-twisty/internal/storage"
)

// Library layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show puzzle list sidebar
	sidebarWidth       = 20  // Width of puzzle list sidebar
	maxRuns            = 100 // Max runs to load
)

// LibraryKeyMap defines the key bindings for the library.
type LibraryKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	NextPuzzle key.Binding
	PrevPuzzle key.Binding
	Toggle     key.Binding
	Play       key.Binding
	Delete     key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k LibraryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextPuzzle, k.Toggle, k.Play, k.Delete, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k LibraryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextPuzzle, k.PrevPuzzle},
		{k.Toggle, k.Play, k.Delete},
		{k.Back, k.Quit},
	}
}

// DefaultLibraryKeyMap returns default key bindings.
func DefaultLibraryKeyMap() LibraryKeyMap {
	return LibraryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextPuzzle: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next puzzle"),
		),
		PrevPuzzle: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev puzzle"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "algorithms/runs"),
		),
		Play: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "play"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x", "delete"),
			key.WithHelp("x", "delete"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// LibraryModel browses saved algorithms and recorded runs per puzzle.
type LibraryModel struct {
	puzzles      []registry.PuzzleInfo
	puzzleCursor int
	store        *storage.Store
	showRuns     bool
	algorithms   []storage.Algorithm
	runs         []storage.Run
	table        table.Model
	help         help.Model
	keys         LibraryKeyMap
	width        int
	height       int
	status       string
	quitting     bool
	goingBack    bool
	chosen       *storage.Algorithm // Set when user picks an algorithm to play
	showSidebar  bool
}

// NewLibraryModel creates a new library model.
func NewLibraryModel(store *storage.Store, width, height int) LibraryModel {
	h := help.New()
	h.ShowAll = false

	m := LibraryModel{
		puzzles:     registry.List(),
		store:       store,
		keys:        DefaultLibraryKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()
	m.reload()
	return m
}

func (m *LibraryModel) puzzleID() string {
	if len(m.puzzles) == 0 {
		return ""
	}
	return m.puzzles[m.puzzleCursor].ID
}

// createTable creates a new table with columns for the current view.
func (m *LibraryModel) createTable() table.Model {
	tableWidth := m.width - 8 // Margins and border
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3
	}

	var columns []table.Column
	if m.showRuns {
		columns = []table.Column{
			{Title: "Date", Width: 14},
			{Title: "Moves", Width: 6},
			{Title: "Time", Width: 8},
			{Title: "Sequence", Width: 20},
		}
	} else {
		columns = []table.Column{
			{Title: "Name", Width: 16},
			{Title: "Moves", Width: 6},
			{Title: "Sequence", Width: 20},
		}
	}
	fixed := 0
	for _, c := range columns[:len(columns)-1] {
		fixed += c.Width + 2
	}
	if rest := tableWidth - fixed; rest > columns[len(columns)-1].Width {
		columns[len(columns)-1].Width = rest
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// reload fetches the rows of the current puzzle and view.
func (m *LibraryModel) reload() {
	m.algorithms, m.runs = nil, nil
	if m.store != nil && m.puzzleID() != "" {
		var err error
		if m.showRuns {
			m.runs, err = m.store.RecentRuns(m.puzzleID(), maxRuns)
		} else {
			m.algorithms, err = m.store.Algorithms(m.puzzleID())
		}
		if err != nil {
			m.status = err.Error()
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with the loaded rows.
func (m *LibraryModel) updateTableRows() {
	var rows []table.Row
	if m.showRuns {
		for _, r := range m.runs {
			rows = append(rows, table.Row{
				r.CreatedAt.Format("Jan 02 15:04"),
				fmt.Sprintf("%d", r.MoveCount),
				r.Duration.Round(100 * time.Millisecond).String(),
				r.Moves,
			})
		}
	} else {
		for _, a := range m.algorithms {
			rows = append(rows, table.Row{
				a.Name,
				fmt.Sprintf("%d", len(strings.Fields(a.Moves))),
				a.Moves,
			})
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *LibraryModel) selectedAlgorithm() *storage.Algorithm {
	if m.showRuns || len(m.algorithms) == 0 {
		return nil
	}
	i := m.table.Cursor()
	if i < 0 || i >= len(m.algorithms) {
		return nil
	}
	a := m.algorithms[i]
	return &a
}

// Init initializes the library model.
func (m LibraryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the library.
func (m LibraryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextPuzzle):
			if len(m.puzzles) > 0 {
				m.puzzleCursor = (m.puzzleCursor + 1) % len(m.puzzles)
				m.reload()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevPuzzle):
			if len(m.puzzles) > 0 {
				m.puzzleCursor = (m.puzzleCursor - 1 + len(m.puzzles)) % len(m.puzzles)
				m.reload()
			}
			return m, nil

		case key.Matches(msg, m.keys.Toggle):
			m.showRuns = !m.showRuns
			m.table = m.createTable()
			m.reload()
			return m, nil

		case key.Matches(msg, m.keys.Play):
			if a := m.selectedAlgorithm(); a != nil {
				m.chosen = a
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, m.keys.Delete):
			if a := m.selectedAlgorithm(); a != nil && m.store != nil {
				if _, err := m.store.DeleteAlgorithm(a.PuzzleID, a.Name); err != nil {
					m.status = err.Error()
				} else {
					m.status = fmt.Sprintf("deleted %q", a.Name)
				}
				m.reload()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the library.
func (m LibraryModel) View() string {
	if m.quitting || m.goingBack || m.chosen != nil {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	kind := "ALGORITHMS"
	if m.showRuns {
		kind = "RUNS"
	}
	title := kind
	if len(m.puzzles) > 0 {
		title = fmt.Sprintf("%s - %s", kind, m.puzzles[m.puzzleCursor].Title)
	}

	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(hudStatusStyle.Render(m.status))
		b.WriteString("\n")
	}
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderWideLayout renders the library with a sidebar for puzzle selection.
func (m LibraryModel) renderWideLayout() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Puzzles\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, p := range m.puzzles {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.puzzleCursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}

		name := p.Title
		if maxLen := sidebarWidth - 6; len(name) > maxLen {
			name = name[:maxLen-1] + "."
		}
		sidebar.WriteString(style.Render(cursor + name))
		sidebar.WriteString("\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		sidebarStyle.Render(sidebar.String()), "  ", tableStyle.Render(m.renderTableContent()))
}

// renderNarrowLayout renders the library with puzzle tabs above the table.
func (m LibraryModel) renderNarrowLayout() string {
	var b strings.Builder

	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(m.puzzles))
	for i, p := range m.puzzles {
		if i == m.puzzleCursor {
			tabs[i] = activeTabStyle.Render(p.Title)
		} else {
			tabs[i] = tabStyle.Render(" " + p.Title + " ")
		}
	}

	tabLine := strings.Join(tabs, " ")
	if lipgloss.Width(tabLine) > m.width-4 && len(m.puzzles) > 0 {
		tabLine = fmt.Sprintf("< %s >", m.puzzles[m.puzzleCursor].Title)
	}
	b.WriteString(centerText(tabLine, m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m LibraryModel) renderTableContent() string {
	empty := len(m.algorithms) == 0
	msg := "No saved algorithms.\nType >name in the play prompt to save one."
	if m.showRuns {
		empty = len(m.runs) == 0
		msg = "No runs recorded yet."
	}
	if empty {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render(msg)
	}

	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m LibraryModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m LibraryModel) IsQuitting() bool {
	return m.quitting
}

// Chosen returns the algorithm picked for playback, or nil.
func (m LibraryModel) Chosen() *storage.Algorithm {
	return m.chosen
}

// LibraryResult is what the library screen ended with.
type LibraryResult struct {
	Back   bool
	Chosen *storage.Algorithm
}

// RunLibrary runs the library screen.
func RunLibrary(store *storage.Store, width, height int) (LibraryResult, error) {
	model := NewLibraryModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return LibraryResult{}, err
	}

	m, ok := finalModel.(LibraryModel)
	if !ok {
		return LibraryResult{}, nil
	}

	return LibraryResult{Back: m.IsGoingBack(), Chosen: m.Chosen()}, nil
}

// Package repl implements an interactive read-eval-print loop that compiles
// infix expressions to postfix notation as they are entered.
package repl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/rpn/lang"
	"github.com/ardnew/rpn/log"
)

const evalPrompt = "➜ "

func helpMessage() string {
	return `
: Commands (prefix with a colon):

  :help     Print this cruft
  :history  List previous expressions
  :clear    Clear screen
  :quit     Exit REPL

Usage:
  Type an infix expression to compile it to postfix notation
  Completions from history appear automatically as you type
  Press Tab / Shift-Tab to cycle through candidates
  Use Up/Down arrows for history navigation
  Press Ctrl+C on empty line or Ctrl+D to exit
`
}

// Styles.
var (
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)
	inputStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	resultStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hintStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	suggestionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	selectedStyle   = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("4"))
)

// formatEcho formats the input echo line with prompt and input styled.
func formatEcho(input string) string {
	return promptStyle.Render(evalPrompt) + inputStyle.Render(input)
}

// Command is the kong subcommand that starts the REPL.
type Command struct {
	Capacity int    `default:"1024"     help:"Maximum postfix output length per expression."`
	Cache    string `default:"${cache}" help:"Directory for history persistence."            type:"path"`
}

// Run executes the repl command.
func (c *Command) Run(ctx context.Context) error {
	return Run(ctx, c.Capacity, c.Cache, log.Default())
}

// model is the Bubble Tea model for the REPL.
type model struct {
	ctxFunc      func() context.Context
	input        textinput.Model
	capacity     int
	logger       log.Logger
	history      *History
	historyIdx   int
	matches      fuzzy.Matches // current fuzzy match results
	matchPrefix  string        // prefix preserved when applying a candidate
	suggIdx      int           // selected candidate index
	tabActive    bool          // whether user is tab-cycling
	preTabText   string        // input text before tab-cycling began
	preTabCursor int           // cursor position before tab-cycling began
	width        int           // terminal width for ellipsization
	quitting     bool
}

// Run starts the REPL with history persisted under cacheDir.
func Run(
	ctx context.Context,
	capacity int,
	cacheDir string,
	logger log.Logger,
) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	logger.TraceContext(ctx, "repl start",
		slog.String("cache_dir", cacheDir),
		slog.Int("capacity", capacity),
	)

	history := NewHistory(filepath.Join(cacheDir, baseHistory))
	if err := history.Load(); err != nil {
		fmt.Printf("Warning: could not load history: %v\n", err)
	}

	logger.TraceContext(ctx, "repl history loaded",
		slog.Int("entry_count", history.Len()),
	)

	m := newModel(ctx, capacity, history, logger)

	p := tea.NewProgram(m, tea.WithContext(ctx))
	_, err := p.Run()

	return err
}

const defaultWidth = 80

func newModel(
	ctx context.Context,
	capacity int,
	history *History,
	logger log.Logger,
) model {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render(evalPrompt)
	ti.Focus()
	ti.CharLimit = 1024
	ti.Width = defaultWidth

	return model{
		ctxFunc:    func() context.Context { return ctx },
		input:      ti,
		capacity:   capacity,
		logger:     logger,
		history:    history,
		historyIdx: history.Len(),
		width:      defaultWidth,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - len(evalPrompt) - 2

		return m, nil
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	// Input line.
	b.WriteString(m.input.View())
	b.WriteString("\n")

	// Completion / hint line.
	switch {
	case m.historyIdx < m.history.Len():
		// Show history position indicator
		pos := m.historyIdx + 1 // 1-based for display
		hint := fmt.Sprintf("%s/%d",
			lipgloss.NewStyle().Bold(true).Render(strconv.Itoa(pos)),
			m.history.Len())
		b.WriteString(hintStyle.Render(hint))
		b.WriteString("\n")

	case strings.TrimSpace(m.input.Value()) == "":
		b.WriteString(hintStyle.Render(
			"Type an infix expression or :help for commands"))
		b.WriteString("\n")

	case len(m.matches) > 0:
		// Render horizontal candidate bar.
		bar := renderCandidateBar(m.matches, m.suggIdx, m.tabActive, m.width)
		b.WriteString(bar)
		b.WriteString("\n")

	default:
		// Non-empty input but no matches: blank line.
		b.WriteString("\n")
	}

	return b.String()
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	m.logger.TraceContext(m.ctxFunc(), "repl keypress",
		slog.String("key", msg.String()),
		slog.Int("type", int(msg.Type)),
	)

	switch msg.Type {
	case tea.KeyCtrlC:
		if m.input.Value() == "" {
			m.quitting = true

			return m, tea.Quit
		}

		m.input.SetValue("")
		m.tabActive = false
		m.historyIdx = m.history.Len()
		refreshMatches(&m)

		return m, nil

	case tea.KeyCtrlD:
		if m.input.Value() == "" {
			m.quitting = true

			return m, tea.Quit
		}

		return m, nil

	case tea.KeyEnter:
		if !m.tabActive || len(m.matches) == 0 {
			return m.executeInput()
		}
		// Lock in the current tab candidate without executing.
		m.tabActive = false
		refreshMatches(&m)

		return m, nil

	case tea.KeyTab:
		return m.cycleCandidate(1)

	case tea.KeyShiftTab:
		return m.cycleCandidate(-1)

	case tea.KeyUp:
		return m.historyPrev()

	case tea.KeyDown:
		return m.historyNext()

	case tea.KeyEsc:
		if m.tabActive {
			m.tabActive = false
			m.input.SetValue(m.preTabText)
			m.input.SetCursor(m.preTabCursor)
			refreshMatches(&m)
		}

		return m, nil

	case tea.KeyRunes:
		// Space breaks tab-cycling.
		if m.tabActive && msg.String() == " " {
			m.tabActive = false
		}

		var cmd tea.Cmd

		// Reset history index when typing
		m.historyIdx = m.history.Len()
		m.input, cmd = m.input.Update(msg)
		refreshMatches(&m)

		return m, cmd
	}

	// For any other key (backspace, delete, arrows, etc.),
	// update input and recompute matches.
	var cmd tea.Cmd

	m.tabActive = false
	m.historyIdx = m.history.Len()
	m.input, cmd = m.input.Update(msg)
	refreshMatches(&m)

	return m, cmd
}

// cycleCandidate advances the tab-cycling selection by delta and applies the
// selected candidate to the input.
func (m model) cycleCandidate(delta int) (model, tea.Cmd) {
	if len(m.matches) == 0 {
		return m, nil
	}

	// Single candidate: complete immediately.
	if len(m.matches) == 1 {
		applyCandidate(&m, m.matches[0].Str)
		m.tabActive = false
		m.suggIdx = -1
		m.matches = nil

		return m, nil
	}

	if m.tabActive {
		m.suggIdx = (m.suggIdx + delta + len(m.matches)) % len(m.matches)
	} else {
		m.tabActive = true
		m.preTabText = m.input.Value()
		m.preTabCursor = m.input.Position()

		if delta > 0 {
			m.suggIdx = 0
		} else {
			m.suggIdx = len(m.matches) - 1
		}
	}

	applyCandidate(&m, m.matches[m.suggIdx].Str)

	return m, nil
}

// applyCandidate replaces the input with the given candidate, preserving the
// colon prefix for command completions.
func applyCandidate(m *model, candidate string) {
	value := m.matchPrefix + candidate

	m.input.SetValue(value)
	m.input.SetCursor(len(value))
}

// refreshMatches recomputes fuzzy matches for the current input state.
func refreshMatches(m *model) {
	m.matches, m.matchPrefix = m.computeMatches()

	if !m.tabActive {
		m.suggIdx = -1
	}
}

func (m model) executeInput() (model, tea.Cmd) {
	input := strings.TrimSpace(m.input.Value())
	if input == "" {
		return m, nil
	}

	m.input.SetValue("")

	if cmd, ok := strings.CutPrefix(input, ":"); ok {
		m.logger.TraceContext(m.ctxFunc(), "repl command",
			slog.String("input", input),
		)

		return m.executeCommand(cmd)
	}

	_, _ = m.history.Write(input)
	m.historyIdx = m.history.Len()
	refreshMatches(&m)

	m.logger.TraceContext(m.ctxFunc(), "repl compile",
		slog.String("input", input),
	)

	// Echo the expression
	echoCmd := tea.Println(formatEcho(input))

	postfix, err := lang.ParseString(m.ctxFunc(), input,
		lang.WithCapacity(m.capacity),
		lang.WithLogger(m.logger))
	if err != nil {
		m.logger.TraceContext(m.ctxFunc(), "repl compile result",
			slog.String("result_type", "error"),
			slog.String("error", err.Error()),
		)

		return m, tea.Sequence(echoCmd, tea.Println(renderError(err)))
	}

	m.logger.TraceContext(m.ctxFunc(), "repl compile result",
		slog.String("postfix", postfix),
	)

	return m, tea.Sequence(echoCmd, tea.Println(resultStyle.Render(postfix)))
}

// renderError formats a compile error, pointing a caret at the offending
// input position when it is known.
func renderError(err error) string {
	msg := "error: " + err.Error()

	perr := &lang.Error{}
	if errors.As(err, &perr) && perr.Pos() >= 0 {
		caret := strings.Repeat(" ", lipgloss.Width(evalPrompt)+perr.Pos()) + "^"

		return errorStyle.Render(caret + "\n" + msg)
	}

	return errorStyle.Render(msg)
}

func (m model) executeCommand(cmd string) (model, tea.Cmd) {
	echoCmd := tea.Println(formatEcho(":" + cmd))

	switch cmd {
	case "q", "quit", "exit":
		m.quitting = true

		return m, tea.Sequence(echoCmd, tea.Quit)

	case "h", "help":
		return m, tea.Sequence(echoCmd, tea.Println(helpMessage()))

	case "history":
		return m, tea.Sequence(echoCmd, tea.Println(m.listHistory()))

	case "c", "clear":
		return m, tea.ClearScreen

	default:
		return m, tea.Println(
			errorStyle.Render("Unknown command: :" + cmd + " (try :help)"),
		)
	}
}

func (m model) listHistory() string {
	var b strings.Builder

	for i, entry := range m.history.Entries() {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			hintStyle.Render(strconv.Itoa(i+1)), entry))
	}

	return b.String()
}

func (m model) historyPrev() (model, tea.Cmd) {
	if m.historyIdx > 0 {
		m.historyIdx--

		if entry, err := m.history.Get(m.historyIdx); err == nil {
			m.input.SetValue(entry)
			m.input.SetCursor(len(entry))
			m.matches = nil
			m.tabActive = false
		}
	}

	return m, nil
}

func (m model) historyNext() (model, tea.Cmd) {
	if m.historyIdx < m.history.Len()-1 {
		m.historyIdx++

		if entry, err := m.history.Get(m.historyIdx); err == nil {
			m.input.SetValue(entry)
			m.input.SetCursor(len(entry))
			m.matches = nil
			m.tabActive = false
		}
	} else {
		m.historyIdx = m.history.Len()
		m.input.SetValue("")
		refreshMatches(&m)
	}

	return m, nil
}

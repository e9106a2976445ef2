package tui

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bruno-garcia/pi-pr-status/internal/status"
)

// — styles ——————————————————————————————————————————————————————————————————

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	dimStyle = lipgloss.NewStyle().Faint(true)

	barStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252"))

	helpStyle = lipgloss.NewStyle().Faint(true)
)

// — status bar ——————————————————————————————————————————————————————————————

// Bar is the host's status-bar slot: a keyed set of lines the tracker
// writes into from poll goroutines. Implements status.Sink.
type Bar struct {
	mu      sync.Mutex
	entries map[string]string
}

func NewBar() *Bar {
	return &Bar{entries: make(map[string]string)}
}

func (b *Bar) SetStatus(key string, text *string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if text == nil {
		delete(b.entries, key)
		return
	}
	b.entries[key] = *text
}

func (b *Bar) Line(key string) (string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	line, ok := b.entries[key]
	return line, ok
}

// — messages ————————————————————————————————————————————————————————————————

type tickMsg struct{}

type polledMsg struct{}

// — model ———————————————————————————————————————————————————————————————————

type Model struct {
	tracker  *status.Tracker
	bar      *Bar
	key      string
	interval time.Duration

	input  textinput.Model
	dir    string
	width  int
	polled bool
}

// New wires the host demo around a tracker watching dir. The tracker's
// sink must be bar.
func New(tracker *status.Tracker, bar *Bar, key, dir string, interval time.Duration) Model {
	ti := textinput.New()
	ti.Placeholder = "type a prompt (PR URLs are picked up) · cd <dir> switches session"
	ti.CharLimit = 400
	ti.Focus()

	return Model{
		tracker:  tracker,
		bar:      bar,
		key:      key,
		interval: interval,
		input:    ti,
		dir:      dir,
	}
}

// — commands ————————————————————————————————————————————————————————————————

func (m Model) pollCmd() tea.Cmd {
	return func() tea.Msg {
		m.tracker.Tick(context.Background())
		return polledMsg{}
	}
}

func (m Model) inputCmd(text string) tea.Cmd {
	return func() tea.Msg {
		m.tracker.HandleInput(context.Background(), text, status.OriginUser)
		return polledMsg{}
	}
}

func (m Model) switchCmd(dir string) tea.Cmd {
	return func() tea.Msg {
		m.tracker.Reset(context.Background(), dir)
		return polledMsg{}
	}
}

func (m Model) scheduleTick() tea.Cmd {
	return tea.Tick(m.interval, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

// — tea.Model ———————————————————————————————————————————————————————————————

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.pollCmd(), m.scheduleTick(), textinput.Blink)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tickMsg:
		return m, tea.Batch(m.pollCmd(), m.scheduleTick())

	case polledMsg:
		m.polled = true
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			text := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			if text == "" {
				return m, nil
			}
			if dir, ok := strings.CutPrefix(text, "cd "); ok {
				m.dir = strings.TrimSpace(dir)
				return m, m.switchCmd(m.dir)
			}
			return m, m.inputCmd(text)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("pi-pr-status") + dimStyle.Render("  "+m.dir) + "\n\n")
	b.WriteString(m.input.View() + "\n\n")

	line, ok := m.bar.Line(m.key)
	switch {
	case ok:
		b.WriteString(barStyle.Render(line) + "\n")
	case m.polled:
		b.WriteString(dimStyle.Render("no active pull request") + "\n")
	default:
		b.WriteString(dimStyle.Render("polling…") + "\n")
	}

	b.WriteString("\n" + helpStyle.Render("Enter submit   Esc quit"))
	return b.String()
}
